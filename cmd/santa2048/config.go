package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/santa2048/internal/config"
)

var flagEnvHelp bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration after defaults, the config file, environment
variables and global flags have been applied.

Configuration is read from --config, ~/.santa2048/config.yaml or
configs/santa2048.yaml (first found), then SANTA2048_* environment variables.

Examples:
  santa2048 config
  santa2048 config --env
  SANTA2048_VARIANT=big santa2048 config`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEnvHelp, "env", false, "List the supported environment variables")
}

func runConfig(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()

	if flagEnvHelp {
		fmt.Fprintln(out, config.EnvHelp())
		return
	}

	data, err := config.Marshal(appConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(out, "# source: %s\n", configSource)
	fmt.Fprint(out, string(data))
}

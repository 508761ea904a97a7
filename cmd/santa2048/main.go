// santa2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	santa2048 list               - List board variants
//	santa2048 play [variant]     - Play a game
//	santa2048 menu               - Pick boards interactively
//	santa2048 serve              - Start SSH server for remote play
//	santa2048 scores [variant]   - Show high scores
//	santa2048 replay <moves>     - Apply moves to a seeded board and print it
//	santa2048 config             - Show the effective configuration
//
// Global flags:
//
//	--config <path>     - Configuration file
//	--seed <value>      - RNG seed for reproducible games
//	--db <path>         - Scores database
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/santa2048/internal/config"
	// Import the game to register its variants
	_ "github.com/vovakirdan/santa2048/internal/games/t2048"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagFPS      int

	// Loaded in PersistentPreRunE
	appConfig    config.Config
	configSource string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "santa2048",
	Short: "Santa 2048 - the sliding-tile puzzle in your terminal",
	Long: `Santa 2048 is the 2048 sliding-tile puzzle for the terminal.
Slide the board, merge equal tiles and reach the winning tile.

Available commands:
  list     - Show board variants
  play     - Play a game directly
  menu     - Interactive board picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  replay   - Replay a move sequence on a seeded board
  config   - Show the effective configuration

Examples:
  santa2048 play
  santa2048 play mini --difficulty hard
  santa2048 play --dimension 5 --threshold 1024
  santa2048 serve --ssh :2222
  santa2048 replay --seed 42 LLURD`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a configuration YAML file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Frame rate of the board animations")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the configuration and applies the global flag overrides.
func loadConfig(_ *cobra.Command, _ []string) error {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}

	appConfig = cfg
	configSource = source
	return nil
}

// newLogger builds the application logger at the configured level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(appConfig.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", appConfig.LogLevel, err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "santa2048",
		Level:           level,
	}), nil
}

// tuiLogger logs to ~/.santa2048/santa2048.log so output does not tear the
// full-screen UI. The returned function closes the file.
func tuiLogger() (*log.Logger, func(), error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".santa2048")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}

	f, err := os.OpenFile(filepath.Join(dir, "santa2048.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

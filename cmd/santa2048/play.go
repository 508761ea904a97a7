package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/santa2048/internal/config"
	"github.com/vovakirdan/santa2048/internal/core"
	"github.com/vovakirdan/santa2048/internal/games/t2048"
	"github.com/vovakirdan/santa2048/internal/platform/tui"
	"github.com/vovakirdan/santa2048/internal/registry"
	"github.com/vovakirdan/santa2048/internal/storage"
)

var (
	flagDimension  int
	flagThreshold  int
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start a game on the given board variant, or on the configured one.

Controls:
  Arrows/WASD/hjkl - Slide tiles
  R                - New game
  Esc/Q            - Quit
  Ctrl+S           - Save a text screenshot

Difficulty sets how often a spawned tile is a 4:
  easy   - 5%
  normal - 10%
  hard   - 25%

Examples:
  santa2048 play
  santa2048 play big
  santa2048 play --difficulty hard
  santa2048 play --dimension 5 --threshold 1024
  santa2048 play --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addBoardFlags(playCmd)
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// addBoardFlags registers the custom board flags on cmd.
func addBoardFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagDimension, "dimension", 0, "Custom board side length (implies the custom variant)")
	cmd.Flags().IntVar(&flagThreshold, "threshold", 0, "Custom winning tile (implies the custom variant)")
}

// resolveVariant picks the board from the custom flags, the argument or the
// configuration, in that order.
func resolveVariant(args []string) (registry.Variant, error) {
	cfg := appConfig
	switch {
	case flagDimension > 0 || flagThreshold > 0:
		cfg.Variant = config.CustomVariant
		if flagDimension > 0 {
			cfg.Dimension = flagDimension
		}
		if flagThreshold > 0 {
			cfg.WinThreshold = flagThreshold
		}
	case len(args) > 0:
		cfg.Variant = args[0]
	}
	return t2048.VariantFromConfig(cfg)
}

// screenConfig sizes the runtime config from the terminal.
func screenConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	cfg.FPS = flagFPS
	return cfg
}

func runPlay(cmd *cobra.Command, args []string) {
	variant, err := resolveVariant(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'santa2048 list' to see available boards.")
		os.Exit(1)
	}

	logger, closeLog, err := tuiLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	difficulty := config.DifficultyPreset(flagDifficulty)
	game, err := tui.NewGame(appConfig, variant, difficulty, flagSeed, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("game started", "variant", variant.ID, "seed", game.Seed(), "config", configSource)

	store, err := storage.Open(appConfig.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, screenConfig(), logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

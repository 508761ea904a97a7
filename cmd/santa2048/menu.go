package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/santa2048/internal/config"
	"github.com/vovakirdan/santa2048/internal/platform/tui"
	"github.com/vovakirdan/santa2048/internal/registry"
	"github.com/vovakirdan/santa2048/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to choose a board, left/right to change the
difficulty and Enter to play. Esc in a game returns to the menu.

Controls:
  Up/Down/j/k     - Choose board
  Left/Right/h/l  - Choose difficulty
  Enter/Space     - Play
  Tab             - High scores
  Q               - Quit

Examples:
  santa2048 menu
  santa2048 menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := tuiLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := storage.Open(appConfig.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := screenConfig()
	difficulty := config.DifficultyNormal

	for {
		menuResult, err := tui.RunMenu(store, cfg, difficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config
		difficulty = menuResult.Difficulty

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, logger)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if !goBack {
				return
			}
			continue
		}

		variant, err := registry.Lookup(menuResult.VariantID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		game, err := tui.NewGame(appConfig, variant, difficulty, cfg.Seed, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		logger.Info("game started", "variant", variant.ID, "difficulty", difficulty, "seed", game.Seed())

		if err := tui.Run(game, store, cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
	}
}

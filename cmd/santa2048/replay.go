package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/santa2048/internal/engine"
	"github.com/vovakirdan/santa2048/internal/games/t2048"
)

var flagTrace bool

var replayCmd = &cobra.Command{
	Use:   "replay <moves>",
	Short: "Apply a move sequence to a seeded board and print the result",
	Long: `Start a game with the given seed, apply every move in order and print
the final board. Moves are letters (U, D, L, R) or comma separated words
(up,down,left,right). Each move is applied without debounce delays.

The same seed and moves always produce the same board, which makes replay
useful for sharing games and checking behaviour.

Examples:
  santa2048 replay --seed 42 LLURD
  santa2048 replay --seed 7 --trace up,up,left
  santa2048 replay --seed 1 --dimension 3 --threshold 64 RRDDLLUU`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	addBoardFlags(replayCmd)
	replayCmd.Flags().BoolVar(&flagTrace, "trace", false, "Print the board after every move")
}

func runReplay(cmd *cobra.Command, args []string) {
	moves, err := engine.ParseMoves(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagSeed == 0 {
		fmt.Fprintln(os.Stderr, "Error: replay needs a non-zero --seed")
		os.Exit(1)
	}

	variant, err := resolveVariant(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game := t2048.New(variant,
		t2048.WithSettings(t2048.SettingsFromConfig(appConfig)),
		t2048.WithSeed(flagSeed),
		t2048.WithLogger(logger),
	)
	game.Start()

	out := cmd.OutOrStdout()
	for i, dir := range moves {
		if !game.Move(dir) {
			logger.Warn("game over, remaining moves ignored", "applied", i, "total", len(moves))
			break
		}
		game.Settle()

		if flagTrace {
			fmt.Fprintf(out, "#%d %s\n%s\n\n", i+1, dir, game.Snapshot())
		}
	}

	fmt.Fprintln(out, game.Snapshot())
}

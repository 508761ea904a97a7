package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/santa2048/internal/registry"
	"github.com/vovakirdan/santa2048/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores for a board",
	Long: `Display the top scores and statistics for a board variant. Without an
argument the configured variant is shown.

Examples:
  santa2048 scores
  santa2048 scores mini --limit 20
  santa2048 scores big --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all results of the variant")
}

func runScores(cmd *cobra.Command, args []string) {
	variant := appConfig.Variant
	if len(args) > 0 {
		variant = args[0]
	}

	title := variant
	if v, err := registry.Lookup(variant); err == nil {
		title = v.Title
	}

	store, err := storage.Open(appConfig.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(variant); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return
	}

	scores, err := store.TopScores(variant, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'santa2048 play %s' to set the first high score!\n", variant)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %-4s  %s\n", "Rank", "Score", "Max", "Moves", "Won", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %-4s  %s\n", "----", "-----", "---", "-----", "---", "----")

	for i, r := range scores {
		won := ""
		if r.Won {
			won = "yes"
		}
		fmt.Printf("  %-4d  %-8d  %-8d  %-6d  %-4s  %s\n",
			i+1, r.Score, r.MaxTile, r.Moves, won, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(variant)
	if err != nil {
		return
	}
	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Wins: %d  Best tile: %d  Average: %.0f\n",
		stats.HighScore, stats.Games, stats.Wins, stats.BestTile, stats.AvgScore)
}

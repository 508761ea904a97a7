package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/santa2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all board variants",
	Long:  `Shows every registered board variant with its size and winning tile.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available boards:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "ID", "Title", "Board")
	fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, "--", "-----", "-----")

	for _, v := range variants {
		fmt.Printf("  %-*s  %-8s  %s\n", maxIDLen, v.ID, v.Title, v.Describe())
	}

	fmt.Println()
	fmt.Println("Run 'santa2048 play <id>' to play, or 'santa2048 play --dimension N --threshold T' for a custom board.")
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var packsCmd = &cobra.Command{
	Use:   "packs",
	Short: "List all registered level packs",
	Long:  `Shows a list of all level packs built into the platformer.`,
	Args:  cobra.NoArgs,
	Run:   runPacks,
}

func runPacks(cmd *cobra.Command, args []string) {
	packs := registry.List()

	if len(packs) == 0 {
		fmt.Println("No packs available.")
		return
	}

	fmt.Println("Available packs:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range packs {
		maxNameLen = max(maxNameLen, len(p.Name))
	}

	// Print header
	fmt.Printf("  %-*s  %6s  %s\n", maxNameLen, "Name", "Phases", "Title")
	fmt.Printf("  %-*s  %6s  %s\n", maxNameLen, "----", "------", "-----")

	for _, p := range packs {
		fmt.Printf("  %-*s  %6d  %s\n", maxNameLen, p.Name, p.Phases, p.Title)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play --pack <name>' to play a pack.")
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the levels shipped with the game and any *.txt level files found
in the levels directory. A file in the directory replaces a built-in level
with the same id.`,
	Run: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	infos, err := newCatalog(newLogger("forest")).List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(infos) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	maxNameLen := 4
	for _, info := range infos {
		maxIDLen = max(maxIDLen, len(info.ID))
		maxNameLen = max(maxNameLen, len(info.Name))
	}

	fmt.Printf("  %-*s  %-*s  %-9s  %-6s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Mushrooms", "Wolves", "Source")
	fmt.Printf("  %-*s  %-*s  %-9s  %-6s  %s\n", maxIDLen, "--", maxNameLen, "----", "---------", "------", "------")

	for _, info := range infos {
		fmt.Printf("  %-*s  %-*s  %-9d  %-6d  %s\n", maxIDLen, info.ID, maxNameLen, info.Name, info.Mushrooms, info.Wolves, info.Source)
	}

	fmt.Println()
	fmt.Println("Run 'forest play <id>' to play a level.")
}

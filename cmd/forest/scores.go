package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/forest-escape/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <level>",
	Short: "Show high scores for a level",
	Long: `Display the best runs for the specified level, ranked by mushrooms
collected and then by fewest ticks.

Examples:
  forest scores level1
  forest scores level2 --limit 20`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", storage.DefaultLimit, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) {
	levelID := args[0]

	// Scores are keyed by level name
	level, err := newCatalog(newLogger("forest")).Load(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'forest levels' to see available levels.")
		os.Exit(1)
	}

	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(level.Name, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", level.Name)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'forest play %s' to set the first high score!\n", levelID)
		return
	}

	fmt.Printf("  %-4s  %-16s  %-9s  %-6s  %-9s  %s\n", "Rank", "Player", "Mushrooms", "Ticks", "Result", "Date")
	fmt.Printf("  %-4s  %-16s  %-9s  %-6s  %-9s  %s\n", "----", "------", "---------", "-----", "------", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-16s  %-9d  %-6d  %-9s  %s\n",
			i+1, entry.PlayerName, entry.Mushrooms, entry.ElapsedTicks, entry.Outcome,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.LevelStats(level.Name)
	if err != nil || stats == nil {
		return
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Clears: %d  Best: %d/%d", stats.Runs, stats.Clears, stats.BestMushrooms, level.Mushrooms())
	if stats.FastestClear > 0 {
		fmt.Printf("  Fastest clear: %d ticks", stats.FastestClear)
	}
	fmt.Println()
}

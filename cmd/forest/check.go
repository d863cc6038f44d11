package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/forest-escape/internal/forest"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate level files",
	Long: `Parse each level file and report whether it is playable.
The command exits with status 1 when any file fails.

Examples:
  forest check ./my-level.txt
  forest check ~/.forest/levels/*.txt`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	failed := 0
	for _, path := range args {
		level, err := forest.LoadLevelFile(path)
		if err != nil {
			fmt.Printf("FAIL  %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("ok    %s: %q, %d mushrooms, %d wolves\n",
			path, level.Name, level.Mushrooms(), len(level.WolfStarts))
	}

	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d level files failed\n", failed, len(args))
		os.Exit(1)
	}
}

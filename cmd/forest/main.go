// forest is Forest Escape: collect the mushrooms, dodge the wolves, in your terminal.
//
// Usage:
//
//	forest play [level]      - Play a level (default: level1)
//	forest menu              - Pick levels interactively
//	forest levels            - List available levels
//	forest check <file>...   - Validate level files
//	forest scores <level>    - Show high scores for a level
//	forest serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.forest, ./configs)
//	--db <path>         - Scores database (default: ~/.forest/scores.db)
//	--levels <dir>      - Extra level directory (default: ~/.forest/levels)
//	--seed <value>      - RNG seed for reproducible wolves
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/forest-escape/internal/config"
)

var (
	// Global flags
	flagConfig    string
	flagDBPath    string
	flagLevelsDir string
	flagSeed      int64
	flagLogLevel  string

	// appConfig is the loaded configuration with flag overrides applied.
	appConfig config.Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "forest",
	Short: "Forest Escape - collect mushrooms and escape the wolves",
	Long: `Forest Escape is a tile-based terminal game. Walk the forest, collect
every mushroom and stay away from the wolves. Power-ups slow the wolves,
hide you from them or give you an extra life.

Available commands:
  play     - Play a level directly
  menu     - Interactive level picker
  levels   - Show all available levels
  check    - Validate level files
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  forest play
  forest play level2 --name ana
  forest menu
  forest serve --ssh :2222
  forest scores level1`,
	PersistentPreRun: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with extra level files")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the configuration and applies command-line overrides.
func loadConfig(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("levels") {
		cfg.Levels.Dir = flagLevelsDir
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
		if _, err := config.ParseLevel(cfg.Log.Level); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	appConfig = cfg
}

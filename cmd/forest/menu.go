package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/forest-escape/internal/forest"
	"github.com/vovakirdan/forest-escape/internal/platform/tui"
	"github.com/vovakirdan/forest-escape/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels from an interactive menu",
	Long: `Start Forest Escape in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a level.
Leaving a level returns you to the menu. Tab opens the scoreboard.

Examples:
  forest menu
  forest menu --name ana
  forest menu --levels ./my-levels`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagName, "name", "", "Player name (prompted when empty)")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newFileLogger("forest")
	defer closeLog()

	catalog := newCatalog(logger)
	infos, err := catalog.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}

	name := flagName
	if name == "" {
		name, err = tui.RunNamePrompt(os.Getenv("USER"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if name == "" {
			return
		}
	}

	// Open score storage
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(infos, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, names, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		level, err := catalog.Load(menuResult.LevelID)
		if err != nil {
			logger.Error("could not load level", "level", menuResult.LevelID, "error", err)
			continue
		}

		opts := forest.Options{
			PlayerName: name,
			Rules:      appConfig.Rules(),
			Seed:       flagSeed,
			Logger:     logger,
		}
		if store != nil {
			opts.Recorder = store
		}

		if err := tui.Run(forest.NewSession(level, opts), cfg, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			break
		}
	}
}

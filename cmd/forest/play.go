package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/forest-escape/internal/core"
	"github.com/vovakirdan/forest-escape/internal/forest"
	"github.com/vovakirdan/forest-escape/internal/platform/tui"
	"github.com/vovakirdan/forest-escape/internal/storage"
)

const defaultLevel = "level1"

var flagName string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing a level. The level is a catalog id (see 'forest levels')
or a path to a level file. Without an argument, level1 is played.

Controls:
  Arrows/WASD  - Move
  P            - Pause
  R            - Restart
  Enter        - Play again after clearing the level
  Esc/Q        - Quit
  Ctrl+S       - Save a screenshot

Examples:
  forest play
  forest play level2 --name ana
  forest play ./my-level.txt --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "", "Player name (prompted when empty)")
}

func runPlay(_ *cobra.Command, args []string) {
	levelID := defaultLevel
	if len(args) == 1 {
		levelID = args[0]
	}

	logger, closeLog := newFileLogger("forest")
	defer closeLog()

	level, err := newCatalog(logger).Load(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'forest levels' to see available levels.")
		os.Exit(1)
	}

	name := flagName
	if name == "" {
		name, err = tui.RunNamePrompt(os.Getenv("USER"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if name == "" {
			return // cancelled
		}
	}

	// Open score storage
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
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
	session := forest.NewSession(level, opts)

	runErr := tui.Run(session, runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig sizes the screen to the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickInterval = appConfig.Game.TickInterval
	cfg.Seed = flagSeed
	return cfg
}

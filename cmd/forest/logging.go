package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/forest-escape/internal/config"
	"github.com/vovakirdan/forest-escape/internal/levels"
)

// newLogger returns a stderr logger at the configured level.
func newLogger(prefix string) *log.Logger {
	return newLoggerTo(os.Stderr, prefix)
}

func newLoggerTo(w io.Writer, prefix string) *log.Logger {
	level, _ := config.ParseLevel(appConfig.Log.Level)
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// newFileLogger logs to ~/.forest/forest.log, since the terminal belongs to
// the game while it runs. It falls back to discarding output.
func newFileLogger(prefix string) (*log.Logger, func()) {
	path := config.ExpandHome("~/.forest/forest.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return newLoggerTo(io.Discard, prefix), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return newLoggerTo(io.Discard, prefix), func() {}
	}
	return newLoggerTo(f, prefix), func() { f.Close() }
}

// newCatalog returns the level catalog for the configured directory.
func newCatalog(logger *log.Logger) *levels.Catalog {
	return levels.New(config.ExpandHome(appConfig.Levels.Dir), logger)
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/forest-escape/internal/config"
	"github.com/vovakirdan/forest-escape/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Forest Escape SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a level menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.forest/host_key

Examples:
  forest serve                           # Listen on :23234 with auto-generated key
  forest serve --ssh :2222               # Listen on port 2222
  forest serve --host-key ./my_host_key  # Use specific host key
  forest serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config, :23234)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) {
	srv := appConfig.Server
	if cmd.Flags().Changed("ssh") {
		srv.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		srv.HostKey = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		srv.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	logger := newLogger("forest-ssh")
	cfg := tui.SSHServerConfig{
		Address:      srv.Address,
		HostKeyPath:  config.ExpandHome(srv.HostKey),
		DBPath:       appConfig.Storage.DBPath,
		IdleTimeout:  srv.IdleTimeout,
		TickInterval: appConfig.Game.TickInterval,
		Rules:        appConfig.Rules(),
		Catalog:      newCatalog(logger),
		Logger:       logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Forest Escape SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

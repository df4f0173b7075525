package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServePack   string
	flagServePhases string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the platformer SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game, starting on the main menu.
Sound is off for remote players. Scores are kept in memory while the
server runs and all users share the same board.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise uses server.host_key from the config
  - Otherwise auto-generates a key at ~/.platformer/host_key

Examples:
  platformer serve                           # Listen on the configured address
  platformer serve --ssh :2222               # Listen on port 2222
  platformer serve --host-key ./my_host_key  # Use specific host key
  platformer serve --pack tutorial           # Serve another pack

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (default from config)")
	serveCmd.Flags().StringVar(&flagServePack, "pack", "", "Level pack every session plays (default from config)")
	serveCmd.Flags().StringVar(&flagServePhases, "phases", "", "Path to a level pack YAML file every session plays")
	serveCmd.MarkFlagsMutuallyExclusive("pack", "phases")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", -1, "Idle timeout in minutes before disconnecting (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, cfg, "platformer-ssh")

	// Flags override the config
	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKey = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		cfg.Server.IdleTimeoutMinutes = max(flagIdleTimeout, 0)
	}

	cat, err := resolveCatalog(flagServePack, flagServePhases, cfg.Pack)
	if err != nil {
		return err
	}

	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open session scores", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: expandHome(cfg.Server.HostKey),
		IdleTimeout: cfg.Server.IdleTimeout(),
		Catalog:     cat,
		TickRate:    flagFPS,
		HoldTicks:   cfg.Controls.HoldTicks,
	}, store, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting platformer SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// expandHome resolves a leading "~/" against the user's home directory.
func expandHome(path string) string {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, rest)
}

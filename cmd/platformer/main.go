// platformer is a side-scrolling platformer played in the terminal.
//
// Usage:
//
//	platformer play                 - Play the default level pack
//	platformer play --pack <name>   - Play a registered pack
//	platformer play --phases <file> - Play a pack from a YAML file
//	platformer menu                 - Pick packs interactively
//	platformer serve                - Start SSH server for remote play
//	platformer packs                - List registered level packs
//	platformer validate <file>      - Check a pack file
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--config <path>       - Use a specific config file
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"

	// Import packs to register them
	_ "github.com/vovakirdan/tui-platformer/internal/packs/classic"
	_ "github.com/vovakirdan/tui-platformer/internal/packs/tutorial"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "TUI Platformer - Jump, collect apples, avoid enemies",
	Long: `TUI Platformer is a side-scrolling platformer for the terminal.

Run right across every phase of a level pack, collecting apples on the way.
Touching an enemy ends the run.

Available commands:
  play      - Play a level pack
  menu      - Interactive pack picker
  serve     - Start SSH server for remote play
  packs     - Show all registered level packs
  validate  - Check a level pack file

Examples:
  platformer play
  platformer play --pack tutorial
  platformer play --phases ./my-pack.yaml
  platformer serve --ssh :2222
  platformer validate ./my-pack.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true, // main prints the error once
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(packsCmd)
	rootCmd.AddCommand(validateCmd)
}

// loadConfig loads the runtime config. Only a broken --config file fails.
func loadConfig() (config.Config, error) {
	return config.Load(flagConfig)
}

// newLogger builds a logger writing to w at the configured level.
// The --log-level flag wins over the config file.
func newLogger(w io.Writer, cfg config.Config, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	levelName := cfg.Log.Level
	if flagLogLevel != "" {
		levelName = flagLogLevel
	}
	if levelName == "" {
		return logger
	}

	level, err := log.ParseLevel(levelName)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", levelName)
		return logger
	}
	logger.SetLevel(level)
	return logger
}

// openLogFile returns the destination for local-play logs. The alt screen
// owns the terminal, so logs are discarded unless --log-file is given.
func openLogFile() (io.Writer, func(), error) {
	if flagLogFile == "" {
		return io.Discard, func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a level pack, play, repeat",
	Long: `Start the platformer with a level pack picker.

Use arrow keys or j/k to navigate, Enter to play a pack.
Quitting a game returns to the picker. Session scores are kept
until the picker is closed.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play pack
  Q/Esc        - Quit

Examples:
  platformer menu
  platformer menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Start with sound off")
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logOut, closeLog, err := openLogFile()
	if err != nil {
		return err
	}
	defer closeLog()
	logger := newLogger(logOut, cfg, "platformer")

	sess := newLocalSession(cfg, logger)
	defer sess.close()

	width, height := terminalSize()
	current := cfg.Pack

	// Menu loop
	for {
		result, err := tui.RunMenu(current, width, height)
		if err != nil {
			return err
		}
		width, height = result.Width, result.Height

		if result.Quit {
			return nil
		}
		current = result.Pack

		cat, err := registry.Create(current)
		if err != nil {
			logger.Error("cannot create pack", "pack", current, "error", err)
			continue
		}

		if err := sess.play(cat, width, height); err != nil {
			return fmt.Errorf("running game: %w", err)
		}

		// Loop back to menu
	}
}

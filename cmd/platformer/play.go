package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/phase"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagPack    string
	flagPhases  string
	flagNoSound bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a level pack",
	Long: `Start the game on its main menu.

Controls:
  Enter          - Start (or click the Start button)
  M              - Music on/off (main menu)
  Esc            - Exit (main menu)
  ←/A  →/D       - Move
  Space/↑/W      - Jump
  R              - Play again (after game over)
  Tab            - Session scores
  Q/Ctrl+C       - Quit

Examples:
  platformer play
  platformer play --pack tutorial
  platformer play --phases ./my-pack.yaml
  platformer play --no-sound --log-file platformer.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPack, "pack", "", "Registered level pack to play (default from config)")
	playCmd.Flags().StringVar(&flagPhases, "phases", "", "Path to a level pack YAML file")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Start with sound off")
	playCmd.MarkFlagsMutuallyExclusive("pack", "phases")
}

// resolveCatalog loads the pack file if one is given, otherwise the
// registered pack called name, otherwise the configured default.
func resolveCatalog(name, file, defaultPack string) (phase.Catalog, error) {
	if file != "" {
		return phase.LoadFile(file)
	}

	if name == "" {
		name = defaultPack
	}
	if !registry.Exists(name) {
		return phase.Catalog{}, fmt.Errorf("unknown pack %q, run 'platformer packs' to see available packs", name)
	}
	return registry.Create(name)
}

func runPlay(cmd *cobra.Command, args []string) error {
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

	cat, err := resolveCatalog(flagPack, flagPhases, cfg.Pack)
	if err != nil {
		return err
	}

	sess := newLocalSession(cfg, logger)
	defer sess.close()

	width, height := terminalSize()
	if err := sess.play(cat, width, height); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// terminalSize returns the size of stdout, or 80x24 if it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// localSession holds what outlives a single game in local play: the sound
// device and the session scores.
type localSession struct {
	cfg     config.Config
	logger  *log.Logger
	sink    game.Audio
	soundOn bool
	sound   *audio.SoundManager
	store   *storage.Store
}

// newLocalSession opens the speaker and the score store. Both are optional:
// without a device the game runs silent, without a store it keeps no scores.
func newLocalSession(cfg config.Config, logger *log.Logger) *localSession {
	s := &localSession{
		cfg:     cfg,
		logger:  logger,
		sink:    game.NopAudio{},
		soundOn: cfg.Audio.Enabled && !flagNoSound,
	}

	if s.soundOn {
		sm := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			logger.Warn("audio unavailable, playing without sound", "error", err)
		} else {
			s.sound = sm
			s.sink = sm
		}
	}

	// Scores only live for this process
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open session scores", "error", err)
	} else {
		s.store = store
	}
	return s
}

// play runs one game of cat until the player quits.
func (s *localSession) play(cat phase.Catalog, width, height int) error {
	s.logger.Info("starting game", "pack", cat.Name, "phases", cat.Len())

	ctrl := game.New(cat,
		game.WithAudio(s.sink),
		game.WithLogger(s.logger),
		game.WithSound(s.soundOn),
	)

	err := tui.Run(ctrl, s.store, tui.Settings{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		HoldTicks: s.cfg.Controls.HoldTicks,
		Logger:    s.logger,
	})

	// Sound on/off carries over to the next game
	s.soundOn = ctrl.SoundOn()
	s.sink.StopMusic()
	return err
}

func (s *localSession) close() {
	if s.sound != nil {
		s.sound.Cleanup()
	}
	if s.store != nil {
		s.store.Close()
	}
}

package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Settings configures a Model.
type Settings struct {
	Runtime   core.RuntimeConfig
	HoldTicks int    // Ticks a movement key stays held after its last event
	Player    string // Name stored with finished runs
	Logger    *log.Logger
}

// Model is the Bubble Tea model for one game session.
type Model struct {
	ctrl   *game.Controller
	store  *storage.Store
	config core.RuntimeConfig
	player string
	logger *log.Logger

	screen *core.Screen
	latch  *HoldLatch
	keys   KeyMap
	help   help.Model
	board  *Scoreboard

	showBoard bool
	runSaved  bool // Whether the current end screen has been recorded
	quitting  bool
}

// NewModel creates a new Bubble Tea model driving ctrl. store may be nil.
func NewModel(ctrl *game.Controller, store *storage.Store, s Settings) *Model {
	cfg := s.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = game.FrameRate
	}
	logger := s.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	player := s.Player
	if player == "" {
		player = "local"
	}

	cat := ctrl.Catalog()
	m := &Model{
		ctrl:   ctrl,
		store:  store,
		config: cfg,
		player: player,
		logger: logger,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		latch:  NewHoldLatch(s.HoldTicks),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		board:  NewScoreboard(store, cat.Name, cat.DisplayTitle(), cfg.ScreenW, cfg.ScreenH),
	}
	m.help.Width = cfg.ScreenW
	return m
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	if action == core.ActionQuit {
		return m.quit()
	}

	if m.showBoard {
		switch action {
		case core.ActionScoreboard, core.ActionExit:
			m.showBoard = false
			return m, nil
		}
		// Scrolling
		return m, m.board.Update(msg)
	}

	switch {
	case action == core.ActionNone:
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			m.fitScreen()
		}

	case action == core.ActionScoreboard:
		m.board.Refresh(game.EndReasonFinished.String())
		m.showBoard = true
		m.latch.Release()

	case IsHeld(action):
		m.latch.Press(action)

	default:
		if m.ctrl.HandleAction(action) && action == core.ActionReset {
			// A new run starts; it may end before the next tick sees PLAYING
			m.runSaved = false
			m.latch.Release()
		}
		if m.ctrl.ExitRequested() {
			return m.quit()
		}
	}

	return m, nil
}

// handleMouse forwards left clicks to the controller in world coordinates.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showBoard || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	vp := core.NewViewport(game.Width, game.Height, m.screen.Width(), m.screen.Height())
	x, y := vp.ToWorld(msg.X, msg.Y)
	m.ctrl.HandleClick(x, y)

	if m.ctrl.ExitRequested() {
		return m.quit()
	}
	return m, nil
}

// handleResize processes window resize events. The world is rescaled, the
// game is not restarted.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.fitScreen()
	m.help.Width = msg.Width
	m.board.Resize(msg.Width, msg.Height)
	return m, nil
}

// fitScreen sizes the game area to the terminal minus the help bar.
func (m *Model) fitScreen() {
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-m.helpRows(), 1))
}

// helpRows returns the height of the help bar.
func (m *Model) helpRows() int {
	if !m.help.ShowAll {
		return 1
	}
	rows := 1
	for _, col := range m.keys.FullHelp() {
		rows = max(rows, len(col))
	}
	return rows
}

// handleTick processes simulation ticks.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	// The game keeps running behind the scoreboard, with no keys held
	in := core.NewInputFrame()
	if !m.showBoard {
		in = m.latch.Frame()
	}
	snap := m.ctrl.Step(in)

	if snap.State == game.StateEnd && !m.runSaved {
		m.saveRun(snap)
		m.runSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records a finished run on the session board.
func (m *Model) saveRun(snap game.Snapshot) {
	m.logger.Info("run finished",
		"player", m.player,
		"pack", m.ctrl.Catalog().Name,
		"score", snap.Score,
		"phase", snap.Phase+1,
		"reason", snap.EndReason,
	)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveRun(storage.Run{
		Player: m.player,
		Pack:   m.ctrl.Catalog().Name,
		Score:  snap.Score,
		Phase:  snap.Phase + 1,
		Reason: snap.EndReason.String(),
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not save run", "error", err)
	}
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showBoard {
		return m.board.View() + "\n" + m.help.View(m.keys)
	}

	m.ctrl.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Quitting reports whether the model has asked the program to stop.
func (m *Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local session.
func Run(ctrl *game.Controller, store *storage.Store, s Settings) error {
	model := NewModel(ctrl, store, s)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on the start screen buttons
	)

	_, err := p.Run()
	return err
}

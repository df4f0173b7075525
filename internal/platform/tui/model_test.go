package tui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/game"
	"github.com/vovakirdan/tui-platformer/internal/phase"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// trapCatalog has an enemy wherever the player enters, so every run ends on
// its first tick.
func trapCatalog() phase.Catalog {
	return phase.Catalog{
		Name: "trap",
		Phases: []phase.Phase{{
			Enemies: []phase.Spawn{
				{X: game.StartX, Y: game.GroundY},
				{X: game.ReentryX, Y: game.GroundY},
			},
		}},
	}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.OpenMemory()
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, cat phase.Catalog, store *storage.Store) (*Model, *game.Controller) {
	t.Helper()
	ctrl := game.New(cat)
	m := NewModel(ctrl, store, Settings{
		Runtime:   core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60},
		HoldTicks: 3,
		Player:    "tester",
	})
	return m, ctrl
}

func send(m *Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func TestModelStartAndMove(t *testing.T) {
	m, ctrl := newTestModel(t, phase.Catalog{Name: "open", Phases: make([]phase.Phase, 1)}, nil)

	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if ctrl.State() != game.StatePlaying {
		t.Fatalf("state = %v after Enter, want playing", ctrl.State())
	}

	x0, _ := ctrl.PlayerPos()
	send(m, runeKey('d'))
	for i := 0; i < 3; i++ {
		send(m, TickMsg{})
	}
	x1, _ := ctrl.PlayerPos()
	if want := x0 + 3*game.PlayerSpeed; math.Abs(x1-want) > 1e-9 {
		t.Errorf("x after 3 held ticks = %v, want %v", x1, want)
	}

	// The latch has expired, the player stops
	send(m, TickMsg{})
	if x2, _ := ctrl.PlayerPos(); x2 != x1 {
		t.Errorf("player kept moving after the hold expired: %v -> %v", x1, x2)
	}
}

func TestModelTickReturnsNextTick(t *testing.T) {
	m, _ := newTestModel(t, trapCatalog(), nil)
	if cmd := send(m, TickMsg{}); cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
}

func TestModelSavesEachRunOnce(t *testing.T) {
	store := openStore(t)
	m, ctrl := newTestModel(t, trapCatalog(), store)

	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 10; i++ {
		send(m, TickMsg{})
	}
	if ctrl.State() != game.StateEnd {
		t.Fatalf("state = %v, want end", ctrl.State())
	}

	runs, err := store.TopRuns("trap", 0)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(runs))
	}
	r := runs[0]
	if r.Player != "tester" || r.Phase != 1 || r.Reason != game.EndReasonCaught.String() || r.Score != 0 {
		t.Errorf("saved run = %+v", r)
	}

	send(m, runeKey('r'))
	if ctrl.State() != game.StatePlaying {
		t.Fatalf("state = %v after R, want playing", ctrl.State())
	}
	for i := 0; i < 10; i++ {
		send(m, TickMsg{})
	}

	runs, err = store.TopRuns("trap", 0)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("saved %d runs after a second game, want 2", len(runs))
	}
}

func TestModelSavesRunEndingOnFirstTickAfterReset(t *testing.T) {
	store := openStore(t)
	m, ctrl := newTestModel(t, trapCatalog(), store)

	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	for n := 1; n <= 3; n++ {
		send(m, TickMsg{})
		if ctrl.State() != game.StateEnd {
			t.Fatalf("game %d: state = %v, want end", n, ctrl.State())
		}
		runs, err := store.TopRuns("trap", 0)
		if err != nil {
			t.Fatalf("TopRuns: %v", err)
		}
		if len(runs) != n {
			t.Fatalf("after game %d: saved %d runs", n, len(runs))
		}
		send(m, runeKey('r'))
	}
}

func TestModelWithoutStore(t *testing.T) {
	m, ctrl := newTestModel(t, trapCatalog(), nil)
	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	send(m, TickMsg{})
	if ctrl.State() != game.StateEnd {
		t.Fatalf("state = %v, want end", ctrl.State())
	}

	send(m, tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "Scores are disabled.") {
		t.Error("scoreboard without a store should say scores are disabled")
	}
}

func TestModelExit(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
	}{
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}},
		{"quit", runeKey('q')},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, trapCatalog(), nil)
			if cmd := send(m, tt.msg); cmd == nil {
				t.Error("expected a quit command")
			}
			if !m.Quitting() {
				t.Error("model not quitting")
			}
			if m.View() != "" {
				t.Error("view should be empty after quitting")
			}
		})
	}
}

func TestModelExitIgnoredWhilePlaying(t *testing.T) {
	m, _ := newTestModel(t, phase.Catalog{Name: "open", Phases: make([]phase.Phase, 1)}, nil)
	send(m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd := send(m, tea.KeyMsg{Type: tea.KeyEsc}); cmd != nil || m.Quitting() {
		t.Error("Esc must not quit during play")
	}
}

func TestModelClickStart(t *testing.T) {
	m, ctrl := newTestModel(t, trapCatalog(), nil)

	// Right click does nothing
	send(m, tea.MouseMsg{X: 40, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if ctrl.State() != game.StateStart {
		t.Fatal("right click started the game")
	}

	// Column 40, row 8 of an 80x23 game area lands inside the Start button
	send(m, tea.MouseMsg{X: 40, Y: 8, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if ctrl.State() != game.StatePlaying {
		t.Errorf("state = %v after clicking Start, want playing", ctrl.State())
	}
}

func TestModelScoreboardToggle(t *testing.T) {
	store := openStore(t)
	m, _ := newTestModel(t, trapCatalog(), store)

	send(m, tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "SESSION SCORES") {
		t.Error("Tab did not open the scoreboard")
	}

	// Exit closes the board instead of quitting
	send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Quitting() {
		t.Fatal("Esc on the scoreboard quit the game")
	}
	if strings.Contains(m.View(), "SESSION SCORES") {
		t.Error("Esc did not close the scoreboard")
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t, trapCatalog(), nil)
	send(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 120x39", m.screen.Width(), m.screen.Height())
	}

	send(m, runeKey('?'))
	if m.screen.Height() != 40-m.helpRows() || m.helpRows() <= 1 {
		t.Errorf("full help: screen height %d, help rows %d", m.screen.Height(), m.helpRows())
	}
}

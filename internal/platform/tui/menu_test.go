package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var testPacks = []registry.PackInfo{
	{Name: "alpha", Title: "Alpha", Phases: 3},
	{Name: "beta", Title: "Beta", Phases: 1},
	{Name: "gamma", Title: "Gamma", Phases: 2},
}

func pressMenu(m MenuModel, msgs ...tea.KeyMsg) (MenuModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(MenuModel)
	}
	return m, cmd
}

func TestMenuNavigation(t *testing.T) {
	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want int
	}{
		{"start", nil, 0},
		{"down", []tea.KeyMsg{down}, 1},
		{"clamped at bottom", []tea.KeyMsg{down, down, down, down}, 2},
		{"clamped at top", []tea.KeyMsg{up, up}, 0},
		{"vim keys", []tea.KeyMsg{runeKey('j'), runeKey('j'), runeKey('k')}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := pressMenu(NewMenuModel(testPacks, "", 80, 24), tt.keys...)
			if m.cursor != tt.want {
				t.Errorf("cursor = %d, want %d", m.cursor, tt.want)
			}
		})
	}
}

func TestMenuCursorStartsOnCurrentPack(t *testing.T) {
	m := NewMenuModel(testPacks, "gamma", 80, 24)
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}
}

func TestMenuSelect(t *testing.T) {
	m, cmd := pressMenu(NewMenuModel(testPacks, "", 80, 24),
		tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() != "beta" {
		t.Errorf("selected = %q, want beta", m.Selected())
	}
	if cmd == nil {
		t.Error("selecting should quit the menu program")
	}
	if m.IsQuitting() {
		t.Error("selecting is not quitting")
	}
}

func TestMenuQuit(t *testing.T) {
	m, cmd := pressMenu(NewMenuModel(testPacks, "", 80, 24), runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit the menu")
	}
	if m.Selected() != "" || m.View() != "" {
		t.Error("quitting menu should select nothing and render nothing")
	}
}

func TestMenuView(t *testing.T) {
	view := NewMenuModel(testPacks, "", 80, 24).View()
	for _, want := range []string{"Select a level pack", "Alpha (3 phases)", "Gamma (2 phases)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	empty := NewMenuModel(nil, "", 80, 24)
	if !strings.Contains(empty.View(), "No packs available.") {
		t.Error("empty menu should say so")
	}
	if m, _ := pressMenu(empty, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyUp}); m.cursor != 0 {
		t.Errorf("empty menu cursor = %d, want 0", m.cursor)
	}
	if m, _ := pressMenu(empty, tea.KeyMsg{Type: tea.KeyEnter}); m.Selected() != "" {
		t.Error("empty menu selected something")
	}
}

package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/packs/classic"
	"github.com/vovakirdan/tui-platformer/internal/phase"
)

func TestRenderScreens(t *testing.T) {
	c := New(classic.Catalog())
	screen := core.NewScreen(80, 24)

	c.Render(screen)
	out := screen.String()
	for _, want := range []string{"Main Menu", "Start game", "Music: ON", "Exit"} {
		if !strings.Contains(out, want) {
			t.Errorf("start screen missing %q", want)
		}
	}

	c.HandleAction(core.ActionStart)
	c.Render(screen)
	out = screen.String()
	for _, want := range []string{"Apples: 0", "Phase 1/3", string(ItemChar), string(PlatformChar)} {
		if !strings.Contains(out, want) {
			t.Errorf("playing screen missing %q", want)
		}
	}

	c.player.Place(Width+1, GroundY)
	c.state = StatePlaying
	c.phaseIndex = c.catalog.Len() - 1
	c.Step(core.NewInputFrame())
	c.Render(screen)
	out = screen.String()
	for _, want := range []string{"Game Over!", "Apples collected: 0", "Press R to play again"} {
		if !strings.Contains(out, want) {
			t.Errorf("end screen missing %q", want)
		}
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	c := startedController(t, classic.Catalog())
	before := c.Snapshot()
	x, y := c.player.X, c.player.Y

	screen := core.NewScreen(80, 24)
	for i := 0; i < 5; i++ {
		c.Render(screen)
	}

	if c.Snapshot() != before {
		t.Errorf("snapshot changed: %+v -> %+v", before, c.Snapshot())
	}
	if c.player.X != x || c.player.Y != y {
		t.Error("player moved during render")
	}
}

func TestRenderHidesCollectedItems(t *testing.T) {
	cat := singlePhase(phase.Phase{
		Items: []phase.Spawn{{X: StartX, Y: GroundY}},
	})
	c := startedController(t, cat)
	c.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	c.Render(screen)
	if strings.ContainsRune(screen.String(), ItemChar) {
		t.Error("collected item is still drawn")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	c := startedController(t, classic.Catalog())
	screen := core.NewScreen(1, 1)

	// Must not panic on a degenerate grid
	c.Render(screen)
}

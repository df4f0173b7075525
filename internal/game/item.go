package game

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/phase"
)

// Item is a collectible apple. It stays active until the player touches it.
type Item struct {
	X, Y   float64 // Center position
	Active bool
}

// NewItem places an item so that it floats just above its ground anchor.
func NewItem(anchor phase.Spawn) *Item {
	info := SpriteItem.Info()
	return &Item{
		X:      anchor.X,
		Y:      anchor.Y - info.H/2 - ItemLift,
		Active: true,
	}
}

// Hitbox returns the item's collision rectangle.
func (it *Item) Hitbox() core.Rect {
	info := SpriteItem.Info()
	return core.CenteredRect(it.X, it.Y, info.W, info.H)
}

// Collect deactivates the item. It reports true only on the call that
// actually collected it; later calls are no-ops.
func (it *Item) Collect() bool {
	if !it.Active {
		return false
	}
	it.Active = false
	return true
}

package game

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/phase"
)

// Level holds the live entities of the loaded phase.
// A Level is built whole and replaces the previous one in a single assignment.
type Level struct {
	Index     int
	Platforms []core.Rect
	Items     []*Item
	Enemies   []*Enemy
}

// LoadLevel instantiates phase index of the catalog.
// Panics if index is out of range.
func LoadLevel(cat phase.Catalog, index int) *Level {
	spec := cat.At(index)

	lvl := &Level{
		Index:     index,
		Platforms: make([]core.Rect, 0, len(spec.Platforms)),
		Items:     make([]*Item, 0, len(spec.Items)),
		Enemies:   make([]*Enemy, 0, len(spec.Enemies)),
	}

	for _, p := range spec.Platforms {
		lvl.Platforms = append(lvl.Platforms, core.NewRect(p.X, p.Y, p.W, p.H))
	}
	for _, s := range spec.Items {
		lvl.Items = append(lvl.Items, NewItem(s))
	}
	for _, s := range spec.Enemies {
		lvl.Enemies = append(lvl.Enemies, NewEnemy(s))
	}

	return lvl
}

// ActiveItems returns how many items are still collectible.
func (l *Level) ActiveItems() int {
	n := 0
	for _, it := range l.Items {
		if it.Active {
			n++
		}
	}
	return n
}

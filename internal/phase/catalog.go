// Package phase describes level layouts: the platforms, item spawns and enemy
// spawns of each phase, grouped into ordered catalogs ("level packs").
// Catalogs are read-only once built.
package phase

import (
	"errors"
	"fmt"
)

// Validation errors returned (wrapped) by Catalog.Validate.
var (
	ErrNoPhases     = errors.New("catalog has no phases")
	ErrNegativeSize = errors.New("platform has negative size")
	ErrUnnamed      = errors.New("catalog has no name")
)

// PlatformSpec is a static platform, anchored at its top-left corner.
type PlatformSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Spawn is a ground anchor for an item or an enemy.
// The entity is placed so that it rests on (X, Y).
type Spawn struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Phase is one level's static layout.
type Phase struct {
	Platforms []PlatformSpec `yaml:"platforms"`
	Items     []Spawn        `yaml:"items"`
	Enemies   []Spawn        `yaml:"enemies"`
}

// Catalog is an ordered list of phases played in sequence.
type Catalog struct {
	Name   string  `yaml:"name"`
	Title  string  `yaml:"title"`
	Phases []Phase `yaml:"phases"`
}

// Len returns the number of phases.
func (c Catalog) Len() int {
	return len(c.Phases)
}

// At returns the phase at index. Panics if index is out of range.
func (c Catalog) At(index int) Phase {
	if index < 0 || index >= len(c.Phases) {
		panic(fmt.Sprintf("phase: index %d out of range [0, %d)", index, len(c.Phases)))
	}
	return c.Phases[index]
}

// DisplayTitle returns the title, falling back to the name.
func (c Catalog) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return c.Name
}

// Validate checks the catalog for structural problems.
func (c Catalog) Validate() error {
	if c.Name == "" {
		return ErrUnnamed
	}
	if len(c.Phases) == 0 {
		return fmt.Errorf("phase: %s: %w", c.Name, ErrNoPhases)
	}
	for i, p := range c.Phases {
		for j, pl := range p.Platforms {
			if pl.W < 0 || pl.H < 0 {
				return fmt.Errorf("phase: %s: phase %d platform %d (%vx%v): %w",
					c.Name, i, j, pl.W, pl.H, ErrNegativeSize)
			}
		}
	}
	return nil
}

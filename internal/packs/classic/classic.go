// Package classic registers the reference three-phase level pack.
package classic

import (
	"github.com/vovakirdan/tui-platformer/internal/phase"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Name is the registry key of this pack.
const Name = "classic"

// Catalog returns a fresh copy of the classic phases.
func Catalog() phase.Catalog {
	return phase.Catalog{
		Name:  Name,
		Title: "Classic",
		Phases: []phase.Phase{
			{
				Platforms: []phase.PlatformSpec{
					{X: 300, Y: 450, W: 200, H: 20},
					{X: 550, Y: 400, W: 150, H: 20},
				},
				Items: []phase.Spawn{
					{X: 400, Y: 450},
					{X: 625, Y: 400},
				},
				Enemies: []phase.Spawn{
					{X: 350, Y: 450},
				},
			},
			{
				Platforms: []phase.PlatformSpec{
					{X: 150, Y: 450, W: 100, H: 20},
					{X: 400, Y: 380, W: 180, H: 20},
					{X: 650, Y: 300, W: 120, H: 20},
				},
				Items: []phase.Spawn{
					{X: 180, Y: 450},
					{X: 450, Y: 380},
					{X: 700, Y: 300},
				},
				Enemies: []phase.Spawn{
					{X: 200, Y: 450},
					{X: 500, Y: 380},
				},
			},
			{
				Platforms: []phase.PlatformSpec{
					{X: 100, Y: 500, W: 80, H: 20},
					{X: 250, Y: 420, W: 160, H: 20},
					{X: 450, Y: 350, W: 100, H: 20},
					{X: 600, Y: 280, W: 150, H: 20},
					{X: 300, Y: 200, W: 80, H: 20},
				},
				Items: []phase.Spawn{
					{X: 140, Y: 500},
					{X: 310, Y: 420},
					{X: 500, Y: 350},
					{X: 675, Y: 280},
					{X: 340, Y: 200},
				},
				Enemies: []phase.Spawn{
					{X: 315, Y: 420},
					{X: 400, Y: 540},
					{X: 690, Y: 280},
				},
			},
		},
	}
}

func init() {
	registry.Register(Name, Catalog)
}

package game

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/phase"
)

// Enemy walks back and forth around its spawn point.
type Enemy struct {
	X, Y    float64 // Center position
	Dir     float64 // +1 walking right, -1 walking left
	OriginX float64 // Spawn x, center of the patrol

	frame     int
	animTimer int
}

// NewEnemy places an enemy standing on its ground anchor, walking right.
func NewEnemy(anchor phase.Spawn) *Enemy {
	info := SpriteEnemy1.Info()
	return &Enemy{
		X:       anchor.X,
		Y:       anchor.Y - info.H/2,
		Dir:     1,
		OriginX: anchor.X,
	}
}

// Update advances the patrol and the walk animation by one frame.
func (e *Enemy) Update() {
	e.X += e.Dir * EnemySpeed
	if core.AbsF(e.X-e.OriginX) > EnemyRange {
		e.Dir = -e.Dir
	}

	e.animTimer++
	if float64(e.animTimer) >= animationFrames {
		e.animTimer = 0
		e.frame = (e.frame + 1) % len(enemySprites)
	}
}

// Sprite returns the current animation frame.
func (e *Enemy) Sprite() SpriteID {
	return enemySprites[e.frame]
}

// Hitbox returns the enemy's collision rectangle.
func (e *Enemy) Hitbox() core.Rect {
	info := e.Sprite().Info()
	return core.CenteredRect(e.X, e.Y, info.W, info.H)
}

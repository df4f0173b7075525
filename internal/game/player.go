package game

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Player is the character controlled by the user.
// Position is the sprite center; W and H are the scaled sprite size.
type Player struct {
	X, Y       float64
	VelY       float64
	Jumping    bool // Airborne, including plain falling
	Moving     bool
	FacingLeft bool

	W, H float64

	// Native size of the reference sprite. Hitboxes always use this,
	// whatever pose image is current.
	origW, origH float64

	sprite    SpriteID
	frame     int
	animTimer int
}

// NewPlayer creates a player standing on the ground at the start position.
func NewPlayer() *Player {
	info := SpriteIdle1.Info()
	p := &Player{
		X:      StartX,
		Y:      GroundY,
		origW:  info.W,
		origH:  info.H,
		sprite: SpriteIdle1,
	}
	p.applyScale()
	return p
}

// applyScale re-derives the drawn size from the reference sprite, never
// from the current pose image, so landing snaps stay stable across poses.
func (p *Player) applyScale() {
	p.W = float64(int(p.origW * ScaleFactor))
	p.H = float64(int(p.origH * ScaleFactor))
}

// Place moves the player to (x, y) and cancels any vertical motion.
func (p *Player) Place(x, y float64) {
	p.X = x
	p.Y = y
	p.VelY = 0
	p.Jumping = false
}

// Sprite returns the current image.
func (p *Player) Sprite() SpriteID {
	return p.sprite
}

// Pose returns what the player is doing.
func (p *Player) Pose() Pose {
	switch {
	case p.Jumping:
		return PoseJump
	case p.Moving:
		return PoseRun
	default:
		return PoseIdle
	}
}

// Facing returns the direction the player looks at.
func (p *Player) Facing() Facing {
	if p.FacingLeft {
		return FacingLeft
	}
	return FacingRight
}

// Hitbox returns the player's collision rectangle for items and enemies.
func (p *Player) Hitbox() core.Rect {
	return core.CenteredRect(p.X, p.Y, p.origW*ScaleFactor, p.origH*ScaleFactor)
}

// Bottom returns the edge used for landing checks.
func (p *Player) Bottom() float64 {
	return p.Y + p.H
}

// Update runs one frame of movement, physics and animation.
// Reports whether a jump started this frame.
func (p *Player) Update(in core.InputFrame, platforms []core.Rect) bool {
	jumped := p.move(in)
	p.fall(platforms)
	p.animate()
	return jumped
}

// move applies horizontal input and starts a jump if allowed.
func (p *Player) move(in core.InputFrame) bool {
	p.Moving = false

	// Left wins when both directions are held
	if in.Has(core.ActionLeft) {
		p.X -= PlayerSpeed
		p.Moving = true
		p.FacingLeft = true
	} else if in.Has(core.ActionRight) {
		p.X += PlayerSpeed
		p.Moving = true
		p.FacingLeft = false
	}

	if in.Has(core.ActionJump) && !p.Jumping {
		p.VelY = -JumpStrength
		p.Jumping = true
		return true
	}
	return false
}

// fall applies gravity and resolves ground and platform contact.
func (p *Player) fall(platforms []core.Rect) {
	p.VelY += Gravity
	p.Y += p.VelY

	onGround := false

	if p.Y >= GroundY {
		p.Y = GroundY
		p.VelY = 0
		p.Jumping = false
		onGround = true
	}

	// First platform under the player wins. Overlapping platforms at
	// different heights may land the player on the lower one.
	for _, plat := range platforms {
		if p.landsOn(plat) {
			p.Y = plat.Top() - p.H
			p.VelY = 0
			p.Jumping = false
			onGround = true
			break
		}
	}

	if !onGround {
		p.Jumping = true
	}
}

// landsOn reports whether a falling player touches the platform's top band.
func (p *Player) landsOn(plat core.Rect) bool {
	if p.VelY <= 0 {
		return false
	}

	bottom := p.Bottom()
	if bottom < plat.Top() || bottom >= plat.Top()+LandingBand {
		return false
	}

	half := float64(int(p.W) / 2)
	return p.X+half > plat.Left() && p.X-half < plat.Right()
}

// animate advances the sprite on the fixed animation interval.
func (p *Player) animate() {
	p.animTimer++
	if float64(p.animTimer) < animationFrames {
		return
	}
	p.animTimer = 0

	pose := p.Pose()
	if pose != PoseJump {
		p.frame = (p.frame + 1) % PoseFrames(pose)
	}
	p.sprite = PlayerSprite(pose, p.Facing(), p.frame)
	p.applyScale()
}

package game

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Rendering characters.
const (
	GroundChar     = '▀'
	SoilChar       = '░'
	PlatformChar   = '▄'
	ItemChar       = '●'
	EnemyChar      = '▓'
	EnemyEyeChar   = '•'
	ButtonFillChar = '░'

	playerIdleChar = '█'
	playerRunChar  = '▓'
	playerJumpChar = '▒'
)

// groundTop is where the ground is drawn, just below a grounded player's
// hitbox.
const groundTop = GroundY + 40

// Render draws the current state to the screen. It never changes the
// simulation.
func (c *Controller) Render(dst *core.Screen) {
	dst.Clear()
	vp := core.NewViewport(Width, Height, dst.Width(), dst.Height())

	switch c.state {
	case StateStart:
		c.renderStart(dst, vp)
	case StatePlaying:
		c.renderPlaying(dst, vp)
	case StateEnd:
		c.renderEnd(dst, vp)
	}
}

func (c *Controller) renderStart(dst *core.Screen, vp core.Viewport) {
	_, titleRow := vp.ToCell(0, 100)
	dst.DrawTextCentered(titleRow, "Main Menu", core.ColorBrightWhite)
	dst.DrawTextCentered(titleRow+1, c.catalog.DisplayTitle(), core.ColorGray)

	for _, b := range startButtons {
		x, y, w, h := vp.RectCells(b.Rect)
		dst.FillRect(x, y, w, h, ButtonFillChar, b.Color)
		label := b.Label
		if b.Action == core.ActionToggleSound {
			label = fmt.Sprintf("Music: %s", onOff(c.soundOn))
		}
		dst.DrawTextCenteredAt(x+w/2, y+h/2, label, core.ColorBrightWhite)
	}

	_, hintRow := vp.ToCell(0, 500)
	dst.DrawTextCentered(hintRow, "Enter start  ·  M music  ·  Esc exit", core.ColorGray)
}

func (c *Controller) renderPlaying(dst *core.Screen, vp core.Viewport) {
	// Ground
	_, groundRow := vp.ToCell(0, groundTop)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGreen)
	for y := groundRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), SoilChar, core.ColorBrown)
	}

	for _, plat := range c.level.Platforms {
		x, y, w, h := vp.RectCells(plat)
		dst.FillRect(x, y, w, h, PlatformChar, core.ColorBrown)
	}

	for _, it := range c.level.Items {
		if !it.Active {
			continue
		}
		col, row := vp.ToCell(it.X, it.Y)
		dst.Set(col, row, ItemChar, core.ColorBrightRed)
	}

	for _, e := range c.level.Enemies {
		x, y, w, h := vp.RectCells(e.Hitbox())
		dst.FillRect(x, y, w, h, EnemyChar, core.ColorMagenta)
		eye := x
		if e.Dir > 0 {
			eye = x + w - 1
		}
		// Alternate the eye with the walk animation
		if e.Sprite() == SpriteEnemy1 {
			dst.Set(eye, y, EnemyEyeChar, core.ColorBrightWhite)
		}
	}

	c.renderPlayer(dst, vp)

	// HUD
	dst.DrawText(1, 0, fmt.Sprintf("Apples: %d", c.score), core.ColorBrightYellow)
	phaseText := fmt.Sprintf("Phase %d/%d", c.phaseIndex+1, c.catalog.Len())
	dst.DrawText(dst.Width()-len(phaseText)-1, 0, phaseText, core.ColorBrightWhite)
}

func (c *Controller) renderPlayer(dst *core.Screen, vp core.Viewport) {
	p := c.player
	x, y, w, h := vp.RectCells(p.Hitbox())

	fill := playerIdleChar
	switch p.Pose() {
	case PoseRun:
		fill = playerRunChar
	case PoseJump:
		fill = playerJumpChar
	}
	dst.FillRect(x, y, w, h, fill, core.ColorBrightGreen)

	// Face on the leading edge of the head row
	if p.Facing() == FacingLeft {
		dst.Set(x, y, '◀', core.ColorBrightWhite)
	} else {
		dst.Set(x+w-1, y, '▶', core.ColorBrightWhite)
	}
}

func (c *Controller) renderEnd(dst *core.Screen, vp core.Viewport) {
	_, row := vp.ToCell(0, Height/2-50)
	dst.DrawTextCentered(row, "Game Over!", core.ColorBrightRed)
	dst.DrawTextCentered(row+2, fmt.Sprintf("Apples collected: %d", c.score), core.ColorBrightYellow)

	var reason string
	switch c.endReason {
	case EndReasonCaught:
		reason = "You were caught."
	case EndReasonFinished:
		reason = fmt.Sprintf("You crossed all %d phases!", c.catalog.Len())
	}
	if reason != "" {
		dst.DrawTextCentered(row+3, reason, core.ColorWhite)
	}

	dst.DrawTextCentered(row+5, "Press R to play again", core.ColorGray)
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

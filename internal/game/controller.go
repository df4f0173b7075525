// Package game implements the platformer simulation: player physics,
// platform landing, item pickup, enemy patrols, phase progression and the
// start/playing/end state machine. It has no terminal or audio dependencies;
// the host drives it through Step, Render and the input handlers.
package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/phase"
)

// State is the controller's game flow state.
type State int

const (
	StateStart State = iota
	StatePlaying
	StateEnd
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateEnd:
		return "end"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// EndReason tells why the last run stopped.
type EndReason int

const (
	EndReasonNone     EndReason = iota
	EndReasonCaught             // Touched an enemy
	EndReasonFinished           // Walked off the last phase
)

// String returns a human-readable name for the reason.
func (r EndReason) String() string {
	switch r {
	case EndReasonCaught:
		return "caught"
	case EndReasonFinished:
		return "finished"
	default:
		return "none"
	}
}

// Snapshot is a read-only summary of the controller.
type Snapshot struct {
	State     State
	Score     int
	Phase     int // 0-based index of the loaded phase
	Phases    int // Number of phases in the catalog
	SoundOn   bool
	EndReason EndReason
}

// Button is a clickable start screen control, in world coordinates.
type Button struct {
	Label  string
	Rect   core.Rect
	Action core.Action
	Color  core.Color
}

// startButtons are the start screen controls, top to bottom.
var startButtons = []Button{
	{Label: "Start game", Rect: core.NewRect(Width/2-100, 200, 200, 50), Action: core.ActionStart, Color: core.ColorGreen},
	{Label: "Music ON/OFF", Rect: core.NewRect(Width/2-100, 300, 200, 50), Action: core.ActionToggleSound, Color: core.ColorBlue},
	{Label: "Exit", Rect: core.NewRect(Width/2-100, 400, 200, 50), Action: core.ActionExit, Color: core.ColorRed},
}

// Buttons returns the start screen controls.
func Buttons() []Button {
	out := make([]Button, len(startButtons))
	copy(out, startButtons)
	return out
}

// Option configures a Controller.
type Option func(*Controller)

// WithAudio sets the sound collaborator. Defaults to NopAudio.
func WithAudio(a Audio) Option {
	return func(c *Controller) {
		if a != nil {
			c.audio = a
		}
	}
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSound sets whether sound starts enabled. Defaults to true.
func WithSound(on bool) Option {
	return func(c *Controller) {
		c.soundOn = on
	}
}

// Controller owns one game session: the state machine, the score, the
// player and the loaded level. It is not safe for concurrent use; the host
// serializes Step, Render and the input handlers.
type Controller struct {
	catalog phase.Catalog

	state      State
	score      int
	phaseIndex int
	soundOn    bool
	endReason  EndReason
	exit       bool

	player *Player
	level  *Level

	audio  Audio
	logger *log.Logger
}

// New creates a controller on the start screen with phase 0 loaded.
// Panics if the catalog has no phases.
func New(cat phase.Catalog, opts ...Option) *Controller {
	c := &Controller{
		catalog: cat,
		state:   StateStart,
		soundOn: true,
		player:  NewPlayer(),
		audio:   NopAudio{},
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.loadPhase(0)
	return c
}

// Step advances the simulation by one frame.
func (c *Controller) Step(in core.InputFrame) Snapshot {
	switch c.state {
	case StateStart:
		if c.soundOn && !c.audio.IsMusicPlaying(MusicMenu) {
			c.audio.PlayMusic(MusicMenu)
		}

	case StatePlaying:
		c.updatePlayer(in)

		for _, e := range c.level.Enemies {
			e.Update()
		}

		// The player may already have finished the last phase this frame
		if c.state == StatePlaying {
			hitbox := c.player.Hitbox()
			for _, e := range c.level.Enemies {
				if core.Overlaps(hitbox, e.Hitbox()) {
					c.endRun(EndReasonCaught)
					break
				}
			}
		}
	}

	return c.Snapshot()
}

// updatePlayer runs the player's frame: movement, physics, pickups and the
// phase exit check.
func (c *Controller) updatePlayer(in core.InputFrame) {
	if c.player.Update(in, c.level.Platforms) && c.soundOn {
		c.audio.PlaySound(SoundJump, 1)
	}

	c.collectItems()

	if c.player.X > Width {
		c.advancePhase()
	}
}

// collectItems scores every active item the player touches.
func (c *Controller) collectItems() {
	hitbox := c.player.Hitbox()
	for _, it := range c.level.Items {
		if !it.Active || !core.Overlaps(hitbox, it.Hitbox()) {
			continue
		}
		if it.Collect() {
			c.score++
			if c.soundOn {
				c.audio.PlaySound(SoundShine, PickupVolume)
			}
			c.logger.Debug("item collected", "phase", c.phaseIndex, "score", c.score)
		}
	}
}

// advancePhase moves to the next phase, or ends the run after the last one.
func (c *Controller) advancePhase() {
	if c.phaseIndex+1 >= c.catalog.Len() {
		c.endRun(EndReasonFinished)
		return
	}

	c.phaseIndex++
	c.loadPhase(c.phaseIndex)
	c.player.Place(ReentryX, GroundY)
}

// loadPhase swaps in a freshly built level.
func (c *Controller) loadPhase(index int) {
	lvl := LoadLevel(c.catalog, index)
	c.level = lvl
	c.logger.Debug("phase loaded",
		"pack", c.catalog.Name,
		"phase", index,
		"platforms", len(lvl.Platforms),
		"items", len(lvl.Items),
		"enemies", len(lvl.Enemies),
	)
}

// endRun switches to the end screen. Only the first call per run has effect.
func (c *Controller) endRun(reason EndReason) {
	if c.state != StatePlaying {
		return
	}

	c.endReason = reason
	c.setState(StateEnd)

	if c.soundOn && !c.audio.IsMusicPlaying(MusicEnd) {
		c.audio.PlayMusic(MusicEnd)
	}
}

// setState records a state transition.
func (c *Controller) setState(s State) {
	c.logger.Info("state changed",
		"from", c.state,
		"to", s,
		"score", c.score,
		"phase", c.phaseIndex,
	)
	c.state = s
}

// HandleAction applies a discrete input event between frames.
// Reports whether the action had any effect in the current state.
func (c *Controller) HandleAction(a core.Action) bool {
	switch c.state {
	case StateStart:
		switch a {
		case core.ActionStart:
			c.setState(StatePlaying)
			if c.soundOn {
				c.audio.StopMusic()
			}
			return true
		case core.ActionToggleSound:
			c.soundOn = !c.soundOn
			c.audio.StopMusic()
			c.logger.Info("sound toggled", "enabled", c.soundOn)
			return true
		case core.ActionExit:
			c.exit = true
			c.logger.Info("exit requested")
			return true
		}

	case StateEnd:
		if a == core.ActionReset {
			c.Reset()
			return true
		}
	}
	return false
}

// HandleClick applies a mouse click at world coordinates (x, y).
// Only the start screen buttons react to clicks.
func (c *Controller) HandleClick(x, y float64) bool {
	if c.state != StateStart {
		return false
	}
	for _, b := range startButtons {
		if b.Rect.Contains(x, y) {
			return c.HandleAction(b.Action)
		}
	}
	return false
}

// Reset starts a new run from phase 0.
func (c *Controller) Reset() {
	c.phaseIndex = 0
	c.score = 0
	c.endReason = EndReasonNone
	c.setState(StatePlaying)
	c.loadPhase(0)
	c.player.Place(ReentryX, GroundY)

	if c.soundOn {
		c.audio.StopMusic()
	}
}

// Snapshot returns a summary of the current state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		State:     c.state,
		Score:     c.score,
		Phase:     c.phaseIndex,
		Phases:    c.catalog.Len(),
		SoundOn:   c.soundOn,
		EndReason: c.endReason,
	}
}

// State returns the current game flow state.
func (c *Controller) State() State {
	return c.state
}

// Score returns the number of items collected in this run.
func (c *Controller) Score() int {
	return c.score
}

// SoundOn reports whether sound is enabled.
func (c *Controller) SoundOn() bool {
	return c.soundOn
}

// PlayerPos returns the player's center in world coordinates.
func (c *Controller) PlayerPos() (x, y float64) {
	return c.player.X, c.player.Y
}

// ExitRequested reports whether the user chose Exit on the start screen.
func (c *Controller) ExitRequested() bool {
	return c.exit
}

// Catalog returns the phases this controller plays.
func (c *Controller) Catalog() phase.Catalog {
	return c.catalog
}

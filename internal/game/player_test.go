package game

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/phase"
)

var testPlatform = core.NewRect(300, 450, 200, 20)

func TestPlayerStartsOnGround(t *testing.T) {
	p := NewPlayer()

	if p.X != StartX || p.Y != GroundY {
		t.Errorf("start position = (%v, %v), want (%v, %v)", p.X, p.Y, StartX, GroundY)
	}
	if p.W != 32 || p.H != 48 {
		t.Errorf("scaled size = %vx%v, want 32x48", p.W, p.H)
	}
	if p.Jumping {
		t.Error("player should not start airborne")
	}
}

func TestPlayerGravity(t *testing.T) {
	p := NewPlayer()
	p.Place(400, 300)

	p.Update(core.NewInputFrame(), nil)

	if p.VelY != Gravity {
		t.Errorf("VelY = %v, want %v", p.VelY, Gravity)
	}
	if p.Y != 300+Gravity {
		t.Errorf("Y = %v, want %v", p.Y, 300+Gravity)
	}
	if !p.Jumping {
		t.Error("player above ground without support should be airborne")
	}
}

func TestPlayerGroundClamp(t *testing.T) {
	p := NewPlayer()
	for i := 0; i < 10; i++ {
		p.Update(core.NewInputFrame(), nil)
		if p.Y != GroundY || p.VelY != 0 || p.Jumping {
			t.Fatalf("frame %d: Y=%v VelY=%v Jumping=%v, want resting on ground",
				i, p.Y, p.VelY, p.Jumping)
		}
	}
}

func TestPlayerJump(t *testing.T) {
	p := NewPlayer()
	jump := core.InputOf(core.ActionJump)

	if !p.Update(jump, nil) {
		t.Fatal("jump from the ground should start")
	}
	wantVel := -JumpStrength + Gravity
	if p.VelY != wantVel {
		t.Errorf("VelY = %v, want %v", p.VelY, wantVel)
	}
	if p.Y != GroundY+wantVel {
		t.Errorf("Y = %v, want %v", p.Y, GroundY+wantVel)
	}

	// Holding jump in the air must not jump again
	if p.Update(jump, nil) {
		t.Error("jump started while airborne")
	}
}

func TestPlayerLanding(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		velY     float64
		wantLand bool
		wantY    float64
	}{
		// After one frame the bottom is y + velY + Gravity + 48
		{"falling into band", 400, 400, 5, true, 402},
		{"bottom exactly on top", 400, 401.5, 0, true, 402},
		{"bottom at band end", 400, 421.5, 0, false, 422},
		{"rising through band", 400, 420, -5, false, 415.5},
		{"beside platform", 250, 400, 5, false, 405.5},
		{"overlapping left edge", 290, 400, 5, true, 402},
		{"overlapping right edge", 510, 400, 5, true, 402},
		{"touching right edge", 516, 400, 5, false, 405.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer()
			p.Place(tt.x, tt.y)
			p.VelY = tt.velY

			p.Update(core.NewInputFrame(), []core.Rect{testPlatform})

			if p.Y != tt.wantY {
				t.Errorf("Y = %v, want %v", p.Y, tt.wantY)
			}
			if tt.wantLand {
				if p.VelY != 0 || p.Jumping {
					t.Errorf("landed player has VelY=%v Jumping=%v", p.VelY, p.Jumping)
				}
			} else if !p.Jumping {
				t.Error("player without support should be airborne")
			}
		})
	}
}

func TestPlayerStandsOnPlatform(t *testing.T) {
	p := NewPlayer()
	p.Place(400, testPlatform.Top()-p.H)
	platforms := []core.Rect{testPlatform}

	for i := 0; i < 120; i++ {
		p.Update(core.NewInputFrame(), platforms)
	}

	if p.Y != testPlatform.Top()-p.H {
		t.Errorf("Y = %v, want %v", p.Y, testPlatform.Top()-p.H)
	}
	if p.Jumping {
		t.Error("player resting on a platform should not be airborne")
	}
}

func TestPlayerFirstPlatformWins(t *testing.T) {
	lower := core.NewRect(300, 460, 200, 20)
	upper := core.NewRect(300, 450, 200, 20)

	p := NewPlayer()
	p.Place(400, 410)
	p.VelY = 5
	// Bottom ends at 463.5: inside both bands
	p.Update(core.NewInputFrame(), []core.Rect{lower, upper})

	if want := lower.Top() - p.H; p.Y != want {
		t.Errorf("Y = %v, want %v (first listed platform)", p.Y, want)
	}
}

func TestPlayerMovement(t *testing.T) {
	tests := []struct {
		name       string
		in         core.InputFrame
		wantX      float64
		wantMoving bool
		wantLeft   bool
	}{
		{"idle", core.NewInputFrame(), 400, false, false},
		{"left", core.InputOf(core.ActionLeft), 400 - PlayerSpeed, true, true},
		{"right", core.InputOf(core.ActionRight), 400 + PlayerSpeed, true, false},
		{"both", core.InputOf(core.ActionLeft, core.ActionRight), 400 - PlayerSpeed, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer()
			p.Place(400, GroundY)

			p.Update(tt.in, nil)

			if p.X != tt.wantX {
				t.Errorf("X = %v, want %v", p.X, tt.wantX)
			}
			if p.Moving != tt.wantMoving {
				t.Errorf("Moving = %v, want %v", p.Moving, tt.wantMoving)
			}
			if p.FacingLeft != tt.wantLeft {
				t.Errorf("FacingLeft = %v, want %v", p.FacingLeft, tt.wantLeft)
			}
		})
	}
}

func TestPlayerAnimation(t *testing.T) {
	p := NewPlayer()
	right := core.InputOf(core.ActionRight)

	for i := 0; i < int(animationFrames)-1; i++ {
		p.Update(right, nil)
	}
	if p.Sprite() != SpriteIdle1 {
		t.Fatalf("sprite changed early: %v", p.Sprite())
	}

	p.Update(right, nil)
	if p.Sprite() != SpriteRun2 {
		t.Errorf("sprite = %v, want %v", p.Sprite(), SpriteRun2)
	}
	// run2 is 68x94 natively, but the size stays derived from idle1
	if p.W != 32 || p.H != 48 {
		t.Errorf("scaled size = %vx%v, want 32x48", p.W, p.H)
	}
	// Hitbox keeps the reference size
	if hb := p.Hitbox(); hb.W != 32 || hb.H != 48 {
		t.Errorf("hitbox = %vx%v, want 32x48", hb.W, hb.H)
	}
}

func TestPlayerJumpSprite(t *testing.T) {
	p := NewPlayer()
	p.FacingLeft = true
	p.Place(400, 100)

	for i := 0; i < int(animationFrames); i++ {
		p.Update(core.NewInputFrame(), nil)
	}

	if p.Pose() != PoseJump {
		t.Fatalf("pose = %v, want jump", p.Pose())
	}
	if p.Sprite() != SpriteJumpLeft {
		t.Errorf("sprite = %v, want %v", p.Sprite(), SpriteJumpLeft)
	}
}

func TestPlayerSpriteLookup(t *testing.T) {
	tests := []struct {
		pose   Pose
		facing Facing
		frame  int
		want   SpriteID
	}{
		{PoseIdle, FacingRight, 0, SpriteIdle1},
		{PoseIdle, FacingRight, 1, SpriteIdle2},
		{PoseIdle, FacingLeft, 3, SpriteIdle2Left},
		{PoseRun, FacingRight, 2, SpriteRun3},
		{PoseRun, FacingLeft, 4, SpriteRun2Left},
		{PoseJump, FacingRight, 5, SpriteJump},
		{PoseJump, FacingLeft, 0, SpriteJumpLeft},
	}

	for _, tt := range tests {
		if got := PlayerSprite(tt.pose, tt.facing, tt.frame); got != tt.want {
			t.Errorf("PlayerSprite(%v, %d, %d) = %v, want %v",
				tt.pose, tt.facing, tt.frame, got, tt.want)
		}
	}
}

func TestItemPlacementAndCollect(t *testing.T) {
	it := NewItem(phase.Spawn{X: 400, Y: 450})

	if it.X != 400 || it.Y != 430 {
		t.Errorf("item center = (%v, %v), want (400, 430)", it.X, it.Y)
	}
	if !it.Collect() {
		t.Error("first Collect should report true")
	}
	if it.Collect() {
		t.Error("second Collect should report false")
	}
	if it.Active {
		t.Error("collected item is still active")
	}
}

func TestEnemyPatrolPeriod(t *testing.T) {
	e := NewEnemy(phase.Spawn{X: 350, Y: 450})

	if e.Y != 430 || e.Dir != 1 {
		t.Fatalf("enemy = (y %v, dir %v), want (430, 1)", e.Y, e.Dir)
	}

	// The turn happens one step past the range on each side
	period := int(4 * (EnemyRange/EnemySpeed + 1))
	for i := 1; i <= period; i++ {
		e.Update()
		if d := core.AbsF(e.X - e.OriginX); d > EnemyRange+EnemySpeed {
			t.Fatalf("step %d: enemy %v from origin, limit %v", i, d, EnemyRange+EnemySpeed)
		}
		back := e.X == e.OriginX && e.Dir == 1
		if back != (i == period) {
			t.Fatalf("step %d: back at start = %v", i, back)
		}
	}
}

func TestEnemyAnimation(t *testing.T) {
	e := NewEnemy(phase.Spawn{X: 350, Y: 450})
	for i := 0; i < int(animationFrames); i++ {
		e.Update()
	}
	if e.Sprite() != SpriteEnemy2 {
		t.Errorf("sprite = %v, want %v", e.Sprite(), SpriteEnemy2)
	}
}

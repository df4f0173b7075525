package game

// Pose is what the player is doing, for sprite selection.
type Pose int

const (
	PoseIdle Pose = iota
	PoseRun
	PoseJump
)

// String returns the pose name.
func (p Pose) String() string {
	switch p {
	case PoseIdle:
		return "idle"
	case PoseRun:
		return "run"
	case PoseJump:
		return "jump"
	default:
		return "unknown"
	}
}

// Facing is the horizontal direction the player looks at.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// SpriteID identifies one image asset.
type SpriteID int

const (
	SpriteIdle1 SpriteID = iota
	SpriteIdle2
	SpriteRun1
	SpriteRun2
	SpriteRun3
	SpriteJump
	SpriteIdle1Left
	SpriteIdle2Left
	SpriteRun1Left
	SpriteRun2Left
	SpriteRun3Left
	SpriteJumpLeft
	SpriteItem
	SpriteEnemy1
	SpriteEnemy2
	spriteCount
)

// SpriteInfo describes an image asset.
type SpriteInfo struct {
	Name string  // Asset identifier used by graphical hosts
	W, H float64 // Native size in world pixels
}

var sprites = [spriteCount]SpriteInfo{
	SpriteIdle1:     {"idle1", 64, 96},
	SpriteIdle2:     {"idle2", 64, 96},
	SpriteRun1:      {"run1", 68, 96},
	SpriteRun2:      {"run2", 68, 94},
	SpriteRun3:      {"run3", 68, 96},
	SpriteJump:      {"jump", 72, 100},
	SpriteIdle1Left: {"idle1_left", 64, 96},
	SpriteIdle2Left: {"idle2_left", 64, 96},
	SpriteRun1Left:  {"run1_left", 68, 96},
	SpriteRun2Left:  {"run2_left", 68, 94},
	SpriteRun3Left:  {"run3_left", 68, 96},
	SpriteJumpLeft:  {"jump_left", 72, 100},
	SpriteItem:      {"item", 30, 30},
	SpriteEnemy1:    {"enemy1", 48, 40},
	SpriteEnemy2:    {"enemy2", 48, 40},
}

// Info returns the asset description of a sprite.
func (s SpriteID) Info() SpriteInfo {
	return sprites[s]
}

// String returns the asset identifier.
func (s SpriteID) String() string {
	if s < 0 || s >= spriteCount {
		return "unknown"
	}
	return sprites[s].Name
}

// playerSprites lists the animation sequence for every pose and facing.
var playerSprites = [3][2][]SpriteID{
	PoseIdle: {
		FacingRight: {SpriteIdle1, SpriteIdle2},
		FacingLeft:  {SpriteIdle1Left, SpriteIdle2Left},
	},
	PoseRun: {
		FacingRight: {SpriteRun1, SpriteRun2, SpriteRun3},
		FacingLeft:  {SpriteRun1Left, SpriteRun2Left, SpriteRun3Left},
	},
	PoseJump: {
		FacingRight: {SpriteJump},
		FacingLeft:  {SpriteJumpLeft},
	},
}

// PoseFrames returns how many animation frames a pose cycles through.
func PoseFrames(p Pose) int {
	return len(playerSprites[p][FacingRight])
}

// PlayerSprite resolves a pose, facing and animation frame to a sprite.
// The frame wraps around the pose's sequence.
func PlayerSprite(p Pose, f Facing, frame int) SpriteID {
	seq := playerSprites[p][f]
	return seq[frame%len(seq)]
}

var enemySprites = []SpriteID{SpriteEnemy1, SpriteEnemy2}

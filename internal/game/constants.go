package game

// World and physics constants. Units are world pixels and frames.
const (
	Width  = 800.0 // World width
	Height = 600.0 // World height

	Gravity      = 0.5   // Added to vertical velocity every frame
	JumpStrength = 12.0  // Upward velocity applied by a jump
	GroundY      = 500.0 // Player center never goes below this line
	PlayerSpeed  = 5.0   // Horizontal movement per frame
	ScaleFactor  = 0.5   // Player sprites are drawn at half their native size
	LandingBand  = 20.0  // Thickness of the platform landing zone below its top

	EnemySpeed = 1.0  // Patrol movement per frame
	EnemyRange = 60.0 // Maximum distance from the spawn point before turning

	ItemLift     = 5.0 // Items float this far above their anchor
	PickupVolume = 0.3 // Volume of the pickup sound

	AnimationSpeed = 0.3 // Seconds per animation frame
	FrameRate      = 60  // Reference tick rate the animation timing assumes
)

// animationFrames is the number of ticks between animation frames.
const animationFrames = AnimationSpeed * FrameRate

// Player placement.
const (
	StartX   = Width / 6 // Where the player stands when the program starts
	ReentryX = Width / 5 // Where the player reappears after a phase change or reset
)

package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render/update layer the arena uses.
const Default ecs.LayerID = 0

// Config holds host-level settings
type Config struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TickRate  int    `yaml:"tickRate"`
	ArenaPath string `yaml:"arenaPath"`
	Seed      int64  `yaml:"seed"`
	// Metres to screen pixels in the top-down debug view.
	PixelsPerMeter float64 `yaml:"pixelsPerMeter"`
}

// PlayerConfig contains the player body dimensions and vitals
type PlayerConfig struct {
	Height float64 `yaml:"height"`
	Radius float64 `yaml:"radius"`
	Mass   float64 `yaml:"mass"`
	Health float64 `yaml:"health"`

	// Seconds of invulnerability after taking a hit
	InvulnTime float64 `yaml:"invulnTime"`

	// Eye height above the body centre.
	CameraHeight float64 `yaml:"cameraHeight"`
	// Hold point offset from the eye along the look direction.
	HoldDistance float64 `yaml:"holdDistance"`
	HoldDrop     float64 `yaml:"holdDrop"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`
	// Speed below which a launched object counts as resting.
	RestSpeed float64 `yaml:"restSpeed"`
	// Extra reach of contact checks beyond touching.
	ContactSkin float64 `yaml:"contactSkin"`
	// Broadphase grid cell, in metres.
	CellSize float64 `yaml:"cellSize"`
	// Bodies falling below this height are out of the arena.
	KillPlaneY float64 `yaml:"killPlaneY"`
}

// MovementConfig tunes the locomotion state machine
type MovementConfig struct {
	WalkSpeed      float64 `yaml:"walkSpeed"`
	SprintSpeed    float64 `yaml:"sprintSpeed"`
	SlideSpeed     float64 `yaml:"slideSpeed"`
	WallRunSpeed   float64 `yaml:"wallRunSpeed"`
	ClimbSpeed     float64 `yaml:"climbSpeed"`
	VaultSpeed     float64 `yaml:"vaultSpeed"`
	AirMinSpeed    float64 `yaml:"airMinSpeed"`
	CrouchSpeed    float64 `yaml:"crouchSpeed"`
	UnlimitedSpeed float64 `yaml:"unlimitedSpeed"`

	SpeedIncreaseMultiplier float64 `yaml:"speedIncreaseMultiplier"`
	SlopeIncreaseMultiplier float64 `yaml:"slopeIncreaseMultiplier"`
	// Desired speed deltas below this snap without a ramp.
	SpeedChangeEpsilon float64 `yaml:"speedChangeEpsilon"`
	// Momentum is dropped once current speed is this close to desired.
	MomentumEpsilon float64 `yaml:"momentumEpsilon"`

	GroundDrag    float64 `yaml:"groundDrag"`
	JumpForce     float64 `yaml:"jumpForce"`
	JumpCooldown  float64 `yaml:"jumpCooldown"`
	AirMultiplier float64 `yaml:"airMultiplier"`

	CrouchYScale  float64 `yaml:"crouchYScale"`
	CrouchImpulse float64 `yaml:"crouchImpulse"`

	MaxSlopeAngle    float64 `yaml:"maxSlopeAngle"`
	GroundProbeExtra float64 `yaml:"groundProbeExtra"`

	GroundForce       float64 `yaml:"groundForce"`
	SlopeForce        float64 `yaml:"slopeForce"`
	SlopeDownForce    float64 `yaml:"slopeDownForce"`
	SlopeUpVelocityEp float64 `yaml:"slopeUpVelocityEpsilon"`
}

// ClimbConfig tunes wall climbing
type ClimbConfig struct {
	ClimbSpeed        float64 `yaml:"climbSpeed"`
	MaxClimbTime      float64 `yaml:"maxClimbTime"`
	JumpUpForce       float64 `yaml:"jumpUpForce"`
	JumpBackForce     float64 `yaml:"jumpBackForce"`
	ClimbJumps        int     `yaml:"climbJumps"`
	ExitWallTime      float64 `yaml:"exitWallTime"`
	DetectionLength   float64 `yaml:"detectionLength"`
	SphereCastRadius  float64 `yaml:"sphereCastRadius"`
	MaxWallLookAngle  float64 `yaml:"maxWallLookAngle"`
	MinWallNormalDiff float64 `yaml:"minWallNormalDiff"`
}

// WallRunConfig tunes wall running
type WallRunConfig struct {
	WallRunForce        float64 `yaml:"wallRunForce"`
	WallJumpUpForce     float64 `yaml:"wallJumpUpForce"`
	WallJumpSideForce   float64 `yaml:"wallJumpSideForce"`
	WallClimbSpeed      float64 `yaml:"wallClimbSpeed"`
	MaxWallRunTime      float64 `yaml:"maxWallRunTime"`
	WallPushForce       float64 `yaml:"wallPushForce"`
	UseGravity          bool    `yaml:"useGravity"`
	GravityCounterForce float64 `yaml:"gravityCounterForce"`
	WallCheckDistance   float64 `yaml:"wallCheckDistance"`
	MinJumpHeight       float64 `yaml:"minJumpHeight"`
	ExitWallTime        float64 `yaml:"exitWallTime"`
}

// SlideConfig tunes sliding
type SlideConfig struct {
	MaxSlideTime  float64 `yaml:"maxSlideTime"`
	SlideForce    float64 `yaml:"slideForce"`
	SlideYScale   float64 `yaml:"slideYScale"`
	SlideImpulse  float64 `yaml:"slideImpulse"`
	DownhillSpeed float64 `yaml:"downhillSpeed"`
}

// VacuumConfig tunes the vacuum gun. Values are copied into each gun at
// spawn so upgrades only affect that gun.
type VacuumConfig struct {
	Range                  float64 `yaml:"range"`
	Radius                 float64 `yaml:"radius"`
	MaxObjects             int     `yaml:"maxObjects"`
	AttractionDistance     float64 `yaml:"attractionDistance"`
	ShootForce             float64 `yaml:"shootForce"`
	ShootInterval          float64 `yaml:"shootInterval"`
	MinShootInterval       float64 `yaml:"minShootInterval"`
	CollisionReenableDelay float64 `yaml:"collisionReenableDelay"`
	ReferenceMass          float64 `yaml:"referenceMass"`
	SpreadCount            int     `yaml:"spreadCount"`
	SpreadAngle            float64 `yaml:"spreadAngle"`
	Damage                 float64 `yaml:"damage"`
}

// VacuumedObjectConfig tunes the per-object pull and launch behaviour
type VacuumedObjectConfig struct {
	MinScale            float64 `yaml:"minScale"`
	ScaleReturnDuration float64 `yaml:"scaleReturnDuration"`
	PullForce           float64 `yaml:"pullForce"`
	PullDrag            float64 `yaml:"pullDrag"`
	// Upper bound on pull duration before the pull is abandoned.
	MaxPullTime float64 `yaml:"maxPullTime"`
}

// StyleRank is one rung of the style ladder
type StyleRank struct {
	Name       string  `yaml:"name"`
	Multiplier float64 `yaml:"multiplier"`
}

// StyleConfig tunes the style score engine
type StyleConfig struct {
	PointsPerHit     float64     `yaml:"pointsPerHit"`
	PointsPerKill    float64     `yaml:"pointsPerKill"`
	PointsPerSlide   float64     `yaml:"pointsPerSlide"`
	PointsPerVacuum  float64     `yaml:"pointsPerVacuum"`
	DecayDelay       float64     `yaml:"decayDelay"`
	DecaySpeed       float64     `yaml:"decaySpeed"`
	PointsToNextRank float64     `yaml:"pointsToNextRank"`
	Ranks            []StyleRank `yaml:"ranks"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name             string    `yaml:"name"`
	Kind             EnemyKind `yaml:"kind"`
	Health           float64   `yaml:"health"`
	Mass             float64   `yaml:"mass"`
	Radius           float64   `yaml:"radius"`
	Height           float64   `yaml:"height"`
	Speed            float64   `yaml:"speed"`
	StoppingDistance float64   `yaml:"stoppingDistance"`
	AttackRange      float64   `yaml:"attackRange"`
	AttackCooldown   float64   `yaml:"attackCooldown"`
	Damage           float64   `yaml:"damage"`
	Knockback        float64   `yaml:"knockback"`
	StunDuration     float64   `yaml:"stunDuration"`
	// Flying enemies only
	WanderRadius float64 `yaml:"wanderRadius"`
	MinAltitude  float64 `yaml:"minAltitude"`
	MaxAltitude  float64 `yaml:"maxAltitude"`

	TintColor color.RGBA `yaml:"-"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types         map[string]EnemyTypeConfig `yaml:"types"`
	DespawnDelay  float64                    `yaml:"despawnDelay"`
	SpawnInTime   float64                    `yaml:"spawnInTime"`
	ArrivalMargin float64                    `yaml:"arrivalMargin"`
}

// UpgradeWeight pairs an upgrade type with its spawn weight and amount
type UpgradeWeight struct {
	Type   UpgradeType `yaml:"type"`
	Weight int         `yaml:"weight"`
	Amount float64     `yaml:"amount"`
}

// UpgradesConfig tunes upgrade pickups
type UpgradesConfig struct {
	PerWave      int             `yaml:"perWave"`
	PickupRadius float64         `yaml:"pickupRadius"`
	BobHeight    float64         `yaml:"bobHeight"`
	BobPeriod    float64         `yaml:"bobPeriod"`
	Table        []UpgradeWeight `yaml:"table"`
}

// PropConfig tunes the props scattered by prop zones
type PropConfig struct {
	Mass        float64 `yaml:"mass"`
	Size        float64 `yaml:"size"`
	Drag        float64 `yaml:"drag"`
	MaxAttempts int     `yaml:"maxAttempts"`
}

// CameraConfig tunes the debug view camera and hit feedback
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"followSmoothing"`
	ShakeIntensity  float64 `yaml:"shakeIntensity"`
	ShakeDuration   float64 `yaml:"shakeDuration"`
	FlashDuration   float64 `yaml:"flashDuration"`
}

// TimeConfig tunes the simulation clock
type TimeConfig struct {
	FixedDelta float64 `yaml:"fixedDelta"`
	TimeScale  float64 `yaml:"timeScale"`
}

// Color constants for the debug view
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	Purple       = color.RGBA{R: 160, G: 80, B: 220, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 150}
)

var (
	C              *Config
	Player         PlayerConfig
	Physics        PhysicsConfig
	Movement       MovementConfig
	Climb          ClimbConfig
	WallRun        WallRunConfig
	Slide          SlideConfig
	Vacuum         VacuumConfig
	VacuumedObject VacuumedObjectConfig
	Style          StyleConfig
	Enemy          EnemyConfig
	Upgrades       UpgradesConfig
	Prop           PropConfig
	Time           TimeConfig
	Camera         CameraConfig
)

func init() {
	C = &Config{
		Width:          960,
		Height:         720,
		TickRate:       60,
		ArenaPath:      "levels/arena.tmx",
		PixelsPerMeter: 16,
	}

	Player = PlayerConfig{
		Height:       1.85,
		Radius:       0.4,
		Mass:         1,
		Health:       100,
		InvulnTime:   0.5,
		CameraHeight: 0.65,
		HoldDistance: 1.2,
		HoldDrop:     0.3,
	}

	Physics = PhysicsConfig{
		Gravity:      -9.81,
		MaxFallSpeed: 50,
		RestSpeed:    0.5,
		ContactSkin:  0.05,
		CellSize:     4,
		KillPlaneY:   -20,
	}

	Movement = MovementConfig{
		WalkSpeed:      7,
		SprintSpeed:    10,
		SlideSpeed:     30,
		WallRunSpeed:   30,
		ClimbSpeed:     3,
		VaultSpeed:     15,
		AirMinSpeed:    7,
		CrouchSpeed:    3.5,
		UnlimitedSpeed: 999,

		SpeedIncreaseMultiplier: 1.5,
		SlopeIncreaseMultiplier: 2.5,
		SpeedChangeEpsilon:      0.01,
		MomentumEpsilon:         0.1,

		GroundDrag:    5,
		JumpForce:     6,
		JumpCooldown:  0.25,
		AirMultiplier: 0.4,

		CrouchYScale:  0.5,
		CrouchImpulse: 5,

		MaxSlopeAngle:    40,
		GroundProbeExtra: 0.3,

		GroundForce:       10,
		SlopeForce:        20,
		SlopeDownForce:    80,
		SlopeUpVelocityEp: 0.1,
	}

	Climb = ClimbConfig{
		ClimbSpeed:        10,
		MaxClimbTime:      0.75,
		JumpUpForce:       14,
		JumpBackForce:     12,
		ClimbJumps:        1,
		ExitWallTime:      0.2,
		DetectionLength:   0.7,
		SphereCastRadius:  0.25,
		MaxWallLookAngle:  30,
		MinWallNormalDiff: 5,
	}

	WallRun = WallRunConfig{
		WallRunForce:        200,
		WallJumpUpForce:     7,
		WallJumpSideForce:   12,
		WallClimbSpeed:      3,
		MaxWallRunTime:      0.7,
		WallPushForce:       100,
		UseGravity:          false,
		GravityCounterForce: 27,
		WallCheckDistance:   0.7,
		MinJumpHeight:       2,
		ExitWallTime:        0.2,
	}

	Slide = SlideConfig{
		MaxSlideTime:  0.75,
		SlideForce:    200,
		SlideYScale:   0.5,
		SlideImpulse:  100,
		DownhillSpeed: -0.1,
	}

	Vacuum = VacuumConfig{
		Range:                  10,
		Radius:                 0.5,
		MaxObjects:             7,
		AttractionDistance:     0.25,
		ShootForce:             50,
		ShootInterval:          0.2,
		MinShootInterval:       0.025,
		CollisionReenableDelay: 0.5,
		ReferenceMass:          1,
		SpreadCount:            3,
		SpreadAngle:            15,
		Damage:                 10,
	}

	VacuumedObject = VacuumedObjectConfig{
		MinScale:            0.1,
		ScaleReturnDuration: 0.1,
		PullForce:           50,
		PullDrag:            6,
		MaxPullTime:         3,
	}

	Style = StyleConfig{
		PointsPerHit:     10,
		PointsPerKill:    50,
		PointsPerSlide:   5,
		PointsPerVacuum:  2,
		DecayDelay:       3,
		DecaySpeed:       0.5,
		PointsToNextRank: 100,
		Ranks: []StyleRank{
			{Name: "C", Multiplier: 1},
			{Name: "B", Multiplier: 1.5},
			{Name: "A", Multiplier: 1.75},
			{Name: "S", Multiplier: 2},
			{Name: "BadASS", Multiplier: 2.51},
		},
	}

	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"Grunt": {
				Name:             "Grunt",
				Kind:             EnemyGround,
				Health:           30,
				Mass:             2,
				Radius:           0.45,
				Height:           1.8,
				Speed:            3.5,
				StoppingDistance: 1.2,
				AttackRange:      1.6,
				AttackCooldown:   1.2,
				Damage:           10,
				Knockback:        4,
				StunDuration:     0.5,
				TintColor:        LightRed,
			},
			"Brute": {
				Name:             "Brute",
				Kind:             EnemyGround,
				Health:           80,
				Mass:             5,
				Radius:           0.7,
				Height:           2.4,
				Speed:            2,
				StoppingDistance: 1.6,
				AttackRange:      2.1,
				AttackCooldown:   2,
				Damage:           25,
				Knockback:        8,
				StunDuration:     0.3,
				TintColor:        Orange,
			},
			"Drone": {
				Name:           "Drone",
				Kind:           EnemyFlying,
				Health:         20,
				Mass:           1,
				Radius:         0.4,
				Height:         0.8,
				Speed:          4,
				AttackRange:    2.5,
				AttackCooldown: 1.5,
				Damage:         5,
				Knockback:      2,
				WanderRadius:   6,
				MinAltitude:    2.5,
				MaxAltitude:    5,
				TintColor:      Purple,
			},
		},
		DespawnDelay:  3,
		SpawnInTime:   0.35,
		ArrivalMargin: 0.3,
	}

	Upgrades = UpgradesConfig{
		PerWave:      1,
		PickupRadius: 1,
		BobHeight:    0.25,
		BobPeriod:    1.2,
		Table: []UpgradeWeight{
			{Type: UpgradeHeal, Weight: 30, Amount: 10},
			{Type: UpgradeClipCapacity, Weight: 25, Amount: 1},
			{Type: UpgradeDamage, Weight: 25, Amount: 1},
			{Type: UpgradeShootForce, Weight: 20, Amount: 5},
			{Type: UpgradeShootInterval, Weight: 15, Amount: 0.02},
			{Type: UpgradeRange, Weight: 10, Amount: 2},
			{Type: UpgradeRadius, Weight: 10, Amount: 0.25},
		},
	}

	Prop = PropConfig{
		Mass:        1,
		Size:        0.5,
		Drag:        0.5,
		MaxAttempts: 30,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
		ShakeIntensity:  0.3,
		ShakeDuration:   0.25,
		FlashDuration:   0.12,
	}

	Time = TimeConfig{
		FixedDelta: 1.0 / 60.0,
		TimeScale:  1,
	}
}

package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the ECS layer all entities and renderers live on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement. MoveSpeed is an acceleration in px/s^2; Friction is a
	// per-frame velocity multiplier; MaxSpeed clamps velocity.x.
	MoveSpeed     float64
	RunMultiplier float64
	Friction      float64
	MaxSpeed      float64
	JumpPower     float64
	Gravity       float64

	// Damage
	InvulnSeconds float64
	KnockbackX    float64
	KnockbackY    float64

	// Lives
	StartingLives int
	MaxLives      int

	// Respawn
	SpawnX        float64
	SpawnY        float64
	FallOutMargin float64 // past level height + margin triggers respawn
	StompBounce   float64 // upward velocity after stomping an enemy

	// Dimensions
	Width  float64
	Height float64

	// Shrunk dimensions under the size power-up
	ShrunkWidth  float64
	ShrunkHeight float64

	// Power-up tuning
	PowerUpSeconds  float64
	SpeedMultiplier float64
	JumpMultiplier  float64
}

// EnemyKind identifies an enemy variant.
type EnemyKind int

const (
	EnemyGoomba EnemyKind = iota
	EnemyKoopa
	EnemySpiky
	EnemyFlying
	EnemyKindCount
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyGoomba:
		return "goomba"
	case EnemyKoopa:
		return "koopa"
	case EnemySpiky:
		return "spiky"
	case EnemyFlying:
		return "flying"
	}
	return "unknown"
}

// EnemyTypeConfig contains configuration for a specific enemy kind
type EnemyTypeConfig struct {
	Kind   EnemyKind
	Speed  float64
	Health int
	Width  float64
	Height float64
	Color  color.RGBA

	// Flying bob motion
	BobAmplitude float64
	BobFrequency float64
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types   map[EnemyKind]EnemyTypeConfig
	Gravity float64

	// Kinds become eligible for generation at their unlock level.
	UnlockLevel map[EnemyKind]int
}

// PlatformKind identifies a platform variant.
type PlatformKind int

const (
	PlatformGround PlatformKind = iota
	PlatformFloating
	PlatformMoving
	PlatformBreakable
)

// PlatformConfig contains platform tuning values
type PlatformConfig struct {
	GroundTileWidth float64
	FloorHeight     float64
	FloatingWidth   float64
	FloatingHeight  float64
	MovingWidth     float64
	MovingHeight    float64
	MovingRange     float64 // horizontal travel each direction from the anchor
	MovingPeriod    float64 // seconds for a full out-and-back cycle
	CrumbleSeconds  float64 // delay between landing on a breakable and removal
}

// CollectibleKind identifies a collectible variant.
type CollectibleKind int

const (
	CollectibleCoin CollectibleKind = iota
	CollectibleGem
	CollectibleStar
	CollectibleKindCount
)

func (k CollectibleKind) String() string {
	switch k {
	case CollectibleCoin:
		return "coin"
	case CollectibleGem:
		return "gem"
	case CollectibleStar:
		return "star"
	}
	return "unknown"
}

// CollectibleTypeConfig contains per-kind collectible values
type CollectibleTypeConfig struct {
	Kind  CollectibleKind
	Value int
	Size  float64
	Color color.RGBA

	BobAmplitude float64
	BobFrequency float64
	SpinSpeed    float64 // radians per second
}

// PowerUpKind identifies a power-up variant.
type PowerUpKind int

const (
	PowerUpSpeed PowerUpKind = iota
	PowerUpJump
	PowerUpSize
	PowerUpInvincible
	PowerUpKindCount
)

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeed:
		return "speed"
	case PowerUpJump:
		return "jump"
	case PowerUpSize:
		return "size"
	case PowerUpInvincible:
		return "invincible"
	}
	return "unknown"
}

// PowerUpTypeConfig contains per-kind power-up values
type PowerUpTypeConfig struct {
	Kind  PowerUpKind
	Value int // score awarded on pickup
	Size  float64
	Color color.RGBA
}

// Theme is a two-color vertical gradient for the level background.
type Theme struct {
	Top    color.RGBA
	Bottom color.RGBA
}

// LevelGenConfig drives procedural level generation
type LevelGenConfig struct {
	Width  float64
	Height float64

	// Floating platform scatter
	FloatingBase     int
	FloatingPerLevel int
	FloatingLevelCap int
	FloatingMinY     float64
	FloatingWaveAmp  float64
	FloatingJitterY  float64

	MovingCount       int
	MovingUnlockLevel int

	BreakableUnlockLevel int
	BreakableMax         int

	EnemyBase       int // enemies = EnemyBase + level
	CollectibleBase int // collectibles = CollectibleBase + CollectiblePer*level
	CollectiblePer  int
	PowerUpBase     int // power-ups = PowerUpBase + level/2

	// Completion: player x past Width - CompleteMargin advances the level
	CompleteMargin float64

	Themes []Theme
}

// ScoreConfig contains scoring and achievement thresholds
type ScoreConfig struct {
	Stomp          int
	LevelBonusBase int // bonus = LevelBonusBase * newLevel

	ScoreAchievements map[string]int // id -> minimum score
	LevelAchievements map[string]int // id -> minimum level
}

// CameraConfig contains camera follow and shake tuning
type CameraConfig struct {
	FollowSmoothing float64
	ShakeDecay      float64 // geometric decay factor applied per frame
	ShakeMin        float64 // below this the shake is zeroed
	HitShake        float64
}

// ParticleConfig contains particle system tuning
type ParticleConfig struct {
	ExplosionCount int
	SparkleCount   int
	BurstCount     int
	TrailInterval  float64 // seconds between trail puffs while running
	MaxParticles   int

	// Quality ratchet: starts at the first step, moves down the list under
	// sustained low FPS on mobile, never moves back up.
	QualitySteps []float64
	FPSWindow    float64 // seconds between measurements
	FPSThreshold float64 // fraction of target FPS considered acceptable
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Platform PlatformConfig
var Collectibles map[CollectibleKind]CollectibleTypeConfig
var PowerUps map[PowerUpKind]PowerUpTypeConfig
var LevelGen LevelGenConfig
var Score ScoreConfig
var Camera CameraConfig
var Particles ParticleConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gold         = color.RGBA{R: 255, G: 210, B: 60, A: 255}
	Cyan         = color.RGBA{R: 80, G: 220, B: 240, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 220, G: 60, B: 50, A: 255}
	Green        = color.RGBA{R: 70, G: 180, B: 90, A: 255}
	Brown        = color.RGBA{R: 140, G: 95, B: 60, A: 255}
	DarkBrown    = color.RGBA{R: 100, G: 68, B: 42, A: 255}
	Purple       = color.RGBA{R: 160, G: 80, B: 220, A: 255}
	SlateGray    = color.RGBA{R: 110, G: 120, B: 135, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	PlayerBlue   = color.RGBA{R: 70, G: 130, B: 230, A: 255}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
	}

	Player = PlayerConfig{
		MoveSpeed:     3000.0,
		RunMultiplier: 1.5,
		Friction:      0.8,
		MaxSpeed:      300.0,
		JumpPower:     600.0,
		Gravity:       1200.0,

		InvulnSeconds: 2.0,
		KnockbackX:    250.0,
		KnockbackY:    -200.0,

		StartingLives: 3,
		MaxLives:      9,

		SpawnX:        100,
		SpawnY:        400,
		FallOutMargin: 100,
		StompBounce:   -200.0,

		Width:  32,
		Height: 48,

		ShrunkWidth:  24,
		ShrunkHeight: 36,

		PowerUpSeconds:  10.0,
		SpeedMultiplier: 1.5,
		JumpMultiplier:  1.3,
	}

	Enemy = EnemyConfig{
		Gravity: 1200.0,
		Types: map[EnemyKind]EnemyTypeConfig{
			EnemyGoomba: {
				Kind:   EnemyGoomba,
				Speed:  50,
				Health: 1,
				Width:  28,
				Height: 28,
				Color:  Brown,
			},
			EnemyKoopa: {
				Kind:   EnemyKoopa,
				Speed:  70,
				Health: 2,
				Width:  30,
				Height: 34,
				Color:  Green,
			},
			EnemySpiky: {
				Kind:   EnemySpiky,
				Speed:  60,
				Health: 3,
				Width:  30,
				Height: 26,
				Color:  Red,
			},
			EnemyFlying: {
				Kind:         EnemyFlying,
				Speed:        80,
				Health:       1,
				Width:        30,
				Height:       24,
				Color:        Purple,
				BobAmplitude: 40,
				BobFrequency: 2.0,
			},
		},
		UnlockLevel: map[EnemyKind]int{
			EnemyGoomba: 1,
			EnemyKoopa:  1,
			EnemySpiky:  2,
			EnemyFlying: 4,
		},
	}

	Platform = PlatformConfig{
		GroundTileWidth: 128,
		FloorHeight:     50,
		FloatingWidth:   100,
		FloatingHeight:  20,
		MovingWidth:     90,
		MovingHeight:    18,
		MovingRange:     100,
		MovingPeriod:    4.0,
		CrumbleSeconds:  0.5,
	}

	Collectibles = map[CollectibleKind]CollectibleTypeConfig{
		CollectibleCoin: {
			Kind:         CollectibleCoin,
			Value:        100,
			Size:         12,
			Color:        Gold,
			BobAmplitude: 6,
			BobFrequency: 3.0,
			SpinSpeed:    4.0,
		},
		CollectibleGem: {
			Kind:         CollectibleGem,
			Value:        250,
			Size:         14,
			Color:        Cyan,
			BobAmplitude: 6,
			BobFrequency: 2.5,
			SpinSpeed:    3.0,
		},
		CollectibleStar: {
			Kind:         CollectibleStar,
			Value:        500,
			Size:         16,
			Color:        BrightYellow,
			BobAmplitude: 8,
			BobFrequency: 2.0,
			SpinSpeed:    5.0,
		},
	}

	PowerUps = map[PowerUpKind]PowerUpTypeConfig{
		PowerUpSpeed:      {Kind: PowerUpSpeed, Value: 50, Size: 24, Color: Orange},
		PowerUpJump:       {Kind: PowerUpJump, Value: 50, Size: 24, Color: LightBlue},
		PowerUpSize:       {Kind: PowerUpSize, Value: 50, Size: 24, Color: Purple},
		PowerUpInvincible: {Kind: PowerUpInvincible, Value: 50, Size: 24, Color: BrightYellow},
	}

	LevelGen = LevelGenConfig{
		Width:  3200,
		Height: 600,

		FloatingBase:     8,
		FloatingPerLevel: 2,
		FloatingLevelCap: 5,
		FloatingMinY:     180,
		FloatingWaveAmp:  80,
		FloatingJitterY:  60,

		MovingCount:       2,
		MovingUnlockLevel: 3,

		BreakableUnlockLevel: 2,
		BreakableMax:         4,

		EnemyBase:       3,
		CollectibleBase: 15,
		CollectiblePer:  3,
		PowerUpBase:     2,

		CompleteMargin: 100,

		Themes: []Theme{
			{Top: color.RGBA{110, 180, 250, 255}, Bottom: color.RGBA{200, 230, 255, 255}}, // day sky
			{Top: color.RGBA{250, 140, 90, 255}, Bottom: color.RGBA{120, 60, 140, 255}},   // sunset
			{Top: color.RGBA{20, 26, 60, 255}, Bottom: color.RGBA{8, 8, 20, 255}},         // night
			{Top: color.RGBA{60, 140, 110, 255}, Bottom: color.RGBA{150, 210, 160, 255}},  // forest
			{Top: color.RGBA{70, 70, 85, 255}, Bottom: color.RGBA{25, 25, 32, 255}},       // cavern
		},
	}

	Score = ScoreConfig{
		Stomp:          100,
		LevelBonusBase: 1000,
		ScoreAchievements: map[string]int{
			"score_1k":  1000,
			"score_5k":  5000,
			"score_10k": 10000,
		},
		LevelAchievements: map[string]int{
			"level_3":  3,
			"level_5":  5,
			"level_10": 10,
		},
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.1,
		ShakeDecay:      0.9,
		ShakeMin:        0.5,
		HitShake:        8.0,
	}

	Particles = ParticleConfig{
		ExplosionCount: 16,
		SparkleCount:   8,
		BurstCount:     12,
		TrailInterval:  0.08,
		MaxParticles:   512,
		QualitySteps:   []float64{1.0, 0.5, 0.25},
		FPSWindow:      1.0,
		FPSThreshold:   0.8,
	}
}

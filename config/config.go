package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// TileSize is the edge length of one grid cell in pixels.
const TileSize = 16

// TickRate is the number of simulation ticks per second the speeds below are tuned for.
const TickRate = 60

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement (pixels per tick)
	Speed      float64 `yaml:"speed"`
	JumpSpeed  float64 `yaml:"jumpSpeed"`
	ClimbSpeed float64 `yaml:"climbSpeed"`

	// Combat
	Health         int           `yaml:"health"`
	InvulnDuration time.Duration `yaml:"invulnDuration"`

	// Lives
	StartingLives int `yaml:"startingLives"`

	// Dimensions
	FrameWidth      int `yaml:"frameWidth"`
	FrameHeight     int `yaml:"frameHeight"`
	CollisionWidth  int `yaml:"collisionWidth"`
	CollisionHeight int `yaml:"collisionHeight"`
}

// EnemyTypeConfig contains configuration for specific enemy types
type EnemyTypeConfig struct {
	Name           string  `yaml:"name"`
	Health         int     `yaml:"health"`
	Damage         int     `yaml:"damage"`
	Speed          float64 `yaml:"speed"`
	PatrolDistance float64 `yaml:"patrolDistance"` // pixels either side of the spawn column

	// Physics
	Gravity bool `yaml:"gravity"`

	// Jumper
	JumpSpeed    float64       `yaml:"jumpSpeed"`
	JumpCooldown time.Duration `yaml:"jumpCooldown"`

	// Flyer
	Amplitude     float64 `yaml:"amplitude"`
	VerticalSpeed float64 `yaml:"verticalSpeed"` // pixels per tick along the oscillation ramp

	// Dimensions
	CollisionWidth  int `yaml:"collisionWidth"`
	CollisionHeight int `yaml:"collisionHeight"`

	// Visual
	SpriteKey string     `yaml:"spriteKey"`
	TintColor color.RGBA `yaml:"-"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig `yaml:"-"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"maxFallSpeed"`
}

// CollisionConfig holds the tolerances used by the motion resolver.
type CollisionConfig struct {
	// Extra horizontal reach beyond a platform's edges that still counts as standing on it.
	PlatformEdgeTolerance float64 `yaml:"platformEdgeTolerance"`
	// How far below a platform top the previous bottom edge may be and still count as above it.
	PlatformWasAboveEpsilon float64 `yaml:"platformWasAboveEpsilon"`
	// Pixels trimmed from the top and bottom of every tile hitbox.
	TileHitboxInset float64 `yaml:"tileHitboxInset"`
	// Distance below the level bottom at which an actor counts as fallen out.
	DeadZoneMargin float64 `yaml:"deadZoneMargin"`
}

// PowerupConfig contains defaults for powerup entities
type PowerupConfig struct {
	JumpBoostStrength float64       `yaml:"jumpBoostStrength"`
	JumpBoostDuration time.Duration `yaml:"jumpBoostDuration"`
}

// AnimationConfig contains animation-related configuration values
type AnimationConfig struct {
	FrameDuration time.Duration `yaml:"frameDuration"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	ViewWidth       float64 `yaml:"viewWidth"`
	ViewHeight      float64 `yaml:"viewHeight"`
	FollowSmoothing float64 `yaml:"followSmoothing"` // How fast camera follows player (0.0-1.0)
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Enemy EnemyConfig
var Physics PhysicsConfig
var Collision CollisionConfig
var Powerup PowerupConfig
var Animation AnimationConfig
var Camera CameraConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Gray         = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	Brown        = color.RGBA{R: 140, G: 90, B: 40, A: 255}
)

// Render layers, drawn in ascending order.
const (
	LayerWorld ecs.LayerID = iota
	LayerDebug
	LayerHUD
)

// Direction constants for actor facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every configuration value to its default.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	// Physics Config
	Physics = PhysicsConfig{
		Gravity:      0.3,
		MaxFallSpeed: 10.0,
	}

	Collision = CollisionConfig{
		PlatformEdgeTolerance:   TileSize / 2,
		PlatformWasAboveEpsilon: 1.0,
		TileHitboxInset:         1.0,
		DeadZoneMargin:          TileSize * 2,
	}

	// Player Config
	Player = PlayerConfig{
		// Movement
		Speed:      5.0,
		JumpSpeed:  8.0,
		ClimbSpeed: 3.0,

		// Combat
		Health:         3,
		InvulnDuration: 1500 * time.Millisecond,

		// Lives
		StartingLives: 3,

		// Dimensions
		FrameWidth:      16,
		FrameHeight:     32,
		CollisionWidth:  12,
		CollisionHeight: 28,
	}

	Powerup = PowerupConfig{
		JumpBoostStrength: 1.5,
		JumpBoostDuration: 10 * time.Second,
	}

	// Enemy Config
	Enemy = EnemyConfig{
		Types: map[string]EnemyTypeConfig{
			"walker": {
				Name:            "Walker",
				Health:          2,
				Damage:          1,
				Speed:           2.0,
				PatrolDistance:  100,
				Gravity:         true,
				CollisionWidth:  14,
				CollisionHeight: 28,
				SpriteKey:       "walker",
				TintColor:       Orange,
			},
			"jumper": {
				Name:            "Jumper",
				Health:          1,
				Damage:          1,
				Speed:           3.0,
				PatrolDistance:  150,
				Gravity:         true,
				JumpSpeed:       8.0,
				JumpCooldown:    2 * time.Second,
				CollisionWidth:  14,
				CollisionHeight: 14,
				SpriteKey:       "jumper",
				TintColor:       Purple,
			},
			"flyer": {
				Name:            "Flyer",
				Health:          1,
				Damage:          2,
				Speed:           4.0,
				PatrolDistance:  200,
				Gravity:         false,
				Amplitude:       50,
				VerticalSpeed:   2.0,
				CollisionWidth:  20,
				CollisionHeight: 20,
				SpriteKey:       "flyer",
				TintColor:       Magenta,
			},
		},
	}

	Animation = AnimationConfig{
		FrameDuration: 150 * time.Millisecond,
	}

	Camera = CameraConfig{
		ViewWidth:       float64(C.Width),
		ViewHeight:      float64(C.Height),
		FollowSmoothing: 0.1,
	}
}

// Package config provides YAML-based game configuration loading and
// difficulty management for asteroids.
package config

import "github.com/vovakirdan/tui-asteroids/internal/fragment"

// AsteroidsConfig contains all configuration for the game.
type AsteroidsConfig struct {
	World      WorldConfig             `yaml:"world"`
	Sprites    map[string]SpriteConfig `yaml:"sprites"`
	Ship       ShipConfig              `yaml:"ship"`
	Laser      LaserConfig             `yaml:"laser"`
	Smoke      SmokeConfig             `yaml:"smoke"`
	Asteroids  FieldConfig             `yaml:"asteroids"`
	Gameplay   GameplayConfig          `yaml:"gameplay"`
	Terminal   TerminalConfig          `yaml:"terminal"`
	Difficulty DifficultyConfig        `yaml:"difficulty"`
}

// WorldConfig defines the size of the movement domain in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpriteConfig maps a sprite name to a terminal glyph and a world-unit size.
type SpriteConfig struct {
	Glyph  string  `yaml:"glyph"`
	Color  string  `yaml:"color"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	MaxSpeed       float64 `yaml:"max_speed"`
	Acceleration   float64 `yaml:"acceleration"`
	RotateSpeed    float64 `yaml:"rotate_speed"` // degrees per second
	Drag           float64 `yaml:"drag"`         // share of velocity lost per tick while coasting
	ImmortalFrames int     `yaml:"immortal_frames"`
	JetOffset      float64 `yaml:"jet_offset"` // distance from the centre to the exhaust
	GunOffset      float64 `yaml:"gun_offset"` // distance from the centre to the muzzle
}

// LaserConfig defines player shots.
type LaserConfig struct {
	MaxAlive int     `yaml:"max_alive"`
	Frames   int     `yaml:"frames"`
	Speed    float64 `yaml:"speed"`
}

// SmokeConfig defines the exhaust particles emitted while thrusting.
type SmokeConfig struct {
	Frames   int     `yaml:"frames"`
	PerFrame int     `yaml:"per_frame"`
	Spread   float64 `yaml:"spread"` // degrees either side of the exhaust direction
	Speed    float64 `yaml:"speed"`
	From     string  `yaml:"from"` // colour at birth
	To       string  `yaml:"to"`   // colour at expiry
}

// FieldConfig defines the asteroid field and its fragmentation.
type FieldConfig struct {
	MaxLevel        int     `yaml:"max_level"`
	MinFragments    int     `yaml:"min_fragments"`
	MaxFragments    int     `yaml:"max_fragments"`
	MinSpeed        float64 `yaml:"min_speed"`
	MaxSpeed        float64 `yaml:"max_speed"`
	LevelSpeedBonus float64 `yaml:"level_speed_bonus"`
	DeadZone        float64 `yaml:"dead_zone"`
	BaseSize        float64 `yaml:"base_size"`
	Retention       float64 `yaml:"retention"`
	EnterFromEdge   bool    `yaml:"enter_from_edge"`
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	Lives             int `yaml:"lives"`
	PointsPerAsteroid int `yaml:"points_per_asteroid"`
	BlinkMs           int `yaml:"blink_ms"` // title screen prompt blink period
}

// TerminalConfig defines terminal-specific behaviour.
type TerminalConfig struct {
	HoldMs int `yaml:"hold_ms"` // a key counts as held this long after its last press
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over the session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "round", "score", or "none"
	MaxAt int    `yaml:"max_at"` // round or score at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // multiplier added to asteroid speed at max difficulty
}

// Fragmentation converts the asteroid section into group settings.
func (c AsteroidsConfig) Fragmentation() fragment.Config {
	f := c.Asteroids
	return fragment.Config{
		MaxLevel:        f.MaxLevel,
		MinFragments:    f.MinFragments,
		MaxFragments:    f.MaxFragments,
		MinSpeed:        f.MinSpeed,
		MaxSpeed:        f.MaxSpeed,
		LevelSpeedBonus: f.LevelSpeedBonus,
		DeadZone:        f.DeadZone,
		BaseW:           f.BaseSize,
		BaseH:           f.BaseSize,
		Retention:       f.Retention,
		EnterFromEdge:   f.EnterFromEdge,
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

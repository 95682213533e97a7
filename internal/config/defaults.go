package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// Default returns the default configuration. It matches the embedded
// defaults/asteroids.yaml.
func Default() AsteroidsConfig {
	return AsteroidsConfig{
		World: WorldConfig{
			Width:  1600,
			Height: 836,
		},
		Sprites: map[string]SpriteConfig{
			"ship":       {Glyph: "A", Color: "cyan", Width: 40, Height: 40},
			"laser":      {Glyph: "*", Color: "yellow", Width: 8, Height: 8},
			"smoke":      {Glyph: ".", Color: "red", Width: 5, Height: 5},
			"asteroid_1": {Glyph: "@", Color: "white", Width: 120, Height: 120},
			"asteroid_2": {Glyph: "O", Color: "white", Width: 60, Height: 60},
			"asteroid_3": {Glyph: "o", Color: "white", Width: 30, Height: 30},
		},
		Ship: ShipConfig{
			MaxSpeed:       10,
			Acceleration:   0.25,
			RotateSpeed:    270,
			Drag:           0.005,
			ImmortalFrames: 120,
			JetOffset:      20,
			GunOffset:      20,
		},
		Laser: LaserConfig{
			MaxAlive: 4,
			Frames:   50,
			Speed:    30,
		},
		Smoke: SmokeConfig{
			Frames:   15,
			PerFrame: 20,
			Spread:   20,
			Speed:    4,
			From:     "red",
			To:       "orange",
		},
		Asteroids: FieldConfig{
			MaxLevel:        3,
			MinFragments:    2,
			MaxFragments:    4,
			MinSpeed:        2,
			MaxSpeed:        3,
			LevelSpeedBonus: 1,
			DeadZone:        20,
			BaseSize:        120,
			Retention:       1,
			EnterFromEdge:   false,
		},
		Gameplay: GameplayConfig{
			Lives:             4,
			PointsPerAsteroid: 100,
			BlinkMs:           500,
		},
		Terminal: TerminalConfig{
			HoldMs: 500,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "round",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

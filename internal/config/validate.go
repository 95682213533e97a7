package config

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// EntitySprites are the sprites needed regardless of the asteroid levels.
var EntitySprites = []string{"ship", "laser", "smoke"}

// AsteroidSprite returns the sprite name of asteroids at level.
func AsteroidSprite(level int) string {
	return "asteroid_" + strconv.Itoa(level)
}

// SpriteNames lists every sprite the game looks up: the entity sprites and
// one asteroid sprite per level up to asteroids.max_level.
func (c AsteroidsConfig) SpriteNames() []string {
	names := append([]string(nil), EntitySprites...)
	for level := 1; level <= c.Asteroids.MaxLevel; level++ {
		names = append(names, AsteroidSprite(level))
	}
	return names
}

// Validate reports the first tunable the game cannot run with.
func (c AsteroidsConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return invalid("world", "size must be positive, got %vx%v", c.World.Width, c.World.Height)
	}
	for _, name := range c.SpriteNames() {
		s, ok := c.Sprites[name]
		if !ok {
			return invalid("sprites."+name, "missing")
		}
		if s.Glyph == "" || s.Width <= 0 || s.Height <= 0 {
			return invalid("sprites."+name, "needs a glyph and a positive size")
		}
		if _, ok := core.ParseColor(s.Color); !ok {
			return invalid("sprites."+name, "unknown color %q", s.Color)
		}
	}
	switch {
	case c.Ship.MaxSpeed <= 0:
		return invalid("ship.max_speed", "must be positive, got %v", c.Ship.MaxSpeed)
	case c.Ship.Acceleration <= 0:
		return invalid("ship.acceleration", "must be positive, got %v", c.Ship.Acceleration)
	case c.Ship.Drag < 0 || c.Ship.Drag >= 1:
		return invalid("ship.drag", "must be in [0, 1), got %v", c.Ship.Drag)
	case c.Ship.ImmortalFrames < 1:
		return invalid("ship.immortal_frames", "must be at least 1, got %d", c.Ship.ImmortalFrames)
	case c.Laser.MaxAlive < 1:
		return invalid("laser.max_alive", "must be at least 1, got %d", c.Laser.MaxAlive)
	case c.Laser.Frames < 1:
		return invalid("laser.frames", "must be at least 1, got %d", c.Laser.Frames)
	case c.Smoke.Frames < 1:
		return invalid("smoke.frames", "must be at least 1, got %d", c.Smoke.Frames)
	case c.Smoke.Spread < 0:
		return invalid("smoke.spread", "must not be negative, got %v", c.Smoke.Spread)
	case c.Smoke.PerFrame < 0:
		return invalid("smoke.per_frame", "must not be negative, got %d", c.Smoke.PerFrame)
	case c.Gameplay.Lives < 1:
		return invalid("gameplay.lives", "must be at least 1, got %d", c.Gameplay.Lives)
	case c.Gameplay.BlinkMs < 1:
		return invalid("gameplay.blink_ms", "must be at least 1, got %d", c.Gameplay.BlinkMs)
	case c.Terminal.HoldMs < 0:
		return invalid("terminal.hold_ms", "must not be negative, got %d", c.Terminal.HoldMs)
	case c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1:
		return invalid("difficulty.initial_level", "must be in [0, 1], got %v", c.Difficulty.InitialLevel)
	}
	for _, name := range []string{c.Smoke.From, c.Smoke.To} {
		if _, ok := core.ParseColor(name); !ok {
			return invalid("smoke", "unknown color %q", name)
		}
	}
	switch c.Difficulty.Progression.Type {
	case "round", "score", "none":
	default:
		return invalid("difficulty.progression.type", "want round, score, or none, got %q", c.Difficulty.Progression.Type)
	}
	if err := c.Fragmentation().Validate(); err != nil {
		return fmt.Errorf("asteroids: %w", err)
	}
	return nil
}

func invalid(name, format string, args ...any) error {
	return &core.ConfigurationError{
		Op:   "config.validate",
		Name: name,
		Err:  fmt.Errorf(format, args...),
	}
}

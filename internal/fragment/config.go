// Package fragment manages groups of destructible bodies that split into
// smaller, faster children when destroyed.
package fragment

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Config holds the tunables of a fragmentation group.
type Config struct {
	MaxLevel        int     // deepest level; bodies at this level leave no children
	MinFragments    int     // fewest children per destruction
	MaxFragments    int     // most children per destruction
	MinSpeed        float64 // launch speed range before the level bonus
	MaxSpeed        float64
	LevelSpeedBonus float64 // added to the launch speed once per level
	DeadZone        float64 // degrees excluded on each side of every axis
	BaseW           float64 // size of a level-1 body; halves per level
	BaseH           float64
	Retention       float64 // rebound energy retention
	EnterFromEdge   bool    // level-1 bodies start just outside the domain
}

// DefaultConfig returns the classic asteroid field settings.
func DefaultConfig() Config {
	return Config{
		MaxLevel:        3,
		MinFragments:    2,
		MaxFragments:    4,
		MinSpeed:        2,
		MaxSpeed:        3,
		LevelSpeedBonus: 1,
		DeadZone:        20,
		BaseW:           120,
		BaseH:           120,
		Retention:       1,
	}
}

// Validate checks the configuration for values the group cannot work with.
func (c Config) Validate() error {
	switch {
	case c.MaxLevel < 1:
		return invalid("max_level", "must be at least 1, got %d", c.MaxLevel)
	case c.MinFragments < 1:
		return invalid("min_fragments", "must be at least 1, got %d", c.MinFragments)
	case c.MaxFragments < c.MinFragments:
		return invalid("max_fragments", "must not be below min_fragments (%d), got %d", c.MinFragments, c.MaxFragments)
	case c.MinSpeed < 0:
		return invalid("min_speed", "must not be negative, got %v", c.MinSpeed)
	case c.MaxSpeed < c.MinSpeed:
		return invalid("max_speed", "must not be below min_speed (%v), got %v", c.MinSpeed, c.MaxSpeed)
	case c.LevelSpeedBonus < 0:
		return invalid("level_speed_bonus", "must not be negative, got %v", c.LevelSpeedBonus)
	case c.DeadZone < 0 || c.DeadZone >= 45:
		return invalid("dead_zone", "must be in [0, 45), got %v", c.DeadZone)
	case c.BaseW <= 0 || c.BaseH <= 0:
		return invalid("base_size", "must be positive, got %vx%v", c.BaseW, c.BaseH)
	case c.Retention < 0 || c.Retention > 1:
		return invalid("retention", "must be in [0, 1], got %v", c.Retention)
	}
	return nil
}

// Size returns the extent of a body at level.
func (c Config) Size(level int) (w, h float64) {
	scale := math.Pow(2, float64(level-1))
	return c.BaseW / scale, c.BaseH / scale
}

func invalid(name, format string, args ...any) error {
	return &core.ConfigurationError{
		Op:   "fragment.config",
		Name: name,
		Err:  fmt.Errorf(format, args...),
	}
}

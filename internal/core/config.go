package core

import "time"

// RuntimeConfig contains the assembly-time parameters of a session.
type RuntimeConfig struct {
	ScreenW int           // Screen width in characters
	ScreenH int           // Screen height in characters
	FPS     int           // Real frames per second requested from the driver
	Step    time.Duration // Fixed simulation step
	Seed    int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		FPS:     60,
		Step:    16 * time.Millisecond,
		Seed:    0, // 0 means use current time in platform layer
	}
}

package core

import "time"

// Clock supplies monotonically increasing time since an arbitrary origin.
// It feeds both the scheduler's lag accumulator and every Timer baseline.
type Clock interface {
	Now() time.Duration
}

// SystemClock reads the monotonic wall clock relative to its creation.
type SystemClock struct {
	origin time.Time
}

// NewSystemClock creates a clock whose origin is the current instant.
func NewSystemClock() *SystemClock {
	return &SystemClock{origin: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.origin)
}

// ManualClock is a clock that only moves when told to.
// Used by tests and by headless simulation.
type ManualClock struct {
	now time.Duration
}

// NewManualClock creates a manual clock starting at start.
func NewManualClock(start time.Duration) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d. Negative values are ignored so the
// clock stays monotonic.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now += d
	}
}

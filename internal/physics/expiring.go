package physics

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Hook is the per-tick change applied to an expiring body before it moves.
// frame counts from 1.
type Hook func(frame int)

// Expiring is a body that lives for a fixed number of updates.
type Expiring struct {
	Body

	frame     int
	maxFrames int
	hook      Hook
	expired   bool
}

// NewExpiring creates an expiring body with a budget of maxFrames updates.
// The hook may be nil. maxFrames below 1 panics with an InvariantViolation.
func NewExpiring(maxFrames int, hook Hook) Expiring {
	if maxFrames < 1 {
		core.Violate("physics.expiring", "max frames must be at least 1, got %d", maxFrames)
	}
	return Expiring{maxFrames: maxFrames, hook: hook}
}

// Update advances the body by one tick and reports whether it expired.
// On the update that reaches the budget the hook is skipped and the body
// does not move. Calls after expiry do nothing.
func (e *Expiring) Update() bool {
	if e.expired {
		return true
	}
	e.frame++
	if e.frame >= e.maxFrames {
		e.expired = true
		return true
	}
	if e.hook != nil {
		e.hook(e.frame)
	}
	e.Body.Update()
	return false
}

// Expired reports whether the budget is used up.
func (e *Expiring) Expired() bool {
	return e.expired
}

// Frame returns the number of updates so far.
func (e *Expiring) Frame() int {
	return e.frame
}

// MaxFrames returns the update budget.
func (e *Expiring) MaxFrames() int {
	return e.maxFrames
}

// SetHook replaces the per-tick hook.
func (e *Expiring) SetHook(h Hook) {
	e.hook = h
}

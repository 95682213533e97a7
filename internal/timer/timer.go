// Package timer provides a periodic callback driven by externally supplied
// timestamps. A Timer never schedules anything on its own; it fires only from
// inside CheckTick, which the owner calls once per simulation tick.
package timer

import "time"

// Unlimited disables the tick limit.
const Unlimited = -1

// Callback receives the tick count at the moment of firing.
type Callback func(tick int)

// Timer fires a callback at most once per elapsed delay interval.
type Timer struct {
	delay       time.Duration
	callback    Callback
	limit       int
	fireOnStart bool

	started bool
	last    time.Duration
	count   int
	done    bool
}

// Option configures a Timer.
type Option func(*Timer)

// WithLimit stops the timer after it fired n times. Unlimited (-1) is the default.
func WithLimit(n int) Option {
	return func(t *Timer) {
		t.limit = n
	}
}

// WithFireOnStart fires the callback with tick 0 on the first CheckTick.
// The start firing does not count towards the limit.
func WithFireOnStart() Option {
	return func(t *Timer) {
		t.fireOnStart = true
	}
}

// New creates a timer that calls cb every delay.
func New(delay time.Duration, cb Callback, opts ...Option) *Timer {
	t := &Timer{
		delay:    delay,
		callback: cb,
		limit:    Unlimited,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.limit == 0 {
		t.done = true
	}
	return t
}

// CheckTick fires the callback if at least delay has passed since the last
// firing (or since the baseline recorded by the first call).
func (t *Timer) CheckTick(now time.Duration) {
	if t.done {
		return
	}
	if !t.started {
		t.started = true
		t.last = now
		if t.fireOnStart {
			t.fire(0)
		}
		return
	}
	if now-t.last < t.delay {
		return
	}
	t.count++
	t.last = now
	if t.limit != Unlimited && t.count >= t.limit {
		t.done = true
	}
	t.fire(t.count)
}

func (t *Timer) fire(tick int) {
	if t.callback != nil {
		t.callback(tick)
	}
}

// Done reports whether the timer reached its limit.
func (t *Timer) Done() bool {
	return t.done
}

// Count returns how many times the timer fired, excluding the start firing.
func (t *Timer) Count() int {
	return t.count
}

// Reset forgets the baseline and the tick count.
func (t *Timer) Reset() {
	t.started = false
	t.last = 0
	t.count = 0
	t.done = t.limit == 0
}

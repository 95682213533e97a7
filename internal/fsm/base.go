package fsm

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Base implements the bookkeeping shared by every state: done/quit flags, the
// next and previous names, the activation time and the persisted payload.
// Concrete states embed it and override what they need.
type Base struct {
	name      string
	next      string
	previous  string
	done      bool
	quit      bool
	startTime time.Duration
	now       time.Duration
	persist   Payload
}

// NewBase creates the bookkeeping for a state called name whose default
// transition goes to next.
func NewBase(name, next string) Base {
	return Base{name: name, next: next, persist: Payload{}}
}

// Name returns the state's name.
func (b *Base) Name() string { return b.name }

// Kind reports a leaf state.
func (b *Base) Kind() Kind { return KindLeaf }

// Startup stores the payload and the activation timestamp.
func (b *Base) Startup(now time.Duration, persist Payload) error {
	if persist == nil {
		persist = Payload{}
	}
	b.persist = persist
	b.startTime = now
	b.now = now
	return nil
}

// Cleanup clears the done flag and hands the payload on unchanged.
func (b *Base) Cleanup() Payload {
	b.done = false
	return b.persist
}

// Update returns the result described by the current flags.
func (b *Base) Update(tick Tick) (Result, error) {
	b.now = tick.Now
	return b.Result(), nil
}

// HandleEvent ignores the event.
func (b *Base) HandleEvent(core.KeyEvent) {}

// Draw draws nothing.
func (b *Base) Draw(core.Renderer, float64) {}

// SetPrevious records the name of the state active before this one.
func (b *Base) SetPrevious(name string) { b.previous = name }

// Previous returns the name of the state active before this one.
func (b *Base) Previous() string { return b.previous }

// Finish marks the state done with next as the requested successor.
// An empty next keeps the default successor.
func (b *Base) Finish(next string) {
	if next != "" {
		b.next = next
	}
	b.done = true
}

// RequestQuit marks the state as wanting to end the session.
func (b *Base) RequestQuit() { b.quit = true }

// Done reports whether the state asked for a transition.
func (b *Base) Done() bool { return b.done }

// Quitting reports whether the state asked to quit.
func (b *Base) Quitting() bool { return b.quit }

// Next returns the name of the requested successor.
func (b *Base) Next() string { return b.next }

// StartTime returns the time the state was last activated.
func (b *Base) StartTime() time.Duration { return b.startTime }

// Elapsed returns how long the state has been active as of the last update.
func (b *Base) Elapsed() time.Duration { return b.now - b.startTime }

// Persist returns the payload carried by the state.
func (b *Base) Persist() Payload { return b.persist }

// Result converts the flags into an update result. Quit wins over done.
func (b *Base) Result() Result {
	switch {
	case b.quit:
		return QuitApp()
	case b.done:
		return TransitionTo(b.next)
	default:
		return Stay()
	}
}

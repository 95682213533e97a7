package tui

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// DefaultHold is how long a key counts as held after its last press. It is
// longer than the usual initial auto-repeat delay so a held key does not
// release before its repeats start.
const DefaultHold = 500 * time.Millisecond

// Input buffers key presses between frames and implements core.InputSource.
// Every key message is a press event. Terminals report no key releases, so a
// key stays held until no press for it arrived during the hold window; Poll
// then emits a synthetic release.
type Input struct {
	clock  core.Clock
	hold   time.Duration
	last   map[core.Key]time.Duration
	events []core.KeyEvent
	closed bool
}

// NewInput creates an input buffer. A non-positive hold uses DefaultHold.
func NewInput(clock core.Clock, hold time.Duration) *Input {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Input{
		clock: clock,
		hold:  hold,
		last:  make(map[core.Key]time.Duration),
	}
}

// Press records a key press at the current clock time.
func (in *Input) Press(k core.Key) {
	if k == core.KeyNone {
		return
	}
	in.events = append(in.events, core.KeyEvent{Type: core.KeyPress, Key: k})
	in.last[k] = in.clock.Now()
}

// Close marks the session as closed by the user.
func (in *Input) Close() {
	in.closed = true
}

// Poll releases keys whose hold window ran out and hands over the pending
// events together with the keys still held.
func (in *Input) Poll() core.InputFrame {
	now := in.clock.Now()
	for _, k := range heldKeys(in.last) {
		if now-in.last[k] >= in.hold {
			delete(in.last, k)
			in.events = append(in.events, core.KeyEvent{Type: core.KeyRelease, Key: k})
		}
	}

	held := core.NewKeySnapshot()
	for k := range in.last {
		held.Set(k)
	}
	frame := core.InputFrame{Events: in.events, Held: held, Closed: in.closed}
	in.events = nil
	return frame
}

// heldKeys returns the keys of m in key order so releases are emitted
// deterministically.
func heldKeys(m map[core.Key]time.Duration) []core.Key {
	keys := make([]core.Key, 0, len(m))
	for k := core.KeyNone; k <= core.KeyOther; k++ {
		if _, ok := m[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// Package fsm is the hierarchical state machine runtime that drives the
// application flow. A Machine owns a table of named states with exactly one of
// them active. Controlling states own a nested Machine; command states are
// terminal markers that ask the controlling state above them to request a
// named transition one level up.
package fsm

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Kind discriminates the roles a state can play inside a Machine.
type Kind int

const (
	KindLeaf        Kind = iota // ordinary state
	KindControlling             // owns a nested machine and escalates its commands
	KindCommand                 // terminal marker naming a transition in the parent
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindControlling:
		return "controlling"
	case KindCommand:
		return "command"
	default:
		return "unknown"
	}
}

// Payload is the key/value data handed from an outgoing state to the next one.
type Payload map[string]any

// Int returns the integer stored under key, or 0.
func (p Payload) Int(key string) int {
	v, _ := p[key].(int)
	return v
}

// Tick is the input of one fixed simulation step.
type Tick struct {
	Now   time.Duration    // simulated time of this tick
	Keys  core.KeySnapshot // keys held during the frame
	Frame uint64           // index of this tick since the scheduler started
}

// State is a node of a Machine.
type State interface {
	// Kind reports the role of the state.
	Kind() Kind
	// Startup activates the state, storing the payload handed over by the
	// previous state and the activation time.
	Startup(now time.Duration, persist Payload) error
	// Cleanup deactivates the state and returns the payload for the next one.
	Cleanup() Payload
	// Update advances the state by one tick.
	Update(tick Tick) (Result, error)
	// HandleEvent processes one discrete input event.
	HandleEvent(ev core.KeyEvent)
	// Draw renders the state.
	Draw(r core.Renderer, interpolation float64)
	// SetPrevious records the name of the state that was active before.
	SetPrevious(name string)
}

// Targeter is implemented by states that know statically which states they
// may transition to. Targets are checked against the table at setup.
type Targeter interface {
	Targets() []string
}

// Validator is implemented by states that own configuration of their own,
// such as a nested state table.
type Validator interface {
	Validate() error
}

// Commander is implemented by command states.
type Commander interface {
	Target() string
}

package fsm

import "errors"

var errNotStarted = errors.New("state updated before startup")

// Command is a terminal marker state. Once its machine activates it, the
// controlling state above requests a transition to target in its own parent.
type Command struct {
	Base
	target string
}

// NewCommand creates a command state requesting target one level up.
func NewCommand(name, target string) *Command {
	c := &Command{Base: NewBase(name, target), target: target}
	c.done = true
	return c
}

// Kind reports a command state.
func (c *Command) Kind() Kind { return KindCommand }

// Target returns the name the owning machine's parent should activate next.
func (c *Command) Target() string { return c.target }

// Update never transitions inside the command's own machine.
func (c *Command) Update(tick Tick) (Result, error) {
	c.now = tick.Now
	return Stay(), nil
}

// Cleanup keeps the marker done.
func (c *Command) Cleanup() Payload {
	return c.persist
}

// QuitState ends its machine as soon as it is updated.
type QuitState struct {
	Base
}

// NewQuit creates a quit state.
func NewQuit(name string) *QuitState {
	q := &QuitState{Base: NewBase(name, "")}
	q.quit = true
	return q
}

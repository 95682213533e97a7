package fsm

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Builder creates a fresh nested table and its start state name.
type Builder func() (Table, string)

// Controlling is a state that delegates to a nested Machine and escalates the
// commands of that machine one level up. The nested machine is rebuilt on
// every startup.
type Controlling struct {
	Base
	build  Builder
	nested *Machine
	opts   []Option
}

// NewControlling creates a controlling state.
func NewControlling(name string, build Builder, opts ...Option) *Controlling {
	return &Controlling{
		Base:  NewBase(name, ""),
		build: build,
		opts:  opts,
	}
}

// Kind reports a controlling state.
func (c *Controlling) Kind() Kind { return KindControlling }

// Validate builds a throwaway nested table and validates it.
func (c *Controlling) Validate() error {
	table, start := c.build()
	return Validate(table, start)
}

// Targets returns the names the nested command states escalate to. They must
// exist in the table owning this state.
func (c *Controlling) Targets() []string {
	table, _ := c.build()
	var targets []string
	for _, name := range table.Names() {
		if cmd, ok := table[name].(Commander); ok && table[name].Kind() == KindCommand {
			targets = append(targets, cmd.Target())
		}
	}
	return targets
}

// Startup activates the state and sets up a new nested machine.
func (c *Controlling) Startup(now time.Duration, persist Payload) error {
	if err := c.Base.Startup(now, persist); err != nil {
		return err
	}
	c.nested = New(c.Name(), c.opts...)
	table, start := c.build()
	return c.nested.Setup(table, start)
}

// Update advances the nested machine, then escalates a command state that
// became active in it, or the nested machine's quit.
func (c *Controlling) Update(tick Tick) (Result, error) {
	c.now = tick.Now
	if c.nested == nil {
		return Result{}, &core.ConfigurationError{Op: "fsm.controlling", Name: c.Name(), Err: errNotStarted}
	}
	if _, err := c.nested.Update(tick); err != nil {
		return Result{}, err
	}
	if active := c.nested.Active(); active != nil && active.Kind() == KindCommand {
		if cmd, ok := active.(Commander); ok {
			c.Finish(cmd.Target())
		}
	} else if c.nested.Quit() {
		c.RequestQuit()
	}
	return c.Result(), nil
}

// HandleEvent forwards the event to the nested machine.
func (c *Controlling) HandleEvent(ev core.KeyEvent) {
	if c.nested != nil {
		c.nested.HandleEvent(ev)
	}
}

// Draw draws the nested active state unless it is a command marker.
func (c *Controlling) Draw(r core.Renderer, interpolation float64) {
	if c.nested == nil {
		return
	}
	if active := c.nested.Active(); active != nil && active.Kind() == KindCommand {
		return
	}
	c.nested.Draw(r, interpolation)
}

// Nested returns the nested machine, nil before the first startup.
func (c *Controlling) Nested() *Machine {
	return c.nested
}

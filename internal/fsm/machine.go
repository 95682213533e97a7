package fsm

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Table maps state names to states.
type Table map[string]State

// Names returns the state names in sorted order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Machine runs one level of the state hierarchy.
type Machine struct {
	name   string
	table  Table
	state  State
	active string
	quit   bool
	logger *log.Logger
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used to report flips.
func WithLogger(l *log.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates an empty machine. name only labels log lines.
func New(name string, opts ...Option) *Machine {
	m := &Machine{
		name:   name,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Setup installs the table, validates it and activates start.
// Every failure is a *core.ConfigurationError.
func (m *Machine) Setup(table Table, start string) error {
	if err := Validate(table, start); err != nil {
		return err
	}
	m.table = table
	m.active = start
	m.state = table[start]
	m.quit = false
	if err := m.state.Startup(0, Payload{}); err != nil {
		return &core.ConfigurationError{Op: "fsm.setup", Name: start, Err: err}
	}
	m.logger.Debug("machine started", "machine", m.name, "state", start)
	return nil
}

// Validate checks that start and every statically declared target exist in
// the table, and lets states validate their own nested configuration.
func Validate(table Table, start string) error {
	if len(table) == 0 {
		return &core.ConfigurationError{Op: "fsm.setup", Err: errors.New("empty state table")}
	}
	if _, ok := table[start]; !ok {
		return &core.ConfigurationError{Op: "fsm.setup", Name: start, Err: errors.New("unknown start state")}
	}
	for _, name := range table.Names() {
		st := table[name]
		if st == nil {
			return &core.ConfigurationError{Op: "fsm.setup", Name: name, Err: errors.New("nil state")}
		}
		if tg, ok := st.(Targeter); ok {
			for _, target := range tg.Targets() {
				if _, ok := table[target]; !ok {
					return &core.ConfigurationError{
						Op:   "fsm.setup",
						Name: target,
						Err:  fmt.Errorf("unknown transition target of %q", name),
					}
				}
			}
		}
		if v, ok := st.(Validator); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("state %q: %w", name, err)
			}
		}
	}
	return nil
}

// Update delegates to the active state and applies its result.
// A quit machine stays quit.
func (m *Machine) Update(tick Tick) (Result, error) {
	if m.quit {
		return QuitApp(), nil
	}
	if m.state == nil {
		return Result{}, &core.ConfigurationError{Op: "fsm.update", Name: m.name, Err: errors.New("machine not set up")}
	}

	res, err := m.state.Update(tick)
	if err != nil {
		return Result{}, err
	}

	switch res.Outcome {
	case Quit:
		m.quit = true
		m.logger.Debug("machine quit", "machine", m.name, "state", m.active)
		return QuitApp(), nil
	case Transition:
		if err := m.flip(res.Next, tick); err != nil {
			return Result{}, err
		}
	}
	return Stay(), nil
}

// flip deactivates the current state and activates next with its payload.
func (m *Machine) flip(next string, tick Tick) error {
	incoming, ok := m.table[next]
	if !ok {
		return &core.ConfigurationError{
			Op:   "fsm.flip",
			Name: next,
			Err:  fmt.Errorf("requested by %q in machine %q", m.active, m.name),
		}
	}

	previous := m.active
	persist := m.state.Cleanup()
	m.state = incoming
	m.active = next
	if err := incoming.Startup(tick.Now, persist); err != nil {
		return fmt.Errorf("fsm: startup of %q: %w", next, err)
	}
	incoming.SetPrevious(previous)

	m.logger.Debug("state flip", "machine", m.name, "from", previous, "to", next, "tick", tick.Frame)
	return nil
}

// HandleEvent forwards an input event to the active state.
func (m *Machine) HandleEvent(ev core.KeyEvent) {
	if m.state != nil && !m.quit {
		m.state.HandleEvent(ev)
	}
}

// Draw forwards rendering to the active state.
func (m *Machine) Draw(r core.Renderer, interpolation float64) {
	if m.state != nil {
		m.state.Draw(r, interpolation)
	}
}

// Active returns the active state.
func (m *Machine) Active() State {
	return m.state
}

// ActiveName returns the name of the active state.
func (m *Machine) ActiveName() string {
	return m.active
}

// Quit reports whether the machine has terminated.
func (m *Machine) Quit() bool {
	return m.quit
}

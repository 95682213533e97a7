// Package scheduler implements the accumulator-based fixed-timestep main loop.
// Real frames of any rate are decoupled from simulation ticks of one fixed
// size: every frame first collects input, then runs as many ticks as the
// accumulated lag allows and finally draws exactly once with the fraction of
// a tick left over as interpolation factor.
package scheduler

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/fsm"
)

// DefaultStep is the fixed simulation step, a little above 60 ticks per second.
const DefaultStep = 16 * time.Millisecond

// Machine is the part of the state machine the scheduler drives.
type Machine interface {
	Update(tick fsm.Tick) (fsm.Result, error)
	HandleEvent(ev core.KeyEvent)
	Draw(r core.Renderer, interpolation float64)
	Quit() bool
}

// Scheduler owns the main loop of one session.
type Scheduler struct {
	machine  Machine
	clock    core.Clock
	input    core.InputSource
	renderer core.Renderer
	logger   *log.Logger

	step   time.Duration
	maxLag time.Duration

	started bool
	origin  time.Duration
	last    time.Duration
	lag     time.Duration
	keys    core.KeySnapshot

	ticks  uint64
	frames uint64
	done   bool
	alpha  float64
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithStep sets the fixed simulation step.
func WithStep(step time.Duration) Option {
	return func(s *Scheduler) {
		if step > 0 {
			s.step = step
		}
	}
}

// WithMaxLag caps the real time accumulated in a single frame, so a stalled
// frame does not trigger an avalanche of catch-up ticks. Zero disables the cap.
func WithMaxLag(d time.Duration) Option {
	return func(s *Scheduler) {
		if d >= 0 {
			s.maxLag = d
		}
	}
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a scheduler. The machine must already be set up.
func New(machine Machine, clock core.Clock, input core.InputSource, renderer core.Renderer, opts ...Option) *Scheduler {
	s := &Scheduler{
		machine:  machine,
		clock:    clock,
		input:    input,
		renderer: renderer,
		logger:   log.New(io.Discard),
		step:     DefaultStep,
		keys:     core.NewKeySnapshot(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Frame runs one real frame: input, zero or more ticks, one draw.
// It returns false once the session is over; err is set when the session was
// aborted by a machine error.
func (s *Scheduler) Frame() (running bool, err error) {
	if s.done {
		return false, nil
	}

	now := s.clock.Now()
	if !s.started {
		s.started = true
		s.origin = now
		s.last = now
	}
	elapsed := now - s.last
	if s.maxLag > 0 && elapsed > s.maxLag {
		s.logger.Debug("frame lag capped", "elapsed", elapsed, "cap", s.maxLag)
		// Keep tick timestamps continuous by shifting the origin forward.
		s.origin += elapsed - s.maxLag
		elapsed = s.maxLag
	}
	s.lag += elapsed
	s.last = now
	s.frames++

	if closed := s.EventLoop(); closed {
		s.logger.Info("close requested", "ticks", s.ticks, "frames", s.frames)
		s.done = true
		return false, nil
	}

	for s.lag >= s.step {
		if err := s.Update(); err != nil {
			s.logger.Error("session aborted", "err", err, "tick", s.ticks)
			s.done = true
			return false, err
		}
		s.lag -= s.step
		if s.machine.Quit() {
			s.logger.Info("machine quit", "ticks", s.ticks, "frames", s.frames)
			s.done = true
			return false, nil
		}
	}

	s.Draw(float64(s.lag) / float64(s.step))
	return true, nil
}

// EventLoop drains the input source once, forwarding every discrete event to
// the machine and refreshing the held-key snapshot. It reports a close request.
func (s *Scheduler) EventLoop() (closed bool) {
	in := s.input.Poll()
	s.keys = in.Held
	for _, ev := range in.Events {
		s.machine.HandleEvent(ev)
	}
	return in.Closed
}

// Update advances the simulation by exactly one fixed step.
func (s *Scheduler) Update() error {
	s.ticks++
	tick := fsm.Tick{
		Now:   s.origin + time.Duration(s.ticks)*s.step,
		Keys:  s.keys,
		Frame: s.ticks,
	}
	_, err := s.machine.Update(tick)
	return err
}

// Draw renders the current state once.
func (s *Scheduler) Draw(interpolation float64) {
	s.alpha = interpolation
	if s.renderer == nil {
		return
	}
	s.renderer.Clear()
	s.machine.Draw(s.renderer, interpolation)
	s.renderer.Present()
}

// Run drives Frame at fps real frames per second until the session ends or
// ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, fps int) error {
	if fps <= 0 {
		fps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		running, err := s.Frame()
		if err != nil || !running {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Ticks returns the number of simulation ticks run so far.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Frames returns the number of real frames run so far.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// Interpolation returns the factor passed to the last draw.
func (s *Scheduler) Interpolation() float64 {
	return s.alpha
}

// Step returns the fixed simulation step.
func (s *Scheduler) Step() time.Duration {
	return s.step
}

// Done reports whether the session is over.
func (s *Scheduler) Done() bool {
	return s.done
}

package states

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/fsm"
)

// ControlsState lists the key bindings and returns to the menu on any key.
type ControlsState struct {
	fsm.Base
	domain   core.Rect
	bindings []key.Binding
	prompt   *prompt
}

// NewControls creates the controls screen for the given bindings.
func NewControls(domain core.Rect, bindings []key.Binding, blink time.Duration) *ControlsState {
	c := domain.Center()
	return &ControlsState{
		Base:     fsm.NewBase(Controls, Select),
		domain:   domain,
		bindings: bindings,
		prompt:   newPrompt("press any key", core.Vec{X: c.X, Y: domain.Bottom() - domain.H/8}, blink),
	}
}

// Targets lists the states the controls screen leads to.
func (s *ControlsState) Targets() []string {
	return []string{Select}
}

// Startup restarts the blinking prompt.
func (s *ControlsState) Startup(now time.Duration, persist fsm.Payload) error {
	s.prompt.reset()
	return s.Base.Startup(now, persist)
}

// Update blinks the prompt.
func (s *ControlsState) Update(tick fsm.Tick) (fsm.Result, error) {
	s.prompt.update(tick.Now)
	return s.Base.Update(tick)
}

// HandleEvent goes back on any key press.
func (s *ControlsState) HandleEvent(ev core.KeyEvent) {
	if ev.Pressed() {
		s.Finish("")
	}
}

// Lines returns one help line per enabled binding.
func (s *ControlsState) Lines() []string {
	lines := make([]string, 0, len(s.bindings))
	for _, b := range s.bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-12s %s", h.Key, h.Desc))
	}
	return lines
}

// Draw paints the header, the help lines and the prompt.
func (s *ControlsState) Draw(r core.Renderer, _ float64) {
	d := s.domain
	r.DrawText("CONTROLS", core.Vec{X: d.Center().X, Y: d.Top() + d.H/6},
		core.TextStyle{Color: core.ColorBrightWhite, Bold: true})

	spacing := d.H / 14
	top := d.Top() + d.H/3
	for i, line := range s.Lines() {
		r.DrawText(line, core.Vec{X: d.Center().X, Y: top + float64(i)*spacing}, core.TextStyle{Color: core.ColorWhite})
	}
	s.prompt.draw(r)
}

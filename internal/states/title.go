package states

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/fsm"
)

// TitleState shows the game name until any key is pressed.
type TitleState struct {
	fsm.Base
	domain core.Rect
	prompt *prompt
}

// NewTitle creates the title screen. The prompt blinks every blink.
func NewTitle(domain core.Rect, blink time.Duration) *TitleState {
	c := domain.Center()
	return &TitleState{
		Base:   fsm.NewBase(Title, Select),
		domain: domain,
		prompt: newPrompt("press any key", core.Vec{X: c.X, Y: domain.Bottom() - domain.H/8}, blink),
	}
}

// Targets lists the states the title leads to.
func (s *TitleState) Targets() []string {
	return []string{Select}
}

// Startup restarts the blinking prompt.
func (s *TitleState) Startup(now time.Duration, persist fsm.Payload) error {
	s.prompt.reset()
	return s.Base.Startup(now, persist)
}

// Update blinks the prompt.
func (s *TitleState) Update(tick fsm.Tick) (fsm.Result, error) {
	s.prompt.update(tick.Now)
	return s.Base.Update(tick)
}

// HandleEvent leaves the title on any key press.
func (s *TitleState) HandleEvent(ev core.KeyEvent) {
	if ev.Pressed() {
		s.Finish("")
	}
}

// Draw paints the header and the prompt.
func (s *TitleState) Draw(r core.Renderer, _ float64) {
	r.DrawText("A S T E R O I D S", s.domain.Center(), core.TextStyle{Color: core.ColorBrightWhite, Bold: true})
	s.prompt.draw(r)
}

package states

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/timer"
)

// prompt is a blinking "press any key" line driven by a Timer.
type prompt struct {
	text    string
	at      core.Vec
	visible bool
	blink   *timer.Timer
}

func newPrompt(text string, at core.Vec, period time.Duration) *prompt {
	p := &prompt{text: text, at: at, visible: true}
	p.blink = timer.New(period, func(int) {
		p.visible = !p.visible
	})
	return p
}

func (p *prompt) reset() {
	p.visible = true
	p.blink.Reset()
}

func (p *prompt) update(now time.Duration) {
	p.blink.CheckTick(now)
}

func (p *prompt) draw(r core.Renderer) {
	if p.visible {
		r.DrawText(p.text, p.at, core.TextStyle{Color: core.ColorGray})
	}
}

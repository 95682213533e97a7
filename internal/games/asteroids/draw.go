package asteroids

import (
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/physics"
)

// hudMargin is the HUD inset from the domain edges in world units.
const hudMargin = 20

// blinkTicks is the blink half-period of an invulnerable ship.
const blinkTicks = 8

// Draw paints the world. Positions are extrapolated by interpolation ticks of
// velocity so motion stays smooth between simulation steps.
func (w *World) Draw(r core.Renderer, interpolation float64) {
	for _, p := range w.exhaust.Particles() {
		w.drawBody(r, w.sprites["smoke"], &p.Body, p.Opacity(), p.Tint(), interpolation)
	}
	for _, l := range w.gun.shots {
		w.drawBody(r, w.sprites["laser"], &l.Body, 1, core.ColorDefault, interpolation)
	}
	for _, f := range w.field.Bodies() {
		w.drawBody(r, w.sprites[config.AsteroidSprite(f.Level)], &f.Body, 1, core.ColorDefault, interpolation)
	}
	if w.ship != nil && !(w.ship.Invulnerable() && (w.tick/blinkTicks)%2 == 1) {
		w.drawBody(r, w.sprites["ship"], &w.ship.Body, 1, core.ColorDefault, interpolation)
	}
	w.drawHUD(r)
}

func (w *World) drawBody(r core.Renderer, s core.Sprite, b *physics.Body, opacity float64, tint core.Color, interpolation float64) {
	if w.paused || w.gameOver {
		interpolation = 0
	}
	r.Draw(s.Handle, core.Transform{
		Position: core.Vec{X: b.X + b.DX*interpolation, Y: b.Y - b.DY*interpolation},
		Rotation: b.Rotation(),
		Opacity:  opacity,
		Tint:     tint,
		W:        b.W,
		H:        b.H,
	}, interpolation)
}

func (w *World) drawHUD(r core.Renderer) {
	d := w.domain
	r.DrawText(fmt.Sprintf("ROUND %d", w.Round()), core.Vec{X: d.Left() + hudMargin, Y: d.Top() + hudMargin},
		core.TextStyle{Color: core.ColorGray, Align: core.AlignLeft})
	r.DrawText(fmt.Sprintf("SHIPS %d", w.lives), core.Vec{X: d.Left() + hudMargin, Y: d.Bottom() - hudMargin},
		core.TextStyle{Color: core.ColorCyan, Align: core.AlignLeft})
	r.DrawText(fmt.Sprintf("SCORE %d", w.score), core.Vec{X: d.Right() - hudMargin, Y: d.Bottom() - hudMargin},
		core.TextStyle{Color: core.ColorBrightWhite, Bold: true, Align: core.AlignRight})

	center := d.Center()
	switch {
	case w.gameOver:
		r.DrawText("GAME OVER", center, core.TextStyle{Color: core.ColorBrightRed, Bold: true})
		r.DrawText("press any key", core.Vec{X: center.X, Y: center.Y + 4*hudMargin}, core.TextStyle{Color: core.ColorGray})
	case w.paused:
		r.DrawText("PAUSED", center, core.TextStyle{Color: core.ColorBrightYellow, Bold: true})
	}
}

package asteroids

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/physics"
)

// Smoke is one exhaust particle. It fades from the birth colour to the
// expiry colour and never rebounds.
type Smoke struct {
	physics.Expiring

	from, to core.Color
	tint     core.Color
	opacity  float64
}

// Opacity returns the current opacity in [0, 1].
func (s *Smoke) Opacity() float64 {
	return s.opacity
}

// Tint returns the current colour.
func (s *Smoke) Tint() core.Color {
	return s.tint
}

// fade recomputes colour and opacity for frame. Opacity follows
// 256 - e^(frame*ln256/max) scaled to [0, 1].
func (s *Smoke) fade(frame int) {
	maxFrames := float64(s.MaxFrames())
	alpha := 256 - math.Exp(float64(frame)*math.Log(256)/maxFrames)
	s.opacity = core.ClampF(alpha/255, 0, 1)
	if float64(frame) < maxFrames/2 {
		s.tint = s.from
	} else {
		s.tint = s.to
	}
}

// Exhaust emits and owns smoke particles.
type Exhaust struct {
	cfg       config.SmokeConfig
	sprite    core.Sprite
	domain    core.Rect
	rng       *rand.Rand
	from, to  core.Color
	particles []*Smoke
}

// NewExhaust creates an exhaust drawing randomness from rng.
func NewExhaust(cfg config.SmokeConfig, sprite core.Sprite, domain core.Rect, rng *rand.Rand) *Exhaust {
	from, _ := core.ParseColor(cfg.From)
	to, _ := core.ParseColor(cfg.To)
	return &Exhaust{cfg: cfg, sprite: sprite, domain: domain, rng: rng, from: from, to: to}
}

// Emit spawns cfg.PerFrame particles around jet.
func (e *Exhaust) Emit(jet Point) {
	for range e.cfg.PerFrame {
		e.particles = append(e.particles, e.particle(jet))
	}
}

func (e *Exhaust) particle(jet Point) *Smoke {
	spread := e.cfg.Spread
	pos := core.Vec{
		X: jet.Position.X + e.jitter(spread),
		Y: jet.Position.Y + e.jitter(spread),
	}
	s := &Smoke{
		Expiring: physics.NewExpiring(e.cfg.Frames, nil),
		from:     e.from,
		to:       e.to,
		tint:     e.from,
		opacity:  1,
	}
	s.SetHook(s.fade)
	s.Body = physics.NewBody(pos, e.sprite.W, e.sprite.H, e.domain)
	s.Collide = false
	s.DX, s.DY = jet.DX, jet.DY
	s.Accelerate(jet.Direction+e.jitter(spread), e.cfg.Speed)
	s.SetRotation(float64(e.rng.Intn(90)))
	return s
}

// jitter returns a whole number in [-n, n].
func (e *Exhaust) jitter(n float64) float64 {
	k := int(n)
	return float64(e.rng.Intn(2*k+1) - k)
}

// Update advances every particle and drops the expired ones.
func (e *Exhaust) Update() {
	alive := e.particles[:0]
	for _, p := range e.particles {
		if !p.Update() {
			alive = append(alive, p)
		}
	}
	clear(e.particles[len(alive):])
	e.particles = alive
}

// Particles returns the live particles.
func (e *Exhaust) Particles() []*Smoke {
	return e.particles
}

// Len returns the number of live particles.
func (e *Exhaust) Len() int {
	return len(e.particles)
}

// Clear removes every particle.
func (e *Exhaust) Clear() {
	e.particles = nil
}

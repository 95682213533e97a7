package asteroids

import (
	"slices"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/physics"
)

// Laser is a shot fired from the ship's gun.
type Laser struct {
	physics.Expiring
}

// NewLaser fires a laser from gun. The shot inherits the ship velocity and
// gains cfg.Speed along the gun direction.
func NewLaser(cfg config.LaserConfig, sprite core.Sprite, gun Point, domain core.Rect) *Laser {
	l := &Laser{Expiring: physics.NewExpiring(cfg.Frames, nil)}
	l.Body = physics.NewBody(gun.Position, sprite.W, sprite.H, domain)
	l.DX, l.DY = gun.DX, gun.DY
	l.SetRotation(gun.Direction)
	l.Accelerate(gun.Direction, cfg.Speed)
	return l
}

// Gun limits the number of lasers alive at once.
type Gun struct {
	cfg    config.LaserConfig
	sprite core.Sprite
	domain core.Rect
	shots  []*Laser
}

// NewGun creates an empty gun.
func NewGun(cfg config.LaserConfig, sprite core.Sprite, domain core.Rect) *Gun {
	return &Gun{cfg: cfg, sprite: sprite, domain: domain}
}

// Fire adds a laser unless MaxAlive shots are already in flight.
func (g *Gun) Fire(from Point) bool {
	if len(g.shots) >= g.cfg.MaxAlive {
		return false
	}
	g.shots = append(g.shots, NewLaser(g.cfg, g.sprite, from, g.domain))
	return true
}

// Update advances every shot and drops the expired ones.
func (g *Gun) Update() {
	alive := g.shots[:0]
	for _, l := range g.shots {
		if !l.Update() {
			alive = append(alive, l)
		}
	}
	clear(g.shots[len(alive):])
	g.shots = alive
}

// Remove drops a shot that hit something.
func (g *Gun) Remove(l *Laser) {
	if i := slices.Index(g.shots, l); i >= 0 {
		g.shots = slices.Delete(g.shots, i, i+1)
	}
}

// Shots returns a copy of the shots in flight.
func (g *Gun) Shots() []*Laser {
	return slices.Clone(g.shots)
}

// Len returns the number of shots in flight.
func (g *Gun) Len() int {
	return len(g.shots)
}

// Clear removes every shot.
func (g *Gun) Clear() {
	g.shots = nil
}

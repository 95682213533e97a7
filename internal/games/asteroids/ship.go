package asteroids

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/physics"
	"github.com/vovakirdan/tui-asteroids/internal/timer"
)

// Direction of a rotation request.
const (
	TurnLeft  = 1
	TurnRight = -1
)

// stopSpeed is the speed below which a coasting ship comes to rest.
const stopSpeed = 0.05

// Point is a location on the ship hull together with the direction it faces
// and the ship velocity at that instant.
type Point struct {
	Position  core.Vec
	Direction float64
	DX, DY    float64
}

// Ship is the player's ship.
type Ship struct {
	physics.Body

	cfg           config.ShipConfig
	rotatePerTick float64
	immortal      bool
	immortalTimer *timer.Timer
}

// NewShip creates a ship at pos facing up. It stays immortal for
// cfg.ImmortalFrames ticks of length step, counted from its first update.
func NewShip(cfg config.ShipConfig, sprite core.Sprite, pos core.Vec, domain core.Rect, step time.Duration) *Ship {
	s := &Ship{
		Body:          physics.NewBody(pos, sprite.W, sprite.H, domain),
		cfg:           cfg,
		rotatePerTick: cfg.RotateSpeed * step.Seconds(),
		immortal:      true,
	}
	s.SetRotation(90)
	s.immortalTimer = timer.New(time.Duration(cfg.ImmortalFrames)*step, func(int) {
		s.immortal = false
	}, timer.WithLimit(1))
	return s
}

// Invulnerable reports whether the respawn grace window is still open.
func (s *Ship) Invulnerable() bool {
	return s.immortal
}

// Turn rotates the ship by one tick worth of rotation towards side.
func (s *Ship) Turn(side int) {
	s.Rotate(s.rotatePerTick * float64(side))
}

// Thrust accelerates along the ship's rotation, capped at the max speed.
func (s *Ship) Thrust() {
	s.Accelerate(s.Rotation(), s.cfg.Acceleration)
	s.Limit(s.cfg.MaxSpeed)
}

// SlowDown applies one tick of drag.
func (s *Ship) SlowDown() {
	s.DX *= 1 - s.cfg.Drag
	s.DY *= 1 - s.cfg.Drag
	if s.Speed() < stopSpeed {
		s.DX, s.DY = 0, 0
	}
}

// Steer applies the held keys for one tick and reports whether the engine fired.
// Opposite rotation keys cancel out.
func (s *Ship) Steer(keys core.KeySnapshot) (thrusting bool) {
	left, right := keys.Has(core.KeyLeft), keys.Has(core.KeyRight)
	switch {
	case left && !right:
		s.Turn(TurnLeft)
	case right && !left:
		s.Turn(TurnRight)
	}
	if keys.Has(core.KeyUp) {
		s.Thrust()
		return true
	}
	return false
}

// Tick runs the grace timer, drag, steering and movement for one tick.
func (s *Ship) Tick(now time.Duration, keys core.KeySnapshot) (thrusting bool) {
	s.immortalTimer.CheckTick(now)
	s.SlowDown()
	thrusting = s.Steer(keys)
	s.Update()
	return thrusting
}

// Jet returns the exhaust point behind the ship.
func (s *Ship) Jet() Point {
	return s.point(core.NormalizeAngle(s.Rotation()-180), s.cfg.JetOffset)
}

// Gun returns the muzzle point in front of the ship.
func (s *Ship) Gun() Point {
	return s.point(s.Rotation(), s.cfg.GunOffset)
}

func (s *Ship) point(direction, offset float64) Point {
	rad := core.Radians(direction)
	return Point{
		Position: s.Position().Add(core.Vec{
			X: offset * math.Cos(rad),
			Y: -offset * math.Sin(rad),
		}),
		Direction: direction,
		DX:        s.DX,
		DY:        s.DY,
	}
}

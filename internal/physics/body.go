// Package physics holds the movement model shared by every entity: position,
// velocity, rotation and rebound against the edges of a movement domain.
package physics

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// DefaultRetention keeps all energy on rebound.
const DefaultRetention = 1.0

// maxContainPasses bounds the per-axis correction loop.
const maxContainPasses = 4

// Body is a moving entity. Position is the centre of its bounding box.
// Positive DY moves the body towards the top of the screen, so Update
// decreases Y by DY.
type Body struct {
	X, Y      float64
	DX, DY    float64
	W, H      float64   // bounding extent
	Domain    core.Rect // rectangle the body moves in
	Collide   bool      // rebound off the domain edges
	Retention float64   // share of velocity kept on rebound, 1 = elastic
	rotation  float64   // degrees in [0, 360)
}

// NewBody creates a colliding body centred at pos.
func NewBody(pos core.Vec, w, h float64, domain core.Rect) Body {
	return Body{
		X:         pos.X,
		Y:         pos.Y,
		W:         w,
		H:         h,
		Domain:    domain,
		Collide:   true,
		Retention: DefaultRetention,
	}
}

// Position returns the centre of the body.
func (b *Body) Position() core.Vec {
	return core.Vec{X: b.X, Y: b.Y}
}

// Bounds returns the bounding box around the centre.
func (b *Body) Bounds() core.Rect {
	return core.RectAround(b.Position(), b.W, b.H)
}

// Rotation returns the rotation in degrees, always in [0, 360).
func (b *Body) Rotation() float64 {
	return b.rotation
}

// SetRotation sets the rotation, normalized into [0, 360).
func (b *Body) SetRotation(deg float64) {
	b.rotation = core.NormalizeAngle(deg)
}

// Rotate adds delta degrees to the rotation.
func (b *Body) Rotate(delta float64) {
	b.SetRotation(b.rotation + delta)
}

// Accelerate adds a velocity vector of the given length pointing at angle
// degrees. No speed cap is applied.
func (b *Body) Accelerate(angle, speed float64) {
	rad := core.Radians(angle)
	b.DX += speed * math.Cos(rad)
	b.DY += speed * math.Sin(rad)
}

// Speed returns the length of the velocity vector.
func (b *Body) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}

// Heading returns the direction of the velocity in degrees, in [0, 360).
// A vertical or zero vector falls back to 90 when DY > 0 and 270 otherwise.
func (b *Body) Heading() float64 {
	if b.DX == 0 {
		if b.DY > 0 {
			return 90
		}
		return 270
	}
	return core.NormalizeAngle(core.Degrees(math.Atan2(b.DY, b.DX)))
}

// Limit scales the velocity down to max if it is faster.
func (b *Body) Limit(max float64) {
	if b.Speed() <= max {
		return
	}
	rad := core.Radians(b.Heading())
	b.DX = max * math.Cos(rad)
	b.DY = max * math.Sin(rad)
}

// Update advances the position by the velocity and, for colliding bodies,
// keeps the body inside its domain.
func (b *Body) Update() {
	b.X += b.DX
	b.Y -= b.DY
	if b.Collide {
		b.contain()
	}
}

// contain bounces the body off every domain edge it crossed while moving
// outwards. A body outside the domain that moves inwards is left alone so
// entities spawned off-domain can drift in. An axis on which the body is
// larger than the domain pins the body to the domain centre.
func (b *Body) contain() {
	d := b.Domain
	fitX, fitY := b.W <= d.W, b.H <= d.H
	if !fitX {
		b.X, b.DX = d.Center().X, 0
	}
	if !fitY {
		b.Y, b.DY = d.Center().Y, 0
	}
	for range maxContainPasses {
		r := b.Bounds()
		switch {
		case fitX && r.Right() > d.Right() && b.DX > 0:
			b.DX *= -b.Retention
			b.X = d.Right() - b.W/2
		case fitX && r.Left() < d.Left() && b.DX < 0:
			b.DX *= -b.Retention
			b.X = d.Left() + b.W/2
		case fitY && r.Top() < d.Top() && b.DY > 0:
			b.DY *= -b.Retention
			b.Y = d.Top() + b.H/2
		case fitY && r.Bottom() > d.Bottom() && b.DY < 0:
			b.DY *= -b.Retention
			b.Y = d.Bottom() - b.H/2
		default:
			return
		}
	}
}

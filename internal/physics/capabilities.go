package physics

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Movable is advanced once per simulation tick.
type Movable interface {
	Update()
}

// Collidable exposes the box used for overlap tests.
type Collidable interface {
	Bounds() core.Rect
}

// Expirer is advanced once per tick and reports when its lifetime ends.
type Expirer interface {
	Update() bool
	Expired() bool
}

// Guarded entities are skipped by collision resolution while Invulnerable
// returns true.
type Guarded interface {
	Invulnerable() bool
}

var (
	_ Movable    = (*Body)(nil)
	_ Collidable = (*Body)(nil)
	_ Expirer    = (*Expiring)(nil)
	_ Collidable = (*Expiring)(nil)
)

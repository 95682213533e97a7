package fragment

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/physics"
)

// Fragment is a destructible body at a fragmentation level.
type Fragment struct {
	physics.Body
	Level int
}

// Group owns a set of fragments and applies the recursive destruction rule.
type Group struct {
	cfg        Config
	domain     core.Rect
	rng        *rand.Rand
	items      []*Fragment
	round      int
	perRound   int
	speedScale float64
}

// New creates an empty group moving inside domain. The random source drives
// every launch so a seeded source gives reproducible fields.
func New(cfg Config, domain core.Rect, rng *rand.Rand) (*Group, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, &core.ConfigurationError{Op: "fragment.new", Name: "rng"}
	}
	return &Group{
		cfg:        cfg,
		domain:     domain,
		rng:        rng,
		speedScale: 1,
	}, nil
}

// Config returns the group settings.
func (g *Group) Config() Config {
	return g.cfg
}

// Create spawns count fragments of level at pos and returns them.
// A level outside [1, MaxLevel] panics with an InvariantViolation.
func (g *Group) Create(count, level int, pos core.Vec) []*Fragment {
	if level < 1 || level > g.cfg.MaxLevel {
		core.Violate("fragment.level", "level %d outside [1, %d]", level, g.cfg.MaxLevel)
	}
	if count < 0 {
		core.Violate("fragment.count", "negative count %d", count)
	}
	created := make([]*Fragment, 0, count)
	for range count {
		f := g.spawn(level, pos)
		g.items = append(g.items, f)
		created = append(created, f)
	}
	return created
}

func (g *Group) spawn(level int, pos core.Vec) *Fragment {
	w, h := g.cfg.Size(level)
	f := &Fragment{Body: physics.NewBody(pos, w, h, g.domain), Level: level}
	f.Retention = g.cfg.Retention

	speed := g.cfg.MinSpeed + g.rng.Float64()*(g.cfg.MaxSpeed-g.cfg.MinSpeed)
	speed += float64(level) * g.cfg.LevelSpeedBonus
	f.Accelerate(g.launchAngle(), speed*g.speedScale)
	f.SetRotation(g.rng.Float64() * 360)

	if level == 1 && g.cfg.EnterFromEdge {
		if f.DX >= 0 {
			f.X = g.domain.Left() - w/2
		} else {
			f.X = g.domain.Right() + w/2
		}
	}
	return f
}

// launchAngle picks a direction that keeps DeadZone degrees away from
// every multiple of 90.
func (g *Group) launchAngle() float64 {
	dz := g.cfg.DeadZone
	base := dz + g.rng.Float64()*(90-2*dz)
	quadrant := g.rng.Intn(4)
	return base + 90*float64(quadrant)
}

// NextLevel starts a new round with one more level-1 fragment than the last,
// spawned at the domain centre.
func (g *Group) NextLevel() []*Fragment {
	g.round++
	g.perRound++
	return g.Create(g.perRound, 1, g.domain.Center())
}

// Destroy removes f and spawns its children. A fragment below MaxLevel
// splits into [MinFragments, MaxFragments] fragments one level deeper at its
// last position; a fragment at MaxLevel leaves nothing. Destroying a
// fragment the group does not own returns nil.
func (g *Group) Destroy(f *Fragment) []*Fragment {
	if !g.Remove(f) {
		return nil
	}
	if f.Level >= g.cfg.MaxLevel {
		return nil
	}
	spread := g.cfg.MaxFragments - g.cfg.MinFragments + 1
	count := g.cfg.MinFragments + g.rng.Intn(spread)
	return g.Create(count, f.Level+1, f.Position())
}

// Remove drops f without spawning children and reports whether it was
// in the group.
func (g *Group) Remove(f *Fragment) bool {
	i := slices.Index(g.items, f)
	if i < 0 {
		return false
	}
	g.items = slices.Delete(g.items, i, i+1)
	return true
}

// Update moves every fragment by one tick.
func (g *Group) Update() {
	for _, f := range g.items {
		f.Update()
	}
}

// Bodies returns the fragments in spawn order. The slice is a copy and stays
// valid while the group changes.
func (g *Group) Bodies() []*Fragment {
	return slices.Clone(g.items)
}

// Len returns the number of live fragments.
func (g *Group) Len() int {
	return len(g.items)
}

// Clear removes every fragment. Round counters are kept.
func (g *Group) Clear() {
	g.items = nil
}

// Reset clears the group and restarts the round counters.
func (g *Group) Reset() {
	g.Clear()
	g.round = 0
	g.perRound = 0
}

// Round returns the number of NextLevel calls.
func (g *Group) Round() int {
	return g.round
}

// PerRound returns the level-1 fragment count of the current round.
func (g *Group) PerRound() int {
	return g.perRound
}

// SetSpeedScale sets the multiplier applied to the launch speed of new fragments.
func (g *Group) SetSpeedScale(k float64) {
	if k <= 0 {
		k = 1
	}
	g.speedScale = k
}

// SpeedScale returns the launch speed multiplier.
func (g *Group) SpeedScale() float64 {
	return g.speedScale
}

// Package asteroids implements the asteroid field simulation: the player
// ship with its gun and exhaust, the fragmenting asteroid group, scoring,
// lives and rounds.
package asteroids

import (
	"fmt"
	"io"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/collision"
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/fragment"
)

// World owns every entity of a game session. All mutation happens inside
// Update, in a fixed phase order.
type World struct {
	cfg        config.AsteroidsConfig
	domain     core.Rect
	step       time.Duration
	rng        *rand.Rand
	logger     *log.Logger
	difficulty *config.DifficultyManager

	sprites   map[string]core.Sprite
	ship      *Ship
	gun       *Gun
	exhaust   *Exhaust
	field     *fragment.Group
	destroyed []*fragment.Fragment // asteroids hit during the current tick

	tick     uint64
	score    int
	lives    int // ships left in reserve
	gameOver bool
	paused   bool
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates a world from the configuration. Sprite sizes come from res.
// rc supplies the seed and the fixed step.
func New(cfg config.AsteroidsConfig, res core.ResourceProvider, rc core.RuntimeConfig, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	step := rc.Step
	if step <= 0 {
		step = core.DefaultConfig().Step
	}

	w := &World{
		cfg:        cfg,
		domain:     core.NewRect(0, 0, cfg.World.Width, cfg.World.Height),
		step:       step,
		rng:        rand.New(rand.NewSource(rc.Seed)),
		logger:     log.New(io.Discard),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		sprites:    make(map[string]core.Sprite),
		lives:      cfg.Gameplay.Lives,
	}
	for _, opt := range opts {
		opt(w)
	}

	for _, name := range cfg.SpriteNames() {
		s, err := res.Sprite(name)
		if err != nil {
			return nil, err
		}
		w.sprites[name] = s
	}

	field, err := fragment.New(cfg.Fragmentation(), w.domain, w.rng)
	if err != nil {
		return nil, err
	}
	w.field = field
	w.gun = NewGun(cfg.Laser, w.sprites["laser"], w.domain)
	w.exhaust = NewExhaust(cfg.Smoke, w.sprites["smoke"], w.domain, w.rng)
	return w, nil
}

// Fire shoots a laser from the ship if one is alive and the gun has room.
func (w *World) Fire() bool {
	if w.ship == nil || w.paused || w.gameOver {
		return false
	}
	return w.gun.Fire(w.ship.Gun())
}

// TogglePause pauses or resumes the simulation.
func (w *World) TogglePause() {
	if !w.gameOver {
		w.paused = !w.paused
	}
}

// Update advances the world by one tick. Phases: spawn, round start, ship,
// lasers and smoke, asteroids, collisions, fragmentation.
func (w *World) Update(now time.Duration, keys core.KeySnapshot) {
	if w.paused {
		return
	}
	w.tick++

	if w.gameOver {
		w.field.Update()
		return
	}
	if w.ship == nil {
		if !w.respawn() {
			return
		}
	}
	if w.field.Len() == 0 {
		w.nextRound()
	}

	if w.ship.Tick(now, keys) {
		w.exhaust.Emit(w.ship.Jet())
	}
	w.gun.Update()
	w.exhaust.Update()
	w.field.Update()

	w.collide()
	w.split()
}

// respawn places a new ship if a life is left and reports whether it did.
func (w *World) respawn() bool {
	if w.lives <= 0 {
		w.gameOver = true
		w.logger.Info("game over", "score", w.score, "round", w.field.Round(), "tick", w.tick)
		return false
	}
	w.lives--
	w.ship = NewShip(w.cfg.Ship, w.sprites["ship"], w.domain.Center(), w.domain, w.step)
	w.logger.Debug("ship spawned", "lives", w.lives, "tick", w.tick)
	return true
}

func (w *World) nextRound() {
	// Speed scale is computed for the round about to start.
	next := w.field.Round() + 1
	w.field.SetSpeedScale(w.difficulty.SpeedScale(w.score, next))
	spawned := w.field.NextLevel()
	w.logger.Info("round started", "round", w.field.Round(), "asteroids", len(spawned), "speed_scale", w.field.SpeedScale())
}

// collide resolves lasers against asteroids, then the ship against the
// asteroids that survived.
func (w *World) collide() {
	rocks := collision.Side[*fragment.Fragment]{
		Items:  w.field.Bodies(),
		Remove: func(f *fragment.Fragment) { w.destroyed = append(w.destroyed, f) },
	}
	shots := collision.Side[*Laser]{
		Items:  w.gun.Shots(),
		Remove: w.gun.Remove,
	}
	collision.Resolve(rocks, shots, collision.RemoveBoth, func(*fragment.Fragment, *Laser) {
		w.score += w.cfg.Gameplay.PointsPerAsteroid
	})

	survivors := slices.DeleteFunc(rocks.Items, func(f *fragment.Fragment) bool {
		return slices.Contains(w.destroyed, f)
	})
	player := collision.Side[*Ship]{
		Items:  []*Ship{w.ship},
		Remove: func(*Ship) { w.ship = nil },
	}
	rest := collision.Side[*fragment.Fragment]{Items: survivors}
	if collision.Resolve(player, rest, collision.RemoveLeft, nil) > 0 {
		w.gun.Clear()
		w.logger.Debug("ship destroyed", "lives", w.lives, "tick", w.tick)
	}
}

// split fragments every asteroid hit this tick.
func (w *World) split() {
	for _, f := range w.destroyed {
		w.field.Destroy(f)
	}
	clear(w.destroyed)
	w.destroyed = w.destroyed[:0]
}

// Score returns the points earned so far.
func (w *World) Score() int {
	return w.score
}

// Lives returns the number of ships left in reserve.
func (w *World) Lives() int {
	return w.lives
}

// Round returns the current round, starting at 1.
func (w *World) Round() int {
	return w.field.Round()
}

// GameOver reports whether the last ship was lost.
func (w *World) GameOver() bool {
	return w.gameOver
}

// Paused reports whether the simulation is paused.
func (w *World) Paused() bool {
	return w.paused
}

// Ship returns the live ship, or nil between a loss and the next spawn.
func (w *World) Ship() *Ship {
	return w.ship
}

// Field returns the asteroid group.
func (w *World) Field() *fragment.Group {
	return w.field
}

// Gun returns the ship's gun.
func (w *World) Gun() *Gun {
	return w.gun
}

// Exhaust returns the smoke emitter.
func (w *World) Exhaust() *Exhaust {
	return w.exhaust
}

// Domain returns the movement domain.
func (w *World) Domain() core.Rect {
	return w.domain
}

// Tick returns the number of simulated ticks.
func (w *World) Tick() uint64 {
	return w.tick
}

// String summarizes the world for logs.
func (w *World) String() string {
	return fmt.Sprintf("round=%d score=%d lives=%d asteroids=%d", w.Round(), w.score, w.lives, w.field.Len())
}

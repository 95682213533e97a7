package asteroids

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Round     int
	Score     int
	Lives     int
	GameOver  bool
	ShipAlive bool
	ShipX     float64
	ShipY     float64
	Asteroids int
	Lasers    int
	Smoke     int
	Hash      uint64 // xxhash over every entity position and velocity
}

// Snapshot returns the current game snapshot for determinism verification.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Tick:      w.tick,
		Round:     w.Round(),
		Score:     w.score,
		Lives:     w.lives,
		GameOver:  w.gameOver,
		ShipAlive: w.ship != nil,
		Asteroids: w.field.Len(),
		Lasers:    w.gun.Len(),
		Smoke:     w.exhaust.Len(),
	}
	if w.ship != nil {
		s.ShipX, s.ShipY = w.ship.X, w.ship.Y
	}
	s.Hash = w.hash()
	return s
}

func (w *World) hash() uint64 {
	d := xxhash.New()
	var buf [8]byte
	put := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = d.Write(buf[:])
	}

	put(float64(w.tick))
	put(float64(w.score))
	put(float64(w.lives))
	if w.ship != nil {
		put(w.ship.X)
		put(w.ship.Y)
		put(w.ship.DX)
		put(w.ship.DY)
		put(w.ship.Rotation())
	}
	for _, f := range w.field.Bodies() {
		put(float64(f.Level))
		put(f.X)
		put(f.Y)
		put(f.DX)
		put(f.DY)
	}
	for _, l := range w.gun.shots {
		put(l.X)
		put(l.Y)
	}
	for _, p := range w.exhaust.particles {
		put(p.X)
		put(p.Y)
	}
	return d.Sum64()
}

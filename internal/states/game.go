package states

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/fsm"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

// LeaveDelay is how long the game over screen ignores keys.
const LeaveDelay = time.Second

// GameState runs one game. A new World is created on every startup and the
// final score is handed back to the menu on cleanup.
type GameState struct {
	fsm.Base
	cfg     config.AsteroidsConfig
	res     core.ResourceProvider
	runtime core.RuntimeConfig
	logger  *log.Logger

	world  *asteroids.World
	played int
	overAt time.Duration // time since startup when the game ended
	over   bool
}

// NewGame creates the game state. A nil logger discards output.
func NewGame(cfg config.AsteroidsConfig, res core.ResourceProvider, rc core.RuntimeConfig, logger *log.Logger) *GameState {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &GameState{
		Base:    fsm.NewBase(Game, Select),
		cfg:     cfg,
		res:     res,
		runtime: rc,
		logger:  logger,
	}
}

// Targets lists the states a game leads to.
func (s *GameState) Targets() []string {
	return []string{Select}
}

// Startup creates a fresh world. Every game after the first one shifts the
// seed so consecutive games differ while a session stays reproducible.
func (s *GameState) Startup(now time.Duration, persist fsm.Payload) error {
	if err := s.Base.Startup(now, persist); err != nil {
		return err
	}
	rc := s.runtime
	rc.Seed += int64(s.played)
	world, err := asteroids.New(s.cfg, s.res, rc, asteroids.WithLogger(s.logger))
	if err != nil {
		return err
	}
	s.world = world
	s.played++
	s.over = false
	s.logger.Info("game started", "game", s.played, "seed", rc.Seed)
	return nil
}

// Cleanup stores the last and best scores in the payload.
func (s *GameState) Cleanup() fsm.Payload {
	persist := s.Base.Cleanup()
	if s.world != nil {
		score := s.world.Score()
		persist[KeyLastScore] = score
		persist[KeyBestScore] = max(score, persist.Int(KeyBestScore))
		s.logger.Info("game ended", "score", score, "round", s.world.Round())
	}
	return persist
}

// Update advances the world by one tick.
func (s *GameState) Update(tick fsm.Tick) (fsm.Result, error) {
	res, err := s.Base.Update(tick)
	if s.world != nil {
		s.world.Update(tick.Now, tick.Keys)
		if s.world.GameOver() && !s.over {
			s.over = true
			s.overAt = s.Elapsed()
		}
	}
	return res, err
}

// HandleEvent fires, pauses and leaves. Once the game is over any key press
// leaves after LeaveDelay.
func (s *GameState) HandleEvent(ev core.KeyEvent) {
	if !ev.Pressed() || s.world == nil {
		return
	}
	if s.over {
		if s.Elapsed()-s.overAt >= LeaveDelay {
			s.Finish("")
		}
		return
	}
	switch ev.Key {
	case core.KeyFire:
		s.world.Fire()
	case core.KeyPause:
		s.world.TogglePause()
	case core.KeyEscape:
		s.Finish("")
	}
}

// Draw renders the world.
func (s *GameState) Draw(r core.Renderer, interpolation float64) {
	if s.world != nil {
		s.world.Draw(r, interpolation)
	}
}

// World returns the running world, nil before the first startup.
func (s *GameState) World() *asteroids.World {
	return s.world
}

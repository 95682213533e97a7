package main

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/fsm"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/scheduler"
	"github.com/vovakirdan/tui-asteroids/internal/states"
)

// maxFrameLag caps how much simulated time one slow frame may catch up.
const maxFrameLag = 250 * time.Millisecond

// loadConfig loads the configuration, applies the --difficulty preset and
// validates the result.
func loadConfig(logger *log.Logger) (config.AsteroidsConfig, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.AsteroidsConfig{}, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.AsteroidsConfig{}, err
	}
	// Without --difficulty the loaded file keeps its own difficulty section.
	if flagDifficulty != "" {
		config.ApplyPreset(&cfg, preset)
	}
	if err := cfg.Validate(); err != nil {
		return config.AsteroidsConfig{}, err
	}
	logger.Info("config loaded", "source", source, "difficulty", preset)
	return cfg, nil
}

// newLogger opens the --log file. Without it everything is discarded since
// the terminal belongs to the game. The returned close func is never nil.
func newLogger(path string) (*log.Logger, func() error, error) {
	if path == "" {
		return log.New(io.Discard), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		Prefix:          "asteroids",
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	return logger.With("session", uuid.NewString()), f.Close, nil
}

// session is one assembled run: the state machine and the scheduler driving it.
type session struct {
	table     fsm.Table
	machine   *fsm.Machine
	scheduler *scheduler.Scheduler
}

// newSession builds the state table, sets up the top-level machine and wires
// it to a scheduler.
func newSession(cfg config.AsteroidsConfig, res core.ResourceProvider, rc core.RuntimeConfig,
	clock core.Clock, input core.InputSource, renderer core.Renderer, logger *log.Logger,
) (*session, error) {
	table, start := states.Build(states.Deps{
		Config:    cfg,
		Resources: res,
		Runtime:   rc,
		Logger:    logger,
		Bindings:  tui.DefaultKeyMap().Bindings(),
	})
	machine := fsm.New("app", fsm.WithLogger(logger))
	if err := machine.Setup(table, start); err != nil {
		return nil, err
	}
	sched := scheduler.New(machine, clock, input, renderer,
		scheduler.WithStep(rc.Step),
		scheduler.WithMaxLag(maxFrameLag),
		scheduler.WithLogger(logger),
	)
	return &session{table: table, machine: machine, scheduler: sched}, nil
}

// game returns the game state of the session.
func (s *session) game() *states.GameState {
	g, _ := s.table[states.Game].(*states.GameState)
	return g
}

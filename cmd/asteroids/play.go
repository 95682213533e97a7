package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Long: `Start the game in the terminal.

Controls:
  Up/W         - Thrust
  Left/A       - Rotate left
  Right/D      - Rotate right
  Space        - Fire
  P            - Pause
  Esc          - Back to the menu
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - More ships, fewer and slower fragments
  normal - Default tuning, speed grows with the round
  hard   - Fewer ships, more and faster fragments
  fixed  - No speed progression

Examples:
  asteroids play
  asteroids play --difficulty easy
  asteroids play --config ./my-asteroids.yaml`,
		Args: cobra.NoArgs,
		RunE: runPlay,
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLog)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.DefaultConfig()
	rc.ScreenW = width
	rc.ScreenH = height
	rc.FPS = flagFPS
	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	clock := core.NewSystemClock()
	input := tui.NewInput(clock, time.Duration(cfg.Terminal.HoldMs)*time.Millisecond)
	world := core.NewRect(0, 0, cfg.World.Width, cfg.World.Height)
	renderer := tui.NewRenderer(core.NewScreen(width, max(height-1, 1)), world)

	s, err := newSession(cfg, tui.NewSprites(cfg.Sprites), rc, clock, input, renderer, logger)
	if err != nil {
		return err
	}
	logger.Info("session started", "seed", rc.Seed, "fps", rc.FPS, "step", s.scheduler.Step(), "screen", []int{width, height})

	m := tui.NewModel(s.scheduler, input, renderer, tui.DefaultKeyMap(), rc.FPS, logger)
	return tui.Run(m)
}

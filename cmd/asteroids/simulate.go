package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

var flagSeconds int

// enterFrame is the frame the pilot confirms PLAY on. The title needs one
// tick to hand over to the menu first.
const enterFrame = 5

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a headless scripted session",
		Long: `Run the game without a terminal on a manual clock. A fixed pilot
leaves the title, starts a game, thrusts in bursts while turning and fires
every ten frames. The final world snapshot and its hash are printed; the same
seed and flags always print the same hash.

Examples:
  asteroids simulate --seed 42
  asteroids simulate --seed 42 --seconds 120 --difficulty hard`,
		Args: cobra.NoArgs,
		RunE: runSimulate,
	}
	cmd.Flags().IntVar(&flagSeconds, "seconds", 30, "Simulated seconds")
	return cmd
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(flagLog)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	rc := core.DefaultConfig()
	rc.FPS = max(flagFPS, 1)
	rc.Seed = flagSeed
	frames := flagSeconds * rc.FPS

	clock := core.NewManualClock(0)
	input := &core.ScriptedInput{Frames: pilot(frames)}
	s, err := newSession(cfg, asteroids.HeadlessResources(cfg), rc, clock, input, nil, logger)
	if err != nil {
		return err
	}

	interval := time.Second / time.Duration(rc.FPS)
	for range frames {
		clock.Advance(interval)
		running, err := s.scheduler.Frame()
		if err != nil {
			return err
		}
		if !running {
			break
		}
	}

	w := s.game().World()
	if w == nil {
		return errors.New("simulate: no game was started")
	}
	snap := w.Snapshot()
	fmt.Fprintf(cmd.OutOrStdout(), "ticks=%d round=%d score=%d lives=%d asteroids=%d game_over=%t hash=%016x\n",
		snap.Tick, snap.Round, snap.Score, snap.Lives, snap.Asteroids, snap.GameOver, snap.Hash)
	return nil
}

// pilot scripts the input of a simulated session: leave the title, pick PLAY,
// then thrust in bursts while turning and fire every ten frames.
func pilot(frames int) []core.InputFrame {
	script := make([]core.InputFrame, 0, frames)
	for i := range frames {
		held := core.NewKeySnapshot()
		var events []core.KeyEvent
		switch {
		case i == 0:
			events = append(events, core.KeyEvent{Type: core.KeyPress, Key: core.KeyOther})
		case i == enterFrame:
			events = append(events, core.KeyEvent{Type: core.KeyPress, Key: core.KeyEnter})
		case i < enterFrame:
		default:
			switch phase := i % 120; {
			case phase < 40:
				held.Set(core.KeyUp)
				held.Set(core.KeyLeft)
			case phase < 60:
				held.Set(core.KeyRight)
			}
			if i%10 == 0 {
				events = append(events, core.KeyEvent{Type: core.KeyPress, Key: core.KeyFire})
			}
		}
		script = append(script, core.InputFrame{Events: events, Held: held})
	}
	return script
}

package states

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/fsm"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

const step = 16 * time.Millisecond

var bindings = []key.Binding{
	key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "thrust")),
	key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "fire")),
	key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause"), key.WithDisabled()),
}

// textRenderer records the text drawn in a frame.
type textRenderer struct {
	texts []string
	draws int
}

func (r *textRenderer) Clear() {
	r.texts = nil
	r.draws = 0
}

func (r *textRenderer) Draw(core.Drawable, core.Transform, float64) {
	r.draws++
}

func (r *textRenderer) DrawText(text string, _ core.Vec, _ core.TextStyle) {
	r.texts = append(r.texts, text)
}

func (r *textRenderer) Present() {}

type app struct {
	t       *testing.T
	machine *fsm.Machine
	frame   uint64
}

func newApp(t *testing.T) *app {
	t.Helper()
	cfg := config.Default()
	table, start := Build(Deps{
		Config:    cfg,
		Resources: asteroids.HeadlessResources(cfg),
		Runtime:   core.RuntimeConfig{Step: step, Seed: 7},
		Bindings:  bindings,
	})
	m := fsm.New("app")
	require.NoError(t, m.Setup(table, start))
	return &app{t: t, machine: m}
}

// press delivers a key press and runs one tick.
func (a *app) press(k core.Key) {
	a.machine.HandleEvent(core.KeyEvent{Type: core.KeyPress, Key: k})
	a.tick()
}

func (a *app) tick() {
	a.t.Helper()
	a.frame++
	_, err := a.machine.Update(fsm.Tick{
		Now:   time.Duration(a.frame) * step,
		Keys:  core.NewKeySnapshot(),
		Frame: a.frame,
	})
	require.NoError(a.t, err)
}

func (a *app) active() string {
	return a.machine.ActiveName()
}

func TestBuildValidates(t *testing.T) {
	table, start := Build(Deps{Config: config.Default()})
	require.NoError(t, fsm.Validate(table, start))
	assert.Equal(t, Title, start)
	assert.ElementsMatch(t, []string{Title, Select, Controls, Game, Quit}, table.Names())
}

func TestTitleLeavesOnAnyKey(t *testing.T) {
	a := newApp(t)
	a.tick()
	assert.Equal(t, Title, a.active())

	// Releases do not count as key presses.
	a.machine.HandleEvent(core.KeyEvent{Type: core.KeyRelease, Key: core.KeyOther})
	a.tick()
	assert.Equal(t, Title, a.active())

	a.press(core.KeyOther)
	assert.Equal(t, Select, a.active())
}

func TestPlayAndReturnCarriesScores(t *testing.T) {
	a := newApp(t)
	a.press(core.KeyOther)
	a.press(core.KeyEnter)
	require.Equal(t, Game, a.active())

	game := a.machine.Active().(*GameState)
	require.NotNil(t, game.World())
	for range 10 {
		a.tick()
	}
	assert.Greater(t, game.World().Tick(), uint64(0))

	a.press(core.KeyEscape)
	require.Equal(t, Select, a.active())

	sel := a.machine.Active().(*SelectState)
	persist := sel.Persist()
	assert.Contains(t, persist, KeyLastScore)
	assert.Equal(t, 0, persist.Int(KeyLastScore))

	r := &textRenderer{}
	sel.Draw(r, 0)
	assert.Contains(t, r.texts, "LAST 0   BEST 0")
	assert.Contains(t, r.texts, "> PLAY <")
}

func TestSelectHidesScoresBeforeFirstGame(t *testing.T) {
	a := newApp(t)
	a.press(core.KeyOther)

	r := &textRenderer{}
	a.machine.Draw(r, 0)
	assert.NotContains(t, r.texts, "LAST 0   BEST 0")
	assert.Contains(t, r.texts, "> PLAY <")
	assert.Contains(t, r.texts, "CONTROLS")
	assert.Contains(t, r.texts, "QUIT")
}

func TestQuitFromMenu(t *testing.T) {
	a := newApp(t)
	a.press(core.KeyOther)
	a.machine.HandleEvent(core.KeyEvent{Type: core.KeyPress, Key: core.KeyDown})
	a.machine.HandleEvent(core.KeyEvent{Type: core.KeyPress, Key: core.KeyDown})
	// Extra presses stay on the last item.
	a.machine.HandleEvent(core.KeyEvent{Type: core.KeyPress, Key: core.KeyDown})
	a.press(core.KeyEnter)
	assert.Equal(t, Quit, a.active())
	assert.False(t, a.machine.Quit())

	a.tick()
	assert.True(t, a.machine.Quit())
}

func TestControlsScreen(t *testing.T) {
	a := newApp(t)
	a.press(core.KeyOther)
	a.machine.HandleEvent(core.KeyEvent{Type: core.KeyPress, Key: core.KeyDown})
	a.press(core.KeyEnter)
	require.Equal(t, Controls, a.active())

	controls := a.machine.Active().(*ControlsState)
	lines := controls.Lines()
	require.Len(t, lines, 2, "disabled bindings are hidden")
	assert.Contains(t, lines[1], "space")
	assert.Contains(t, lines[1], "fire")

	a.press(core.KeyOther)
	assert.Equal(t, Select, a.active())
}

func TestMenuCursorResetsOnReturn(t *testing.T) {
	a := newApp(t)
	a.press(core.KeyOther)
	a.machine.HandleEvent(core.KeyEvent{Type: core.KeyPress, Key: core.KeyDown})
	a.press(core.KeyEnter)
	a.press(core.KeyOther)
	require.Equal(t, Select, a.active())

	sel := a.machine.Active().(*SelectState)
	opts := sel.Nested().Active().(*OptionsState)
	assert.Equal(t, PlayCmd, opts.Active())
}

func TestGameKeepsBestScore(t *testing.T) {
	cfg := config.Default()
	g := NewGame(cfg, asteroids.HeadlessResources(cfg), core.RuntimeConfig{Step: step}, nil)
	require.NoError(t, g.Startup(0, fsm.Payload{KeyLastScore: 300, KeyBestScore: 500}))

	persist := g.Cleanup()
	assert.Equal(t, 0, persist.Int(KeyLastScore))
	assert.Equal(t, 500, persist.Int(KeyBestScore))
}

func TestGamePauseAndFire(t *testing.T) {
	cfg := config.Default()
	g := NewGame(cfg, asteroids.HeadlessResources(cfg), core.RuntimeConfig{Step: step}, nil)
	require.NoError(t, g.Startup(0, nil))

	_, err := g.Update(fsm.Tick{Now: step, Keys: core.NewKeySnapshot(), Frame: 1})
	require.NoError(t, err)
	require.NotNil(t, g.World().Ship())

	g.HandleEvent(core.KeyEvent{Type: core.KeyPress, Key: core.KeyFire})
	assert.Equal(t, 1, g.World().Gun().Len())

	g.HandleEvent(core.KeyEvent{Type: core.KeyPress, Key: core.KeyPause})
	assert.True(t, g.World().Paused())
	assert.False(t, g.Done())
}

func TestGameStartupRejectsMissingSprites(t *testing.T) {
	cfg := config.Default()
	g := NewGame(cfg, core.StaticResources{}, core.RuntimeConfig{Step: step}, nil)
	var cfgErr *core.ConfigurationError
	assert.ErrorAs(t, g.Startup(0, nil), &cfgErr)
}

func TestGameSeedsDifferPerGame(t *testing.T) {
	cfg := config.Default()
	g := NewGame(cfg, asteroids.HeadlessResources(cfg), core.RuntimeConfig{Step: step, Seed: 1}, nil)

	hashes := make([]uint64, 0, 2)
	for range 2 {
		require.NoError(t, g.Startup(0, nil))
		for i := range 5 {
			_, err := g.Update(fsm.Tick{Now: time.Duration(i+1) * step, Keys: core.NewKeySnapshot()})
			require.NoError(t, err)
		}
		hashes = append(hashes, g.World().Snapshot().Hash)
		g.Cleanup()
	}
	assert.NotEqual(t, hashes[0], hashes[1])
}

func TestGameOverLeavesAfterDelay(t *testing.T) {
	cfg := config.Default()
	// The first asteroids spawn on top of the ship, so a ship without
	// respawn immunity dies within a few ticks.
	cfg.Gameplay.Lives = 1
	cfg.Ship.ImmortalFrames = 1
	g := NewGame(cfg, asteroids.HeadlessResources(cfg), core.RuntimeConfig{Step: step, Seed: 3}, nil)
	require.NoError(t, g.Startup(0, nil))

	frame := 0
	tickUntil := func(now time.Duration) {
		for time.Duration(frame)*step < now {
			frame++
			_, err := g.Update(fsm.Tick{Now: time.Duration(frame) * step, Keys: core.NewKeySnapshot()})
			require.NoError(t, err)
		}
	}
	tickUntil(20 * step)
	require.True(t, g.World().GameOver())

	g.HandleEvent(core.KeyEvent{Type: core.KeyPress, Key: core.KeyOther})
	assert.False(t, g.Done(), "keys are ignored right after game over")

	tickUntil(LeaveDelay + 10*step)
	g.HandleEvent(core.KeyEvent{Type: core.KeyPress, Key: core.KeyOther})
	assert.True(t, g.Done())
	assert.Equal(t, Select, g.Next())
}

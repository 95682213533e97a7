package states

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/fsm"
)

// Deps are the collaborators the application states need.
type Deps struct {
	Config    config.AsteroidsConfig
	Resources core.ResourceProvider
	Runtime   core.RuntimeConfig
	Logger    *log.Logger
	Bindings  []key.Binding
}

// Build returns the top-level state table and its start state.
func Build(deps Deps) (fsm.Table, string) {
	domain := core.NewRect(0, 0, deps.Config.World.Width, deps.Config.World.Height)
	blink := time.Duration(deps.Config.Gameplay.BlinkMs) * time.Millisecond
	return fsm.Table{
		Title:    NewTitle(domain, blink),
		Select:   NewSelect(domain, fsm.WithLogger(deps.Logger)),
		Controls: NewControls(domain, deps.Bindings, blink),
		Game:     NewGame(deps.Config, deps.Resources, deps.Runtime, deps.Logger),
		Quit:     fsm.NewQuit(Quit),
	}, Title
}

package states

import (
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/fsm"
)

// menuItems are the options of the main menu, each naming a command state.
var menuItems = []string{PlayCmd, ControlsCmd, QuitCmd}

// SelectState is the main menu. It owns a nested machine holding the option
// list and one command state per option.
type SelectState struct {
	*fsm.Controlling
	domain core.Rect
}

// NewSelect creates the main menu.
func NewSelect(domain core.Rect, opts ...fsm.Option) *SelectState {
	build := func() (fsm.Table, string) {
		return fsm.Table{
			Options:     NewOptions(domain, menuItems),
			PlayCmd:     fsm.NewCommand(PlayCmd, Game),
			ControlsCmd: fsm.NewCommand(ControlsCmd, Controls),
			QuitCmd:     fsm.NewCommand(QuitCmd, Quit),
		}, Options
	}
	return &SelectState{
		Controlling: fsm.NewControlling(Select, build, opts...),
		domain:      domain,
	}
}

// Draw paints the header, the scores carried in the payload and the menu.
func (s *SelectState) Draw(r core.Renderer, interpolation float64) {
	d := s.domain
	r.DrawText("A S T E R O I D S", core.Vec{X: d.Center().X, Y: d.Top() + d.H/6},
		core.TextStyle{Color: core.ColorBrightWhite, Bold: true})

	persist := s.Persist()
	if _, played := persist[KeyLastScore]; played {
		line := fmt.Sprintf("LAST %d   BEST %d", persist.Int(KeyLastScore), persist.Int(KeyBestScore))
		r.DrawText(line, core.Vec{X: d.Center().X, Y: d.Top() + d.H/4}, core.TextStyle{Color: core.ColorGray})
	}
	s.Controlling.Draw(r, interpolation)
}

// OptionsState is the cursor over the menu items.
type OptionsState struct {
	fsm.Base
	domain core.Rect
	items  []string
	active int
}

// NewOptions creates the option list.
func NewOptions(domain core.Rect, items []string) *OptionsState {
	return &OptionsState{
		Base:   fsm.NewBase(Options, ""),
		domain: domain,
		items:  items,
	}
}

// Targets lists the command states the options lead to.
func (s *OptionsState) Targets() []string {
	return s.items
}

// Active returns the highlighted item.
func (s *OptionsState) Active() string {
	return s.items[s.active]
}

// HandleEvent moves the cursor and confirms with Enter.
func (s *OptionsState) HandleEvent(ev core.KeyEvent) {
	if !ev.Pressed() {
		return
	}
	switch ev.Key {
	case core.KeyUp:
		s.active = max(0, s.active-1)
	case core.KeyDown:
		s.active = min(len(s.items)-1, s.active+1)
	case core.KeyEnter, core.KeyFire:
		s.Finish(s.Active())
	}
}

// Draw paints the items, highlighting the active one.
func (s *OptionsState) Draw(r core.Renderer, _ float64) {
	c := s.domain.Center()
	spacing := s.domain.H / 10
	for i, item := range s.items {
		style := core.TextStyle{Color: core.ColorWhite}
		label := item
		if i == s.active {
			style = core.TextStyle{Color: core.ColorBrightYellow, Bold: true}
			label = "> " + item + " <"
		}
		r.DrawText(label, core.Vec{X: c.X, Y: c.Y + float64(i)*spacing}, style)
	}
}

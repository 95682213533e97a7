package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// KeyMap binds terminal keys to semantic keys. It doubles as the help.KeyMap
// rendered below the playfield and as the list shown on the controls screen.
type KeyMap struct {
	Thrust key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Fire   key.Binding
	Enter  key.Binding
	Back   key.Binding
	Pause  key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Thrust: key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "thrust")),
		Down:   key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "menu down")),
		Left:   key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "rotate left")),
		Right:  key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "rotate right")),
		Fire:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "fire")),
		Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		Pause:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

// Translate maps a key message to a semantic key. Unbound printable keys map
// to core.KeyOther so "press any key" prompts see them.
func (km KeyMap) Translate(msg tea.KeyMsg) (k core.Key, quit bool) {
	switch {
	case key.Matches(msg, km.Quit):
		return core.KeyNone, true
	case key.Matches(msg, km.Thrust):
		return core.KeyUp, false
	case key.Matches(msg, km.Down):
		return core.KeyDown, false
	case key.Matches(msg, km.Left):
		return core.KeyLeft, false
	case key.Matches(msg, km.Right):
		return core.KeyRight, false
	case key.Matches(msg, km.Fire):
		return core.KeyFire, false
	case key.Matches(msg, km.Enter):
		return core.KeyEnter, false
	case key.Matches(msg, km.Back):
		return core.KeyEscape, false
	case key.Matches(msg, km.Pause):
		return core.KeyPause, false
	case msg.Type == tea.KeyRunes:
		return core.KeyOther, false
	}
	return core.KeyNone, false
}

// Bindings lists every binding in display order.
func (km KeyMap) Bindings() []key.Binding {
	return []key.Binding{km.Thrust, km.Left, km.Right, km.Fire, km.Pause, km.Down, km.Enter, km.Back, km.Quit}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Thrust, km.Left, km.Right, km.Fire, km.Pause, km.Quit}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Thrust, km.Left, km.Right, km.Fire},
		{km.Down, km.Enter, km.Back, km.Pause, km.Quit},
	}
}

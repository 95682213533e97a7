package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTranslate(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
		quit bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.KeyUp, false},
		{"w", runes("w"), core.KeyUp, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.KeyDown, false},
		{"a", runes("a"), core.KeyLeft, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.KeyFire, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyEnter, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyEscape, false},
		{"p", runes("p"), core.KeyPause, false},
		{"q", runes("q"), core.KeyNone, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.KeyNone, true},
		{"unbound letter", runes("x"), core.KeyOther, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.KeyNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, quit := km.Translate(tt.msg)
			assert.Equal(t, tt.want, k)
			assert.Equal(t, tt.quit, quit)
		})
	}
}

func TestBindingsHaveHelp(t *testing.T) {
	km := DefaultKeyMap()
	for _, b := range km.Bindings() {
		assert.NotEmpty(t, b.Help().Key)
		assert.NotEmpty(t, b.Help().Desc)
	}
	assert.Len(t, km.FullHelp(), 2)
}

package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// scriptedFrame ends the session after a fixed number of frames.
type scriptedFrame struct {
	left  int
	calls int
	err   error
}

func (f *scriptedFrame) Frame() (bool, error) {
	f.calls++
	f.left--
	if f.left < 0 {
		return false, f.err
	}
	return true, nil
}

func newModel(frame Frame) (*Model, *Input) {
	in := NewInput(core.NewManualClock(0), 0)
	r := NewRenderer(core.NewScreen(20, 10), core.NewRect(0, 0, 200, 100))
	return NewModel(frame, in, r, DefaultKeyMap(), 60, nil), in
}

func TestModelRunsFramesUntilDone(t *testing.T) {
	frame := &scriptedFrame{left: 2}
	m, _ := newModel(frame)
	require.NotNil(t, m.Init())

	_, cmd := m.Update(FrameMsg(time.Now()))
	assert.NotNil(t, cmd)
	_, cmd = m.Update(FrameMsg(time.Now()))
	assert.NotNil(t, cmd)

	_, cmd = m.Update(FrameMsg(time.Now()))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Equal(t, 3, frame.calls)
	assert.Empty(t, m.View())
	assert.NoError(t, m.Err())
}

func TestModelKeepsFrameError(t *testing.T) {
	boom := errors.New("boom")
	m, _ := newModel(&scriptedFrame{err: boom})
	m.Update(FrameMsg(time.Now()))
	assert.ErrorIs(t, m.Err(), boom)
}

func TestModelBuffersKeys(t *testing.T) {
	m, in := newModel(&scriptedFrame{left: 10})

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	f := in.Poll()
	assert.Equal(t, []core.KeyEvent{{Type: core.KeyPress, Key: core.KeyFire}}, f.Events)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.True(t, in.Poll().Closed)
}

func TestModelResizeReservesHelpRow(t *testing.T) {
	m, _ := newModel(&scriptedFrame{left: 10})
	m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})

	s := m.renderer.Screen()
	assert.Equal(t, 50, s.Width())
	assert.Equal(t, 19, s.Height())
	assert.Contains(t, m.View(), "thrust")
}

// Package tui runs a session inside a Bubble Tea program. Bubble Tea delivers
// key messages and frame ticks to the model one at a time; every frame tick
// runs one scheduler frame and the view serializes the painted screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent to trigger one real frame.
type FrameMsg time.Time

// frameCmd returns a Bubble Tea command that sends a frame message after one
// frame interval at fps.
func frameCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(max(fps, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

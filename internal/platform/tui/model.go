package tui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// Frame runs one real frame and reports whether the session goes on. It is
// satisfied by *scheduler.Scheduler.
type Frame interface {
	Frame() (running bool, err error)
}

// Model is the Bubble Tea model for one session.
type Model struct {
	frame    Frame
	input    *Input
	renderer *Renderer
	keys     KeyMap
	help     help.Model
	fps      int
	logger   *log.Logger
	err      error
	quitting bool
}

// NewModel creates the model. The scheduler must read from input and paint
// into renderer.
func NewModel(frame Frame, input *Input, renderer *Renderer, keys KeyMap, fps int, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Model{
		frame:    frame,
		input:    input,
		renderer: renderer,
		keys:     keys,
		help:     help.New(),
		fps:      fps,
		logger:   logger,
	}
}

// Init starts the frame loop.
func (m *Model) Init() tea.Cmd {
	return frameCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		k, quit := m.keys.Translate(msg)
		if quit {
			m.input.Close()
			return m, nil
		}
		m.input.Press(k)
		return m, nil

	case tea.WindowSizeMsg:
		// The bottom row holds the help line.
		m.renderer.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		running, err := m.frame.Frame()
		if !running {
			m.err = err
			m.quitting = true
			return m, tea.Quit
		}
		return m, frameCmd(m.fps)
	}

	return m, nil
}

// View renders the last painted frame and the help line.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(RenderScreen(m.renderer.Screen()))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Err returns the error that ended the session, if any.
func (m *Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program on the alternate screen and blocks until
// the session ends.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	if m.err != nil {
		m.logger.Error("session failed", "err", m.err)
	}
	return m.err
}

package core

// Key is a semantic key, abstracted from the physical key or terminal sequence.
type Key int

const (
	KeyNone   Key = iota
	KeyUp         // W, Up arrow - thrust, menu up
	KeyDown       // S, Down arrow - menu down
	KeyLeft       // A, Left arrow - rotate left
	KeyRight      // D, Right arrow - rotate right
	KeyFire       // Space - fire laser
	KeyEnter      // Enter - confirm selection
	KeyEscape     // Esc - back to menu
	KeyPause      // P - pause/unpause
	KeyOther      // any other printable key
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyFire:
		return "Fire"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyPause:
		return "Pause"
	case KeyOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// EventType distinguishes key presses from releases.
type EventType int

const (
	KeyPress EventType = iota
	KeyRelease
)

// KeyEvent is a discrete key transition delivered once per real frame.
type KeyEvent struct {
	Type EventType
	Key  Key
}

// Pressed reports whether the event is a press of any key.
func (e KeyEvent) Pressed() bool {
	return e.Type == KeyPress
}

// KeySnapshot is the set of keys held down at the start of a frame.
type KeySnapshot struct {
	held map[Key]bool
}

// NewKeySnapshot creates an empty snapshot.
func NewKeySnapshot() KeySnapshot {
	return KeySnapshot{held: make(map[Key]bool)}
}

// Set marks a key as held.
func (s *KeySnapshot) Set(k Key) {
	if s.held == nil {
		s.held = make(map[Key]bool)
	}
	s.held[k] = true
}

// Has returns true if the key is held.
func (s KeySnapshot) Has(k Key) bool {
	if s.held == nil {
		return false
	}
	return s.held[k]
}

// Len returns the number of held keys.
func (s KeySnapshot) Len() int {
	return len(s.held)
}

// InputFrame is what an InputSource hands over once per real frame.
type InputFrame struct {
	Events []KeyEvent  // discrete transitions since the previous poll, in order
	Held   KeySnapshot // keys held at poll time
	Closed bool        // the user asked to close the application
}

// InputSource supplies input refreshed once per real frame, before any tick.
type InputSource interface {
	Poll() InputFrame
}

// ScriptedInput replays a fixed list of frames and then reports empty frames.
// Used by tests and the headless simulator.
type ScriptedInput struct {
	Frames []InputFrame
	next   int
}

// Poll returns the next scripted frame.
func (s *ScriptedInput) Poll() InputFrame {
	if s.next >= len(s.Frames) {
		return InputFrame{Held: NewKeySnapshot()}
	}
	f := s.Frames[s.next]
	s.next++
	return f
}

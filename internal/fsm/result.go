package fsm

// Outcome is the three-way result of a state update.
type Outcome int

const (
	// Continue keeps the current state active.
	Continue Outcome = iota
	// Transition asks the owning machine to activate another state.
	Transition
	// Quit ends the owning machine, and with the top-level one the session.
	Quit
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Transition:
		return "transition"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Result is returned up the call chain by every Update.
type Result struct {
	Outcome Outcome
	Next    string // target name when Outcome is Transition
}

// Stay returns a Continue result.
func Stay() Result {
	return Result{Outcome: Continue}
}

// TransitionTo returns a Transition result towards name.
func TransitionTo(name string) Result {
	return Result{Outcome: Transition, Next: name}
}

// QuitApp returns a Quit result.
func QuitApp() Result {
	return Result{Outcome: Quit}
}

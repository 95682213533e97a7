package core

import "fmt"

// ConfigurationError reports an invalid assembly of the application, such as a
// transition naming a state absent from the table. It is fatal at startup.
type ConfigurationError struct {
	Op   string // operation that detected the problem, e.g. "fsm.setup"
	Name string // offending name, if any
	Err  error  // underlying cause, may be nil
}

func (e *ConfigurationError) Error() string {
	msg := "configuration error"
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Name != "" {
		msg += fmt.Sprintf(" %q", e.Name)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// InvariantViolation is the panic value used for programming errors that must
// fail fast instead of being clamped, e.g. a fragment level above the maximum.
type InvariantViolation struct {
	What   string
	Detail string
}

func (e *InvariantViolation) Error() string {
	return "invariant violated: " + e.What + ": " + e.Detail
}

// Violate panics with an InvariantViolation.
func Violate(what, format string, args ...any) {
	panic(&InvariantViolation{What: what, Detail: fmt.Sprintf(format, args...)})
}

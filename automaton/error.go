package automaton

import "fmt"

// UndefinedTransitionError is raised when a built automaton is asked to
// transition on a byte that lies outside its declared alphabet. It bubbles
// unchanged to the caller — it is never retried or silently swallowed.
type UndefinedTransitionError struct {
	// Char is the offending byte.
	Char byte
	// Pos is the offset of Char within the input being tested, when known.
	// Callers that can't determine a position (e.g. a bare Transition call)
	// leave this at -1.
	Pos int
}

func (e *UndefinedTransitionError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("automaton: byte %q at position %d is outside the declared alphabet", e.Char, e.Pos)
	}
	return fmt.Sprintf("automaton: byte %q is outside the declared alphabet", e.Char)
}

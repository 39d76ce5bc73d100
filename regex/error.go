package regex

import "fmt"

// SyntaxError reports a malformed regular expression: unbalanced
// parentheses, an operator folded without enough operands, a non-singleton
// frame stack at end of input, or a dangling '\' at end of pattern.
// Construction of the NFA/DFA is never attempted once parsing fails.
type SyntaxError struct {
	Pos    int
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regex: syntax error at position %d: %s", e.Pos, e.Reason)
}

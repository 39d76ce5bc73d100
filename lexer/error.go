package lexer

import "strconv"

// UnmatchedInputError is returned by Scanner.Next when Config's
// UnmatchedInputPolicy is ReturnError and no pattern in the active Spec can
// match starting at Pos.
type UnmatchedInputError struct {
	Pos int
}

func (e *UnmatchedInputError) Error() string {
	return "lexer: no pattern matches at position " + strconv.Itoa(e.Pos)
}

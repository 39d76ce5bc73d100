package dfa

import (
	"errors"

	"github.com/lexkit/lexkit/automaton"
)

// ErrEmptyAlphabet is returned by constructions that need to enumerate Σ
// but were given an empty one; no transitions could ever be recorded.
var ErrEmptyAlphabet = errors.New("dfa: alphabet must not be empty")

func undefinedTransition(c byte, pos int) error {
	return &automaton.UndefinedTransitionError{Char: c, Pos: pos}
}

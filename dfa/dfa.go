// Package dfa implements the deterministic finite automaton core plus the
// three ways of producing one: subset construction from an NFA, the
// followpos direct construction from an augmented regex AST, and
// Hopcroft/Moore partition-refinement minimization.
//
// Every DFA produced by this package uses partial transitions with an
// implicit dead state, a convention applied everywhere so it unifies
// cleanly with minimization — see DESIGN.md.
package dfa

import (
	"github.com/lexkit/lexkit/automaton"
	"github.com/lexkit/lexkit/charset"
)

// StateID addresses a DFA state as a dense small integer, the same
// arena-indexing convention as nfa.StateID.
type StateID uint32

// DeadState is the sentinel representing the implicit dead sink: an
// absent transition entry denotes "go to DeadState", and DeadState is
// never itself one of the DFA's numbered states.
const DeadState StateID = 0xFFFFFFFF

// noStart marks a DFA with no start state: the empty language, where a
// start state may legitimately be absent.
const noStart StateID = 0xFFFFFFFE

// DFA is the tuple (N, s0?, F, δ).
type DFA struct {
	numStates int
	start     StateID // noStart when the language is empty
	accept    []bool  // indexed by StateID, length numStates
	trans     []map[byte]StateID
	alphabet  charset.Alphabet
}

var _ automaton.Automaton[StateID] = (*DFA)(nil)

// NumStates returns the number of real (non-dead) states.
func (d *DFA) NumStates() int { return d.numStates }

// Alphabet returns the alphabet Σ this DFA was built against.
func (d *DFA) Alphabet() *charset.Alphabet { return &d.alphabet }

// IsAcceptState reports whether s (a real state, not DeadState) is
// accepting.
func (d *DFA) IsAcceptState(s StateID) bool {
	if s == DeadState || int(s) >= d.numStates {
		return false
	}
	return d.accept[s]
}

// InitState returns the DFA's start state, or DeadState if the language
// is empty.
func (d *DFA) InitState() StateID {
	if d.start == noStart {
		return DeadState
	}
	return d.start
}

// IsDead reports whether s is the dead state.
func (d *DFA) IsDead(s StateID) bool { return s == DeadState }

// IsAccept reports whether s is accepting. Satisfies automaton.Automaton.
func (d *DFA) IsAccept(s StateID) bool { return d.IsAcceptState(s) }

// Transition consumes one byte from state s, returning
// *automaton.UndefinedTransitionError if c lies outside the DFA's
// declared alphabet. A defined-but-unrecorded transition (the normal case
// for a non-accepting dead end) returns DeadState with no error.
func (d *DFA) Transition(s StateID, c byte) (StateID, error) {
	if !d.alphabet.Contains(c) {
		return DeadState, undefinedTransition(c, -1)
	}
	if s == DeadState || int(s) >= d.numStates {
		return DeadState, nil
	}
	if next, ok := d.trans[s][c]; ok {
		return next, nil
	}
	return DeadState, nil
}

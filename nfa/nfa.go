// Package nfa implements the Thompson-construction NFA core: an
// arena-indexed state table with epsilon transitions, plus two equivalent
// simulation strategies.
package nfa

import "github.com/lexkit/lexkit/charset"

// StateID uniquely identifies an NFA state, addressed as a dense small
// integer into the NFA's own state table rather than a pointer graph.
type StateID uint32

// byteTrans is one byte-consuming transition out of a state.
type byteTrans struct {
	c    byte
	next StateID
}

// state holds one NFA state's outgoing transitions: zero or more
// epsilon-transitions (no input consumed) and zero or more byte
// transitions. Thompson fragments only ever need at most two epsilon
// edges or one byte edge per state, but the general arrays keep the type
// usable for states built outside Thompson construction too.
type state struct {
	epsilon []StateID
	bytes   []byteTrans
}

// NFA is the tuple (N, s0, F, δ): a state count, a start state, an accept
// set, and a transition relation over an optional input character. No
// state is ever shared across automata; a Builder owns and assigns every
// index in one NFA.
type NFA struct {
	states   []state
	start    StateID
	accept   map[StateID]bool
	alphabet charset.Alphabet
}

// NumStates returns the number of states in the automaton.
func (n *NFA) NumStates() int { return len(n.states) }

// Start returns the NFA's start state.
func (n *NFA) Start() StateID { return n.start }

// IsAcceptState reports whether s is a member of the accept set F.
func (n *NFA) IsAcceptState(s StateID) bool { return n.accept[s] }

// Alphabet returns the declared alphabet Σ this NFA was built against.
func (n *NFA) Alphabet() *charset.Alphabet { return &n.alphabet }

package nfa

import "github.com/lexkit/lexkit/charset"

// Builder constructs an NFA incrementally, owning the single state-id
// allocator and transition table shared by every fragment folded into it.
// This mirrors coregx/coregex's nfa.Builder (nfa/builder.go): a low-level
// API used internally by a higher-level compiler (here, Thompson
// construction) rather than by end users directly.
type Builder struct {
	states []state
	accept map[StateID]bool
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{accept: make(map[StateID]bool)}
}

// AddState allocates a fresh state with no transitions and returns its id.
func (b *Builder) AddState() StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, state{})
	return id
}

// AddEpsilon adds an ε-transition from -> to.
func (b *Builder) AddEpsilon(from, to StateID) {
	b.states[from].epsilon = append(b.states[from].epsilon, to)
}

// AddByteTransition adds a transition from -> to consuming byte c.
func (b *Builder) AddByteTransition(from StateID, c byte, to StateID) {
	b.states[from].bytes = append(b.states[from].bytes, byteTrans{c: c, next: to})
}

// MarkAccept records s as a member of the accept set.
func (b *Builder) MarkAccept(s StateID) {
	b.accept[s] = true
}

// Build finalizes the NFA with the given start state and declared
// alphabet. The Builder must not be reused afterward.
func (b *Builder) Build(start StateID, alphabet charset.Alphabet) *NFA {
	return &NFA{
		states:   b.states,
		start:    start,
		accept:   b.accept,
		alphabet: alphabet,
	}
}

package nfa

import "github.com/lexkit/lexkit/automaton"

// EpsilonClosure returns the reflexive transitive closure of ε-transitions
// reachable from the given set of states, in canonical sorted form.
func EpsilonClosure(n *NFA, from []StateID) []StateID {
	seen := newStateSet(len(n.states))
	stack := append([]StateID(nil), from...)
	for _, s := range from {
		seen.insert(s)
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range n.states[top].epsilon {
			if seen.insert(next) {
				stack = append(stack, next)
			}
		}
	}
	return seen.sorted()
}

// Move returns every state reachable from the given set by consuming byte
// c, without taking the epsilon closure.
func Move(n *NFA, from []StateID, c byte) []StateID {
	seen := newStateSet(len(n.states))
	for _, s := range from {
		for _, t := range n.states[s].bytes {
			if t.c == c {
				seen.insert(t.next)
			}
		}
	}
	return seen.sorted()
}

func isAcceptSet(n *NFA, set []StateID) bool {
	for _, s := range set {
		if n.accept[s] {
			return true
		}
	}
	return false
}

// Simulator adapts an NFA to the automaton.Automaton capability set using
// a "subset-as-you-go" strategy: the automaton's own state is the current
// epsilon-closed subset of NFA states.
type Simulator struct {
	nfa *NFA
}

// NewSimulator wraps n for subset-as-you-go simulation.
func NewSimulator(n *NFA) *Simulator { return &Simulator{nfa: n} }

var _ automaton.Automaton[[]StateID] = (*Simulator)(nil)

func (s *Simulator) InitState() []StateID {
	return EpsilonClosure(s.nfa, []StateID{s.nfa.start})
}

func (s *Simulator) IsDead(set []StateID) bool {
	return len(set) == 0
}

func (s *Simulator) IsAccept(set []StateID) bool {
	return isAcceptSet(s.nfa, set)
}

func (s *Simulator) Transition(set []StateID, c byte) ([]StateID, error) {
	if !s.nfa.alphabet.Contains(c) {
		return nil, &automaton.UndefinedTransitionError{Char: c, Pos: -1}
	}
	return EpsilonClosure(s.nfa, Move(s.nfa, set, c)), nil
}

// Accepts runs the subset-as-you-go simulation mode over s.
func Accepts(n *NFA, s string) (bool, error) {
	return automaton.Test[[]StateID](NewSimulator(n), s)
}

// OnTheFlyAccepts runs an alternative simulation mode: two reusable sparse
// sets (current, next), each serving both as the list of states and as the
// already-on marks that deduplicate insertions, avoiding a fresh hash set
// allocation per input symbol. It must accept/reject exactly the strings
// Accepts does.
func OnTheFlyAccepts(n *NFA, s string) (bool, error) {
	current := newStateSet(len(n.states))
	next := newStateSet(len(n.states))

	var addClosure func(set *stateSet, id StateID)
	addClosure = func(set *stateSet, id StateID) {
		if !set.insert(id) {
			return
		}
		for _, eps := range n.states[id].epsilon {
			addClosure(set, eps)
		}
	}

	addClosure(current, n.start)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if !n.alphabet.Contains(c) {
			return false, &automaton.UndefinedTransitionError{Char: c, Pos: i}
		}
		next.clear()
		for _, idx := range current.dense {
			from := StateID(idx)
			for _, t := range n.states[from].bytes {
				if t.c == c {
					addClosure(next, t.next)
				}
			}
		}
		current, next = next, current
		if current.len() == 0 {
			break
		}
	}

	for _, idx := range current.dense {
		if n.accept[StateID(idx)] {
			return true, nil
		}
	}
	return false, nil
}

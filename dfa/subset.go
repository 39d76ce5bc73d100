package dfa

import (
	"encoding/binary"

	"github.com/lexkit/lexkit/charset"
	"github.com/lexkit/lexkit/nfa"
)

// canonicalKey encodes a sorted slice of NFA state ids into a single
// string usable as a map key, the canonical-form identity for a composite
// DFA state built from a set of NFA states.
func canonicalKey(ids []nfa.StateID) string {
	buf := make([]byte, 4*len(ids))
	for i, id := range ids {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(id))
	}
	return string(buf)
}

// FromNFA converts an NFA into an equivalent DFA via subset construction.
// alphabet is the explicit, caller-supplied Σ over which transitions are
// enumerated; characters outside it are undefined at run time (reported
// by Transition, not by FromNFA).
//
// Per the partial-transition convention this package standardizes on, a
// transition whose epsilon-closed move set is empty is never materialized
// as an explicit dead state — it is simply left unrecorded, which
// DFA.Transition already treats as "go to DeadState".
func FromNFA(n *nfa.NFA, alphabet charset.Alphabet) (*DFA, error) {
	if alphabet.Len() == 0 {
		return nil, ErrEmptyAlphabet
	}

	type pending struct {
		ids []nfa.StateID
		id  StateID
	}

	startSet := nfa.EpsilonClosure(n, []nfa.StateID{n.Start()})
	startKey := canonicalKey(startSet)

	indexOf := map[string]StateID{startKey: 0}
	sets := [][]nfa.StateID{startSet}
	var trans []map[byte]StateID
	trans = append(trans, map[byte]StateID{})

	worklist := []pending{{ids: startSet, id: 0}}

	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		for _, a := range alphabet.Bytes() {
			moved := nfa.Move(n, cur.ids, a)
			if len(moved) == 0 {
				continue // partial transition: leave DeadState implicit
			}
			closed := nfa.EpsilonClosure(n, moved)
			key := canonicalKey(closed)
			target, ok := indexOf[key]
			if !ok {
				target = StateID(len(sets))
				indexOf[key] = target
				sets = append(sets, closed)
				trans = append(trans, map[byte]StateID{})
				worklist = append(worklist, pending{ids: closed, id: target})
			}
			trans[cur.id][a] = target
		}
	}

	accept := make([]bool, len(sets))
	for i, set := range sets {
		for _, s := range set {
			if n.IsAcceptState(s) {
				accept[i] = true
				break
			}
		}
	}

	return &DFA{
		numStates: len(sets),
		start:     0,
		accept:    accept,
		trans:     trans,
		alphabet:  alphabet,
	}, nil
}

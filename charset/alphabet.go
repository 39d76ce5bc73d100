// Package charset provides the caller-supplied alphabet abstraction used by
// every construction that must enumerate transitions: subset construction,
// minimization, and followpos. It is adapted from coregx/coregex's
// ByteClasses equivalence-class technique (nfa/alphabet.go), narrowed from
// a 256-way equivalence-class reduction to a simple explicit membership
// set, since lexkit's alphabets are caller-declared and typically tiny.
package charset

import "sort"

// Alphabet is an explicit, finite set of bytes (spec's Σ). It is immutable
// after construction.
type Alphabet struct {
	member [256]bool
	bytes  []byte // sorted, deduplicated
}

// New builds an Alphabet from every distinct byte appearing in s.
func New(s string) Alphabet {
	var a Alphabet
	for i := 0; i < len(s); i++ {
		a.member[s[i]] = true
	}
	for b := 0; b < 256; b++ {
		if a.member[b] {
			a.bytes = append(a.bytes, byte(b))
		}
	}
	return a
}

// Contains reports whether b is a member of the alphabet.
func (a *Alphabet) Contains(b byte) bool {
	return a.member[b]
}

// Bytes returns the alphabet's members in ascending sorted order. The
// returned slice must not be mutated by the caller.
func (a *Alphabet) Bytes() []byte {
	return a.bytes
}

// Len returns the number of distinct bytes in the alphabet.
func (a *Alphabet) Len() int {
	return len(a.bytes)
}

// String reconstructs a canonical (sorted, deduplicated) string
// representation of the alphabet.
func (a *Alphabet) String() string {
	return string(a.bytes)
}

// Union returns a new Alphabet containing every byte from either input.
func Union(a, b Alphabet) Alphabet {
	var out Alphabet
	for i := 0; i < 256; i++ {
		out.member[i] = a.member[i] || b.member[i]
	}
	for bb := 0; bb < 256; bb++ {
		if out.member[bb] {
			out.bytes = append(out.bytes, byte(bb))
		}
	}
	return out
}

// sortBytes is a small helper kept for callers that build an alphabet from
// an unsorted, possibly-duplicated byte slice instead of a string.
func sortBytes(bs []byte) []byte {
	cp := append([]byte(nil), bs...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	return cp
}

// FromBytes builds an Alphabet from an arbitrary byte slice.
func FromBytes(bs []byte) Alphabet {
	return New(string(sortBytes(bs)))
}

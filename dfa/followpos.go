package dfa

import (
	"sort"

	"github.com/lexkit/lexkit/charset"
	"github.com/lexkit/lexkit/regex"
)

// leafInfo records, for one numbered leaf position, the byte it matches
// (meaningless for the EndMarker position, which matches nothing) and
// whether it is the EndMarker.
type leafInfo struct {
	char      byte
	isEndMark bool
}

// followposTable is built bottom-up over the augmented tree: nullable,
// firstpos, and lastpos per node, followpos per leaf position.
type followposTable struct {
	leaves     []leafInfo
	followpos  [][]int // indexed by leaf position
	nullable   map[*regex.AST]bool
	firstpos   map[*regex.AST]map[int]bool
	lastpos    map[*regex.AST]map[int]bool
	endMarkPos int
}

func newFollowposTable() *followposTable {
	return &followposTable{
		nullable: make(map[*regex.AST]bool),
		firstpos: make(map[*regex.AST]map[int]bool),
		lastpos:  make(map[*regex.AST]map[int]bool),
	}
}

// build numbers every leaf of the augmented tree left to right, starting at
// 0, and fills in nullable/firstpos/lastpos/followpos in a single recursive
// post-order pass feeding the shared followpos table.
func (t *followposTable) build(n *regex.AST) {
	switch n.Kind {
	case regex.Empty:
		t.nullable[n] = true
		t.firstpos[n] = map[int]bool{}
		t.lastpos[n] = map[int]bool{}

	case regex.Leaf, regex.EndMarker:
		pos := len(t.leaves)
		n.Pos = pos
		if n.Kind == regex.EndMarker {
			t.endMarkPos = pos
			t.leaves = append(t.leaves, leafInfo{isEndMark: true})
		} else {
			t.leaves = append(t.leaves, leafInfo{char: n.Char})
		}
		t.followpos = append(t.followpos, nil)
		t.nullable[n] = false
		t.firstpos[n] = map[int]bool{pos: true}
		t.lastpos[n] = map[int]bool{pos: true}

	case regex.Union:
		t.build(n.Left)
		t.build(n.Right)
		t.nullable[n] = t.nullable[n.Left] || t.nullable[n.Right]
		t.firstpos[n] = union(t.firstpos[n.Left], t.firstpos[n.Right])
		t.lastpos[n] = union(t.lastpos[n.Left], t.lastpos[n.Right])

	case regex.Concat:
		t.build(n.Left)
		t.build(n.Right)
		t.nullable[n] = t.nullable[n.Left] && t.nullable[n.Right]
		if t.nullable[n.Left] {
			t.firstpos[n] = union(t.firstpos[n.Left], t.firstpos[n.Right])
		} else {
			t.firstpos[n] = copySet(t.firstpos[n.Left])
		}
		if t.nullable[n.Right] {
			t.lastpos[n] = union(t.lastpos[n.Left], t.lastpos[n.Right])
		} else {
			t.lastpos[n] = copySet(t.lastpos[n.Right])
		}
		// followpos rule 1: for every position i in lastpos(left), all of
		// firstpos(right) follows i.
		for i := range t.lastpos[n.Left] {
			t.followpos[i] = appendNew(t.followpos[i], t.firstpos[n.Right])
		}

	case regex.Closure:
		t.build(n.Child)
		t.nullable[n] = true
		t.firstpos[n] = copySet(t.firstpos[n.Child])
		t.lastpos[n] = copySet(t.lastpos[n.Child])
		// followpos rule 2: for every position i in lastpos(child), all of
		// firstpos(child) follows i.
		for i := range t.lastpos[n.Child] {
			t.followpos[i] = appendNew(t.followpos[i], t.firstpos[n.Child])
		}

	default:
		panic("dfa: unhandled AST node kind in followpos construction")
	}
}

func union(a, b map[int]bool) map[int]bool {
	out := make(map[int]bool, len(a)+len(b))
	for k := range a {
		out[k] = true
	}
	for k := range b {
		out[k] = true
	}
	return out
}

func copySet(a map[int]bool) map[int]bool {
	out := make(map[int]bool, len(a))
	for k := range a {
		out[k] = true
	}
	return out
}

func appendNew(dst []int, add map[int]bool) []int {
	existing := make(map[int]bool, len(dst))
	for _, v := range dst {
		existing[v] = true
	}
	for v := range add {
		if !existing[v] {
			dst = append(dst, v)
			existing[v] = true
		}
	}
	return dst
}

func sortedKeys(set map[int]bool) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

func posSetKey(ids []int) string {
	buf := make([]byte, 0, 4*len(ids))
	for _, id := range ids {
		buf = append(buf, byte(id), byte(id>>8), byte(id>>16), byte(id>>24))
	}
	return string(buf)
}

// FromAugmentedAST builds a DFA directly from an augmented regex AST,
// without ever materializing an NFA. tree must be the result of
// regex.Augment; alphabet is the explicit Σ over which transitions are
// enumerated.
func FromAugmentedAST(tree *regex.AST, alphabet charset.Alphabet) (*DFA, error) {
	if alphabet.Len() == 0 {
		return nil, ErrEmptyAlphabet
	}

	table := newFollowposTable()
	table.build(tree)

	start := sortedKeys(table.firstpos[tree])
	startKey := posSetKey(start)

	indexOf := map[string]StateID{startKey: 0}
	sets := [][]int{start}
	trans := []map[byte]StateID{{}}

	worklist := [][]int{start}
	ids := []StateID{0}

	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		curID := ids[len(ids)-1]
		ids = ids[:len(ids)-1]

		for _, a := range alphabet.Bytes() {
			next := map[int]bool{}
			for _, p := range cur {
				leaf := table.leaves[p]
				if !leaf.isEndMark && leaf.char == a {
					for _, fp := range table.followpos[p] {
						next[fp] = true
					}
				}
			}
			if len(next) == 0 {
				continue // partial transition: leave DeadState implicit
			}
			sorted := sortedKeys(next)
			key := posSetKey(sorted)
			target, ok := indexOf[key]
			if !ok {
				target = StateID(len(sets))
				indexOf[key] = target
				sets = append(sets, sorted)
				trans = append(trans, map[byte]StateID{})
				worklist = append(worklist, sorted)
				ids = append(ids, target)
			}
			trans[curID][a] = target
		}
	}

	accept := make([]bool, len(sets))
	for i, set := range sets {
		for _, p := range set {
			if table.leaves[p].isEndMark {
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

package lexer

import (
	"strings"

	"github.com/coregx/ahocorasick"
	"github.com/lexkit/lexkit/regex"
)

// literalOf reports whether tree denotes a single fixed string — a chain of
// Leaf nodes joined only by Concat, with no Union or Closure anywhere — and
// returns that string. This is the recognizer-side half of the literal
// fast-path prefilter.
func literalOf(tree *regex.AST) (string, bool) {
	switch tree.Kind {
	case regex.Leaf:
		return string(tree.Char), true
	case regex.Concat:
		l, ok := literalOf(tree.Left)
		if !ok {
			return "", false
		}
		r, ok := literalOf(tree.Right)
		if !ok {
			return "", false
		}
		return l + r, true
	default:
		return "", false
	}
}

// prefilter wraps an Aho-Corasick automaton built over every literal
// pattern in a Spec, used as a sound short-circuit ahead of per-byte DFA
// simulation. Grounded on coregx/coregex's meta/compile.go
// (ahocorasick.NewBuilder/AddPattern/Build) and meta/find.go
// (Automaton.Find(haystack, at) usage).
//
// It only activates when every pattern in the Spec is itself a literal:
// that is the one case in which resolving the longest-match/priority-tie
// winner among literals can never be beaten by a non-literal DFA, so the
// short-circuit is unconditionally sound rather than requiring a runtime
// bound on competing patterns' maximum length.
type prefilter struct {
	ac       *ahocorasick.Automaton
	priority map[string]int // literal text -> lowest pattern index claiming it
}

// buildPrefilter returns nil when the fast path does not apply: any
// non-literal pattern in literals, or zero literals at all.
func buildPrefilter(patterns []string, allLiteral bool) *prefilter {
	if !allLiteral || len(patterns) == 0 {
		return nil
	}
	priority := make(map[string]int, len(patterns))
	builder := ahocorasick.NewBuilder()
	added := false
	for k, lit := range patterns {
		if lit == "" {
			continue // a zero-length literal can never win the maximal-munch protocol
		}
		if cur, ok := priority[lit]; !ok || k < cur {
			priority[lit] = k
		}
		builder.AddPattern(lit)
		added = true
	}
	if !added {
		return nil
	}
	ac, err := builder.Build()
	if err != nil {
		return nil // building only fails with zero patterns, which added==true rules out
	}
	return &prefilter{ac: ac, priority: priority}
}

// matchAt reports the longest literal, with lowest-index tie-break, that
// matches starting exactly at input[pos:]. The Aho-Corasick automaton is
// used only as the fast yes/no gate ("does any literal start here at
// all?"); the actual longest+priority resolution is a direct comparison
// over the (typically small) literal set once the gate fires, so the
// result does not depend on which specific match ac.Find happens to report
// first.
func (p *prefilter) matchAt(input string, pos int) (text string, k int, ok bool) {
	m := p.ac.Find([]byte(input[pos:]), 0)
	if m == nil || m.Start != 0 {
		return "", 0, false
	}
	bestLen, bestK := -1, -1
	rest := input[pos:]
	for lit, idx := range p.priority {
		if !strings.HasPrefix(rest, lit) {
			continue
		}
		if len(lit) > bestLen || (len(lit) == bestLen && idx < bestK) {
			bestLen, bestK = len(lit), idx
		}
	}
	if bestK == -1 {
		return "", 0, false
	}
	return rest[:bestLen], bestK, true
}

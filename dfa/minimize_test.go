package dfa

import (
	"testing"

	"github.com/lexkit/lexkit/charset"
	"github.com/lexkit/lexkit/nfa"
	"github.com/lexkit/lexkit/regex"
)

func buildScenario4(t *testing.T) *DFA {
	t.Helper()
	alpha := charset.New("ab")
	tree, err := regex.Parse("(a|b)*abb")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	n, err := nfa.Compile(tree, alpha)
	if err != nil {
		t.Fatalf("nfa.Compile error: %v", err)
	}
	d, err := FromNFA(n, alpha)
	if err != nil {
		t.Fatalf("FromNFA error: %v", err)
	}
	return d
}

func TestMinimizeScenario4(t *testing.T) {
	d := buildScenario4(t)
	if d.NumStates() != 5 {
		t.Fatalf("unminimized subset DFA has %d states, want the classic 5", d.NumStates())
	}

	min := Minimize(d)
	if min.NumStates() != 4 {
		t.Fatalf("Minimize produced %d states, want 4", min.NumStates())
	}

	accept := []string{"abb", "aabb", "abababaabb", "ababb"}
	reject := []string{"", "ab", "abbb", "abab"}
	checkAcceptReject(t, min, accept, reject)
}

func TestMinimizeIdempotent(t *testing.T) {
	d := buildScenario4(t)
	once := Minimize(d)
	twice := Minimize(once)
	if once.NumStates() != twice.NumStates() {
		t.Fatalf("Minimize not idempotent in state count: %d vs %d", once.NumStates(), twice.NumStates())
	}
	accept := []string{"abb", "aabb", "ababb"}
	reject := []string{"", "ab", "abab"}
	checkAcceptReject(t, twice, accept, reject)
}

func TestMinimizeNeverIncreasesStates(t *testing.T) {
	patterns := []string{"(a|b)*abb", "a(b|c)*d", "(ab)*|a", "a|b|c"}
	alpha := charset.New("abcd")
	for _, pattern := range patterns {
		tree, err := regex.Parse(pattern)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", pattern, err)
		}
		n, err := nfa.Compile(tree, alpha)
		if err != nil {
			t.Fatalf("nfa.Compile(%q) error: %v", pattern, err)
		}
		d, err := FromNFA(n, alpha)
		if err != nil {
			t.Fatalf("FromNFA(%q) error: %v", pattern, err)
		}
		min := Minimize(d)
		if min.NumStates() > d.NumStates() {
			t.Errorf("pattern %q: Minimize grew states %d -> %d", pattern, d.NumStates(), min.NumStates())
		}
	}
}

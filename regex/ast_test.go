package regex

import "testing"

func TestNodeKindString(t *testing.T) {
	tests := []struct {
		kind NodeKind
		want string
	}{
		{Empty, "Empty"},
		{Leaf, "Leaf"},
		{EndMarker, "EndMarker"},
		{Closure, "Closure"},
		{Concat, "Concat"},
		{Union, "Union"},
		{NodeKind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestAugmentWrapsWithEndMarker(t *testing.T) {
	tree := newLeaf('a')
	aug := Augment(tree)
	if aug.Kind != Concat {
		t.Fatalf("Augment Kind = %v, want Concat", aug.Kind)
	}
	if aug.Left != tree {
		t.Fatal("Augment did not retain the original tree as Left")
	}
	if aug.Right.Kind != EndMarker {
		t.Fatalf("Augment Right.Kind = %v, want EndMarker", aug.Right.Kind)
	}
}

func TestCloneIsDeepAndIndependent(t *testing.T) {
	orig := newConcat(newLeaf('x'), newClosure(newLeaf('y')))
	cp := clone(orig)
	if cp == orig || cp.Left == orig.Left || cp.Right == orig.Right {
		t.Fatal("clone shares nodes with the original tree")
	}
	if cp.Left.Char != 'x' || cp.Right.Child.Char != 'y' {
		t.Fatalf("clone did not preserve structure: %+v", cp)
	}
}

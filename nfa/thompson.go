package nfa

import (
	"github.com/lexkit/lexkit/charset"
	"github.com/lexkit/lexkit/regex"
)

// fragment is a start/accept state pair produced by one bottom-up
// construction step, sharing the enclosing Builder's state allocator and
// transition table.
type fragment struct {
	start  StateID
	accept StateID
}

// Compile builds a Thompson NFA from a regex AST. The AST must come from
// regex.Parse (un-augmented: Compile has no use for EndMarker, which
// exists only to support the followpos construction).
func Compile(tree *regex.AST, alphabet charset.Alphabet) (*NFA, error) {
	b := NewBuilder()
	frag := compileNode(b, tree)
	b.MarkAccept(frag.accept)
	return b.Build(frag.start, alphabet), nil
}

// CompilePattern parses pattern and Thompson-compiles it in one step.
func CompilePattern(pattern string, alphabet charset.Alphabet) (*NFA, error) {
	tree, err := regex.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return Compile(tree, alphabet)
}

func compileNode(b *Builder, n *regex.AST) fragment {
	switch n.Kind {
	case regex.Empty:
		s, a := b.AddState(), b.AddState()
		b.AddEpsilon(s, a)
		return fragment{s, a}

	case regex.Leaf:
		s, a := b.AddState(), b.AddState()
		b.AddByteTransition(s, n.Char, a)
		return fragment{s, a}

	case regex.Union:
		l := compileNode(b, n.Left)
		r := compileNode(b, n.Right)
		s, a := b.AddState(), b.AddState()
		b.AddEpsilon(s, l.start)
		b.AddEpsilon(s, r.start)
		b.AddEpsilon(l.accept, a)
		b.AddEpsilon(r.accept, a)
		return fragment{s, a}

	case regex.Concat:
		l := compileNode(b, n.Left)
		r := compileNode(b, n.Right)
		b.AddEpsilon(l.accept, r.start)
		return fragment{l.start, r.accept}

	case regex.Closure:
		x := compileNode(b, n.Child)
		s, a := b.AddState(), b.AddState()
		b.AddEpsilon(s, x.start)
		b.AddEpsilon(x.accept, a)
		b.AddEpsilon(s, a)
		b.AddEpsilon(x.accept, x.start)
		return fragment{s, a}

	case regex.EndMarker:
		// Treated as an ordinary byte-consuming leaf using the NUL byte as
		// its sentinel character; Thompson construction is never invoked
		// on an augmented tree in practice (only the followpos builder
		// consumes EndMarker), but handling it here keeps Compile total
		// over every AST this package can receive.
		s, a := b.AddState(), b.AddState()
		b.AddByteTransition(s, 0, a)
		return fragment{s, a}

	default:
		panic("nfa: unhandled AST node kind in Thompson construction")
	}
}

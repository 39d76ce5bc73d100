package lexer

import "github.com/lexkit/lexkit/dfa"

// Scanner drives a Spec's DFA bank over an input string, bufio.Scanner
// style: repeated Next() calls pull one lexeme at a time rather than
// materializing the whole token stream up front.
type Scanner[L any] struct {
	spec  *Spec[L]
	input string
	pos   int

	alive []bool
	state []dfa.StateID
}

// NewScanner returns a Scanner over input using spec.
func NewScanner[L any](spec *Spec[L], input string) *Scanner[L] {
	n := len(spec.patterns)
	return &Scanner[L]{
		spec:  spec,
		input: input,
		alive: make([]bool, n),
		state: make([]dfa.StateID, n),
	}
}

// Pos returns the scanner's current offset into its input.
func (s *Scanner[L]) Pos() int { return s.pos }

// Next runs the maximal-munch protocol starting at the scanner's current
// position and returns the next lexeme. ok is false with a nil error once
// the input is exhausted, or when no pattern matches under the default
// StopSilently policy. ok is false with a non-nil error when no pattern
// matches under Config.UnmatchedInputPolicy == ReturnError
// (*UnmatchedInputError), or, under either policy, when a DFA meets a byte
// outside the alphabet (*automaton.UndefinedTransitionError).
func (s *Scanner[L]) Next() (lexeme L, ok bool, err error) {
	var zero L
	if s.pos >= len(s.input) {
		return zero, false, nil
	}
	p := s.pos

	if s.spec.prefilter != nil {
		if lit, k, matched := s.spec.prefilter.matchAt(s.input, p); matched {
			s.pos = p + len(lit)
			return s.spec.actions[k](lit), true, nil
		}
	}

	anyAlive := false
	for k, cp := range s.spec.patterns {
		st := cp.dfa.InitState()
		if cp.dfa.IsDead(st) {
			s.alive[k] = false
			continue
		}
		s.alive[k] = true
		s.state[k] = st
		anyAlive = true
	}

	bestQ, bestK := -1, -1
	q := p
	for anyAlive && q < len(s.input) {
		c := s.input[q]
		anyAlive = false
		for k, cp := range s.spec.patterns {
			if !s.alive[k] {
				continue
			}
			next, terr := cp.dfa.Transition(s.state[k], c)
			if terr != nil {
				return zero, false, terr
			}
			if cp.dfa.IsDead(next) {
				s.alive[k] = false
				continue
			}
			s.state[k] = next
			anyAlive = true
		}
		q++
		for k, cp := range s.spec.patterns {
			if s.alive[k] && cp.dfa.IsAccept(s.state[k]) {
				bestQ, bestK = q-1, k
				break
			}
		}
	}

	if bestK == -1 {
		return s.handleNoMatch(p)
	}
	text := s.input[p : bestQ+1]
	s.pos = bestQ + 1
	return s.spec.actions[bestK](text), true, nil
}

func (s *Scanner[L]) handleNoMatch(pos int) (lexeme L, ok bool, err error) {
	var zero L
	if s.spec.cfg.UnmatchedInputPolicy == ReturnError {
		return zero, false, &UnmatchedInputError{Pos: pos}
	}
	return zero, false, nil
}

// All drains the scanner into a slice. It is a convenience for small inputs
// and tests; streaming callers should use Next directly.
func (s *Scanner[L]) All() ([]L, error) {
	var out []L
	for {
		lex, ok, err := s.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, lex)
	}
}

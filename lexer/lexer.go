// Package lexer implements a maximal-munch, priority-tie-broken
// multi-pattern lexer runner: given a priority-ordered list of regex
// patterns and actions, it drives their compiled DFAs in lockstep over an
// input string and yields a stream of caller-defined lexemes.
package lexer

import (
	"strconv"

	"github.com/lexkit/lexkit/charset"
	"github.com/lexkit/lexkit/dfa"
	"github.com/lexkit/lexkit/regex"
)

// PatternAction pairs one regex pattern with the action that turns its
// matched text into a lexeme of type L. List order is priority: index 0
// is highest.
type PatternAction[L any] struct {
	Pattern string
	Action  func(text string) L
}

type compiledPattern struct {
	dfa     *dfa.DFA
	literal string
	isLit   bool
}

// Spec is a built, immutable lexer specification: one minimized DFA per
// pattern, in priority order, plus the optional literal fast path.
type Spec[L any] struct {
	patterns  []compiledPattern
	actions   []func(string) L
	prefilter *prefilter
	cfg       Config
}

// NewSpec compiles every pattern against alphabet (via the followpos direct
// construction, then minimization) and returns a ready-to-run Spec.
// Patterns are compiled independently; a SyntaxError from any one of them
// aborts the whole build, naming which pattern failed.
func NewSpec[L any](alphabet charset.Alphabet, patterns []PatternAction[L], opts ...Option) (*Spec[L], error) {
	cfg := buildConfig(opts)

	s := &Spec[L]{cfg: cfg}
	allLiteral := true

	for _, pa := range patterns {
		tree, err := regex.ParseAugmented(pa.Pattern)
		if err != nil {
			return nil, &patternError{pattern: pa.Pattern, err: err}
		}
		d, err := dfa.FromAugmentedAST(tree, alphabet)
		if err != nil {
			return nil, &patternError{pattern: pa.Pattern, err: err}
		}
		d = dfa.Minimize(d)

		// literalOf walks the un-augmented tree shape; Left of the
		// top-level Concat(tree, EndMarker) is the pattern proper.
		lit, isLit := literalOf(tree.Left)
		s.patterns = append(s.patterns, compiledPattern{dfa: d, literal: lit, isLit: isLit})
		s.actions = append(s.actions, pa.Action)
		if !isLit {
			allLiteral = false
		}
	}

	if cfg.LiteralFastPath {
		lits := make([]string, len(s.patterns))
		for i, p := range s.patterns {
			if p.isLit {
				lits[i] = p.literal
			} else {
				lits[i] = "\x00\x00impossible\x00\x00" // never a prefix of real input
			}
		}
		s.prefilter = buildPrefilter(lits, allLiteral)
	}

	return s, nil
}

type patternError struct {
	pattern string
	err     error
}

func (e *patternError) Error() string {
	return "lexer: pattern " + strconv.Quote(e.pattern) + ": " + e.err.Error()
}

func (e *patternError) Unwrap() error { return e.err }

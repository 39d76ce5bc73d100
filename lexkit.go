// Package lexkit is a regular-language lexical-analysis toolkit: it turns
// textual regular expressions into executable recognizers (NFAs and DFAs)
// and composes them into a prioritized, maximal-munch lexer. Its users are
// front-ends of interpreters, compilers, or linters that need to tokenize a
// source stream.
//
// The core pipeline is a regex parsed into an AST (package regex), compiled
// to either a Thompson NFA (package nfa) or directly to a DFA via the
// followpos construction (package dfa), with subset construction bridging
// NFA to DFA and Hopcroft/Moore partition refinement minimizing any DFA.
// The lexer package composes several compiled DFAs into a single
// maximal-munch tokenizer.
//
// Basic usage:
//
//	re, err := lexkit.Compile(`(a|b)*abb`, charset.New("ab"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	matched, err := re.Test("aabb")
package lexkit

import (
	"github.com/lexkit/lexkit/automaton"
	"github.com/lexkit/lexkit/charset"
	"github.com/lexkit/lexkit/dfa"
	"github.com/lexkit/lexkit/nfa"
	"github.com/lexkit/lexkit/regex"
)

// Regex is a parsed, not-yet-compiled regular expression: an AST plus the
// alphabet it will be compiled against. Building an NFA or DFA from it can
// be repeated. The followpos path (ToFollowposDFA, ToMinimalDFA, Test)
// writes leaf position numbers into the AST's Pos fields each time it runs;
// no other part of the tree is modified after parsing.
type Regex struct {
	tree     *regex.AST
	pattern  string
	alphabet charset.Alphabet
}

// Compile parses pattern and pairs it with alphabet, ready for conversion
// to any of the recognizer representations below.
func Compile(pattern string, alphabet charset.Alphabet) (*Regex, error) {
	tree, err := regex.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{tree: tree, pattern: pattern, alphabet: alphabet}, nil
}

// MustCompile is like Compile but panics on error; useful for patterns
// known to be valid at init time.
func MustCompile(pattern string, alphabet charset.Alphabet) *Regex {
	re, err := Compile(pattern, alphabet)
	if err != nil {
		panic(err)
	}
	return re
}

// Pattern returns the original source pattern string.
func (r *Regex) Pattern() string { return r.pattern }

// ToThompsonNFA compiles r via Thompson construction.
func (r *Regex) ToThompsonNFA() (*nfa.NFA, error) {
	return nfa.Compile(r.tree, r.alphabet)
}

// ToSubsetDFA compiles r to an NFA and then upgrades it to a DFA via
// subset construction.
func (r *Regex) ToSubsetDFA() (*dfa.DFA, error) {
	n, err := r.ToThompsonNFA()
	if err != nil {
		return nil, err
	}
	return dfa.FromNFA(n, r.alphabet)
}

// ToFollowposDFA compiles r directly to a DFA via the followpos
// construction, without ever materializing an NFA.
func (r *Regex) ToFollowposDFA() (*dfa.DFA, error) {
	augmented := regex.Augment(r.tree)
	return dfa.FromAugmentedAST(augmented, r.alphabet)
}

// ToMinimalDFA compiles r to the followpos DFA and minimizes it.
func (r *Regex) ToMinimalDFA() (*dfa.DFA, error) {
	d, err := r.ToFollowposDFA()
	if err != nil {
		return nil, err
	}
	return dfa.Minimize(d), nil
}

// Test reports whether r accepts s, using the followpos DFA path.
func (r *Regex) Test(s string) (bool, error) {
	d, err := r.ToFollowposDFA()
	if err != nil {
		return false, err
	}
	return automaton.Test[dfa.StateID](d, s)
}

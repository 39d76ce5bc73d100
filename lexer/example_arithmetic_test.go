package lexer_test

// This file implements an illustrative arithmetic-lexer example, grounded
// on original_source/src/lexer.rs's test suite. It is a runnable example,
// not a shipped client package: the recursive-descent parser that would
// consume these tokens (predictive_parser.rs) is explicitly out of scope.

import (
	"testing"

	"github.com/lexkit/lexkit/charset"
	"github.com/lexkit/lexkit/lexer"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokPlus
	tokMinus
	tokTimes
	tokDiv
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	text string
}

func (tk tokenKind) String() string {
	switch tk {
	case tokNumber:
		return "Number"
	case tokPlus:
		return "Plus"
	case tokMinus:
		return "Minus"
	case tokTimes:
		return "Times"
	case tokDiv:
		return "Div"
	case tokLParen:
		return "LParen"
	case tokRParen:
		return "RParen"
	default:
		return "Unknown"
	}
}

func newArithmeticSpec(t *testing.T) *lexer.Spec[token] {
	t.Helper()
	alphabet := charset.New("0123456789+-*/()")
	act := func(kind tokenKind) func(string) token {
		return func(text string) token { return token{kind: kind, text: text} }
	}
	spec, err := lexer.NewSpec(alphabet, []lexer.PatternAction[token]{
		{Pattern: "(0|1|2|3|4|5|6|7|8|9)+", Action: act(tokNumber)},
		{Pattern: `\+`, Action: act(tokPlus)},
		{Pattern: "-", Action: act(tokMinus)},
		{Pattern: `\*`, Action: act(tokTimes)},
		{Pattern: "/", Action: act(tokDiv)},
		{Pattern: `\(`, Action: act(tokLParen)},
		{Pattern: `\)`, Action: act(tokRParen)},
	})
	if err != nil {
		t.Fatalf("NewSpec error: %v", err)
	}
	return spec
}

func TestArithmeticLexerScenario5(t *testing.T) {
	spec := newArithmeticSpec(t)

	tests := []struct {
		input string
		want  []token
	}{
		{
			input: "1+23-(3*45/5)",
			want: []token{
				{tokNumber, "1"}, {tokPlus, "+"}, {tokNumber, "23"}, {tokMinus, "-"},
				{tokLParen, "("}, {tokNumber, "3"}, {tokTimes, "*"}, {tokNumber, "45"},
				{tokDiv, "/"}, {tokNumber, "5"}, {tokRParen, ")"},
			},
		},
		{
			input: "12+35",
			want:  []token{{tokNumber, "12"}, {tokPlus, "+"}, {tokNumber, "35"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			scanner := lexer.NewScanner(spec, tt.input)
			got, err := scanner.All()
			if err != nil {
				t.Fatalf("All() error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("token count = %d, want %d (%+v)", len(got), len(tt.want), got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

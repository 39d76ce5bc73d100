package lexer_test

import (
	"testing"

	"github.com/lexkit/lexkit/charset"
	"github.com/lexkit/lexkit/lexer"
)

func TestNewSpecRejectsBadPattern(t *testing.T) {
	alphabet := charset.New("ab")
	_, err := lexer.NewSpec(alphabet, []lexer.PatternAction[string]{
		{Pattern: "(a", Action: func(s string) string { return s }},
	})
	if err == nil {
		t.Fatal("NewSpec with unbalanced pattern: want error, got nil")
	}
}

func TestNewSpecEmptySpecHasNoTokens(t *testing.T) {
	alphabet := charset.New("ab")
	spec, err := lexer.NewSpec[string](alphabet, nil)
	if err != nil {
		t.Fatalf("NewSpec error: %v", err)
	}
	got, err := lexer.NewScanner(spec, "ab").All()
	if err != nil {
		t.Fatalf("All() error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %v, want no tokens", got)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := lexer.DefaultConfig()
	if cfg.UnmatchedInputPolicy != lexer.StopSilently {
		t.Errorf("default UnmatchedInputPolicy = %v, want StopSilently", cfg.UnmatchedInputPolicy)
	}
	if !cfg.LiteralFastPath {
		t.Error("default LiteralFastPath = false, want true")
	}
}

func TestWithLiteralFastPathDisabled(t *testing.T) {
	alphabet := charset.New("+-")
	spec, err := lexer.NewSpec(alphabet, []lexer.PatternAction[string]{
		{Pattern: `\+`, Action: func(s string) string { return "plus" }},
		{Pattern: "-", Action: func(s string) string { return "minus" }},
	}, lexer.WithLiteralFastPath(false))
	if err != nil {
		t.Fatalf("NewSpec error: %v", err)
	}
	got, err := lexer.NewScanner(spec, "+-").All()
	if err != nil {
		t.Fatalf("All() error: %v", err)
	}
	want := []string{"plus", "minus"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}

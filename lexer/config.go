package lexer

// UnmatchedInputPolicy controls what Scanner.Next does when it reaches a
// position from which no pattern in the active Spec can ever match.
type UnmatchedInputPolicy int

const (
	// StopSilently ends the token stream with no error, matching how a
	// plain iterator quietly runs dry. This is the default.
	StopSilently UnmatchedInputPolicy = iota
	// ReturnError surfaces an *UnmatchedInputError instead of silently
	// ending the stream.
	ReturnError
)

// Config controls Spec/Scanner construction, in the style of
// coregx/coregex's meta.Config/meta.DefaultConfig.
type Config struct {
	// UnmatchedInputPolicy governs behavior when no pattern can match at
	// the current position.
	UnmatchedInputPolicy UnmatchedInputPolicy
	// LiteralFastPath enables the Aho-Corasick literal prefilter when
	// every pattern in the Spec is a plain literal.
	LiteralFastPath bool
}

// DefaultConfig returns the zero-tuning default: silent stop on unmatched
// input, literal fast path enabled.
func DefaultConfig() Config {
	return Config{
		UnmatchedInputPolicy: StopSilently,
		LiteralFastPath:      true,
	}
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithUnmatchedInputPolicy sets the policy for unmatched input.
func WithUnmatchedInputPolicy(p UnmatchedInputPolicy) Option {
	return func(c *Config) { c.UnmatchedInputPolicy = p }
}

// WithLiteralFastPath enables or disables the Aho-Corasick literal
// prefilter.
func WithLiteralFastPath(enabled bool) Option {
	return func(c *Config) { c.LiteralFastPath = enabled }
}

func buildConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

package regex

// escChar is one character of an escape-tagged stream: either a literal
// character that followed a backslash (Escaped) or a character that
// appeared on its own, still subject to metacharacter interpretation.
// Adapted from original_source's EscapeChars/MaybeEsc: a `\c` escapes any
// metacharacter c, stripping its special meaning.
type escChar struct {
	char    byte
	escaped bool
}

// escapeReader walks a regex pattern one character at a time, collapsing
// `\c` into a single escaped character and reporting a SyntaxError if `\`
// is the final character of the pattern.
type escapeReader struct {
	pattern string
	pos     int
}

func newEscapeReader(pattern string) *escapeReader {
	return &escapeReader{pattern: pattern}
}

// next returns the next logical character, its starting byte offset in the
// original pattern (for error reporting), and ok, which is false once the
// stream is exhausted.
func (r *escapeReader) next() (ec escChar, startPos int, ok bool, err error) {
	if r.pos >= len(r.pattern) {
		return escChar{}, 0, false, nil
	}
	startPos = r.pos
	c := r.pattern[r.pos]
	if c != '\\' {
		r.pos++
		return escChar{char: c, escaped: false}, startPos, true, nil
	}
	if r.pos+1 >= len(r.pattern) {
		return escChar{}, startPos, false, &SyntaxError{Pos: startPos, Reason: "dangling '\\' at end of pattern"}
	}
	escaped := r.pattern[r.pos+1]
	r.pos += 2
	return escChar{char: escaped, escaped: true}, startPos, true, nil
}

package regex

// assertInvariant panics when an internal invariant is violated. Per spec
// §7, such violations indicate implementation bugs in the parser itself
// (not malformed caller input, which is always reported as a *SyntaxError
// instead) and should terminate the process rather than be exposed as a
// recoverable error.
func assertInvariant(cond bool, msg string) {
	if !cond {
		panic("regex: internal invariant violated: " + msg)
	}
}

package ffmt

// ArgCursor is an explicit, single-pass argument iterator standing in
// for the va_list the engine this package reimplements walks. Handlers
// advance it with Next as many times as their specifier needs — zero
// for %%, more than one for a custom handler that consumes a pair.
type ArgCursor struct {
	args []any
	pos  int
}

// NewArgCursor wraps args for a single top-level Vfctprintf call.
func NewArgCursor(args ...any) *ArgCursor {
	return &ArgCursor{args: args}
}

// Next returns the next argument and advances the cursor. ok is false
// once the cursor is exhausted; a handler that hits this has been
// invoked with fewer arguments than its format string demands. That
// mismatch is caller-owned undefined behavior, so built-in handlers
// render a zero value rather than panicking.
func (c *ArgCursor) Next() (v any, ok bool) {
	if c.pos >= len(c.args) {
		return nil, false
	}
	v = c.args[c.pos]
	c.pos++
	return v, true
}

// Clone copies the cursor's current position so a second cursor can
// walk the same backing slice independently without disturbing this
// one's position. Vfctprintf and State.VPrintf do not use it: each
// builds a fresh cursor over its own arguments with NewArgCursor.
func (c *ArgCursor) Clone() *ArgCursor {
	return &ArgCursor{args: c.args, pos: c.pos}
}

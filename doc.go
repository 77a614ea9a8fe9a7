// Package ffmt is a freestanding, C-printf-style formatting engine: it
// parses one directive at a time, pulls arguments from an explicit
// cursor in format order, and streams rendered characters through a
// caller-supplied byte sink. It never returns an error — malformed
// directives and numeric overflow are embedded in the output as
// diagnostic text, matching the no-failure-channel contract of the
// engine it reimplements.
package ffmt

package ffmt

// Compile-time feature knobs. These are consts, not runtime toggles:
// flipping one is a source edit that lets the Go compiler dead-code-
// eliminate the disabled branches, rather than a flag the caller could
// flip per call.
const (
	SupportFloat       = true
	SupportExponential = true
	SupportLongLong    = true
	SupportPtrdiffT    = true

	// DefaultFloatPrecision is used whenever a float directive omits an
	// explicit precision.
	DefaultFloatPrecision = 6

	// MaxFloat bounds the magnitude %f/%F will render before falling
	// back to the diagnostic text; %e/%E/%g/%G are unaffected.
	MaxFloat = 1e9

	// FTOABufferSize bounds the local stack buffer the float converters
	// assemble digits into before streaming them through the sink.
	FTOABufferSize = 32
)

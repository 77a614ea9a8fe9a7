package ffmt

// Flags is the bit set of directive flags parsed ahead of width in a
// format directive: a small unsigned integer with named power-of-two
// constants rather than a struct of bools.
type Flags uint8

const (
	FlagZero  Flags = 1 << iota // '0' — zero-pad instead of space-pad
	FlagLeft                    // '-' — left-justify within width
	FlagPlus                    // '+' — always show a sign
	FlagSpace                   // ' ' — leading space for non-negative
	FlagAlt                     // '#' — alternate form (0x/0b/0 prefix)
)

func (f Flags) has(bit Flags) bool { return f&bit != 0 }

// Size is the length modifier parsed from a directive (hh, h, l, ll, t,
// j, z). It only ever narrows how a popped argument is truncated for
// display — Go's argument values already carry their own concrete type,
// unlike C's variadic promotion, so Size is advisory rather than
// required to match the argument's actual Go type.
type Size int

const (
	SizeDefault Size = iota
	SizeChar
	SizeShort
	SizeLong
	SizeLongLong
)

// State is the parsed form of one directive: everything a Handler needs
// to render it, plus the shared sink and argument cursor. Its lifetime
// is the handler call that receives it — a handler must not retain the
// pointer past its own return.
type State struct {
	Flags        Flags
	Width        int
	Precision    int
	PrecisionSet bool
	Size         Size
	Specifier    byte

	args *ArgCursor
	sink *Sink
}

// PutChar streams a single byte through the state's sink.
func (s *State) PutChar(b byte) { s.sink.Put(b) }

// PutString streams str byte by byte through the state's sink.
func (s *State) PutString(str string) {
	putStr(s.sink, str)
}

// Len reports the total bytes emitted on this state's sink so far,
// across the whole Vfctprintf call the state belongs to.
func (s *State) Len() int { return int(s.sink.Len()) }

// VPrintf lets a custom handler recurse into the engine against its own
// sub-format and arguments, sharing the enclosing sink so nested output
// counts toward the same total. It is reentrant: it builds a fresh
// argument cursor rather than sharing the caller's.
func (s *State) VPrintf(format string, args ...any) int {
	before := s.sink.Len()
	run(s.sink, NewArgCursor(args...), format)
	return int(s.sink.Len() - before)
}

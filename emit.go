package ffmt

func putStr(sink *Sink, s string) {
	for i := 0; i < len(s); i++ {
		sink.Put(s[i])
	}
}

// emitReversed streams buf[:n] back to front through sink, applying
// width padding: leading spaces precede the content unless LEFT_ALIGN
// or ZERO_PAD is set (zero padding is baked into buf by the caller, at
// the position that ends up immediately after any sign/prefix once
// reversed); trailing spaces follow when LEFT_ALIGN is set.
func emitReversed(sink *Sink, buf []byte, n, width int, flags Flags) {
	if !flags.has(FlagLeft) && !flags.has(FlagZero) {
		for pad := width - n; pad > 0; pad-- {
			sink.Put(' ')
		}
	}
	for i := n - 1; i >= 0; i-- {
		sink.Put(buf[i])
	}
	if flags.has(FlagLeft) {
		for pad := width - n; pad > 0; pad-- {
			sink.Put(' ')
		}
	}
}

// emitSpecial writes a literal diagnostic or special-value string (nan,
// inf, an overflow diagnostic), applying the same width/left-align
// treatment a normal directive would.
func emitSpecial(st *State, s string) {
	n := len(s)
	pad := st.Width - n
	if !st.Flags.has(FlagLeft) {
		for ; pad > 0; pad-- {
			st.sink.Put(' ')
		}
	}
	putStr(st.sink, s)
	if st.Flags.has(FlagLeft) {
		for ; pad > 0; pad-- {
			st.sink.Put(' ')
		}
	}
}

const (
	diagExceededMaxFloat   = "%!(exceeded PICO_PRINTF_MAX_FLOAT)"
	diagExceededFTOABuffer = "%!(exceeded PICO_PRINTF_FTOA_BUFFER_SIZE)"
)

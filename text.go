package ffmt

// formatString renders %s: str is emitted up to Precision bytes (an
// early-stop cap, never a buffer sized by it), padded to Width with
// spaces per the left/right flag.
func formatString(st *State, str string) {
	n := len(str)
	if st.PrecisionSet && st.Precision < n {
		n = st.Precision
	}
	pad := st.Width - n
	if !st.Flags.has(FlagLeft) {
		for ; pad > 0; pad-- {
			st.sink.Put(' ')
		}
	}
	for i := 0; i < n; i++ {
		st.sink.Put(str[i])
	}
	if st.Flags.has(FlagLeft) {
		for ; pad > 0; pad-- {
			st.sink.Put(' ')
		}
	}
}

func toStringArg(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	default:
		return ""
	}
}

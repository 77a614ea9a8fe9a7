package ffmt

import "unsafe"

// installBuiltins wires the table of built-in specifiers. Float
// specifiers are wired to a stub when SupportFloat/SupportExponential
// are compiled out: they still consume one argument (so the cursor
// stays in sync for the rest of the format string) but render "??"
// instead of converting it.
func installBuiltins(t *handlerTable) {
	t['d'] = handleSignedInt
	t['i'] = handleSignedInt
	t['u'] = handleUnsignedInt(10)
	t['x'] = handleUnsignedInt(16)
	t['X'] = handleUnsignedInt(16)
	t['o'] = handleUnsignedInt(8)
	t['b'] = handleUnsignedInt(2)
	t['c'] = handleCharSpecifier
	t['s'] = handleStringSpecifier
	t['p'] = handlePointerSpecifier
	t['%'] = handlePercentSpecifier

	if SupportFloat {
		t['f'] = handleFixedFloat
		t['F'] = handleFixedFloat
	} else {
		t['f'] = handleDisabledFloat
		t['F'] = handleDisabledFloat
	}

	if SupportExponential {
		t['e'] = handleExpFloat
		t['E'] = handleExpFloat
		t['g'] = handleAdaptiveFloat
		t['G'] = handleAdaptiveFloat
	} else {
		t['e'] = handleDisabledFloat
		t['E'] = handleDisabledFloat
		t['g'] = handleDisabledFloat
		t['G'] = handleDisabledFloat
	}
}

func handleSignedInt(st *State) {
	mag, neg := popSignedMagnitude(st)
	formatInt(st, mag, neg, 10)
}

func handleUnsignedInt(base int) Handler {
	return func(st *State) {
		mag := popUnsignedMagnitude(st)
		formatInt(st, mag, false, base)
	}
}

func handleCharSpecifier(st *State) {
	v, _ := st.args.Next()
	b := byte(toInt(v))
	pad := st.Width - 1
	if !st.Flags.has(FlagLeft) {
		for ; pad > 0; pad-- {
			st.sink.Put(' ')
		}
	}
	st.sink.Put(b)
	if st.Flags.has(FlagLeft) {
		for ; pad > 0; pad-- {
			st.sink.Put(' ')
		}
	}
}

func handleStringSpecifier(st *State) {
	v, _ := st.args.Next()
	formatString(st, toStringArg(v))
}

func handlePointerSpecifier(st *State) {
	v, _ := st.args.Next()
	var addr uintptr
	switch x := v.(type) {
	case uintptr:
		addr = x
	case unsafe.Pointer:
		addr = uintptr(x)
	}
	child := *st
	child.Flags |= FlagZero
	child.Width = 2 * int(unsafe.Sizeof(addr))
	child.Specifier = 'X'
	formatInt(&child, uint64(addr), false, 16)
}

func handlePercentSpecifier(st *State) {
	st.sink.Put('%')
}

func handleDisabledFloat(st *State) {
	st.args.Next()
	putStr(st.sink, "??")
}

func handleFixedFloat(st *State) {
	formatFixed(st, popFloat(st), true, false)
}

func handleExpFloat(st *State) {
	formatExp(st, popFloat(st), false)
}

func handleAdaptiveFloat(st *State) {
	formatExp(st, popFloat(st), true)
}

func popFloat(st *State) float64 {
	v, _ := st.args.Next()
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	default:
		return 0
	}
}

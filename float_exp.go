package ffmt

import "math"

// formatExp renders %e/%E (adaptive=false) and %g/%G (adaptive=true).
// The adaptive form estimates a decimal exponent and either falls back
// to the fixed converter (magnitude in [1e-4, 1e6), the adaptive
// window) or renders a normalized mantissa plus exponent suffix, the
// way %e always does.
func formatExp(st *State, v float64, adaptive bool) {
	flags := st.Flags

	switch {
	case math.IsNaN(v):
		emitSpecial(st, "nan")
		return
	case v < -math.MaxFloat64:
		emitSpecial(st, "-inf")
		return
	case v > math.MaxFloat64:
		s := "inf"
		if flags.has(FlagPlus) {
			s = "+inf"
		}
		emitSpecial(st, s)
		return
	}

	precision := DefaultFloatPrecision
	if st.PrecisionSet {
		precision = st.Precision
	}
	if adaptive && precision == 0 {
		precision = 1
	}

	negative := math.Signbit(v)
	av := math.Abs(v)

	e := decimalExponent(av)

	if adaptive && (av == 0 || (av >= 1e-4 && av < 1e6)) {
		fixedPrecision := precision - e - 1
		if fixedPrecision < 0 {
			fixedPrecision = 0
		}
		child := *st
		child.PrecisionSet = true
		child.Precision = fixedPrecision
		formatFixed(&child, v, false, !flags.has(FlagAlt))
		return
	}

	if adaptive {
		precision--
		if precision < 0 {
			precision = 0
		}
	}

	mantissa := av
	if av != 0 {
		mantissa = av / pow10f(e)
		if mantissa >= 10 {
			mantissa /= 10
			e++
		} else if mantissa < 1 {
			mantissa *= 10
			e--
		}
	}
	if negative {
		mantissa = -mantissa
	}

	expWidth := 4
	if e <= -100 || e >= 100 {
		expWidth = 5
	}

	mantissaWidth := st.Width - expWidth
	if mantissaWidth < 0 || flags.has(FlagLeft) {
		mantissaWidth = 0
	}

	start := st.sink.Len()

	child := *st
	child.Width = mantissaWidth
	child.PrecisionSet = true
	child.Precision = precision
	formatFixed(&child, mantissa, false, adaptive && !flags.has(FlagAlt))

	marker := byte('e')
	if st.Specifier == 'E' || st.Specifier == 'G' {
		marker = 'E'
	}
	st.sink.Put(marker)

	expMag, expNeg := splitMagnitude(e)
	expChild := State{
		Flags:     FlagPlus | FlagZero,
		Width:     expWidth - 1,
		Specifier: 'd',
		args:      st.args,
		sink:      st.sink,
	}
	formatInt(&expChild, expMag, expNeg, 10)

	if flags.has(FlagLeft) {
		emitted := int(st.sink.Len() - start)
		for pad := st.Width - emitted; pad > 0; pad-- {
			st.sink.Put(' ')
		}
	}
}

func splitMagnitude(e int) (uint64, bool) {
	if e < 0 {
		return uint64(-e), true
	}
	return uint64(e), false
}

// decimalExponent estimates floor(log10(av)) and corrects the estimate
// against the rare off-by-one from floating point log error.
func decimalExponent(av float64) int {
	if av == 0 {
		return 0
	}
	e := int(math.Floor(math.Log10(av)))
	if av < pow10f(e) {
		e--
	} else if av >= pow10f(e+1) {
		e++
	}
	return e
}

func pow10f(e int) float64 {
	return math.Pow(10, float64(e))
}

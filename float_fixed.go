package ffmt

import "math"

// pow10Table caps precision at 9 fractional digits — beyond that the
// engine emits literal trailing zeros instead of growing the scale
// factor, per the precision-ceiling policy.
var pow10Table = [10]float64{1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9}

// formatFixed renders %f/%F. checkMaxFloat gates the MaxFloat ceiling —
// it is suppressed when the exponential/adaptive converter re-enters
// this function to render a %e/%g mantissa, which is never checked
// against MaxFloat. stripTrailingZeros drops insignificant trailing
// fractional zeros (and the decimal point itself, if nothing is left)
// the way %g does unless the alternate-form flag is set.
func formatFixed(st *State, v float64, checkMaxFloat, stripTrailingZeros bool) {
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

	negative := math.Signbit(v)
	av := math.Abs(v)

	if checkMaxFloat && av > MaxFloat {
		emitSpecial(st, diagExceededMaxFloat)
		return
	}

	precision := DefaultFloatPrecision
	if st.PrecisionSet {
		precision = st.Precision
	}

	extraZeros := 0
	if precision >= len(pow10Table) {
		extraZeros = precision - (len(pow10Table) - 1)
		precision = len(pow10Table) - 1
	}

	w := math.Floor(av)
	scale := pow10Table[precision]
	fracF := (av - w) * scale
	frac := uint64(fracF)
	residual := fracF - float64(frac)

	if precision == 0 {
		if residual > 0.5 || (residual == 0.5 && uint64(w)%2 != 0) {
			w++
		}
	} else if residual > 0.5 || (residual == 0.5 && frac%2 == 0) {
		frac++
		if frac >= uint64(scale) {
			frac -= uint64(scale)
			w++
		}
	}

	var buf [FTOABufferSize]byte
	n := 0
	ok := true

	var fracDigits [FTOABufferSize]byte
	nf := 0
	for i := 0; i < extraZeros && nf < FTOABufferSize; i++ {
		fracDigits[nf] = '0'
		nf++
	}
	f := frac
	for i := 0; i < precision && nf < FTOABufferSize; i++ {
		fracDigits[nf] = byte(f%10) + '0'
		f /= 10
		nf++
	}

	stripStart := 0
	if stripTrailingZeros {
		for stripStart < nf && fracDigits[stripStart] == '0' {
			stripStart++
		}
	}

	if stripStart < nf {
		for i := stripStart; i < nf && ok; i++ {
			n, ok = pushByte(&buf, n, fracDigits[i])
		}
		if ok {
			n, ok = pushByte(&buf, n, '.')
		}
	}

	if ok {
		if w == 0 {
			n, ok = pushByte(&buf, n, '0')
		}
		for w > 0 && ok {
			d := byte(math.Mod(w, 10))
			w = math.Floor(w / 10)
			n, ok = pushByte(&buf, n, '0'+d)
		}
	}

	var sign byte
	switch {
	case negative:
		sign = '-'
	case flags.has(FlagPlus):
		sign = '+'
	case flags.has(FlagSpace):
		sign = ' '
	}
	reserve := 0
	if sign != 0 {
		reserve = 1
	}

	if ok && flags.has(FlagZero) && !flags.has(FlagLeft) {
		for n < st.Width-reserve && ok {
			n, ok = pushByte(&buf, n, '0')
		}
	}
	if ok && sign != 0 {
		n, ok = pushByte(&buf, n, sign)
	}

	if !ok {
		emitSpecial(st, diagExceededFTOABuffer)
		return
	}

	emitReversed(st.sink, buf[:], n, st.Width, flags)
}

func pushByte(buf *[FTOABufferSize]byte, n int, b byte) (int, bool) {
	if n >= len(buf) {
		return n, false
	}
	buf[n] = b
	return n + 1, true
}

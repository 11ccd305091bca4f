/*
 * Copyright 2009-2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style
 * license that can be found in the LICENSE file.
 */

package numlex

import "math"

// WriteFloat writes value's shortest round-trip decimal representation
// into out starting at out[0], returning the number of bytes written.
// out must be at least MaxWidthFloat64Any long. Ported from the
// teacher's genericFtoa/bigFtoa/formatDigits pipeline (Grisu3 fast path,
// Dragon4-equivalent big-decimal fallback), generalized to the
// configurable exponent marker, trim-trailing-zero-fraction flag, and
// NaN/Inf spellings of WriteFloatOptions.
func WriteFloat[F Float](value F, out []byte, opts WriteFloatOptions) int {
	var bits uint64
	var flt *floatInfo
	switch v := any(value).(type) {
	case float32:
		bits = uint64(math.Float32bits(v))
		flt = &float32info
	case float64:
		bits = math.Float64bits(v)
		flt = &float64info
	}

	if s, special := specialString(bits, flt, opts); special {
		return copy(out, s)
	}

	neg := bits>>(flt.expbits+flt.mantbits) != 0
	exp := int(bits>>flt.mantbits) & (1<<flt.expbits - 1)
	mant := bits & (uint64(1)<<flt.mantbits - 1)

	switch exp {
	case 0:
		exp++
	default:
		mant |= uint64(1) << flt.mantbits
	}
	exp += flt.bias

	if opts.radix == 16 {
		return writeHexFloat(out, neg, mant, exp, flt, opts)
	}

	var digs decimalSlice
	var buf [32]byte
	digs.d = buf[:]

	f := new(extFloat)
	lower, upper := f.assignComputeBounds(mant, exp, neg, flt)
	ok := f.shortestDecimal(&digs, &lower, &upper)
	if !ok {
		d := new(decimal)
		d.assign(mant)
		d.shift(exp - int(flt.mantbits))
		d.roundShortest(mant, exp, flt)
		digs = decimalSlice{d: d.d[:], nd: d.nd, dp: d.dp}
	}
	digs.neg = neg

	return formatShortest(out, digs, opts, widthBoundFor(flt))
}

// WriteFloatDefault is WriteFloat with DefaultWriteFloatOptions.
func WriteFloatDefault[F Float](value F, out []byte) int {
	return WriteFloat[F](value, out, DefaultWriteFloatOptions())
}

// widthBoundFor returns the decimal-exponent boundary past which
// scientific notation is used instead of positional, per spec §4.D
// "Exponent notation selection": [-4,16] for binary32, [-4,17] for
// binary64.
func widthBoundFor(flt *floatInfo) int {
	if flt == &float32info {
		return 16
	}
	return 17
}

// formatShortest renders digs (the shortest round-trip digit string) into
// out, choosing positional or scientific notation the way spec §4.D
// describes, and honoring TrimFloats.
func formatShortest(out []byte, digs decimalSlice, opts WriteFloatOptions, upperExpBound int) int {
	exp := digs.dp - 1
	useExp := exp < -4 || exp > upperExpBound

	var dst []byte
	if useExp {
		dst = fmtEWithMarker(digs, opts.exponentChar)
	} else {
		dst = fmtFTrimmed(digs, opts.trimFloats)
	}
	return copy(out, dst)
}

// fmtEWithMarker is the teacher's fmtE, parameterized on the exponent
// marker byte instead of a hard-coded 'e'.
func fmtEWithMarker(d decimalSlice, marker byte) []byte {
	dst := make([]byte, 0, 24)
	if d.neg {
		dst = append(dst, minus)
	}

	ch := byte(zero)
	if d.nd != 0 {
		ch = d.d[0]
	}
	dst = append(dst, ch)

	prec := max(d.nd-1, 0)
	if prec > 0 {
		dst = append(dst, period)
		i := 1
		m := min(d.nd, prec+1)
		if i < m {
			dst = append(dst, d.d[i:m]...)
			i = m
		}
		for ; i <= prec; i++ {
			dst = append(dst, zero)
		}
	}

	dst = append(dst, marker)
	exp := d.dp - 1
	if d.nd == 0 {
		exp = 0
	}
	if exp < 0 {
		ch = minus
		exp = -exp
	} else {
		ch = plus
	}
	dst = append(dst, ch)

	switch {
	case exp < 10:
		dst = append(dst, zero, byte(exp)+zero)
	case exp < 100:
		dst = append(dst, byte(exp/10)+zero, byte(exp%10)+zero)
	default:
		dst = append(dst, byte(exp/100)+zero, byte(exp/10)%10+zero, byte(exp%10)+zero)
	}

	return dst
}

// fmtFTrimmed is the teacher's fmtF, with trim controlling whether an
// integer-valued float drops its fractional ".0" (spec §4.D "if
// trim_floats is set... otherwise always include a decimal point").
func fmtFTrimmed(d decimalSlice, trim bool) []byte {
	dst := make([]byte, 0, 24)
	if d.neg {
		dst = append(dst, minus)
	}

	if d.dp > 0 {
		m := min(d.nd, d.dp)
		dst = append(dst, d.d[:m]...)
		for ; m < d.dp; m++ {
			dst = append(dst, zero)
		}
	} else {
		dst = append(dst, zero)
	}

	prec := max(d.nd-d.dp, 0)
	if prec == 0 {
		if !trim {
			dst = append(dst, period, zero)
		}
		return dst
	}

	dst = append(dst, period)
	for i := 0; i < prec; i++ {
		ch := byte(zero)
		if j := d.dp + i; 0 <= j && j < d.nd {
			ch = d.d[j]
		}
		dst = append(dst, ch)
	}
	return dst
}

// writeHexFloat writes the radix-16 form: sign, "0x", the leading binary
// digit (0 for subnormals), hex fraction digits, then the unbiased binary
// exponent after a 'p' marker ('e' would read as a hex digit), whatever
// opts.exponentChar says.
func writeHexFloat(out []byte, neg bool, mant uint64, exp int, flt *floatInfo, opts WriteFloatOptions) int {
	dst := make([]byte, 0, 32)
	if neg {
		dst = append(dst, minus)
	}
	dst = append(dst, '0', 'x')

	// WriteFloat has already unbiased exp: value = mant * 2^(exp-mantbits).
	binExp := exp
	nibbles := (int(flt.mantbits) + 3) / 4
	dst = append(dst, digitChars[mant>>flt.mantbits])
	if mant != 0 {
		dst = append(dst, period)
		frac := (mant & (1<<flt.mantbits - 1)) << (uint(nibbles*4) - flt.mantbits)
		shift := nibbles * 4
		for i := 0; i < nibbles; i++ {
			shift -= 4
			nib := (frac >> uint(shift)) & 0xF
			dst = append(dst, digitChars[nib])
		}
	}
	dst = append(dst, 'p')
	if binExp < 0 {
		dst = append(dst, minus)
		binExp = -binExp
	} else {
		dst = append(dst, plus)
	}
	dst = append(dst, []byte(itoaDecimal(binExp))...)
	return copy(out, dst)
}

func itoaDecimal(v int) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte(v%10) + zero
		v /= 10
	}
	return string(buf[i:])
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

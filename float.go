package numlex

import "math"

// floatLex is the parsed-float intermediate of spec §4.D step 1: digit
// spans, accumulated decimal exponent, and a 64-bit truncated mantissa.
type floatLex struct {
	mantissa uint64
	decExp   int
	neg      bool
	trunc    bool
	consumed int

	// digitSpan is the byte range (within the original input) covering
	// the integer and fraction digit runs, including the decimal point
	// and any digit separators but excluding the sign and exponent. The
	// slow path (float.go's assignFromLex) rescans this span directly
	// rather than trusting the 19-digit-truncated mantissa above, since
	// correct rounding for long decimal strings needs every digit, not
	// just the ones that fit in a uint64.
	digitSpanStart, digitSpanEnd int
	expValue                     int
}

// lexFloat implements the shared state machine of spec §4.D: Start →
// OptionalSign → IntegerDigits → [Dot → FractionDigits] → [ExponentMarker
// → [OptionalExponentSign] → ExponentDigits] → End. Format flags are
// consulted at every transition; digit separators are accepted per the
// section's positional flags and never contribute to the value. Returns
// kind == ErrNone on success.
func lexFloat(bytes []byte, opts ParseFloatOptions) (lex floatLex, kind ErrorKind, errIndex int) {
	format := opts.format
	radix := opts.radix
	exponentChar := opts.exponentChar

	if len(bytes) == 0 {
		return lex, ErrEmpty, 0
	}

	i := 0
	switch bytes[0] {
	case minus:
		lex.neg = true
		i = 1
	case plus:
		if format.NoPositiveMantissaSign() {
			return lex, ErrInvalidPositiveMantissaSign, 0
		}
		i = 1
	default:
		if format.RequiredMantissaSign() {
			return lex, ErrMissingMantissaSign, 0
		}
	}

	mantissaStart := i
	uint64digits := maxMantissaDigitsFor(radix)
	var nd, ndMant, dp int
	sawDigits := false
	sawDot := false
	prevWasSeparator := false

	scanDigits := func(s section) (ok bool, stopIndex int) {
		for i < len(bytes) {
			b := bytes[i]
			if format.isSeparatorByte(b) {
				if !separatorAllowed(format, s, radix, bytes, i, digitsInSection(nd, s, dp, sawDot), prevWasSeparator) {
					return true, i
				}
				prevWasSeparator = true
				i++
				continue
			}
			d, isDigit := digitOf(b, radix)
			if !isDigit {
				return true, i
			}
			sawDigits = true
			if d == 0 && nd == 0 && !sawDot && format.NoIntegerLeadingZeros() {
				if j := i + 1; j < len(bytes) {
					if nb := bytes[j]; nb != period && nb != exponentChar && lowerASCII(nb) != lowerASCII(exponentChar) {
						if _, more := digitOf(nb, radix); more {
							return false, i
						}
					}
				}
			}
			if b == zero && nd == 0 && !sawDot {
				dp--
				prevWasSeparator = false
				i++
				continue
			}
			nd++
			if ndMant < uint64digits {
				lex.mantissa = lex.mantissa*uint64(radix) + uint64(d)
				ndMant++
			} else if d != 0 {
				lex.trunc = true
			}
			prevWasSeparator = false
			i++
		}
		return true, i
	}

	integerStart := i
	ok, stop := scanDigits(sectionInteger)
	if !ok {
		return lex, ErrInvalidLeadingZeros, stop
	}
	integerDigits := nd
	_ = integerStart
	if format.RequiredIntegerDigits() && integerDigits == 0 {
		return lex, ErrEmptyInteger, mantissaStart
	}

	if i < len(bytes) && bytes[i] == period {
		sawDot = true
		dp = nd
		i++
		prevWasSeparator = false
		fractionStart := i
		ok, stop = scanDigits(sectionFraction)
		if !ok {
			return lex, ErrInvalidLeadingZeros, stop
		}
		fractionDigits := nd - integerDigits
		if format.RequiredFractionDigits() && fractionDigits == 0 {
			return lex, ErrEmptyFraction, fractionStart
		}
	} else {
		// No fraction: the decimal point sits right after the integer
		// digits, same as assignFromLex's equivalent fallback for the
		// slow path.
		dp = nd
	}

	if !sawDigits {
		return lex, ErrEmptyMantissa, mantissaStart
	}

	lex.digitSpanStart = mantissaStart
	lex.digitSpanEnd = i

	hasExponentMarker := i < len(bytes) && lowerASCII(bytes[i]) == lowerASCII(exponentChar)
	if hasExponentMarker {
		if format.NoExponentNotation() {
			return lex, ErrInvalidExponent, i
		}
		if !sawDot && format.NoExponentWithoutFraction() {
			return lex, ErrExponentWithoutFraction, i
		}
		markerIndex := i
		i++
		esign := 1
		switch {
		case i < len(bytes) && bytes[i] == plus:
			if format.NoPositiveExponentSign() {
				return lex, ErrInvalidPositiveExponentSign, i
			}
			i++
		case i < len(bytes) && bytes[i] == minus:
			esign = -1
			i++
		default:
			if format.RequiredExponentSign() {
				return lex, ErrMissingExponentSign, markerIndex + 1
			}
		}
		e := 0
		expDigits := 0
		for i < len(bytes) {
			b := bytes[i]
			if format.isSeparatorByte(b) {
				if !separatorAllowed(format, sectionExponent, radix, bytes, i, expDigits, prevWasSeparator) {
					break
				}
				prevWasSeparator = true
				i++
				continue
			}
			d, isDigit := digitOf(b, radix)
			if !isDigit {
				break
			}
			if e < 100000 {
				e = e*radix + int(d)
			}
			expDigits++
			prevWasSeparator = false
			i++
		}
		if expDigits == 0 {
			// Reported at markerIndex+1 (the sign, if any, or the first
			// byte after the marker), not at expStart: spec's concrete
			// scenario table has "10e+" (exponent marker + consumed sign,
			// zero digits) fail at the sign's position, not past it.
			return lex, ErrEmptyExponent, markerIndex + 1
		}
		dp += e * esign
		lex.expValue = e * esign
	} else if format.RequiredExponentNotation() {
		return lex, ErrInvalidExponent, i
	}

	if lex.mantissa != 0 {
		lex.decExp = dp - ndMant
	}
	lex.consumed = i
	return lex, ErrNone, 0
}

// digitsInSection reports how many digits have been consumed in section s
// so far, used to decide whether a separator sits in the leading
// position. The integer section's count is nd; the fraction section's is
// nd minus however many were consumed before the dot.
func digitsInSection(nd int, s section, dp int, sawDot bool) int {
	if s == sectionFraction && sawDot {
		return nd - dp
	}
	return nd
}

// ParseFloat parses the entire input as a float of kind F under the
// given options, dispatching fast/moderate/slow per spec §4.D.
func ParseFloat[F Float](bytes []byte, opts ParseFloatOptions) Result[F] {
	return parseFloatCore[F](bytes, opts, false)
}

// ParseFloatDefault is ParseFloat with DefaultParseFloatOptions.
func ParseFloatDefault[F Float](bytes []byte) Result[F] {
	return ParseFloat[F](bytes, DefaultParseFloatOptions())
}

// ParsePartialFloat parses the longest valid-float prefix of bytes.
func ParsePartialFloat[F Float](bytes []byte, opts ParseFloatOptions) Result[F] {
	return parseFloatCore[F](bytes, opts, true)
}

// ParsePartialFloatDefault is ParsePartialFloat with DefaultParseFloatOptions.
func ParsePartialFloatDefault[F Float](bytes []byte) Result[F] {
	return ParsePartialFloat[F](bytes, DefaultParseFloatOptions())
}

func parseFloatCore[F Float](bytes []byte, opts ParseFloatOptions, partial bool) Result[F] {
	if len(bytes) == 0 {
		return fail[F](ErrEmpty, 0)
	}

	if v, neg, matched := matchSpecial(bytes, opts); matched {
		if !partial && consumedSpecial(bytes, opts) != len(bytes) {
			return fail[F](ErrInvalidDigit, consumedSpecial(bytes, opts))
		}
		f := signedSpecial[F](v, neg)
		if partial {
			return ok[F](f, consumedSpecial(bytes, opts))
		}
		return ok[F](f, len(bytes))
	}

	lex, kind, errIndex := lexFloat(bytes, opts)
	if kind != ErrNone && partial && lex.digitSpanEnd > 0 {
		// The mantissa lexed cleanly and the failure lies in the exponent
		// part, so the mantissa alone is the longest valid prefix.
		lex, kind, errIndex = lexFloat(bytes[:lex.digitSpanEnd], opts)
	}
	if kind != ErrNone {
		if partial && kind != ErrEmpty && lex.consumed == 0 {
			return fail[F](ErrEmpty, 0)
		}
		return fail[F](kind, errIndex)
	}

	if !partial && lex.consumed != len(bytes) {
		return fail[F](ErrInvalidDigit, lex.consumed)
	}

	value, overflow := computeFloat[F](bytes, lex, opts)
	if overflow {
		if opts.format.NoSpecial() {
			idx := lex.consumed
			return fail[F](ErrOverflow, idx)
		}
	}

	if partial {
		return ok[F](value, lex.consumed)
	}
	return ok[F](value, len(bytes))
}

func consumedSpecial(bytes []byte, opts ParseFloatOptions) int {
	i := 0
	if len(bytes) > 0 && (bytes[0] == plus || bytes[0] == minus) {
		i = 1
	}
	for _, s := range []string{opts.special.nan, opts.special.infLong, opts.special.infShort} {
		if i+len(s) <= len(bytes) && specialEqual(bytes[i:i+len(s)], s, opts.format.CaseSensitiveSpecial()) {
			return i + len(s)
		}
	}
	return len(bytes)
}

func signedSpecial[F Float](v float64, neg bool) F {
	if neg && !math.Signbit(v) {
		v = -v
	}
	var z F
	switch any(z).(type) {
	case float32:
		return any(float32(v)).(F)
	default:
		return any(v).(F)
	}
}

// computeFloat dispatches lex (a decimal mantissa/exponent pair) through
// the fast, moderate, and slow paths of spec §4.D steps 3-5, in order,
// honoring opts.Lossy and opts.Rounding.
func computeFloat[F Float](bytes []byte, lex floatLex, opts ParseFloatOptions) (F, bool) {
	var z F
	switch any(z).(type) {
	case float32:
		f, overflow := computeFloat32(bytes, lex, opts)
		return any(f).(F), overflow
	default:
		f, overflow := computeFloat64(bytes, lex, opts)
		return any(f).(F), overflow
	}
}

func computeFloat64(bytes []byte, lex floatLex, opts ParseFloatOptions) (float64, bool) {
	if radix := opts.radix; radix != 10 {
		if isPowerOfTwoRadix(radix) {
			return binaryRadixFloat64(lex, radix)
		}
		return arbitraryRadixFloat64(lex, radix)
	}

	canUseApprox := opts.rounding == NearestTiesEven

	if !lex.trunc && canUseApprox {
		if f, ok := atof64exact(lex.mantissa, lex.decExp, lex.neg); ok {
			return f, false
		}
	}
	if canUseApprox {
		ext := new(extFloat)
		if ext.assignDecimal(lex.mantissa, lex.decExp, lex.neg, lex.trunc, &float64info) {
			b, overflow := ext.floatBits(&float64info)
			if overflow && opts.lossy {
				return math.Inf(signOf(lex.neg)), true
			}
			if !overflow || opts.lossy {
				return math.Float64frombits(b), overflow
			}
		}
		if opts.lossy {
			// Lossy accepts the fast estimate even when inconclusive.
			ext2 := new(extFloat)
			ext2.assignDecimal(lex.mantissa, lex.decExp, lex.neg, lex.trunc, &float64info)
			b, overflow := ext2.floatBits(&float64info)
			return math.Float64frombits(b), overflow
		}
	}

	d := new(decimal)
	d.assignFromLex(bytes, lex, opts.format, opts.radix)
	b, overflow := d.floatBits(&float64info, opts.rounding)
	return math.Float64frombits(b), overflow
}

func computeFloat32(bytes []byte, lex floatLex, opts ParseFloatOptions) (float32, bool) {
	if radix := opts.radix; radix != 10 {
		if isPowerOfTwoRadix(radix) {
			return binaryRadixFloat32(lex, radix)
		}
		return arbitraryRadixFloat32(lex, radix)
	}

	canUseApprox := opts.rounding == NearestTiesEven

	if !lex.trunc && canUseApprox {
		if f, ok := atof32exact(lex.mantissa, lex.decExp, lex.neg); ok {
			return f, false
		}
	}
	if canUseApprox {
		ext := new(extFloat)
		if ext.assignDecimal(lex.mantissa, lex.decExp, lex.neg, lex.trunc, &float32info) {
			b, overflow := ext.floatBits(&float32info)
			return math.Float32frombits(uint32(b)), overflow
		}
		if opts.lossy {
			ext2 := new(extFloat)
			ext2.assignDecimal(lex.mantissa, lex.decExp, lex.neg, lex.trunc, &float32info)
			b, overflow := ext2.floatBits(&float32info)
			return math.Float32frombits(uint32(b)), overflow
		}
	}

	d := new(decimal)
	d.assignFromLex(bytes, lex, opts.format, opts.radix)
	b, overflow := d.floatBits(&float32info, opts.rounding)
	return math.Float32frombits(uint32(b)), overflow
}

func signOf(neg bool) int {
	if neg {
		return -1
	}
	return 1
}

// assignFromLex rebuilds the exact-rational decimal the slow path scales
// by rescanning the original digit span lexFloat recorded, rather than
// trusting the 19-digit-truncated mantissa: correct rounding of decimal
// strings with more than 19 significant digits (lex.trunc true) needs
// every digit. The slow path runs for a non-default rounding mode, when
// the moderate path's error bound is inconclusive, or on a non-lossy
// overflow. lexFloat has already validated every separator/digit against
// the format; this rescan uses it only to recognise separator bytes, so
// it just has to classify digit vs. separator vs. dot.
func (d *decimal) assignFromLex(bytes []byte, lex floatLex, format Format, radix int) {
	d.neg = lex.neg
	d.nd = 0
	d.trunc = false
	sawDot := false
	for i := lex.digitSpanStart; i < lex.digitSpanEnd; i++ {
		b := bytes[i]
		switch {
		case b == period:
			sawDot = true
			d.dp = d.nd
		case format.isSeparatorByte(b):
			// separators carry no value
		default:
			dv, _ := digitOf(b, radix)
			if dv == 0 && d.nd == 0 && !sawDot {
				d.dp--
				continue
			}
			if d.nd < len(d.d) {
				d.d[d.nd] = digitChars[dv]
				d.nd++
			} else if dv != 0 {
				d.trunc = true
			}
		}
	}
	if !sawDot {
		d.dp = d.nd
	}
	d.dp += lex.expValue
	d.trim()
}

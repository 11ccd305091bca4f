package numlex

// ParseInteger parses the entire input as an integer of kind T under the
// given options; any trailing byte after a valid integer is InvalidDigit
// at that byte's index, per spec §4.C.
func ParseInteger[T Integer](bytes []byte, opts ParseIntegerOptions) Result[T] {
	return parseIntegerCore[T](bytes, opts, false)
}

// ParseIntegerDefault is ParseInteger with DefaultParseIntegerOptions.
func ParseIntegerDefault[T Integer](bytes []byte) Result[T] {
	return ParseInteger[T](bytes, DefaultParseIntegerOptions())
}

// ParsePartialInteger parses the longest valid-integer prefix of bytes,
// returning Empty if zero digits were consumed.
func ParsePartialInteger[T Integer](bytes []byte, opts ParseIntegerOptions) Result[T] {
	return parseIntegerCore[T](bytes, opts, true)
}

// ParsePartialIntegerDefault is ParsePartialInteger with
// DefaultParseIntegerOptions.
func ParsePartialIntegerDefault[T Integer](bytes []byte) Result[T] {
	return ParsePartialInteger[T](bytes, DefaultParseIntegerOptions())
}

// separatorAllowed decides whether a separator byte encountered mid-scan
// is acceptable at its position: consecutive (preceded by another
// separator), leading (no digit seen yet in this section), internal
// (digit seen, another digit follows), or trailing (digit seen, no digit
// follows). Lookahead resolves internal vs. trailing since the scanner
// never backtracks.
func separatorAllowed(f Format, s section, radix int, bytes []byte, i int, digitCount int, prevWasSeparator bool) bool {
	if prevWasSeparator {
		return f.allowsConsecutiveSeparator(s)
	}
	if digitCount == 0 {
		return f.allowsLeadingSeparator(s)
	}
	if i+1 < len(bytes) {
		if _, ok := digitOf(bytes[i+1], radix); ok {
			return f.allowsInternalSeparator(s)
		}
	}
	return f.allowsTrailingSeparator(s)
}

func parseIntegerCore[T Integer](bytes []byte, opts ParseIntegerOptions, partial bool) Result[T] {
	if len(bytes) == 0 {
		return fail[T](ErrEmpty, 0)
	}

	radix := opts.radix
	format := opts.format
	signed := isSignedKind[T]()

	i := 0
	neg := false
	switch bytes[0] {
	case minus:
		if !signed {
			if partial {
				return fail[T](ErrEmpty, 0)
			}
			return fail[T](ErrInvalidDigit, 0)
		}
		neg = true
		i = 1
	case plus:
		if format.NoPositiveMantissaSign() {
			if partial {
				return fail[T](ErrEmpty, 0)
			}
			return fail[T](ErrInvalidPositiveMantissaSign, 0)
		}
		i = 1
	default:
		if format.RequiredMantissaSign() {
			if partial {
				return fail[T](ErrEmpty, 0)
			}
			return fail[T](ErrMissingMantissaSign, 0)
		}
	}

	digitsStart := i
	var acc uint64
	overflowed := false
	digitCount := 0
	prevWasSeparator := false

	for i < len(bytes) {
		if radix == 10 && format.Separator() == 0 && !overflowed &&
			!(digitCount == 0 && format.NoIntegerLeadingZeros()) {
			if chunk, n := swarDecimalRun(bytes, i); n > 0 {
				if acc > maxUint64/uint64pow10[n] {
					overflowed = true
				} else {
					next := acc*uint64pow10[n] + chunk
					if next < acc {
						overflowed = true
					} else {
						acc = next
					}
				}
				digitCount += n
				prevWasSeparator = false
				i += n
				continue
			}
		}
		b := bytes[i]
		if format.isSeparatorByte(b) {
			if !separatorAllowed(format, sectionInteger, radix, bytes, i, digitCount, prevWasSeparator) {
				break
			}
			prevWasSeparator = true
			i++
			continue
		}
		d, ok := digitOf(b, radix)
		if !ok {
			break
		}
		if digitCount == 0 && d == 0 && format.NoIntegerLeadingZeros() {
			if j := i + 1; j < len(bytes) {
				if nd, more := digitOf(bytes[j], radix); more && nd != noDigit {
					return fail[T](ErrInvalidLeadingZeros, i)
				}
			}
		}
		if !overflowed {
			switch {
			case isPowerOfTwoRadix(radix):
				acc, overflowed = accumulatePowerOfTwoDigit(acc, d, radix)
			case acc > maxUint64/uint64(radix):
				overflowed = true
			default:
				next := acc*uint64(radix) + uint64(d)
				if next < acc {
					overflowed = true
				} else {
					acc = next
				}
			}
		}
		digitCount++
		prevWasSeparator = false
		i++
	}

	if digitCount == 0 {
		if partial {
			return fail[T](ErrEmpty, 0)
		}
		// The scan can stop at digitCount==0 two different ways: bytes
		// ran out (a lone sign, or nothing at all), or a rejected byte
		// broke the loop before any digit was seen (e.g. a second sign
		// byte). Only the former is an empty-input condition; the
		// latter is an invalid digit at the byte that broke the scan.
		if i < len(bytes) {
			return fail[T](ErrInvalidDigit, i)
		}
		if format.RequiredIntegerDigits() {
			return fail[T](ErrEmptyInteger, digitsStart)
		}
		return fail[T](ErrEmpty, 0)
	}

	if prevWasSeparator && !format.allowsTrailingSeparator(sectionInteger) {
		i--
	}

	if !partial && i < len(bytes) {
		return fail[T](ErrInvalidDigit, i)
	}

	limit := minMagnitude[T]()
	if neg {
		if acc > limit {
			overflowed = true
		}
	} else if acc > maxMagnitude[T]() {
		overflowed = true
	}

	if overflowed {
		kind := ErrOverflow
		if neg {
			kind = ErrUnderflow
		}
		if partial {
			return fail[T](kind, i)
		}
		return fail[T](kind, i)
	}

	var value T
	if neg {
		value = T(-int64(acc))
	} else {
		value = T(acc)
	}

	if partial {
		return ok[T](value, i)
	}
	return ok[T](value, len(bytes))
}

package numlex

// WriteInteger writes value in the given radix into out, starting at
// out[0], and returns the number of bytes written. out must have length
// at least the declared maximum width for T at that radix (widths.go);
// the function panics if out is too short, matching the teacher's
// writer contract of trusting a caller-supplied buffer large enough for
// the documented bound.
func WriteInteger[T Integer](value T, out []byte, opts WriteIntegerOptions) int {
	radix := uint64(opts.radix)
	neg := false
	var mag uint64

	if isSignedKind[T]() {
		sv := int64(value)
		if sv < 0 {
			neg = true
			mag = uint64(-(sv + 1)) + 1 // avoids overflow when sv == minimum
		} else {
			mag = uint64(sv)
		}
	} else {
		mag = uint64(uint64Of(value))
	}

	pos := len(out)
	if mag == 0 {
		pos--
		out[pos] = zero
	}
	if radix == 10 {
		for mag >= 100 {
			r := mag % 100 * 2
			mag /= 100
			pos -= 2
			out[pos] = smallsString[r]
			out[pos+1] = smallsString[r+1]
		}
	}
	for mag > 0 {
		pos--
		d := mag % radix
		out[pos] = digitChars[d]
		mag /= radix
	}
	if neg {
		pos--
		out[pos] = minus
	}

	n := copy(out, out[pos:])
	return n
}

// WriteIntegerDefault is WriteInteger with DefaultWriteIntegerOptions.
func WriteIntegerDefault[T Integer](value T, out []byte) int {
	return WriteInteger[T](value, out, DefaultWriteIntegerOptions())
}

// uint64Of widens an unsigned Integer kind to uint64 without going
// through a signed intermediate (which would corrupt values above
// math.MaxInt64 for the uint/uint64 kinds).
func uint64Of[T Integer](v T) uint64 {
	switch x := any(v).(type) {
	case uint8:
		return uint64(x)
	case uint16:
		return uint64(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	case uint:
		return uint64(x)
	default:
		return uint64(int64(v))
	}
}

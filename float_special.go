package numlex

import "math"

// matchSpecial checks src against opts's configured NaN/short-inf/long-inf
// spellings (case-folded unless format.CaseSensitiveSpecial is set),
// returning the represented value and true on a match. Disabled
// entirely when opts.FormatValue().NoSpecial() is set, per spec §4.B.
func matchSpecial(src []byte, opts ParseFloatOptions) (f float64, neg bool, matched bool) {
	if opts.format.NoSpecial() || len(src) == 0 {
		return 0, false, false
	}

	body := src
	switch src[0] {
	case plus:
		body = src[1:]
	case minus:
		neg = true
		body = src[1:]
	}

	caseSensitive := opts.format.CaseSensitiveSpecial()
	eq := func(s string) bool {
		return specialEqual(body, s, caseSensitive)
	}

	switch {
	case eq(opts.special.nan):
		return math.NaN(), neg, true
	case eq(opts.special.infShort), eq(opts.special.infLong):
		if neg {
			return math.Inf(-1), true, true
		}
		return math.Inf(1), false, true
	}
	return 0, false, false
}

func specialEqual(b []byte, s string, caseSensitive bool) bool {
	if len(b) != len(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		a, c := b[i], s[i]
		if caseSensitive {
			if a != c {
				return false
			}
			continue
		}
		if lowerASCII(a) != lowerASCII(c) {
			return false
		}
	}
	return true
}

// specialString returns the configured spelling for the classification of
// bits under flt, or "" if bits is finite.
func specialString(bits uint64, flt *floatInfo, opts WriteFloatOptions) (s string, isSpecial bool) {
	exp := int(bits>>flt.mantbits) & (1<<flt.expbits - 1)
	mant := bits & (uint64(1)<<flt.mantbits - 1)
	if exp != 1<<flt.expbits-1 {
		return "", false
	}
	neg := bits>>(flt.expbits+flt.mantbits) != 0
	if mant != 0 {
		return opts.special.nan, true
	}
	if neg {
		return string(minus) + opts.special.infLong, true
	}
	return opts.special.infLong, true
}

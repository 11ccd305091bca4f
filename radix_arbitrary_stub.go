//go:build !numlex_radix

package numlex

import "math"

// arbitraryRadixSupported is false in the default build: odd-radix
// parsing still works, but falls back to float64 multiplication instead
// of the exact big.Int scaling radix_arbitrary.go provides under the
// numlex_radix tag. See that file's doc comment for why the tag exists.
const arbitraryRadixSupported = false

func arbitraryRadixFloat64(lex floatLex, radix int) (float64, bool) {
	v := float64(lex.mantissa) * math.Pow(float64(radix), float64(lex.decExp))
	if lex.neg {
		v = -v
	}
	return v, math.IsInf(v, 0)
}

func arbitraryRadixFloat32(lex floatLex, radix int) (float32, bool) {
	v, overflow := arbitraryRadixFloat64(lex, radix)
	return float32(v), overflow
}

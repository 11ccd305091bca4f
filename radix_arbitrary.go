//go:build numlex_radix

package numlex

import (
	"math"
	"math/big"
)

// arbitraryRadixSupported reports whether this build carries the
// multi-precision odd-radix scaling path. Gated behind the numlex_radix
// tag per spec.md §9 "Feature gating": bases 3, 5, 6, 7, 9, 11-15, and
// 17-31/33-36 are rare enough in practice that the exact big.Int scaling
// they need is opt-in rather than always compiled.
const arbitraryRadixSupported = true

// arbitraryRadixFloat64/32 reconstruct a float for a non-power-of-two,
// non-decimal radix by computing mantissa * radix^decExp exactly with
// big.Int (positive exponent) or a big.Rat (negative exponent), then
// narrowing with big.Rat's correctly-rounded Float64/Float32 -- the
// multi-precision scaling machinery the teacher's decimal.rightShift
// and leftShift approximate for radix 10 specifically, generalized here
// to any base via the standard library's arbitrary-precision types.
func arbitraryRadixFloat64(lex floatLex, radix int) (float64, bool) {
	m := arbitraryRadixRat(lex, radix)
	f, _ := m.Float64()
	return f, math.IsInf(f, 0)
}

func arbitraryRadixFloat32(lex floatLex, radix int) (float32, bool) {
	m := arbitraryRadixRat(lex, radix)
	f32, _ := m.Float32()
	return f32, math.IsInf(float64(f32), 0)
}

func arbitraryRadixRat(lex floatLex, radix int) *big.Rat {
	mant := new(big.Int).SetUint64(lex.mantissa)
	scale := new(big.Int).Exp(big.NewInt(int64(radix)), big.NewInt(int64(abs(lex.decExp))), nil)

	var r *big.Rat
	if lex.decExp >= 0 {
		r = new(big.Rat).SetInt(new(big.Int).Mul(mant, scale))
	} else {
		num := new(big.Rat).SetInt(mant)
		den := new(big.Rat).SetInt(scale)
		r = num.Quo(num, den)
	}
	if lex.neg {
		r.Neg(r)
	}
	return r
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

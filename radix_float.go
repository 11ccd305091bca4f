package numlex

import (
	"math"
	"math/big"
)

// binaryRadixFloat64 and binaryRadixFloat32 reconstruct a float from a
// lexed mantissa/exponent pair when the input radix is a power of two:
// value = mantissa * radix^decExp is then exactly mantissa * 2^binExp, a
// pure base-2 rescaling with no decimal arithmetic involved at all. This
// is the power-of-two fast path spec.md §4.D "Non-decimal radices" asks
// for -- big.Float's SetMantExp does the rescale and its Float64/Float32
// conversion does the correctly-rounded narrowing, so there is no need
// to port a bespoke shift-and-round routine for this case.
//
// No third-party library in the pack offers correctly-rounded arbitrary
// base-2-exponent scaling; math/big is the standard library's own answer
// to exactly this problem, which is why it is used here unconditionally
// rather than gated like the odd-radix path in radix_arbitrary*.go.
func binaryRadixFloat64(lex floatLex, radix int) (float64, bool) {
	binExp := lex.decExp * int(bitsPerDigit(radix))
	m := new(big.Float).SetPrec(64).SetUint64(lex.mantissa)
	m.SetMantExp(m, binExp)
	if lex.neg {
		m.Neg(m)
	}
	f, acc := m.Float64()
	overflow := acc != big.Exact && math.IsInf(f, 0)
	return f, overflow
}

func binaryRadixFloat32(lex floatLex, radix int) (float32, bool) {
	binExp := lex.decExp * int(bitsPerDigit(radix))
	m := new(big.Float).SetPrec(64).SetUint64(lex.mantissa)
	m.SetMantExp(m, binExp)
	if lex.neg {
		m.Neg(m)
	}
	f, acc := m.Float32()
	overflow := acc != big.Exact && math.IsInf(float64(f), 0)
	return f, overflow
}

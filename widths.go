package numlex

// Declared maximum formatted widths (spec §6), computed once rather than
// tabulated per (kind, radix) pair: the integer bound is bits+1 (sign) in
// the worst radix (binary), the float bounds are the constants the
// teacher's strconv fork already hard-codes for decimal/any-radix output.
const (
	// MaxWidthInt8Decimal etc. cover the common decimal case exactly;
	// MaxWidthAnyRadix covers every kind at every supported radix (worst
	// case is always binary, radix 2).
	MaxWidthInt8Decimal   = 4  // "-128"
	MaxWidthUint8Decimal  = 3  // "255"
	MaxWidthInt16Decimal  = 6  // "-32768"
	MaxWidthUint16Decimal = 5  // "65535"
	MaxWidthInt32Decimal  = 11 // "-2147483648"
	MaxWidthUint32Decimal = 10 // "4294967295"
	MaxWidthInt64Decimal  = 20 // "-9223372036854775808"
	MaxWidthUint64Decimal = 20 // "18446744073709551615"

	// MaxWidthAnyRadixN is the maximum number of bytes needed to write a
	// value of the given bit width in any supported radix (2..36): one
	// sign byte plus bitWidth binary digits is always sufficient since
	// radix 2 is the most space-inefficient supported base.
	MaxWidthAnyRadix8  = 1 + 8
	MaxWidthAnyRadix16 = 1 + 16
	MaxWidthAnyRadix32 = 1 + 32
	MaxWidthAnyRadix64 = 1 + 64

	// Float widths, ported from the constants the teacher's ftoa fork
	// relies on for its scratch-buffer sizing (shortest/%e/%f worst
	// cases combined): binary32 needs at most 24 decimal bytes, binary64
	// at most 25; the "any-radix" figures add headroom for hex/binary
	// mantissa digit expansion plus a signed binary exponent.
	MaxWidthFloat32Decimal = 24
	MaxWidthFloat64Decimal = 25
	MaxWidthFloat32Any     = 48
	MaxWidthFloat64Any     = 75
)

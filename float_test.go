package numlex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloat_ConcreteScenarios(t *testing.T) {
	t.Run("10.5 as binary64 default", func(t *testing.T) {
		res := ParseFloatDefault[float64]([]byte("10.5"))
		require.True(t, res.Ok())
		assert.Equal(t, 10.5, res.Value())
	})

	t.Run("dot alone is empty mantissa", func(t *testing.T) {
		res := ParseFloatDefault[float64]([]byte("."))
		require.False(t, res.Ok())
		assert.Equal(t, ErrEmptyMantissa, res.Err().Kind)
		assert.Equal(t, 0, res.Err().Index)
	})

	t.Run("10e+ is empty exponent at the sign", func(t *testing.T) {
		res := ParseFloatDefault[float64]([]byte("10e+"))
		require.False(t, res.Ok())
		assert.Equal(t, ErrEmptyExponent, res.Err().Kind)
		assert.Equal(t, 3, res.Err().Index)
	})

	t.Run("+1.0 under json format rejects positive mantissa sign", func(t *testing.T) {
		f, ok := LookupFormat("json")
		require.True(t, ok)
		opts, err := NewParseFloatOptionsBuilder().FormatValue(f).Build()
		require.NoError(t, err)
		res := ParseFloat[float64]([]byte("+1.0"), opts)
		require.False(t, res.Ok())
		assert.Equal(t, ErrInvalidPositiveMantissaSign, res.Err().Kind)
		assert.Equal(t, 0, res.Err().Index)
	})
}

func TestWriteFloat_ConcreteScenarios(t *testing.T) {
	t.Run("0.1+0.2 shortest form", func(t *testing.T) {
		var buf [MaxWidthFloat64Decimal]byte
		n := WriteFloatDefault[float64](0.1+0.2, buf[:])
		assert.Equal(t, "0.30000000000000004", string(buf[:n]))
	})

	t.Run("NaN spelling", func(t *testing.T) {
		var buf [MaxWidthFloat64Decimal]byte
		n := WriteFloatDefault[float64](math.NaN(), buf[:])
		assert.Equal(t, "NaN", string(buf[:n]))
	})

	t.Run("+Inf spelling", func(t *testing.T) {
		var buf [MaxWidthFloat64Decimal]byte
		n := WriteFloatDefault[float64](math.Inf(1), buf[:])
		assert.Equal(t, "infinity", string(buf[:n]))
	})
}

func TestParseFloat_RoundTripDefault(t *testing.T) {
	values := []float64{0, 1, -1, 0.5, 1e300, 1e-300, 123456789.123456, math.MaxFloat64, math.Copysign(0, -1)}
	for _, v := range values {
		var buf [MaxWidthFloat64Decimal]byte
		n := WriteFloatDefault[float64](v, buf[:])
		res := ParseFloatDefault[float64](buf[:n])
		require.True(t, res.Ok(), "input %v -> %q", v, string(buf[:n]))
		assert.True(t, math.Float64bits(v) == math.Float64bits(res.Value()) ||
			(math.IsNaN(v) && math.IsNaN(res.Value())), "round-trip mismatch for %v", v)
	}
}

func TestParseFloat_LongDecimalTruncated(t *testing.T) {
	// More than 19 significant digits truncates the lexed mantissa
	// (lex.trunc), which rules out the exact fast path; the moderate path's
	// error bound still settles this value without the slow path.
	res := ParseFloatDefault[float64]([]byte("1.00000000000000000000000000001"))
	require.True(t, res.Ok())
	assert.InDelta(t, 1.0, res.Value(), 1e-9)
}

func TestParseFloat_NonDecimalRadix(t *testing.T) {
	t.Run("hexadecimal mantissa", func(t *testing.T) {
		// The default NaN/Inf spellings contain 'a' and 'f', which are
		// radix-16 digits, so Build rejects them; use spellings that are not.
		opts, err := NewParseFloatOptionsBuilder().
			Radix(16).
			NanString("NoN").
			InfShortString("oo").
			InfLongString("ooo").
			Build()
		require.NoError(t, err)
		res := ParseFloat[float64]([]byte("1a"), opts)
		require.True(t, res.Ok())
		assert.Equal(t, float64(0x1a), res.Value())
	})

	t.Run("binary mantissa with fraction", func(t *testing.T) {
		opts, err := NewParseFloatOptionsBuilder().Radix(2).Build()
		require.NoError(t, err)
		res := ParseFloat[float64]([]byte("101.1"), opts)
		require.True(t, res.Ok())
		assert.Equal(t, 5.5, res.Value())
	})

	t.Run("base 7 mantissa", func(t *testing.T) {
		opts, err := NewParseFloatOptionsBuilder().Radix(7).Build()
		require.NoError(t, err)
		res := ParseFloat[float64]([]byte("10"), opts)
		require.True(t, res.Ok())
		assert.Equal(t, 7.0, res.Value())
	})
}

func TestParseFloat_Special(t *testing.T) {
	for _, s := range []string{"NaN", "nan", "inf", "infinity", "-inf", "+infinity"} {
		res := ParseFloatDefault[float64]([]byte(s))
		require.True(t, res.Ok(), "input %q", s)
	}
}

package numlex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInteger_ConcreteScenarios(t *testing.T) {
	t.Run("10 as u8 default", func(t *testing.T) {
		res := ParseIntegerDefault[uint8]([]byte("10"))
		require.True(t, res.Ok())
		assert.Equal(t, uint8(10), res.Value())
	})

	t.Run("10a as u8 full", func(t *testing.T) {
		res := ParseIntegerDefault[uint8]([]byte("10a"))
		require.False(t, res.Ok())
		assert.Equal(t, ErrInvalidDigit, res.Err().Kind)
		assert.Equal(t, 2, res.Err().Index)
	})

	t.Run("10a as u8 partial", func(t *testing.T) {
		res := ParsePartialIntegerDefault[uint8]([]byte("10a"))
		require.True(t, res.Ok())
		assert.Equal(t, uint8(10), res.Value())
		assert.Equal(t, 2, res.Consumed())
	})

	t.Run("empty as i32 default", func(t *testing.T) {
		res := ParseIntegerDefault[int32]([]byte(""))
		require.False(t, res.Ok())
		assert.Equal(t, ErrEmpty, res.Err().Kind)
		assert.Equal(t, 0, res.Err().Index)
	})

	t.Run("1_0 as u8 fsharp_string", func(t *testing.T) {
		f, ok := LookupFormat("fsharp_string")
		require.True(t, ok)
		opts, err := NewParseIntegerOptionsBuilder().FormatValue(f).Build()
		require.NoError(t, err)
		res := ParseInteger[uint8]([]byte("1_0"), opts)
		require.True(t, res.Ok())
		assert.Equal(t, uint8(10), res.Value())
	})

	t.Run("1_0 as u8 default", func(t *testing.T) {
		res := ParseIntegerDefault[uint8]([]byte("1_0"))
		require.False(t, res.Ok())
		assert.Equal(t, ErrInvalidDigit, res.Err().Kind)
		assert.Equal(t, 1, res.Err().Index)
	})

	t.Run("256 written then parsed as u8 overflows", func(t *testing.T) {
		var buf [MaxWidthInt32Decimal]byte
		n := WriteInteger[int32](256, buf[:], DefaultWriteIntegerOptions())
		res := ParseIntegerDefault[uint8](buf[:n])
		require.False(t, res.Ok())
		assert.Equal(t, ErrOverflow, res.Err().Kind)
	})
}

func TestParseInteger_NegativeSignRejectedForUnsigned(t *testing.T) {
	res := ParseIntegerDefault[uint32]([]byte("-1"))
	require.False(t, res.Ok())
	assert.Equal(t, ErrInvalidDigit, res.Err().Kind)
}

func TestParseInteger_SignOnlyIsEmpty(t *testing.T) {
	for _, in := range []string{"+", "-"} {
		res := ParseIntegerDefault[int8]([]byte(in))
		require.False(t, res.Ok(), "input %q", in)
		assert.Equal(t, ErrEmpty, res.Err().Kind, "input %q", in)
		assert.Equal(t, 0, res.Err().Index, "input %q", in)
	}
}

func TestParseInteger_DoubleSignIsInvalidDigit(t *testing.T) {
	res := ParseIntegerDefault[int8]([]byte("++00"))
	require.False(t, res.Ok())
	assert.Equal(t, ErrInvalidDigit, res.Err().Kind)
	assert.Equal(t, 1, res.Err().Index)
}

func TestParseInteger_SwarBoundary_RejectsByteAboveNine(t *testing.T) {
	// "=" (0x3D) sits right after the decimal digit range in ASCII; an
	// 8-byte SWAR chunk containing it must stop the parse at that byte
	// instead of silently accepting it as a digit value in [10,15].
	res := ParseIntegerDefault[int64]([]byte("1234567=89"))
	require.False(t, res.Ok())
	assert.Equal(t, ErrInvalidDigit, res.Err().Kind)
	assert.Equal(t, 7, res.Err().Index)
}

func TestParseInteger_MinInt64RoundTrips(t *testing.T) {
	var buf [MaxWidthInt64Decimal]byte
	n := WriteInteger[int64](minInt64ForTest, buf[:], DefaultWriteIntegerOptions())
	res := ParseIntegerDefault[int64](buf[:n])
	require.True(t, res.Ok())
	assert.Equal(t, minInt64ForTest, res.Value())
}

const minInt64ForTest int64 = -9223372036854775808

func TestParseInteger_AllRadices(t *testing.T) {
	for radix := 2; radix <= 36; radix++ {
		opts, err := NewWriteIntegerOptions(radix)
		require.NoError(t, err)
		var buf [MaxWidthAnyRadix64]byte
		n := WriteInteger[uint64](12345, buf[:], opts)

		parseOpts, err := NewParseIntegerOptionsBuilder().Radix(radix).Build()
		require.NoError(t, err)
		res := ParseInteger[uint64](buf[:n], parseOpts)
		require.True(t, res.Ok(), "radix %d: %q", radix, string(buf[:n]))
		assert.Equal(t, uint64(12345), res.Value(), "radix %d", radix)
	}
}

package numlex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBuilder_SeparatorCollisionRejected(t *testing.T) {
	_, ok := NewBuilder().DigitSeparator('5').Build()
	assert.False(t, ok, "a digit byte can never be a separator")

	_, ok = NewBuilder().DigitSeparator('e').Build()
	assert.False(t, ok, "the default exponent marker can never be a separator")
}

func TestFormatBuilder_PositionalFlagWithoutSeparatorRejected(t *testing.T) {
	_, ok := NewBuilder().IntegerInternalSeparator(true).Build()
	assert.False(t, ok, "a positional separator flag with no separator byte is meaningless")
}

func TestFormatBuilder_NoExponentNotationClearsExponentFlags(t *testing.T) {
	_, ok := NewBuilder().
		NoExponentNotation(true).
		RequiredExponentDigits(true).
		Build()
	assert.False(t, ok, "no_exponent_notation conflicts with any exponent-section flag")

	f, ok := NewBuilder().NoExponentNotation(true).Build()
	require.True(t, ok)
	assert.True(t, f.NoExponentNotation())
}

func TestFormat_Idempotence(t *testing.T) {
	// Property 6: rebuilding a format from the flags read off another
	// format yields the same 64-bit value.
	original, ok := NewBuilder().
		DigitSeparator('_').
		IntegerInternalSeparator(true).
		RequiredIntegerDigits(true).
		NoPositiveMantissaSign(true).
		Build()
	require.True(t, ok)

	rebuilt, ok := NewBuilder().
		DigitSeparator(original.Separator()).
		IntegerInternalSeparator(original.IntegerInternalSeparator()).
		RequiredIntegerDigits(original.RequiredIntegerDigits()).
		NoPositiveMantissaSign(original.NoPositiveMantissaSign()).
		Build()
	require.True(t, ok)

	assert.Equal(t, original, rebuilt)
}

func TestFormatRegistry_LookupKnownPresets(t *testing.T) {
	for _, name := range []string{"json", "rust_literal", "python_literal", "fsharp_string", "toml"} {
		_, ok := LookupFormat(name)
		assert.True(t, ok, "expected preset %q to be registered", name)
	}

	_, ok := LookupFormat("does_not_exist")
	assert.False(t, ok)
}

func TestFormatRegistry_RegisterCustomPreset(t *testing.T) {
	f, ok := NewBuilder().DigitSeparator(' ').IntegerInternalSeparator(true).Build()
	require.True(t, ok)
	RegisterFormat("space_separated_test_preset", f)

	got, ok := LookupFormat("SPACE_SEPARATED_TEST_PRESET")
	require.True(t, ok, "lookup should be case-insensitive")
	assert.Equal(t, f, got)
}

package numlex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloatOptionsBuilder_InvalidRadixRejected(t *testing.T) {
	_, err := NewParseFloatOptionsBuilder().Radix(1).Build()
	assert.ErrorIs(t, err, ErrInvalidRadix)

	_, err = NewParseFloatOptionsBuilder().Radix(37).Build()
	assert.ErrorIs(t, err, ErrInvalidRadix)
}

func TestParseFloatOptionsBuilder_LossyWithNonDefaultRoundingConflicts(t *testing.T) {
	_, err := NewParseFloatOptionsBuilder().
		Lossy(true).
		Rounding(TowardZero).
		Build()
	assert.ErrorIs(t, err, ErrLossyRoundingConflict)

	_, err = NewParseFloatOptionsBuilder().
		Lossy(true).
		Rounding(NearestTiesEven).
		Build()
	assert.NoError(t, err)
}

func TestParseFloatOptionsBuilder_EmptySpellingRejected(t *testing.T) {
	_, err := NewParseFloatOptionsBuilder().NanString("").Build()
	assert.ErrorIs(t, err, ErrEmptySpelling)
}

func TestParseFloatOptionsBuilder_SpellingCollidingWithDigitRejected(t *testing.T) {
	_, err := NewParseFloatOptionsBuilder().NanString("123").Build()
	assert.ErrorIs(t, err, ErrEmptySpelling)
}

func TestParseIntegerOptionsBuilder_InvalidRadixRejected(t *testing.T) {
	_, err := NewParseIntegerOptionsBuilder().Radix(0).Build()
	assert.ErrorIs(t, err, ErrInvalidRadix)
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultParseFloatOptions()
	require.Equal(t, 10, o.Radix())
	assert.Equal(t, NearestTiesEven, o.Rounding())
	assert.False(t, o.Lossy())
	assert.Equal(t, "NaN", o.NanString())
}

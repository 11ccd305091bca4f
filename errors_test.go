package numlex

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestError_IsSentinelMatch(t *testing.T) {
	e := errAt(ErrOverflow, 5)
	assert.True(t, errors.Is(e, ErrOverflow.Sentinel()))
	assert.False(t, errors.Is(e, ErrUnderflow.Sentinel()))
}

func TestError_IndexBounded(t *testing.T) {
	// Property 7: for any failing parse, the returned index is <= the
	// input length.
	inputs := []string{"", "1", "abc", "1.2.3", "1e", "-", "+"}
	for _, in := range inputs {
		res := ParseFloatDefault[float64]([]byte(in))
		if res.Ok() {
			continue
		}
		assert.LessOrEqual(t, res.Err().Index, len(in), "input %q", in)
	}
}

func TestError_StructDiff(t *testing.T) {
	got := errAt(ErrEmptyExponent, 3)
	want := &Error{Kind: ErrEmptyExponent, Index: 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("errAt mismatch (-want +got):\n%s", diff)
	}
}

func TestResult_Equal(t *testing.T) {
	a := ok[int64](10, 2)
	b := ok[int64](10, 2)
	assert.True(t, Equal(a, b))

	c := fail[int64](ErrOverflow, 3)
	d := fail[int64](ErrOverflow, 3)
	assert.True(t, Equal(c, d))
	assert.False(t, Equal(a, c))
}

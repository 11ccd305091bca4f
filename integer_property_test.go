package numlex

import (
	"testing"
	"testing/quick"
)

// TestIntegerRoundTrip_Property checks spec.md §8 property 1 for the int64
// kind in radix 10: for every n, parse(write(n)) == n.
func TestIntegerRoundTrip_Property(t *testing.T) {
	opts := DefaultWriteIntegerOptions()
	f := func(n int64) bool {
		var buf [MaxWidthInt64Decimal]byte
		written := WriteInteger[int64](n, buf[:], opts)
		res := ParseIntegerDefault[int64](buf[:written])
		return res.Ok() && res.Value() == n
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestUnsignedIntegerRoundTrip_Property(t *testing.T) {
	opts := DefaultWriteIntegerOptions()
	f := func(n uint64) bool {
		var buf [MaxWidthUint64Decimal]byte
		written := WriteInteger[uint64](n, buf[:], opts)
		res := ParseIntegerDefault[uint64](buf[:written])
		return res.Ok() && res.Value() == n
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

// TestIntegerPartialIsPrefixOfFull is spec.md §8 property 5.
func TestIntegerPartialIsPrefixOfFull(t *testing.T) {
	f := func(n int32, suffix byte) bool {
		var buf [MaxWidthInt32Decimal + 1]byte
		written := WriteInteger[int32](n, buf[:MaxWidthInt32Decimal], DefaultWriteIntegerOptions())
		// Append a non-digit, non-separator trailing byte so the partial
		// parse has something to stop at.
		if _, isDigit := digitOf(suffix, 10); isDigit {
			suffix = 'z'
		}
		buf[written] = suffix
		full := buf[:written+1]

		partial := ParsePartialIntegerDefault[int32](full)
		if !partial.Ok() {
			return true // n's own digits may not be parseable as a prefix in pathological cases (e.g. empty)
		}
		again := ParseIntegerDefault[int32](full[:partial.Consumed()])
		return again.Ok() && again.Value() == partial.Value()
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

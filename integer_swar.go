package numlex

import (
	"encoding/binary"

	"github.com/klauspost/cpuid/v2"
)

// swarEnabled is decided once at package init from the host CPU's
// feature bits and never re-queried inside a parse call, so the hot loop
// stays branch-prediction-clean. SSE2 is present on effectively every
// amd64 target; on arm64 and other architectures cpuid reports it absent
// and the scalar loop in integer.go is used unconditionally.
var swarEnabled = cpuid.CPU.Supports(cpuid.SSE2)

// swarDecimalRun reports how many ASCII decimal digit bytes starting at
// bytes[i] can be consumed 8-at-a-time, and their accumulated value, using
// the SIMD-within-a-register trick: load 8 bytes as a little-endian
// uint64, subtract the broadcast '0' pattern, and bit-check that every
// byte landed in [0,9] before folding the digits one at a time
// (value*10 + digit) into a uint64. Returns consumed=0 when swarEnabled is false, bytes[i:] is shorter
// than 8, or any of the 8 bytes is not a decimal digit -- callers fall
// back to the scalar per-byte loop in that case.
func swarDecimalRun(bytes []byte, i int) (value uint64, consumed int) {
	if !swarEnabled || i+8 > len(bytes) {
		return 0, 0
	}
	chunk := binary.LittleEndian.Uint64(bytes[i : i+8])

	// Subtract '0' (0x30) from every byte lane; a lane is a valid digit
	// iff the result is <= 9 (unsigned). Detect any lane out of range via
	// the classic SWAR less-equal test.
	const lo = 0x3030303030303030
	const hiMask = 0x8080808080808080
	const nine = 0x0909090909090909

	sub := chunk - lo
	// gt: high bit set in byte i iff sub[i] > 9, the canonical "has a
	// byte greater than N" SWAR trick applied directly to sub -- not to
	// a masked derivative of it, which silently passed sub values 10-15
	// through undetected.
	gt := ((sub + (0x7f7f7f7f7f7f7f7f - nine)) | sub) & hiMask
	if gt != 0 {
		return 0, 0
	}
	// Also reject any lane where the original byte was below '0' (sub
	// wrapped around to a huge value); the high-bit test above already
	// catches that case since wraparound sets bit 7 of that lane.

	d0 := (sub >> 0) & 0xff
	d1 := (sub >> 8) & 0xff
	d2 := (sub >> 16) & 0xff
	d3 := (sub >> 24) & 0xff
	d4 := (sub >> 32) & 0xff
	d5 := (sub >> 40) & 0xff
	d6 := (sub >> 48) & 0xff
	d7 := (sub >> 56) & 0xff

	value = d0
	for _, d := range [...]uint64{d1, d2, d3, d4, d5, d6, d7} {
		value = value*10 + d
	}
	return value, 8
}

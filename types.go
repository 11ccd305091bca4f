/*
 * Copyright 2009-2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style
 * license that can be found in the LICENSE file.
 */

package numlex

// Byte constants for the ASCII characters the grammar state machines test
// against. Named the way the teacher names them, so a digit-classification
// switch reads like prose instead of a wall of rune literals.
const (
	zero  byte = '0'
	one   byte = '1'
	two   byte = '2'
	three byte = '3'
	four  byte = '4'
	five  byte = '5'
	six   byte = '6'
	seven byte = '7'
	eight byte = '8'
	nine  byte = '9'

	minus  byte = '-'
	plus   byte = '+'
	period byte = '.'

	aChr byte = 'a'
	zChr byte = 'z'
	eChr byte = 'e'
	pChr byte = 'p'
	iChr byte = 'i'
	nChr byte = 'n'
	fChr byte = 'f'

	bigAChr byte = 'A'
	bigZChr byte = 'Z'
	bigEChr byte = 'E'
	bigPChr byte = 'P'
	bigIChr byte = 'I'
	bigNChr byte = 'N'
	bigFChr byte = 'F'
)

// isASCIIDigit reports whether b is a decimal digit byte. This is the
// radix-10 special case of the general digit-table lookup in tables.go
// (digitOf), which the scanners call instead; nothing in the package
// calls isASCIIDigit.
func isASCIIDigit(b byte) bool { return b >= zero && b <= nine }

package numlex

// Format is the 64-bit bit-packed number-format grammar descriptor of
// spec §3/§4.B. The high byte holds the digit-separator ASCII code (0 when
// separators are disabled); the low 56 bits are a bitset of grammar toggles.
// A Format is immutable once built: the only way to produce one is through
// Builder.Build, which enforces every invariant in spec §3 so the inner
// parse loop never needs to re-validate.
type Format uint64

const (
	flagRequiredIntegerDigits uint64 = 1 << iota
	flagRequiredFractionDigits
	flagRequiredExponentDigits
	flagNoPositiveMantissaSign
	flagRequiredMantissaSign
	flagNoExponentNotation
	flagNoPositiveExponentSign
	flagRequiredExponentSign
	flagNoExponentWithoutFraction
	flagNoSpecial
	flagCaseSensitiveSpecial
	flagNoIntegerLeadingZeros
	flagNoFloatLeadingZeros
	flagRequiredExponentNotation

	flagIntegerInternalSeparator
	flagIntegerLeadingSeparator
	flagIntegerTrailingSeparator
	flagIntegerConsecutiveSeparator

	flagFractionInternalSeparator
	flagFractionLeadingSeparator
	flagFractionTrailingSeparator
	flagFractionConsecutiveSeparator

	flagExponentInternalSeparator
	flagExponentLeadingSeparator
	flagExponentTrailingSeparator
	flagExponentConsecutiveSeparator

	flagSpecialDigitSeparator

	flagBitsUsed // sentinel: the bit just past the last flag; must stay at or below bit separatorShift
)

const (
	flagRequiredDigits = flagRequiredIntegerDigits | flagRequiredFractionDigits | flagRequiredExponentDigits

	flagInternalDigitSeparator = flagIntegerInternalSeparator | flagFractionInternalSeparator | flagExponentInternalSeparator
	flagLeadingDigitSeparator  = flagIntegerLeadingSeparator | flagFractionLeadingSeparator | flagExponentLeadingSeparator
	flagTrailingDigitSeparator = flagIntegerTrailingSeparator | flagFractionTrailingSeparator | flagExponentTrailingSeparator
	flagConsecutiveSeparator   = flagIntegerConsecutiveSeparator | flagFractionConsecutiveSeparator | flagExponentConsecutiveSeparator

	// separatorShift places the separator byte in the top 8 bits, leaving
	// 56 bits for flags -- the 27 flags occupy bits 0-26 (flagBitsUsed is
	// 1<<27), with ample room for future grammar toggles.
	separatorShift = 56
	separatorMask  = 0xFF
)

func init() {
	if flagBitsUsed > 1<<separatorShift {
		panic("numlex: too many format flags for the low 56 bits")
	}
}

// Separator returns the configured digit-separator byte, or 0 if disabled.
func (f Format) Separator() byte { return byte(uint64(f) >> separatorShift & separatorMask) }

func (f Format) has(flag uint64) bool { return uint64(f)&flag != 0 }

func (f Format) RequiredIntegerDigits() bool      { return f.has(flagRequiredIntegerDigits) }
func (f Format) RequiredFractionDigits() bool     { return f.has(flagRequiredFractionDigits) }
func (f Format) RequiredExponentDigits() bool     { return f.has(flagRequiredExponentDigits) }
func (f Format) RequiredDigits() bool             { return f.has(flagRequiredDigits) }
func (f Format) NoPositiveMantissaSign() bool     { return f.has(flagNoPositiveMantissaSign) }
func (f Format) RequiredMantissaSign() bool       { return f.has(flagRequiredMantissaSign) }
func (f Format) NoExponentNotation() bool         { return f.has(flagNoExponentNotation) }
func (f Format) NoPositiveExponentSign() bool     { return f.has(flagNoPositiveExponentSign) }
func (f Format) RequiredExponentSign() bool       { return f.has(flagRequiredExponentSign) }
func (f Format) NoExponentWithoutFraction() bool  { return f.has(flagNoExponentWithoutFraction) }
func (f Format) NoSpecial() bool                  { return f.has(flagNoSpecial) }
func (f Format) CaseSensitiveSpecial() bool       { return f.has(flagCaseSensitiveSpecial) }
func (f Format) NoIntegerLeadingZeros() bool      { return f.has(flagNoIntegerLeadingZeros) }
func (f Format) NoFloatLeadingZeros() bool        { return f.has(flagNoFloatLeadingZeros) }
func (f Format) RequiredExponentNotation() bool   { return f.has(flagRequiredExponentNotation) }
func (f Format) SpecialDigitSeparator() bool      { return f.has(flagSpecialDigitSeparator) }

func (f Format) IntegerInternalSeparator() bool    { return f.has(flagIntegerInternalSeparator) }
func (f Format) IntegerLeadingSeparator() bool     { return f.has(flagIntegerLeadingSeparator) }
func (f Format) IntegerTrailingSeparator() bool    { return f.has(flagIntegerTrailingSeparator) }
func (f Format) IntegerConsecutiveSeparator() bool { return f.has(flagIntegerConsecutiveSeparator) }

func (f Format) FractionInternalSeparator() bool    { return f.has(flagFractionInternalSeparator) }
func (f Format) FractionLeadingSeparator() bool     { return f.has(flagFractionLeadingSeparator) }
func (f Format) FractionTrailingSeparator() bool    { return f.has(flagFractionTrailingSeparator) }
func (f Format) FractionConsecutiveSeparator() bool { return f.has(flagFractionConsecutiveSeparator) }

func (f Format) ExponentInternalSeparator() bool    { return f.has(flagExponentInternalSeparator) }
func (f Format) ExponentLeadingSeparator() bool     { return f.has(flagExponentLeadingSeparator) }
func (f Format) ExponentTrailingSeparator() bool    { return f.has(flagExponentTrailingSeparator) }
func (f Format) ExponentConsecutiveSeparator() bool { return f.has(flagExponentConsecutiveSeparator) }

// section identifies which of the three digit runs a separator-position
// check applies to; it lets the tokenizer's state machine (float.go,
// integer.go) share one separatorAllowed implementation (integer.go).
type section uint8

const (
	sectionInteger section = iota
	sectionFraction
	sectionExponent
)

func (f Format) allowsInternalSeparator(s section) bool {
	switch s {
	case sectionInteger:
		return f.IntegerInternalSeparator()
	case sectionFraction:
		return f.FractionInternalSeparator()
	default:
		return f.ExponentInternalSeparator()
	}
}

func (f Format) allowsLeadingSeparator(s section) bool {
	switch s {
	case sectionInteger:
		return f.IntegerLeadingSeparator()
	case sectionFraction:
		return f.FractionLeadingSeparator()
	default:
		return f.ExponentLeadingSeparator()
	}
}

func (f Format) allowsTrailingSeparator(s section) bool {
	switch s {
	case sectionInteger:
		return f.IntegerTrailingSeparator()
	case sectionFraction:
		return f.FractionTrailingSeparator()
	default:
		return f.ExponentTrailingSeparator()
	}
}

func (f Format) allowsConsecutiveSeparator(s section) bool {
	switch s {
	case sectionInteger:
		return f.IntegerConsecutiveSeparator()
	case sectionFraction:
		return f.FractionConsecutiveSeparator()
	default:
		return f.ExponentConsecutiveSeparator()
	}
}

func (f Format) requiredDigits(s section) bool {
	switch s {
	case sectionInteger:
		return f.RequiredIntegerDigits()
	case sectionFraction:
		return f.RequiredFractionDigits()
	default:
		return f.RequiredExponentDigits()
	}
}

// isSeparatorByte reports whether b is this format's digit separator. Per
// spec §4.B tie-break rules, a byte can never be classified as both a digit
// and a separator -- Builder.Build rejects any Format where that would be
// ambiguous, so this check alone is sufficient at parse time.
func (f Format) isSeparatorByte(b byte) bool {
	sep := f.Separator()
	return sep != 0 && b == sep
}

// Builder constructs a Format, validating the invariants of spec §3 only
// once, at Build time -- never in the hot parse loop.
type Builder struct {
	flags     uint64
	separator byte
}

// NewBuilder returns a Builder with every flag clear and no separator.
func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) set(flag uint64, v bool) *Builder {
	if v {
		b.flags |= flag
	} else {
		b.flags &^= flag
	}
	return b
}

func (b *Builder) DigitSeparator(sep byte) *Builder { b.separator = sep; return b }

func (b *Builder) RequiredIntegerDigits(v bool) *Builder     { return b.set(flagRequiredIntegerDigits, v) }
func (b *Builder) RequiredFractionDigits(v bool) *Builder    { return b.set(flagRequiredFractionDigits, v) }
func (b *Builder) RequiredExponentDigits(v bool) *Builder    { return b.set(flagRequiredExponentDigits, v) }
func (b *Builder) RequiredDigits(v bool) *Builder            { return b.set(flagRequiredDigits, v) }
func (b *Builder) NoPositiveMantissaSign(v bool) *Builder    { return b.set(flagNoPositiveMantissaSign, v) }
func (b *Builder) RequiredMantissaSign(v bool) *Builder      { return b.set(flagRequiredMantissaSign, v) }
func (b *Builder) NoExponentNotation(v bool) *Builder        { return b.set(flagNoExponentNotation, v) }
func (b *Builder) NoPositiveExponentSign(v bool) *Builder    { return b.set(flagNoPositiveExponentSign, v) }
func (b *Builder) RequiredExponentSign(v bool) *Builder      { return b.set(flagRequiredExponentSign, v) }
func (b *Builder) NoExponentWithoutFraction(v bool) *Builder { return b.set(flagNoExponentWithoutFraction, v) }
func (b *Builder) NoSpecial(v bool) *Builder                 { return b.set(flagNoSpecial, v) }
func (b *Builder) CaseSensitiveSpecial(v bool) *Builder      { return b.set(flagCaseSensitiveSpecial, v) }
func (b *Builder) NoIntegerLeadingZeros(v bool) *Builder     { return b.set(flagNoIntegerLeadingZeros, v) }
func (b *Builder) NoFloatLeadingZeros(v bool) *Builder       { return b.set(flagNoFloatLeadingZeros, v) }
func (b *Builder) RequiredExponentNotation(v bool) *Builder  { return b.set(flagRequiredExponentNotation, v) }
func (b *Builder) SpecialDigitSeparator(v bool) *Builder     { return b.set(flagSpecialDigitSeparator, v) }

func (b *Builder) IntegerInternalSeparator(v bool) *Builder    { return b.set(flagIntegerInternalSeparator, v) }
func (b *Builder) IntegerLeadingSeparator(v bool) *Builder     { return b.set(flagIntegerLeadingSeparator, v) }
func (b *Builder) IntegerTrailingSeparator(v bool) *Builder    { return b.set(flagIntegerTrailingSeparator, v) }
func (b *Builder) IntegerConsecutiveSeparator(v bool) *Builder { return b.set(flagIntegerConsecutiveSeparator, v) }

func (b *Builder) FractionInternalSeparator(v bool) *Builder    { return b.set(flagFractionInternalSeparator, v) }
func (b *Builder) FractionLeadingSeparator(v bool) *Builder     { return b.set(flagFractionLeadingSeparator, v) }
func (b *Builder) FractionTrailingSeparator(v bool) *Builder    { return b.set(flagFractionTrailingSeparator, v) }
func (b *Builder) FractionConsecutiveSeparator(v bool) *Builder { return b.set(flagFractionConsecutiveSeparator, v) }

func (b *Builder) ExponentInternalSeparator(v bool) *Builder    { return b.set(flagExponentInternalSeparator, v) }
func (b *Builder) ExponentLeadingSeparator(v bool) *Builder     { return b.set(flagExponentLeadingSeparator, v) }
func (b *Builder) ExponentTrailingSeparator(v bool) *Builder    { return b.set(flagExponentTrailingSeparator, v) }
func (b *Builder) ExponentConsecutiveSeparator(v bool) *Builder { return b.set(flagExponentConsecutiveSeparator, v) }

// InternalDigitSeparator sets the internal-separator flag for all three
// sections at once; TrailingDigitSeparator and ConsecutiveDigitSeparator
// do the same for their respective position.
func (b *Builder) InternalDigitSeparator(v bool) *Builder    { return b.set(flagInternalDigitSeparator, v) }
func (b *Builder) LeadingDigitSeparator(v bool) *Builder     { return b.set(flagLeadingDigitSeparator, v) }
func (b *Builder) TrailingDigitSeparator(v bool) *Builder    { return b.set(flagTrailingDigitSeparator, v) }
func (b *Builder) ConsecutiveDigitSeparator(v bool) *Builder { return b.set(flagConsecutiveSeparator, v) }

// isReservedSeparatorByte reports whether b is one of the bytes spec §3 forbids a
// separator from colliding with: +, -, ., 0-9, a-z, A-Z, or exp.
func isReservedSeparatorByte(b, exponentMarker byte) bool {
	switch {
	case b == plus || b == minus || b == period:
		return true
	case b >= zero && b <= nine:
		return true
	case b >= aChr && b <= zChr:
		return true
	case b >= bigAChr && b <= bigZChr:
		return true
	case b == exponentMarker:
		return true
	}
	return false
}

// Build validates the accumulated flags against spec §3's invariants,
// ported from the original builder.rs validation order (separator
// collision, then positional-separator-vs-no-separator consistency, then
// the no_exponent_notation/exponent-flags interaction), and returns the
// immutable Format. ok is false if any invariant is violated.
func (b *Builder) Build() (f Format, ok bool) {
	return b.build(eChr)
}

// BuildWithExponent is Build, but checks separator collision against a
// caller-supplied exponent marker instead of the default 'e' -- used by
// ParseFloatOptions/WriteFloatOptions builders for radix-16 formats where
// 'p' is the idiomatic exponent character.
func (b *Builder) BuildWithExponent(exponentMarker byte) (f Format, ok bool) {
	return b.build(exponentMarker)
}

func (b *Builder) build(exponentMarker byte) (Format, bool) {
	hasAnySeparatorPositionFlag := b.flags&(flagInternalDigitSeparator|flagLeadingDigitSeparator|
		flagTrailingDigitSeparator|flagConsecutiveSeparator|flagSpecialDigitSeparator) != 0

	if b.separator != 0 {
		if b.separator > 127 || isReservedSeparatorByte(b.separator, exponentMarker) {
			return 0, false
		}
		if !hasAnySeparatorPositionFlag {
			// A separator byte that no positional flag lets appear anywhere
			// is just as invalid as a flag with no separator byte.
			return 0, false
		}
	} else if hasAnySeparatorPositionFlag {
		// A positional separator flag with no separator byte is meaningless
		// and, per spec §3, invalid.
		return 0, false
	}

	if b.flags&flagNoExponentNotation != 0 {
		const exponentFlags = flagNoPositiveExponentSign | flagRequiredExponentSign |
			flagNoExponentWithoutFraction | flagRequiredExponentDigits | flagRequiredExponentNotation |
			flagExponentInternalSeparator | flagExponentLeadingSeparator |
			flagExponentTrailingSeparator | flagExponentConsecutiveSeparator
		if b.flags&exponentFlags != 0 {
			return 0, false
		}
	}

	bits := b.flags | uint64(b.separator)<<separatorShift
	return Format(bits), true
}

// Permissive returns a Format that accepts arbitrary input: no required
// digits, no sign restrictions, no separator, specials enabled.
func Permissive() Format { return 0 }

// Standard returns the default Go-string-like grammar: required integer and
// fraction digits, no positive mantissa/exponent sign, case-sensitive
// special values disabled (ASCII case-folded NaN/Inf matching), no
// separators. Equivalent to the original crate's rust_string preset.
func Standard() Format {
	f, _ := NewBuilder().
		RequiredIntegerDigits(true).
		RequiredFractionDigits(true).
		RequiredExponentDigits(true).
		NoPositiveMantissaSign(true).
		NoPositiveExponentSign(true).
		Build()
	return f
}

// Ignore returns a Format that accepts sep anywhere among digits (leading,
// trailing, internal, consecutive) and is otherwise fully permissive. It
// also sets SpecialDigitSeparator, but the special-value matcher
// (float_special.go) does not consult that flag, so a separator inside a
// NaN/Inf spelling is not accepted.
func Ignore(sep byte) Format {
	f, _ := NewBuilder().
		DigitSeparator(sep).
		InternalDigitSeparator(true).
		LeadingDigitSeparator(true).
		TrailingDigitSeparator(true).
		ConsecutiveDigitSeparator(true).
		SpecialDigitSeparator(true).
		Build()
	return f
}

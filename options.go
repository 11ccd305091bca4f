package numlex

import "errors"

// RoundingMode selects how the float slow path breaks a halfway case
// between two representable floats. It is independent of the Lossy flag
// on ParseFloatOptions, per lexical-capi's option.rs: a rounding mode and
// a lossy flag are orthogonal fields, not a single combined enum.
type RoundingMode uint8

const (
	// NearestTiesEven rounds to the nearer representable value, breaking
	// exact ties toward the value with an even trailing mantissa bit.
	// This is the only mode the moderate (Lemire-equivalent) path can
	// resolve on its own; every other mode forces the slow path.
	NearestTiesEven RoundingMode = iota
	NearestTiesAwayZero
	TowardPositiveInfinity
	TowardNegativeInfinity
	TowardZero
)

// ErrLossyRoundingConflict is returned by ParseFloatOptionsBuilder.Build
// when Lossy is true and Rounding is anything other than the default
// NearestTiesEven. The combination is underspecified upstream (see
// spec's Open Question on this exact conflict); treating it as a
// builder-time error rather than silently picking a behavior is the
// resolution recorded for this codebase.
var ErrLossyRoundingConflict = errors.New("numlex: lossy parsing requires NearestTiesEven rounding")

// ErrInvalidRadix is returned when a radix outside [2,36] is supplied to
// an options builder.
var ErrInvalidRadix = errors.New("numlex: radix must be in [2,36]")

// ErrEmptySpelling is returned when a required NaN/Inf spelling is empty
// or collides with a digit or the exponent marker of the configured radix.
var ErrEmptySpelling = errors.New("numlex: special-value spelling is empty or collides with a digit/exponent marker")

const defaultRadix = 10

// ParseIntegerOptions bundles the knobs the integer parser consults:
// radix and format. Constructed through ParseIntegerOptionsBuilder or via
// DefaultParseIntegerOptions for the common case.
type ParseIntegerOptions struct {
	radix  int
	format Format
}

// Radix returns the configured radix.
func (o ParseIntegerOptions) Radix() int { return o.radix }

// FormatValue returns the configured Format.
func (o ParseIntegerOptions) FormatValue() Format { return o.format }

// DefaultParseIntegerOptions returns radix 10 with the permissive format.
func DefaultParseIntegerOptions() ParseIntegerOptions {
	return ParseIntegerOptions{radix: defaultRadix, format: Permissive()}
}

// ParseIntegerOptionsBuilder builds a ParseIntegerOptions value.
type ParseIntegerOptionsBuilder struct {
	radix  int
	format Format
}

// NewParseIntegerOptionsBuilder starts a builder pre-loaded with the
// defaults (radix 10, permissive format).
func NewParseIntegerOptionsBuilder() *ParseIntegerOptionsBuilder {
	return &ParseIntegerOptionsBuilder{radix: defaultRadix, format: Permissive()}
}

func (b *ParseIntegerOptionsBuilder) Radix(r int) *ParseIntegerOptionsBuilder {
	b.radix = r
	return b
}

func (b *ParseIntegerOptionsBuilder) FormatValue(f Format) *ParseIntegerOptionsBuilder {
	b.format = f
	return b
}

// Build validates the radix and returns the finished options.
func (b *ParseIntegerOptionsBuilder) Build() (ParseIntegerOptions, error) {
	if b.radix < 2 || b.radix > 36 {
		return ParseIntegerOptions{}, ErrInvalidRadix
	}
	return ParseIntegerOptions{radix: b.radix, format: b.format}, nil
}

// WriteIntegerOptions bundles the integer writer's only knob: radix.
type WriteIntegerOptions struct {
	radix int
}

func (o WriteIntegerOptions) Radix() int { return o.radix }

// DefaultWriteIntegerOptions returns radix 10.
func DefaultWriteIntegerOptions() WriteIntegerOptions {
	return WriteIntegerOptions{radix: defaultRadix}
}

// NewWriteIntegerOptions validates and returns options for the given radix.
func NewWriteIntegerOptions(radix int) (WriteIntegerOptions, error) {
	if radix < 2 || radix > 36 {
		return WriteIntegerOptions{}, ErrInvalidRadix
	}
	return WriteIntegerOptions{radix: radix}, nil
}

// specialSpellings holds the three configurable NaN/Inf spellings shared
// by ParseFloatOptions and WriteFloatOptions.
type specialSpellings struct {
	nan      string
	infShort string
	infLong  string
}

var defaultSpellings = specialSpellings{nan: "NaN", infShort: "inf", infLong: "infinity"}

// ParseFloatOptions bundles the float parser's knobs: radix, format,
// exponent marker byte, rounding mode, lossy flag, and special-value
// spellings.
type ParseFloatOptions struct {
	radix        int
	format       Format
	exponentChar byte
	rounding     RoundingMode
	lossy        bool
	special      specialSpellings
}

func (o ParseFloatOptions) Radix() int             { return o.radix }
func (o ParseFloatOptions) FormatValue() Format     { return o.format }
func (o ParseFloatOptions) ExponentChar() byte      { return o.exponentChar }
func (o ParseFloatOptions) Rounding() RoundingMode  { return o.rounding }
func (o ParseFloatOptions) Lossy() bool             { return o.lossy }
func (o ParseFloatOptions) NanString() string       { return o.special.nan }
func (o ParseFloatOptions) InfShortString() string  { return o.special.infShort }
func (o ParseFloatOptions) InfLongString() string   { return o.special.infLong }

// DefaultParseFloatOptions returns decimal radix, permissive format,
// exponent marker 'e', NearestTiesEven, non-lossy, default spellings.
func DefaultParseFloatOptions() ParseFloatOptions {
	return ParseFloatOptions{
		radix:        defaultRadix,
		format:       Permissive(),
		exponentChar: eChr,
		rounding:     NearestTiesEven,
		special:      defaultSpellings,
	}
}

// ParseFloatOptionsBuilder builds a ParseFloatOptions value.
type ParseFloatOptionsBuilder struct {
	opts ParseFloatOptions
}

func NewParseFloatOptionsBuilder() *ParseFloatOptionsBuilder {
	return &ParseFloatOptionsBuilder{opts: DefaultParseFloatOptions()}
}

func (b *ParseFloatOptionsBuilder) Radix(r int) *ParseFloatOptionsBuilder {
	b.opts.radix = r
	return b
}

func (b *ParseFloatOptionsBuilder) FormatValue(f Format) *ParseFloatOptionsBuilder {
	b.opts.format = f
	return b
}

func (b *ParseFloatOptionsBuilder) ExponentChar(c byte) *ParseFloatOptionsBuilder {
	b.opts.exponentChar = c
	return b
}

func (b *ParseFloatOptionsBuilder) Rounding(m RoundingMode) *ParseFloatOptionsBuilder {
	b.opts.rounding = m
	return b
}

func (b *ParseFloatOptionsBuilder) Lossy(v bool) *ParseFloatOptionsBuilder {
	b.opts.lossy = v
	return b
}

func (b *ParseFloatOptionsBuilder) NanString(s string) *ParseFloatOptionsBuilder {
	b.opts.special.nan = s
	return b
}

func (b *ParseFloatOptionsBuilder) InfShortString(s string) *ParseFloatOptionsBuilder {
	b.opts.special.infShort = s
	return b
}

func (b *ParseFloatOptionsBuilder) InfLongString(s string) *ParseFloatOptionsBuilder {
	b.opts.special.infLong = s
	return b
}

// Build validates the accumulated fields:
//   - radix in [2,36]
//   - lossy=true requires rounding == NearestTiesEven (Open Question
//     resolution: this combination is a builder-time error)
//   - the three special-value spellings must be non-empty and must not
//     contain a digit valid in radix or the configured exponent marker
func (b *ParseFloatOptionsBuilder) Build() (ParseFloatOptions, error) {
	o := b.opts
	if o.radix < 2 || o.radix > 36 {
		return ParseFloatOptions{}, ErrInvalidRadix
	}
	if o.lossy && o.rounding != NearestTiesEven {
		return ParseFloatOptions{}, ErrLossyRoundingConflict
	}
	for _, s := range []string{o.special.nan, o.special.infShort, o.special.infLong} {
		if !validSpelling(s, o.radix, o.exponentChar) {
			return ParseFloatOptions{}, ErrEmptySpelling
		}
	}
	return o, nil
}

func validSpelling(s string, radix int, exponentChar byte) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		b := s[i]
		if _, isDigit := digitOf(lowerASCII(b), radix); isDigit {
			return false
		}
		if lowerASCII(b) == lowerASCII(exponentChar) {
			return false
		}
	}
	return true
}

func lowerASCII(b byte) byte {
	if b >= bigAChr && b <= bigZChr {
		return b - bigAChr + aChr
	}
	return b
}

// WriteFloatOptions bundles the float writer's knobs: radix, exponent
// marker, trim-trailing-zero-fraction flag, and NaN/Inf spellings.
type WriteFloatOptions struct {
	radix        int
	exponentChar byte
	trimFloats   bool
	special      specialSpellings
}

func (o WriteFloatOptions) Radix() int            { return o.radix }
func (o WriteFloatOptions) ExponentChar() byte    { return o.exponentChar }
func (o WriteFloatOptions) TrimFloats() bool      { return o.trimFloats }
func (o WriteFloatOptions) NanString() string     { return o.special.nan }
func (o WriteFloatOptions) InfString() string     { return o.special.infLong }

// DefaultWriteFloatOptions returns decimal radix, exponent marker 'e', no
// trimming, default spellings ("NaN" / "infinity" used for +/-Inf per
// spec.md's concrete scenario table which writes "NaN" untrimmed).
func DefaultWriteFloatOptions() WriteFloatOptions {
	return WriteFloatOptions{radix: defaultRadix, exponentChar: eChr, special: defaultSpellings}
}

// WriteFloatOptionsBuilder builds a WriteFloatOptions value.
type WriteFloatOptionsBuilder struct {
	opts WriteFloatOptions
}

func NewWriteFloatOptionsBuilder() *WriteFloatOptionsBuilder {
	return &WriteFloatOptionsBuilder{opts: DefaultWriteFloatOptions()}
}

func (b *WriteFloatOptionsBuilder) Radix(r int) *WriteFloatOptionsBuilder {
	b.opts.radix = r
	return b
}

func (b *WriteFloatOptionsBuilder) ExponentChar(c byte) *WriteFloatOptionsBuilder {
	b.opts.exponentChar = c
	return b
}

func (b *WriteFloatOptionsBuilder) TrimFloats(v bool) *WriteFloatOptionsBuilder {
	b.opts.trimFloats = v
	return b
}

func (b *WriteFloatOptionsBuilder) NanString(s string) *WriteFloatOptionsBuilder {
	b.opts.special.nan = s
	return b
}

func (b *WriteFloatOptionsBuilder) InfString(s string) *WriteFloatOptionsBuilder {
	b.opts.special.infLong = s
	return b
}

func (b *WriteFloatOptionsBuilder) Build() (WriteFloatOptions, error) {
	o := b.opts
	if o.radix < 2 || o.radix > 36 {
		return WriteFloatOptions{}, ErrInvalidRadix
	}
	if len(o.special.nan) == 0 || len(o.special.infLong) == 0 {
		return WriteFloatOptions{}, ErrEmptySpelling
	}
	return o, nil
}

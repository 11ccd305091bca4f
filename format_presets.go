package numlex

// This file ports the named format table of the original crate's
// lexical-capi/src/format.rs: one Format per language or interchange
// format, most of them differing from Standard() in some documented way
// (GoString is Standard() itself). Each preset is built once, at package init, through
// the same Builder.Build validation path every caller-constructed
// Format goes through -- there is no privileged construction route.

var (
	RustLiteral     Format
	RustString      Format
	RustStringStrict Format

	PythonLiteral Format
	PythonString  Format

	CLiteral   Format
	C99Literal Format
	CppLiteral Format

	JavaLiteral       Format
	JavaScriptLiteral Format
	JavaScriptString  Format

	GoLiteral   Format
	GoString    Format
	SwiftLiteral Format
	KotlinLiteral Format
	RubyLiteral  Format
	PHPLiteral   Format
	PerlLiteral  Format
	HaskellLiteral Format

	FSharpLiteral Format
	FSharpString  Format

	JSON       Format
	TOML       Format
	YAML       Format
	XML        Format
	SQLite     Format
	PostgreSQL Format
	MySQL      Format
	MongoDB    Format
)

func init() {
	build := func(cfg func(*Builder) *Builder) Format {
		f, ok := cfg(NewBuilder()).Build()
		if !ok {
			panic("numlex: invalid built-in format preset")
		}
		return f
	}

	RustLiteral = build(func(b *Builder) *Builder {
		return b.DigitSeparator('_').
			IntegerInternalSeparator(true).
			FractionInternalSeparator(true).
			ExponentInternalSeparator(true).
			RequiredDigits(true).
			NoPositiveMantissaSign(true).
			NoSpecial(true).
			TrailingDigitSeparator(true).
			ConsecutiveDigitSeparator(true)
	})
	RustString = build(func(b *Builder) *Builder {
		return b.RequiredIntegerDigits(true).RequiredExponentDigits(true)
	})
	RustStringStrict = build(func(b *Builder) *Builder {
		return b.RequiredDigits(true).NoPositiveMantissaSign(true).NoPositiveExponentSign(true)
	})

	PythonLiteral = build(func(b *Builder) *Builder {
		return b.DigitSeparator('_').
			IntegerInternalSeparator(true).
			FractionInternalSeparator(true).
			ExponentInternalSeparator(true).
			RequiredIntegerDigits(true).
			RequiredExponentDigits(true)
	})
	PythonString = build(func(b *Builder) *Builder {
		return b.RequiredIntegerDigits(true).RequiredExponentDigits(true)
	})

	CLiteral = build(func(b *Builder) *Builder {
		return b.RequiredIntegerDigits(true).RequiredExponentDigits(true)
	})
	C99Literal = build(func(b *Builder) *Builder {
		return b.RequiredExponentDigits(true)
	})
	CppLiteral = build(func(b *Builder) *Builder {
		return b.DigitSeparator('\'').
			IntegerInternalSeparator(true).
			FractionInternalSeparator(true).
			ExponentInternalSeparator(true).
			RequiredIntegerDigits(true).
			RequiredExponentDigits(true)
	})

	JavaLiteral = build(func(b *Builder) *Builder {
		return b.DigitSeparator('_').
			IntegerInternalSeparator(true).
			FractionInternalSeparator(true).
			ExponentInternalSeparator(true).
			RequiredIntegerDigits(true).
			RequiredExponentDigits(true)
	})
	JavaScriptLiteral = build(func(b *Builder) *Builder {
		return b.DigitSeparator('_').
			IntegerInternalSeparator(true).
			FractionInternalSeparator(true).
			RequiredExponentDigits(true)
	})
	JavaScriptString = build(func(b *Builder) *Builder {
		return b.RequiredExponentDigits(true)
	})

	GoLiteral = build(func(b *Builder) *Builder {
		return b.DigitSeparator('_').
			IntegerInternalSeparator(true).
			FractionInternalSeparator(true).
			ExponentInternalSeparator(true).
			RequiredExponentDigits(true)
	})
	GoString = Standard()

	SwiftLiteral = build(func(b *Builder) *Builder {
		return b.DigitSeparator('_').
			IntegerInternalSeparator(true).
			FractionInternalSeparator(true).
			ExponentInternalSeparator(true).
			RequiredIntegerDigits(true).
			RequiredFractionDigits(true).
			RequiredExponentDigits(true)
	})
	KotlinLiteral = build(func(b *Builder) *Builder {
		return b.DigitSeparator('_').
			IntegerInternalSeparator(true).
			FractionInternalSeparator(true).
			RequiredIntegerDigits(true).
			RequiredExponentDigits(true)
	})
	RubyLiteral = build(func(b *Builder) *Builder {
		return b.DigitSeparator('_').
			IntegerInternalSeparator(true).
			FractionInternalSeparator(true).
			RequiredIntegerDigits(true).
			RequiredFractionDigits(true).
			RequiredExponentDigits(true)
	})
	PHPLiteral = build(func(b *Builder) *Builder {
		return b.RequiredExponentDigits(true)
	})
	PerlLiteral = build(func(b *Builder) *Builder {
		return b.DigitSeparator('_').
			IntegerInternalSeparator(true).
			FractionInternalSeparator(true).
			ExponentInternalSeparator(true).
			RequiredExponentDigits(true)
	})
	HaskellLiteral = build(func(b *Builder) *Builder {
		return b.RequiredIntegerDigits(true).
			RequiredFractionDigits(true).
			RequiredExponentDigits(true).
			NoExponentWithoutFraction(true)
	})

	FSharpLiteral = build(func(b *Builder) *Builder {
		return b.DigitSeparator('_').
			IntegerInternalSeparator(true).
			FractionInternalSeparator(true).
			ExponentInternalSeparator(true).
			RequiredIntegerDigits(true).
			RequiredExponentDigits(true)
	})
	FSharpString = build(func(b *Builder) *Builder {
		return b.DigitSeparator('_').
			IntegerInternalSeparator(true).
			FractionInternalSeparator(true).
			ExponentInternalSeparator(true)
	})

	JSON = build(func(b *Builder) *Builder {
		return b.RequiredDigits(true).
			NoPositiveMantissaSign(true).
			NoPositiveExponentSign(false).
			NoSpecial(true).
			NoIntegerLeadingZeros(true).
			NoFloatLeadingZeros(true)
	})
	TOML = build(func(b *Builder) *Builder {
		return b.DigitSeparator('_').
			IntegerInternalSeparator(true).
			FractionInternalSeparator(true).
			ExponentInternalSeparator(true).
			RequiredDigits(true).
			NoIntegerLeadingZeros(true).
			NoFloatLeadingZeros(true)
	})
	YAML = JSON
	XML = build(func(b *Builder) *Builder {
		return b.RequiredDigits(true).NoSpecial(true)
	})

	SQLite = build(func(b *Builder) *Builder {
		return b.RequiredExponentDigits(true)
	})
	PostgreSQL = build(func(b *Builder) *Builder {
		return b.RequiredIntegerDigits(true).RequiredExponentDigits(true)
	})
	MySQL = build(func(b *Builder) *Builder {
		return b.RequiredIntegerDigits(true).RequiredExponentDigits(true)
	})
	MongoDB = JSON
}

package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/justintime4tea/numlex"
)

// customPresetsConfig is the shape of an optional YAML config file
// (--config) layering user-defined format presets on top of the
// ~30 built-in ones (numlex.LookupFormat), per SPEC_FULL.md §8
// Configuration / §9 cobra+viper+yaml.v3 wiring.
type customPresetsConfig struct {
	Presets map[string]presetSpec `mapstructure:"presets"`
}

// presetSpec mirrors the Builder surface in numlex/format.go closely
// enough to round-trip through YAML: booleans for a subset of its flags,
// plus an optional single-byte separator.
type presetSpec struct {
	Separator                string `mapstructure:"separator"`
	RequiredIntegerDigits    bool   `mapstructure:"required_integer_digits"`
	RequiredFractionDigits   bool   `mapstructure:"required_fraction_digits"`
	RequiredExponentDigits   bool   `mapstructure:"required_exponent_digits"`
	NoPositiveMantissaSign   bool   `mapstructure:"no_positive_mantissa_sign"`
	NoPositiveExponentSign   bool   `mapstructure:"no_positive_exponent_sign"`
	NoExponentNotation       bool   `mapstructure:"no_exponent_notation"`
	NoIntegerLeadingZeros    bool   `mapstructure:"no_integer_leading_zeros"`
	IntegerInternalSeparator bool   `mapstructure:"integer_internal_separator"`
	FractionInternalSeparator bool  `mapstructure:"fraction_internal_separator"`
}

// loadCustomPresets reads path (if non-empty) via viper, registering
// every entry into numlex's process-wide format registry.
func loadCustomPresets(path string) error {
	if path == "" {
		return nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("numlex: reading config %s: %w", path, err)
	}

	var cfg customPresetsConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("numlex: parsing config %s: %w", path, err)
	}

	for name, spec := range cfg.Presets {
		b := numlex.NewBuilder().
			RequiredIntegerDigits(spec.RequiredIntegerDigits).
			RequiredFractionDigits(spec.RequiredFractionDigits).
			RequiredExponentDigits(spec.RequiredExponentDigits).
			NoPositiveMantissaSign(spec.NoPositiveMantissaSign).
			NoPositiveExponentSign(spec.NoPositiveExponentSign).
			NoExponentNotation(spec.NoExponentNotation).
			NoIntegerLeadingZeros(spec.NoIntegerLeadingZeros).
			IntegerInternalSeparator(spec.IntegerInternalSeparator).
			FractionInternalSeparator(spec.FractionInternalSeparator)
		if spec.Separator != "" {
			b = b.DigitSeparator(spec.Separator[0])
		}
		f, ok := b.Build()
		if !ok {
			return fmt.Errorf("numlex: preset %q has an invalid flag combination", name)
		}
		numlex.RegisterFormat(name, f)
	}
	return nil
}

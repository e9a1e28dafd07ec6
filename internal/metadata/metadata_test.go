package metadata_test

import (
	"errors"
	"testing"

	"sheetnav/internal/metadata"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		prop    metadata.Property
		in, out string
	}{
		{metadata.Locale, "en-au", "en-AU"},
		{metadata.Locale, "de", "de"},
		{metadata.DecimalSeparator, ",", ","},
		{metadata.CurrencySymbol, "AUD$", "AUD$"},
		{metadata.Precision, "007", "7"},
		{metadata.TwoDigitYear, "50", "50"},
		{metadata.RoundingMode, "HALF-UP", "half-up"},
		{metadata.ExpressionNumberKind, "double", "double"},
	}
	for _, tt := range tests {
		v, err := tt.prop.ParseValue(tt.in)
		if err != nil {
			t.Fatalf("%s.ParseValue(%q): %v", tt.prop, tt.in, err)
		}
		if v.String() != tt.out {
			t.Errorf("%s.ParseValue(%q) = %q, want %q", tt.prop, tt.in, v, tt.out)
		}
	}
}

func TestParseValueRejects(t *testing.T) {
	tests := []struct {
		prop metadata.Property
		in   string
	}{
		{metadata.Locale, "not a locale"},
		{metadata.Locale, "und"},
		{metadata.DecimalSeparator, ",,"},
		{metadata.DecimalSeparator, "a"},
		{metadata.GroupSeparator, ""},
		{metadata.TwoDigitYear, "100"},
		{metadata.Precision, "-1"},
		{metadata.CurrencySymbol, "1"},
		{metadata.RoundingMode, "sideways"},
	}
	for _, tt := range tests {
		if _, err := tt.prop.ParseValue(tt.in); !errors.Is(err, metadata.ErrBadValue) {
			t.Errorf("%s.ParseValue(%q) err = %v", tt.prop, tt.in, err)
		}
	}
}

func TestLookup(t *testing.T) {
	props := metadata.Properties()
	if len(props) != 14 {
		t.Fatalf("got %d properties", len(props))
	}
	for _, p := range props {
		if back, ok := metadata.Lookup(p.String()); !ok || back != p {
			t.Errorf("Lookup(%q) = %v, %v", p, back, ok)
		}
	}
	for _, name := range []string{"cell", "label", "rename", "plugin"} {
		if _, ok := metadata.Lookup(name); ok {
			t.Errorf("%q must not be a metadata property", name)
		}
	}
}

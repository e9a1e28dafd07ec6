package metadata

import (
	"errors"
	"fmt"
	"sort"
)

// ErrBadValue is wrapped by every value parser in this package.
var ErrBadValue = errors.New("bad metadata value")

// Property is a spreadsheet metadata property name.
type Property uint8

const (
	CellCharacterWidth Property = iota + 1
	CurrencySymbol
	DecimalSeparator
	DefaultYear
	ExponentSymbol
	ExpressionNumberKind
	GroupSeparator
	Locale
	NegativeSign
	PercentageSymbol
	PositiveSign
	Precision
	RoundingMode
	TwoDigitYear
)

type propertyInfo struct {
	name  string
	parse func(string) (string, error)
}

var properties = map[Property]propertyInfo{
	CellCharacterWidth:   {"cell-character-width", intBetween(1, 1000)},
	CurrencySymbol:       {"currency-symbol", symbol(8)},
	DecimalSeparator:     {"decimal-separator", separator},
	DefaultYear:          {"default-year", intBetween(1, 9999)},
	ExponentSymbol:       {"exponent-symbol", symbol(3)},
	ExpressionNumberKind: {"expression-number-kind", oneOf("big-decimal", "double")},
	GroupSeparator:       {"group-separator", separator},
	Locale:               {"locale", parseLocale},
	NegativeSign:         {"negative-sign", separator},
	PercentageSymbol:     {"percentage-symbol", separator},
	PositiveSign:         {"positive-sign", separator},
	Precision:            {"precision", intBetween(0, 128)},
	RoundingMode:         {"rounding-mode", oneOf("ceiling", "down", "floor", "half-down", "half-even", "half-up", "unnecessary", "up")},
	TwoDigitYear:         {"two-digit-year", intBetween(0, 99)},
}

var byName = func() map[string]Property {
	m := make(map[string]Property, len(properties))
	for p, info := range properties {
		m[info.name] = p
	}
	return m
}()

// Properties returns every property in name order.
func Properties() []Property {
	out := make([]Property, 0, len(properties))
	for p := range properties {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Lookup finds a property by its path name.
func Lookup(name string) (Property, bool) {
	p, ok := byName[name]
	return p, ok
}

func (p Property) String() string {
	if info, ok := properties[p]; ok {
		return info.name
	}
	return fmt.Sprintf("Property(%d)", uint8(p))
}

// Value is a normalised value of one property.
type Value struct {
	property Property
	text     string
}

// ParseValue validates text with the property's parser.
func (p Property) ParseValue(text string) (Value, error) {
	info, ok := properties[p]
	if !ok {
		return Value{}, fmt.Errorf("%w: unknown property", ErrBadValue)
	}
	v, err := info.parse(text)
	if err != nil {
		return Value{}, fmt.Errorf("%s: %w", info.name, err)
	}
	return Value{property: p, text: v}, nil
}

func (v Value) Property() Property { return v.property }
func (v Value) String() string     { return v.text }

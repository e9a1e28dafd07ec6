package style

import (
	"errors"
	"fmt"
	"slices"
)

// ErrBadValue is wrapped by every value parser in this package.
var ErrBadValue = errors.New("bad style value")

// Property is a style property name such as background-color.
type Property uint8

const (
	BackgroundColor Property = iota + 1
	Color
	FontSize
	FontStyle
	FontWeight
	Height
	TextAlign
	TextDecorationLine
	VerticalAlign
	Width
)

type propertyInfo struct {
	name  string
	parse func(string) (string, error)
}

var properties = map[Property]propertyInfo{
	BackgroundColor:    {"background-color", parseColor},
	Color:              {"color", parseColor},
	FontSize:           {"font-size", parseLength},
	FontStyle:          {"font-style", oneOf("italic", "normal")},
	FontWeight:         {"font-weight", oneOf("bold", "normal")},
	Height:             {"height", parseLength},
	TextAlign:          {"text-align", oneOf("center", "justify", "left", "right")},
	TextDecorationLine: {"text-decoration-line", oneOf("line-through", "none", "overline", "underline")},
	VerticalAlign:      {"vertical-align", oneOf("bottom", "middle", "top")},
	Width:              {"width", parseLength},
}

// Properties returns every property, ordered by name.
func Properties() []Property {
	out := make([]Property, 0, len(properties))
	for p := range properties {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Property) int {
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		}
		return 0
	})
	return out
}

// ParseProperty looks up a property by its path name.
func ParseProperty(name string) (Property, error) {
	for p, info := range properties {
		if info.name == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown style property %q", ErrBadValue, name)
}

func (p Property) String() string {
	if info, ok := properties[p]; ok {
		return info.name
	}
	return fmt.Sprintf("Property(%d)", uint8(p))
}

// Value is a normalised value for one property.
type Value struct {
	property Property
	text     string
}

// ParseValue validates text with the property's own parser.
func (p Property) ParseValue(text string) (Value, error) {
	info, ok := properties[p]
	if !ok {
		return Value{}, fmt.Errorf("%w: unknown style property", ErrBadValue)
	}
	v, err := info.parse(text)
	if err != nil {
		return Value{}, fmt.Errorf("%s: %w", info.name, err)
	}
	return Value{property: p, text: v}, nil
}

func (v Value) Property() Property { return v.property }
func (v Value) String() string     { return v.text }

package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

var namedColors = map[string]string{
	"black":   "#000000",
	"blue":    "#0000ff",
	"cyan":    "#00ffff",
	"gray":    "#808080",
	"green":   "#008000",
	"lime":    "#00ff00",
	"magenta": "#ff00ff",
	"maroon":  "#800000",
	"navy":    "#000080",
	"olive":   "#808000",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"red":     "#ff0000",
	"silver":  "#c0c0c0",
	"teal":    "#008080",
	"white":   "#ffffff",
	"yellow":  "#ffff00",
}

// parseColor accepts #rgb, #rrggbb or a named colour and yields #rrggbb.
func parseColor(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[s]; ok {
		return hex, nil
	}
	if !strings.HasPrefix(s, "#") {
		return "", fmt.Errorf("%w: colour %q", ErrBadValue, s)
	}
	digits := s[1:]
	if _, err := strconv.ParseUint(digits, 16, 32); err != nil {
		return "", fmt.Errorf("%w: colour %q", ErrBadValue, s)
	}
	switch len(digits) {
	case 3:
		var b strings.Builder
		b.WriteByte('#')
		for i := 0; i < 3; i++ {
			b.WriteByte(digits[i])
			b.WriteByte(digits[i])
		}
		return b.String(), nil
	case 6:
		return s, nil
	}
	return "", fmt.Errorf("%w: colour %q", ErrBadValue, s)
}

// parseLength accepts a positive pixel length with or without the px suffix.
func parseLength(s string) (string, error) {
	s = strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "px")
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || n <= 0 || n > 10000 {
		return "", fmt.Errorf("%w: length %q", ErrBadValue, s)
	}
	return strconv.FormatFloat(n, 'f', -1, 64) + "px", nil
}

func oneOf(values ...string) func(string) (string, error) {
	return func(s string) (string, error) {
		s = strings.ToLower(strings.TrimSpace(s))
		for _, v := range values {
			if v == s {
				return s, nil
			}
		}
		return "", fmt.Errorf("%w: %q is not one of %s", ErrBadValue, s, strings.Join(values, ", "))
	}
}

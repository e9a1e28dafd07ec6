package metadata

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
)

func intBetween(lo, hi int) func(string) (string, error) {
	return func(s string) (string, error) {
		n, err := strconv.Atoi(s)
		if err != nil || n < lo || n > hi {
			return "", fmt.Errorf("%w: %q is not a number between %d and %d", ErrBadValue, s, lo, hi)
		}
		return strconv.Itoa(n), nil
	}
}

func oneOf(values ...string) func(string) (string, error) {
	return func(s string) (string, error) {
		s = strings.ToLower(s)
		for _, v := range values {
			if v == s {
				return v, nil
			}
		}
		return "", fmt.Errorf("%w: %q is not one of %s", ErrBadValue, s, strings.Join(values, ", "))
	}
}

// separator accepts one character that is neither a letter nor a digit.
func separator(s string) (string, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return "", fmt.Errorf("%w: separator %q must be a single character", ErrBadValue, s)
	}
	if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsControl(r) {
		return "", fmt.Errorf("%w: separator %q must not be a letter or digit", ErrBadValue, s)
	}
	return s, nil
}

func symbol(max int) func(string) (string, error) {
	return func(s string) (string, error) {
		n := utf8.RuneCountInString(s)
		if n == 0 || n > max || !utf8.ValidString(s) {
			return "", fmt.Errorf("%w: symbol %q must have 1 to %d characters", ErrBadValue, s, max)
		}
		for _, r := range s {
			if unicode.IsDigit(r) || unicode.IsSpace(r) || unicode.IsControl(r) {
				return "", fmt.Errorf("%w: symbol %q contains %q", ErrBadValue, s, r)
			}
		}
		return s, nil
	}
}

// parseLocale accepts a BCP 47 tag and yields its canonical form.
func parseLocale(s string) (string, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: locale %q: %v", ErrBadValue, s, err)
	}
	if tag == language.Und {
		return "", fmt.Errorf("%w: locale %q is undetermined", ErrBadValue, s)
	}
	return tag.String(), nil
}

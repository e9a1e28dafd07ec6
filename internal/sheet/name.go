package sheet

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// MaxNameLength bounds spreadsheet names, in runes.
const MaxNameLength = 255

// SpreadsheetName is a validated, NFC-normalised spreadsheet title.
type SpreadsheetName struct {
	value string
}

// ParseSpreadsheetName validates an already URL-decoded name.
func ParseSpreadsheetName(s string) (SpreadsheetName, error) {
	if s == "" {
		return SpreadsheetName{}, fmt.Errorf("%w: empty spreadsheet name", ErrBadReference)
	}
	if !utf8.ValidString(s) {
		return SpreadsheetName{}, fmt.Errorf("%w: spreadsheet name is not valid UTF-8", ErrBadReference)
	}
	s = norm.NFC.String(s)
	if n := utf8.RuneCountInString(s); n > MaxNameLength {
		return SpreadsheetName{}, fmt.Errorf("%w: spreadsheet name has %d characters, max %d", ErrBadReference, n, MaxNameLength)
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return SpreadsheetName{}, fmt.Errorf("%w: spreadsheet name contains control character %U", ErrBadReference, r)
		}
	}
	return SpreadsheetName{value: s}, nil
}

// MustSpreadsheetName is ParseSpreadsheetName for literals known to be valid.
func MustSpreadsheetName(s string) SpreadsheetName {
	n, err := ParseSpreadsheetName(s)
	if err != nil {
		panic(err)
	}
	return n
}

// IsZero reports whether the name was never set.
func (n SpreadsheetName) IsZero() bool { return n.value == "" }

func (n SpreadsheetName) String() string { return n.value }

package sheet

import (
	"fmt"
	"strconv"
)

// SpreadsheetID is the opaque numeric key of a stored spreadsheet.
type SpreadsheetID uint64

// ParseSpreadsheetID accepts unsigned decimal digits only.
func ParseSpreadsheetID(s string) (SpreadsheetID, error) {
	if s == "" || !allDigits(s) {
		return 0, fmt.Errorf("%w: spreadsheet id %q is not a number", ErrBadReference, s)
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: spreadsheet id %q: %v", ErrBadReference, s, err)
	}
	return SpreadsheetID(v), nil
}

func (id SpreadsheetID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

package sheet

import "fmt"

// MaxLabelLength bounds label names, in bytes.
const MaxLabelLength = 255

// LabelName names a cell or range, e.g. Label123.
type LabelName struct {
	value string
}

// ParseLabelName accepts a letter followed by letters, digits, '_' or '.'.
// Text shaped like a cell reference is not a label, even when its column or
// row is out of range (XFE1, A0).
func ParseLabelName(s string) (LabelName, error) {
	if s == "" || len(s) > MaxLabelLength {
		return LabelName{}, fmt.Errorf("%w: %q is not a label", ErrBadReference, s)
	}
	if !isLetter(s[0]) {
		return LabelName{}, fmt.Errorf("%w: label %q must start with a letter", ErrBadReference, s)
	}
	for i := 1; i < len(s); i++ {
		ch := s[i]
		if !isLetter(ch) && !(ch >= '0' && ch <= '9') && ch != '_' && ch != '.' {
			return LabelName{}, fmt.Errorf("%w: label %q contains %q", ErrBadReference, s, ch)
		}
	}
	if cellShaped(s) {
		return LabelName{}, fmt.Errorf("%w: %q is a cell reference, not a label", ErrBadReference, s)
	}
	return LabelName{value: s}, nil
}

// MustLabelName is ParseLabelName for literals known to be valid.
func MustLabelName(s string) LabelName {
	l, err := ParseLabelName(s)
	if err != nil {
		panic(err)
	}
	return l
}

func (l LabelName) IsZero() bool   { return l.value == "" }
func (l LabelName) String() string { return l.value }

func isLetter(ch byte) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

// maxColumnLetters is the width of the last column name, XFD.
const maxColumnLetters = 3

// cellShaped reports whether s is up to three letters followed only by digits.
func cellShaped(s string) bool {
	i := 0
	for i < len(s) && isLetter(s[i]) {
		i++
	}
	if i == 0 || i > maxColumnLetters || i == len(s) {
		return false
	}
	for _, ch := range []byte(s[i:]) {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

package sheet

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// MaxColumns is the number of columns, A..XFD.
	MaxColumns = 16384
	// MaxRows is the number of rows, 1..1048576.
	MaxRows = 1048576
)

// ColumnReference is a 0-based column index.
type ColumnReference struct {
	index uint32
}

// RowReference is a 0-based row index; it renders 1-based.
type RowReference struct {
	index uint32
}

// CellReference is a column and row pair, e.g. B2.
type CellReference struct {
	Column ColumnReference
	Row    RowReference
}

// Column returns the reference for a 0-based column index.
func Column(index uint32) (ColumnReference, error) {
	if index >= MaxColumns {
		return ColumnReference{}, fmt.Errorf("%w: column index %d out of range", ErrBadReference, index)
	}
	return ColumnReference{index: index}, nil
}

// Row returns the reference for a 0-based row index.
func Row(index uint32) (RowReference, error) {
	if index >= MaxRows {
		return RowReference{}, fmt.Errorf("%w: row index %d out of range", ErrBadReference, index)
	}
	return RowReference{index: index}, nil
}

func (c ColumnReference) Index() uint32 { return c.index }
func (r RowReference) Index() uint32    { return r.index }

// ParseColumn parses column letters, case-insensitively: a, B, AA, XFD.
func ParseColumn(s string) (ColumnReference, error) {
	if s == "" || len(s) > 3 {
		return ColumnReference{}, fmt.Errorf("%w: %q is not a column", ErrBadReference, s)
	}
	var n uint32
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= 'A' && ch <= 'Z':
		case ch >= 'a' && ch <= 'z':
			ch -= 'a' - 'A'
		default:
			return ColumnReference{}, fmt.Errorf("%w: %q is not a column", ErrBadReference, s)
		}
		// позиционная запись без нуля: A=1 ... Z=26, AA=27
		n = n*26 + uint32(ch-'A') + 1
	}
	return Column(n - 1)
}

func (c ColumnReference) String() string {
	n := c.index + 1
	var buf [3]byte
	i := len(buf)
	for n > 0 {
		n--
		i--
		buf[i] = byte('A' + n%26)
		n /= 26
	}
	return string(buf[i:])
}

// ParseRow parses a 1-based row number.
func ParseRow(s string) (RowReference, error) {
	if s == "" || !allDigits(s) {
		return RowReference{}, fmt.Errorf("%w: %q is not a row", ErrBadReference, s)
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil || v == 0 {
		return RowReference{}, fmt.Errorf("%w: row %q out of range", ErrBadReference, s)
	}
	return Row(uint32(v - 1))
}

func (r RowReference) String() string {
	return strconv.FormatUint(uint64(r.index)+1, 10)
}

// ParseCell parses A1 notation: column letters followed by row digits.
func ParseCell(s string) (CellReference, error) {
	split := strings.IndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' })
	if split <= 0 {
		return CellReference{}, fmt.Errorf("%w: %q is not a cell reference", ErrBadReference, s)
	}
	col, err := ParseColumn(s[:split])
	if err != nil {
		return CellReference{}, fmt.Errorf("%w: %q is not a cell reference", ErrBadReference, s)
	}
	row, err := ParseRow(s[split:])
	if err != nil {
		return CellReference{}, fmt.Errorf("%w: %q is not a cell reference", ErrBadReference, s)
	}
	return CellReference{Column: col, Row: row}, nil
}

// MustCell is ParseCell for literals known to be valid.
func MustCell(s string) CellReference {
	c, err := ParseCell(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CellReference) String() string {
	return c.Column.String() + c.Row.String()
}

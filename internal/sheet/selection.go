package sheet

import (
	"fmt"
	"strings"
)

// SelectionKind tells the shapes of Selection apart.
type SelectionKind uint8

const (
	// SelectionNone is the zero Selection.
	SelectionNone SelectionKind = iota
	SelectionCell
	SelectionCellRange
	SelectionColumn
	SelectionColumnRange
	SelectionRow
	SelectionRowRange
	SelectionLabel
)

func (k SelectionKind) String() string {
	switch k {
	case SelectionCell:
		return "cell"
	case SelectionCellRange:
		return "cell-range"
	case SelectionColumn:
		return "column"
	case SelectionColumnRange:
		return "column-range"
	case SelectionRow:
		return "row"
	case SelectionRowRange:
		return "row-range"
	case SelectionLabel:
		return "label"
	default:
		return "none"
	}
}

// Family groups selection shapes by the path branch that carries them.
type Family uint8

const (
	FamilyNone Family = iota
	FamilyCell
	FamilyColumn
	FamilyRow
)

func (f Family) String() string {
	switch f {
	case FamilyCell:
		return "cell"
	case FamilyColumn:
		return "column"
	case FamilyRow:
		return "row"
	default:
		return "none"
	}
}

// Selection is what the user targeted: a cell, column or row, a range of
// them, or a label. Only the fields relevant to the kind are set.
type Selection struct {
	kind  SelectionKind
	begin CellReference
	end   CellReference
	label LabelName
}

// CellSelection selects one cell.
func CellSelection(c CellReference) Selection {
	return Selection{kind: SelectionCell, begin: c, end: c}
}

// CellRangeSelection selects the rectangle spanned by two corners, in any
// order. A rectangle of one cell collapses to CellSelection.
func CellRangeSelection(a, b CellReference) Selection {
	begin := CellReference{
		Column: ColumnReference{index: min(a.Column.index, b.Column.index)},
		Row:    RowReference{index: min(a.Row.index, b.Row.index)},
	}
	end := CellReference{
		Column: ColumnReference{index: max(a.Column.index, b.Column.index)},
		Row:    RowReference{index: max(a.Row.index, b.Row.index)},
	}
	if begin == end {
		return CellSelection(begin)
	}
	return Selection{kind: SelectionCellRange, begin: begin, end: end}
}

// ColumnSelection selects one column.
func ColumnSelection(c ColumnReference) Selection {
	return Selection{kind: SelectionColumn, begin: CellReference{Column: c}, end: CellReference{Column: c}}
}

// ColumnRangeSelection selects the columns between a and b inclusive.
func ColumnRangeSelection(a, b ColumnReference) Selection {
	lo, hi := min(a.index, b.index), max(a.index, b.index)
	if lo == hi {
		return ColumnSelection(a)
	}
	return Selection{
		kind:  SelectionColumnRange,
		begin: CellReference{Column: ColumnReference{index: lo}},
		end:   CellReference{Column: ColumnReference{index: hi}},
	}
}

// RowSelection selects one row.
func RowSelection(r RowReference) Selection {
	return Selection{kind: SelectionRow, begin: CellReference{Row: r}, end: CellReference{Row: r}}
}

// RowRangeSelection selects the rows between a and b inclusive.
func RowRangeSelection(a, b RowReference) Selection {
	lo, hi := min(a.index, b.index), max(a.index, b.index)
	if lo == hi {
		return RowSelection(a)
	}
	return Selection{
		kind:  SelectionRowRange,
		begin: CellReference{Row: RowReference{index: lo}},
		end:   CellReference{Row: RowReference{index: hi}},
	}
}

// LabelSelection selects whatever the label maps to.
func LabelSelection(l LabelName) Selection {
	return Selection{kind: SelectionLabel, label: l}
}

func (s Selection) Kind() SelectionKind { return s.kind }
func (s Selection) IsZero() bool        { return s.kind == SelectionNone }

// Begin and End return the corners of cell shapes (equal for a single cell).
func (s Selection) Begin() CellReference { return s.begin }
func (s Selection) End() CellReference   { return s.end }

// Label returns the label of a SelectionLabel.
func (s Selection) Label() LabelName { return s.label }

// IsRange reports whether the selection spans more than one cell, column or row.
func (s Selection) IsRange() bool {
	switch s.kind {
	case SelectionCellRange, SelectionColumnRange, SelectionRowRange:
		return true
	}
	return false
}

// Family maps the shape to its path branch; labels live under cell.
func (s Selection) Family() Family {
	switch s.kind {
	case SelectionCell, SelectionCellRange, SelectionLabel:
		return FamilyCell
	case SelectionColumn, SelectionColumnRange:
		return FamilyColumn
	case SelectionRow, SelectionRowRange:
		return FamilyRow
	}
	return FamilyNone
}

// StartsAtOrigin reports whether the selection begins at column A and/or row
// 1 as its shape requires; only such selections can be frozen.
func (s Selection) StartsAtOrigin() bool {
	switch s.kind {
	case SelectionCell, SelectionCellRange:
		return s.begin.Column.index == 0 && s.begin.Row.index == 0
	case SelectionColumn, SelectionColumnRange:
		return s.begin.Column.index == 0
	case SelectionRow, SelectionRowRange:
		return s.begin.Row.index == 0
	}
	return false
}

func (s Selection) String() string {
	switch s.kind {
	case SelectionCell:
		return s.begin.String()
	case SelectionCellRange:
		return s.begin.String() + ":" + s.end.String()
	case SelectionColumn:
		return s.begin.Column.String()
	case SelectionColumnRange:
		return s.begin.Column.String() + ":" + s.end.Column.String()
	case SelectionRow:
		return s.begin.Row.String()
	case SelectionRowRange:
		return s.begin.Row.String() + ":" + s.end.Row.String()
	case SelectionLabel:
		return s.label.String()
	}
	return ""
}

// ParseCellSelection parses a cell, a cell range ("B2:C3") or a label.
func ParseCellSelection(s string) (Selection, error) {
	if lhs, rhs, ok := strings.Cut(s, ":"); ok {
		a, err := ParseCell(lhs)
		if err != nil {
			return Selection{}, fmt.Errorf("%w: %q is not a cell range", ErrBadReference, s)
		}
		b, err := ParseCell(rhs)
		if err != nil {
			return Selection{}, fmt.Errorf("%w: %q is not a cell range", ErrBadReference, s)
		}
		return CellRangeSelection(a, b), nil
	}
	if c, err := ParseCell(s); err == nil {
		return CellSelection(c), nil
	}
	l, err := ParseLabelName(s)
	if err != nil {
		return Selection{}, fmt.Errorf("%w: %q is neither a cell reference nor a label", ErrBadReference, s)
	}
	return LabelSelection(l), nil
}

// ParseColumnSelection parses a column or a column range ("A:C").
func ParseColumnSelection(s string) (Selection, error) {
	if lhs, rhs, ok := strings.Cut(s, ":"); ok {
		a, err := ParseColumn(lhs)
		if err != nil {
			return Selection{}, err
		}
		b, err := ParseColumn(rhs)
		if err != nil {
			return Selection{}, err
		}
		return ColumnRangeSelection(a, b), nil
	}
	c, err := ParseColumn(s)
	if err != nil {
		return Selection{}, err
	}
	return ColumnSelection(c), nil
}

// ParseRowSelection parses a row or a row range ("1:3").
func ParseRowSelection(s string) (Selection, error) {
	if lhs, rhs, ok := strings.Cut(s, ":"); ok {
		a, err := ParseRow(lhs)
		if err != nil {
			return Selection{}, err
		}
		b, err := ParseRow(rhs)
		if err != nil {
			return Selection{}, err
		}
		return RowRangeSelection(a, b), nil
	}
	r, err := ParseRow(s)
	if err != nil {
		return Selection{}, err
	}
	return RowSelection(r), nil
}

// ParseSelection parses text for the given family.
func ParseSelection(f Family, s string) (Selection, error) {
	switch f {
	case FamilyCell:
		return ParseCellSelection(s)
	case FamilyColumn:
		return ParseColumnSelection(s)
	case FamilyRow:
		return ParseRowSelection(s)
	}
	return Selection{}, fmt.Errorf("%w: no selection family", ErrInvalidArgument)
}

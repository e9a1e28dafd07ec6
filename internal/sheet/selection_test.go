package sheet_test

import (
	"errors"
	"testing"

	"sheetnav/internal/sheet"
)

func TestParseCellSelection(t *testing.T) {
	tests := []struct {
		in   string
		kind sheet.SelectionKind
		out  string
	}{
		{"A1", sheet.SelectionCell, "A1"},
		{"B2:C3", sheet.SelectionCellRange, "B2:C3"},
		{"C3:B2", sheet.SelectionCellRange, "B2:C3"},
		{"C2:B3", sheet.SelectionCellRange, "B2:C3"},
		{"a1:a1", sheet.SelectionCell, "A1"},
		{"Label123", sheet.SelectionLabel, "Label123"},
	}
	for _, tt := range tests {
		s, err := sheet.ParseCellSelection(tt.in)
		if err != nil {
			t.Fatalf("ParseCellSelection(%q): %v", tt.in, err)
		}
		if s.Kind() != tt.kind || s.String() != tt.out {
			t.Errorf("ParseCellSelection(%q) = %s %s, want %s %s", tt.in, s.Kind(), s, tt.kind, tt.out)
		}
		if s.Family() != sheet.FamilyCell {
			t.Errorf("ParseCellSelection(%q).Family() = %s", tt.in, s.Family())
		}
	}
	for _, in := range []string{"", "not-a-reference", "A1:", ":B2", "A1:Label"} {
		if _, err := sheet.ParseCellSelection(in); !errors.Is(err, sheet.ErrBadReference) {
			t.Errorf("ParseCellSelection(%q) err = %v", in, err)
		}
	}
}

func TestParseColumnAndRowSelection(t *testing.T) {
	s, err := sheet.ParseColumnSelection("C:a")
	if err != nil {
		t.Fatal(err)
	}
	if s.Kind() != sheet.SelectionColumnRange || s.String() != "A:C" || s.Family() != sheet.FamilyColumn {
		t.Fatalf("got %s %s", s.Kind(), s)
	}
	s, err = sheet.ParseRowSelection("3:3")
	if err != nil {
		t.Fatal(err)
	}
	if s.Kind() != sheet.SelectionRow || s.String() != "3" || s.Family() != sheet.FamilyRow {
		t.Fatalf("got %s %s", s.Kind(), s)
	}
	if _, err := sheet.ParseRowSelection("A"); err == nil {
		t.Fatal("row selection accepted a column")
	}
	if _, err := sheet.ParseSelection(sheet.FamilyNone, "A1"); !errors.Is(err, sheet.ErrInvalidArgument) {
		t.Fatalf("ParseSelection without family err = %v", err)
	}
}

func TestStartsAtOrigin(t *testing.T) {
	tests := []struct {
		family sheet.Family
		in     string
		want   bool
	}{
		{sheet.FamilyCell, "A1", true},
		{sheet.FamilyCell, "A1:C3", true},
		{sheet.FamilyCell, "B1", false},
		{sheet.FamilyCell, "Label1x", false},
		{sheet.FamilyColumn, "A:B", true},
		{sheet.FamilyColumn, "B", false},
		{sheet.FamilyRow, "1", true},
		{sheet.FamilyRow, "2:4", false},
	}
	for _, tt := range tests {
		s, err := sheet.ParseSelection(tt.family, tt.in)
		if err != nil {
			t.Fatalf("ParseSelection(%s, %q): %v", tt.family, tt.in, err)
		}
		if got := s.StartsAtOrigin(); got != tt.want {
			t.Errorf("%s.StartsAtOrigin() = %v, want %v", s, got, tt.want)
		}
	}
}

func TestAnchors(t *testing.T) {
	rng := sheet.CellRangeSelection(sheet.MustCell("B2"), sheet.MustCell("C3"))
	as, err := sheet.NewAnchoredSelection(rng, sheet.AnchorTopLeft)
	if err != nil {
		t.Fatal(err)
	}
	if as.String() != "B2:C3/top-left" {
		t.Fatalf("String() = %q", as.String())
	}
	if _, err := sheet.NewAnchoredSelection(rng, sheet.AnchorNone); !errors.Is(err, sheet.ErrInvalidArgument) {
		t.Fatalf("range without anchor err = %v", err)
	}
	if _, err := sheet.NewAnchoredSelection(rng, sheet.AnchorLeft); err == nil {
		t.Fatal("edge anchor accepted for a cell range")
	}

	cell := sheet.CellSelection(sheet.MustCell("A1"))
	if _, err := sheet.NewAnchoredSelection(cell, sheet.AnchorTopLeft); err == nil {
		t.Fatal("anchor accepted for a single cell")
	}
	if got := sheet.Anchored(cell).String(); got != "A1" {
		t.Fatalf("single cell renders %q", got)
	}

	label := sheet.LabelSelection(sheet.MustLabelName("Label123"))
	for _, a := range []sheet.Anchor{sheet.AnchorNone, sheet.AnchorBottomLeft} {
		if _, err := sheet.NewAnchoredSelection(label, a); err != nil {
			t.Errorf("label with anchor %q: %v", a, err)
		}
	}
	if _, err := sheet.NewAnchoredSelection(sheet.Selection{}, sheet.AnchorNone); err == nil {
		t.Fatal("zero selection accepted")
	}
}

func TestDefaultAnchor(t *testing.T) {
	tests := []struct {
		kind sheet.SelectionKind
		want sheet.Anchor
	}{
		{sheet.SelectionCell, sheet.AnchorNone},
		{sheet.SelectionCellRange, sheet.AnchorBottomRight},
		{sheet.SelectionColumnRange, sheet.AnchorRight},
		{sheet.SelectionRowRange, sheet.AnchorBottom},
		{sheet.SelectionLabel, sheet.AnchorNone},
	}
	for _, tt := range tests {
		if got := sheet.DefaultAnchor(tt.kind); got != tt.want {
			t.Errorf("DefaultAnchor(%s) = %q, want %q", tt.kind, got, tt.want)
		}
	}
	if a, ok := sheet.ParseAnchor("bottom-right"); !ok || a != sheet.AnchorBottomRight {
		t.Fatal("ParseAnchor(bottom-right)")
	}
	if _, ok := sheet.ParseAnchor(""); ok {
		t.Fatal("empty anchor literal accepted")
	}
}

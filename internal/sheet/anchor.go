package sheet

import (
	"fmt"
	"slices"
)

// Anchor is the fixed end of a range selection; extension gestures move the
// opposite end.
type Anchor uint8

const (
	AnchorNone Anchor = iota
	AnchorTopLeft
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
	AnchorLeft
	AnchorRight
	AnchorTop
	AnchorBottom
)

var anchorLiterals = [...]string{
	AnchorNone:        "",
	AnchorTopLeft:     "top-left",
	AnchorTopRight:    "top-right",
	AnchorBottomLeft:  "bottom-left",
	AnchorBottomRight: "bottom-right",
	AnchorLeft:        "left",
	AnchorRight:       "right",
	AnchorTop:         "top",
	AnchorBottom:      "bottom",
}

// ParseAnchor maps a path literal to an anchor; "none" has no literal.
func ParseAnchor(s string) (Anchor, bool) {
	if s == "" {
		return AnchorNone, false
	}
	for a, lit := range anchorLiterals {
		if lit == s {
			return Anchor(a), true
		}
	}
	return AnchorNone, false
}

// String returns the path literal, "" for AnchorNone.
func (a Anchor) String() string {
	if int(a) < len(anchorLiterals) {
		return anchorLiterals[a]
	}
	return ""
}

var (
	cornerAnchors = []Anchor{AnchorTopLeft, AnchorTopRight, AnchorBottomLeft, AnchorBottomRight}
	labelAnchors  = []Anchor{AnchorNone, AnchorTopLeft, AnchorTopRight, AnchorBottomLeft, AnchorBottomRight}
)

// AnchorsFor lists the anchors legal for a selection shape.
func AnchorsFor(k SelectionKind) []Anchor {
	switch k {
	case SelectionCellRange:
		return cornerAnchors
	case SelectionColumnRange:
		return []Anchor{AnchorLeft, AnchorRight}
	case SelectionRowRange:
		return []Anchor{AnchorTop, AnchorBottom}
	case SelectionLabel:
		return labelAnchors
	case SelectionCell, SelectionColumn, SelectionRow:
		return []Anchor{AnchorNone}
	}
	return nil
}

// DefaultAnchor is used when a range arrives without an anchor segment.
func DefaultAnchor(k SelectionKind) Anchor {
	switch k {
	case SelectionCellRange:
		return AnchorBottomRight
	case SelectionColumnRange:
		return AnchorRight
	case SelectionRowRange:
		return AnchorBottom
	}
	return AnchorNone
}

// AnchoredSelection pairs a selection with an anchor legal for its shape.
type AnchoredSelection struct {
	selection Selection
	anchor    Anchor
}

// NewAnchoredSelection validates the pair.
func NewAnchoredSelection(s Selection, a Anchor) (AnchoredSelection, error) {
	if s.IsZero() {
		return AnchoredSelection{}, fmt.Errorf("%w: missing selection", ErrInvalidArgument)
	}
	if !slices.Contains(AnchorsFor(s.Kind()), a) {
		name := a.String()
		if name == "" {
			name = "none"
		}
		return AnchoredSelection{}, fmt.Errorf("%w: anchor %s not allowed for %s %s", ErrInvalidArgument, name, s.Kind(), s)
	}
	return AnchoredSelection{selection: s, anchor: a}, nil
}

// Anchored pairs s with its default anchor.
func Anchored(s Selection) AnchoredSelection {
	return AnchoredSelection{selection: s, anchor: DefaultAnchor(s.Kind())}
}

func (as AnchoredSelection) Selection() Selection { return as.selection }
func (as AnchoredSelection) Anchor() Anchor       { return as.anchor }
func (as AnchoredSelection) IsZero() bool         { return as.selection.IsZero() }

// String renders "B2:C3/top-left", or just the selection when unanchored.
func (as AnchoredSelection) String() string {
	if as.anchor == AnchorNone {
		return as.selection.String()
	}
	return as.selection.String() + "/" + as.anchor.String()
}

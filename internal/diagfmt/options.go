// Package diagfmt prints parsed tokens and their diagnostics.
package diagfmt

import (
	"fmt"
	"strings"

	"sheetnav/internal/diag"
	"sheetnav/internal/history"
)

// Format selects the output encoding.
type Format uint8

const (
	FormatPretty Format = iota
	FormatJSON
	FormatMsgpack
	FormatShort
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMsgpack:
		return "msgpack"
	case FormatShort:
		return "short"
	default:
		return "pretty"
	}
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "pretty":
		return FormatPretty, nil
	case "json":
		return FormatJSON, nil
	case "msgpack":
		return FormatMsgpack, nil
	case "short":
		return FormatShort, nil
	}
	return FormatPretty, fmt.Errorf("unknown format %q (expected pretty|json|msgpack|short)", s)
}

// PrettyOpts configures pretty-printing.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
	Fields    bool // print every token field, not just the fragment
}

// JSONOpts configures JSON output.
type JSONOpts struct {
	Indent bool
	Max    int // обрезка диагностик на запись, 0 - без ограничений
}

// Entry is one parsed input ready for printing.
type Entry struct {
	Input       string
	Token       history.Token
	Diagnostics []diag.Diagnostic
}

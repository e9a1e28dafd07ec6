package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"sheetnav/internal/diag"
	"sheetnav/internal/history"
	"sheetnav/internal/source"
)

type palette struct {
	err, warn, info, code, caret, key, dim *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:   color.New(color.FgRed, color.Bold),
		warn:  color.New(color.FgYellow, color.Bold),
		info:  color.New(color.FgCyan),
		code:  color.New(color.Bold),
		caret: color.New(color.FgGreen, color.Bold),
		key:   color.New(color.FgBlue),
		dim:   color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.caret, p.key, p.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch {
	case s >= diag.SevError:
		return p.err
	case s == diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty prints diagnostics for one fragment:
//
//	<fragment>: ERROR GRM2001: unknown literal "celx"
//	  /123/Sheet/celx/A1
//	             ^~~~
func Pretty(w io.Writer, fragment string, diags []diag.Diagnostic, opts PrettyOpts) {
	p := newPalette(opts.Color)
	for _, d := range diags {
		fmt.Fprintf(w, "%s: %s %s: %s\n",
			fragment,
			p.severity(d.Severity).Sprint(d.Severity.String()),
			p.code.Sprint(d.Code.ID()),
			d.Message)
		writeCaret(w, p, fragment, d.Primary)
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			fmt.Fprintf(w, "  %s %s\n", p.dim.Sprint("note:"), n.Msg)
			writeCaret(w, p, fragment, n.Span)
		}
	}
}

// writeCaret подчёркивает span под строкой фрагмента.
func writeCaret(w io.Writer, p palette, fragment string, sp source.Span) {
	if int(sp.End) > len(fragment) || sp.End < sp.Start {
		return
	}
	fmt.Fprintf(w, "  %s\n", fragment)
	pad := runewidth.StringWidth(fragment[:sp.Start])
	width := runewidth.StringWidth(fragment[sp.Start:sp.End])
	mark := "^"
	if width > 1 {
		mark += strings.Repeat("~", width-1)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), p.caret.Sprint(mark))
}

// PrettyToken prints the canonical fragment, and with opts.Fields every
// described field aligned in a column.
func PrettyToken(w io.Writer, tok history.Token, opts PrettyOpts) {
	p := newPalette(opts.Color)
	if !opts.Fields {
		fmt.Fprintln(w, tok.Fragment())
		return
	}
	fields := history.Describe(tok)
	width := 0
	for _, f := range fields {
		width = max(width, len(f.Name))
	}
	for _, f := range fields {
		fmt.Fprintf(w, "%s %s\n", p.key.Sprintf("%-*s", width, f.Name), f.Value)
	}
}

// PrettyEntries prints tokens to out and diagnostics to errOut.
func PrettyEntries(out, errOut io.Writer, entries []Entry, opts PrettyOpts) {
	for i, e := range entries {
		if opts.Fields && i > 0 {
			fmt.Fprintln(out)
		}
		PrettyToken(out, e.Token, opts)
		Pretty(errOut, e.Input, e.Diagnostics, opts)
	}
}

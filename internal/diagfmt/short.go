package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"sheetnav/internal/diag"
)

// Short prints one fragment per line to out and one line per diagnostic to
// errOut, prefixed with the input:
//
//	/nope: error GRM2001 2-6 unknown path segment "nope"
func Short(out, errOut io.Writer, entries []Entry) {
	for _, e := range entries {
		fmt.Fprintln(out, e.Token.Fragment())
		ShortDiagnostics(errOut, e.Input, e.Diagnostics)
	}
}

// ShortDiagnostics writes diags of one fragment in the short form, notes included.
func ShortDiagnostics(w io.Writer, prefix string, diags []diag.Diagnostic) {
	text := diag.FormatShort(diags, true)
	if text == "" {
		return
	}
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(w, "%s: %s\n", prefix, line)
	}
}

package diag

import (
	"fmt"
	"strings"
)

// FormatShort renders diagnostics one per line as
// "<severity> <ID> <col>-<col> <message>", with 1-based byte columns into
// the fragment. Notes follow their diagnostic as "note" lines.
func FormatShort(diags []Diagnostic, includeNotes bool) string {
	if len(diags) == 0 {
		return ""
	}
	lines := make([]string, 0, len(diags))
	for _, d := range diags {
		lines = append(lines, shortLine(strings.ToLower(d.Severity.String()), d.Code, d.Primary.Start, d.Primary.End, d.Message))
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			lines = append(lines, shortLine("note", d.Code, n.Span.Start, n.Span.End, n.Msg))
		}
	}
	return strings.Join(lines, "\n")
}

func shortLine(sev string, code Code, start, end uint32, msg string) string {
	msg = strings.Join(strings.Fields(msg), " ")
	return fmt.Sprintf("%s %s %d-%d %s", sev, code.ID(), start+1, end+1, msg)
}

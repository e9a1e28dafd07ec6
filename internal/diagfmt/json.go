package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iancoleman/orderedmap"

	"sheetnav/internal/diag"
	"sheetnav/internal/history"
)

// LocationJSON: байтовый диапазон внутри фрагмента.
type LocationJSON struct {
	StartByte uint32 `json:"start_byte" msgpack:"start_byte"`
	EndByte   uint32 `json:"end_byte" msgpack:"end_byte"`
	Text      string `json:"text" msgpack:"text"`
}

// NoteJSON: дополнительная заметка.
type NoteJSON struct {
	Message  string       `json:"message" msgpack:"message"`
	Location LocationJSON `json:"location" msgpack:"location"`
}

// DiagnosticJSON: диагностика в JSON.
type DiagnosticJSON struct {
	Severity string       `json:"severity" msgpack:"severity"`
	Code     string       `json:"code" msgpack:"code"`
	Title    string       `json:"title" msgpack:"title"`
	Message  string       `json:"message" msgpack:"message"`
	Location LocationJSON `json:"location" msgpack:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty" msgpack:"notes,omitempty"`
}

// EntryJSON is one parsed input. Token keeps Describe's field order.
type EntryJSON struct {
	Input       string                 `json:"input"`
	Token       *orderedmap.OrderedMap `json:"token"`
	Diagnostics []DiagnosticJSON       `json:"diagnostics,omitempty"`
}

// Output is the root of the JSON document.
type Output struct {
	Entries []EntryJSON `json:"entries"`
	Count   int         `json:"count"`
}

func location(fragment string, start, end uint32) LocationJSON {
	loc := LocationJSON{StartByte: start, EndByte: end}
	if end >= start && int(end) <= len(fragment) {
		loc.Text = fragment[start:end]
	}
	return loc
}

func buildDiagnostics(fragment string, diags []diag.Diagnostic, limit int) []DiagnosticJSON {
	if limit > 0 && limit < len(diags) {
		diags = diags[:limit]
	}
	out := make([]DiagnosticJSON, 0, len(diags))
	for _, d := range diags {
		dj := DiagnosticJSON{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Title:    d.Code.Title(),
			Message:  d.Message,
			Location: location(fragment, d.Primary.Start, d.Primary.End),
		}
		for _, n := range d.Notes {
			dj.Notes = append(dj.Notes, NoteJSON{n.Msg, location(fragment, n.Span.Start, n.Span.End)})
		}
		out = append(out, dj)
	}
	return out
}

// TokenMap describes tok as an ordered JSON object.
func TokenMap(tok history.Token) *orderedmap.OrderedMap {
	m := orderedmap.New()
	m.SetEscapeHTML(false)
	for _, f := range history.Describe(tok) {
		m.Set(f.Name, f.Value)
	}
	return m
}

// BuildOutput assembles the JSON document without encoding it.
func BuildOutput(entries []Entry, opts JSONOpts) Output {
	out := Output{Entries: make([]EntryJSON, 0, len(entries)), Count: len(entries)}
	for _, e := range entries {
		out.Entries = append(out.Entries, EntryJSON{
			Input:       e.Input,
			Token:       TokenMap(e.Token),
			Diagnostics: buildDiagnostics(e.Input, e.Diagnostics, opts.Max),
		})
	}
	return out
}

// JSON writes entries as one JSON document.
func JSON(w io.Writer, entries []Entry, opts JSONOpts) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if opts.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(BuildOutput(entries, opts)); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

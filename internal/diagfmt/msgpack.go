package diagfmt

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"sheetnav/internal/history"
)

// FieldRecord is a token field; msgpack maps lose order, so fields travel
// as a list.
type FieldRecord struct {
	Name  string `msgpack:"name"`
	Value string `msgpack:"value"`
}

// EntryRecord is the msgpack form of an Entry.
type EntryRecord struct {
	Input       string           `msgpack:"input"`
	Fragment    string           `msgpack:"fragment"`
	Fields      []FieldRecord    `msgpack:"fields"`
	Diagnostics []DiagnosticJSON `msgpack:"diagnostics,omitempty"`
}

func record(e Entry, limit int) EntryRecord {
	fields := history.Describe(e.Token)
	r := EntryRecord{
		Input:       e.Input,
		Fragment:    e.Token.Fragment(),
		Fields:      make([]FieldRecord, len(fields)),
		Diagnostics: buildDiagnostics(e.Input, e.Diagnostics, limit),
	}
	for i, f := range fields {
		r.Fields[i] = FieldRecord(f)
	}
	return r
}

// Msgpack writes one EntryRecord per entry, back to back.
func Msgpack(w io.Writer, entries []Entry, opts JSONOpts) error {
	enc := msgpack.NewEncoder(w)
	for _, e := range entries {
		if err := enc.Encode(record(e, opts.Max)); err != nil {
			return fmt.Errorf("encode msgpack: %w", err)
		}
	}
	return nil
}

// DecodeMsgpack reads records written by Msgpack until EOF.
func DecodeMsgpack(r io.Reader) ([]EntryRecord, error) {
	dec := msgpack.NewDecoder(r)
	var out []EntryRecord
	for {
		var rec EntryRecord
		if err := dec.Decode(&rec); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, fmt.Errorf("decode msgpack: %w", err)
		}
		out = append(out, rec)
	}
}

// Write dispatches on format.
func Write(out, errOut io.Writer, format Format, entries []Entry, pretty PrettyOpts, jopts JSONOpts) error {
	switch format {
	case FormatJSON:
		return JSON(out, entries, jopts)
	case FormatMsgpack:
		return Msgpack(out, entries, jopts)
	case FormatShort:
		Short(out, errOut, entries)
		return nil
	default:
		PrettyEntries(out, errOut, entries, pretty)
		return nil
	}
}

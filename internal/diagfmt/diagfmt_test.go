package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"sheetnav/internal/diag"
	"sheetnav/internal/diagfmt"
	"sheetnav/internal/history"
)

func parse(t *testing.T, text string) diagfmt.Entry {
	t.Helper()
	bag := diag.NewBag(4)
	tok := history.ParseWithOptions(text, history.Options{Reporter: diag.BagReporter{Bag: bag}})
	return diagfmt.Entry{Input: text, Token: tok, Diagnostics: bag.Items()}
}

func TestPrettyCaret(t *testing.T) {
	e := parse(t, "/123/Sheet/celx/A1")
	if len(e.Diagnostics) != 1 {
		t.Fatalf("diagnostics = %v", e.Diagnostics)
	}
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, e.Input, e.Diagnostics, diagfmt.PrettyOpts{})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("output:\n%s", buf.String())
	}
	if !strings.HasPrefix(lines[0], "/123/Sheet/celx/A1: ERROR ") {
		t.Errorf("header = %q", lines[0])
	}
	sp := e.Diagnostics[0].Primary
	want := "  " + strings.Repeat(" ", int(sp.Start)) + "^" + strings.Repeat("~", int(sp.Len())-1)
	if lines[2] != want {
		t.Errorf("caret line = %q, want %q", lines[2], want)
	}
}

func TestPrettyTokenFields(t *testing.T) {
	e := parse(t, "/123/Sheet/cell/A1")
	var buf bytes.Buffer
	diagfmt.PrettyToken(&buf, e.Token, diagfmt.PrettyOpts{Fields: true})
	fields := history.Describe(e.Token)
	width := 0
	for _, f := range fields {
		width = max(width, len(f.Name))
	}
	var want strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&want, "%-*s %s\n", width, f.Name, f.Value)
	}
	if diff := cmp.Diff(want.String(), buf.String()); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
	for _, line := range []string{"kind ", "fragment "} {
		if !strings.Contains(buf.String(), "\n"+line) && !strings.HasPrefix(buf.String(), line) {
			t.Errorf("fields lack %q:\n%s", line, buf.String())
		}
	}
	if !strings.Contains(buf.String(), " /123/Sheet/cell/A1\n") {
		t.Errorf("fields lack the fragment:\n%s", buf.String())
	}

	buf.Reset()
	diagfmt.PrettyToken(&buf, e.Token, diagfmt.PrettyOpts{})
	if buf.String() != "/123/Sheet/cell/A1\n" {
		t.Errorf("plain = %q", buf.String())
	}
}

func TestJSONKeepsFieldOrder(t *testing.T) {
	entries := []diagfmt.Entry{parse(t, "/123/Sheet/cell/A1"), parse(t, "/nope")}
	var buf bytes.Buffer
	if err := diagfmt.JSON(&buf, entries, diagfmt.JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, `{"entries":[{"input":"/123/Sheet/cell/A1","token":{"kind":"CellSelect","family":"cell"`) {
		t.Errorf("json = %s", out)
	}

	var doc struct {
		Count   int `json:"count"`
		Entries []struct {
			Diagnostics []diagfmt.DiagnosticJSON `json:"diagnostics"`
		} `json:"entries"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Count != 2 || len(doc.Entries[0].Diagnostics) != 0 || len(doc.Entries[1].Diagnostics) != 1 {
		t.Errorf("doc = %+v", doc)
	}
	if got := doc.Entries[1].Diagnostics[0].Location.Text; got != "nope" {
		t.Errorf("location text = %q", got)
	}
}

func TestMsgpackRoundTrip(t *testing.T) {
	entries := []diagfmt.Entry{parse(t, "/plugin/*"), parse(t, "/123/Sheet/row/2:5/top")}
	var buf bytes.Buffer
	if err := diagfmt.Msgpack(&buf, entries, diagfmt.JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	recs, err := diagfmt.DecodeMsgpack(&buf)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, r := range recs {
		got = append(got, r.Fragment)
	}
	want := []string{"/plugin/*", "/123/Sheet/row/2:5/top"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("fragments (-want +got):\n%s", diff)
	}
	if recs[0].Fields[0] != (diagfmt.FieldRecord{Name: "kind", Value: "PluginListSelect"}) {
		t.Errorf("first field = %+v", recs[0].Fields[0])
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"pretty", "json", "msgpack", "short"} {
		f, err := diagfmt.ParseFormat(s)
		if err != nil || f.String() != s {
			t.Errorf("ParseFormat(%q) = %v, %v", s, f, err)
		}
	}
	if _, err := diagfmt.ParseFormat("xml"); err == nil {
		t.Error("xml accepted")
	}
}

func TestShort(t *testing.T) {
	entries := []diagfmt.Entry{parse(t, "/123/Sheet/cell/A1"), parse(t, "/nope")}
	var out, errOut bytes.Buffer
	if err := diagfmt.Write(&out, &errOut, diagfmt.FormatShort, entries, diagfmt.PrettyOpts{}, diagfmt.JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	if out.String() != "/123/Sheet/cell/A1\n/nope\n" {
		t.Errorf("stdout = %q", out.String())
	}
	lines := strings.Split(strings.TrimRight(errOut.String(), "\n"), "\n")
	if !strings.HasPrefix(lines[0], "/nope: error GRM2001 2-6 ") {
		t.Errorf("first line = %q", lines[0])
	}
	for _, l := range lines[1:] {
		if !strings.HasPrefix(l, "/nope: note GRM2001 ") {
			t.Errorf("extra line = %q", l)
		}
	}
}

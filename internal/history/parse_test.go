package history_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/samber/mo"

	"sheetnav/internal/diag"
	"sheetnav/internal/history"
	"sheetnav/internal/plugin"
	"sheetnav/internal/sheet"
	"sheetnav/internal/testkit"
)

// mustTok wraps a constructor call: mustTok(t)(history.NewX(...)).
func mustTok(t *testing.T) func(history.Token, error) history.Token {
	return func(tok history.Token, err error) history.Token {
		t.Helper()
		if err != nil {
			t.Fatalf("constructor: %v", err)
		}
		return tok
	}
}

func TestScenarioCellClear(t *testing.T) {
	const in = "/cell/A1/clear"
	got := history.Parse(in)
	want := mustTok(t)(history.NewCellClear(history.Detached(), testkit.Cell))
	if got != want {
		t.Fatalf("Parse(%q) = %s %q, want %s", in, got.Kind(), got.Fragment(), want.Kind())
	}
	if sel := got.Selection().MustGet(); sel.Anchor() != sheet.AnchorNone || sel.Selection().String() != "A1" {
		t.Fatalf("selection = %s", sel)
	}
	if got.Fragment() != in {
		t.Fatalf("Fragment() = %q, want %q", got.Fragment(), in)
	}
}

func TestScenarioCellRangeClear(t *testing.T) {
	const in = "/cell/B2:C3/top-left/clear"
	got := history.Parse(in)
	if got.Kind() != history.CellClear {
		t.Fatalf("Parse(%q).Kind() = %s", in, got.Kind())
	}
	sel := got.Selection().MustGet()
	if sel.Selection().Kind() != sheet.SelectionCellRange || sel.Selection().String() != "B2:C3" {
		t.Fatalf("selection = %s %s", sel.Selection().Kind(), sel.Selection())
	}
	if sel.Anchor() != sheet.AnchorTopLeft {
		t.Fatalf("anchor = %q", sel.Anchor())
	}
	if got.Fragment() != in {
		t.Fatalf("Fragment() = %q", got.Fragment())
	}
}

func TestScenarioFormulaSave(t *testing.T) {
	const in = "/cell/A1/formula/save/=12+3"
	got := history.Parse(in)
	if got.Kind() != history.CellFormulaSave {
		t.Fatalf("Parse(%q).Kind() = %s", in, got.Kind())
	}
	if text := got.Text().OrEmpty(); text != "=12+3" {
		t.Fatalf("Text() = %q", text)
	}
	if got.Fragment() != in {
		t.Fatalf("Fragment() = %q, want %q", got.Fragment(), in)
	}
}

func TestScenarioPluginDelete(t *testing.T) {
	const in = "/plugin/TestPluginName123/delete"
	got := history.Parse(in)
	want := mustTok(t)(history.NewPluginDelete(plugin.MustName("TestPluginName123")))
	if got != want {
		t.Fatalf("Parse(%q) = %s", in, got.Kind())
	}
	cleared := got.ClearAction()
	if cleared.Kind() != history.PluginListSelect {
		t.Fatalf("ClearAction() = %s", cleared.Kind())
	}
	if cleared.Offset().IsPresent() || cleared.Count().IsPresent() {
		t.Fatalf("ClearAction() offset/count = %v/%v, want absent", cleared.Offset(), cleared.Count())
	}
}

func TestScenarioUnknown(t *testing.T) {
	for _, in := range []string{
		"/cell/not-a-reference",
		"/cell",
		"/nope",
		"/123/Name/cell/A1/explode",
		"/cell/A1/top-left",
		"/cell/A1/freeze/now",
		"/label/Label123",
		"/123/Name/plugin",
		"/plugin/*/count/1/offset/2",
		"/column/A/insert-after/0",
		"/row/1/insert-before/x",
		"/cell/A1/style/border",
		"/cell/A1/style/color/save/%23zz",
		"/cell/A1/formula/save/%zz",
		"/cell/B1/freeze",
		"/123/cell/A1",
		"/123/%ff",
		"/locale",
		"/*/delete",
		"/cell//clear",
		"/cell/XFE1",
		"/cell/A0/clear",
		"/label/XFE1/delete",
		"##/cell/A1",
	} {
		got := history.Parse(in)
		if got.Kind() != history.Unknown {
			t.Errorf("Parse(%q) = %s %q, want Unknown", in, got.Kind(), got.Fragment())
			continue
		}
		if got.Raw() != in || got.Fragment() != in {
			t.Errorf("Unknown must keep %q, got raw %q", in, got.Raw())
		}
	}
}

func TestScenarioLabelDelete(t *testing.T) {
	const in = "/123/SpreadsheetName456/label/Label123/delete"
	got := history.Parse(in)
	if got.Kind() != history.LabelDelete {
		t.Fatalf("Parse(%q).Kind() = %s", in, got.Kind())
	}
	s := got.Spreadsheet().MustGet()
	if s.ID != 123 || s.Name.String() != "SpreadsheetName456" {
		t.Fatalf("spreadsheet = %v %s", s.ID, s.Name)
	}
	if got.Label().MustGet().String() != "Label123" {
		t.Fatalf("label = %v", got.Label())
	}
}

func TestParseEmptyIsCreate(t *testing.T) {
	for _, in := range []string{"", "/", "//"} {
		if got := history.Parse(in); got != history.NewSpreadsheetCreate() {
			t.Errorf("Parse(%q) = %s", in, got.Kind())
		}
	}
	if got := history.NewSpreadsheetCreate().Fragment(); got != "/" {
		t.Fatalf("create renders %q", got)
	}
}

func TestParseNormalises(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/cell/A1/clear/", "/cell/A1/clear"},
		{"cell/A1", "/cell/A1"},
		{"#/cell/A1", "/cell/A1"},
		{"#/123/Sheet/label/Label123/delete", "/123/Sheet/label/Label123/delete"},
		{"/cell/b2", "/cell/B2"},
		{"/cell/C3:B2", "/cell/B2:C3/bottom-right"},
		{"/cell/A1:A1", "/cell/A1"},
		{"/column/c:a/left", "/column/A:C/left"},
		{"/row/3:1", "/row/1:3/bottom"},
		{"/plugin", "/plugin/*"},
		{"/cell/A1/formula/save/=1/2", "/cell/A1/formula/save/=1%2F2"},
		{"/cell/A1/formula/save/", "/cell/A1/formula/save"},
		{"/123/My%20Sheet/cell/A1/style/color/save/RED", "/123/My%20Sheet/cell/A1/style/color/save/%23ff0000"},
		{"/123/Sheet/locale/save/en-au", "/123/Sheet/locale/save/en-AU"},
	}
	for _, tt := range tests {
		got := history.Parse(tt.in)
		if got.Kind() == history.Unknown {
			t.Errorf("Parse(%q) = Unknown", tt.in)
			continue
		}
		if got.Fragment() != tt.want {
			t.Errorf("Parse(%q).Fragment() = %q, want %q", tt.in, got.Fragment(), tt.want)
		}
	}
}

func TestParseKinds(t *testing.T) {
	tests := []struct {
		in   string
		want history.Kind
	}{
		{"/123", history.SpreadsheetLoad},
		{"/*", history.SpreadsheetListSelect},
		{"/*/delete/42", history.SpreadsheetListDelete},
		{"/123/Sheet", history.SpreadsheetSelect},
		{"/123/Sheet/rename", history.SpreadsheetRenameSelect},
		{"/123/Sheet/rename/save/Other", history.SpreadsheetRenameSave},
		{"/123/Sheet/precision", history.MetadataPropertySelect},
		{"/123/Sheet/label", history.LabelCreate},
		{"/123/Sheet/label/Total", history.LabelSelect},
		{"/123/Sheet/label/Total/save/A1:B2", history.LabelSave},
		{"/plugin/Foo", history.PluginSelect},
		{"/plugin/Foo/save/x", history.PluginSave},
		{"/cell/A1/menu", history.CellMenu},
		{"/cell/A1/labels", history.CellLabels},
		{"/cell/A1/freeze", history.CellFreeze},
		{"/cell/A1/pattern/date-format", history.CellPatternSelect},
		{"/cell/A1/pattern/date-format/save/yyyy-MM-dd", history.CellPatternSave},
		{"/cell/A1/value-type", history.CellValueTypeSelect},
		{"/column/A:B/right/unfreeze", history.ColumnUnfreeze},
		{"/row/4/insert-before/2", history.RowInsertBefore},
	}
	for _, tt := range tests {
		if got := history.Parse(tt.in).Kind(); got != tt.want {
			t.Errorf("Parse(%q).Kind() = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseWithOptionsReportsOnce(t *testing.T) {
	tests := []struct {
		in   string
		code diag.Code
		span string
	}{
		{"/cell/not-a-reference", diag.ValBadSelection, "not-a-reference"},
		{"/nope/x", diag.GrmUnknownLiteral, "nope"},
		{"/cell/A1/clear/x", diag.GrmUnexpectedSegment, "x"},
		{"/locale", diag.GrmScopeRequired, "locale"},
		{"/1/S/plugin", diag.GrmScopeForbidden, "plugin"},
		{"/cell/B1/freeze", diag.ValRejected, "freeze"},
		{"/cell/A1/top-left", diag.ValBadAnchor, "top-left"},
		{"/column/A/insert-after/0", diag.ValBadNumber, "0"},
		{"/cell/A1/formula/save/%zz", diag.SegBadEscape, "%zz"},
		{"/cell", diag.GrmMissingSegment, ""},
	}
	for _, tt := range tests {
		bag := diag.NewBag(10)
		tok := history.ParseWithOptions(tt.in, history.Options{Reporter: diag.BagReporter{Bag: bag}})
		if tok.Kind() != history.Unknown {
			t.Errorf("%q: kind %s", tt.in, tok.Kind())
			continue
		}
		items := bag.Items()
		if len(items) != 1 {
			t.Errorf("%q: %d diagnostics, want 1", tt.in, len(items))
			continue
		}
		d := items[0]
		if d.Code != tt.code {
			t.Errorf("%q: code %s, want %s", tt.in, d.Code.ID(), tt.code.ID())
		}
		if got := d.Primary.Slice(tt.in); got != tt.span {
			t.Errorf("%q: span covers %q, want %q", tt.in, got, tt.span)
		}
		if err := testkit.CheckDiagnosticSpans(tt.in, items); err != nil {
			t.Errorf("%q: %v", tt.in, err)
		}
	}
}

func TestUnknownLiteralSuggestion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/colum/A", `did you mean "column"?`},
		{"/celx/A1", `did you mean "cell"?`},
		{"/cell/A1/clea", `did you mean "clear"?`},
		{"/cell/A1/style/colr", `did you mean "color"?`},
		{"/1/S/LOCALE", `did you mean "locale"?`},
		{"/plugin/P/delte", `did you mean "delete"?`},
		{"/zzzz/A1", ""},
	}
	for _, tt := range tests {
		bag := diag.NewBag(10)
		history.ParseWithOptions(tt.in, history.Options{Reporter: diag.BagReporter{Bag: bag}})
		items := bag.Items()
		if len(items) != 1 {
			t.Errorf("%q: %d diagnostics", tt.in, len(items))
			continue
		}
		got := ""
		if notes := items[0].Notes; len(notes) > 0 {
			got = notes[0].Msg
		}
		if got != tt.want {
			t.Errorf("%q: note %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseWithOptionsSilentOnSuccess(t *testing.T) {
	bag := diag.NewBag(10)
	history.ParseWithOptions("/cell/A1", history.Options{Reporter: diag.BagReporter{Bag: bag}})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diag.FormatShort(bag.Items(), false))
	}
}

func TestLiteralsIncludeMetadata(t *testing.T) {
	lits := make(map[string]bool)
	for _, l := range history.Literals() {
		lits[l] = true
	}
	for _, want := range []string{"cell", "column", "row", "label", "rename", "plugin", "*", "locale", "two-digit-year"} {
		if !lits[want] {
			t.Errorf("missing literal %q", want)
		}
	}
}

func TestParseListPaging(t *testing.T) {
	got := history.Parse("/plugin/*/offset/1/count/2")
	want := mustTok(t)(history.NewPluginListSelect(mo.Some(1), mo.Some(2)))
	if diff := cmp.Diff(history.Describe(want), history.Describe(got)); diff != "" {
		t.Fatalf("token mismatch (-want +got):\n%s", diff)
	}
}

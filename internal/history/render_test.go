package history_test

import (
	"testing"

	"github.com/samber/mo"

	"sheetnav/internal/history"
	"sheetnav/internal/plugin"
	"sheetnav/internal/sheet"
	"sheetnav/internal/testkit"
)

func TestRoundTripSamples(t *testing.T) {
	for _, tok := range testkit.Samples() {
		got := history.Parse(tok.Fragment())
		if got != tok {
			t.Errorf("Parse(%q) = %s %q, want %s", tok.Fragment(), got.Kind(), got.Fragment(), tok.Kind())
		}
	}
}

func TestFragments(t *testing.T) {
	s := mo.Some(testkit.Spreadsheet)
	tests := []struct {
		tok  func() (history.Token, error)
		want string
	}{
		{func() (history.Token, error) { return history.NewCellClear(history.Detached(), testkit.CellRange) }, "/cell/B2:C3/top-left/clear"},
		{func() (history.Token, error) { return history.NewCellSelect(s, testkit.Cell) }, "/123/SpreadsheetName456/cell/A1"},
		{func() (history.Token, error) { return history.NewColumnSelect(s, testkit.ColumnRange) }, "/123/SpreadsheetName456/column/B:D/right"},
		{func() (history.Token, error) {
			return history.NewRowInsertAfter(history.Detached(), testkit.RowRange, 2)
		}, "/row/2:5/top/insert-after/2"},
		{func() (history.Token, error) {
			return history.NewCellFormulaSave(history.Detached(), testkit.Cell, mo.Some("=12+3"))
		}, "/cell/A1/formula/save/=12+3"},
		{func() (history.Token, error) {
			return history.NewCellFormulaSave(history.Detached(), testkit.Cell, mo.Some(""))
		}, "/cell/A1/formula/save"},
		{func() (history.Token, error) { return history.NewCellLabels(history.Detached(), testkit.Label) }, "/cell/Label123/labels"},
		{func() (history.Token, error) {
			return history.NewLabelDelete(testkit.Spreadsheet, sheet.MustLabelName("Label123"))
		}, "/123/SpreadsheetName456/label/Label123/delete"},
		{func() (history.Token, error) {
			return history.NewPluginSave(plugin.MustName("P1"), mo.Some("a/b c"))
		}, "/plugin/P1/save/a%2Fb%20c"},
		{func() (history.Token, error) { return history.NewSpreadsheetListSelect(mo.Some(5), mo.None[int]()) }, "/*/offset/5"},
		{func() (history.Token, error) { return history.NewPluginListSelect(mo.None[int](), mo.Some(9)) }, "/plugin/*/count/9"},
	}
	for _, tt := range tests {
		tok, err := tt.tok()
		if err != nil {
			t.Fatalf("constructor for %q: %v", tt.want, err)
		}
		if got := tok.Fragment(); got != tt.want {
			t.Errorf("Fragment() = %q, want %q", got, tt.want)
		}
		if tok.String() != tok.Fragment() {
			t.Errorf("String() differs from Fragment() for %q", tt.want)
		}
	}
}

func TestAnchorRendering(t *testing.T) {
	rng := sheet.CellRangeSelection(sheet.MustCell("B2"), sheet.MustCell("C3"))
	for _, a := range sheet.AnchorsFor(sheet.SelectionCellRange) {
		as, err := sheet.NewAnchoredSelection(rng, a)
		if err != nil {
			t.Fatal(err)
		}
		tok := mustTok(t)(history.NewCellSelect(history.Detached(), as))
		if want := "/cell/B2:C3/" + a.String(); tok.Fragment() != want {
			t.Errorf("Fragment() = %q, want %q", tok.Fragment(), want)
		}
	}
	singles := []struct {
		make func() (history.Token, error)
		want string
	}{
		{func() (history.Token, error) { return history.NewCellSelect(history.Detached(), testkit.Cell) }, "/cell/A1"},
		{func() (history.Token, error) { return history.NewColumnSelect(history.Detached(), testkit.Column) }, "/column/A"},
		{func() (history.Token, error) { return history.NewRowSelect(history.Detached(), testkit.Row) }, "/row/1"},
	}
	for _, tt := range singles {
		tok, err := tt.make()
		if err != nil {
			t.Fatal(err)
		}
		if got := tok.Fragment(); got != tt.want {
			t.Errorf("single selection renders %q, want %q without anchor", got, tt.want)
		}
	}
}

func TestUnknownRendersRaw(t *testing.T) {
	tok := history.NewUnknown("/what/ever")
	if tok.Fragment() != "/what/ever" || tok.Kind() != history.Unknown {
		t.Fatalf("got %s %q", tok.Kind(), tok.Fragment())
	}
	var zero history.Token
	if zero != history.NewUnknown("") {
		t.Fatal("zero token must be Unknown(\"\")")
	}
}

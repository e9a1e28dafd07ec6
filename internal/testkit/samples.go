package testkit

import (
	"github.com/samber/mo"

	"sheetnav/internal/history"
	"sheetnav/internal/metadata"
	"sheetnav/internal/pattern"
	"sheetnav/internal/plugin"
	"sheetnav/internal/sheet"
	"sheetnav/internal/style"
)

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Spreadsheet is the scope used by the samples, /123/SpreadsheetName456.
var Spreadsheet = history.Spreadsheet{
	ID:   123,
	Name: sheet.MustSpreadsheetName("SpreadsheetName456"),
}

// Cell, CellRange, Column, ColumnRange, Row, RowRange and Label are anchored
// selections shared by tests.
var (
	Cell        = sheet.Anchored(sheet.CellSelection(sheet.MustCell("A1")))
	CellRange   = must(sheet.NewAnchoredSelection(sheet.CellRangeSelection(sheet.MustCell("B2"), sheet.MustCell("C3")), sheet.AnchorTopLeft))
	Column      = sheet.Anchored(sheet.ColumnSelection(must(sheet.ParseColumn("A"))))
	ColumnRange = sheet.Anchored(sheet.ColumnRangeSelection(must(sheet.ParseColumn("B")), must(sheet.ParseColumn("D"))))
	Row         = sheet.Anchored(sheet.RowSelection(must(sheet.ParseRow("1"))))
	RowRange    = must(sheet.NewAnchoredSelection(sheet.RowRangeSelection(must(sheet.ParseRow("2")), must(sheet.ParseRow("5"))), sheet.AnchorTop))
	Label       = sheet.Anchored(sheet.LabelSelection(sheet.MustLabelName("Label123")))
)

// Samples returns at least one token of every kind, scoped and detached
// where the kind allows both.
func Samples() []history.Token {
	s := Spreadsheet
	scoped := mo.Some(s)
	detached := history.Detached()
	none := mo.None[int]()
	name := plugin.MustName("TestPluginName123")
	label := sheet.MustLabelName("Label123")

	out := []history.Token{
		history.NewSpreadsheetCreate(),
		history.NewSpreadsheetLoad(123),
		must(history.NewSpreadsheetListSelect(none, none)),
		must(history.NewSpreadsheetListSelect(mo.Some(10), mo.Some(20))),
		must(history.NewSpreadsheetListSelect(none, mo.Some(5))),
		history.NewSpreadsheetListDelete(7),
		must(history.NewPluginListSelect(none, none)),
		must(history.NewPluginListSelect(mo.Some(1), none)),
		must(history.NewPluginListSelect(mo.Some(0), mo.Some(3))),
		must(history.NewPluginSelect(name)),
		must(history.NewPluginSave(name, mo.Some("{\"a\": 1}"))),
		must(history.NewPluginSave(name, mo.None[string]())),
		must(history.NewPluginDelete(name)),

		must(history.NewSpreadsheetSelect(s)),
		must(history.NewSpreadsheetRenameSelect(s)),
		must(history.NewSpreadsheetRenameSave(s, mo.Some(sheet.MustSpreadsheetName("New name/2")))),
		must(history.NewSpreadsheetRenameSave(s, mo.None[sheet.SpreadsheetName]())),
		must(history.NewMetadataPropertySelect(s, metadata.Locale)),
		must(history.NewMetadataPropertySave(s, metadata.Locale, mo.Some(must(metadata.Locale.ParseValue("en-AU"))))),
		must(history.NewMetadataPropertySave(s, metadata.DecimalSeparator, mo.None[metadata.Value]())),
		must(history.NewLabelCreate(s)),
		must(history.NewLabelSelect(s, label)),
		must(history.NewLabelSave(s, label, mo.Some(sheet.CellRangeSelection(sheet.MustCell("A1"), sheet.MustCell("B2"))))),
		must(history.NewLabelSave(s, label, mo.None[sheet.Selection]())),
		must(history.NewLabelDelete(s, label)),
	}

	for _, scope := range []mo.Option[history.Spreadsheet]{scoped, detached} {
		for _, sel := range []sheet.AnchoredSelection{Cell, CellRange, Label} {
			out = append(out,
				must(history.NewCellSelect(scope, sel)),
				must(history.NewCellClear(scope, sel)),
				must(history.NewCellDelete(scope, sel)),
				must(history.NewCellMenu(scope, sel)),
				must(history.NewCellLabels(scope, sel)),
				must(history.NewCellFormulaSelect(scope, sel)),
				must(history.NewCellFormulaSave(scope, sel, mo.Some("=12+3"))),
				must(history.NewCellFormulaSave(scope, sel, mo.Some("=1/2 & \"x?#\""))),
				must(history.NewCellFormulaSave(scope, sel, mo.None[string]())),
				must(history.NewCellStyleSelect(scope, sel, style.BackgroundColor)),
				must(history.NewCellStyleSave(scope, sel, style.Color, mo.Some(must(style.Color.ParseValue("#123456"))))),
				must(history.NewCellStyleSave(scope, sel, style.Width, mo.None[style.Value]())),
				must(history.NewCellPatternSelect(scope, sel, pattern.DateFormat)),
				must(history.NewCellPatternSave(scope, sel, pattern.NumberFormat, mo.Some(must(pattern.Parse(pattern.NumberFormat, "#,##0.00"))))),
				must(history.NewCellPatternSave(scope, sel, pattern.TimeParse, mo.None[pattern.Pattern]())),
				must(history.NewCellValueTypeSelect(scope, sel, mo.None[sheet.ValueType]())),
				must(history.NewCellValueTypeSelect(scope, sel, mo.Some(sheet.ValueTypeDate))),
			)
		}
		out = append(out,
			must(history.NewCellFreeze(scope, Cell)),
			must(history.NewCellUnfreeze(scope, Cell)),
		)
		for _, sel := range []sheet.AnchoredSelection{Column, ColumnRange} {
			out = append(out,
				must(history.NewColumnSelect(scope, sel)),
				must(history.NewColumnClear(scope, sel)),
				must(history.NewColumnDelete(scope, sel)),
				must(history.NewColumnMenu(scope, sel)),
				must(history.NewColumnInsertAfter(scope, sel, 1)),
				must(history.NewColumnInsertBefore(scope, sel, 3)),
			)
		}
		out = append(out,
			must(history.NewColumnFreeze(scope, Column)),
			must(history.NewColumnUnfreeze(scope, Column)),
		)
		for _, sel := range []sheet.AnchoredSelection{Row, RowRange} {
			out = append(out,
				must(history.NewRowSelect(scope, sel)),
				must(history.NewRowClear(scope, sel)),
				must(history.NewRowDelete(scope, sel)),
				must(history.NewRowMenu(scope, sel)),
				must(history.NewRowInsertAfter(scope, sel, 2)),
				must(history.NewRowInsertBefore(scope, sel, 1)),
			)
		}
		out = append(out,
			must(history.NewRowFreeze(scope, Row)),
			must(history.NewRowUnfreeze(scope, Row)),
		)
	}
	return out
}

package history

import (
	"github.com/samber/mo"

	"sheetnav/internal/metadata"
	"sheetnav/internal/pattern"
	"sheetnav/internal/plugin"
	"sheetnav/internal/sheet"
	"sheetnav/internal/style"
)

func build(t Token) (Token, error) {
	if err := validate(t); err != nil {
		return Token{}, err
	}
	return t, nil
}

// nonEmpty treats an empty payload as absent.
func nonEmpty(s mo.Option[string]) mo.Option[string] {
	if v, ok := s.Get(); ok && v != "" {
		return s
	}
	return mo.None[string]()
}

// NewUnknown wraps a fragment that matched no rule.
func NewUnknown(fragment string) Token {
	return Token{kind: Unknown, raw: fragment}
}

// NewSpreadsheetCreate is the root token, rendered "/".
func NewSpreadsheetCreate() Token {
	return Token{kind: SpreadsheetCreate}
}

func NewSpreadsheetLoad(id sheet.SpreadsheetID) Token {
	return Token{kind: SpreadsheetLoad, id: mo.Some(id)}
}

// NewSpreadsheetListSelect pages through stored spreadsheets; offset and count
// are independently optional and must not be negative.
func NewSpreadsheetListSelect(offset, count mo.Option[int]) (Token, error) {
	return build(Token{kind: SpreadsheetListSelect, offset: offset, count: count})
}

func NewSpreadsheetListDelete(id sheet.SpreadsheetID) Token {
	return Token{kind: SpreadsheetListDelete, id: mo.Some(id)}
}

// NewPluginListSelect pages through installed plugins; offset and count are
// independently optional and must not be negative.
func NewPluginListSelect(offset, count mo.Option[int]) (Token, error) {
	return build(Token{kind: PluginListSelect, offset: offset, count: count})
}

func NewPluginSelect(name plugin.Name) (Token, error) {
	return build(Token{kind: PluginSelect, plugin: name})
}

func NewPluginSave(name plugin.Name, payload mo.Option[string]) (Token, error) {
	return build(Token{kind: PluginSave, plugin: name, text: nonEmpty(payload)})
}

func NewPluginDelete(name plugin.Name) (Token, error) {
	return build(Token{kind: PluginDelete, plugin: name})
}

func NewSpreadsheetSelect(s Spreadsheet) (Token, error) {
	return build(Token{kind: SpreadsheetSelect, scope: mo.Some(s)})
}

func NewSpreadsheetRenameSelect(s Spreadsheet) (Token, error) {
	return build(Token{kind: SpreadsheetRenameSelect, scope: mo.Some(s)})
}

func NewSpreadsheetRenameSave(s Spreadsheet, name mo.Option[sheet.SpreadsheetName]) (Token, error) {
	if n, ok := name.Get(); ok && n.IsZero() {
		name = mo.None[sheet.SpreadsheetName]()
	}
	return build(Token{kind: SpreadsheetRenameSave, scope: mo.Some(s), newName: name})
}

func NewMetadataPropertySelect(s Spreadsheet, p metadata.Property) (Token, error) {
	return build(Token{kind: MetadataPropertySelect, scope: mo.Some(s), metadataProperty: p})
}

func NewMetadataPropertySave(s Spreadsheet, p metadata.Property, v mo.Option[metadata.Value]) (Token, error) {
	return build(Token{kind: MetadataPropertySave, scope: mo.Some(s), metadataProperty: p, metadataValue: v})
}

func NewLabelCreate(s Spreadsheet) (Token, error) {
	return build(Token{kind: LabelCreate, scope: mo.Some(s)})
}

func NewLabelSelect(s Spreadsheet, l sheet.LabelName) (Token, error) {
	return build(Token{kind: LabelSelect, scope: mo.Some(s), label: l})
}

// NewLabelSave maps l to a cell or cell range; an absent target clears it.
func NewLabelSave(s Spreadsheet, l sheet.LabelName, target mo.Option[sheet.Selection]) (Token, error) {
	return build(Token{kind: LabelSave, scope: mo.Some(s), label: l, target: target})
}

func NewLabelDelete(s Spreadsheet, l sheet.LabelName) (Token, error) {
	return build(Token{kind: LabelDelete, scope: mo.Some(s), label: l})
}

func selectionToken(k Kind, scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection) Token {
	return Token{kind: k, scope: scope, selection: sel}
}

func NewCellSelect(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection) (Token, error) {
	return build(selectionToken(CellSelect, scope, sel))
}

func NewCellClear(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection) (Token, error) {
	return build(selectionToken(CellClear, scope, sel))
}

func NewCellDelete(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection) (Token, error) {
	return build(selectionToken(CellDelete, scope, sel))
}

// NewCellFreeze requires a selection starting at A1.
func NewCellFreeze(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection) (Token, error) {
	return build(selectionToken(CellFreeze, scope, sel))
}

func NewCellUnfreeze(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection) (Token, error) {
	return build(selectionToken(CellUnfreeze, scope, sel))
}

func NewCellMenu(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection) (Token, error) {
	return build(selectionToken(CellMenu, scope, sel))
}

// NewCellLabels lists the labels that point into sel.
func NewCellLabels(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection) (Token, error) {
	return build(selectionToken(CellLabels, scope, sel))
}

func NewCellFormulaSelect(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection) (Token, error) {
	return build(selectionToken(CellFormulaSelect, scope, sel))
}

// NewCellFormulaSave carries the formula text verbatim; empty text is absent.
func NewCellFormulaSave(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection, text mo.Option[string]) (Token, error) {
	t := selectionToken(CellFormulaSave, scope, sel)
	t.text = nonEmpty(text)
	return build(t)
}

func NewCellStyleSelect(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection, p style.Property) (Token, error) {
	t := selectionToken(CellStyleSelect, scope, sel)
	t.styleProperty = p
	return build(t)
}

func NewCellStyleSave(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection, p style.Property, v mo.Option[style.Value]) (Token, error) {
	t := selectionToken(CellStyleSave, scope, sel)
	t.styleProperty = p
	t.styleValue = v
	return build(t)
}

func NewCellPatternSelect(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection, k pattern.Kind) (Token, error) {
	t := selectionToken(CellPatternSelect, scope, sel)
	t.patternKind = k
	return build(t)
}

func NewCellPatternSave(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection, k pattern.Kind, p mo.Option[pattern.Pattern]) (Token, error) {
	t := selectionToken(CellPatternSave, scope, sel)
	t.patternKind = k
	t.pattern = p
	return build(t)
}

func NewCellValueTypeSelect(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection, vt mo.Option[sheet.ValueType]) (Token, error) {
	t := selectionToken(CellValueTypeSelect, scope, sel)
	t.valueType = vt
	return build(t)
}

func NewColumnSelect(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection) (Token, error) {
	return build(selectionToken(ColumnSelect, scope, sel))
}

func NewColumnClear(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection) (Token, error) {
	return build(selectionToken(ColumnClear, scope, sel))
}

func NewColumnDelete(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection) (Token, error) {
	return build(selectionToken(ColumnDelete, scope, sel))
}

// NewColumnFreeze requires a selection starting at column A.
func NewColumnFreeze(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection) (Token, error) {
	return build(selectionToken(ColumnFreeze, scope, sel))
}

func NewColumnUnfreeze(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection) (Token, error) {
	return build(selectionToken(ColumnUnfreeze, scope, sel))
}

func NewColumnMenu(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection) (Token, error) {
	return build(selectionToken(ColumnMenu, scope, sel))
}

func NewColumnInsertAfter(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection, n int) (Token, error) {
	t := selectionToken(ColumnInsertAfter, scope, sel)
	t.insert = n
	return build(t)
}

func NewColumnInsertBefore(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection, n int) (Token, error) {
	t := selectionToken(ColumnInsertBefore, scope, sel)
	t.insert = n
	return build(t)
}

func NewRowSelect(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection) (Token, error) {
	return build(selectionToken(RowSelect, scope, sel))
}

func NewRowClear(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection) (Token, error) {
	return build(selectionToken(RowClear, scope, sel))
}

func NewRowDelete(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection) (Token, error) {
	return build(selectionToken(RowDelete, scope, sel))
}

// NewRowFreeze requires a selection starting at row 1.
func NewRowFreeze(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection) (Token, error) {
	return build(selectionToken(RowFreeze, scope, sel))
}

func NewRowUnfreeze(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection) (Token, error) {
	return build(selectionToken(RowUnfreeze, scope, sel))
}

func NewRowMenu(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection) (Token, error) {
	return build(selectionToken(RowMenu, scope, sel))
}

func NewRowInsertAfter(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection, n int) (Token, error) {
	t := selectionToken(RowInsertAfter, scope, sel)
	t.insert = n
	return build(t)
}

func NewRowInsertBefore(scope mo.Option[Spreadsheet], sel sheet.AnchoredSelection, n int) (Token, error) {
	t := selectionToken(RowInsertBefore, scope, sel)
	t.insert = n
	return build(t)
}

// familySelect returns the plain select kind for a selection family.
func familySelect(f Family) Kind {
	switch f {
	case FamilyColumn:
		return ColumnSelect
	case FamilyRow:
		return RowSelect
	}
	return CellSelect
}

func familyOf(f sheet.Family) Family {
	switch f {
	case sheet.FamilyColumn:
		return FamilyColumn
	case sheet.FamilyRow:
		return FamilyRow
	case sheet.FamilyCell:
		return FamilyCell
	}
	return FamilyNone
}

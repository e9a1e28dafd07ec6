package history

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/mo"

	"sheetnav/internal/fragment"
)

// Path literals shared by the renderer and the parser.
const (
	litCell         = "cell"
	litColumn       = "column"
	litRow          = "row"
	litLabel        = "label"
	litRename       = "rename"
	litPlugin       = "plugin"
	litList         = "*"
	litSave         = "save"
	litDelete       = "delete"
	litClear        = "clear"
	litFreeze       = "freeze"
	litUnfreeze     = "unfreeze"
	litMenu         = "menu"
	litLabels       = "labels"
	litFormula      = "formula"
	litStyle        = "style"
	litPattern      = "pattern"
	litValueType    = "value-type"
	litInsertAfter  = "insert-after"
	litInsertBefore = "insert-before"
	litOffset       = "offset"
	litCount        = "count"
)

// Fragment renders the canonical URL fragment of t. Parse reverses it.
func (t Token) Fragment() string {
	if t.kind == Unknown {
		return t.raw
	}
	var b strings.Builder
	if s, ok := t.scope.Get(); ok {
		b.WriteByte('/')
		b.WriteString(s.ID.String())
		b.WriteByte('/')
		b.WriteString(fragment.Encode(s.Name.String()))
	}

	switch t.kind {
	case SpreadsheetCreate:
		return "/"
	case SpreadsheetLoad:
		seg(&b, t.id.OrEmpty().String())
	case SpreadsheetListSelect:
		seg(&b, litList)
		page(&b, t.offset, t.count)
	case SpreadsheetListDelete:
		seg(&b, litList, litDelete, t.id.OrEmpty().String())
	case PluginListSelect:
		seg(&b, litPlugin, litList)
		page(&b, t.offset, t.count)
	case PluginSelect:
		seg(&b, litPlugin, t.plugin.String())
	case PluginSave:
		seg(&b, litPlugin, t.plugin.String(), litSave)
		payload(&b, t.text)
	case PluginDelete:
		seg(&b, litPlugin, t.plugin.String(), litDelete)
	case SpreadsheetSelect:
	case SpreadsheetRenameSelect:
		seg(&b, litRename)
	case SpreadsheetRenameSave:
		seg(&b, litRename, litSave)
		payload(&b, stringOf(t.newName))
	case MetadataPropertySelect:
		seg(&b, t.metadataProperty.String())
	case MetadataPropertySave:
		seg(&b, t.metadataProperty.String(), litSave)
		payload(&b, stringOf(t.metadataValue))
	case LabelCreate:
		seg(&b, litLabel)
	case LabelSelect:
		seg(&b, litLabel, t.label.String())
	case LabelSave:
		seg(&b, litLabel, t.label.String(), litSave)
		if target, ok := t.target.Get(); ok {
			seg(&b, target.String())
		}
	case LabelDelete:
		seg(&b, litLabel, t.label.String(), litDelete)
	default:
		t.renderSelection(&b)
	}
	return b.String()
}

func (t Token) renderSelection(b *strings.Builder) {
	switch t.kind.Family() {
	case FamilyCell:
		seg(b, litCell)
	case FamilyColumn:
		seg(b, litColumn)
	case FamilyRow:
		seg(b, litRow)
	default:
		return
	}
	seg(b, t.selection.Selection().String())
	if a := t.selection.Anchor(); a.String() != "" {
		seg(b, a.String())
	}

	switch t.kind {
	case CellClear, ColumnClear, RowClear:
		seg(b, litClear)
	case CellDelete, ColumnDelete, RowDelete:
		seg(b, litDelete)
	case CellFreeze, ColumnFreeze, RowFreeze:
		seg(b, litFreeze)
	case CellUnfreeze, ColumnUnfreeze, RowUnfreeze:
		seg(b, litUnfreeze)
	case CellMenu, ColumnMenu, RowMenu:
		seg(b, litMenu)
	case CellLabels:
		seg(b, litLabels)
	case CellFormulaSelect:
		seg(b, litFormula)
	case CellFormulaSave:
		seg(b, litFormula, litSave)
		payload(b, t.text)
	case CellStyleSelect:
		seg(b, litStyle, t.styleProperty.String())
	case CellStyleSave:
		seg(b, litStyle, t.styleProperty.String(), litSave)
		payload(b, stringOf(t.styleValue))
	case CellPatternSelect:
		seg(b, litPattern, t.patternKind.String())
	case CellPatternSave:
		seg(b, litPattern, t.patternKind.String(), litSave)
		payload(b, stringOf(t.pattern))
	case CellValueTypeSelect:
		seg(b, litValueType)
		if vt, ok := t.valueType.Get(); ok {
			seg(b, vt.String())
		}
	case ColumnInsertAfter, RowInsertAfter:
		seg(b, litInsertAfter, strconv.Itoa(t.insert))
	case ColumnInsertBefore, RowInsertBefore:
		seg(b, litInsertBefore, strconv.Itoa(t.insert))
	}
}

func seg(b *strings.Builder, parts ...string) {
	for _, p := range parts {
		b.WriteByte('/')
		b.WriteString(p)
	}
}

func payload(b *strings.Builder, v mo.Option[string]) {
	if s, ok := v.Get(); ok && s != "" {
		seg(b, fragment.Encode(s))
	}
}

func page(b *strings.Builder, offset, count mo.Option[int]) {
	if n, ok := offset.Get(); ok {
		seg(b, litOffset, strconv.Itoa(n))
	}
	if n, ok := count.Get(); ok {
		seg(b, litCount, strconv.Itoa(n))
	}
}

func stringOf[T fmt.Stringer](v mo.Option[T]) mo.Option[string] {
	if x, ok := v.Get(); ok {
		return mo.Some(x.String())
	}
	return mo.None[string]()
}

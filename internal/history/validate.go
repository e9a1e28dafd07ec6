package history

import (
	"fmt"

	"sheetnav/internal/sheet"
)

func invalid(k Kind, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidArgument, k, fmt.Sprintf(format, args...))
}

// validate checks the fields of t against its kind. Every constructor and
// every transition that rebuilds a token goes through here.
func validate(t Token) error {
	k := t.kind
	if !k.valid() {
		return fmt.Errorf("%w: unknown kind %d", ErrInvalidArgument, uint8(k))
	}
	if k == Unknown {
		return nil
	}
	if err := validateScope(t); err != nil {
		return err
	}

	switch k.Family() {
	case FamilyCell, FamilyColumn, FamilyRow:
		if err := validateSelection(t); err != nil {
			return err
		}
	case FamilyLabel:
		if k != LabelCreate && t.label.IsZero() {
			return invalid(k, "missing label")
		}
	case FamilyPlugin:
		if t.plugin.IsZero() {
			return invalid(k, "missing plugin name")
		}
	case FamilyMetadata:
		if t.metadataProperty == 0 {
			return invalid(k, "missing metadata property")
		}
	}

	switch k {
	case SpreadsheetLoad, SpreadsheetListDelete:
		if t.id.IsAbsent() {
			return invalid(k, "missing spreadsheet id")
		}
	case SpreadsheetListSelect, PluginListSelect:
		if n, ok := t.offset.Get(); ok && n < 0 {
			return invalid(k, "negative offset %d", n)
		}
		if n, ok := t.count.Get(); ok && n < 0 {
			return invalid(k, "negative count %d", n)
		}
	case LabelSave:
		if sel, ok := t.target.Get(); ok {
			switch sel.Kind() {
			case sheet.SelectionCell, sheet.SelectionCellRange:
			default:
				return invalid(k, "label target %s is not a cell or cell range", sel)
			}
		}
	case MetadataPropertySave:
		if v, ok := t.metadataValue.Get(); ok && v.Property() != t.metadataProperty {
			return invalid(k, "value for %s given to %s", v.Property(), t.metadataProperty)
		}
	case CellStyleSelect, CellStyleSave:
		if t.styleProperty == 0 {
			return invalid(k, "missing style property")
		}
		if v, ok := t.styleValue.Get(); ok && v.Property() != t.styleProperty {
			return invalid(k, "value for %s given to %s", v.Property(), t.styleProperty)
		}
	case CellPatternSelect, CellPatternSave:
		if t.patternKind == 0 {
			return invalid(k, "missing pattern kind")
		}
		if p, ok := t.pattern.Get(); ok && p.Kind() != t.patternKind {
			return invalid(k, "%s pattern given to %s", p.Kind(), t.patternKind)
		}
	case ColumnInsertAfter, ColumnInsertBefore, RowInsertAfter, RowInsertBefore:
		if t.insert <= 0 {
			return invalid(k, "insert count must be positive, got %d", t.insert)
		}
	}
	return nil
}

func validateScope(t Token) error {
	k := t.kind
	s, scoped := t.scope.Get()
	switch kinds[k].scope {
	case scopeRequired:
		if !scoped {
			return invalid(k, "missing spreadsheet")
		}
	case scopeForbidden:
		if scoped {
			return invalid(k, "must not be scoped to a spreadsheet")
		}
	}
	if scoped && s.Name.IsZero() {
		return invalid(k, "missing spreadsheet name")
	}
	return nil
}

func validateSelection(t Token) error {
	k := t.kind
	if t.selection.IsZero() {
		return invalid(k, "missing selection")
	}
	sel := t.selection.Selection()
	var want sheet.Family
	switch k.Family() {
	case FamilyCell:
		want = sheet.FamilyCell
	case FamilyColumn:
		want = sheet.FamilyColumn
	case FamilyRow:
		want = sheet.FamilyRow
	}
	if sel.Family() != want {
		return invalid(k, "%s selection %s", sel.Kind(), sel)
	}
	switch k.Action() {
	case ActionFreeze, ActionUnfreeze:
		if !sel.StartsAtOrigin() {
			return invalid(k, "%s does not start at the first column or row", sel)
		}
	}
	return nil
}

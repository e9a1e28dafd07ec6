package history

import (
	"fmt"

	"github.com/samber/mo"

	"sheetnav/internal/metadata"
	"sheetnav/internal/pattern"
	"sheetnav/internal/sheet"
	"sheetnav/internal/style"
)

func ignored(t Token, op string) error {
	return fmt.Errorf("%w: %s on %s", ErrIgnored, op, t.kind)
}

func pluginList() Token {
	return Token{kind: PluginListSelect}
}

func spreadsheetList() Token {
	return Token{kind: SpreadsheetListSelect}
}

// spreadsheetSelect keeps only the scope; callers guarantee it is present.
func spreadsheetSelect(t Token) Token {
	return Token{kind: SpreadsheetSelect, scope: t.scope}
}

// familySelectOf keeps the scope and selection of a cell, column or row token.
func familySelectOf(t Token) Token {
	return selectionToken(familySelect(t.kind.Family()), t.scope, t.selection)
}

// Close leaves any action and dialog. Select tokens close to themselves.
func (t Token) Close() Token {
	switch t.kind.Family() {
	case FamilyCell, FamilyColumn, FamilyRow:
		return familySelectOf(t)
	case FamilyLabel, FamilyMetadata:
		return spreadsheetSelect(t)
	case FamilyPlugin:
		return pluginList()
	case FamilySpreadsheetList:
		if t.kind == SpreadsheetListDelete {
			return spreadsheetList()
		}
	case FamilySpreadsheet:
		if t.kind.Dialog() == DialogRename {
			return spreadsheetSelect(t)
		}
	}
	return t
}

// ClearAction drops the pending action but keeps an open dialog.
func (t Token) ClearAction() Token {
	switch t.kind {
	case PluginDelete:
		return pluginList()
	case LabelDelete:
		return spreadsheetSelect(t)
	case SpreadsheetListDelete:
		return spreadsheetList()
	}
	if !t.kind.HasPendingAction() {
		return t
	}
	if t.kind.Action() == ActionSave {
		k, ok := kindFor(t.kind.Family(), t.kind.Dialog(), ActionSelect)
		if ok {
			return dialogSelectOf(t, k)
		}
	}
	if t.kind.IsSelection() {
		return familySelectOf(t)
	}
	return t
}

// dialogSelectOf rebuilds a save token as its dialog's select token.
func dialogSelectOf(t Token, k Kind) Token {
	out := Token{
		kind:      k,
		scope:     t.scope,
		selection: t.selection,
		label:     t.label,
		plugin:    t.plugin,
	}
	switch k {
	case CellStyleSelect:
		out.styleProperty = t.styleProperty
	case CellPatternSelect:
		out.patternKind = t.patternKind
	case MetadataPropertySelect:
		out.metadataProperty = t.metadataProperty
	}
	return out
}

// SetSaveValue moves a dialog to its save token carrying value, parsed by the
// dialog's own parser. The empty string saves an absent value. Tokens without
// a save dialog return themselves and ErrIgnored.
func (t Token) SetSaveValue(value string) (Token, error) {
	out, err := t.save(value)
	if err != nil {
		return t, err
	}
	return out, nil
}

func (t Token) save(value string) (Token, error) {
	scope := t.scope
	switch t.kind {
	case CellFormulaSelect, CellFormulaSave:
		return NewCellFormulaSave(scope, t.selection, mo.Some(value))

	case CellStyleSelect, CellStyleSave:
		v := mo.None[style.Value]()
		if value != "" {
			parsed, err := t.styleProperty.ParseValue(value)
			if err != nil {
				return t, err
			}
			v = mo.Some(parsed)
		}
		return NewCellStyleSave(scope, t.selection, t.styleProperty, v)

	case CellPatternSelect, CellPatternSave:
		p := mo.None[pattern.Pattern]()
		if value != "" {
			parsed, err := pattern.Parse(t.patternKind, value)
			if err != nil {
				return t, err
			}
			p = mo.Some(parsed)
		}
		return NewCellPatternSave(scope, t.selection, t.patternKind, p)

	case MetadataPropertySelect, MetadataPropertySave:
		v := mo.None[metadata.Value]()
		if value != "" {
			parsed, err := t.metadataProperty.ParseValue(value)
			if err != nil {
				return t, err
			}
			v = mo.Some(parsed)
		}
		return NewMetadataPropertySave(scope.MustGet(), t.metadataProperty, v)

	case LabelSelect, LabelSave:
		target := mo.None[sheet.Selection]()
		if value != "" {
			sel, err := sheet.ParseCellSelection(value)
			if err != nil {
				return t, err
			}
			target = mo.Some(sel)
		}
		return NewLabelSave(scope.MustGet(), t.label, target)

	case SpreadsheetRenameSelect, SpreadsheetRenameSave:
		name := mo.None[sheet.SpreadsheetName]()
		if value != "" {
			n, err := sheet.ParseSpreadsheetName(value)
			if err != nil {
				return t, err
			}
			name = mo.Some(n)
		}
		return NewSpreadsheetRenameSave(scope.MustGet(), name)

	case PluginSelect, PluginSave:
		return NewPluginSave(t.plugin, mo.Some(value))
	}
	return t, ignored(t, "save")
}

// SetSelection replaces the selection while keeping the scope. An absent
// selection unselects: back to the spreadsheet, or to create when detached.
// The kind is kept when the new selection is of the same family and the kind
// accepts it; otherwise the token becomes that family's select.
func (t Token) SetSelection(sel mo.Option[sheet.AnchoredSelection]) (Token, error) {
	if !t.kind.IsSelection() && t.scope.IsAbsent() {
		return t, ignored(t, "select")
	}
	as, ok := sel.Get()
	if !ok || as.IsZero() {
		if t.scope.IsPresent() {
			return spreadsheetSelect(t), nil
		}
		return NewSpreadsheetCreate(), nil
	}
	f := familyOf(as.Selection().Family())
	if f == FamilyNone {
		return t, fmt.Errorf("%w: selection %s", ErrInvalidArgument, as)
	}
	if t.kind.Family() == f {
		moved := t
		moved.selection = as
		if validate(moved) == nil {
			return moved, nil
		}
	}
	out, err := build(selectionToken(familySelect(f), t.scope, as))
	if err != nil {
		return t, err
	}
	return out, nil
}

// SetValueType opens the value type dialog of a cell token with vt.
func (t Token) SetValueType(vt mo.Option[sheet.ValueType]) (Token, error) {
	if t.kind.Family() != FamilyCell {
		return t, ignored(t, "value type")
	}
	out, err := NewCellValueTypeSelect(t.scope, t.selection, vt)
	if err != nil {
		return t, err
	}
	return out, nil
}

// Rename opens the rename dialog of the token's spreadsheet. It needs both id
// and name, so detached and load tokens are ignored.
func (t Token) Rename() (Token, error) {
	s, ok := t.scope.Get()
	if !ok {
		return t, ignored(t, "rename")
	}
	out, err := NewSpreadsheetRenameSelect(s)
	if err != nil {
		return t, err
	}
	return out, nil
}

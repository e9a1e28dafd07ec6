package history

import "fmt"

// Kind identifies a token variant.
type Kind uint8

const (
	// Unknown wraps a fragment that matched no rule.
	Unknown Kind = iota

	// Без выбранной таблицы
	SpreadsheetCreate
	SpreadsheetLoad
	SpreadsheetListSelect
	SpreadsheetListDelete
	PluginListSelect
	PluginSelect
	PluginSave
	PluginDelete

	// Уровень таблицы
	SpreadsheetSelect
	SpreadsheetRenameSelect
	SpreadsheetRenameSave
	MetadataPropertySelect
	MetadataPropertySave
	LabelCreate
	LabelSelect
	LabelSave
	LabelDelete

	// Ячейки
	CellSelect
	CellClear
	CellDelete
	CellFreeze
	CellUnfreeze
	CellMenu
	CellFormulaSelect
	CellFormulaSave
	CellStyleSelect
	CellStyleSave
	CellPatternSelect
	CellPatternSave
	CellValueTypeSelect
	CellLabels

	// Колонки
	ColumnSelect
	ColumnClear
	ColumnDelete
	ColumnFreeze
	ColumnUnfreeze
	ColumnMenu
	ColumnInsertAfter
	ColumnInsertBefore

	// Строки
	RowSelect
	RowClear
	RowDelete
	RowFreeze
	RowUnfreeze
	RowMenu
	RowInsertAfter
	RowInsertBefore

	kindCount
)

// Family is what a token has selected.
type Family uint8

const (
	FamilyNone Family = iota
	FamilySpreadsheet
	FamilySpreadsheetList
	FamilyPlugin
	FamilyPluginList
	FamilyMetadata
	FamilyLabel
	FamilyCell
	FamilyColumn
	FamilyRow
)

var familyNames = [...]string{
	FamilyNone:            "none",
	FamilySpreadsheet:     "spreadsheet",
	FamilySpreadsheetList: "spreadsheet-list",
	FamilyPlugin:          "plugin",
	FamilyPluginList:      "plugin-list",
	FamilyMetadata:        "metadata",
	FamilyLabel:           "label",
	FamilyCell:            "cell",
	FamilyColumn:          "column",
	FamilyRow:             "row",
}

func (f Family) String() string {
	if int(f) < len(familyNames) {
		return familyNames[f]
	}
	return fmt.Sprintf("Family(%d)", uint8(f))
}

// Action is what a token is about to do with its selection.
type Action uint8

const (
	ActionNone Action = iota
	ActionSelect
	ActionSave
	ActionDelete
	ActionClear
	ActionFreeze
	ActionUnfreeze
	ActionMenu
	ActionInsertAfter
	ActionInsertBefore
	ActionCreate
	ActionLoad
)

var actionNames = [...]string{
	ActionNone:         "none",
	ActionSelect:       "select",
	ActionSave:         "save",
	ActionDelete:       "delete",
	ActionClear:        "clear",
	ActionFreeze:       "freeze",
	ActionUnfreeze:     "unfreeze",
	ActionMenu:         "menu",
	ActionInsertAfter:  "insert-after",
	ActionInsertBefore: "insert-before",
	ActionCreate:       "create",
	ActionLoad:         "load",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// Dialog is the editor a token keeps open, if any.
type Dialog uint8

const (
	DialogNone Dialog = iota
	DialogFormula
	DialogStyle
	DialogPattern
	DialogValueType
	DialogLabels
	DialogRename
)

var dialogNames = [...]string{
	DialogNone:      "none",
	DialogFormula:   "formula",
	DialogStyle:     "style",
	DialogPattern:   "pattern",
	DialogValueType: "value-type",
	DialogLabels:    "labels",
	DialogRename:    "rename",
}

func (d Dialog) String() string {
	if int(d) < len(dialogNames) {
		return dialogNames[d]
	}
	return fmt.Sprintf("Dialog(%d)", uint8(d))
}

// scopeRule says whether a kind renders the /id/name prefix.
type scopeRule uint8

const (
	scopeForbidden scopeRule = iota
	scopeRequired
	scopeOptional
)

type kindInfo struct {
	name   string
	family Family
	dialog Dialog
	action Action
	scope  scopeRule
}

var kinds = [kindCount]kindInfo{
	Unknown: {"Unknown", FamilyNone, DialogNone, ActionNone, scopeForbidden},

	SpreadsheetCreate:     {"SpreadsheetCreate", FamilySpreadsheet, DialogNone, ActionCreate, scopeForbidden},
	SpreadsheetLoad:       {"SpreadsheetLoad", FamilySpreadsheet, DialogNone, ActionLoad, scopeForbidden},
	SpreadsheetListSelect: {"SpreadsheetListSelect", FamilySpreadsheetList, DialogNone, ActionSelect, scopeForbidden},
	SpreadsheetListDelete: {"SpreadsheetListDelete", FamilySpreadsheetList, DialogNone, ActionDelete, scopeForbidden},
	PluginListSelect:      {"PluginListSelect", FamilyPluginList, DialogNone, ActionSelect, scopeForbidden},
	PluginSelect:          {"PluginSelect", FamilyPlugin, DialogNone, ActionSelect, scopeForbidden},
	PluginSave:            {"PluginSave", FamilyPlugin, DialogNone, ActionSave, scopeForbidden},
	PluginDelete:          {"PluginDelete", FamilyPlugin, DialogNone, ActionDelete, scopeForbidden},

	SpreadsheetSelect:       {"SpreadsheetSelect", FamilySpreadsheet, DialogNone, ActionSelect, scopeRequired},
	SpreadsheetRenameSelect: {"SpreadsheetRenameSelect", FamilySpreadsheet, DialogRename, ActionSelect, scopeRequired},
	SpreadsheetRenameSave:   {"SpreadsheetRenameSave", FamilySpreadsheet, DialogRename, ActionSave, scopeRequired},
	MetadataPropertySelect:  {"MetadataPropertySelect", FamilyMetadata, DialogNone, ActionSelect, scopeRequired},
	MetadataPropertySave:    {"MetadataPropertySave", FamilyMetadata, DialogNone, ActionSave, scopeRequired},
	LabelCreate:             {"LabelCreate", FamilyLabel, DialogNone, ActionCreate, scopeRequired},
	LabelSelect:             {"LabelSelect", FamilyLabel, DialogNone, ActionSelect, scopeRequired},
	LabelSave:               {"LabelSave", FamilyLabel, DialogNone, ActionSave, scopeRequired},
	LabelDelete:             {"LabelDelete", FamilyLabel, DialogNone, ActionDelete, scopeRequired},

	CellSelect:          {"CellSelect", FamilyCell, DialogNone, ActionSelect, scopeOptional},
	CellClear:           {"CellClear", FamilyCell, DialogNone, ActionClear, scopeOptional},
	CellDelete:          {"CellDelete", FamilyCell, DialogNone, ActionDelete, scopeOptional},
	CellFreeze:          {"CellFreeze", FamilyCell, DialogNone, ActionFreeze, scopeOptional},
	CellUnfreeze:        {"CellUnfreeze", FamilyCell, DialogNone, ActionUnfreeze, scopeOptional},
	CellMenu:            {"CellMenu", FamilyCell, DialogNone, ActionMenu, scopeOptional},
	CellFormulaSelect:   {"CellFormulaSelect", FamilyCell, DialogFormula, ActionSelect, scopeOptional},
	CellFormulaSave:     {"CellFormulaSave", FamilyCell, DialogFormula, ActionSave, scopeOptional},
	CellStyleSelect:     {"CellStyleSelect", FamilyCell, DialogStyle, ActionSelect, scopeOptional},
	CellStyleSave:       {"CellStyleSave", FamilyCell, DialogStyle, ActionSave, scopeOptional},
	CellPatternSelect:   {"CellPatternSelect", FamilyCell, DialogPattern, ActionSelect, scopeOptional},
	CellPatternSave:     {"CellPatternSave", FamilyCell, DialogPattern, ActionSave, scopeOptional},
	CellValueTypeSelect: {"CellValueTypeSelect", FamilyCell, DialogValueType, ActionSelect, scopeOptional},
	CellLabels:          {"CellLabels", FamilyCell, DialogLabels, ActionSelect, scopeOptional},

	ColumnSelect:       {"ColumnSelect", FamilyColumn, DialogNone, ActionSelect, scopeOptional},
	ColumnClear:        {"ColumnClear", FamilyColumn, DialogNone, ActionClear, scopeOptional},
	ColumnDelete:       {"ColumnDelete", FamilyColumn, DialogNone, ActionDelete, scopeOptional},
	ColumnFreeze:       {"ColumnFreeze", FamilyColumn, DialogNone, ActionFreeze, scopeOptional},
	ColumnUnfreeze:     {"ColumnUnfreeze", FamilyColumn, DialogNone, ActionUnfreeze, scopeOptional},
	ColumnMenu:         {"ColumnMenu", FamilyColumn, DialogNone, ActionMenu, scopeOptional},
	ColumnInsertAfter:  {"ColumnInsertAfter", FamilyColumn, DialogNone, ActionInsertAfter, scopeOptional},
	ColumnInsertBefore: {"ColumnInsertBefore", FamilyColumn, DialogNone, ActionInsertBefore, scopeOptional},

	RowSelect:       {"RowSelect", FamilyRow, DialogNone, ActionSelect, scopeOptional},
	RowClear:        {"RowClear", FamilyRow, DialogNone, ActionClear, scopeOptional},
	RowDelete:       {"RowDelete", FamilyRow, DialogNone, ActionDelete, scopeOptional},
	RowFreeze:       {"RowFreeze", FamilyRow, DialogNone, ActionFreeze, scopeOptional},
	RowUnfreeze:     {"RowUnfreeze", FamilyRow, DialogNone, ActionUnfreeze, scopeOptional},
	RowMenu:         {"RowMenu", FamilyRow, DialogNone, ActionMenu, scopeOptional},
	RowInsertAfter:  {"RowInsertAfter", FamilyRow, DialogNone, ActionInsertAfter, scopeOptional},
	RowInsertBefore: {"RowInsertBefore", FamilyRow, DialogNone, ActionInsertBefore, scopeOptional},
}

// Kinds returns every kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount)
	for k := Unknown; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

func (k Kind) valid() bool { return k < kindCount }

func (k Kind) String() string {
	if k.valid() {
		return kinds[k].name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Family reports what the kind has selected.
func (k Kind) Family() Family {
	if !k.valid() {
		return FamilyNone
	}
	return kinds[k].family
}

// Action reports the pending action.
func (k Kind) Action() Action {
	if !k.valid() {
		return ActionNone
	}
	return kinds[k].action
}

// Dialog reports the open editor.
func (k Kind) Dialog() Dialog {
	if !k.valid() {
		return DialogNone
	}
	return kinds[k].dialog
}

// IsSelection reports whether the kind carries a cell, column or row selection.
func (k Kind) IsSelection() bool {
	switch k.Family() {
	case FamilyCell, FamilyColumn, FamilyRow:
		return true
	}
	return false
}

// HasPendingAction reports whether ClearAction would change a token of this kind.
func (k Kind) HasPendingAction() bool {
	switch k.Action() {
	case ActionNone, ActionSelect, ActionCreate, ActionLoad:
		return false
	}
	return true
}

// kindFor finds the kind with the given family, dialog and action.
func kindFor(f Family, d Dialog, a Action) (Kind, bool) {
	for k := Unknown + 1; k < kindCount; k++ {
		info := kinds[k]
		if info.family == f && info.dialog == d && info.action == a {
			return k, true
		}
	}
	return Unknown, false
}

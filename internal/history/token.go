package history

import (
	"errors"

	"github.com/samber/mo"

	"sheetnav/internal/metadata"
	"sheetnav/internal/pattern"
	"sheetnav/internal/plugin"
	"sheetnav/internal/sheet"
	"sheetnav/internal/style"
)

var (
	// ErrInvalidArgument is wrapped when a constructor gets a missing or
	// disallowed field.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIgnored is returned by transitions that do not apply to the receiver.
	ErrIgnored = errors.New("transition ignored")
)

// Spreadsheet is the /id/name scope of a token.
type Spreadsheet struct {
	ID   sheet.SpreadsheetID
	Name sheet.SpreadsheetName
}

// Scoped is shorthand for mo.Some(Spreadsheet{id, name}).
func Scoped(id sheet.SpreadsheetID, name sheet.SpreadsheetName) mo.Option[Spreadsheet] {
	return mo.Some(Spreadsheet{ID: id, Name: name})
}

// Detached is the scope of a token relative to whatever spreadsheet is open.
func Detached() mo.Option[Spreadsheet] {
	return mo.None[Spreadsheet]()
}

// Token is one navigable UI state. The zero Token is Unknown("").
//
// Only the fields that belong to the kind are set; the rest stay zero so
// that == compares tokens structurally.
type Token struct {
	kind Kind
	raw  string

	scope mo.Option[Spreadsheet]
	id    mo.Option[sheet.SpreadsheetID]

	selection sheet.AnchoredSelection
	label     sheet.LabelName
	plugin    plugin.Name

	styleProperty    style.Property
	patternKind      pattern.Kind
	metadataProperty metadata.Property

	text          mo.Option[string]
	newName       mo.Option[sheet.SpreadsheetName]
	target        mo.Option[sheet.Selection]
	styleValue    mo.Option[style.Value]
	pattern       mo.Option[pattern.Pattern]
	metadataValue mo.Option[metadata.Value]
	valueType     mo.Option[sheet.ValueType]

	offset mo.Option[int]
	count  mo.Option[int]
	insert int
}

// Equal reports whether two tokens are the same variant with the same fields.
func Equal(a, b Token) bool { return a == b }

func (t Token) Kind() Kind { return t.kind }

// Raw returns the fragment an Unknown token was parsed from.
func (t Token) Raw() string { return t.raw }

// Spreadsheet returns the /id/name scope, absent for detached tokens.
func (t Token) Spreadsheet() mo.Option[Spreadsheet] { return t.scope }

// ID returns the spreadsheet id from the scope, or the id a load or list
// delete token refers to.
func (t Token) ID() mo.Option[sheet.SpreadsheetID] {
	if s, ok := t.scope.Get(); ok {
		return mo.Some(s.ID)
	}
	return t.id
}

// Selection returns the anchored selection of cell, column and row tokens.
func (t Token) Selection() mo.Option[sheet.AnchoredSelection] {
	if t.selection.IsZero() {
		return mo.None[sheet.AnchoredSelection]()
	}
	return mo.Some(t.selection)
}

func (t Token) Label() mo.Option[sheet.LabelName] {
	if t.label.IsZero() {
		return mo.None[sheet.LabelName]()
	}
	return mo.Some(t.label)
}

func (t Token) Plugin() mo.Option[plugin.Name] {
	if t.plugin.IsZero() {
		return mo.None[plugin.Name]()
	}
	return mo.Some(t.plugin)
}

func (t Token) StyleProperty() mo.Option[style.Property] {
	if t.styleProperty == 0 {
		return mo.None[style.Property]()
	}
	return mo.Some(t.styleProperty)
}

func (t Token) PatternKind() mo.Option[pattern.Kind] {
	if t.patternKind == 0 {
		return mo.None[pattern.Kind]()
	}
	return mo.Some(t.patternKind)
}

func (t Token) MetadataProperty() mo.Option[metadata.Property] {
	if t.metadataProperty == 0 {
		return mo.None[metadata.Property]()
	}
	return mo.Some(t.metadataProperty)
}

// Text is the formula text of CellFormulaSave or the payload of PluginSave.
func (t Token) Text() mo.Option[string] { return t.text }

// NewName is the name a SpreadsheetRenameSave is saving.
func (t Token) NewName() mo.Option[sheet.SpreadsheetName] { return t.newName }

// Target is the cell or range a LabelSave maps its label to.
func (t Token) Target() mo.Option[sheet.Selection]       { return t.target }
func (t Token) StyleValue() mo.Option[style.Value]       { return t.styleValue }
func (t Token) Pattern() mo.Option[pattern.Pattern]      { return t.pattern }
func (t Token) MetadataValue() mo.Option[metadata.Value] { return t.metadataValue }
func (t Token) ValueType() mo.Option[sheet.ValueType]    { return t.valueType }
func (t Token) Offset() mo.Option[int]                   { return t.offset }
func (t Token) Count() mo.Option[int]                    { return t.count }

// InsertCount is the number of columns or rows an insert token adds.
func (t Token) InsertCount() mo.Option[int] {
	if t.insert == 0 {
		return mo.None[int]()
	}
	return mo.Some(t.insert)
}

// String is Fragment.
func (t Token) String() string { return t.Fragment() }

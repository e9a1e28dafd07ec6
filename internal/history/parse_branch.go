package history

import (
	"github.com/samber/mo"

	"sheetnav/internal/diag"
	"sheetnav/internal/fragment"
	"sheetnav/internal/metadata"
	"sheetnav/internal/pattern"
	"sheetnav/internal/plugin"
	"sheetnav/internal/sheet"
	"sheetnav/internal/style"
)

// Action literals per selection family. Insert actions are followed by a count.
var (
	cellActions = map[string]Kind{
		litClear:    CellClear,
		litDelete:   CellDelete,
		litFreeze:   CellFreeze,
		litUnfreeze: CellUnfreeze,
		litMenu:     CellMenu,
		litLabels:   CellLabels,
	}
	columnActions = map[string]Kind{
		litClear:        ColumnClear,
		litDelete:       ColumnDelete,
		litFreeze:       ColumnFreeze,
		litUnfreeze:     ColumnUnfreeze,
		litMenu:         ColumnMenu,
		litInsertAfter:  ColumnInsertAfter,
		litInsertBefore: ColumnInsertBefore,
	}
	rowActions = map[string]Kind{
		litClear:        RowClear,
		litDelete:       RowDelete,
		litFreeze:       RowFreeze,
		litUnfreeze:     RowUnfreeze,
		litMenu:         RowMenu,
		litInsertAfter:  RowInsertAfter,
		litInsertBefore: RowInsertBefore,
	}
)

// selection consumes a selection and its optional anchor. Ranges without an
// anchor segment get the default anchor for their shape.
func (p *parser) selection(f sheet.Family) (sheet.AnchoredSelection, error) {
	seg, err := p.need(f.String() + " selection")
	if err != nil {
		return sheet.AnchoredSelection{}, err
	}
	sel, err := sheet.ParseSelection(f, seg.Text)
	if err != nil {
		return sheet.AnchoredSelection{}, fail(diag.ValBadSelection, seg.Span, "%v", err)
	}
	anchor, span := sheet.DefaultAnchor(sel.Kind()), seg.Span
	m := p.cur.Mark()
	if next, ok := p.cur.Next(); ok {
		if a, ok := sheet.ParseAnchor(next.Text); ok {
			anchor, span = a, next.Span
		} else {
			// не якорь, а действие
			p.cur.Reset(m)
		}
	}
	as, err := sheet.NewAnchoredSelection(sel, anchor)
	if err != nil {
		return sheet.AnchoredSelection{}, fail(diag.ValBadAnchor, span, "%v", err)
	}
	return as, nil
}

func (p *parser) parseCell(lit fragment.Segment) (Token, error) {
	sel, err := p.selection(sheet.FamilyCell)
	if err != nil {
		return Token{}, err
	}
	act, ok := p.cur.Next()
	if !ok {
		return p.checked(lit.Span)(NewCellSelect(p.scope, sel))
	}
	check := p.checked(act.Span)

	switch act.Text {
	case litFormula:
		if !p.cur.Eat(litSave) {
			return check(NewCellFormulaSelect(p.scope, sel))
		}
		text, _, err := p.payload()
		if err != nil {
			return Token{}, err
		}
		return check(NewCellFormulaSave(p.scope, sel, text))

	case litStyle:
		seg, err := p.need("style property")
		if err != nil {
			return Token{}, err
		}
		prop, err := style.ParseProperty(seg.Text)
		if err != nil {
			return Token{}, unknownLiteral(seg, namesOf(style.Properties()), "%v", err)
		}
		if !p.cur.Eat(litSave) {
			return check(NewCellStyleSelect(p.scope, sel, prop))
		}
		raw, sp, err := p.payload()
		if err != nil {
			return Token{}, err
		}
		value := mo.None[style.Value]()
		if s, ok := raw.Get(); ok {
			v, err := prop.ParseValue(s)
			if err != nil {
				return Token{}, fail(diag.ValBadPayload, sp, "%v", err)
			}
			value = mo.Some(v)
		}
		return check(NewCellStyleSave(p.scope, sel, prop, value))

	case litPattern:
		seg, err := p.need("pattern kind")
		if err != nil {
			return Token{}, err
		}
		kind, err := pattern.ParseKind(seg.Text)
		if err != nil {
			return Token{}, unknownLiteral(seg, namesOf(pattern.Kinds()), "%v", err)
		}
		if !p.cur.Eat(litSave) {
			return check(NewCellPatternSelect(p.scope, sel, kind))
		}
		raw, sp, err := p.payload()
		if err != nil {
			return Token{}, err
		}
		pat := mo.None[pattern.Pattern]()
		if s, ok := raw.Get(); ok {
			v, err := pattern.Parse(kind, s)
			if err != nil {
				return Token{}, fail(diag.ValBadPayload, sp, "%v", err)
			}
			pat = mo.Some(v)
		}
		return check(NewCellPatternSave(p.scope, sel, kind, pat))

	case litValueType:
		vt := mo.None[sheet.ValueType]()
		if seg, ok := p.cur.Next(); ok {
			v, err := sheet.ParseValueType(seg.Text)
			if err != nil {
				return Token{}, fail(diag.ValBadPayload, seg.Span, "%v", err)
			}
			vt = mo.Some(v)
		}
		return check(NewCellValueTypeSelect(p.scope, sel, vt))
	}

	kind, ok := cellActions[act.Text]
	if !ok {
		return Token{}, unknownLiteral(act, literalsOf(cellActions, litFormula, litStyle, litPattern, litValueType), "unknown cell action %q", act.Text)
	}
	return check(build(selectionToken(kind, p.scope, sel)))
}

func (p *parser) parseColumn(lit fragment.Segment) (Token, error) {
	return p.parseColumnOrRow(lit, sheet.FamilyColumn, ColumnSelect, columnActions)
}

func (p *parser) parseRow(lit fragment.Segment) (Token, error) {
	return p.parseColumnOrRow(lit, sheet.FamilyRow, RowSelect, rowActions)
}

func (p *parser) parseColumnOrRow(lit fragment.Segment, f sheet.Family, selectKind Kind, actions map[string]Kind) (Token, error) {
	sel, err := p.selection(f)
	if err != nil {
		return Token{}, err
	}
	act, ok := p.cur.Next()
	if !ok {
		return p.checked(lit.Span)(build(selectionToken(selectKind, p.scope, sel)))
	}
	kind, ok := actions[act.Text]
	if !ok {
		return Token{}, unknownLiteral(act, literalsOf(actions), "unknown %s action %q", f, act.Text)
	}
	t := selectionToken(kind, p.scope, sel)
	if a := kind.Action(); a == ActionInsertAfter || a == ActionInsertBefore {
		n, err := p.number("insert count", 1)
		if err != nil {
			return Token{}, err
		}
		t.insert = n
	}
	return p.checked(act.Span)(build(t))
}

func (p *parser) parseLabel(lit fragment.Segment) (Token, error) {
	s := p.scope.MustGet()
	seg, ok := p.cur.Next()
	if !ok {
		return p.checked(lit.Span)(NewLabelCreate(s))
	}
	label, err := sheet.ParseLabelName(seg.Text)
	if err != nil {
		return Token{}, fail(diag.ValBadLabel, seg.Span, "%v", err)
	}
	act, ok := p.cur.Next()
	if !ok {
		return p.checked(seg.Span)(NewLabelSelect(s, label))
	}
	switch act.Text {
	case litDelete:
		return p.checked(act.Span)(NewLabelDelete(s, label))
	case litSave:
		raw, sp, err := p.payload()
		if err != nil {
			return Token{}, err
		}
		target := mo.None[sheet.Selection]()
		if text, ok := raw.Get(); ok {
			sel, err := sheet.ParseCellSelection(text)
			if err != nil {
				return Token{}, fail(diag.ValBadPayload, sp, "%v", err)
			}
			target = mo.Some(sel)
		}
		return p.checked(sp)(NewLabelSave(s, label, target))
	}
	return Token{}, unknownLiteral(act, []string{litDelete, litSave}, "unknown label action %q", act.Text)
}

func (p *parser) parseRename(lit fragment.Segment) (Token, error) {
	s := p.scope.MustGet()
	if !p.cur.Eat(litSave) {
		return p.checked(lit.Span)(NewSpreadsheetRenameSelect(s))
	}
	raw, sp, err := p.payload()
	if err != nil {
		return Token{}, err
	}
	name := mo.None[sheet.SpreadsheetName]()
	if text, ok := raw.Get(); ok {
		n, err := sheet.ParseSpreadsheetName(text)
		if err != nil {
			return Token{}, fail(diag.ValBadSpreadsheetName, sp, "%v", err)
		}
		name = mo.Some(n)
	}
	return p.checked(sp)(NewSpreadsheetRenameSave(s, name))
}

func (p *parser) parseMetadata(lit fragment.Segment) (Token, error) {
	s := p.scope.MustGet()
	prop, ok := metadata.Lookup(lit.Text)
	if !ok {
		return Token{}, unknownLiteral(lit, namesOf(metadata.Properties()), "unknown metadata property %q", lit.Text)
	}
	if !p.cur.Eat(litSave) {
		return p.checked(lit.Span)(NewMetadataPropertySelect(s, prop))
	}
	raw, sp, err := p.payload()
	if err != nil {
		return Token{}, err
	}
	value := mo.None[metadata.Value]()
	if text, ok := raw.Get(); ok {
		v, err := prop.ParseValue(text)
		if err != nil {
			return Token{}, fail(diag.ValBadPayload, sp, "%v", err)
		}
		value = mo.Some(v)
	}
	return p.checked(sp)(NewMetadataPropertySave(s, prop, value))
}

func (p *parser) parsePlugin(lit fragment.Segment) (Token, error) {
	seg, ok := p.cur.Next()
	if !ok {
		return p.checked(lit.Span)(NewPluginListSelect(mo.None[int](), mo.None[int]()))
	}
	if seg.Text == litList {
		offset, count, err := p.page()
		if err != nil {
			return Token{}, err
		}
		return p.checked(seg.Span)(NewPluginListSelect(offset, count))
	}
	name, err := plugin.ParseName(seg.Text)
	if err != nil {
		return Token{}, fail(diag.ValBadPluginName, seg.Span, "%v", err)
	}
	act, ok := p.cur.Next()
	if !ok {
		return p.checked(seg.Span)(NewPluginSelect(name))
	}
	switch act.Text {
	case litDelete:
		return p.checked(act.Span)(NewPluginDelete(name))
	case litSave:
		payload, sp, err := p.payload()
		if err != nil {
			return Token{}, err
		}
		return p.checked(sp)(NewPluginSave(name, payload))
	}
	return Token{}, unknownLiteral(act, []string{litDelete, litSave}, "unknown plugin action %q", act.Text)
}

func (p *parser) parseList(lit fragment.Segment) (Token, error) {
	if p.cur.Eat(litDelete) {
		seg, err := p.need("spreadsheet id")
		if err != nil {
			return Token{}, err
		}
		id, err := sheet.ParseSpreadsheetID(seg.Text)
		if err != nil {
			return Token{}, fail(diag.ValBadSpreadsheetID, seg.Span, "%v", err)
		}
		return NewSpreadsheetListDelete(id), nil
	}
	offset, count, err := p.page()
	if err != nil {
		return Token{}, err
	}
	return p.checked(lit.Span)(NewSpreadsheetListSelect(offset, count))
}

package history

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/samber/mo"

	"sheetnav/internal/diag"
	"sheetnav/internal/fragment"
	"sheetnav/internal/metadata"
	"sheetnav/internal/sheet"
	"sheetnav/internal/source"
)

// Options tune ParseWithOptions.
type Options struct {
	// Reporter receives exactly one diagnostic for every fragment that falls
	// back to Unknown. Nil discards it.
	Reporter diag.Reporter
}

// Parse turns a URL fragment (without '#') into a token. It never fails:
// anything the grammar rejects becomes Unknown(text).
func Parse(text string) Token {
	return ParseWithOptions(text, Options{})
}

// ParseWithOptions is Parse that also explains a fallback to Unknown.
func ParseWithOptions(text string, opts Options) Token {
	p := parser{cur: fragment.NewCursor(text)}
	tok, err := p.parse()
	if err == nil {
		return tok
	}
	if opts.Reporter != nil {
		var pe *parseError
		if !errors.As(err, &pe) {
			pe = &parseError{code: diag.ValRejected, span: p.bodySpan(), msg: err.Error()}
		}
		b := diag.ReportError(opts.Reporter, pe.code, pe.span, pe.msg)
		if pe.suggest != "" {
			b.WithNote(pe.span, fmt.Sprintf("did you mean %q?", pe.suggest))
		}
		b.Emit()
	}
	return NewUnknown(text)
}

// parseError carries the diagnostic for the first segment that broke the parse.
type parseError struct {
	code    diag.Code
	span    source.Span
	msg     string
	suggest string // closest known literal for GrmUnknownLiteral
}

func (e *parseError) Error() string { return e.msg }

func fail(code diag.Code, sp source.Span, format string, args ...any) error {
	return &parseError{code: code, span: sp, msg: fmt.Sprintf(format, args...)}
}

// branch is one entry of the dispatch table: the literal after the optional
// /id/name prefix selects the sub-parser and the scope it needs.
type branch struct {
	scope scopeRule
	parse func(p *parser, lit fragment.Segment) (Token, error)
}

var branches = newBranches()

func newBranches() map[string]branch {
	m := map[string]branch{
		litCell:   {scopeOptional, (*parser).parseCell},
		litColumn: {scopeOptional, (*parser).parseColumn},
		litRow:    {scopeOptional, (*parser).parseRow},
		litLabel:  {scopeRequired, (*parser).parseLabel},
		litRename: {scopeRequired, (*parser).parseRename},
		litPlugin: {scopeForbidden, (*parser).parsePlugin},
		litList:   {scopeForbidden, (*parser).parseList},
	}
	for _, prop := range metadata.Properties() {
		m[prop.String()] = branch{scopeRequired, (*parser).parseMetadata}
	}
	return m
}

// Literals returns the path literals the parser dispatches on after the
// spreadsheet prefix, metadata property names included.
func Literals() []string {
	out := make([]string, 0, len(branches))
	for lit := range branches {
		out = append(out, lit)
	}
	return out
}

type parser struct {
	cur   fragment.Cursor
	scope mo.Option[Spreadsheet]
}

func (p *parser) parse() (Token, error) {
	if p.cur.EOF() {
		return NewSpreadsheetCreate(), nil
	}
	if first, _ := p.cur.Peek(); isDigits(first.Text) {
		id, err := p.parseScope()
		if err != nil {
			return Token{}, err
		}
		if p.cur.EOF() {
			if s, ok := p.scope.Get(); ok {
				return p.checked(p.bodySpan())(NewSpreadsheetSelect(s))
			}
			return NewSpreadsheetLoad(id), nil
		}
	}

	lit, _ := p.cur.Next()
	br, ok := branches[lit.Text]
	if !ok {
		return Token{}, unknownLiteral(lit, Literals(), "unknown path segment %q", lit.Text)
	}
	scoped := p.scope.IsPresent()
	switch {
	case br.scope == scopeRequired && !scoped:
		return Token{}, fail(diag.GrmScopeRequired, lit.Span, "%q needs a spreadsheet id and name before it", lit.Text)
	case br.scope == scopeForbidden && scoped:
		return Token{}, fail(diag.GrmScopeForbidden, lit.Span, "%q cannot follow a spreadsheet id and name", lit.Text)
	}

	tok, err := br.parse(p, lit)
	if err != nil {
		return Token{}, err
	}
	if extra, ok := p.cur.Peek(); ok {
		return Token{}, fail(diag.GrmUnexpectedSegment, extra.Span, "unexpected segment %q", extra.Text)
	}
	return tok, nil
}

// parseScope consumes "/id" and, when present, "/name".
func (p *parser) parseScope() (sheet.SpreadsheetID, error) {
	idSeg, _ := p.cur.Next()
	id, err := sheet.ParseSpreadsheetID(idSeg.Text)
	if err != nil {
		return 0, fail(diag.ValBadSpreadsheetID, idSeg.Span, "%v", err)
	}
	nameSeg, ok := p.cur.Next()
	if !ok {
		return id, nil
	}
	raw, err := p.decode(nameSeg)
	if err != nil {
		return 0, err
	}
	name, err := sheet.ParseSpreadsheetName(raw)
	if err != nil {
		return 0, fail(diag.ValBadSpreadsheetName, nameSeg.Span, "%v", err)
	}
	p.scope = Scoped(id, name)
	return id, nil
}

// need consumes the next segment or reports what is missing.
func (p *parser) need(what string) (fragment.Segment, error) {
	seg, ok := p.cur.Next()
	if !ok {
		return seg, fail(diag.GrmMissingSegment, p.cur.EndSpan(), "missing %s", what)
	}
	if seg.Text == "" {
		return seg, fail(diag.SegEmpty, seg.Span, "empty %s", what)
	}
	return seg, nil
}

func (p *parser) decode(seg fragment.Segment) (string, error) {
	s, err := fragment.Decode(seg.Text)
	if err != nil {
		return "", fail(diag.SegBadEscape, seg.Span, "malformed escape in %q", seg.Text)
	}
	return s, nil
}

// payload consumes the rest of the fragment, URL-decoded. Nothing left, or
// nothing after decoding, is an absent payload.
func (p *parser) payload() (mo.Option[string], source.Span, error) {
	raw, sp := p.cur.Rest()
	if raw == "" {
		return mo.None[string](), sp, nil
	}
	s, err := fragment.Decode(raw)
	if err != nil {
		return mo.None[string](), sp, fail(diag.SegBadEscape, sp, "malformed escape in %q", raw)
	}
	if s == "" {
		return mo.None[string](), sp, nil
	}
	return mo.Some(s), sp, nil
}

// number consumes a decimal segment no smaller than min.
func (p *parser) number(what string, min int) (int, error) {
	seg, err := p.need(what)
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(seg.Text)
	if !isDigits(seg.Text) || convErr != nil || n < min {
		return 0, fail(diag.ValBadNumber, seg.Span, "%s %q must be a number of at least %d", what, seg.Text, min)
	}
	return n, nil
}

// page consumes the optional "/offset/N" and "/count/N", in that order.
func (p *parser) page() (offset, count mo.Option[int], err error) {
	if p.cur.Eat(litOffset) {
		n, err := p.number("offset", 0)
		if err != nil {
			return offset, count, err
		}
		offset = mo.Some(n)
	}
	if p.cur.Eat(litCount) {
		n, err := p.number("count", 0)
		if err != nil {
			return offset, count, err
		}
		count = mo.Some(n)
	}
	return offset, count, nil
}

// checked turns a constructor error into a diagnostic at sp.
func (p *parser) checked(sp source.Span) func(Token, error) (Token, error) {
	return func(t Token, err error) (Token, error) {
		if err != nil {
			return Token{}, fail(diag.ValRejected, sp, "%v", err)
		}
		return t, nil
	}
}

// bodySpan covers every segment of the fragment.
func (p *parser) bodySpan() source.Span {
	c := fragment.NewCursor(p.cur.Text())
	first, ok := c.Peek()
	if !ok {
		return c.EndSpan()
	}
	return first.Span.Cover(c.EndSpan())
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

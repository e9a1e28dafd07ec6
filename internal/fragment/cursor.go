package fragment

import (
	"sheetnav/internal/source"
)

// Cursor walks the segments of one fragment.
type Cursor struct {
	text string
	segs []Segment
	pos  int
}

// NewCursor creates a cursor positioned before the first segment.
func NewCursor(fragment string) Cursor {
	return Cursor{
		text: fragment,
		segs: Split(fragment),
	}
}

// Text returns the fragment the cursor was created from.
func (c *Cursor) Text() string {
	return c.text
}

// EOF проверяет, закончились ли сегменты
func (c *Cursor) EOF() bool {
	return c.pos >= len(c.segs)
}

// Peek возвращает текущий сегмент, не потребляя его
func (c *Cursor) Peek() (Segment, bool) {
	if c.EOF() {
		return Segment{}, false
	}
	return c.segs[c.pos], true
}

// Next потребляет и возвращает текущий сегмент
func (c *Cursor) Next() (Segment, bool) {
	seg, ok := c.Peek()
	if ok {
		c.pos++
	}
	return seg, ok
}

// Eat consumes the next segment if its raw text equals lit.
func (c *Cursor) Eat(lit string) bool {
	seg, ok := c.Peek()
	if !ok || seg.Text != lit {
		return false
	}
	c.pos++
	return true
}

// Mark это метка, чтобы откатить курсор назад
type Mark int

// Mark сохраняет текущую позицию курсора
func (c *Cursor) Mark() Mark {
	return Mark(c.pos)
}

// Reset возвращает курсор назад к метке
func (c *Cursor) Reset(m Mark) {
	c.pos = int(m)
}

// Rest consumes every remaining segment and returns their raw text joined by
// slashes, exactly as it appears in the fragment, with its span. When no
// segment is left the text is empty and the span sits at the end.
func (c *Cursor) Rest() (string, source.Span) {
	if c.EOF() {
		return "", c.EndSpan()
	}
	first := c.segs[c.pos].Span
	last := c.segs[len(c.segs)-1].Span
	c.pos = len(c.segs)
	sp := source.Span{Start: first.Start, End: last.End}
	return sp.Slice(c.text), sp
}

// EndSpan is an empty span after the last segment, used for "missing" reports.
func (c *Cursor) EndSpan() source.Span {
	if len(c.segs) == 0 {
		body, off := Trim(c.text)
		return spanOf(off+len(body), off+len(body))
	}
	return c.segs[len(c.segs)-1].Span.ZeroideToEnd()
}

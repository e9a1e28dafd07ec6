package history

import (
	"strconv"

	"github.com/samber/mo"
)

// Field is one named part of a token, for display.
type Field struct {
	Name  string
	Value string
}

// Describe lists the kind and every present field of t in a fixed order.
func Describe(t Token) []Field {
	out := []Field{
		{"kind", t.kind.String()},
		{"family", t.kind.Family().String()},
		{"action", t.kind.Action().String()},
	}
	add := func(name string, v mo.Option[string]) {
		if s, ok := v.Get(); ok {
			out = append(out, Field{name, s})
		}
	}
	if d := t.kind.Dialog(); d != DialogNone {
		out = append(out, Field{"dialog", d.String()})
	}
	if t.kind == Unknown {
		out = append(out, Field{"raw", t.raw})
	}
	add("id", stringOf(t.ID()))
	if s, ok := t.scope.Get(); ok {
		out = append(out, Field{"name", s.Name.String()})
	}
	if sel, ok := t.Selection().Get(); ok {
		out = append(out, Field{"selection", sel.Selection().String()})
		out = append(out, Field{"selection-kind", sel.Selection().Kind().String()})
		if a := sel.Anchor().String(); a != "" {
			out = append(out, Field{"anchor", a})
		}
	}
	add("label", stringOf(t.Label()))
	add("plugin", stringOf(t.Plugin()))
	add("style-property", stringOf(t.StyleProperty()))
	add("pattern-kind", stringOf(t.PatternKind()))
	add("metadata-property", stringOf(t.MetadataProperty()))
	add("text", t.text)
	add("new-name", stringOf(t.newName))
	add("target", stringOf(t.target))
	add("style-value", stringOf(t.styleValue))
	add("pattern", stringOf(t.pattern))
	add("metadata-value", stringOf(t.metadataValue))
	add("value-type", stringOf(t.valueType))
	if n, ok := t.offset.Get(); ok {
		out = append(out, Field{"offset", strconv.Itoa(n)})
	}
	if n, ok := t.count.Get(); ok {
		out = append(out, Field{"count", strconv.Itoa(n)})
	}
	if t.insert > 0 {
		out = append(out, Field{"insert-count", strconv.Itoa(t.insert)})
	}
	out = append(out, Field{"fragment", t.Fragment()})
	return out
}

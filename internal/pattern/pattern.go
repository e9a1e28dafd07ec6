package pattern

import (
	"fmt"
	"strings"
)

const separators = " /-:,.()+"

// Pattern is a validated pattern text for one kind.
type Pattern struct {
	kind Kind
	text string
}

func (p Pattern) Kind() Kind     { return p.kind }
func (p Pattern) String() string { return p.text }
func (p Pattern) Alternatives() []string {
	if p.kind.IsParse() {
		return splitAlternatives(p.text)
	}
	return []string{p.text}
}

// Parse validates text against the grammar of kind.
func Parse(kind Kind, text string) (Pattern, error) {
	if !kind.valid() {
		return Pattern{}, fmt.Errorf("%w: unknown pattern kind", ErrBadPattern)
	}
	if text == "" {
		return Pattern{}, fmt.Errorf("%w: empty %s pattern", ErrBadPattern, kind)
	}
	p := Pattern{kind: kind, text: text}
	for _, alt := range p.Alternatives() {
		if err := checkAlternative(kinds[kind].letters, alt); err != nil {
			return Pattern{}, fmt.Errorf("%w: %s %q: %v", ErrBadPattern, kind, text, err)
		}
	}
	return p, nil
}

func checkAlternative(letters, alt string) error {
	if alt == "" {
		return fmt.Errorf("empty alternative")
	}
	seenLetter := false
	for i := 0; i < len(alt); i++ {
		ch := alt[i]
		switch {
		case ch == '"' || ch == '\'':
			end := strings.IndexByte(alt[i+1:], ch)
			if end < 0 {
				return fmt.Errorf("unterminated literal at %d", i)
			}
			i += end + 1
		case strings.IndexByte(letters, ch) >= 0:
			seenLetter = true
		case strings.IndexByte(separators, ch) >= 0:
		default:
			return fmt.Errorf("unexpected %q at %d", ch, i)
		}
	}
	if !seenLetter {
		return fmt.Errorf("no pattern letters")
	}
	return nil
}

// splitAlternatives splits on ';' outside quoted literals.
func splitAlternatives(s string) []string {
	var (
		out   []string
		quote byte
		start int
	)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == ';':
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}

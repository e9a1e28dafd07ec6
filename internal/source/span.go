package source

import (
	"fmt"
)

// Span is a byte range inside a single URL fragment.
type Span struct {
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Cover returns the smallest span containing both s and other.
func (s Span) Cover(other Span) Span {
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// ZeroideToEnd collapses the span to its end offset.
func (s Span) ZeroideToEnd() Span {
	return Span{Start: s.End, End: s.End}
}

// Slice returns the text covered by the span, clamped to text bounds.
func (s Span) Slice(text string) string {
	n := uint32(len(text))
	start, end := min(s.Start, n), min(s.End, n)
	if start >= end {
		return ""
	}
	return text[start:end]
}

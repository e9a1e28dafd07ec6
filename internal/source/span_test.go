package source

import (
	"testing"
)

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Span
		expected Span
	}{
		{
			name:     "disjoint spans",
			a:        Span{Start: 1, End: 5},
			b:        Span{Start: 7, End: 9},
			expected: Span{Start: 1, End: 9},
		},
		{
			name:     "nested span",
			a:        Span{Start: 0, End: 20},
			b:        Span{Start: 5, End: 6},
			expected: Span{Start: 0, End: 20},
		},
		{
			name:     "other before receiver",
			a:        Span{Start: 10, End: 12},
			b:        Span{Start: 2, End: 4},
			expected: Span{Start: 2, End: 12},
		},
		{
			name:     "empty spans",
			a:        Span{Start: 3, End: 3},
			b:        Span{Start: 3, End: 3},
			expected: Span{Start: 3, End: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.expected {
				t.Errorf("Cover() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestSpan_Zeroide(t *testing.T) {
	sp := Span{Start: 4, End: 9}
	if got := sp.ZeroideToEnd(); got != (Span{Start: 9, End: 9}) {
		t.Errorf("ZeroideToEnd() = %+v", got)
	}
	if !sp.ZeroideToEnd().Empty() {
		t.Errorf("zeroided span must be empty")
	}
	if sp.Len() != 5 {
		t.Errorf("Len() = %d, want 5", sp.Len())
	}
}

func TestSpan_Slice(t *testing.T) {
	const text = "/cell/A1/clear"
	tests := []struct {
		span Span
		want string
	}{
		{Span{Start: 1, End: 5}, "cell"},
		{Span{Start: 6, End: 8}, "A1"},
		{Span{Start: 9, End: 100}, "clear"},
		{Span{Start: 50, End: 60}, ""},
		{Span{Start: 5, End: 5}, ""},
	}
	for _, tt := range tests {
		if got := tt.span.Slice(text); got != tt.want {
			t.Errorf("Slice(%v) = %q, want %q", tt.span, got, tt.want)
		}
	}
}

func TestSpan_String(t *testing.T) {
	if got := (Span{Start: 2, End: 7}).String(); got != "2-7" {
		t.Errorf("String() = %q", got)
	}
}

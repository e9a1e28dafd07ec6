package history

import (
	"fmt"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"sheetnav/internal/diag"
	"sheetnav/internal/fragment"
)

// closest returns the candidate a mistyped literal most likely meant, or "".
// A case-insensitive subsequence match wins ("colum" -> "column"); otherwise
// the nearest candidate within a small edit distance ("celx" -> "cell").
func closest(text string, candidates []string) string {
	if text == "" || len(candidates) == 0 {
		return ""
	}
	candidates = slices.Sorted(slices.Values(candidates))
	if ranks := fuzzy.RankFindFold(text, candidates); len(ranks) > 0 {
		sort.Stable(ranks)
		// "e" is a subsequence of half the grammar; not a useful hint
		if ranks[0].Distance <= len(text) {
			return ranks[0].Target
		}
	}
	lower := strings.ToLower(text)
	best, limit := "", max(1, len(text)/3)
	for _, c := range candidates {
		if d := fuzzy.LevenshteinDistance(lower, c); d <= limit {
			best, limit = c, d-1
		}
	}
	return best
}

// unknownLiteral fails at seg and remembers the closest expected literal.
func unknownLiteral(seg fragment.Segment, candidates []string, format string, args ...any) error {
	return &parseError{
		code:    diag.GrmUnknownLiteral,
		span:    seg.Span,
		msg:     fmt.Sprintf(format, args...),
		suggest: closest(seg.Text, candidates),
	}
}

func literalsOf[V any](m map[string]V, extra ...string) []string {
	return append(slices.Collect(maps.Keys(m)), extra...)
}

func namesOf[T fmt.Stringer](xs []T) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = x.String()
	}
	return out
}

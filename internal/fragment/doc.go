// Package fragment splits a URL fragment into its slash-delimited segments
// and exposes a Cursor that the history grammar consumes left to right.
//
// Invariants:
//   - Segment.Text is a slice of the original fragment (still percent-encoded).
//   - Segment.Span matches Text exactly (Start..End) in fragment byte offsets.
//   - One leading slash and every trailing slash are dropped before splitting,
//     so "/cell/A1/" and "cell/A1" produce the same segments as "/cell/A1".
//   - Empty segments in the middle ("/cell//A1") are kept; the grammar rejects them.
package fragment

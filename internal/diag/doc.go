// Package diag defines the diagnostic model used to explain why a URL
// fragment could not be parsed into a history token.
//
// Parsing a fragment never fails: anything the grammar does not accept becomes
// an Unknown token. When a caller wants to know why, it passes a Reporter and
// the parser emits exactly one Diagnostic pointing at the offending segment.
//
// # Data model
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form:
//     SEG for segment splitting, GRM for grammar, VAL for value parsing.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – byte range of the segment inside the fragment.
//   - Notes – optional secondary spans/messages.
//
// Package diag does not perform formatting beyond FormatShort; coloured and
// JSON rendering live in internal/diagfmt.
package diag

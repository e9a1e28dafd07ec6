// Package history models every navigable state of the spreadsheet UI as an
// immutable Token that renders to, and parses from, a URL fragment.
//
// Invariants:
//   - Parse is total: any fragment that does not match the grammar yields an
//     Unknown token carrying the original text.
//   - Parse(t.Fragment()) == t for every token built by a constructor.
//   - Tokens are comparable values; transitions return new tokens and never
//     modify their receiver.
//   - Close and ClearAction are idempotent.
package history

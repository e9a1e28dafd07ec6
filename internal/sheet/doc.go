// Package sheet holds the spreadsheet value types that history tokens carry:
// spreadsheet ids and names, cell/column/row references, ranges, labels,
// anchors and value types.
//
// Every type is a small comparable value; parsers validate and normalise
// (column letters upper-cased, range ends ordered, degenerate ranges collapsed)
// so that two equal selections always render to the same text.
package sheet

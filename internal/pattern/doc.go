// Package pattern validates the format and parse patterns attached to cells.
//
// A pattern is a run of letters taken from the kind's letter set, separators,
// and quoted literals ("..." or '...'). Parse kinds accept several
// alternatives separated by ';'.
package pattern

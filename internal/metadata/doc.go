// Package metadata lists the spreadsheet-level properties editable through
// the history and parses their values.
package metadata

// Package driver runs the history parser and law checks over batches of
// fragments.
//
// Fragments are processed in parallel with a bounded worker count; results
// come back in input order. Parsed tokens are memoised in an LRU cache keyed
// by fragment text, so repeated fragments in a batch or across batches are
// parsed once.
package driver

package sheet

import "errors"

var (
	// ErrBadReference is wrapped by every parse failure in this package.
	ErrBadReference = errors.New("bad reference")
	// ErrInvalidArgument is wrapped when a value is well formed but not allowed
	// in the requested combination (e.g. an anchor for a single cell).
	ErrInvalidArgument = errors.New("invalid argument")
)

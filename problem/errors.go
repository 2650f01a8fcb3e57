package problem

import "errors"

var (
	// ErrKeyNotFound is returned when reading an extension member that is
	// not set. Callers that want a fallback should check HasExtension first.
	ErrKeyNotFound = errors.New("extension key not found")

	// ErrNotImplemented is returned by output formats that are declared as
	// extension points but not available.
	ErrNotImplemented = errors.New("not implemented")
)

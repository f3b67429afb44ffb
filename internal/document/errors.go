package document

import (
	"errors"
	"fmt"
)

// Sentinel errors for document operations. Every failure returned by this
// package wraps exactly one of them and can be checked with errors.Is.
var (
	// ErrPathResolution indicates a path that does not lead to an object entry:
	// a segment is missing or an intermediate node is not an object.
	ErrPathResolution = errors.New("path resolution failed")

	// ErrNotObject is the resolution failure for descending into an array or scalar.
	ErrNotObject = fmt.Errorf("%w: not an object", ErrPathResolution)

	// ErrNotFound is the resolution failure for a key absent from its object.
	ErrNotFound = fmt.Errorf("%w: not found", ErrPathResolution)

	// ErrConflict indicates a create or move destination that already exists,
	// or a move into the subtree being moved.
	ErrConflict = errors.New("conflict")

	// ErrLiteralParse indicates a new-value literal that is not a single JSON value.
	ErrLiteralParse = errors.New("invalid value literal")

	// ErrQuery indicates a malformed key pattern or JSONPath expression.
	ErrQuery = errors.New("invalid query")

	// ErrIO indicates the destination of a save could not be opened or written.
	ErrIO = errors.New("i/o error")
)

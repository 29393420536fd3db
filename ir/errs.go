package ir

import "errors"

var (
	// ErrMalformed reports input that is not a JSON document.
	ErrMalformed = errors.New("not valid JSON")
	// ErrInvalidValue reports a scalar token which is not a string, bool,
	// null or number literal.
	ErrInvalidValue = errors.New("invalid json value")
	ErrTypeMismatch = errors.New("type mismatch")
	ErrNotFound     = errors.New("not found")
	// ErrCorrupt reports a broken tree invariant. It indicates a bug, not
	// bad data.
	ErrCorrupt = errors.New("object structure corrupted")
)

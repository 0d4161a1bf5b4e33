package core

import "errors"

// Common errors.
var (
	ErrInvalidColor = errors.New("invalid note color")
	ErrNoRepository = errors.New("no repository configured")
	ErrMissingField = errors.New("missing note field")
)

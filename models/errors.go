package models

import "errors"

var (
	// ErrMalformedInput is returned when the catalog is missing a required
	// field or carries a price that is not a non-negative number.
	ErrMalformedInput = errors.New("malformed catalog input")

	// ErrUnknownFormat is returned for an unsupported catalog source or report format.
	ErrUnknownFormat = errors.New("unknown format")
)

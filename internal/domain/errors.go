package domain

import "errors"

// Common domain errors
var (
	ErrNotFound = errors.New("resource not found")
	// ErrConflict is returned when an insert would break a natural key.
	ErrConflict = errors.New("resource already exists")
)

// Package repoerr holds the sentinel errors shared between the storage
// layer and the domain services. Keeping them in a leaf package lets both
// sides match on the same values without importing each other.
package repoerr

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
)

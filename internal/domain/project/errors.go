package project

import "errors"

var (
	// ErrProjectNotFound is returned when the requested project does not
	// exist for this user.
	ErrProjectNotFound = errors.New("project not found")

	// ErrInvalidInput is returned when a create or update request fails
	// validation.
	ErrInvalidInput = errors.New("invalid project input")
)

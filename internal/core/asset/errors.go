// Package asset contains the pure business logic for asset operations.
// This is part of the Functional Core - no I/O, only pure functions.
package asset

import "errors"

// Sentinel errors for the asset domain. Services wrap these with context;
// callers branch with errors.Is.
var (
	// ErrDuplicateID is returned when creating an asset whose id already exists.
	ErrDuplicateID = errors.New("duplicate asset id")

	// ErrValidation is returned when a required field is missing on create.
	ErrValidation = errors.New("asset validation failed")

	// ErrMalformedID is returned when an id does not match the PREFIX-NNN pattern.
	ErrMalformedID = errors.New("malformed asset id")

	// ErrNotFound is returned when a resolver target is absent. Dangling
	// cross-references are a tolerated state: callers typically swallow
	// this into a no-op rather than surfacing a failure.
	ErrNotFound = errors.New("asset not found")
)

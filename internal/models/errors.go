package models

import "errors"

// Base error kinds. Service-level errors wrap one of these so the HTTP layer
// can map them to status codes with errors.Is.
var (
	// ErrNotFound indicates a lookup by id matched no row.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates the client supplied an invalid body or reference.
	ErrValidation = errors.New("validation failed")
)

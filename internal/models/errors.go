package models

import "errors"

// Sentinel errors shared across layers. Handlers map these to HTTP statuses;
// anything unrecognized becomes a generic internal failure.
var (
	// ErrUnauthenticated means the bearer credential is missing, malformed
	// or rejected by the identity provider.
	ErrUnauthenticated = errors.New("user is not authenticated")

	// ErrUnauthorized means the caller is authenticated but not entitled to
	// the record it targets.
	ErrUnauthorized = errors.New("user is not authorized")

	// ErrValidation means the input is malformed.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound means the referenced record is absent.
	ErrNotFound = errors.New("not found")

	// ErrProfileRequired means the operation needs a saved profile first.
	ErrProfileRequired = errors.New("profile required")
)

package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgUserRequired      = "user id is required"
	ErrMsgTimestampRequired = "event timestamp is required"
	ErrMsgStorageFailure    = "storage failure"
)

// Domain errors
var (
	// ErrUserRequired indicates an event or query arrived without a user id.
	ErrUserRequired = errors.New(ErrMsgUserRequired)

	// ErrTimestampRequired indicates an event arrived without a timestamp.
	ErrTimestampRequired = errors.New(ErrMsgTimestampRequired)

	// ErrStorageFailure wraps any unavailability or query error from the
	// event store. Callers treat it as transient; retry policy belongs to
	// the surrounding resilience layer, not this service.
	ErrStorageFailure = errors.New(ErrMsgStorageFailure)
)

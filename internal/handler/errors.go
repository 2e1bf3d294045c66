package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidUserID         = "Invalid user id"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgStorageUnavailable    = "Event store temporarily unavailable"
	ErrMsgRequestCanceled       = "Request canceled"
	ErrMsgRequestTimedOut       = "Request timed out"
)

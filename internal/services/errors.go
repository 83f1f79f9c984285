package services

import "errors"

// Caller errors. All three are terminal: they are reported straight back
// to the caller and never retried. Anything else coming out of a store is
// an internal error and propagates unclassified.
var (
	// ErrUnauthorized means the supplied identity matches no account.
	ErrUnauthorized = errors.New("authentication required")
	// ErrForbidden means the account exists but its role may not mutate
	// announcements.
	ErrForbidden = errors.New("permission denied")
	// ErrNotFound means the target announcement does not exist.
	ErrNotFound = errors.New("announcement not found")
)

package booking

import "errors"

var (
	// ErrNotFound indicates the booking does not exist.
	ErrNotFound = errors.New("booking not found")
	// ErrAccessDenied indicates the booking belongs to another user.
	ErrAccessDenied = errors.New("access denied")
)

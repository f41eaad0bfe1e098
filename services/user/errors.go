package user

import "errors"

var (
	// ErrUsernameTaken indicates the requested username already exists.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials indicates an unknown username or wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

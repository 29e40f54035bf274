package command

import "errors"

var (
	// ErrInvalidCredentials is returned for an unknown username or a wrong password alike
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUsernameTaken is returned when registering a username that already exists
	ErrUsernameTaken = errors.New("username already exists")
)

package validators

import "errors"

var (
	// ErrEmptyUsername indicates a create-user request without a username.
	ErrEmptyUsername = errors.New("username must not be empty")
	// ErrEmptyPassword indicates a create-user request without a password.
	ErrEmptyPassword = errors.New("password must not be empty")
	// ErrEmptyRole indicates a role list containing an empty label.
	ErrEmptyRole = errors.New("role labels must not be empty")
)

package utils

import "errors"

// ErrEmptyPassword is returned by [HashPassword] when the plaintext is empty.
var ErrEmptyPassword = errors.New("empty password")

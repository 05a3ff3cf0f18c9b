package adapter

import "errors"

// Client-side sentinel errors mapped from server responses.
var (
	// ErrUnauthorized covers 401 responses: bad credentials or an expired
	// or invalid token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden covers 403 responses: missing authentication or an
	// insufficient role.
	ErrForbidden = errors.New("forbidden")
	// ErrBadRequest covers 400 responses, e.g. a duplicate username.
	ErrBadRequest = errors.New("bad request")
	// ErrUnexpectedStatus covers any other non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected server response")
)

package service

import "errors"

var (
	// ErrInvalidDataProvided indicates a request payload that fails
	// validation before any credential processing happens.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both "unknown username" and "wrong
	// password". The two cases are intentionally indistinguishable at this
	// boundary; the precise cause is only logged.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenExpired indicates a well-formed, correctly signed token whose
	// exp claim is in the past. A normal, user-recoverable condition.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenSignatureInvalid indicates a signature or algorithm mismatch.
	// May indicate tampering; reported differently from expiry.
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")

	// ErrTokenMalformed indicates a token that cannot be parsed or lacks a
	// subject claim.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenCreationFailed wraps unexpected signing failures.
	ErrTokenCreationFailed = errors.New("token creation failed")
)

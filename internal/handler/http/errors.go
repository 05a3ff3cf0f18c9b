// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Piotr Zawadzki

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoTokenInContext is returned by the role middleware when no verified
	// token is present in the request context, i.e. the auth middleware did
	// not run earlier in the chain.
	ErrNoTokenInContext = errors.New("no verified token in request context")
)

// User-facing detail messages. The Polish strings are part of the public
// API surface and match the responses the service has always produced.
const (
	detailNotAuthenticated        = "Not authenticated"
	detailInvalidCredentials      = "Invalid credentials"
	detailCannotVerifyCredentials = "Nie można zweryfikować poświadczeń"
	detailTokenExpired            = "Token wygasł"
	detailAdminRequired           = "Brak uprawnień administratora"
	detailInsufficientRole        = "Brak wymaganych uprawnień"
	detailDuplicateUser           = "Użytkownik o tej nazwie już istnieje"
	detailInvalidJSON             = "Invalid JSON was passed"
	detailInvalidData             = "Invalid data provided"
)

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password hashing,
// HTTP response writing, JWT token generation and validation, and other
// common operations.
package utils

import (
	"context"

	"github.com/pzawadzki/filmoteka-auth/models"
)

type ctxKey int

// TokenCtxKey is the context key under which the authentication middleware
// stores the verified [models.Token] for downstream handlers.
const TokenCtxKey ctxKey = iota

// TokenFromContext retrieves the verified token stored in ctx by the
// authentication middleware. The second return value reports whether a
// token was present.
func TokenFromContext(ctx context.Context) (*models.Token, bool) {
	token, ok := ctx.Value(TokenCtxKey).(*models.Token)
	return token, ok
}

// ContextWithToken returns a copy of ctx carrying the verified token.
func ContextWithToken(ctx context.Context, token *models.Token) context.Context {
	return context.WithValue(ctx, TokenCtxKey, token)
}

package service

import (
	"context"

	"github.com/pzawadzki/filmoteka-auth/models"
)

// AuthService bundles credential verification, administrative user creation,
// and the JWT token lifecycle.
type AuthService interface {
	// Login authenticates a username/password pair and returns the stored
	// user record. An unknown username and a wrong password both surface as
	// [ErrInvalidCredentials] so callers cannot enumerate accounts.
	Login(ctx context.Context, username, password string) (models.User, error)

	// CreateUser creates a new account from an administrative request.
	// The plaintext password is hashed before persistence and never stored.
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)

	// CreateToken issues a signed JWT carrying the user's current roles
	// snapshot.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken validates and parses a raw JWT string, classifying
	// failures into [ErrTokenExpired], [ErrTokenSignatureInvalid], and
	// [ErrTokenMalformed].
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

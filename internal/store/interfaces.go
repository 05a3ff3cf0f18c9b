package store

import (
	"context"

	"github.com/pzawadzki/filmoteka-auth/models"
)

// UserRepository is the credential-store boundary consumed by the auth
// service layer.
type UserRepository interface {
	// CreateUser persists a new user record. The username must be unique;
	// a conflict is reported as [ErrUsernameAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername retrieves a user record by its natural key.
	// A missing record is reported as [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

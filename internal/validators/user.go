// Package validators holds request-payload validation rules applied by the
// service layer before any credential material is processed.
package validators

import (
	"github.com/pzawadzki/filmoteka-auth/models"
)

// UserValidator validates administrative create-user requests.
type UserValidator interface {
	ValidateCreateUser(req models.CreateUserRequest) error
}

type userValidator struct{}

// NewUserValidator returns the default [UserValidator].
func NewUserValidator() UserValidator {
	return &userValidator{}
}

// ValidateCreateUser checks the create-user payload: username and password
// must be non-empty and every supplied role label must be non-empty.
// Role labels are otherwise opaque; unknown labels are allowed because the
// role model is a flat set of strings.
func (v *userValidator) ValidateCreateUser(req models.CreateUserRequest) error {
	if req.Username == "" {
		return ErrEmptyUsername
	}

	if req.Password == "" {
		return ErrEmptyPassword
	}

	for _, role := range req.Roles {
		if role == "" {
			return ErrEmptyRole
		}
	}

	return nil
}

package models

import (
	"slices"
	"time"
)

// Role labels known to the application. Roles are flat: no label implies
// another, so an operation requiring RoleUser does not admit a caller that
// only holds RoleAdmin.
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)

// DefaultRoles is the role set assigned to newly created users when the
// administrative request does not specify one.
func DefaultRoles() []string {
	return []string{RoleUser}
}

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique user identifier. Natural key, immutable once
	// the account is created.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext, and is excluded
	// from JSON serialization.
	PasswordHash []byte `json:"-"`

	// Roles is the flat set of role labels granted to the user.
	// Non-empty after creation; defaults to [RoleUser].
	Roles []string `json:"roles"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// HasRole reports whether role is a member of the user's role set.
// The check is exact string membership; there is no role hierarchy.
func (u User) HasRole(role string) bool {
	return slices.Contains(u.Roles, role)
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

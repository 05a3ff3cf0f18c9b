package models

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is the successful response of POST /login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CreateUserRequest is the body of the administrative POST /users.
// Roles may be omitted; the service then assigns [DefaultRoles].
type CreateUserRequest struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Roles    []string `json:"roles,omitempty"`
}

// UserDisplay is the public projection of a user record: identity and
// roles, never credential material.
type UserDisplay struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
}

// MessageResponse wraps a single human-readable message.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body returned by the HTTP layer.
// Only the coarse, non-leaking detail is exposed to callers.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

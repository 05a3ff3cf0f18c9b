package models

import (
	"slices"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every issued JWT.
//
// It extends the standard registered claims (sub, iss, iat, exp) with the
// application-specific "roles" claim. Roles are copied from the User record
// at issuance time. The token carries a snapshot, not a live reference, so
// role changes take effect only after the outstanding token expires.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Roles is the flat set of role labels the subject held at issuance.
	Roles []string `json:"roles"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
// Username and Roles are cached copies of the "sub" and "roles" claims,
// populated during issuance or after successful verification.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Username is the subject extracted from the "sub" claim.
	Username string `json:"-"`

	// Roles is the role set extracted from the "roles" claim.
	Roles []string `json:"-"`
}

// HasRole reports whether role is present in the token's roles claim.
// Flat membership check, same semantics as [User.HasRole].
func (t *Token) HasRole(role string) bool {
	return slices.Contains(t.Roles, role)
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pzawadzki/filmoteka-auth/models"
)

// GenerateJWTToken creates a signed JWT carrying the user's identity and
// role snapshot.
//
// The token includes the following claims:
//   - Issuer    (iss):   identifies the service that issued the token
//   - Subject   (sub):   the username
//   - roles:             the user's role labels at issuance time
//   - IssuedAt  (iat):   the current time
//   - ExpiresAt (exp):   the current time plus tokenDuration
//
// The signing method is resolved from the configured algorithm identifier
// (e.g. "HS256"). All parameters except roles are required.
//
// Returns:
//
//	models.Token - contains the signed token string and the jwt.Token object
//	error        - non-nil if parameters are invalid or signing fails
func GenerateJWTToken(issuer, username string, roles []string, tokenDuration time.Duration, algorithm, signKey string) (models.Token, error) {
	if issuer == "" || username == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return models.Token{}, fmt.Errorf("unknown signing algorithm: %q", algorithm)
	}

	now := time.Now()
	claims := &models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Roles: roles,
	}

	token := jwt.NewWithClaims(method, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		Username:     username,
		Roles:        roles,
	}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Algorithm pinning: only the configured algorithm is accepted
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence
//
// The underlying jwt sentinel errors are preserved in the returned error
// chain so callers can distinguish an expired token
// (jwt.ErrTokenExpired) from a forged one (jwt.ErrTokenSignatureInvalid).
//
// Returns:
//
//	models.Token - contains the parsed jwt.Token object, the subject and roles
//	error        - non-nil if validation fails or claims are missing
func ValidateAndParseJWTToken(tokenString, signKey, algorithm, tokenIssuer string) (models.Token, error) {
	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{algorithm}),
		jwt.WithIssuer(tokenIssuer),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Subject == "" {
		return models.Token{}, ErrNoSubjectClaim
	}

	return models.Token{
		Token:        token,
		SignedString: tokenString,
		Username:     claims.Subject,
		Roles:        claims.Roles,
	}, nil
}

// ErrNoSubjectClaim is returned when an otherwise valid token carries no
// "sub" claim.
var ErrNoSubjectClaim = errors.New("token has no subject claim")

// ParseBearerToken extracts the raw token from an "Authorization" header
// value of the form "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

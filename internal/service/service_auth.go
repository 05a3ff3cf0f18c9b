package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pzawadzki/filmoteka-auth/internal/config"
	"github.com/pzawadzki/filmoteka-auth/internal/logger"
	"github.com/pzawadzki/filmoteka-auth/internal/store"
	"github.com/pzawadzki/filmoteka-auth/internal/utils"
	"github.com/pzawadzki/filmoteka-auth/internal/validators"
	"github.com/pzawadzki/filmoteka-auth/models"
)

// authService is the concrete implementation of [AuthService].
// It handles credential verification, administrative user creation, and the
// JWT token lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// userValidator checks administrative create-user payloads.
	userValidator validators.UserValidator

	// tokenSignKey is the secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenAlgorithm is the JWS algorithm identifier tokens are signed and
	// verified with. Tokens carrying any other algorithm are rejected.
	tokenAlgorithm string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the work factor applied when hashing new passwords.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		userValidator:  validators.NewUserValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenAlgorithm: cfg.TokenAlgorithm,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Login authenticates an existing user.
//
// It looks the account up by username and verifies the supplied password
// against the stored bcrypt hash. An unknown username and a password
// mismatch both return [ErrInvalidCredentials]; the distinction is logged
// but never surfaced, so the response cannot be used to enumerate accounts.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("username", username).Msg("login attempt for unknown username")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.VerifyPassword(password, foundUser.PasswordHash) {
		log.Warn().Str("username", username).Msg("login attempt with wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateUser creates a new user account from an administrative request.
//
// The payload is validated, the roles default to [models.DefaultRoles] when
// absent, and the plaintext password is bcrypt-hashed before persistence.
// Uniqueness is enforced by the storage layer; a conflict surfaces as
// [store.ErrUsernameAlreadyExists].
func (a *authService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.userValidator.ValidateCreateUser(req); err != nil {
		log.Error().Str("username", req.Username).Err(err).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	roles := req.Roles
	if len(roles) == 0 {
		roles = models.DefaultRoles()
	}

	passwordHash, err := utils.HashPassword(req.Password, a.bcryptCost)
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	createdUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Roles:        roles,
	})
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return createdUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured sign key and algorithm, carries
// the configured issuer as the "iss" claim, the username as "sub", the
// user's current roles as the "roles" claim snapshot, and expires after the
// configured duration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, user.Roles, a.tokenDuration, a.tokenAlgorithm, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Failures are classified into three distinguishable kinds so the transport
// layer can report expiry differently from tampering:
//   - signature or algorithm mismatch → [ErrTokenSignatureInvalid]
//   - valid signature, exp in the past → [ErrTokenExpired]
//   - anything else (unparseable, missing sub, wrong issuer) → [ErrTokenMalformed]
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenAlgorithm, a.tokenIssuer)
	if err != nil {
		// Keep the precise cause in the logs; callers only see the category.
		log.Debug().Err(err).Msg("token validation failed")

		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return models.Token{}, ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Token{}, ErrTokenExpired
		default:
			return models.Token{}, ErrTokenMalformed
		}
	}

	return token, nil
}

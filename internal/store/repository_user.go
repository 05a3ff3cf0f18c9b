package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pzawadzki/filmoteka-auth/internal/logger"
	"github.com/pzawadzki/filmoteka-auth/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table
// and works with both supported drivers through per-driver query sets.
//
// Roles are persisted as a JSON-encoded text column so the same schema
// works on Postgres and SQLite.
type userRepository struct {
	logger  *logger.Logger
	db      *DB
	queries userQueries
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:      db,
		logger:  logger,
		queries: queriesForDriver(db.Driver()),
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the new account.
//
// Error handling:
//   - violated uniqueness constraint on username → [ErrUsernameAlreadyExists]
//   - any other driver-level error → wrapped [ErrExecutingQuery]
//   - scan failure → wrapped [ErrScanningRow]
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	rolesJSON, err := json.Marshal(user.Roles)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrEncodingRoles, err)
	}

	row := r.db.QueryRowContext(ctx, r.queries.createUser, user.Username, user.PasswordHash, rolesJSON)

	var created models.User
	var storedRoles []byte
	if err := row.Scan(&created.UserID, &created.Username, &created.PasswordHash, &storedRoles, &created.CreatedAt); err != nil {
		if r.db.isUniqueViolation(err) {
			return models.User{}, ErrUsernameAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal(storedRoles, &created.Roles); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrEncodingRoles, err)
	}

	return created, nil
}

// FindUserByUsername retrieves the user record matching the given username.
//
// Error handling:
//   - empty result set → [ErrNoUserWasFound]
//   - any other driver-level error → wrapped [ErrExecutingQuery]
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	var storedRoles []byte

	row := r.db.QueryRowContext(ctx, r.queries.findUserByUsername, username)
	if err := row.Scan(&foundUser.UserID, &foundUser.Username, &foundUser.PasswordHash, &storedRoles, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := json.Unmarshal(storedRoles, &foundUser.Roles); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrEncodingRoles, err)
	}

	return foundUser, nil
}

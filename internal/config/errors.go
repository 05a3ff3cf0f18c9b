package config

import "errors"

// Validation errors returned when required configuration values are missing
// or invalid after all sources have been merged.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing key was provided.
	// The server refuses to start in this state.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")
	// ErrMissingDatabaseDSN indicates that no database connection string was
	// provided.
	ErrMissingDatabaseDSN = errors.New("database DSN is not configured")
	// ErrUnsupportedDBDriver indicates a database driver other than
	// [DriverPostgres] or [DriverSQLite].
	ErrUnsupportedDBDriver = errors.New("unsupported database driver")
	// ErrInvalidTokenDuration indicates a zero or negative token TTL.
	ErrInvalidTokenDuration = errors.New("token duration must be positive")
	// ErrMissingServerAddress indicates that the client has no server base
	// URL to talk to.
	ErrMissingServerAddress = errors.New("server address is not configured")
)

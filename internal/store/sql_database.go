package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pzawadzki/filmoteka-auth/internal/config"
	"github.com/pzawadzki/filmoteka-auth/internal/logger"
)

// DB wraps the raw sql.DB handle together with the driver it was opened
// with, so repositories can pick driver-specific queries and error mapping.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// Driver returns the database/sql driver name the handle was opened with.
func (db *DB) Driver() string {
	return db.driver
}

// NewDB opens a database connection for the configured driver and verifies
// it with a ping.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", cfg.Driver)
	}
}

// isUniqueViolation reports whether err signals a violated uniqueness
// constraint for the driver this handle was opened with.
func (db *DB) isUniqueViolation(err error) bool {
	switch db.driver {
	case config.DriverPostgres:
		return isPostgresUniqueViolation(err)
	case config.DriverSQLite:
		return isSQLiteUniqueViolation(err)
	default:
		return false
	}
}

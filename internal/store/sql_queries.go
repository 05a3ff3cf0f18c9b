package store

import "github.com/pzawadzki/filmoteka-auth/internal/config"

// userQueries holds the SQL text for the user repository. Postgres and
// SQLite differ only in their placeholder syntax, so each driver gets its
// own constant set selected at repository construction time.
type userQueries struct {
	createUser         string
	findUserByUsername string
}

const (
	createUserPostgres = `INSERT INTO users (username, password_hash, roles)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, password_hash, roles, created_at;`

	findUserByUsernamePostgres = `SELECT user_id, username, password_hash, roles, created_at
    FROM users
    WHERE username = $1;`

	createUserSQLite = `INSERT INTO users (username, password_hash, roles)
    VALUES (?, ?, ?)
    RETURNING user_id, username, password_hash, roles, created_at;`

	findUserByUsernameSQLite = `SELECT user_id, username, password_hash, roles, created_at
    FROM users
    WHERE username = ?;`
)

func queriesForDriver(driver string) userQueries {
	if driver == config.DriverSQLite {
		return userQueries{
			createUser:         createUserSQLite,
			findUserByUsername: findUserByUsernameSQLite,
		}
	}

	return userQueries{
		createUser:         createUserPostgres,
		findUserByUsername: findUserByUsernamePostgres,
	}
}

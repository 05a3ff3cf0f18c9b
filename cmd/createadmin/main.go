// Command createadmin bootstraps the initial administrator account.
//
// Every protected write on the server requires an admin token, so a fresh
// deployment needs one account seeded out of band. The tool is idempotent:
// if the account already exists it reports so and exits cleanly.
package main

import (
	"context"
	"errors"

	"github.com/pzawadzki/filmoteka-auth/internal/config"
	"github.com/pzawadzki/filmoteka-auth/internal/logger"
	"github.com/pzawadzki/filmoteka-auth/internal/store"
	"github.com/pzawadzki/filmoteka-auth/internal/utils"
	"github.com/pzawadzki/filmoteka-auth/migrations"
	"github.com/pzawadzki/filmoteka-auth/models"
)

const (
	adminUsername = "admin"
	adminPassword = "admin123"
)

func main() {
	log := logger.NewLogger("filmoteka-auth-createadmin")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB, db.Driver()); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)

	if _, err = storages.UserRepository.FindUserByUsername(ctx, adminUsername); err == nil {
		log.Info().Str("username", adminUsername).Msg("admin account already exists, nothing to do")
		return
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Fatal().Err(err).Msg("error checking for existing admin account")
	}

	hash, err := utils.HashPassword(adminPassword, cfg.Auth.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("error hashing admin password")
	}

	created, err := storages.UserRepository.CreateUser(ctx, models.User{
		Username:     adminUsername,
		PasswordHash: hash,
		Roles:        []string{models.RoleUser, models.RoleAdmin},
	})
	if err != nil {
		// lost the race against a concurrent bootstrap, the account is there
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			log.Info().Str("username", adminUsername).Msg("admin account already exists, nothing to do")
			return
		}
		log.Fatal().Err(err).Msg("error creating admin account")
	}

	log.Info().
		Str("username", created.Username).
		Strs("roles", created.Roles).
		Msg("admin account created")
}

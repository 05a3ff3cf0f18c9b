package store

import (
	"github.com/pzawadzki/filmoteka-auth/internal/logger"
)

// Storages is the container of all repositories handed to the service layer.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages wires all repositories to the given database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Piotr Zawadzki

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// A missing token sign key or database DSN is a fatal misconfiguration:
// the process must not start without them.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite {
		return ErrUnsupportedDBDriver
	}

	if cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidTokenDuration
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.BaseURL == "" {
		return ErrMissingServerAddress
	}

	return nil
}

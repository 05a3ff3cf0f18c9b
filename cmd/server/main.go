// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Piotr Zawadzki
package main

import (
	"context"
	"fmt"

	"github.com/pzawadzki/filmoteka-auth/internal/config"
	httphandler "github.com/pzawadzki/filmoteka-auth/internal/handler/http"
	"github.com/pzawadzki/filmoteka-auth/internal/logger"
	"github.com/pzawadzki/filmoteka-auth/internal/server"
	"github.com/pzawadzki/filmoteka-auth/internal/service"
	"github.com/pzawadzki/filmoteka-auth/internal/store"
	"github.com/pzawadzki/filmoteka-auth/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("filmoteka-auth-server")
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
	services := service.NewServices(storages, cfg, log)
	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}

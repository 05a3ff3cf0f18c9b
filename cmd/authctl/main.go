package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pzawadzki/filmoteka-auth/internal/adapter"
	"github.com/pzawadzki/filmoteka-auth/internal/config"
	"github.com/pzawadzki/filmoteka-auth/internal/logger"
	"github.com/pzawadzki/filmoteka-auth/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("filmoteka-auth-ctl")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api := adapter.NewAPIClient(adapter.HTTPClientConfig{
		BaseURL: cfg.BaseURL,
		Timeout: cfg.RequestTimeout,
	})

	model := tui.NewLoginModel(context.Background(), api)
	if _, err = tea.NewProgram(model).Run(); err != nil {
		log.Fatal().Err(err).Msg("error running ui")
	}
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

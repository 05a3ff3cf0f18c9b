package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// ClientConfig holds the settings for the authctl command-line client.
type ClientConfig struct {
	// BaseURL is the base URL of the filmoteka-auth server
	// (e.g. "http://localhost:8000").
	// Env: CLIENT_SERVER_URL
	BaseURL string `env:"SERVER_URL"`

	// RequestTimeout bounds every outbound API call.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

type clientEnvConfig struct {
	Client ClientConfig `envPrefix:"CLIENT_"`
}

// GetClientConfig loads the authctl configuration from environment
// variables and command-line flags (flags win for explicitly set values).
func GetClientConfig() (*ClientConfig, error) {
	envCfg := &clientEnvConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, fmt.Errorf("error getting client configs: %w", err)
	}

	cfg := envCfg.Client

	fs := flag.NewFlagSet("authctl", flag.ContinueOnError)
	fs.StringVar(&cfg.BaseURL, "s", cfg.BaseURL, "Server base URL")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "Request timeout")
	_ = fs.Parse(os.Args[1:])

	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8000"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	return &cfg, cfg.validate()
}

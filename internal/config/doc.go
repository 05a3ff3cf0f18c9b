// Package config loads and validates the application configuration.
//
// Server configuration is assembled from three sources merged by priority
// (environment variables, command-line flags, optional JSON file) on top of
// built-in defaults. The merged result is validated once at startup; the
// process refuses to start without a token signing key or a database DSN.
//
// Secrets (the token sign key) live only inside the returned config value
// and are passed explicitly into the components that need them.
package config

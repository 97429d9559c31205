// Package config loads server settings from the environment.
package config

import (
	"errors"
	"os"
)

// Config is the server's runtime configuration.
type Config struct {
	// Addr is the listen address, e.g. ":3000".
	Addr string
	// DBPath is the SQLite database file.
	DBPath string
	// JWTSecret signs session tokens. Required.
	JWTSecret string
}

// Load reads configuration from TASKTRACK_* environment variables,
// applying defaults for everything except the signing secret.
func Load() (Config, error) {
	cfg := Config{
		Addr:      envOr("TASKTRACK_ADDR", ":3000"),
		DBPath:    envOr("TASKTRACK_DB", "./tasktrack.db"),
		JWTSecret: os.Getenv("TASKTRACK_JWT_SECRET"),
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("TASKTRACK_JWT_SECRET must be set")
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

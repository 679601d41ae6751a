package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by the client.
const (
	EnvAPIBaseURL     = "CAMPUSCLI_API_BASE_URL"
	EnvRequestTimeout = "CAMPUSCLI_REQUEST_TIMEOUT"
	EnvResolveTimeout = "CAMPUSCLI_RESOLVE_TIMEOUT"
	EnvPollInterval   = "CAMPUSCLI_POLL_INTERVAL"
	EnvDatabasePath   = "CAMPUSCLI_DB_PATH"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first when present;
// variables already set in the environment win over the file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	setDuration(&cfg.RequestTimeout, os.Getenv(EnvRequestTimeout))
	setDuration(&cfg.ResolveTimeout, os.Getenv(EnvResolveTimeout))
	setDuration(&cfg.PollInterval, os.Getenv(EnvPollInterval))
}

// setDuration parses v as a time.Duration and stores it in dst.
// Empty or malformed values leave dst unchanged.
func setDuration(dst *time.Duration, v string) {
	if v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return
	}
	*dst = d
}

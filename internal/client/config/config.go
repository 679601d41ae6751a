package config

import "time"

// Config holds runtime settings for the campus facilities CLI.
//
// Fields:
//   - APIBaseURL: base URL of the campus REST backend.
//   - RequestTimeout: per-request deadline for ordinary API calls.
//   - ResolveTimeout: hard ceiling for the startup session resolution;
//     past it the stored credential is treated as unauthenticated.
//   - PollInterval: refresh cadence of the watch view.
//   - DatabasePath: sqlite file holding locally persisted client state.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	ResolveTimeout time.Duration
	PollInterval   time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 10 * time.Second
	c.ResolveTimeout = 3 * time.Second
	c.PollInterval = 30 * time.Second
	c.DatabasePath = "campus.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), a JSON file
// (if given via -c/-config), and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import "time"

// Config holds runtime settings for the ContactKeeper CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the /api/v1
//     prefix.
//   - RequestTimeout: per-request timeout of the HTTP client.
//   - TokenFile: path of the stored bearer token; empty means the default
//     location under the user's config directory.
//   - LogLevel: zerolog level name (debug, info, warn, error).
type Config struct {
	APIBaseURL     string
	TokenFile      string
	LogLevel       string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api/v1"
	c.TokenFile = ""
	c.LogLevel = "info"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

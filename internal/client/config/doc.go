// Package config loads runtime configuration for the ContactKeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. The CONTACTKEEPER_API_URL environment variable.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-f string   path of the stored bearer token
//	-l string   log level (debug, info, warn, error)
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8000/api/v1",
//	  "token_file": "/home/user/.config/contactkeeper/token",
//	  "log_level": "debug",
//	  "request_timeout": "10s"
//	}
//
// Primary API
//
//   - type Config                     — the resolved runtime settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, env, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config

package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/flagx"
)

// EnvAPIBaseURL overrides the API base URL between the JSON and flag stages.
const EnvAPIBaseURL = "CONTACTKEEPER_API_URL"

// parseEnv overlays Config with values from the environment.
func parseEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the backend API (default from Config)
//	-f string   path of the stored bearer token
//	-l string   log level (debug, info, warn, error)
//	-t int      request timeout in seconds
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-f", "-l", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.TokenFile, "f", cfg.TokenFile, "path of the stored bearer token")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}

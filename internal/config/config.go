// Package config provides runtime tuning for csvpost.
// The three run inputs (CSV file, mapping file, URL) always come from the
// command line; this package only covers how the run behaves. Settings are
// read from environment variables with defaults and validated on startup to
// fail fast on misconfiguration.
package config

import "time"

// Config holds all runtime configuration.
type Config struct {
	Dispatch DispatchConfig
	Logging  LoggingConfig
}

// DispatchConfig holds HTTP dispatch settings.
type DispatchConfig struct {
	// Timeout bounds a single POST including reading the response (default: 30s, 0 disables)
	Timeout time.Duration `env:"DISPATCH_TIMEOUT" default:"30s"`

	// Wait makes the run block until every dispatched request settles (default: true)
	Wait bool `env:"DISPATCH_WAIT" default:"true"`

	// DrainTimeout is the maximum time to wait for in-flight requests (default: 5m)
	DrainTimeout time.Duration `env:"DISPATCH_DRAIN_TIMEOUT" default:"5m"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Default returns the configuration used when no environment overrides are set.
func Default() *Config {
	return &Config{
		Dispatch: DispatchConfig{
			Timeout:      30 * time.Second,
			Wait:         true,
			DrainTimeout: 5 * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

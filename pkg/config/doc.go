// Package config provides a type-safe, generic and cached way to load
// application configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 to
// deliver a small API that:
//
//   - Loads values from one or multiple .env files (with a fallback to the
//     default .env in the current working directory).
//   - Parses the environment into any Go struct using field tags.
//   - Caches each successfully loaded configuration type so it is only
//     parsed once for the lifetime of the process.
//   - Exposes helpers that panic on failure (MustLoadEnv, MustLoad) for
//     configuration the process cannot start without.
//
// # Usage
//
// Describe the configuration as a struct with env tags:
//
//	type LoggingConfig struct {
//	    Level  string `env:"LOG_LEVEL" envDefault:"info"`
//	    Format string `env:"LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg LoggingConfig
//	config.MustLoad(&cfg)
//
// Subsequent calls to config.Load for the same struct type are served from
// the in-memory cache without re-parsing.
//
// # Error Handling
//
// The package defines sentinel errors comparable with errors.Is:
// ErrParsingConfig, ErrLoadingEnvFile, and ErrNilPointer.
//
// # Testing Helpers
//
// Use ResetCache to clear the cache between tests that mutate the process
// environment.
package config

// Package config loads typed configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - The default `.env` file in the working directory is loaded once, if it
//     exists. LoadEnv loads explicit files on top.
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per type, so repeated calls are cheap.
//   - MustLoad panics on failure for configuration the process cannot start
//     without.
//
// # Usage
//
//	type DeviceConfig struct {
//	    DefaultMode string `env:"DEVICE_DEFAULT_MODE" envDefault:"auto"`
//	}
//
//	var cfg DeviceConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// The package also defines the deployment Environment (development, staging,
// production) used to pick logging defaults.
//
// # Error Handling
//
// Sentinel errors comparable with `errors.Is`: ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer.
//
// # Testing Helpers
//
// ResetCache clears the cache so tests can reload a type after changing the
// process environment with t.Setenv.
package config

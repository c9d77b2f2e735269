// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// a `.env` file in the working directory is loaded once per process (values
// already present in the environment take precedence), then the environment
// is parsed into any Go struct using `env` / `envDefault` field tags.
//
// # Usage
//
//	type Config struct {
//		Port   string `env:"PORT" envDefault:"5000"`
//		Secret string `env:"ACCESS_TOKEN_SECRET,required"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// Tests can bypass the process environment entirely:
//
//	err := config.Load(&cfg, config.WithEnvironment(map[string]string{
//		"ACCESS_TOKEN_SECRET": "test",
//	}))
//
// # Error Handling
//
// Parse failures are joined with ErrParsingConfig; check with errors.Is.
package config

package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var dotenvOnce sync.Once

type loadOptions struct {
	envFiles    []string
	environment map[string]string
	prefix      string
}

// Option configures Load.
type Option func(*loadOptions)

// WithEnvFiles overrides the dotenv files read before parsing.
// Missing files are ignored, like the default ".env".
func WithEnvFiles(files ...string) Option {
	return func(o *loadOptions) { o.envFiles = files }
}

// WithEnvironment parses from the given map instead of the process
// environment. Dotenv files are not read in that case.
func WithEnvironment(environment map[string]string) Option {
	return func(o *loadOptions) { o.environment = environment }
}

// WithPrefix prepends prefix to every env key of the target struct.
func WithPrefix(prefix string) Option {
	return func(o *loadOptions) { o.prefix = prefix }
}

// Load parses environment variables into the provided configuration struct
// based on its `env` and `envDefault` field tags.
//
// Dotenv files are loaded into the process environment once per process;
// variables that are already set win over file values.
//
// Example:
//
//	type DatabaseConfig struct {
//		URL  string `env:"MONGODB_URL,required"`
//		Name string `env:"MONGODB_DATABASE" envDefault:"foodStation"`
//	}
//
//	var cfg DatabaseConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &loadOptions{envFiles: []string{".env"}}
	for _, opt := range opts {
		opt(o)
	}

	if o.environment == nil {
		dotenvOnce.Do(func() {
			for _, f := range o.envFiles {
				// The file might not exist and that's ok
				_ = godotenv.Load(f)
			}
		})
	}

	if err := env.ParseWithOptions(v, env.Options{
		Environment: o.environment,
		Prefix:      o.prefix,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Use it for configuration the process cannot start without.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

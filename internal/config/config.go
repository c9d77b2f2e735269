// Package config aggregates the environment configuration of the API process.
package config

import (
	"github.com/dmitrymomot/foodstation/internal/api"
	"github.com/dmitrymomot/foodstation/internal/session"
	"github.com/dmitrymomot/foodstation/pkg/config"
	"github.com/dmitrymomot/foodstation/pkg/httpserver"
	"github.com/dmitrymomot/foodstation/pkg/mongo"
	"github.com/dmitrymomot/foodstation/pkg/redis"
)

// App identifies the running process in logs.
type App struct {
	Name string `env:"APP_NAME" envDefault:"foodstation"`
	Env  string `env:"APP_ENV" envDefault:"development"`
}

// Config is the full process configuration.
type Config struct {
	App     App
	HTTP    httpserver.Config
	Mongo   mongo.Config
	Redis   redis.Config
	Session session.Config
	API     api.Config
}

// Load reads Config from the environment and the optional .env file.
func Load(opts ...config.Option) (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

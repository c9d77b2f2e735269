package config_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appconfig "github.com/dmitrymomot/foodstation/internal/config"
	"github.com/dmitrymomot/foodstation/pkg/config"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		cfg, err := appconfig.Load(config.WithEnvironment(map[string]string{
			"ACCESS_TOKEN_SECRET": "s3cret",
			"DB_USER":             "user",
			"DB_PASS":             "pass",
		}))
		require.NoError(t, err)

		assert.Equal(t, "foodstation", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, ":5000", cfg.HTTP.ListenAddr())
		assert.Equal(t, "foodStation", cfg.Mongo.Database)
		assert.False(t, cfg.Redis.Enabled())

		assert.Equal(t, "s3cret", cfg.Session.Secret)
		assert.Equal(t, time.Hour, cfg.Session.TTL)
		assert.Equal(t, "token", cfg.Session.CookieName)
		assert.True(t, cfg.Session.Enforce)
		assert.True(t, cfg.Session.Cookie.Secure)
		assert.True(t, cfg.Session.Cookie.HttpOnly)
		assert.Equal(t, http.SameSiteNoneMode, cfg.Session.Cookie.SameSite)

		assert.Empty(t, cfg.API.AllowedOrigins)
		assert.Empty(t, cfg.API.TrustedProxyHeaders)
		assert.Equal(t, 10, cfg.API.SessionLimit.Capacity)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()
		cfg, err := appconfig.Load(config.WithEnvironment(map[string]string{
			"ACCESS_TOKEN_SECRET":   "s3cret",
			"APP_ENV":               "production",
			"PORT":                  "8080",
			"MONGODB_URL":           "mongodb://localhost:27017",
			"SESSION_ENFORCE":       "false",
			"SESSION_TTL":           "30m",
			"CORS_ALLOWED_ORIGINS":  "https://a.example,https://b.example",
			"RATE_LIMIT_CAPACITY":   "3",
			"REDIS_URL":             "redis://localhost:6379/1",
			"TRUSTED_PROXY_HEADERS": "X-Forwarded-For",
		}))
		require.NoError(t, err)

		assert.Equal(t, "production", cfg.App.Env)
		assert.Equal(t, ":8080", cfg.HTTP.ListenAddr())
		assert.False(t, cfg.Session.Enforce)
		assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.API.AllowedOrigins)
		assert.Equal(t, []string{"X-Forwarded-For"}, cfg.API.TrustedProxyHeaders)
		assert.Equal(t, 3, cfg.API.SessionLimit.Capacity)
		assert.True(t, cfg.Redis.Enabled())

		uri, err := cfg.Mongo.URI()
		require.NoError(t, err)
		assert.Equal(t, "mongodb://localhost:27017", uri)
	})

	t.Run("secret is required", func(t *testing.T) {
		t.Parallel()
		_, err := appconfig.Load(config.WithEnvironment(map[string]string{}))
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

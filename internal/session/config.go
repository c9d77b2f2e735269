package session

import (
	"time"

	"github.com/dmitrymomot/foodstation/pkg/cookie"
)

// Config configures token signing and the session cookie.
type Config struct {
	Secret     string        `env:"ACCESS_TOKEN_SECRET,required"`
	TTL        time.Duration `env:"SESSION_TTL" envDefault:"1h"`
	CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"token"`
	// Enforce rejects unauthenticated requests. When false the guard only
	// attaches identities that verify.
	Enforce bool `env:"SESSION_ENFORCE" envDefault:"true"`
	Cookie  cookie.Config
}

// DefaultConfig returns the settings used in production, minus the secret.
func DefaultConfig() Config {
	return Config{
		TTL:        time.Hour,
		CookieName: "token",
		Enforce:    true,
		Cookie:     cookie.DefaultConfig(),
	}
}

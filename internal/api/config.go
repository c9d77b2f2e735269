package api

import "github.com/dmitrymomot/foodstation/pkg/ratelimiter"

// Config holds the HTTP surface settings.
type Config struct {
	// AllowedOrigins is echoed in Access-Control-Allow-Origin. Empty echoes
	// the request Origin, since "*" cannot be combined with credentials.
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	// TrustedProxyHeaders lists the headers that carry the client IP, such as
	// X-Forwarded-For behind a load balancer. Empty keys rate limits on the
	// connection address.
	TrustedProxyHeaders []string `env:"TRUSTED_PROXY_HEADERS" envSeparator:","`
	SessionLimit        ratelimiter.Config
}

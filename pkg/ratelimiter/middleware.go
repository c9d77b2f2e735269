package ratelimiter

import (
	"math"
	"net/http"
	"strconv"

	"github.com/dmitrymomot/foodstation/handler"
)

// KeyFunc extracts a rate limit key from the request.
type KeyFunc func(r *http.Request) string

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	onLimited func(r *http.Request, key string)
	onError   func(r *http.Request, err error)
}

// WithOnLimited registers a callback for rejected requests.
func WithOnLimited(fn func(r *http.Request, key string)) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.onLimited = fn
	}
}

// WithOnError registers a callback for store failures. Requests are let
// through when the store fails.
func WithOnError(fn func(r *http.Request, err error)) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.onError = fn
	}
}

// Middleware creates an HTTP middleware for rate limiting. Rejected requests
// get 429 with {"message":"too many requests"} and a Retry-After header.
func Middleware(tb *Bucket, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := middlewareConfig{
		onLimited: func(*http.Request, string) {},
		onError:   func(*http.Request, error) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := keyFunc(r)

			result, err := tb.Allow(r.Context(), key)
			if err != nil {
				cfg.onError(r, err)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, result.Remaining)))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

			if !result.Allowed() {
				cfg.onLimited(r, key)

				retryAfter := int(math.Ceil(result.RetryAfter().Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(max(1, retryAfter)))
				_ = handler.ErrTooManyRequests.Render(w, r)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

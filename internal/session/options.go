package session

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/foodstation/pkg/logger"
)

type options struct {
	now func() time.Time
	log *slog.Logger
}

// Option configures an Issuer or a Guard.
type Option func(*options)

// WithClock replaces time.Now for stamping and verifying tokens.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithLogger sets the logger used to report rejected tokens.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{now: time.Now, log: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

package httpserver

import (
	"log/slog"
	"time"
)

// Option configures the HTTP server. Zero values leave the default in place.
type Option func(*config)

// WithAddr sets the host:port to listen on.
func WithAddr(addr string) Option {
	return func(c *config) {
		if addr != "" && addr != ":" {
			c.addr = addr
		}
	}
}

// WithTimeouts sets the read, write and idle timeouts of the http.Server.
func WithTimeouts(read, write, idle time.Duration) Option {
	return func(c *config) {
		setPositive(&c.readTimeout, read)
		setPositive(&c.writeTimeout, write)
		setPositive(&c.idleTimeout, idle)
	}
}

// WithShutdownTimeout bounds graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *config) { setPositive(&c.shutdownTimeout, d) }
}

// WithLogger supplies the logger passed to hooks and used for server errors.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithStartHook registers a callback that runs once the listener is bound.
func WithStartHook(h func(*slog.Logger)) Option {
	return func(c *config) {
		if h != nil {
			c.startHooks = append(c.startHooks, h)
		}
	}
}

// WithStopHook registers a callback that runs after the server shuts down.
func WithStopHook(h func(*slog.Logger)) Option {
	return func(c *config) {
		if h != nil {
			c.stopHooks = append(c.stopHooks, h)
		}
	}
}

func setPositive(dst *time.Duration, d time.Duration) {
	if d > 0 {
		*dst = d
	}
}

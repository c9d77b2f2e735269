package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/foodstation/pkg/logger"
)

// HealthCheckHandler returns a handler usable for liveness and readiness probes.
//
// With no checks it always answers 200 "ALIVE". With checks, each one runs
// against the request context; all passing gives 200 "READY", any failure
// gives 500 "NOT_READY" and is logged.
func HealthCheckHandler(log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}

package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/foodstation/handler"
	"github.com/dmitrymomot/foodstation/internal/metrics"
	"github.com/dmitrymomot/foodstation/internal/resource"
	"github.com/dmitrymomot/foodstation/internal/session"
	"github.com/dmitrymomot/foodstation/pkg/clientip"
	"github.com/dmitrymomot/foodstation/pkg/httpserver"
	"github.com/dmitrymomot/foodstation/pkg/logger"
	"github.com/dmitrymomot/foodstation/pkg/ratelimiter"
	"github.com/dmitrymomot/foodstation/pkg/requestid"
)

// Deps are the collaborators of the router.
type Deps struct {
	Log      *slog.Logger
	Accounts *resource.Accounts
	Foods    *resource.Foods
	Requests *resource.Requests
	Issuer   *session.Issuer
	Guard    *session.Guard
	Metrics  *metrics.Collector
	Gatherer prometheus.Gatherer
	// SessionLimiter throttles POST /jwt per client IP. Nil disables it.
	SessionLimiter *ratelimiter.Bucket
	// ReadyChecks back GET /readyz.
	ReadyChecks []func(context.Context) error
	Config      Config
}

type server struct {
	accounts *resource.Accounts
	foods    *resource.Foods
	requests *resource.Requests
	issuer   *session.Issuer
	metrics  *metrics.Collector
	onError  handler.ErrorHandler
}

// NewRouter builds the HTTP API.
func NewRouter(d Deps) http.Handler {
	if d.Log == nil {
		d.Log = logger.Discard()
	}
	s := &server{
		accounts: d.Accounts,
		foods:    d.Foods,
		requests: d.Requests,
		issuer:   d.Issuer,
		metrics:  d.Metrics,
		onError:  handler.NewErrorHandler(d.Log),
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware(d.Config.TrustedProxyHeaders...),
		middleware.Recoverer,
		requestLogger(d.Log),
		corsMiddleware(d.Config.AllowedOrigins),
	)
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware)
	}

	r.Get("/", text("Food station API is running"))
	r.Get("/api/test", text("Testing route works properly"))
	r.Get("/api/testing", text("Api testing"))
	r.Get("/healthz", httpserver.HealthCheckHandler(d.Log))
	r.Get("/readyz", httpserver.HealthCheckHandler(d.Log, d.ReadyChecks...))
	if d.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(d.Gatherer))
	}

	r.Group(func(r chi.Router) {
		if d.SessionLimiter != nil {
			r.Use(ratelimiter.Middleware(d.SessionLimiter, clientip.FromRequest,
				ratelimiter.WithOnLimited(func(req *http.Request, key string) {
					d.Log.WarnContext(req.Context(), "rate limit exceeded",
						logger.RequestID(requestid.FromContext(req.Context())),
						slog.String("client_ip", key),
					)
					if d.Metrics != nil {
						d.Metrics.RecordRateLimited(req)
					}
				}),
				ratelimiter.WithOnError(func(req *http.Request, err error) {
					d.Log.ErrorContext(req.Context(), "rate limiter failed", logger.Error(err))
				}),
			))
		}
		r.Post("/jwt", wrap(s, s.issueSession, sessionBinder))
	})

	r.Group(func(r chi.Router) {
		r.Use(d.Guard.Middleware)

		r.Get("/users", wrap(s, s.listAccounts))
		r.Post("/users", wrap(s, s.createAccount, bodyBinder))

		r.Get("/food", wrap(s, s.listFoods, queryBinder))
		r.Post("/food", wrap(s, s.createFood, bodyBinder))
		r.Get("/food/{id}", wrap(s, s.getFood, pathBinder))
		r.Patch("/food/{id}", wrap(s, s.updateFood, pathBinder, bodyBinder))
		r.Delete("/food/{id}", wrap(s, s.deleteFood, pathBinder))

		r.Get("/request", wrap(s, s.listRequests))
		r.Get("/request/{email}", wrap(s, s.findRequestsByDonator, pathBinder))
		r.Post("/request", wrap(s, s.createRequest, bodyBinder))
		r.Delete("/request/{id}", wrap(s, s.deleteRequest, pathBinder))
	})

	return r
}

func text(body string) http.HandlerFunc {
	return handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Text(body)
	})
}

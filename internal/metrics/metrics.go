// Package metrics exposes Prometheus metrics for the HTTP API and the
// document store.
package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/foodstation/pkg/logger"
)

const namespace = "foodstation"

// Collector holds every metric of the service.
type Collector struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	storeOps     *prometheus.CounterVec
	storeLatency *prometheus.HistogramVec
	rateLimited  *prometheus.CounterVec
	sessions     prometheus.Counter
	log          *slog.Logger
}

// Option configures a Collector.
type Option func(*Collector)

// WithLogger logs failed store operations with their collection and operation.
func WithLogger(log *slog.Logger) Option {
	return func(c *Collector) {
		if log != nil {
			c.log = log
		}
	}
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer, opts ...Option) *Collector {
	c := &Collector{
		log: logger.Discard(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		storeOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_operations_total",
			Help:      "Document store operations by collection, operation and result.",
		}, []string{"collection", "operation", "result"}),
		storeLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_operation_duration_seconds",
			Help:      "Document store latency by collection and operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"collection", "operation"}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter, by route pattern.",
		}, []string{"route"}),
		sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_issued_total",
			Help:      "Session tokens issued.",
		}),
	}
	for _, opt := range opts {
		opt(c)
	}

	reg.MustRegister(
		c.httpRequests,
		c.httpDuration,
		c.storeOps,
		c.storeLatency,
		c.rateLimited,
		c.sessions,
	)

	return c
}

// Middleware records request count and latency per chi route pattern.
// Must be mounted on a chi router so the pattern is known after routing.
func (c *Collector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := routePattern(r)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		c.httpRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		c.httpDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// RecordRateLimited counts a rejected request.
func (c *Collector) RecordRateLimited(r *http.Request) {
	c.rateLimited.WithLabelValues(routePattern(r)).Inc()
}

// RecordSessionIssued counts an issued session token.
func (c *Collector) RecordSessionIssued() {
	c.sessions.Inc()
}

// RecordStoreOperation records one store call.
func (c *Collector) RecordStoreOperation(collection, operation, result string, d time.Duration) {
	c.storeOps.WithLabelValues(collection, operation, result).Inc()
	c.storeLatency.WithLabelValues(collection, operation).Observe(d.Seconds())
}

// Handler returns the Prometheus scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

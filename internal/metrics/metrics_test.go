package metrics_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/foodstation/internal/metrics"
	"github.com/dmitrymomot/foodstation/internal/store"
)

func TestMiddlewareRecordsRoutePattern(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	r := chi.NewRouter()
	r.Use(c.Middleware)
	r.Get("/food/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/food/1", "/food/2", "/"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	expected := `
# HELP foodstation_http_requests_total HTTP requests by method, route pattern and status code.
# TYPE foodstation_http_requests_total counter
foodstation_http_requests_total{method="GET",route="/",status="200"} 1
foodstation_http_requests_total{method="GET",route="/food/{id}",status="404"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "foodstation_http_requests_total"))
}

func TestInstrumentCollection(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)
	coll := c.InstrumentCollection(store.NewMemory("food"))
	ctx := context.Background()

	assert.Equal(t, "food", coll.Name())

	ins, err := coll.Insert(ctx, store.Document{"food_name": "Rice"})
	require.NoError(t, err)
	_, err = coll.FindByID(ctx, ins.InsertedID)
	require.NoError(t, err)
	_, err = coll.FindByID(ctx, store.NewID())
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = coll.DeleteByID(ctx, "bad")
	require.ErrorIs(t, err, store.ErrInvalidID)

	expected := `
# HELP foodstation_store_operations_total Document store operations by collection, operation and result.
# TYPE foodstation_store_operations_total counter
foodstation_store_operations_total{collection="food",operation="delete_by_id",result="invalid_id"} 1
foodstation_store_operations_total{collection="food",operation="find_by_id",result="not_found"} 1
foodstation_store_operations_total{collection="food",operation="find_by_id",result="ok"} 1
foodstation_store_operations_total{collection="food",operation="insert",result="ok"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "foodstation_store_operations_total"))
}

func TestInstrumentCollectionLogsFailures(t *testing.T) {
	t.Parallel()
	var logs bytes.Buffer
	c := metrics.NewCollector(prometheus.NewRegistry(),
		metrics.WithLogger(slog.New(slog.NewJSONHandler(&logs, nil))))
	coll := c.InstrumentCollection(store.NewMemory("request"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := coll.Find(ctx, nil)
	require.ErrorIs(t, err, context.Canceled)

	assert.Contains(t, logs.String(), `"msg":"store operation failed"`)
	assert.Contains(t, logs.String(), `"collection":"request"`)
	assert.Contains(t, logs.String(), `"operation":"find"`)

	logs.Reset()
	_, err = coll.FindByID(context.Background(), store.NewID())
	require.ErrorIs(t, err, store.ErrNotFound)
	assert.Empty(t, logs.String(), "misses are not failures")
}

func TestHandlerServesMetrics(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)
	c.RecordSessionIssued()
	c.RecordRateLimited(httptest.NewRequest(http.MethodPost, "/jwt", nil))

	w := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Result().Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "foodstation_sessions_issued_total 1")
	assert.Contains(t, string(body), `foodstation_rate_limited_total{route="unmatched"} 1`)
}

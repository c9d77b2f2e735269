package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/foodstation/pkg/clientip"
)

func TestFromHeaders(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		trusted    []string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "no trusted headers uses remote addr",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.195"},
			remoteAddr: "172.16.0.1:54321",
			expected:   "172.16.0.1",
		},
		{
			name:    "trusted headers in order",
			trusted: []string{clientip.HeaderVercelForwardedFor, clientip.HeaderForwardedFor},
			headers: map[string]string{
				"X-Vercel-Forwarded-For": "203.0.113.195",
				"X-Forwarded-For":        "192.168.1.1",
			},
			remoteAddr: "172.16.0.1:54321",
			expected:   "203.0.113.195",
		},
		{
			name:       "untrusted header is ignored",
			trusted:    []string{clientip.HeaderCFConnectingIP},
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.195"},
			remoteAddr: "10.0.0.1:54321",
			expected:   "10.0.0.1",
		},
		{
			name:       "last valid forwarded entry",
			trusted:    []string{clientip.HeaderForwardedFor},
			headers:    map[string]string{"X-Forwarded-For": "198.51.100.178, 203.0.113.195, garbage"},
			remoteAddr: "10.0.0.1:54321",
			expected:   "203.0.113.195",
		},
		{
			name:       "invalid headers fall back to remote addr",
			trusted:    []string{clientip.HeaderRealIP},
			headers:    map[string]string{"X-Real-IP": "not-an-ip"},
			remoteAddr: "10.0.0.1:54321",
			expected:   "10.0.0.1",
		},
		{
			name:       "ipv6 remote addr",
			remoteAddr: "[2001:db8::1]:443",
			expected:   "2001:db8::1",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "10.0.0.2",
			expected:   "10.0.0.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.expected, clientip.FromHeaders(req, tt.trusted...))
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	resolve := func(mw func(http.Handler) http.Handler, header, value string) string {
		var got string
		h := mw(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got = clientip.FromRequest(r)
		}))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		req.Header.Set(header, value)
		h.ServeHTTP(httptest.NewRecorder(), req)
		return got
	}

	t.Run("default ignores proxy headers", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "192.0.2.1", resolve(clientip.Middleware(), "X-Forwarded-For", "198.51.100.7"))
	})

	t.Run("trusted header", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "198.51.100.7", resolve(clientip.Middleware("x-real-ip", ""), "X-Real-IP", "198.51.100.7"))
	})
}

func TestFromRequestWithoutMiddleware(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	req.Header.Set("X-Forwarded-For", "198.51.100.7")

	assert.Equal(t, "192.0.2.1", clientip.FromRequest(req))
}

package session_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/foodstation/internal/session"
)

const testSecret = "test-secret-value"

// clock is a manually advanced time source.
type clock struct{ now atomic.Int64 }

func newClock(t time.Time) *clock {
	c := &clock{}
	c.now.Store(t.UnixNano())
	return c
}

func (c *clock) Now() time.Time          { return time.Unix(0, c.now.Load()) }
func (c *clock) Advance(d time.Duration) { c.now.Add(int64(d)) }

func testConfig() session.Config {
	cfg := session.DefaultConfig()
	cfg.Secret = testSecret
	return cfg
}

func setup(t *testing.T, cfg session.Config) (*session.Issuer, *session.Guard, *clock) {
	t.Helper()
	clk := newClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))

	issuer, err := session.NewIssuer(cfg, session.WithClock(clk.Now))
	require.NoError(t, err)
	guard, err := session.NewGuard(cfg, session.WithClock(clk.Now))
	require.NoError(t, err)

	return issuer, guard, clk
}

// issueCookie issues a session for identity and returns the resulting cookie.
func issueCookie(t *testing.T, issuer *session.Issuer, identity session.Identity) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	_, err := issuer.Issue(w, identity)
	require.NoError(t, err)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func requestWith(c *http.Cookie) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/food", nil)
	if c != nil {
		r.AddCookie(c)
	}
	return r
}

func TestIssue(t *testing.T) {
	t.Parallel()
	issuer, _, clk := setup(t, testConfig())

	identity := session.Identity{"email": "a@x", "iat": 1, "exp": 2}
	c := issueCookie(t, issuer, identity)

	assert.Equal(t, "token", c.Name)
	assert.NotEmpty(t, c.Value)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteNoneMode, c.SameSite)
	assert.Equal(t, "/", c.Path)
	assert.Equal(t, 3600, c.MaxAge)

	assert.Equal(t, session.Identity{"email": "a@x", "iat": 1, "exp": 2}, identity, "caller identity must not change")

	_, guard, _ := setup(t, testConfig())
	got, err := guard.Verify(requestWith(c))
	require.NoError(t, err)
	assert.Equal(t, "a@x", got.Email())
	assert.Equal(t, float64(clk.Now().Unix()), got[session.ClaimIssuedAt])
	assert.Equal(t, float64(clk.Now().Add(time.Hour).Unix()), got[session.ClaimExpiresAt])
}

func TestIssueEmptyIdentity(t *testing.T) {
	t.Parallel()
	issuer, guard, _ := setup(t, testConfig())

	got, err := guard.Verify(requestWith(issueCookie(t, issuer, nil)))
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestVerifyExpiry(t *testing.T) {
	t.Parallel()
	issuer, guard, clk := setup(t, testConfig())
	c := issueCookie(t, issuer, session.Identity{"email": "a@x"})

	clk.Advance(59 * time.Minute)
	_, err := guard.Verify(requestWith(c))
	require.NoError(t, err)

	clk.Advance(time.Minute)
	_, err = guard.Verify(requestWith(c))
	assert.ErrorIs(t, err, session.ErrUnauthorized)
}

func TestVerifyRejects(t *testing.T) {
	t.Parallel()
	issuer, guard, _ := setup(t, testConfig())
	valid := issueCookie(t, issuer, session.Identity{"email": "a@x"})

	otherCfg := testConfig()
	otherCfg.Secret = "another-secret"
	otherIssuer, _, _ := setup(t, otherCfg)
	foreign := issueCookie(t, otherIssuer, session.Identity{"email": "a@x"})

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{"missing cookie", nil},
		{"empty cookie", &http.Cookie{Name: "token", Value: ""}},
		{"garbage", &http.Cookie{Name: "token", Value: "not.a.jwt"}},
		{"no dots", &http.Cookie{Name: "token", Value: "garbage"}},
		{"tampered", &http.Cookie{Name: "token", Value: valid.Value + "x"}},
		{"other secret", foreign},
		{"wrong cookie name", &http.Cookie{Name: "session", Value: valid.Value}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := guard.Verify(requestWith(tt.cookie))
			assert.ErrorIs(t, err, session.ErrUnauthorized)
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	var seen atomic.Value
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := session.IdentityFromContext(r.Context())
		if ok {
			seen.Store(id.Email())
		} else {
			seen.Store("anonymous")
		}
		w.WriteHeader(http.StatusOK)
	})

	t.Run("enforced", func(t *testing.T) {
		issuer, guard, _ := setup(t, testConfig())
		h := guard.Middleware(next)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, requestWith(nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.JSONEq(t, `{"message":"unauthorized access"}`, w.Body.String())

		w = httptest.NewRecorder()
		h.ServeHTTP(w, requestWith(&http.Cookie{Name: "token", Value: "garbage"}))
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = httptest.NewRecorder()
		h.ServeHTTP(w, requestWith(issueCookie(t, issuer, session.Identity{"email": "a@x"})))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "a@x", seen.Load())
	})

	t.Run("not enforced", func(t *testing.T) {
		cfg := testConfig()
		cfg.Enforce = false
		issuer, guard, _ := setup(t, cfg)
		h := guard.Middleware(next)

		w := httptest.NewRecorder()
		h.ServeHTTP(w, requestWith(nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "anonymous", seen.Load())

		w = httptest.NewRecorder()
		h.ServeHTTP(w, requestWith(issueCookie(t, issuer, session.Identity{"email": "b@x"})))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "b@x", seen.Load())
	})
}

func TestConfigValidation(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Secret = ""
	_, err := session.NewIssuer(cfg)
	assert.ErrorIs(t, err, session.ErrMissingSecret)
	_, err = session.NewGuard(cfg)
	assert.ErrorIs(t, err, session.ErrMissingSecret)

	cfg = testConfig()
	cfg.TTL = 0
	_, err = session.NewIssuer(cfg)
	assert.ErrorIs(t, err, session.ErrInvalidTTL)

	cfg = testConfig()
	cfg.Cookie.Secure = false
	_, err = session.NewIssuer(cfg)
	assert.Error(t, err)
}

package session

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/foodstation/handler"
	"github.com/dmitrymomot/foodstation/pkg/jwt"
	"github.com/dmitrymomot/foodstation/pkg/logger"
	"github.com/dmitrymomot/foodstation/pkg/requestid"
)

// Guard verifies session cookies.
type Guard struct {
	tokens    *jwt.Service
	extractor jwt.TokenExtractorFunc
	enforce   bool
	log       *slog.Logger
}

// NewGuard validates cfg and returns a Guard.
func NewGuard(cfg Config, opts ...Option) (*Guard, error) {
	o := applyOptions(opts)

	tokens, err := newTokenService(cfg, o)
	if err != nil {
		return nil, err
	}

	return &Guard{
		tokens:    tokens,
		extractor: jwt.CookieTokenExtractor(cfg.CookieName),
		enforce:   cfg.Enforce,
		log:       o.log,
	}, nil
}

// Verify returns the identity carried by the session cookie of r.
// Every failure, whether a missing cookie, a malformed token, a bad signature
// or an expired token, is reported as ErrUnauthorized.
func (g *Guard) Verify(r *http.Request) (Identity, error) {
	token, err := g.extractor(r)
	if err != nil {
		g.reject(r, err)
		return nil, ErrUnauthorized
	}

	claims := Identity{}
	if err := g.tokens.Parse(token, &claims); err != nil {
		g.reject(r, err)
		return nil, ErrUnauthorized
	}
	return claims, nil
}

// Middleware stores the verified identity in the request context. When the
// guard is enforced, requests without a valid session get 401
// {"message":"unauthorized access"}; otherwise they pass through anonymously.
func (g *Guard) Middleware(next http.Handler) http.Handler {
	if !g.enforce {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id, err := g.Verify(r); err == nil {
				r = r.WithContext(WithIdentity(r.Context(), id))
			}
			next.ServeHTTP(w, r)
		})
	}

	return jwt.MiddlewareWithConfig(jwt.MiddlewareConfig{
		Service:   g.tokens,
		Extractor: g.extractor,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			g.reject(r, err)
			_ = handler.ErrUnauthorized.Render(w, r)
		},
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, _ := jwt.ClaimsFromContext(r.Context())
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), Identity(claims))))
	}))
}

func (g *Guard) reject(r *http.Request, reason error) {
	g.log.DebugContext(r.Context(), "session rejected",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(reason),
		logger.Component("session_guard"),
	)
}

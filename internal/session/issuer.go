package session

import (
	"errors"
	"fmt"
	"maps"
	"net/http"

	"github.com/dmitrymomot/foodstation/pkg/cookie"
	"github.com/dmitrymomot/foodstation/pkg/jwt"
)

// Issuer mints session tokens and delivers them as cookies.
type Issuer struct {
	tokens     *jwt.Service
	cookies    *cookie.Manager
	cookieName string
	ttl        int64
}

// NewIssuer validates cfg and returns an Issuer.
func NewIssuer(cfg Config, opts ...Option) (*Issuer, error) {
	o := applyOptions(opts)

	tokens, err := newTokenService(cfg, o)
	if err != nil {
		return nil, err
	}
	if cfg.TTL <= 0 {
		return nil, ErrInvalidTTL
	}

	cookies, err := cookie.NewFromConfig(cfg.Cookie, cookie.WithMaxAge(int(cfg.TTL.Seconds())))
	if err != nil {
		return nil, fmt.Errorf("session cookie: %w", err)
	}

	return &Issuer{
		tokens:     tokens,
		cookies:    cookies,
		cookieName: cfg.CookieName,
		ttl:        int64(cfg.TTL.Seconds()),
	}, nil
}

// Issue signs identity, stamped with iat and exp, and sets it as the session
// cookie on w. The caller's map is not modified; iat and exp in it are
// overwritten in the token.
func (i *Issuer) Issue(w http.ResponseWriter, identity Identity) (string, error) {
	claims := maps.Clone(identity)
	if claims == nil {
		claims = Identity{}
	}

	now := i.tokens.Now().Unix()
	claims[ClaimIssuedAt] = now
	claims[ClaimExpiresAt] = now + i.ttl

	token, err := i.tokens.Generate(claims)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	if err := i.cookies.Set(w, i.cookieName, token); err != nil {
		return "", fmt.Errorf("set session cookie: %w", err)
	}

	return token, nil
}

func newTokenService(cfg Config, o options) (*jwt.Service, error) {
	tokens, err := jwt.NewFromString(cfg.Secret, jwt.WithClock(o.now))
	if errors.Is(err, jwt.ErrMissingSigningKey) {
		return nil, ErrMissingSecret
	}
	return tokens, err
}

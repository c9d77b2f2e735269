package session

import (
	"errors"

	"github.com/dmitrymomot/foodstation/handler"
)

// ErrUnauthorized is returned by Verify and rendered by Middleware as 401.
var ErrUnauthorized error = handler.ErrUnauthorized

var (
	ErrMissingSecret = errors.New("session: ACCESS_TOKEN_SECRET is required")
	ErrInvalidTTL    = errors.New("session: TTL must be positive")
)

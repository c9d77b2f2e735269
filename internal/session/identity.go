package session

import (
	"context"

	"github.com/dmitrymomot/foodstation/handler"
)

// Registered claims stamped on every issued token.
const (
	ClaimIssuedAt  = "iat"
	ClaimExpiresAt = "exp"
)

// Identity is the caller-supplied payload carried by a session token.
type Identity map[string]any

// Email returns the "email" claim, if any.
func (id Identity) Email() string {
	email, _ := id["email"].(string)
	return email
}

var identityKey = handler.NewKey[Identity]("session.identity")

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return identityKey.With(ctx, id)
}

// IdentityFromContext returns the identity stored by Guard.Middleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	return identityKey.From(ctx)
}

package jwt_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/foodstation/pkg/jwt"
)

func TestClaimsContext(t *testing.T) {
	t.Parallel()

	claims := jwt.Claims{"email": "a@x.com"}
	got, ok := jwt.ClaimsFromContext(jwt.WithClaims(context.Background(), claims))
	assert.True(t, ok)
	assert.Equal(t, claims, got)

	_, ok = jwt.ClaimsFromContext(context.Background())
	assert.False(t, ok)

	_, ok = jwt.ClaimsFromContext(jwt.WithClaims(context.Background(), nil))
	assert.False(t, ok)
}

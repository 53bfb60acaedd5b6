package scope

import (
	"context"
	"testing"

	"dealer-report-srv/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestNewScope(t *testing.T) {
	t.Run("user id claim wins", func(t *testing.T) {
		sc := NewScope(Payload{UserID: "u1", Username: "a@b.c", Role: "manager", RegisteredClaims: jwt.RegisteredClaims{Subject: "sub"}})
		assert.Equal(t, model.Scope{UserID: "u1", Username: "a@b.c", Role: "manager"}, sc)
	})

	t.Run("falls back to subject", func(t *testing.T) {
		sc := NewScope(Payload{RegisteredClaims: jwt.RegisteredClaims{Subject: "sub"}})
		assert.Equal(t, "sub", sc.UserID)
	})
}

func TestScopeContext(t *testing.T) {
	ctx := context.Background()
	assert.False(t, GetScopeFromContext(ctx).IsAuthenticated())

	ctx = SetScopeToContext(ctx, model.Scope{UserID: "u1"})
	assert.Equal(t, "u1", GetScopeFromContext(ctx).UserID)
}

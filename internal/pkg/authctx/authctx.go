// Package authctx carries the authenticated identity through context.Context
// so that use cases never depend on the transport.
package authctx

import (
	"context"

	"github.com/google/uuid"
)

type Identity struct {
	UserID uuid.UUID
	Phone  string
	Role   string
}

type ctxKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	if !ok || id.UserID == uuid.Nil {
		return Identity{}, false
	}
	return id, true
}

// Provider resolves the identity attached by the auth middleware.
type Provider struct{}

func NewProvider() *Provider {
	return &Provider{}
}

func (Provider) CurrentUser(ctx context.Context) (Identity, bool) {
	return FromContext(ctx)
}

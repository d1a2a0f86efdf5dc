package funnel

import (
	"context"
	"time"

	"mynbala-backend/internal/domain/catalog"
	"mynbala-backend/internal/domain/draft"
	"mynbala-backend/internal/domain/order"
	"mynbala-backend/internal/domain/promo"
	"mynbala-backend/internal/pkg/authctx"

	"github.com/google/uuid"
)

// ReferenceData returns active entries only: branches by city, tariffs by sort order,
// promos by expiry ascending.
type ReferenceData interface {
	ListBranches(ctx context.Context) ([]catalog.Branch, error)
	ListTariffs(ctx context.Context) ([]catalog.Tariff, error)
	ListPromoOffers(ctx context.Context) ([]promo.Offer, error)
}

type IdentityProvider interface {
	CurrentUser(ctx context.Context) (authctx.Identity, bool)
}

type OrderSink interface {
	CreateOrder(ctx context.Context, o *order.Order) (uuid.UUID, error)
}

// DraftStore is best-effort: unavailable storage reads as a miss and writes are dropped.
type DraftStore interface {
	Read(ctx context.Context, sessionID string) (draft.State, bool)
	Write(ctx context.Context, sessionID string, state draft.State)
	Clear(ctx context.Context, sessionID string)
}

type Navigator interface {
	QueryParams() map[string]string
	GoTo(path string, after time.Duration)
}

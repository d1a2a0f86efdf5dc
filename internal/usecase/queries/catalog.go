package queries

import (
	"context"
	"time"

	"mynbala-backend/internal/domain/catalog"
	"mynbala-backend/internal/domain/promo"
	"mynbala-backend/internal/pkg/clock"
)

type PromoView struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	DiscountPercent *float64  `json:"discount_percent"`
	Code            string    `json:"code"`
	ValidUntil      time.Time `json:"valid_until"`
	Expired         bool      `json:"expired"`
}

type CatalogReadStore interface {
	ListBranches(ctx context.Context) ([]catalog.Branch, error)
	ListTariffs(ctx context.Context) ([]catalog.Tariff, error)
	ListPromoOffers(ctx context.Context) ([]promo.Offer, error)
}

type CatalogQueries interface {
	Branches(ctx context.Context) ([]catalog.Branch, error)
	Tariffs(ctx context.Context) ([]catalog.Tariff, error)
	Promos(ctx context.Context) ([]PromoView, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
	clock     clock.Clock
}

func NewCatalogQueries(readStore CatalogReadStore, clk clock.Clock) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore, clock: clk}
}

func (q *catalogQueriesImpl) Branches(ctx context.Context) ([]catalog.Branch, error) {
	return q.readStore.ListBranches(ctx)
}

func (q *catalogQueriesImpl) Tariffs(ctx context.Context) ([]catalog.Tariff, error) {
	return q.readStore.ListTariffs(ctx)
}

// Promos decorates each offer with its customer-facing code and expiry flag.
func (q *catalogQueriesImpl) Promos(ctx context.Context) ([]PromoView, error) {
	offers, err := q.readStore.ListPromoOffers(ctx)
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()
	views := make([]PromoView, len(offers))
	for i, o := range offers {
		views[i] = PromoView{
			ID:              o.ID,
			Title:           o.Title,
			Description:     o.Description,
			DiscountPercent: o.DiscountPercent,
			Code:            o.Code(),
			ValidUntil:      o.ValidUntil,
			Expired:         o.ExpiredAt(now),
		}
	}
	return views, nil
}

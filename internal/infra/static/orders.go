package static

import (
	"context"
	"slices"
	"sync"

	"mynbala-backend/internal/domain/order"
	"mynbala-backend/internal/infra"

	"github.com/google/uuid"
)

// OrderBook stores orders for the lifetime of the process.
type OrderBook struct {
	mu     sync.RWMutex
	orders map[uuid.UUID]order.Order
}

func NewOrderBook() *OrderBook {
	return &OrderBook{orders: make(map[uuid.UUID]order.Order)}
}

func (b *OrderBook) CreateOrder(_ context.Context, o *order.Order) (uuid.UUID, error) {
	if o == nil {
		return uuid.Nil, infra.WrapRepoErr("order is nil", nil)
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	rec := *o
	rec.ID = uuid.New()
	b.orders[rec.ID] = rec
	return rec.ID, nil
}

func (b *OrderBook) FindByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	rec, ok := b.orders[id]
	if !ok {
		return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return &rec, nil
}

// ListByUser returns the user's orders, newest first.
func (b *OrderBook) ListByUser(_ context.Context, userID uuid.UUID) ([]*order.Order, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []*order.Order
	for _, rec := range b.orders {
		if rec.UserID == userID {
			r := rec
			out = append(out, &r)
		}
	}
	slices.SortFunc(out, func(a, b *order.Order) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

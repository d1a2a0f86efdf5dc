package queries

import (
	"context"
	"time"

	"mynbala-backend/internal/domain/order"
	"mynbala-backend/internal/infra"
	"mynbala-backend/internal/pkg/clock"
	"mynbala-backend/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errs.Category("order not found", errs.ErrNotFound)
	ErrOrderAccess   = errs.Category("order belongs to another user", errs.ErrForbidden)
)

type OrderView struct {
	ID             uuid.UUID    `json:"id"`
	BranchID       string       `json:"branch_id"`
	BranchName     string       `json:"branch_name"`
	TariffID       string       `json:"tariff_id"`
	TariffName     string       `json:"tariff_name"`
	Quantity       int          `json:"quantity"`
	OriginalTotal  int64        `json:"original_total"`
	DiscountAmount int64        `json:"discount_amount"`
	FinalTotal     int64        `json:"final_total"`
	PromoCode      string       `json:"promo_code,omitempty"`
	Status         order.Status `json:"status"`
	Reference      string       `json:"reference"`
	ValidFrom      time.Time    `json:"valid_from"`
	ValidUntil     time.Time    `json:"valid_until"`
	PointsEarned   int64        `json:"points_earned"`
	Active         bool         `json:"active"`
	CreatedAt      time.Time    `json:"created_at"`
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*order.Order, error)
}

type ReceiptRenderer interface {
	Render(o *order.Order) ([]byte, string, error)
}

type OrderQueries interface {
	ListMine(ctx context.Context, userID uuid.UUID) ([]*OrderView, error)
	GetByID(ctx context.Context, id, actorID uuid.UUID) (*OrderView, error)
	Receipt(ctx context.Context, id, actorID uuid.UUID) ([]byte, string, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
	renderer  ReceiptRenderer
	clock     clock.Clock
}

func NewOrderQueries(readStore OrderReadStore, renderer ReceiptRenderer, clk clock.Clock) OrderQueries {
	return &orderQueriesImpl{readStore: readStore, renderer: renderer, clock: clk}
}

func (q *orderQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*OrderView, error) {
	orders, err := q.readStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := q.clock.Now()
	views := make([]*OrderView, len(orders))
	for i, o := range orders {
		views[i] = toOrderView(o, now)
	}
	return views, nil
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id, actorID uuid.UUID) (*OrderView, error) {
	o, err := q.owned(ctx, id, actorID)
	if err != nil {
		return nil, err
	}
	return toOrderView(o, q.clock.Now()), nil
}

func (q *orderQueriesImpl) Receipt(ctx context.Context, id, actorID uuid.UUID) ([]byte, string, error) {
	o, err := q.owned(ctx, id, actorID)
	if err != nil {
		return nil, "", err
	}
	return q.renderer.Render(o)
}

func (q *orderQueriesImpl) owned(ctx context.Context, id, actorID uuid.UUID) (*order.Order, error) {
	o, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if o.UserID != actorID {
		return nil, ErrOrderAccess
	}
	return o, nil
}

func toOrderView(o *order.Order, now time.Time) *OrderView {
	return &OrderView{
		ID:             o.ID,
		BranchID:       o.BranchID,
		BranchName:     o.BranchName,
		TariffID:       o.TariffID,
		TariffName:     o.TariffName,
		Quantity:       o.Quantity,
		OriginalTotal:  o.OriginalTotal,
		DiscountAmount: o.DiscountAmount,
		FinalTotal:     o.FinalTotal,
		PromoCode:      o.PromoCode,
		Status:         o.Status,
		Reference:      o.Reference,
		ValidFrom:      o.ValidFrom,
		ValidUntil:     o.ValidUntil,
		PointsEarned:   o.PointsEarned,
		Active:         o.ActiveAt(now),
		CreatedAt:      o.CreatedAt,
	}
}

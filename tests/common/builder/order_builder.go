//go:build unit || e2e

package builder

import (
	"time"

	"mynbala-backend/internal/domain/order"
	"mynbala-backend/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	UserID         uuid.UUID
	BranchID       string
	BranchName     string
	TariffID       string
	TariffName     string
	Quantity       int
	UnitPrice      int64
	DiscountAmount int64
	PromoCode      string
	PromoID        string
	Status         order.Status
	Reference      string
	CreatedAt      time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		UserID:     uuid.New(),
		BranchID:   "aksu",
		BranchName: "MYNBALA AKSU",
		TariffID:   "weekend",
		TariffName: "Weekend",
		Quantity:   2,
		UnitPrice:  7000,
		Status:     order.StatusPaid,
		Reference:  "MYNBALA-abc123-1792152000000",
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *OrderBuilder) BuildDomain() *order.Order {
	original := b.UnitPrice * int64(b.Quantity)
	final := original - b.DiscountAmount
	o := &order.Order{
		UserID:         b.UserID,
		BranchID:       b.BranchID,
		BranchName:     b.BranchName,
		TariffID:       b.TariffID,
		TariffName:     b.TariffName,
		Quantity:       b.Quantity,
		OriginalTotal:  original,
		DiscountAmount: b.DiscountAmount,
		FinalTotal:     final,
		PromoCode:      b.PromoCode,
		PromoID:        b.PromoID,
		Status:         b.Status,
		Reference:      b.Reference,
		ValidFrom:      b.CreatedAt,
		ValidUntil:     b.CreatedAt.Add(24 * time.Hour),
		PointsEarned:   order.PointsFor(final),
		CreatedAt:      b.CreatedAt,
	}
	if b.PromoID != "" {
		o.PaymentID = "promo:" + b.PromoID
	}
	return o
}

// BuildStored is BuildDomain with an assigned id.
func (b *OrderBuilder) BuildStored() *order.Order {
	o := b.BuildDomain()
	o.ID = uuid.New()
	return o
}

func (b *OrderBuilder) BuildView(active bool) *queries.OrderView {
	o := b.BuildStored()
	return &queries.OrderView{
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
		Active:         active,
		CreatedAt:      o.CreatedAt,
	}
}

// Fluent builder methods
func (b *OrderBuilder) WithUserID(userID uuid.UUID) *OrderBuilder {
	b.UserID = userID
	return b
}

func (b *OrderBuilder) WithQuantity(quantity int) *OrderBuilder {
	b.Quantity = quantity
	return b
}

func (b *OrderBuilder) WithReference(reference string) *OrderBuilder {
	b.Reference = reference
	return b
}

func (b *OrderBuilder) WithCreatedAt(createdAt time.Time) *OrderBuilder {
	b.CreatedAt = createdAt
	return b
}

func (b *OrderBuilder) WithStatus(status order.Status) *OrderBuilder {
	b.Status = status
	return b
}

// WithPromo applies percent to the current subtotal.
func (b *OrderBuilder) WithPromo(id, code string, percent int64) *OrderBuilder {
	b.PromoID = id
	b.PromoCode = code
	b.DiscountAmount = b.UnitPrice * int64(b.Quantity) * percent / 100
	return b
}

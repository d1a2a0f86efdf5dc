package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mynbala-backend/internal/domain/pricing"

	"github.com/google/uuid"
)

type Status string

const (
	StatusNew       Status = "new"
	StatusPaid      Status = "paid"
	StatusUsed      Status = "used"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusPaid, StatusUsed, StatusCancelled:
		return true
	}
	return false
}

const (
	// one loyalty point per 100 tenge paid
	pointsDivisor = 100
	userRefChars  = 6
)

var (
	ErrMissingUser     = errors.New("order owner is required")
	ErrMissingBranch   = errors.New("branch is required")
	ErrMissingTariff   = errors.New("tariff is required")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

type Order struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	BranchID       string
	BranchName     string
	TariffID       string
	TariffName     string
	Quantity       int
	OriginalTotal  int64
	DiscountAmount int64
	FinalTotal     int64
	PromoCode      string
	PromoID        string
	Status         Status
	Reference      string
	ValidFrom      time.Time
	ValidUntil     time.Time
	PointsEarned   int64
	PaymentID      string
	CreatedAt      time.Time
}

type Params struct {
	UserID     uuid.UUID
	BranchID   string
	BranchName string
	TariffID   string
	TariffName string
	Quantity   int
	Totals     pricing.Totals
	PromoCode  string
	PromoID    string
}

// NewPaid builds the order recorded by the ticket funnel. Payment happens upstream, so the
// record starts as paid and is valid for the given window from now.
func NewPaid(p Params, prefix string, now time.Time, validity time.Duration) (*Order, error) {
	if p.UserID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if p.BranchID == "" {
		return nil, ErrMissingBranch
	}
	if p.TariffID == "" {
		return nil, ErrMissingTariff
	}
	if p.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	o := &Order{
		UserID:         p.UserID,
		BranchID:       p.BranchID,
		BranchName:     p.BranchName,
		TariffID:       p.TariffID,
		TariffName:     p.TariffName,
		Quantity:       p.Quantity,
		OriginalTotal:  p.Totals.OriginalTotal,
		DiscountAmount: p.Totals.DiscountAmount,
		FinalTotal:     p.Totals.FinalTotal,
		PromoCode:      p.PromoCode,
		PromoID:        p.PromoID,
		Status:         StatusPaid,
		Reference:      NewReference(prefix, p.UserID, now),
		ValidFrom:      now,
		ValidUntil:     now.Add(validity),
		PointsEarned:   PointsFor(p.Totals.FinalTotal),
		CreatedAt:      now,
	}
	if p.PromoID != "" {
		o.PaymentID = "promo:" + p.PromoID
	}
	return o, nil
}

// NewReference combines a truncated user id with a millisecond timestamp. Uniqueness is
// best-effort; the order store rejects duplicates.
func NewReference(prefix string, userID uuid.UUID, now time.Time) string {
	short := strings.ReplaceAll(userID.String(), "-", "")
	if len(short) > userRefChars {
		short = short[:userRefChars]
	}
	return fmt.Sprintf("%s-%s-%d", prefix, short, now.UnixMilli())
}

func PointsFor(finalTotal int64) int64 {
	if finalTotal <= 0 {
		return 0
	}
	return finalTotal / pointsDivisor
}

func (o *Order) ActiveAt(now time.Time) bool {
	if o.Status != StatusPaid && o.Status != StatusNew {
		return false
	}
	return !now.Before(o.ValidFrom) && now.Before(o.ValidUntil)
}

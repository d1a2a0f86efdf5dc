package converter

import (
	"mynbala-backend/internal/domain/cabin"
	"mynbala-backend/internal/domain/order"
	"mynbala-backend/internal/pkg/pgconv"
)

func OrderToInsertMap(o *order.Order) map[string]any {
	return map[string]any{
		"user_id":         o.UserID,
		"branch_id":       o.BranchID,
		"tariff_id":       o.TariffID,
		"quantity":        o.Quantity,
		"total_amount":    o.OriginalTotal,
		"discount_amount": o.DiscountAmount,
		"final_amount":    o.FinalTotal,
		"promo_code":      pgconv.TextFromString(o.PromoCode),
		"promo_id":        pgconv.TextFromString(o.PromoID),
		"status":          string(o.Status),
		"order_reference": o.Reference,
		"valid_from":      o.ValidFrom,
		"valid_until":     o.ValidUntil,
		"points_earned":   o.PointsEarned,
		"payment_id":      pgconv.TextFromString(o.PaymentID),
		"created_at":      o.CreatedAt,
	}
}

func BookingToInsertMap(b *cabin.Booking) map[string]any {
	return map[string]any{
		"cabin_id":    b.CabinID,
		"user_id":     b.UserID,
		"visit_date":  pgconv.DateFromTime(b.VisitDate),
		"start_hour":  b.StartHour,
		"duration":    b.Duration,
		"guests":      b.Guests,
		"total_price": b.TotalPrice,
		"status":      string(b.Status),
		"created_at":  b.CreatedAt,
	}
}

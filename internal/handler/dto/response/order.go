package response

import (
	"mynbala-backend/internal/domain/order"
	"mynbala-backend/internal/usecase/queries"
)

type OrderResponse struct {
	ID             string `json:"id"`
	BranchID       string `json:"branch_id"`
	BranchName     string `json:"branch_name"`
	TariffID       string `json:"tariff_id"`
	TariffName     string `json:"tariff_name"`
	Quantity       int    `json:"quantity"`
	OriginalTotal  int64  `json:"original_total"`
	DiscountAmount int64  `json:"discount_amount"`
	FinalTotal     int64  `json:"final_total"`
	PromoCode      string `json:"promo_code,omitempty"`
	Status         string `json:"status"`
	Reference      string `json:"reference"`
	ValidFrom      int64  `json:"valid_from"`
	ValidUntil     int64  `json:"valid_until"`
	PointsEarned   int64  `json:"points_earned"`
	Active         bool   `json:"active"`
	CreatedAt      int64  `json:"created_at"`
}

func FromOrder(o *order.Order) *OrderResponse {
	return &OrderResponse{
		ID:             o.ID.String(),
		BranchID:       o.BranchID,
		BranchName:     o.BranchName,
		TariffID:       o.TariffID,
		TariffName:     o.TariffName,
		Quantity:       o.Quantity,
		OriginalTotal:  o.OriginalTotal,
		DiscountAmount: o.DiscountAmount,
		FinalTotal:     o.FinalTotal,
		PromoCode:      o.PromoCode,
		Status:         string(o.Status),
		Reference:      o.Reference,
		ValidFrom:      o.ValidFrom.Unix(),
		ValidUntil:     o.ValidUntil.Unix(),
		PointsEarned:   o.PointsEarned,
		Active:         o.ActiveAt(o.CreatedAt),
		CreatedAt:      o.CreatedAt.Unix(),
	}
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	return &OrderResponse{
		ID:             v.ID.String(),
		BranchID:       v.BranchID,
		BranchName:     v.BranchName,
		TariffID:       v.TariffID,
		TariffName:     v.TariffName,
		Quantity:       v.Quantity,
		OriginalTotal:  v.OriginalTotal,
		DiscountAmount: v.DiscountAmount,
		FinalTotal:     v.FinalTotal,
		PromoCode:      v.PromoCode,
		Status:         string(v.Status),
		Reference:      v.Reference,
		ValidFrom:      v.ValidFrom.Unix(),
		ValidUntil:     v.ValidUntil.Unix(),
		PointsEarned:   v.PointsEarned,
		Active:         v.Active,
		CreatedAt:      v.CreatedAt.Unix(),
	}
}

func FromOrderViews(views []*queries.OrderView) []*OrderResponse {
	res := make([]*OrderResponse, len(views))
	for i, v := range views {
		res[i] = FromOrderView(v)
	}
	return res
}

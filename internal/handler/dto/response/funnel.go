package response

import (
	"mynbala-backend/internal/domain/promo"
	"mynbala-backend/internal/pkg/ptr"
	"mynbala-backend/internal/usecase/funnel"
)

type SelectionResponse struct {
	BranchID  string `json:"branch_id"`
	TariffID  string `json:"tariff_id"`
	Quantity  int    `json:"quantity"`
	PromoCode string `json:"promo_code"`
}

type TotalsResponse struct {
	OriginalTotal  int64 `json:"original_total"`
	DiscountAmount int64 `json:"discount_amount"`
	FinalTotal     int64 `json:"final_total"`
}

type AppliedPromoResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Code            string   `json:"code"`
	DiscountPercent *float64 `json:"discount_percent"`
	ValidUntil      int64    `json:"valid_until"`
}

type RedirectResponse struct {
	Path    string `json:"path"`
	AfterMs int64  `json:"after_ms"`
}

// FunnelResponse is the full funnel view. ErrorMessage is the inline validation text shown
// next to the form; request-level failures use the error envelope instead.
type FunnelResponse struct {
	SessionID    string                `json:"session_id"`
	State        string                `json:"state"`
	LocalMode    bool                  `json:"local_mode"`
	Branches     []BranchResponse      `json:"branches"`
	Tariffs      []TariffResponse      `json:"tariffs"`
	Promos       []PromoResponse       `json:"promos"`
	Selection    SelectionResponse     `json:"selection"`
	AppliedPromo *AppliedPromoResponse `json:"applied_promo"`
	Totals       TotalsResponse        `json:"totals"`
	Message      string                `json:"message,omitempty"`
	ErrorMessage string                `json:"error_message,omitempty"`
	Redirect     *RedirectResponse     `json:"redirect,omitempty"`
	Order        *OrderResponse        `json:"order,omitempty"`
	Restored     bool                  `json:"restored"`
	CanSubmit    bool                  `json:"can_submit"`
}

func FromFunnelView(v funnel.View) *FunnelResponse {
	res := &FunnelResponse{
		SessionID: v.SessionID,
		State:     string(v.State),
		LocalMode: v.LocalMode,
		Branches:  FromBranches(v.Branches),
		Tariffs:   FromTariffs(v.Tariffs),
		Promos:    fromOffers(v.Promos),
		Selection: SelectionResponse{
			BranchID:  v.Selection.BranchID,
			TariffID:  v.Selection.TariffID,
			Quantity:  v.Selection.Quantity,
			PromoCode: v.Selection.PromoCode,
		},
		Totals: TotalsResponse{
			OriginalTotal:  v.Totals.OriginalTotal,
			DiscountAmount: v.Totals.DiscountAmount,
			FinalTotal:     v.Totals.FinalTotal,
		},
		Message:      v.Message,
		ErrorMessage: v.Error,
		Restored:     v.Restored,
		CanSubmit:    v.CanSubmit(),
	}
	if v.AppliedPromo != nil {
		code := v.AppliedCode
		if code == "" {
			code = v.AppliedPromo.Code()
		}
		res.AppliedPromo = &AppliedPromoResponse{
			ID:              v.AppliedPromo.ID,
			Title:           v.AppliedPromo.Title,
			Code:            code,
			DiscountPercent: v.AppliedPromo.DiscountPercent,
			ValidUntil:      v.AppliedPromo.ValidUntil.Unix(),
		}
	}
	if v.Redirect != nil {
		res.Redirect = ptr.Of(RedirectResponse{Path: v.Redirect.Path, AfterMs: v.Redirect.After.Milliseconds()})
	}
	if v.Order != nil {
		res.Order = FromOrder(v.Order)
	}
	return res
}

// Expired stays false here; clients compare valid_until themselves.
func fromOffers(offers []promo.Offer) []PromoResponse {
	out := make([]PromoResponse, len(offers))
	for i, o := range offers {
		out[i] = PromoResponse{
			ID:              o.ID,
			Title:           o.Title,
			Description:     o.Description,
			DiscountPercent: o.DiscountPercent,
			Code:            o.Code(),
			ValidUntil:      o.ValidUntil.Unix(),
		}
	}
	return out
}

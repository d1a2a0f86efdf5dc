package request

import (
	"mynbala-backend/internal/usecase/funnel"
)

// UpdateSelectionRequest edits the funnel; omitted fields stay unchanged. Range checks on
// quantity are left to the funnel so the rejection shows up in the view.
type UpdateSelectionRequest struct {
	BranchID  *string `json:"branch_id" binding:"omitempty,min=1"`
	TariffID  *string `json:"tariff_id" binding:"omitempty,min=1"`
	Quantity  *int    `json:"quantity"`
	PromoCode *string `json:"promo_code" binding:"omitempty,max=64"`
}

func (r *UpdateSelectionRequest) ToPatch() funnel.SelectionPatch {
	return funnel.SelectionPatch{
		BranchID:  r.BranchID,
		TariffID:  r.TariffID,
		Quantity:  r.Quantity,
		PromoCode: r.PromoCode,
	}
}

func (r *UpdateSelectionRequest) IsEmpty() bool {
	return r.BranchID == nil && r.TariffID == nil && r.Quantity == nil && r.PromoCode == nil
}

// ApplyPromoRequest may omit the code to apply what is already in the promo field.
type ApplyPromoRequest struct {
	Code string `json:"code" binding:"max=64"`
}

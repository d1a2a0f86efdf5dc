package response

import (
	"mynbala-backend/internal/domain/cabin"
	"mynbala-backend/internal/domain/catalog"
	"mynbala-backend/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BranchResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	City         string `json:"city"`
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	WorkingHours string `json:"working_hours,omitempty"`
}

type TariffResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	UnitPrice   int64  `json:"price"`
	Description string `json:"description,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Popular     bool   `json:"popular"`
}

type PromoResponse struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	DiscountPercent *float64 `json:"discount_percent"`
	Code            string   `json:"code"`
	ValidUntil      int64    `json:"valid_until"`
	Expired         bool     `json:"expired"`
}

type CabinResponse struct {
	ID           string `json:"id"`
	BranchID     string `json:"branch_id"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Capacity     int    `json:"capacity"`
	PricePerHour int64  `json:"price_per_hour"`
}

func FromBranches(src []catalog.Branch) []BranchResponse {
	out := make([]BranchResponse, 0, len(src))
	_ = copier.Copy(&out, &src)
	return out
}

func FromTariffs(src []catalog.Tariff) []TariffResponse {
	out := make([]TariffResponse, 0, len(src))
	_ = copier.Copy(&out, &src)
	return out
}

func FromPromoViews(src []queries.PromoView) []PromoResponse {
	out := make([]PromoResponse, len(src))
	for i, p := range src {
		out[i] = PromoResponse{
			ID:              p.ID,
			Title:           p.Title,
			Description:     p.Description,
			DiscountPercent: p.DiscountPercent,
			Code:            p.Code,
			ValidUntil:      p.ValidUntil.Unix(),
			Expired:         p.Expired,
		}
	}
	return out
}

func FromCabin(c cabin.Cabin) CabinResponse {
	return CabinResponse{
		ID:           c.ID,
		BranchID:     c.BranchID,
		Name:         c.Name,
		Type:         string(c.Type),
		Capacity:     c.Capacity,
		PricePerHour: c.PricePerHour,
	}
}

func FromCabins(src []cabin.Cabin) []CabinResponse {
	out := make([]CabinResponse, len(src))
	for i, c := range src {
		out[i] = FromCabin(c)
	}
	return out
}

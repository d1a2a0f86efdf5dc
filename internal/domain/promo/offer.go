package promo

import (
	"strings"
	"time"
)

// Offer is a promotion from the reference catalog. A nil DiscountPercent means the
// offer carries no price reduction (it may still be applied).
type Offer struct {
	ID              string
	Title           string
	Description     string
	DiscountPercent *float64
	ValidUntil      time.Time
}

// Discount returns the raw percent, zero when absent.
func (o Offer) Discount() float64 {
	if o.DiscountPercent == nil {
		return 0
	}
	return *o.DiscountPercent
}

// Code is the canonical customer-facing code of the offer.
func (o Offer) Code() string {
	return CodeForOffer(o.ID)
}

func (o Offer) ExpiredAt(now time.Time) bool {
	return IsExpired(o.ValidUntil, now)
}

// IsExpired reports whether an offer valid until validUntil can no longer be applied at now.
// An offer is applicable only while validUntil is strictly in the future.
func IsExpired(validUntil, now time.Time) bool {
	return !validUntil.After(now)
}

// FindByCode resolves user input against offers. Either the raw offer id (any case) or the
// derived MYN- code matches; the first match in list order wins. Expired offers are returned
// too, the caller decides what to do with them.
func FindByCode(offers []Offer, rawCode string) (*Offer, bool) {
	code := Normalize(rawCode)
	if code == "" {
		return nil, false
	}
	for i := range offers {
		if strings.ToUpper(offers[i].ID) == code || CodeForOffer(offers[i].ID) == code {
			found := offers[i]
			return &found, true
		}
	}
	return nil, false
}

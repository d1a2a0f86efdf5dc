package pricing

import "math"

type Totals struct {
	OriginalTotal  int64
	DiscountAmount int64
	FinalTotal     int64
}

// Compute prices an order of quantity units. The percent is clamped to [0, 100] and the
// discount is rounded half-up. Negative inputs count as zero.
func Compute(unitPrice int64, quantity int, discountPercent float64) Totals {
	if unitPrice <= 0 || quantity <= 0 {
		return Totals{}
	}
	original := unitPrice * int64(quantity)
	pct := ClampPercent(discountPercent)

	discount := int64(math.Floor(float64(original)*pct/100 + 0.5))
	discount = max(0, min(discount, original))

	return Totals{
		OriginalTotal:  original,
		DiscountAmount: discount,
		FinalTotal:     max(0, original-discount),
	}
}

func ClampPercent(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// CabinTotal is the hourly cabin price times the booked hours.
func CabinTotal(pricePerHour int64, hours int) int64 {
	if pricePerHour <= 0 || hours <= 0 {
		return 0
	}
	return pricePerHour * int64(hours)
}

package response

import (
	"mynbala-backend/internal/domain/cabin"
	"mynbala-backend/internal/usecase/cabinbooking"
)

type SlotResponse struct {
	Hour   int    `json:"hour"`
	Label  string `json:"label"`
	Booked bool   `json:"booked"`
}

type CabinGridResponse struct {
	Cabin CabinResponse  `json:"cabin"`
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

type CabinQuoteResponse struct {
	CabinGridResponse
	StartHour  int   `json:"start_hour"`
	Duration   int   `json:"duration"`
	Selectable bool  `json:"selectable"`
	Conflict   bool  `json:"conflict"`
	TotalPrice int64 `json:"total_price"`
}

type CabinBookingResponse struct {
	ID         string `json:"id"`
	CabinID    string `json:"cabin_id"`
	VisitDate  string `json:"visit_date"`
	StartHour  int    `json:"start_hour"`
	Duration   int    `json:"duration"`
	Guests     int    `json:"guests"`
	TotalPrice int64  `json:"total_price"`
	Status     string `json:"status"`
	CreatedAt  int64  `json:"created_at"`
}

func FromGridView(v *cabinbooking.GridView) *CabinGridResponse {
	slots := make([]SlotResponse, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = SlotResponse{Hour: s.Hour, Label: s.Label, Booked: s.Booked}
	}
	return &CabinGridResponse{
		Cabin: FromCabin(v.Cabin),
		Date:  v.Date.Format("2006-01-02"),
		Slots: slots,
	}
}

func FromQuote(q *cabinbooking.Quote) *CabinQuoteResponse {
	return &CabinQuoteResponse{
		CabinGridResponse: *FromGridView(&q.GridView),
		StartHour:         q.StartHour,
		Duration:          q.Duration,
		Selectable:        q.Selectable,
		Conflict:          q.Conflict,
		TotalPrice:        q.TotalPrice,
	}
}

func FromBooking(b *cabin.Booking) *CabinBookingResponse {
	return &CabinBookingResponse{
		ID:         b.ID.String(),
		CabinID:    b.CabinID,
		VisitDate:  b.VisitDate.Format("2006-01-02"),
		StartHour:  b.StartHour,
		Duration:   b.Duration,
		Guests:     b.Guests,
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt.Unix(),
	}
}

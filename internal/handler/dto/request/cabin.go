package request

import (
	"time"

	"mynbala-backend/internal/usecase/cabinbooking"

	"github.com/google/uuid"
)

const DateLayout = time.DateOnly

type CreateCabinBookingRequest struct {
	VisitDate string `json:"visit_date" binding:"required,datetime=2006-01-02"`
	StartHour int    `json:"start_hour" binding:"required,min=10,max=21"`
	Duration  int    `json:"duration" binding:"required,min=1,max=4"`
	Guests    int    `json:"guests" binding:"required,min=1"`
}

func (r *CreateCabinBookingRequest) ToParams(userID uuid.UUID, cabinID string, loc *time.Location) (cabinbooking.BookParams, error) {
	date, err := time.ParseInLocation(DateLayout, r.VisitDate, loc)
	if err != nil {
		return cabinbooking.BookParams{}, err
	}
	return cabinbooking.BookParams{
		UserID:    userID,
		CabinID:   cabinID,
		VisitDate: date,
		StartHour: r.StartHour,
		Duration:  r.Duration,
		Guests:    r.Guests,
	}, nil
}

// SlotsQuery binds the availability grid query string. Start and duration request a quote.
type SlotsQuery struct {
	Date     string `form:"date" binding:"required,datetime=2006-01-02"`
	Start    *int   `form:"start" binding:"omitempty,min=0,max=23"`
	Duration *int   `form:"duration" binding:"omitempty"`
}

func (q *SlotsQuery) ParseDate(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, q.Date, loc)
}

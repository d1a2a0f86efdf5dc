package cabin

import (
	"errors"
	"time"

	"mynbala-backend/internal/domain/pricing"

	"github.com/google/uuid"
)

type Type string

const (
	TypeBirthday Type = "birthday"
	TypeVIP      Type = "vip"
	TypeStandard Type = "standard"
)

const (
	MinDuration = 1
	MaxDuration = 4
)

var (
	ErrInvalidDuration = errors.New("duration must be between 1 and 4 hours")
	ErrInvalidGuests   = errors.New("guests count must be between 1 and cabin capacity")
	ErrSlotUnavailable = errors.New("start hour is booked or outside opening hours")
	ErrSlotConflict    = errors.New("requested range overlaps a booking or closing time")
)

type Cabin struct {
	ID           string
	BranchID     string
	Name         string
	Type         Type
	Capacity     int
	PricePerHour int64
}

func (c Cabin) PriceFor(hours int) int64 {
	return pricing.CabinTotal(c.PricePerHour, hours)
}

type BookingStatus string

const (
	BookingNew       BookingStatus = "new"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID         uuid.UUID
	CabinID    string
	UserID     uuid.UUID
	VisitDate  time.Time
	StartHour  int
	Duration   int
	Guests     int
	TotalPrice int64
	Status     BookingStatus
	CreatedAt  time.Time
}

// Hours lists the hours the booking occupies.
func (b Booking) Hours() []int {
	hours := make([]int, 0, b.Duration)
	for h := b.StartHour; h < b.StartHour+b.Duration; h++ {
		hours = append(hours, h)
	}
	return hours
}

// NewBooking validates a request against the cabin and its grid for the day.
func NewBooking(c Cabin, grid *Grid, userID uuid.UUID, start, duration, guests int, now time.Time) (*Booking, error) {
	if duration < MinDuration || duration > MaxDuration {
		return nil, ErrInvalidDuration
	}
	if guests < 1 || (c.Capacity > 0 && guests > c.Capacity) {
		return nil, ErrInvalidGuests
	}
	if !grid.SelectStart(start) {
		return nil, ErrSlotUnavailable
	}
	if grid.HasConflict(duration) {
		return nil, ErrSlotConflict
	}
	return &Booking{
		CabinID:    c.ID,
		UserID:     userID,
		VisitDate:  grid.Date,
		StartHour:  start,
		Duration:   duration,
		Guests:     guests,
		TotalPrice: c.PriceFor(duration),
		Status:     BookingNew,
		CreatedAt:  now,
	}, nil
}

package static

import (
	"context"
	"sync"
	"time"

	"mynbala-backend/internal/domain/cabin"
	"mynbala-backend/internal/infra"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// BookingBook combines the catalog's demo hours with bookings made in this process.
type BookingBook struct {
	mu       sync.Mutex
	catalog  *Catalog
	bookings []cabin.Booking
}

func NewBookingBook(c *Catalog) *BookingBook {
	return &BookingBook{catalog: c}
}

func (b *BookingBook) BookedHours(_ context.Context, cabinID string, date time.Time) (cabin.HourSet, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bookedLocked(cabinID, date), nil
}

// CreateBooking re-checks the range under the lock, so concurrent requests cannot double-book.
func (b *BookingBook) CreateBooking(_ context.Context, bk *cabin.Booking) (uuid.UUID, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	booked := b.bookedLocked(bk.CabinID, bk.VisitDate)
	if cabin.HasConflict(bk.StartHour, bk.Duration, cabin.SlotsFor(booked)) {
		return uuid.Nil, infra.WrapRepoErr("cabin range already booked", nil, infra.KindConflict)
	}

	rec := *bk
	rec.ID = uuid.New()
	b.bookings = append(b.bookings, rec)
	return rec.ID, nil
}

func (b *BookingBook) bookedLocked(cabinID string, date time.Time) cabin.HourSet {
	booked := cabin.NewHourSet(b.catalog.BlockedHours(cabinID)...)
	day := date.Format(dateLayout)
	for _, bk := range b.bookings {
		if bk.CabinID != cabinID || bk.Status == cabin.BookingCancelled || bk.VisitDate.Format(dateLayout) != day {
			continue
		}
		booked.Add(bk.Hours()...)
	}
	return booked
}

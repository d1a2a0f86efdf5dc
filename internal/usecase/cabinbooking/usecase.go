package cabinbooking

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"mynbala-backend/internal/domain/cabin"
	"mynbala-backend/internal/infra"
	"mynbala-backend/internal/pkg/clock"
	"mynbala-backend/internal/pkg/errs"
	"mynbala-backend/internal/pkg/metrics"

	"github.com/google/uuid"
)

var (
	ErrCabinNotFound    = errs.Category("cabin not found", errs.ErrNotFound)
	ErrInvalidDate      = errs.Category("visit date must not be in the past", errs.ErrValidation)
	ErrInvalidDuration  = errs.Classify(cabin.ErrInvalidDuration, errs.ErrValidation)
	ErrInvalidGuests    = errs.Classify(cabin.ErrInvalidGuests, errs.ErrValidation)
	ErrSlotUnavailable  = errs.Classify(cabin.ErrSlotUnavailable, errs.ErrConflict)
	ErrSlotConflict     = errs.Classify(cabin.ErrSlotConflict, errs.ErrConflict)
	ErrUnauthenticated  = errs.Category("sign in to book a cabin", errs.ErrUnauthenticated)
	ErrBookingStoreFail = errs.New("booking storage failure")
)

type CabinCatalog interface {
	ListCabins(ctx context.Context, branchID string) ([]cabin.Cabin, error)
	FindCabin(ctx context.Context, cabinID string) (cabin.Cabin, error)
}

// Availability reports the hours of a cabin that are taken on a date.
type Availability interface {
	BookedHours(ctx context.Context, cabinID string, date time.Time) (cabin.HourSet, error)
}

// BookingWriter persists a booking; it must reject ranges taken since the grid was read.
type BookingWriter interface {
	CreateBooking(ctx context.Context, b *cabin.Booking) (uuid.UUID, error)
}

type GridView struct {
	Cabin cabin.Cabin
	Date  time.Time
	Slots []cabin.Slot
}

type Quote struct {
	GridView
	StartHour  int
	Duration   int
	Selectable bool
	Conflict   bool
	TotalPrice int64
}

type BookParams struct {
	UserID    uuid.UUID
	CabinID   string
	VisitDate time.Time
	StartHour int
	Duration  int
	Guests    int
}

type UseCase interface {
	Cabins(ctx context.Context, branchID string) ([]cabin.Cabin, error)
	Grid(ctx context.Context, cabinID string, date time.Time) (*GridView, error)
	Quote(ctx context.Context, cabinID string, date time.Time, start, duration int) (*Quote, error)
	Book(ctx context.Context, p BookParams) (*cabin.Booking, error)
}

type useCaseImpl struct {
	catalog      CabinCatalog
	availability Availability
	writer       BookingWriter
	clock        clock.Clock
	logger       *slog.Logger
	metrics      *metrics.Metrics
}

func NewUseCase(
	catalog CabinCatalog,
	availability Availability,
	writer BookingWriter,
	clk clock.Clock,
	logger *slog.Logger,
	m *metrics.Metrics,
) UseCase {
	return &useCaseImpl{
		catalog:      catalog,
		availability: availability,
		writer:       writer,
		clock:        clk,
		logger:       logger,
		metrics:      m,
	}
}

func (u *useCaseImpl) Cabins(ctx context.Context, branchID string) ([]cabin.Cabin, error) {
	return u.catalog.ListCabins(ctx, branchID)
}

func (u *useCaseImpl) Grid(ctx context.Context, cabinID string, date time.Time) (*GridView, error) {
	c, grid, err := u.load(ctx, cabinID, date)
	if err != nil {
		return nil, err
	}
	return &GridView{Cabin: c, Date: grid.Date, Slots: grid.Slots}, nil
}

// Quote evaluates a tentative selection without booking it.
func (u *useCaseImpl) Quote(ctx context.Context, cabinID string, date time.Time, start, duration int) (*Quote, error) {
	if duration < cabin.MinDuration || duration > cabin.MaxDuration {
		return nil, ErrInvalidDuration
	}
	c, grid, err := u.load(ctx, cabinID, date)
	if err != nil {
		return nil, err
	}
	q := &Quote{
		GridView:   GridView{Cabin: c, Date: grid.Date, Slots: grid.Slots},
		StartHour:  start,
		Duration:   duration,
		Selectable: grid.SelectStart(start),
		TotalPrice: c.PriceFor(duration),
	}
	q.Conflict = grid.HasConflict(duration)
	return q, nil
}

func (u *useCaseImpl) Book(ctx context.Context, p BookParams) (*cabin.Booking, error) {
	if p.UserID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	// Compare calendar days in the park's zone, not the server's.
	today := truncateDay(u.clock.Now().In(p.VisitDate.Location()))
	if truncateDay(p.VisitDate).Before(today) {
		u.metrics.CabinBooking("invalid")
		return nil, ErrInvalidDate
	}

	c, grid, err := u.load(ctx, p.CabinID, p.VisitDate)
	if err != nil {
		return nil, err
	}

	b, err := cabin.NewBooking(c, grid, p.UserID, p.StartHour, p.Duration, p.Guests, u.clock.Now())
	if err != nil {
		u.metrics.CabinBooking("rejected")
		return nil, mapDomainErr(err)
	}

	id, err := u.writer.CreateBooking(ctx, b)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			u.metrics.CabinBooking("conflict")
			return nil, ErrSlotConflict
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrCabinNotFound
		}
		u.metrics.CabinBooking("failed")
		u.logger.ErrorContext(ctx, "cabin booking failed", "cabin_id", p.CabinID, "error", err)
		return nil, errs.Mark(err, ErrBookingStoreFail)
	}

	b.ID = id
	u.metrics.CabinBooking("created")
	u.logger.InfoContext(ctx, "cabin booked",
		"booking_id", id, "cabin_id", c.ID, "date", b.VisitDate.Format(time.DateOnly),
		"start_hour", b.StartHour, "duration", b.Duration)
	return b, nil
}

func (u *useCaseImpl) load(ctx context.Context, cabinID string, date time.Time) (cabin.Cabin, *cabin.Grid, error) {
	c, err := u.catalog.FindCabin(ctx, cabinID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return cabin.Cabin{}, nil, ErrCabinNotFound
		}
		return cabin.Cabin{}, nil, err
	}
	day := truncateDay(date)
	booked, err := u.availability.BookedHours(ctx, c.ID, day)
	if err != nil {
		return cabin.Cabin{}, nil, err
	}
	return c, cabin.NewGrid(c.ID, day, booked), nil
}

func mapDomainErr(err error) error {
	switch {
	case errors.Is(err, cabin.ErrInvalidDuration):
		return ErrInvalidDuration
	case errors.Is(err, cabin.ErrInvalidGuests):
		return ErrInvalidGuests
	case errors.Is(err, cabin.ErrSlotUnavailable):
		return ErrSlotUnavailable
	case errors.Is(err, cabin.ErrSlotConflict):
		return ErrSlotConflict
	}
	return err
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

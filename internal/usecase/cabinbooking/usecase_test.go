//go:build unit

package cabinbooking_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"mynbala-backend/internal/domain/cabin"
	"mynbala-backend/internal/infra"
	"mynbala-backend/internal/pkg/clock"
	"mynbala-backend/internal/pkg/config"
	"mynbala-backend/internal/pkg/errs"
	"mynbala-backend/internal/pkg/metrics"
	"mynbala-backend/internal/usecase/cabinbooking"
	cabinbookingmock "mynbala-backend/tests/mock/cabinbooking"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var (
	now       = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)
	visitDate = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
)

func vipCabin() cabin.Cabin {
	return cabin.Cabin{ID: "aksu-vip", BranchID: "aksu", Name: "VIP", Type: cabin.TypeVIP, Capacity: 10, PricePerHour: 15000}
}

type CabinBookingTestSuite struct {
	suite.Suite
	ctx          context.Context
	mockCtrl     *gomock.Controller
	catalog      *cabinbookingmock.MockCabinCatalog
	availability *cabinbookingmock.MockAvailability
	writer       *cabinbookingmock.MockBookingWriter
	metrics      *metrics.Metrics
	uc           cabinbooking.UseCase
}

func TestCabinBookingSuite(t *testing.T) {
	suite.Run(t, new(CabinBookingTestSuite))
}

func (s *CabinBookingTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.catalog = cabinbookingmock.NewMockCabinCatalog(s.mockCtrl)
	s.availability = cabinbookingmock.NewMockAvailability(s.mockCtrl)
	s.writer = cabinbookingmock.NewMockBookingWriter(s.mockCtrl)
	s.metrics = metrics.New(config.MetricsConfig{Namespace: "test"})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.uc = cabinbooking.NewUseCase(s.catalog, s.availability, s.writer, clock.NewMockClock(now), logger, s.metrics)
}

func (s *CabinBookingTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *CabinBookingTestSuite) expectCabin(booked ...int) {
	s.catalog.EXPECT().FindCabin(gomock.Any(), "aksu-vip").Return(vipCabin(), nil)
	s.availability.EXPECT().BookedHours(gomock.Any(), "aksu-vip", visitDate).Return(cabin.NewHourSet(booked...), nil)
}

func (s *CabinBookingTestSuite) bookings(result string) float64 {
	count, err := testutil.GatherAndCount(s.metrics.Registry(), "test_cabin_bookings_total")
	s.Require().NoError(err)
	if count == 0 {
		return 0
	}
	families, err := s.metrics.Registry().Gather()
	s.Require().NoError(err)
	for _, f := range families {
		if f.GetName() != "test_cabin_bookings_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "result" && l.GetValue() == result {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func (s *CabinBookingTestSuite) TestGrid() {
	s.Run("success: marks booked hours and normalizes the date", func() {
		s.expectCabin(12, 13)

		grid, err := s.uc.Grid(s.ctx, "aksu-vip", visitDate.Add(15*time.Hour))

		s.Require().NoError(err)
		s.Equal(visitDate, grid.Date)
		s.Len(grid.Slots, cabin.SlotCount)
		s.True(grid.Slots[2].Booked)
		s.True(grid.Slots[3].Booked)
		s.False(grid.Slots[4].Booked)
	})

	s.Run("error: unknown cabin", func() {
		s.catalog.EXPECT().FindCabin(gomock.Any(), "nope").
			Return(cabin.Cabin{}, infra.WrapRepoErr("cabin not found", nil, infra.KindNotFound))

		_, err := s.uc.Grid(s.ctx, "nope", visitDate)

		s.True(errs.IsAny(err, cabinbooking.ErrCabinNotFound))
		s.True(errs.IsAny(err, errs.ErrNotFound))
	})
}

func (s *CabinBookingTestSuite) TestQuote() {
	tests := []struct {
		name           string
		booked         []int
		start          int
		duration       int
		wantSelectable bool
		wantConflict   bool
	}{
		{name: "free range", start: 10, duration: 3, wantSelectable: true},
		{name: "range hits a booking", booked: []int{12}, start: 11, duration: 2, wantSelectable: true, wantConflict: true},
		{name: "range ends at closing", start: 20, duration: 2, wantSelectable: true},
		{name: "range runs past closing", start: 21, duration: 2, wantSelectable: true, wantConflict: true},
		{name: "booked start", booked: []int{15}, start: 15, duration: 1, wantSelectable: false, wantConflict: true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.expectCabin(tt.booked...)

			q, err := s.uc.Quote(s.ctx, "aksu-vip", visitDate, tt.start, tt.duration)

			s.Require().NoError(err)
			s.Equal(tt.wantSelectable, q.Selectable)
			s.Equal(tt.wantConflict, q.Conflict)
			s.Equal(int64(15000*tt.duration), q.TotalPrice)
		})
	}

	s.Run("error: duration out of range", func() {
		_, err := s.uc.Quote(s.ctx, "aksu-vip", visitDate, 12, 5)
		s.True(errs.IsAny(err, cabinbooking.ErrInvalidDuration))
		s.True(errs.IsAny(err, errs.ErrValidation))
	})
}

func (s *CabinBookingTestSuite) TestBook() {
	userID := uuid.New()
	params := cabinbooking.BookParams{UserID: userID, CabinID: "aksu-vip", VisitDate: visitDate, StartHour: 12, Duration: 2, Guests: 8}

	s.Run("success: persists the booking", func() {
		s.expectCabin(10)
		bookingID := uuid.New()
		s.writer.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b *cabin.Booking) (uuid.UUID, error) {
				s.Equal([]int{12, 13}, b.Hours())
				s.Equal(int64(30000), b.TotalPrice)
				s.Equal(cabin.BookingNew, b.Status)
				s.Equal(now, b.CreatedAt)
				return bookingID, nil
			})

		b, err := s.uc.Book(s.ctx, params)

		s.Require().NoError(err)
		s.Equal(bookingID, b.ID)
		s.Equal(float64(1), s.bookings("created"))
	})

	s.Run("error: store reports a concurrent booking", func() {
		s.expectCabin()
		s.writer.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("hours taken", nil, infra.KindConflict))

		_, err := s.uc.Book(s.ctx, params)

		s.True(errs.IsAny(err, cabinbooking.ErrSlotConflict))
		s.True(errs.IsAny(err, errs.ErrConflict))
		s.Equal(float64(1), s.bookings("conflict"))
	})

	s.Run("error: store failure", func() {
		s.expectCabin()
		s.writer.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("connection reset"))

		_, err := s.uc.Book(s.ctx, params)

		s.True(errs.IsAny(err, cabinbooking.ErrBookingStoreFail))
	})

	s.Run("success: same calendar day in the park zone while UTC lags behind", func() {
		almaty := time.FixedZone("Asia/Almaty", 5*60*60)
		localDay := time.Date(2026, 10, 16, 0, 0, 0, 0, almaty)
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		uc := cabinbooking.NewUseCase(s.catalog, s.availability, s.writer,
			clock.NewMockClock(time.Date(2026, 10, 16, 6, 0, 0, 0, time.UTC)), logger, s.metrics)
		s.catalog.EXPECT().FindCabin(gomock.Any(), "aksu-vip").Return(vipCabin(), nil)
		s.availability.EXPECT().BookedHours(gomock.Any(), "aksu-vip", localDay).Return(cabin.NewHourSet(), nil)
		s.writer.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)

		b, err := uc.Book(s.ctx, cabinbooking.BookParams{
			UserID: userID, CabinID: "aksu-vip", VisitDate: localDay, StartHour: 15, Duration: 2, Guests: 4,
		})

		s.Require().NoError(err)
		s.Equal([]int{15, 16}, b.Hours())
	})

	rejections := []struct {
		name    string
		booked  []int
		mutate  func(*cabinbooking.BookParams)
		wantErr error
	}{
		{name: "overlapping range", booked: []int{13}, wantErr: cabinbooking.ErrSlotConflict},
		{name: "booked start hour", booked: []int{12}, wantErr: cabinbooking.ErrSlotUnavailable},
		{name: "too many guests", mutate: func(p *cabinbooking.BookParams) { p.Guests = 11 }, wantErr: cabinbooking.ErrInvalidGuests},
		{name: "duration too long", mutate: func(p *cabinbooking.BookParams) { p.Duration = 5 }, wantErr: cabinbooking.ErrInvalidDuration},
		{name: "past closing", mutate: func(p *cabinbooking.BookParams) { p.StartHour = 21 }, wantErr: cabinbooking.ErrSlotConflict},
	}
	for _, tt := range rejections {
		s.Run("rejected: "+tt.name, func() {
			s.expectCabin(tt.booked...)
			p := params
			if tt.mutate != nil {
				tt.mutate(&p)
			}

			_, err := s.uc.Book(s.ctx, p)

			s.True(errs.IsAny(err, tt.wantErr), "got %v", err)
		})
	}

	s.Run("error: visit date in the past", func() {
		p := params
		p.VisitDate = now.AddDate(0, 0, -1)

		_, err := s.uc.Book(s.ctx, p)

		s.True(errs.IsAny(err, cabinbooking.ErrInvalidDate))
	})

	s.Run("success: today is still bookable", func() {
		today := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
		s.catalog.EXPECT().FindCabin(gomock.Any(), "aksu-vip").Return(vipCabin(), nil)
		s.availability.EXPECT().BookedHours(gomock.Any(), "aksu-vip", today).Return(cabin.NewHourSet(), nil)
		s.writer.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).Return(uuid.New(), nil)
		p := params
		p.VisitDate = today

		_, err := s.uc.Book(s.ctx, p)

		s.NoError(err)
	})

	s.Run("error: anonymous caller", func() {
		p := params
		p.UserID = uuid.Nil

		_, err := s.uc.Book(s.ctx, p)

		s.True(errs.IsAny(err, cabinbooking.ErrUnauthenticated))
	})
}

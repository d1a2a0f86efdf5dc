//go:build unit

package static_test

import (
	"context"
	"testing"
	"time"

	"mynbala-backend/internal/domain/cabin"
	"mynbala-backend/internal/domain/order"
	"mynbala-backend/internal/infra"
	"mynbala-backend/internal/infra/static"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderBook(t *testing.T) {
	ctx := context.Background()
	book := static.NewOrderBook()
	alice, bob := uuid.New(), uuid.New()

	older := &order.Order{UserID: alice, Reference: "older", CreatedAt: now.Add(-time.Hour)}
	newer := &order.Order{UserID: alice, Reference: "newer", CreatedAt: now}
	other := &order.Order{UserID: bob, Reference: "other", CreatedAt: now}

	var ids []uuid.UUID
	for _, o := range []*order.Order{older, newer, other} {
		id, err := book.CreateOrder(ctx, o)
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, id)
		ids = append(ids, id)
	}
	assert.Equal(t, uuid.Nil, older.ID, "input is not mutated")

	t.Run("find by id", func(t *testing.T) {
		o, err := book.FindByID(ctx, ids[0])
		require.NoError(t, err)
		assert.Equal(t, "older", o.Reference)
		assert.Equal(t, ids[0], o.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := book.FindByID(ctx, uuid.New())
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("list by user newest first", func(t *testing.T) {
		orders, err := book.ListByUser(ctx, alice)
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "newer", orders[0].Reference)
		assert.Equal(t, "older", orders[1].Reference)
	})

	t.Run("nil order", func(t *testing.T) {
		_, err := book.CreateOrder(ctx, nil)
		assert.Error(t, err)
	})
}

func TestBookingBook(t *testing.T) {
	ctx := context.Background()
	c, err := static.ParseCatalog(testCatalog, now, discardLogger())
	require.NoError(t, err)
	day := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

	booking := func(start, duration int, date time.Time) *cabin.Booking {
		return &cabin.Booking{CabinID: "a-1", UserID: uuid.New(), VisitDate: date, StartHour: start, Duration: duration, Status: cabin.BookingNew}
	}

	t.Run("demo hours are booked on every date", func(t *testing.T) {
		booked, err := static.NewBookingBook(c).BookedHours(ctx, "a-1", day)
		require.NoError(t, err)
		assert.Equal(t, cabin.NewHourSet(13, 14), booked)
	})

	t.Run("booking occupies its range on that date only", func(t *testing.T) {
		book := static.NewBookingBook(c)
		id, err := book.CreateBooking(ctx, booking(10, 2, day))
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		booked, _ := book.BookedHours(ctx, "a-1", day)
		assert.Equal(t, cabin.NewHourSet(10, 11, 13, 14), booked)

		nextDay, _ := book.BookedHours(ctx, "a-1", day.AddDate(0, 0, 1))
		assert.Equal(t, cabin.NewHourSet(13, 14), nextDay)
	})

	t.Run("overlapping range is a conflict", func(t *testing.T) {
		book := static.NewBookingBook(c)
		_, err := book.CreateBooking(ctx, booking(16, 3, day))
		require.NoError(t, err)

		_, err = book.CreateBooking(ctx, booking(17, 1, day))
		assert.True(t, infra.IsKind(err, infra.KindConflict))

		_, err = book.CreateBooking(ctx, booking(12, 2, day))
		assert.True(t, infra.IsKind(err, infra.KindConflict), "demo hours block too")
	})

	t.Run("cancelled bookings free their hours", func(t *testing.T) {
		book := static.NewBookingBook(c)
		cancelled := booking(19, 2, day)
		cancelled.Status = cabin.BookingCancelled
		_, err := book.CreateBooking(ctx, cancelled)
		require.NoError(t, err)

		_, err = book.CreateBooking(ctx, booking(19, 2, day))
		assert.NoError(t, err)
	})
}

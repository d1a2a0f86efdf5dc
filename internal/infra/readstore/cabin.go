package readstore

import (
	"context"
	"time"

	"mynbala-backend/internal/domain/cabin"
	"mynbala-backend/internal/infra"
	"mynbala-backend/internal/infra/psql"
	"mynbala-backend/internal/pkg/pgconv"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

type CabinAvailabilityStore struct {
	db infra.DBTX
}

func NewCabinAvailabilityStore(db infra.DBTX) *CabinAvailabilityStore {
	return &CabinAvailabilityStore{db: db}
}

func (r *CabinAvailabilityStore) BookedHours(ctx context.Context, cabinID string, date time.Time) (cabin.HourSet, error) {
	return QueryBookedHours(ctx, r.db, cabinID, date)
}

// QueryBookedHours unions the cabin's blocked hours with the hours of its active bookings on
// date. db may be a transaction.
func QueryBookedHours(ctx context.Context, db infra.DBTX, cabinID string, date time.Time) (cabin.HourSet, error) {
	booked := cabin.NewHourSet()

	blockedQuery, args, err := psql.Select("hour").
		From("cabin_blocked_hours").
		Where(squirrel.Eq{"cabin_id": cabinID}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build blocked hours query", err)
	}
	rows, err := db.Query(ctx, blockedQuery, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked hours", err)
	}
	hours, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan blocked hours", err)
	}
	booked.Add(hours...)

	bookingsQuery, args, err := psql.Select("start_hour", "duration").
		From("cabin_bookings").
		Where(squirrel.Eq{"cabin_id": cabinID, "visit_date": pgconv.DateFromTime(date)}).
		Where(squirrel.NotEq{"status": string(cabin.BookingCancelled)}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build bookings query", err)
	}
	rows, err = db.Query(ctx, bookingsQuery, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cabin bookings", err)
	}
	ranges, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (cabin.Booking, error) {
		var b cabin.Booking
		err := row.Scan(&b.StartHour, &b.Duration)
		return b, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan cabin bookings", err)
	}
	for _, b := range ranges {
		booked.Add(b.Hours()...)
	}
	return booked, nil
}

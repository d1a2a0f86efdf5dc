package repository

import (
	"context"

	"mynbala-backend/internal/domain/cabin"
	"mynbala-backend/internal/infra"
	"mynbala-backend/internal/infra/psql"
	"mynbala-backend/internal/infra/readstore"
	"mynbala-backend/internal/infra/repository/converter"
	"mynbala-backend/internal/infra/uow"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type CabinBookingRepository struct {
	uow uow.UnitOfWork
}

func NewCabinBookingRepository(u uow.UnitOfWork) *CabinBookingRepository {
	return &CabinBookingRepository{uow: u}
}

// CreateBooking locks the cabin row, re-checks the range and inserts the booking in one
// transaction.
func (r *CabinBookingRepository) CreateBooking(ctx context.Context, b *cabin.Booking) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.uow.Within(ctx, func(ctx context.Context, tx infra.DBTX) error {
		lockQuery, args, err := psql.Select("id").
			From("cabins").
			Where(squirrel.Eq{"id": b.CabinID}).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return infra.WrapRepoErr("failed to build cabin lock", err)
		}
		var locked string
		if err := tx.QueryRow(ctx, lockQuery, args...).Scan(&locked); err != nil {
			if infra.IsNoRows(err) {
				return infra.WrapRepoErr("cabin not found", err, infra.KindNotFound)
			}
			return infra.WrapRepoErr("failed to lock cabin", err)
		}

		booked, err := readstore.QueryBookedHours(ctx, tx, b.CabinID, b.VisitDate)
		if err != nil {
			return err
		}
		if cabin.HasConflict(b.StartHour, b.Duration, cabin.SlotsFor(booked)) {
			return infra.WrapRepoErr("cabin range already booked", nil, infra.KindConflict)
		}

		insert, args, err := psql.Insert("cabin_bookings").
			SetMap(converter.BookingToInsertMap(b)).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return infra.WrapRepoErr("failed to build booking insert", err)
		}
		if err := tx.QueryRow(ctx, insert, args...).Scan(&id); err != nil {
			return infra.WrapRepoErr("failed to create booking", err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

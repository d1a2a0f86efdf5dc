package readstore

import (
	"context"

	"mynbala-backend/internal/domain/order"
	"mynbala-backend/internal/infra"
	"mynbala-backend/internal/infra/psql"
	"mynbala-backend/internal/pkg/pgconv"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderReadStore struct {
	db infra.DBTX
}

func NewOrderReadStore(db infra.DBTX) *OrderReadStore {
	return &OrderReadStore{db: db}
}

var orderColumns = []string{
	"t.id", "t.user_id", "t.branch_id", "b.name", "t.tariff_id", "tf.name", "t.quantity",
	"t.total_amount", "t.discount_amount", "t.final_amount", "t.promo_code", "t.promo_id",
	"t.status", "t.order_reference", "t.valid_from", "t.valid_until", "t.points_earned",
	"t.payment_id", "t.created_at",
}

func orderSelect() squirrel.SelectBuilder {
	return psql.Select(orderColumns...).
		From("tickets t").
		Join("branches b ON b.id = t.branch_id").
		Join("tariffs tf ON tf.id = t.tariff_id")
}

func scanOrder(row pgx.CollectableRow) (*order.Order, error) {
	var (
		o                           order.Order
		status                      string
		promoCode, promoID, payment pgtype.Text
		validFrom, validUntil       pgtype.Timestamptz
		createdAt                   pgtype.Timestamptz
	)
	err := row.Scan(
		&o.ID, &o.UserID, &o.BranchID, &o.BranchName, &o.TariffID, &o.TariffName, &o.Quantity,
		&o.OriginalTotal, &o.DiscountAmount, &o.FinalTotal, &promoCode, &promoID,
		&status, &o.Reference, &validFrom, &validUntil, &o.PointsEarned,
		&payment, &createdAt,
	)
	if err != nil {
		return nil, err
	}
	o.Status = order.Status(status)
	o.PromoCode = pgconv.StringFromPgtype(promoCode)
	o.PromoID = pgconv.StringFromPgtype(promoID)
	o.PaymentID = pgconv.StringFromPgtype(payment)
	o.ValidFrom = pgconv.TimeFromPgtype(validFrom)
	o.ValidUntil = pgconv.TimeFromPgtype(validUntil)
	o.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	return &o, nil
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	query, args, err := orderSelect().Where(squirrel.Eq{"t.id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build order query", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get order", err)
	}
	o, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan order", err)
	}
	return o, nil
}

// ListByUser returns the user's orders, newest first.
func (r *OrderReadStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*order.Order, error) {
	query, args, err := orderSelect().
		Where(squirrel.Eq{"t.user_id": userID}).
		OrderBy("t.created_at DESC", "t.id").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build orders query", err)
	}
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	orders, err := pgx.CollectRows(rows, scanOrder)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan orders", err)
	}
	return orders, nil
}

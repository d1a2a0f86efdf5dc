package repository

import (
	"context"

	"mynbala-backend/internal/domain/order"
	"mynbala-backend/internal/infra"
	"mynbala-backend/internal/infra/psql"
	"mynbala-backend/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type OrderRepository struct {
	db infra.DBTX
}

func NewOrderRepository(db infra.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) CreateOrder(ctx context.Context, o *order.Order) (uuid.UUID, error) {
	query, args, err := psql.Insert("tickets").
		SetMap(converter.OrderToInsertMap(o)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to build order insert", err)
	}

	var id uuid.UUID
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}
	return id, nil
}

package readstore

import (
	"context"
	"log/slog"

	"mynbala-backend/internal/domain/cabin"
	"mynbala-backend/internal/domain/catalog"
	"mynbala-backend/internal/domain/promo"
	"mynbala-backend/internal/infra"
	"mynbala-backend/internal/infra/psql"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// CatalogReadStore lists active reference data.
type CatalogReadStore struct {
	db     infra.DBTX
	logger *slog.Logger
}

func NewCatalogReadStore(db infra.DBTX, logger *slog.Logger) *CatalogReadStore {
	return &CatalogReadStore{db: db, logger: logger}
}

func (r *CatalogReadStore) ListBranches(ctx context.Context) ([]catalog.Branch, error) {
	query, args, err := psql.Select("id", "name", "city", "address", "phone", "working_hours").
		From("branches").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("city", "id").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build branches query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list branches", err)
	}
	branches, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalog.Branch, error) {
		var b catalog.Branch
		err := row.Scan(&b.ID, &b.Name, &b.City, &b.Address, &b.Phone, &b.WorkingHours)
		return b, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan branches", err)
	}
	return branches, nil
}

// ListTariffs skips rows that violate the positive price invariant.
func (r *CatalogReadStore) ListTariffs(ctx context.Context) ([]catalog.Tariff, error) {
	query, args, err := psql.Select("id", "name", "price", "description", "duration", "sort_order", "is_popular").
		From("tariffs").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("sort_order", "id").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build tariffs query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tariffs", err)
	}
	scanned, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalog.Tariff, error) {
		var t catalog.Tariff
		err := row.Scan(&t.ID, &t.Name, &t.UnitPrice, &t.Description, &t.Duration, &t.SortOrder, &t.Popular)
		return t, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan tariffs", err)
	}

	tariffs := make([]catalog.Tariff, 0, len(scanned))
	for _, t := range scanned {
		if _, err := catalog.NewTariff(t.ID, t.Name, t.UnitPrice); err != nil {
			r.logger.WarnContext(ctx, "skipping invalid tariff", "id", t.ID, "error", err)
			continue
		}
		tariffs = append(tariffs, t)
	}
	return tariffs, nil
}

func (r *CatalogReadStore) ListPromoOffers(ctx context.Context) ([]promo.Offer, error) {
	query, args, err := psql.Select("id", "title", "description", "discount::float8", "valid_until").
		From("promos").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("valid_until", "id").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build promos query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list promos", err)
	}
	offers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (promo.Offer, error) {
		var o promo.Offer
		err := row.Scan(&o.ID, &o.Title, &o.Description, &o.DiscountPercent, &o.ValidUntil)
		return o, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan promos", err)
	}
	return offers, nil
}

var cabinColumns = []string{"id", "branch_id", "name", "cabin_type", "capacity", "price_per_hour"}

func scanCabin(row pgx.CollectableRow) (cabin.Cabin, error) {
	var c cabin.Cabin
	var typ string
	err := row.Scan(&c.ID, &c.BranchID, &c.Name, &typ, &c.Capacity, &c.PricePerHour)
	c.Type = cabin.Type(typ)
	return c, err
}

func (r *CatalogReadStore) ListCabins(ctx context.Context, branchID string) ([]cabin.Cabin, error) {
	query, args, err := psql.Select(cabinColumns...).
		From("cabins").
		Where(squirrel.Eq{"branch_id": branchID, "is_active": true}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build cabins query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cabins", err)
	}
	cabins, err := pgx.CollectRows(rows, scanCabin)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan cabins", err)
	}
	return cabins, nil
}

func (r *CatalogReadStore) FindCabin(ctx context.Context, cabinID string) (cabin.Cabin, error) {
	query, args, err := psql.Select(cabinColumns...).
		From("cabins").
		Where(squirrel.Eq{"id": cabinID, "is_active": true}).
		ToSql()
	if err != nil {
		return cabin.Cabin{}, infra.WrapRepoErr("failed to build cabin query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return cabin.Cabin{}, infra.WrapRepoErr("failed to get cabin", err)
	}
	c, err := pgx.CollectExactlyOneRow(rows, scanCabin)
	if err != nil {
		if infra.IsNoRows(err) {
			return cabin.Cabin{}, infra.WrapRepoErr("cabin not found", err, infra.KindNotFound)
		}
		return cabin.Cabin{}, infra.WrapRepoErr("failed to scan cabin", err)
	}
	return c, nil
}

package components

import (
	"context"
	"log/slog"

	"mynbala-backend/internal/infra/draftstore"
	"mynbala-backend/internal/infra/readstore"
	"mynbala-backend/internal/infra/repository"
	"mynbala-backend/internal/infra/static"
	"mynbala-backend/internal/infra/uow"
	"mynbala-backend/internal/pkg/clock"
	"mynbala-backend/internal/pkg/config"
	"mynbala-backend/internal/pkg/errs"
	"mynbala-backend/internal/pkg/metrics"
	"mynbala-backend/internal/usecase/cabinbooking"
	"mynbala-backend/internal/usecase/funnel"
	"mynbala-backend/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStores,
		NewDraftStore,
	),
)

// Stores groups the ports served by either Postgres or the local demo data.
type Stores struct {
	fx.Out

	Reference    funnel.ReferenceData
	Orders       funnel.OrderSink
	Catalog      queries.CatalogReadStore
	OrderReads   queries.OrderReadStore
	Cabins       cabinbooking.CabinCatalog
	Availability cabinbooking.Availability
	Bookings     cabinbooking.BookingWriter
}

func NewStores(cfg config.Config, pool *pgxpool.Pool, clk clock.Clock, logger *slog.Logger) (Stores, error) {
	if cfg.Funnel.LocalMode {
		return newLocalStores(cfg, clk, logger)
	}
	if pool == nil {
		return Stores{}, errs.New("database pool is required outside local mode")
	}

	catalogStore := readstore.NewCatalogReadStore(pool, logger)
	orderReads := readstore.NewOrderReadStore(pool)
	return Stores{
		Reference:    catalogStore,
		Orders:       repository.NewOrderRepository(pool),
		Catalog:      catalogStore,
		OrderReads:   orderReads,
		Cabins:       catalogStore,
		Availability: readstore.NewCabinAvailabilityStore(pool),
		Bookings:     repository.NewCabinBookingRepository(uow.NewPostgresUoW(pool, logger)),
	}, nil
}

func newLocalStores(cfg config.Config, clk clock.Clock, logger *slog.Logger) (Stores, error) {
	catalogData, err := static.LoadCatalog(cfg.Funnel.CatalogFile, clk.Now(), logger)
	if err != nil {
		return Stores{}, err
	}
	orders := static.NewOrderBook()
	bookings := static.NewBookingBook(catalogData)
	return Stores{
		Reference:    catalogData,
		Orders:       orders,
		Catalog:      catalogData,
		OrderReads:   orders,
		Cabins:       catalogData,
		Availability: bookings,
		Bookings:     bookings,
	}, nil
}

// NewDraftStore picks the draft backend and owns its background cleanup.
func NewDraftStore(
	lc fx.Lifecycle,
	cfg config.Config,
	pool *pgxpool.Pool,
	clk clock.Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
) (funnel.DraftStore, error) {
	fc := cfg.Funnel
	switch fc.DraftStore {
	case "off":
		return draftstore.NewDisabledStore(m), nil
	case "postgres":
		if pool == nil {
			return nil, errs.New("postgres draft store requires a database")
		}
		store := draftstore.NewPostgresStore(pool, fc.DraftTTL, clk, m, logger)
		runInBackground(lc, func(ctx context.Context) {
			store.Run(ctx, fc.SweepInterval)
		})
		return store, nil
	case "memory", "":
		store := draftstore.NewMemoryStore(fc.DraftTTL, clk, m, logger)
		runInBackground(lc, func(ctx context.Context) {
			store.Run(ctx, fc.SweepInterval)
		})
		return store, nil
	}
	return nil, errs.Wrapf(errs.New("unknown draft store"), "FUNNEL_DRAFT_STORE=%q", fc.DraftStore)
}

// runInBackground starts fn on app start and cancels it on stop.
func runInBackground(lc fx.Lifecycle, fn func(ctx context.Context)) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go fn(ctx)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

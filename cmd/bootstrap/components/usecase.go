package components

import (
	"context"
	"log/slog"

	"mynbala-backend/internal/infra/receipt"
	"mynbala-backend/internal/pkg/authctx"
	"mynbala-backend/internal/pkg/clock"
	"mynbala-backend/internal/pkg/config"
	"mynbala-backend/internal/pkg/metrics"
	"mynbala-backend/internal/usecase"
	"mynbala-backend/internal/usecase/cabinbooking"
	"mynbala-backend/internal/usecase/funnel"
	"mynbala-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseFunnelModule,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCabinModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		authctx.NewProvider,
		fx.As(new(funnel.IdentityProvider)),
	),
	fx.Annotate(
		receipt.NewRenderer,
		fx.As(new(queries.ReceiptRenderer)),
	),
)

var usecaseFunnelModule = fx.Module("usecase/funnel",
	fx.Provide(
		funnel.NewFactory,
		NewFunnelRegistry,
		funnel.NewUseCase,
	),
)

var usecaseCabinModule = fx.Module("usecase/cabinbooking",
	fx.Provide(
		cabinbooking.NewUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCatalogQueries,
		queries.NewOrderQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewFunnelRegistry also evicts idle funnels in the background.
func NewFunnelRegistry(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, m *metrics.Metrics, logger *slog.Logger) *funnel.Registry {
	registry := funnel.NewRegistry(cfg, clk, m, logger)
	runInBackground(lc, func(ctx context.Context) {
		registry.Run(ctx, cfg.Funnel.SweepInterval)
	})
	return registry
}

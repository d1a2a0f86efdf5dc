package bootstrap

import (
	"log/slog"

	"mynbala-backend/internal/handler/middleware"
	"mynbala-backend/internal/pkg/config"
	"mynbala-backend/internal/pkg/metrics"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewMetrics,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}

func NewMetrics(cfg config.Config) *metrics.Metrics {
	return metrics.New(cfg.Metrics)
}

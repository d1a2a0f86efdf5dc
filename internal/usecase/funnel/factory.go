package funnel

import (
	"log/slog"
	"time"

	"mynbala-backend/internal/pkg/clock"
	"mynbala-backend/internal/pkg/config"
	"mynbala-backend/internal/pkg/metrics"
)

// Config is injected into every controller; nothing is read from the environment at runtime.
type Config struct {
	LocalMode       bool
	LoginPath       string
	ReturnPath      string
	SuccessPath     string
	RedirectDelay   time.Duration
	OrderValidity   time.Duration
	ReferencePrefix string
}

func ConfigFrom(cfg config.FunnelConfig) Config {
	return Config{
		LocalMode:       cfg.LocalMode,
		LoginPath:       cfg.LoginPath,
		ReturnPath:      cfg.ReturnPath,
		SuccessPath:     cfg.SuccessPath,
		RedirectDelay:   cfg.RedirectDelay,
		OrderValidity:   cfg.OrderValidity,
		ReferencePrefix: cfg.ReferencePrefix,
	}
}

type Factory struct {
	cfg      Config
	refs     ReferenceData
	identity IdentityProvider
	orders   OrderSink
	drafts   DraftStore
	clock    clock.Clock
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func NewFactory(
	cfg config.Config,
	refs ReferenceData,
	identity IdentityProvider,
	orders OrderSink,
	drafts DraftStore,
	clk clock.Clock,
	logger *slog.Logger,
	m *metrics.Metrics,
) *Factory {
	return &Factory{
		cfg:      ConfigFrom(cfg.Funnel),
		refs:     refs,
		identity: identity,
		orders:   orders,
		drafts:   drafts,
		clock:    clk,
		logger:   logger,
		metrics:  m,
	}
}

// New creates an unloaded controller for the session. Call Load to start it.
func (f *Factory) New(sessionID string, nav Navigator) *Controller {
	if nav == nil {
		nav = NewRecordingNavigator(nil)
	}
	logger := f.logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		sessionID: sessionID,
		cfg:       f.cfg,
		refs:      f.refs,
		identity:  f.identity,
		orders:    f.orders,
		drafts:    f.drafts,
		nav:       nav,
		clock:     f.clock,
		logger:    logger,
		metrics:   f.metrics,
		state:     StateLoading,
		sel:       Selection{Quantity: 1},
	}
}

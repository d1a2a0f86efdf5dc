package bootstrap

import (
	"time"

	"mynbala-backend/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLocation,
	),
)

// NewLocation is the park's local zone, used for visit dates and receipts.
func NewLocation(cfg config.Config) *time.Location {
	loc, err := time.LoadLocation(cfg.Log.TimeZone)
	if err != nil {
		return time.FixedZone(cfg.Log.TimeZone, cfg.Log.TimeZoneOffset)
	}
	return loc
}

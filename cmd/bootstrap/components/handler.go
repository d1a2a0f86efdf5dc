package components

import (
	"mynbala-backend/internal/handler"
	"mynbala-backend/internal/handler/api"
	"mynbala-backend/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewFunnelHandler,
		api.NewCatalogHandler,
		api.NewCabinHandler,
		api.NewOrderHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"mynbala-backend/internal/handler/api"
	"mynbala-backend/internal/handler/middleware"
	"mynbala-backend/internal/pkg/config"
	"mynbala-backend/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Metrics        *metrics.Metrics
	AuthMiddleware *middleware.AuthMiddleware
	Funnel         *api.FunnelHandler
	Catalog        *api.CatalogHandler
	Cabin          *api.CabinHandler
	Order          *api.OrderHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Metrics)
	setupRoutes(p)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	if cfg.Metrics.Enabled {
		engine.Use(middleware.Metrics(m))
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)

	if p.Config.Metrics.Enabled && p.Metrics != nil {
		engine.GET(p.Config.Metrics.Path, gin.WrapH(p.Metrics.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := p.AuthMiddleware.RequireAuth()

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.Session(p.Config.Cookie), p.AuthMiddleware.OptionalAuth())
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/branches", Handler: p.Catalog.Branches},
			{Method: http.MethodGet, Path: "/branches/:id/cabins", Handler: p.Cabin.ListByBranch},
			{Method: http.MethodGet, Path: "/tariffs", Handler: p.Catalog.Tariffs},
			{Method: http.MethodGet, Path: "/promos", Handler: p.Catalog.Promos},
		})

		funnel := apiGroup.Group("/tickets/funnel")
		{
			addRoutes(funnel, []route{
				{Method: http.MethodPost, Path: "", Handler: p.Funnel.Mount},
				{Method: http.MethodGet, Path: "", Handler: p.Funnel.Current},
				{Method: http.MethodPatch, Path: "/selection", Handler: p.Funnel.UpdateSelection},
				{Method: http.MethodPost, Path: "/promo", Handler: p.Funnel.ApplyPromo},
				{Method: http.MethodPost, Path: "/submit", Handler: p.Funnel.Submit},
			})
		}

		cabins := apiGroup.Group("/cabins")
		{
			addRoutes(cabins, []route{
				{Method: http.MethodGet, Path: "/:id/slots", Handler: p.Cabin.Slots},
				{Method: http.MethodPost, Path: "/:id/bookings", Handler: p.Cabin.Book, Mw: []gin.HandlerFunc{requireAuth}},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(requireAuth)
		{
			addRoutes(orders, []route{
				{Method: http.MethodGet, Path: "", Handler: p.Order.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: p.Order.Get},
				{Method: http.MethodGet, Path: "/:id/receipt", Handler: p.Order.Receipt},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

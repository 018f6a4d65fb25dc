package handler

import (
	"net/http"

	"commerce-order-core/internal/handler/api"
	"commerce-order-core/internal/handler/middleware"
	"commerce-order-core/internal/pkg/config"
	"commerce-order-core/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine          *gin.Engine
	Config          config.Config
	Logger          *middleware.Logger
	Metrics         *metrics.Metrics
	Gatherer        prometheus.Gatherer
	PurchaseHandler *api.PurchaseHandler
	RefundHandler   *api.RefundHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p.Engine, p.Config, p.Logger, p.Metrics)
	setupRoutes(p.Engine, p.Gatherer, p.PurchaseHandler, p.RefundHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, gatherer prometheus.Gatherer, purchaseHandler *api.PurchaseHandler, refundHandler *api.RefundHandler) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		purchases := apiGroup.Group("/purchases")
		addRoutes(purchases, []route{
			{Method: http.MethodPost, Path: "", Handler: purchaseHandler.Place},
			{Method: http.MethodGet, Path: "/:id", Handler: purchaseHandler.Get},
			{Method: http.MethodPost, Path: "/:id/refunds", Handler: refundHandler.Create},
		})

		orders := apiGroup.Group("/orders")
		addRoutes(orders, []route{
			{Method: http.MethodPost, Path: "", Handler: purchaseHandler.PlaceOrder},
			{Method: http.MethodGet, Path: "/pending", Handler: purchaseHandler.ListPending},
			{Method: http.MethodPost, Path: "/:id/complete", Handler: purchaseHandler.CompleteOrder},
		})
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		default:
			g.Handle(r.Method, r.Path, h)
		}
	}
}

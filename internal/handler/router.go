package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"electro-checkout/internal/handler/api"
	"electro-checkout/internal/handler/httperr"
	"electro-checkout/internal/handler/middleware"
	"electro-checkout/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, productHandler *api.ProductHandler, checkoutHandler *api.CheckoutHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, productHandler, checkoutHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, productHandler *api.ProductHandler, checkoutHandler *api.CheckoutHandler) {
	engine.GET("/", index)
	engine.GET("/health", healthCheck)
	engine.NoRoute(notFound)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		products := apiGroup.Group("/products")
		{
			addRoutes(products, []route{
				{Method: http.MethodGet, Path: "", Handler: productHandler.List},
				{Method: http.MethodPost, Path: "/search", Handler: productHandler.Search},
				{Method: http.MethodGet, Path: "/:id", Handler: productHandler.Get},
			})
		}

		checkout := apiGroup.Group("/checkout")
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "/create", Handler: checkoutHandler.Create},
			})
		}
	}
}

// @Summary Service banner
// @Description Service name and endpoint map
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]any
// @Router / [get]
func index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "Electronics Store Checkout API",
		"version": "1.0.0",
		"status":  "running",
		"endpoints": gin.H{
			"products":        "GET /api/products",
			"product_detail":  "GET /api/products/:id",
			"search":          "POST /api/products/search",
			"create_checkout": "POST /api/checkout/create",
			"health":          "GET /health",
		},
	})
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

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, httperr.NewResponse(http.StatusNotFound, "Endpoint not found", nil))
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}

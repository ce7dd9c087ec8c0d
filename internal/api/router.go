package api

import (
	v1 "github.com/flexprice/prorata/internal/api/v1"
	"github.com/flexprice/prorata/internal/config"
	"github.com/flexprice/prorata/internal/logger"
	"github.com/flexprice/prorata/internal/rest/middleware"
	"github.com/flexprice/prorata/internal/sentry"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handlers struct {
	Health    *v1.HealthHandler
	Proration *v1.ProrationHandler
	Pricing   *v1.PricingHandler
	Catalog   *v1.CatalogHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger, sentryService *sentry.Service) *gin.Engine {
	router := gin.Default()
	router.Use(
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.SentryMiddleware(cfg),
		middleware.SentryScopeMiddleware,
		middleware.ErrorHandler(logger, sentryService),
	)

	// Health check
	router.GET("/health", handlers.Health.Health)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	catalog := router.Group("/catalog")
	{
		catalog.GET("/products", handlers.Catalog.ListProducts)
		catalog.GET("/products/:id", handlers.Catalog.GetProduct)
		catalog.GET("/addons", handlers.Catalog.ListAddOns)
	}

	proration := router.Group("/proration")
	{
		proration.POST("/quote", handlers.Proration.Quote)
		proration.POST("/quote/from-invoice", handlers.Proration.QuoteFromInvoice)
		proration.POST("/quote/batch", handlers.Proration.BatchQuote)
		proration.POST("/period", handlers.Proration.ResolvePeriod)
	}

	pricing := router.Group("/pricing")
	{
		pricing.POST("/lines", handlers.Pricing.BuildPriceLines)
	}
}

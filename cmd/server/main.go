package main

import (
	"context"
	"time"

	"github.com/flexprice/prorata/internal/api"
	v1 "github.com/flexprice/prorata/internal/api/v1"
	"github.com/flexprice/prorata/internal/cache"
	"github.com/flexprice/prorata/internal/config"
	"github.com/flexprice/prorata/internal/logger"
	"github.com/flexprice/prorata/internal/repository"
	"github.com/flexprice/prorata/internal/sentry"
	"github.com/flexprice/prorata/internal/service"
	"github.com/flexprice/prorata/internal/types"
	"github.com/flexprice/prorata/internal/validator"
	"go.uber.org/fx"

	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	_ "github.com/flexprice/prorata/docs/swagger"
	"github.com/gin-gonic/gin"
)

//go:generate go run github.com/swaggo/swag/cmd/swag@v1.16.4 init --dir ../../ --generalInfo cmd/server/main.go --output ../../docs/swagger --parseInternal

// @title Prorata API
// @version 1.0
// @description First invoice quotes for subscriptions activated mid-cycle
// @BasePath /v1
// @schemes http https

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	// Initialize Fx application
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Cache
			cache.Initialize,

			// Repositories
			repository.NewCatalogRepository,

			// Engine
			service.NewProrationCalculator,
		),
	)

	// Monitoring
	opts = append(opts, sentry.Module())

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewProrationService,
			service.NewPricingService,
			service.NewCatalogService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			provideRouter,
		),
		fx.Invoke(
			initValidator,
			startServer,
		),
	)

	app := fx.New(opts...)
	app.Run()
}

// initValidator builds the request validator before any request is served
func initValidator() {
	validator.NewValidator()
}

func provideHandlers(
	logger *logger.Logger,
	prorationService service.ProrationService,
	pricingService service.PricingService,
	catalogService service.CatalogService,
) api.Handlers {
	return api.Handlers{
		Health:    v1.NewHealthHandler(logger),
		Proration: v1.NewProrationHandler(prorationService, logger),
		Pricing:   v1.NewPricingHandler(pricingService, logger),
		Catalog:   v1.NewCatalogHandler(catalogService, logger),
	}
}

func provideRouter(handlers api.Handlers, cfg *config.Configuration, logger *logger.Logger, sentryService *sentry.Service) *gin.Engine {
	return api.NewRouter(handlers, cfg, logger, sentryService)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal, types.ModeAPI:
		startAPIServer(lc, r, cfg, log)
	case types.ModeAWSLambdaAPI:
		startAWSLambdaAPI(r)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	log.Info("Registering API server start hook")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("Starting API server...", "address", cfg.Server.Address)
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}

func startAWSLambdaAPI(r *gin.Engine) {
	ginLambda := ginadapter.New(r)
	lambda.Start(ginLambda.ProxyWithContext)
}

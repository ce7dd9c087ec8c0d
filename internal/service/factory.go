package service

import (
	"github.com/flexprice/prorata/internal/config"
	"github.com/flexprice/prorata/internal/domain/catalog"
	"github.com/flexprice/prorata/internal/domain/proration"
	"github.com/flexprice/prorata/internal/logger"
	"github.com/flexprice/prorata/internal/sentry"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	Sentry *sentry.Service

	// Repositories
	CatalogRepo catalog.Repository

	// Engine
	ProrationCalculator proration.Calculator
}

// Common service params
func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	sentry *sentry.Service,
	catalogRepo catalog.Repository,
	prorationCalculator proration.Calculator,
) ServiceParams {
	return ServiceParams{
		Logger:              logger,
		Config:              config,
		Sentry:              sentry,
		CatalogRepo:         catalogRepo,
		ProrationCalculator: prorationCalculator,
	}
}

// NewProrationCalculator builds the engine with the configured VAT rate
func NewProrationCalculator(config *config.Configuration) proration.Calculator {
	return proration.NewCalculator(config.Billing.VAT())
}

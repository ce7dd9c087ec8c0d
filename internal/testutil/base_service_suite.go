package testutil

import (
	"context"

	"github.com/flexprice/prorata/internal/config"
	"github.com/flexprice/prorata/internal/domain/catalog"
	"github.com/flexprice/prorata/internal/domain/proration"
	"github.com/flexprice/prorata/internal/logger"
	"github.com/flexprice/prorata/internal/sentry"
	"github.com/flexprice/prorata/internal/types"
	"github.com/flexprice/prorata/internal/validator"
	"github.com/stretchr/testify/suite"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	CatalogRepo catalog.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	stores     Stores
	logger     *logger.Logger
	config     *config.Configuration
	sentry     *sentry.Service
	calculator proration.Calculator
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	// Initialize validator
	validator.NewValidator()

	s.config = config.GetDefaultConfig()
	s.config.Logging.Level = types.LogLevelInfo
	s.logger = logger.NewNopLogger()
	s.sentry = sentry.NewSentryService(s.config, s.logger)
	s.calculator = proration.NewCalculator(s.config.Billing.VAT())
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.ctx = SetupContext()
	s.setupStores()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

// setupStores seeds the catalog with the configured products and add-ons
func (s *BaseServiceTestSuite) setupStores() {
	store := NewInMemoryCatalogStore()
	for _, p := range s.config.Catalog.Products {
		if err := store.CreateProduct(s.ctx, catalog.ProductFromConfig(p)); err != nil {
			s.T().Fatalf("failed to seed product %s: %v", p.ID, err)
		}
	}
	for _, a := range s.config.Catalog.AddOns {
		if err := store.CreateAddOn(s.ctx, catalog.AddOnFromConfig(a)); err != nil {
			s.T().Fatalf("failed to seed add-on %s: %v", a.ID, err)
		}
	}

	s.stores = Stores{
		CatalogRepo: store,
	}
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.CatalogRepo.(*InMemoryCatalogStore).Clear()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetSentry returns a sentry service with reporting disabled
func (s *BaseServiceTestSuite) GetSentry() *sentry.Service {
	return s.sentry
}

// GetCalculator returns the proration engine at the configured VAT rate
func (s *BaseServiceTestSuite) GetCalculator() proration.Calculator {
	return s.calculator
}

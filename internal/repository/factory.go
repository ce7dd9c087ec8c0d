package repository

import (
	"github.com/flexprice/prorata/internal/cache"
	"github.com/flexprice/prorata/internal/config"
	"github.com/flexprice/prorata/internal/domain/catalog"
	"github.com/flexprice/prorata/internal/logger"
	memoryRepo "github.com/flexprice/prorata/internal/repository/memory"
)

type RepositoryType string

const (
	MemoryRepo RepositoryType = "memory"
)

func NewCatalogRepository(cfg *config.Configuration, logger *logger.Logger, c cache.Cache) catalog.Repository {
	return memoryRepo.NewCatalogRepository(cfg, logger, c)
}

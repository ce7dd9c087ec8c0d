package cache

import (
	"github.com/flexprice/prorata/internal/config"
	"github.com/flexprice/prorata/internal/logger"
)

// Initialize initializes the cache system
func Initialize(cfg *config.Configuration, log *logger.Logger) Cache {
	log.Infow("initializing cache system", "enabled", cfg.Cache.Enabled)
	return NewInMemoryCache(cfg)
}

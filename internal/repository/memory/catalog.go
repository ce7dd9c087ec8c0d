package memory

import (
	"context"
	"sync"

	"github.com/flexprice/prorata/internal/cache"
	"github.com/flexprice/prorata/internal/config"
	"github.com/flexprice/prorata/internal/domain/catalog"
	ierr "github.com/flexprice/prorata/internal/errors"
	"github.com/flexprice/prorata/internal/logger"
	"github.com/samber/lo"
)

// catalogRepository serves the product catalog seeded from configuration.
// Lookups read through the cache.
type catalogRepository struct {
	mu       sync.RWMutex
	products []*catalog.Product
	addOns   []*catalog.AddOn
	log      *logger.Logger
	cache    cache.Cache
}

func NewCatalogRepository(cfg *config.Configuration, log *logger.Logger, c cache.Cache) catalog.Repository {
	return &catalogRepository{
		products: lo.Map(cfg.Catalog.Products, func(p config.ProductConfig, _ int) *catalog.Product {
			return catalog.ProductFromConfig(p)
		}),
		addOns: lo.Map(cfg.Catalog.AddOns, func(a config.AddOnConfig, _ int) *catalog.AddOn {
			return catalog.AddOnFromConfig(a)
		}),
		log:   log,
		cache: c,
	}
}

func (r *catalogRepository) GetProductByID(ctx context.Context, id string) (*catalog.Product, error) {
	cacheKey := cache.GenerateKey(cache.PrefixProduct, id)
	if value, found := r.cache.Get(ctx, cacheKey); found {
		if p, ok := value.(*catalog.Product); ok {
			return p, nil
		}
	}

	r.mu.RLock()
	p, found := lo.Find(r.products, func(p *catalog.Product) bool { return p.ID == id })
	r.mu.RUnlock()

	if !found {
		r.log.Debugw("product not found", "product_id", id)
		return nil, ierr.NewErrorf("product %s not found", id).
			WithHintf("Product %s was not found in the catalog", id).
			WithReportableDetails(map[string]any{
				"product_id": id,
			}).
			Mark(ierr.ErrNotFound)
	}

	r.cache.Set(ctx, cacheKey, p, cache.DefaultExpiration)
	return p, nil
}

func (r *catalogRepository) ListProducts(ctx context.Context) ([]*catalog.Product, error) {
	if value, found := r.cache.Get(ctx, cache.PrefixProductList); found {
		if list, ok := value.([]*catalog.Product); ok {
			return append([]*catalog.Product(nil), list...), nil
		}
	}

	r.mu.RLock()
	list := append([]*catalog.Product(nil), r.products...)
	r.mu.RUnlock()

	// callers get their own slice so the cached one stays intact
	r.cache.Set(ctx, cache.PrefixProductList, list, cache.DefaultExpiration)
	return append([]*catalog.Product(nil), list...), nil
}

func (r *catalogRepository) GetAddOnByID(ctx context.Context, id string) (*catalog.AddOn, error) {
	cacheKey := cache.GenerateKey(cache.PrefixAddOn, id)
	if value, found := r.cache.Get(ctx, cacheKey); found {
		if a, ok := value.(*catalog.AddOn); ok {
			return a, nil
		}
	}

	r.mu.RLock()
	a, found := lo.Find(r.addOns, func(a *catalog.AddOn) bool { return a.ID == id })
	r.mu.RUnlock()

	if !found {
		r.log.Debugw("addon not found", "addon_id", id)
		return nil, ierr.NewErrorf("addon %s not found", id).
			WithHintf("Add-on %s was not found in the catalog", id).
			WithReportableDetails(map[string]any{
				"addon_id": id,
			}).
			Mark(ierr.ErrNotFound)
	}

	r.cache.Set(ctx, cacheKey, a, cache.DefaultExpiration)
	return a, nil
}

func (r *catalogRepository) ListAddOns(ctx context.Context) ([]*catalog.AddOn, error) {
	if value, found := r.cache.Get(ctx, cache.PrefixAddOnList); found {
		if list, ok := value.([]*catalog.AddOn); ok {
			return append([]*catalog.AddOn(nil), list...), nil
		}
	}

	r.mu.RLock()
	list := append([]*catalog.AddOn(nil), r.addOns...)
	r.mu.RUnlock()

	// callers get their own slice so the cached one stays intact
	r.cache.Set(ctx, cache.PrefixAddOnList, list, cache.DefaultExpiration)
	return append([]*catalog.AddOn(nil), list...), nil
}

package testutil

import (
	"context"

	"github.com/flexprice/prorata/internal/domain/catalog"
	ierr "github.com/flexprice/prorata/internal/errors"
)

// InMemoryCatalogStore implements catalog.Repository
type InMemoryCatalogStore struct {
	products *InMemoryStore[*catalog.Product]
	addOns   *InMemoryStore[*catalog.AddOn]
}

// NewInMemoryCatalogStore creates a new in-memory catalog store
func NewInMemoryCatalogStore() *InMemoryCatalogStore {
	return &InMemoryCatalogStore{
		products: NewInMemoryStore[*catalog.Product](),
		addOns:   NewInMemoryStore[*catalog.AddOn](),
	}
}

func (s *InMemoryCatalogStore) CreateProduct(ctx context.Context, p *catalog.Product) error {
	if p == nil {
		return ierr.NewError("product cannot be nil").
			WithHint("Product cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.products.Create(ctx, p.ID, p)
}

func (s *InMemoryCatalogStore) CreateAddOn(ctx context.Context, a *catalog.AddOn) error {
	if a == nil {
		return ierr.NewError("addon cannot be nil").
			WithHint("Add-on cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.addOns.Create(ctx, a.ID, a)
}

func (s *InMemoryCatalogStore) GetProductByID(ctx context.Context, id string) (*catalog.Product, error) {
	p, err := s.products.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("product not found").
			WithHintf("Product %s was not found in the catalog", id).
			WithReportableDetails(map[string]interface{}{
				"product_id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return p, nil
}

func (s *InMemoryCatalogStore) ListProducts(ctx context.Context) ([]*catalog.Product, error) {
	return s.products.List(ctx, func(i, j *catalog.Product) bool { return i.ID < j.ID }), nil
}

func (s *InMemoryCatalogStore) GetAddOnByID(ctx context.Context, id string) (*catalog.AddOn, error) {
	a, err := s.addOns.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("addon not found").
			WithHintf("Add-on %s was not found in the catalog", id).
			WithReportableDetails(map[string]interface{}{
				"addon_id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return a, nil
}

func (s *InMemoryCatalogStore) ListAddOns(ctx context.Context) ([]*catalog.AddOn, error) {
	return s.addOns.List(ctx, func(i, j *catalog.AddOn) bool { return i.ID < j.ID }), nil
}

// Clear removes every product and add-on
func (s *InMemoryCatalogStore) Clear() {
	s.products.Clear()
	s.addOns.Clear()
}

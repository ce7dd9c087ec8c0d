package catalog

import (
	"context"
)

// Repository defines read access to the product catalog
type Repository interface {
	GetProductByID(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)
	GetAddOnByID(ctx context.Context, id string) (*AddOn, error)
	ListAddOns(ctx context.Context) ([]*AddOn, error)
}

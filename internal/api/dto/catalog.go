package dto

import (
	"github.com/flexprice/prorata/internal/domain/catalog"
	"github.com/flexprice/prorata/internal/types"
)

// ProductResponse represents a catalog product
type ProductResponse struct {
	*catalog.Product
}

// AddOnResponse represents a catalog add-on
type AddOnResponse struct {
	*catalog.AddOn
}

// ListProductsResponse represents the response for listing products
type ListProductsResponse = types.ListResponse[*ProductResponse]

// ListAddOnsResponse represents the response for listing add-ons
type ListAddOnsResponse = types.ListResponse[*AddOnResponse]

package service

import (
	"context"

	"github.com/flexprice/prorata/internal/api/dto"
	"github.com/flexprice/prorata/internal/domain/catalog"
	"github.com/flexprice/prorata/internal/types"
	"github.com/samber/lo"
)

// CatalogService exposes the products and add-ons that can be quoted
type CatalogService interface {
	ListProducts(ctx context.Context) (*dto.ListProductsResponse, error)
	GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error)
	ListAddOns(ctx context.Context) (*dto.ListAddOnsResponse, error)
}

type catalogService struct {
	ServiceParams
}

func NewCatalogService(params ServiceParams) CatalogService {
	return &catalogService{ServiceParams: params}
}

func (s *catalogService) ListProducts(ctx context.Context) (*dto.ListProductsResponse, error) {
	products, err := s.CatalogRepo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(products, func(p *catalog.Product, _ int) *dto.ProductResponse {
		return &dto.ProductResponse{Product: p}
	})

	response := types.NewListResponse(items, len(items), len(items), 0)
	return &response, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := s.CatalogRepo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ProductResponse{Product: product}, nil
}

func (s *catalogService) ListAddOns(ctx context.Context) (*dto.ListAddOnsResponse, error) {
	addOns, err := s.CatalogRepo.ListAddOns(ctx)
	if err != nil {
		return nil, err
	}

	items := lo.Map(addOns, func(a *catalog.AddOn, _ int) *dto.AddOnResponse {
		return &dto.AddOnResponse{AddOn: a}
	})

	response := types.NewListResponse(items, len(items), len(items), 0)
	return &response, nil
}

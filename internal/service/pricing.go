package service

import (
	"context"

	"github.com/flexprice/prorata/internal/api/dto"
	"github.com/flexprice/prorata/internal/domain/pricing"
	"github.com/flexprice/prorata/internal/types"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// PricingService prices a net amount under every service class
type PricingService interface {
	BuildPriceLines(ctx context.Context, req dto.PriceLinesRequest) (*dto.PriceLinesResponse, error)
}

type pricingService struct {
	ServiceParams
}

func NewPricingService(params ServiceParams) PricingService {
	return &pricingService{ServiceParams: params}
}

func (s *pricingService) BuildPriceLines(ctx context.Context, req dto.PriceLinesRequest) (*dto.PriceLinesResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	vatRate := lo.FromPtrOr(req.VATRate, s.Config.Billing.VAT())
	voiceRate := s.Config.Billing.Voice()
	currency := lo.Ternary(req.Currency != "", req.Currency, s.Config.Billing.Currency)
	decimals := s.Config.Billing.DisplayDecimals

	lines, err := pricing.BuildLines(req.BasePrice, vatRate, voiceRate, req.AddOn)
	if err != nil {
		return nil, err
	}

	s.Logger.WithContext(ctx).Debugw("price lines built",
		zap.String("base_price", req.BasePrice.String()),
		zap.String("vat_rate", vatRate.String()),
	)

	return &dto.PriceLinesResponse{
		Currency:  currency,
		VATRate:   vatRate,
		VoiceRate: voiceRate,
		Lines: lo.Map(lines, func(l pricing.Line, _ int) dto.PriceLineResponse {
			return dto.PriceLineResponse{
				Line: l,
				Display: dto.PriceLineDisplay{
					Net:        types.FormatAmount(l.Net, currency, decimals),
					VAT:        types.FormatAmount(l.VAT, currency, decimals),
					Gross:      types.FormatAmount(l.Gross, currency, decimals),
					AfterAddOn: types.FormatAmount(l.AfterAddOn, currency, decimals),
				},
			}
		}),
	}, nil
}

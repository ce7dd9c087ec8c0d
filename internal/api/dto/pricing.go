package dto

import (
	"github.com/flexprice/prorata/internal/domain/pricing"
	"github.com/flexprice/prorata/internal/validator"
	"github.com/shopspring/decimal"
)

// PriceLinesRequest prices a tax-exclusive amount under every service class
type PriceLinesRequest struct {
	BasePrice decimal.Decimal `json:"base_price" swaggertype:"string" example:"10"`
	// VATRate overrides the configured VAT rate
	VATRate *decimal.Decimal `json:"vat_rate,omitempty" swaggertype:"string"`
	AddOn   decimal.Decimal  `json:"addon" swaggertype:"string"`
	// Currency defaults to the configured billing currency
	Currency string `json:"currency,omitempty" validate:"omitempty,len=3"`
}

func (r *PriceLinesRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// PriceLineResponse is a price line with display strings
type PriceLineResponse struct {
	pricing.Line
	Display PriceLineDisplay `json:"display"`
}

// PriceLineDisplay holds the amounts formatted for the configured currency
type PriceLineDisplay struct {
	Net        string `json:"net"`
	VAT        string `json:"vat"`
	Gross      string `json:"gross"`
	AfterAddOn string `json:"after_addon"`
}

type PriceLinesResponse struct {
	Currency  string              `json:"currency"`
	VATRate   decimal.Decimal     `json:"vat_rate" swaggertype:"string"`
	VoiceRate decimal.Decimal     `json:"voice_rate" swaggertype:"string"`
	Lines     []PriceLineResponse `json:"lines"`
}

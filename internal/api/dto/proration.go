package dto

import (
	"github.com/flexprice/prorata/internal/domain/proration"
	ierr "github.com/flexprice/prorata/internal/errors"
	"github.com/flexprice/prorata/internal/types"
	"github.com/flexprice/prorata/internal/validator"
	"github.com/shopspring/decimal"
)

// AddOnLineRequest is an ad-hoc add-on not taken from the catalog
type AddOnLineRequest struct {
	Label string          `json:"label" validate:"required"`
	Price decimal.Decimal `json:"price" swaggertype:"string"`
}

// QuoteRequest computes a first invoice from a monthly price. Anything left
// empty is taken from the product, then from configuration.
type QuoteRequest struct {
	ProductID          string                `json:"product_id,omitempty"`
	MonthlyPrice       *decimal.Decimal      `json:"monthly_price,omitempty" swaggertype:"string"`
	ProrationBasePrice *decimal.Decimal      `json:"proration_base_price,omitempty" swaggertype:"string"`
	ActivationDate     string                `json:"activation_date" validate:"required" example:"2025-10-12"`
	AnchorDay          *int                  `json:"anchor_day,omitempty" example:"15"`
	Policy             types.ProrationPolicy `json:"policy,omitempty"`
	AddOnIDs           []string              `json:"addon_ids,omitempty"`
	AddOns             []AddOnLineRequest    `json:"addons,omitempty" validate:"omitempty,dive"`
	Language           types.Language        `json:"language,omitempty"`
}

func (r *QuoteRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	if r.ProductID == "" && r.MonthlyPrice == nil {
		return ierr.NewError("monthly price or product is required").
			WithHint("Provide either a monthly_price or a product_id").
			Mark(ierr.ErrValidation)
	}

	if r.Policy != "" {
		if err := r.Policy.Validate(); err != nil {
			return err
		}
	}

	if r.Language != "" {
		if err := r.Language.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// QuoteFromInvoiceRequest derives the monthly price from a known first invoice
type QuoteFromInvoiceRequest struct {
	ProductID      string          `json:"product_id,omitempty"`
	InvoiceAmount  decimal.Decimal `json:"invoice_amount" swaggertype:"string" example:"31.9"`
	ActivationDate string          `json:"activation_date" validate:"required" example:"2025-10-12"`
	AnchorDay      *int            `json:"anchor_day,omitempty" example:"15"`
	Language       types.Language  `json:"language,omitempty"`
}

func (r *QuoteFromInvoiceRequest) Validate() error {
	if err := validator.ValidateRequest(r); err != nil {
		return err
	}

	if r.Language != "" {
		if err := r.Language.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// ExplanationResponse is the customer script for a quote
type ExplanationResponse struct {
	Language types.Language `json:"language"`
	// Text keeps the markdown emphasis used when pasting into chat tools
	Text string `json:"text"`
	// PlainText is Text without markdown and direction marks
	PlainText string `json:"plain_text"`
}

// QuoteResponse represents a computed first invoice
type QuoteResponse struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`
	ProductID string `json:"product_id,omitempty"`
	Currency  string `json:"currency"`

	*proration.ProrationResult

	Explanation *ExplanationResponse `json:"explanation,omitempty"`
}

// BatchQuoteRequest computes many independent quotes at once
type BatchQuoteRequest struct {
	Items []QuoteRequest `json:"items" validate:"required,min=1,max=100"`
}

func (r *BatchQuoteRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// BatchQuoteItem carries either a quote or the error that prevented it
type BatchQuoteItem struct {
	Index int               `json:"index"`
	Quote *QuoteResponse    `json:"quote,omitempty"`
	Error *ierr.ErrorDetail `json:"error,omitempty"`
}

// BatchQuoteResponse lists results in request order
type BatchQuoteResponse struct {
	ID        string           `json:"id"`
	Items     []BatchQuoteItem `json:"items"`
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
}

// ResolvePeriodRequest resolves the billing cycle without pricing it
type ResolvePeriodRequest struct {
	ProductID      string `json:"product_id,omitempty"`
	ActivationDate string `json:"activation_date" validate:"required" example:"2025-03-15"`
	AnchorDay      *int   `json:"anchor_day,omitempty" example:"15"`
}

func (r *ResolvePeriodRequest) Validate() error {
	return validator.ValidateRequest(r)
}

// ResolvePeriodResponse is the billing cycle enclosing an activation
type ResolvePeriodResponse struct {
	proration.BillingPeriod
	OnAnchor bool `json:"on_anchor"`
}

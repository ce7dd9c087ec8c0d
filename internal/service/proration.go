package service

import (
	"context"
	"runtime"

	"github.com/flexprice/prorata/internal/api/dto"
	"github.com/flexprice/prorata/internal/domain/catalog"
	"github.com/flexprice/prorata/internal/domain/proration"
	ierr "github.com/flexprice/prorata/internal/errors"
	"github.com/flexprice/prorata/internal/types"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/iter"
	"go.uber.org/zap"
)

// ProrationService quotes first invoices for new subscriptions
type ProrationService interface {
	// Quote computes the first invoice from a monthly price
	Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error)

	// QuoteFromInvoice derives the monthly price from a known first invoice
	QuoteFromInvoice(ctx context.Context, req dto.QuoteFromInvoiceRequest) (*dto.QuoteResponse, error)

	// BatchQuote computes independent quotes concurrently, preserving request order
	BatchQuote(ctx context.Context, req dto.BatchQuoteRequest) (*dto.BatchQuoteResponse, error)

	// ResolvePeriod returns the billing cycle enclosing an activation
	ResolvePeriod(ctx context.Context, req dto.ResolvePeriodRequest) (*dto.ResolvePeriodResponse, error)
}

type prorationService struct {
	ServiceParams
	explanationService ExplanationService
}

// NewProrationService creates a new proration service.
func NewProrationService(params ServiceParams) ProrationService {
	return &prorationService{
		ServiceParams:      params,
		explanationService: NewExplanationService(params),
	}
}

func (s *prorationService) Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	lang := lo.Ternary(req.Language != "", req.Language, types.GetLanguage(ctx))

	product, err := s.getProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	params := proration.ProrationParams{
		ProrationBasePrice: req.ProrationBasePrice,
		AnchorDay:          s.anchorDay(req.AnchorDay, product),
		Policy:             req.Policy,
	}

	switch {
	case req.MonthlyPrice != nil:
		params.MonthlyPrice = *req.MonthlyPrice
	case product != nil:
		params.MonthlyPrice = product.DefaultBasePrice
	}

	if product != nil {
		if params.Policy == "" {
			params.Policy = product.Policy
		}
		if params.ProrationBasePrice == nil {
			params.ProrationBasePrice = product.ProrationBasePrice
		}
	}

	params.AddOns, err = s.resolveAddOns(ctx, req, lang)
	if err != nil {
		return nil, err
	}

	activation, dateErr := types.ParseCalendarDate(req.ActivationDate)
	params.ActivationDate = activation

	span, ctx := s.Sentry.StartQuoteSpan(ctx, "proration.quote", map[string]interface{}{
		"product_id": req.ProductID,
		"policy":     string(params.Policy),
	})
	if span != nil {
		defer span.Finish()
	}

	s.Sentry.AddBreadcrumb("proration", "calculating quote", map[string]interface{}{
		"product_id":      req.ProductID,
		"policy":          string(params.Policy),
		"anchor_day":      params.AnchorDay,
		"activation_date": req.ActivationDate,
	})

	result, err := s.ProrationCalculator.Calculate(ctx, params)
	if err != nil {
		// amount and anchor errors take precedence over the date
		if dateErr != nil && ierr.IsInvalidDate(err) {
			err = dateErr
		}
		s.Logger.WithContext(ctx).Debugw("quote rejected",
			zap.String("product_id", req.ProductID),
			zap.String("activation_date", req.ActivationDate),
			zap.Error(err),
		)
		return nil, err
	}

	s.Logger.WithContext(ctx).Infow("quote computed",
		zap.String("product_id", req.ProductID),
		zap.String("policy", string(result.Policy)),
		zap.String("activation_date", result.ActivationDate.String()),
		zap.String("cycle_start", result.CycleStart.String()),
		zap.String("cycle_end", result.CycleEnd.String()),
		zap.String("invoice_after_tax", result.InvoiceAfterTax.String()),
	)

	return s.toResponse(ctx, req.ProductID, result, lang), nil
}

func (s *prorationService) QuoteFromInvoice(ctx context.Context, req dto.QuoteFromInvoiceRequest) (*dto.QuoteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	lang := lo.Ternary(req.Language != "", req.Language, types.GetLanguage(ctx))

	product, err := s.getProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	activation, dateErr := types.ParseCalendarDate(req.ActivationDate)

	result, err := s.ProrationCalculator.CalculateFromInvoice(ctx, proration.InvoiceParams{
		InvoiceAmount:  req.InvoiceAmount,
		ActivationDate: activation,
		AnchorDay:      s.anchorDay(req.AnchorDay, product),
	})
	if err != nil {
		if dateErr != nil && ierr.IsInvalidDate(err) {
			err = dateErr
		}
		s.Logger.WithContext(ctx).Debugw("invoice quote rejected",
			zap.String("invoice_amount", req.InvoiceAmount.String()),
			zap.String("activation_date", req.ActivationDate),
			zap.Error(err),
		)
		return nil, err
	}

	s.Logger.WithContext(ctx).Infow("monthly price derived from invoice",
		zap.String("product_id", req.ProductID),
		zap.String("invoice_amount", req.InvoiceAmount.String()),
		zap.String("monthly", result.MonthlyBeforeTax.String()),
	)

	return s.toResponse(ctx, req.ProductID, result, lang), nil
}

func (s *prorationService) BatchQuote(ctx context.Context, req dto.BatchQuoteRequest) (*dto.BatchQuoteResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	type indexedQuote = lo.Tuple2[int, dto.QuoteRequest]

	mapper := iter.Mapper[indexedQuote, dto.BatchQuoteItem]{
		MaxGoroutines: runtime.GOMAXPROCS(0),
	}

	indexed := lo.Map(req.Items, func(item dto.QuoteRequest, i int) indexedQuote {
		return lo.T2(i, item)
	})

	// Map keeps input order
	items := mapper.Map(indexed, func(t *indexedQuote) dto.BatchQuoteItem {
		quote, err := s.Quote(ctx, t.B)
		if err != nil {
			detail := ierr.NewErrorDetail(err)
			return dto.BatchQuoteItem{Index: t.A, Error: &detail}
		}
		return dto.BatchQuoteItem{Index: t.A, Quote: quote}
	})

	failed := lo.CountBy(items, func(item dto.BatchQuoteItem) bool { return item.Error != nil })

	s.Logger.WithContext(ctx).Infow("batch quote computed",
		zap.Int("items", len(items)),
		zap.Int("failed", failed),
	)

	return &dto.BatchQuoteResponse{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_BATCH_QUOTE),
		Items:     items,
		Succeeded: len(items) - failed,
		Failed:    failed,
	}, nil
}

func (s *prorationService) ResolvePeriod(ctx context.Context, req dto.ResolvePeriodRequest) (*dto.ResolvePeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	product, err := s.getProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	anchorDay := s.anchorDay(req.AnchorDay, product)

	if err := types.ValidateAnchorDay(anchorDay); err != nil {
		return nil, err
	}
	activation, err := types.ParseCalendarDate(req.ActivationDate)
	if err != nil {
		return nil, err
	}

	period, err := proration.ResolvePeriod(activation, anchorDay)
	if err != nil {
		return nil, err
	}

	return &dto.ResolvePeriodResponse{
		BillingPeriod: period,
		OnAnchor:      period.IsOnAnchor(),
	}, nil
}

func (s *prorationService) getProduct(ctx context.Context, productID string) (*catalog.Product, error) {
	if productID == "" {
		return nil, nil
	}
	return s.CatalogRepo.GetProductByID(ctx, productID)
}

// anchorDay picks the request's anchor, then the product's, then the configured default.
func (s *prorationService) anchorDay(requested *int, product *catalog.Product) int {
	switch {
	case requested != nil:
		return *requested
	case product != nil && product.AnchorDay != 0:
		return product.AnchorDay
	default:
		return s.Config.Billing.DefaultAnchorDay
	}
}

// resolveAddOns returns catalog add-ons followed by ad-hoc lines, in request order.
func (s *prorationService) resolveAddOns(ctx context.Context, req dto.QuoteRequest, lang types.Language) ([]proration.AddOnLine, error) {
	lines := make([]proration.AddOnLine, 0, len(req.AddOnIDs)+len(req.AddOns))
	for _, id := range req.AddOnIDs {
		addOn, err := s.CatalogRepo.GetAddOnByID(ctx, id)
		if err != nil {
			return nil, err
		}
		lines = append(lines, addOn.Line(lang))
	}
	for _, a := range req.AddOns {
		lines = append(lines, proration.AddOnLine{Label: a.Label, Price: a.Price})
	}
	return lines, nil
}

func (s *prorationService) toResponse(ctx context.Context, productID string, result *proration.ProrationResult, lang types.Language) *dto.QuoteResponse {
	return &dto.QuoteResponse{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_QUOTE),
		Reference:       types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_QUOTE),
		ProductID:       productID,
		Currency:        s.Config.Billing.Currency,
		ProrationResult: result,
		Explanation:     s.explanationService.Explain(ctx, result, lang),
	}
}

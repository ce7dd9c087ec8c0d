package internal

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/flexprice/prorata/internal/api/dto"
	"github.com/flexprice/prorata/internal/cache"
	"github.com/flexprice/prorata/internal/config"
	"github.com/flexprice/prorata/internal/domain/pricing"
	ierr "github.com/flexprice/prorata/internal/errors"
	"github.com/flexprice/prorata/internal/logger"
	"github.com/flexprice/prorata/internal/repository"
	"github.com/flexprice/prorata/internal/sentry"
	"github.com/flexprice/prorata/internal/service"
	"github.com/flexprice/prorata/internal/types"
	"github.com/flexprice/prorata/internal/validator"
	"github.com/k0kubun/pp"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type scriptServices struct {
	proration service.ProrationService
	pricing   service.PricingService
	catalog   service.CatalogService
}

func newScriptServices() (*scriptServices, error) {
	validator.NewValidator()

	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	params := service.NewServiceParams(
		log,
		cfg,
		sentry.NewSentryService(cfg, log),
		repository.NewCatalogRepository(cfg, log, cache.Initialize(cfg, log)),
		service.NewProrationCalculator(cfg),
	)

	return &scriptServices{
		proration: service.NewProrationService(params),
		pricing:   service.NewPricingService(params),
		catalog:   service.NewCatalogService(params),
	}, nil
}

func scriptContext() context.Context {
	ctx := context.WithValue(context.Background(), types.CtxRequestID, types.GenerateUUID())
	return types.SetLanguage(ctx, types.Language(lo.CoalesceOrEmpty(os.Getenv("LANGUAGE"), string(types.LanguageEnglish))))
}

// envAmount reads a float amount from the environment, rejecting NaN and negatives
func envAmount(name string) (*decimal.Decimal, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("%s must be a number", name).
			Mark(ierr.ErrValidation)
	}
	amount, err := types.NewAmountFromFloat(strings.ToLower(name), v)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

func envAnchorDay() (*int, error) {
	raw := os.Getenv("ANCHOR_DAY")
	if raw == "" {
		return nil, nil
	}
	day, err := strconv.Atoi(raw)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("ANCHOR_DAY must be a whole number").
			Mark(ierr.ErrInvalidAnchor)
	}
	return &day, nil
}

func envList(name string) []string {
	return lo.Compact(lo.Map(strings.Split(os.Getenv(name), ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
}

// Quote prints a first invoice quote and its explanation
func Quote() error {
	services, err := newScriptServices()
	if err != nil {
		return err
	}

	monthly, err := envAmount("MONTHLY_PRICE")
	if err != nil {
		return err
	}
	anchorDay, err := envAnchorDay()
	if err != nil {
		return err
	}

	resp, err := services.proration.Quote(scriptContext(), dto.QuoteRequest{
		ProductID:      os.Getenv("PRODUCT_ID"),
		MonthlyPrice:   monthly,
		ActivationDate: os.Getenv("ACTIVATION_DATE"),
		AnchorDay:      anchorDay,
		Policy:         types.ProrationPolicy(os.Getenv("POLICY")),
		AddOnIDs:       envList("ADDON_IDS"),
	})
	if err != nil {
		return err
	}

	pp.Println(resp.ProrationResult)
	fmt.Printf("\n%s\n", resp.Explanation.PlainText)
	return nil
}

// QuoteFromInvoice prints the monthly price implied by a first invoice
func QuoteFromInvoice() error {
	services, err := newScriptServices()
	if err != nil {
		return err
	}

	invoice, err := envAmount("INVOICE_AMOUNT")
	if err != nil {
		return err
	}
	anchorDay, err := envAnchorDay()
	if err != nil {
		return err
	}

	resp, err := services.proration.QuoteFromInvoice(scriptContext(), dto.QuoteFromInvoiceRequest{
		ProductID:      os.Getenv("PRODUCT_ID"),
		InvoiceAmount:  lo.FromPtr(invoice),
		ActivationDate: os.Getenv("ACTIVATION_DATE"),
		AnchorDay:      anchorDay,
	})
	if err != nil {
		return err
	}

	pp.Println(resp.ProrationResult)
	fmt.Printf("\n%s\n", resp.Explanation.PlainText)
	return nil
}

// PriceLines prints the A / Nos / Voice / Data lines for BASE_PRICE
func PriceLines() error {
	services, err := newScriptServices()
	if err != nil {
		return err
	}

	base, err := strconv.ParseFloat(lo.CoalesceOrEmpty(os.Getenv("BASE_PRICE"), "0"), 64)
	if err != nil {
		return ierr.WithError(err).WithHint("BASE_PRICE must be a number").Mark(ierr.ErrValidation)
	}
	addOn, err := strconv.ParseFloat(lo.CoalesceOrEmpty(os.Getenv("ADDON_PRICE"), "0"), 64)
	if err != nil {
		return ierr.WithError(err).WithHint("ADDON_PRICE must be a number").Mark(ierr.ErrValidation)
	}

	resp, err := services.pricing.BuildPriceLines(scriptContext(), dto.PriceLinesRequest{
		BasePrice: pricing.FromFloat(base),
		AddOn:     pricing.FromFloat(addOn),
	})
	if err != nil {
		return err
	}

	for _, line := range resp.Lines {
		fmt.Printf("%-6s net %s  vat %s  gross %s  with add-on %s\n",
			line.Type, line.Display.Net, line.Display.VAT, line.Display.Gross, line.Display.AfterAddOn)
	}
	return nil
}

// PrintCatalog prints the configured catalog
func PrintCatalog() error {
	services, err := newScriptServices()
	if err != nil {
		return err
	}

	ctx := scriptContext()
	products, err := services.catalog.ListProducts(ctx)
	if err != nil {
		return err
	}
	addOns, err := services.catalog.ListAddOns(ctx)
	if err != nil {
		return err
	}

	pp.Println(products.Items)
	pp.Println(addOns.Items)
	return nil
}

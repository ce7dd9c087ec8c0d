package proration

import (
	"context"

	ierr "github.com/flexprice/prorata/internal/errors"
	"github.com/flexprice/prorata/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// FlatThirtyDivisor is the fixed day count flat_thirty prorates against,
// whatever the real cycle length is.
const FlatThirtyDivisor = 30

// DefaultVATRate is the flat VAT rate applied by the tax-aware policies.
var DefaultVATRate = decimal.NewFromFloat(0.16)

var flatThirtyDivisor = decimal.NewFromInt(FlatThirtyDivisor)

// NewCalculator creates a proration calculator applying vatRate under the
// tax-aware policies. A negative rate falls back to DefaultVATRate.
func NewCalculator(vatRate decimal.Decimal) Calculator {
	if vatRate.IsNegative() {
		vatRate = DefaultVATRate
	}
	return &policyCalculator{vatRate: vatRate}
}

// ComputeInvoice calculates a first invoice with the default VAT rate.
func ComputeInvoice(params ProrationParams) (*ProrationResult, error) {
	return NewCalculator(DefaultVATRate).Calculate(context.Background(), params)
}

// ComputeFromInvoice derives the monthly price from a known first invoice.
func ComputeFromInvoice(params InvoiceParams) (*ProrationResult, error) {
	return NewCalculator(DefaultVATRate).CalculateFromInvoice(context.Background(), params)
}

// policyCalculator dispatches on the closed set of proration policies.
type policyCalculator struct {
	vatRate decimal.Decimal
}

func (c *policyCalculator) Calculate(ctx context.Context, params ProrationParams) (*ProrationResult, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	policy := lo.Ternary(params.Policy == "", types.ProrationPolicyRatio, params.Policy)
	period := resolvePeriod(params.ActivationDate, params.AnchorDay)

	switch policy {
	case types.ProrationPolicyAnchorTax:
		return c.anchorTax(period, params), nil
	case types.ProrationPolicyFlatThirty:
		return c.flatThirty(period, params), nil
	default:
		return ratioPolicy(period, params), nil
	}
}

func (c *policyCalculator) CalculateFromInvoice(ctx context.Context, params InvoiceParams) (*ProrationResult, error) {
	if !params.InvoiceAmount.IsPositive() {
		return nil, ierr.NewError("invoice amount must be positive").
			WithHint("Invoice amount must be greater than zero").
			WithReportableDetails(map[string]any{
				"field":          "invoice_amount",
				"provided_value": params.InvoiceAmount.String(),
			}).
			Mark(ierr.ErrInvalidAmount)
	}
	if err := types.ValidateAnchorDay(params.AnchorDay); err != nil {
		return nil, err
	}
	if err := validateActivation(params.ActivationDate); err != nil {
		return nil, err
	}

	period := resolvePeriod(params.ActivationDate, params.AnchorDay)

	// invoice = monthly * (1 + ratio)
	monthly := params.InvoiceAmount.Div(decimal.NewFromInt(1).Add(period.Ratio))
	proration := monthly.Mul(period.Ratio)

	result := untaxedResult(period, types.ProrationPolicyRatio, monthly, proration, nil)
	result.InvoiceBeforeTax = params.InvoiceAmount
	result.InvoiceAfterTax = params.InvoiceAmount
	return result, nil
}

// ratioPolicy prorates monthly by the resolver's ratio. Add-ons are reported at face
// value and are not part of the invoice under this policy.
func ratioPolicy(period BillingPeriod, params ProrationParams) *ProrationResult {
	proration := params.MonthlyPrice.Mul(period.Ratio)
	return untaxedResult(period, types.ProrationPolicyRatio, params.MonthlyPrice, proration, params.AddOns)
}

func untaxedResult(
	period BillingPeriod,
	policy types.ProrationPolicy,
	monthly decimal.Decimal,
	proration decimal.Decimal,
	addOns []AddOnLine,
) *ProrationResult {
	breakdown := lo.Map(addOns, func(a AddOnLine, _ int) AddOnBreakdown {
		return AddOnBreakdown{Label: a.Label, BeforeTax: a.Price, VAT: decimal.Zero, AfterTax: a.Price}
	})
	addOnsTotal := sumAddOns(addOns)
	invoice := monthly.Add(proration)

	return &ProrationResult{
		BillingPeriod:        period,
		Policy:               policy,
		VATRate:              decimal.Zero,
		AppliedProDays:       period.ProDays,
		AppliedRatio:         period.Ratio,
		ProrationBasePrice:   monthly,
		MonthlyBeforeTax:     monthly,
		MonthlyAfterTax:      monthly,
		ProrationBeforeTax:   proration,
		ProrationAfterTax:    proration,
		AddOnsTotalBeforeTax: addOnsTotal,
		AddOnsTotalAfterTax:  addOnsTotal,
		InvoiceBeforeTax:     invoice,
		InvoiceVAT:           decimal.Zero,
		InvoiceAfterTax:      invoice,
		AddOns:               breakdown,
	}
}

// anchorTax prorates a tax-exclusive price, charging no partial period when
// activation lands exactly on the anchor day. The period dates are untouched.
func (c *policyCalculator) anchorTax(period BillingPeriod, params ProrationParams) *ProrationResult {
	proDays, ratio := period.ProDays, period.Ratio
	if period.IsOnAnchor() {
		proDays, ratio = 0, decimal.Zero
	}
	proration := params.MonthlyPrice.Mul(ratio)
	return c.taxedResult(period, types.ProrationPolicyAnchorTax, proDays, ratio,
		params.MonthlyPrice, params.MonthlyPrice, proration, params.AddOns)
}

// flatThirty prorates by ProDays / 30 against the proration base price.
func (c *policyCalculator) flatThirty(period BillingPeriod, params ProrationParams) *ProrationResult {
	ratio := decimal.NewFromInt(int64(period.ProDays)).Div(flatThirtyDivisor)
	base := lo.FromPtrOr(params.ProrationBasePrice, params.MonthlyPrice)
	proration := base.Mul(ratio)
	return c.taxedResult(period, types.ProrationPolicyFlatThirty, period.ProDays, ratio,
		params.MonthlyPrice, base, proration, params.AddOns)
}

// taxedResult applies VAT to monthly, proration and each add-on independently.
func (c *policyCalculator) taxedResult(
	period BillingPeriod,
	policy types.ProrationPolicy,
	proDays int,
	ratio decimal.Decimal,
	monthly decimal.Decimal,
	base decimal.Decimal,
	proration decimal.Decimal,
	addOns []AddOnLine,
) *ProrationResult {
	breakdown := lo.Map(addOns, func(a AddOnLine, _ int) AddOnBreakdown {
		vat := a.Price.Mul(c.vatRate)
		return AddOnBreakdown{Label: a.Label, BeforeTax: a.Price, VAT: vat, AfterTax: a.Price.Add(vat)}
	})
	addOnsTotal := sumAddOns(addOns)

	invoiceBeforeTax := monthly.Add(proration).Add(addOnsTotal)
	invoiceVAT := invoiceBeforeTax.Mul(c.vatRate)

	return &ProrationResult{
		BillingPeriod:        period,
		Policy:               policy,
		VATRate:              c.vatRate,
		AppliedProDays:       proDays,
		AppliedRatio:         ratio,
		ProrationBasePrice:   base,
		MonthlyBeforeTax:     monthly,
		MonthlyAfterTax:      c.withVAT(monthly),
		ProrationBeforeTax:   proration,
		ProrationAfterTax:    c.withVAT(proration),
		AddOnsTotalBeforeTax: addOnsTotal,
		AddOnsTotalAfterTax:  c.withVAT(addOnsTotal),
		InvoiceBeforeTax:     invoiceBeforeTax,
		InvoiceVAT:           invoiceVAT,
		InvoiceAfterTax:      invoiceBeforeTax.Add(invoiceVAT),
		AddOns:               breakdown,
	}
}

func (c *policyCalculator) withVAT(amount decimal.Decimal) decimal.Decimal {
	return amount.Add(amount.Mul(c.vatRate))
}

func sumAddOns(addOns []AddOnLine) decimal.Decimal {
	return lo.Reduce(addOns, func(acc decimal.Decimal, a AddOnLine, _ int) decimal.Decimal {
		return acc.Add(a.Price)
	}, decimal.Zero)
}

// validateParams checks amounts, then the anchor day, then the activation date.
func validateParams(params ProrationParams) error {
	if err := types.ValidateAmount("monthly_price", params.MonthlyPrice); err != nil {
		return err
	}
	if params.ProrationBasePrice != nil {
		if err := types.ValidateAmount("proration_base_price", *params.ProrationBasePrice); err != nil {
			return err
		}
	}
	for i, a := range params.AddOns {
		if err := types.ValidateAmount("addons.price", a.Price); err != nil {
			return ierr.WithError(err).
				WithReportableDetails(map[string]any{"index": i, "label": a.Label}).
				Mark(ierr.ErrInvalidAmount)
		}
	}
	if err := types.ValidateAnchorDay(params.AnchorDay); err != nil {
		return err
	}
	if err := validateActivation(params.ActivationDate); err != nil {
		return err
	}
	if params.Policy != "" {
		if err := params.Policy.Validate(); err != nil {
			return err
		}
	}
	return nil
}

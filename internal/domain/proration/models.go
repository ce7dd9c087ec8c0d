package proration

import (
	"github.com/flexprice/prorata/internal/types"
	"github.com/shopspring/decimal"
)

// BillingPeriod is the billing cycle enclosing an activation date.
// CycleStart <= ActivationDate <= CycleEnd <= NextCycleEnd and every cycle
// boundary falls on the month-clamped anchor day.
type BillingPeriod struct {
	ActivationDate types.CalendarDate `json:"activation_date" swaggertype:"string"`
	AnchorDay      int                `json:"anchor_day"`
	CycleStart     types.CalendarDate `json:"cycle_start" swaggertype:"string"`
	// CycleEnd is the date the next regular invoice is issued.
	CycleEnd     types.CalendarDate `json:"cycle_end" swaggertype:"string"`
	NextCycleEnd types.CalendarDate `json:"next_cycle_end" swaggertype:"string"`
	CycleDays    int                `json:"cycle_days"`
	ProDays      int                `json:"pro_days"`
	// Ratio is ProDays / CycleDays, zero for an empty cycle.
	Ratio decimal.Decimal `json:"ratio" swaggertype:"string"`
}

// AddOnLine is a monthly add-on charge, priced before tax.
type AddOnLine struct {
	Label string          `json:"label"`
	Price decimal.Decimal `json:"price" swaggertype:"string"`
}

// AddOnBreakdown is one add-on after the policy's tax treatment.
type AddOnBreakdown struct {
	Label     string          `json:"label"`
	BeforeTax decimal.Decimal `json:"before_tax" swaggertype:"string"`
	VAT       decimal.Decimal `json:"vat" swaggertype:"string"`
	AfterTax  decimal.Decimal `json:"after_tax" swaggertype:"string"`
}

// ProrationParams holds all necessary input for calculating a first invoice.
type ProrationParams struct {
	MonthlyPrice decimal.Decimal
	// ProrationBasePrice is the reference price FlatThirty prorates against.
	// Nil means MonthlyPrice. Ignored by the other policies.
	ProrationBasePrice *decimal.Decimal
	ActivationDate     types.CalendarDate
	AnchorDay          int
	// Policy defaults to ratio when empty.
	Policy types.ProrationPolicy
	AddOns []AddOnLine
}

// InvoiceParams holds the input for deriving the monthly price from a known
// first invoice under the ratio policy.
type InvoiceParams struct {
	InvoiceAmount  decimal.Decimal
	ActivationDate types.CalendarDate
	AnchorDay      int
}

// ProrationResult holds the output of a proration calculation.
// For the ratio policy VATRate is zero and every before/after tax pair is equal.
type ProrationResult struct {
	BillingPeriod

	Policy  types.ProrationPolicy `json:"policy"`
	VATRate decimal.Decimal       `json:"vat_rate" swaggertype:"string"`

	// AppliedProDays and AppliedRatio are what the money math used. They differ
	// from the period's values when activation lands on the anchor under
	// anchor_tax (both zero) and under flat_thirty (ProDays / 30).
	AppliedProDays int             `json:"applied_pro_days"`
	AppliedRatio   decimal.Decimal `json:"applied_ratio" swaggertype:"string"`

	ProrationBasePrice decimal.Decimal `json:"proration_base_price" swaggertype:"string"`

	MonthlyBeforeTax     decimal.Decimal `json:"monthly_before_tax" swaggertype:"string"`
	MonthlyAfterTax      decimal.Decimal `json:"monthly_after_tax" swaggertype:"string"`
	ProrationBeforeTax   decimal.Decimal `json:"proration_before_tax" swaggertype:"string"`
	ProrationAfterTax    decimal.Decimal `json:"proration_after_tax" swaggertype:"string"`
	AddOnsTotalBeforeTax decimal.Decimal `json:"addons_total_before_tax" swaggertype:"string"`
	AddOnsTotalAfterTax  decimal.Decimal `json:"addons_total_after_tax" swaggertype:"string"`
	InvoiceBeforeTax     decimal.Decimal `json:"invoice_before_tax" swaggertype:"string"`
	InvoiceVAT           decimal.Decimal `json:"invoice_vat" swaggertype:"string"`
	InvoiceAfterTax      decimal.Decimal `json:"invoice_after_tax" swaggertype:"string"`

	AddOns []AddOnBreakdown `json:"addons"`
}

// Period returns the resolved billing period without the money fields.
func (r *ProrationResult) Period() BillingPeriod {
	return r.BillingPeriod
}

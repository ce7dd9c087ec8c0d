// Package proration computes first invoices for subscriptions billed on a fixed
// monthly anchor day. Everything here is a pure function of its inputs and is
// safe for concurrent use.
package proration

import (
	"context"
)

// Calculator performs proration calculations.
// It's kept separate from the service to allow different VAT rates or easier testing.
type Calculator interface {
	// Calculate computes the first invoice from a monthly price under params.Policy.
	Calculate(ctx context.Context, params ProrationParams) (*ProrationResult, error)

	// CalculateFromInvoice derives the monthly price from a known first invoice
	// under the ratio policy. The invoice amount must be positive.
	CalculateFromInvoice(ctx context.Context, params InvoiceParams) (*ProrationResult, error)
}

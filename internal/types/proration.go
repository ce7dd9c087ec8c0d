package types

import (
	ierr "github.com/flexprice/prorata/internal/errors"
	"github.com/samber/lo"
)

// ProrationPolicy selects how the first invoice of a subscription is prorated.
// The set is closed; every policy shares the same input and result shape.
type ProrationPolicy string

const (
	// ProrationPolicyRatio prorates monthly by proDays/cycleDays with no tax split.
	ProrationPolicyRatio ProrationPolicy = "ratio"
	// ProrationPolicyAnchorTax prorates a tax-exclusive price and charges nothing
	// extra when activation lands on the anchor day.
	ProrationPolicyAnchorTax ProrationPolicy = "anchor_tax"
	// ProrationPolicyFlatThirty prorates by proDays/30 regardless of the cycle length.
	ProrationPolicyFlatThirty ProrationPolicy = "flat_thirty"
)

var ProrationPolicyValues = []ProrationPolicy{
	ProrationPolicyRatio,
	ProrationPolicyAnchorTax,
	ProrationPolicyFlatThirty,
}

func (p ProrationPolicy) Validate() error {
	if !lo.Contains(ProrationPolicyValues, p) {
		return ierr.NewError("invalid proration policy").
			WithHint("Proration policy must be ratio, anchor_tax, or flat_thirty").
			WithReportableDetails(map[string]any{
				"allowed_values": ProrationPolicyValues,
				"provided_value": p,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (p ProrationPolicy) String() string {
	return string(p)
}

// IsTaxAware reports whether the policy splits amounts into before/after VAT.
func (p ProrationPolicy) IsTaxAware() bool {
	return p == ProrationPolicyAnchorTax || p == ProrationPolicyFlatThirty
}

const (
	// MinAnchorDay and MaxAnchorDay bound the day of month invoices are issued on.
	MinAnchorDay = 1
	MaxAnchorDay = 31

	// DefaultAnchorDay is used when neither the request nor the product sets one.
	DefaultAnchorDay = 15
)

// ValidateAnchorDay rejects anchor days outside [1, 31].
func ValidateAnchorDay(day int) error {
	if day < MinAnchorDay || day > MaxAnchorDay {
		return ierr.NewErrorf("anchor day %d out of range", day).
			WithHint("Anchor day must be between 1 and 31").
			WithReportableDetails(map[string]any{
				"provided_value": day,
				"min":            MinAnchorDay,
				"max":            MaxAnchorDay,
			}).
			Mark(ierr.ErrInvalidAnchor)
	}
	return nil
}

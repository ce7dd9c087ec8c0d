package types

import (
	"fmt"
	"math"
	"strings"

	ierr "github.com/flexprice/prorata/internal/errors"
	"github.com/shopspring/decimal"
)

const (
	DefaultCurrency        = "JOD"
	DefaultDisplayDecimals = 3
)

// CURRENCY_CODES_SYMBOLS is a map of 3 digit ISO currency codes to their symbols
var CURRENCY_CODES_SYMBOLS = map[string]string{
	"jod": "JD",
	"usd": "$",
	"eur": "€",
	"gbp": "£",
	"aed": "AED",
	"sar": "SAR",
}

// GetCurrencySymbol returns the symbol for a given currency code
// if the code is not found, it returns the code itself
func GetCurrencySymbol(code string) string {
	if symbol, ok := CURRENCY_CODES_SYMBOLS[strings.ToLower(code)]; ok {
		return symbol
	}
	return code
}

// FormatAmount renders amount with a fixed number of decimals behind the currency
// symbol, e.g. "JD 31.900". Rounding here is display only.
func FormatAmount(amount decimal.Decimal, currency string, decimals int32) string {
	return fmt.Sprintf("%s %s", GetCurrencySymbol(currency), amount.StringFixed(decimals))
}

// NewAmountFromFloat converts a caller supplied float into a decimal amount,
// rejecting NaN, infinities and negative values.
func NewAmountFromFloat(field string, v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, ierr.NewErrorf("%s is not a finite number", field).
			WithHintf("%s must be a finite number", field).
			Mark(ierr.ErrInvalidAmount)
	}
	amount := decimal.NewFromFloat(v)
	if err := ValidateAmount(field, amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// ValidateAmount rejects negative amounts.
func ValidateAmount(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ierr.NewErrorf("%s is negative", field).
			WithHintf("%s must be zero or greater", field).
			WithReportableDetails(map[string]any{
				"field":          field,
				"provided_value": amount.String(),
			}).
			Mark(ierr.ErrInvalidAmount)
	}
	return nil
}

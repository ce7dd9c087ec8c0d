// Package pricing breaks a tax-exclusive base price into the gross price lines
// quoted for each service class.
package pricing

import (
	"math"

	ierr "github.com/flexprice/prorata/internal/errors"
	"github.com/flexprice/prorata/internal/types"
	"github.com/shopspring/decimal"
)

// LineType names a service class with its own uplift.
type LineType string

const (
	LineTypeA     LineType = "A"
	LineTypeNos   LineType = "Nos"
	LineTypeVoice LineType = "Voice"
	LineTypeData  LineType = "Data"
)

// DefaultVoiceRate is the uplift applied to voice services.
var DefaultVoiceRate = decimal.NewFromFloat(0.4616)

// Line is one service class priced from the same net amount.
type Line struct {
	Type       LineType        `json:"type"`
	Multiplier decimal.Decimal `json:"multiplier" swaggertype:"string"`
	Net        decimal.Decimal `json:"net" swaggertype:"string"`
	VAT        decimal.Decimal `json:"vat" swaggertype:"string"`
	Gross      decimal.Decimal `json:"gross" swaggertype:"string"`
	AfterAddOn decimal.Decimal `json:"after_addon" swaggertype:"string"`
}

// BuildLines prices base under every service class. A and Data carry VAT,
// Voice carries the voice uplift and Nos sits halfway between the two.
func BuildLines(base, vatRate, voiceRate, addOn decimal.Decimal) ([]Line, error) {
	if err := types.ValidateAmount("base_price", base); err != nil {
		return nil, err
	}
	if vatRate.IsNegative() || voiceRate.IsNegative() {
		return nil, ierr.NewError("negative rate").
			WithHint("VAT and voice rates must be zero or greater").
			WithReportableDetails(map[string]any{
				"vat_rate":   vatRate.String(),
				"voice_rate": voiceRate.String(),
			}).
			Mark(ierr.ErrValidation)
	}

	one := decimal.NewFromInt(1)
	mData := one.Add(vatRate)
	mVoice := one.Add(voiceRate)
	mNos := mVoice.Add(mData).Div(decimal.NewFromInt(2))

	return []Line{
		computeLine(LineTypeA, base, mData, addOn),
		computeLine(LineTypeNos, base, mNos, addOn),
		computeLine(LineTypeVoice, base, mVoice, addOn),
		computeLine(LineTypeData, base, mData, addOn),
	}, nil
}

func computeLine(t LineType, net, multiplier, addOn decimal.Decimal) Line {
	gross := net.Mul(multiplier)
	return Line{
		Type:       t,
		Multiplier: multiplier,
		Net:        net,
		VAT:        gross.Sub(net),
		Gross:      gross,
		AfterAddOn: gross.Add(addOn),
	}
}

// FromFloat converts calculator input, treating NaN and infinities as zero.
func FromFloat(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

package types

import (
	"math"
	"testing"

	ierr "github.com/flexprice/prorata/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProrationPolicyValidate(t *testing.T) {
	for _, p := range ProrationPolicyValues {
		assert.NoError(t, p.Validate(), p)
	}

	err := ProrationPolicy("stripe_like").Validate()
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))

	assert.False(t, ProrationPolicyRatio.IsTaxAware())
	assert.True(t, ProrationPolicyAnchorTax.IsTaxAware())
	assert.True(t, ProrationPolicyFlatThirty.IsTaxAware())
}

func TestValidateAnchorDay(t *testing.T) {
	for _, day := range []int{1, 15, 28, 31} {
		assert.NoError(t, ValidateAnchorDay(day), day)
	}
	for _, day := range []int{0, -1, 32} {
		err := ValidateAnchorDay(day)
		require.Error(t, err, day)
		assert.True(t, ierr.IsInvalidAnchor(err), day)
	}
}

func TestNewAmountFromFloat(t *testing.T) {
	amount, err := NewAmountFromFloat("monthly_price", 29)
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(29)))

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -0.5} {
		_, err := NewAmountFromFloat("monthly_price", v)
		require.Error(t, err, v)
		assert.True(t, ierr.IsInvalidAmount(err), v)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "JD 31.900", FormatAmount(decimal.RequireFromString("31.9"), "JOD", 3))
	assert.Equal(t, "$ 2.53", FormatAmount(decimal.RequireFromString("2.525"), "usd", 2))
	assert.Equal(t, "XYZ 1.0", FormatAmount(decimal.NewFromInt(1), "XYZ", 1))
}

func TestLocalizedString(t *testing.T) {
	s := LocalizedString{EN: "Internet Everywhere", AR: "إنترنت في كل مكان"}
	assert.Equal(t, "إنترنت في كل مكان", s.Get(LanguageArabic))
	assert.Equal(t, "Internet Everywhere", s.Get(LanguageEnglish))
	assert.Equal(t, "Only English", LocalizedString{EN: "Only English"}.Get(LanguageArabic))
	assert.Error(t, Language("fr").Validate())
}

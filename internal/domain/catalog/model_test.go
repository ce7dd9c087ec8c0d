package catalog

import (
	"testing"

	"github.com/flexprice/prorata/internal/config"
	"github.com/flexprice/prorata/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyForProduct(t *testing.T) {
	assert.Equal(t, types.ProrationPolicyAnchorTax, PolicyForProduct("iew"))
	assert.Equal(t, types.ProrationPolicyFlatThirty, PolicyForProduct("adsl"))
	assert.Equal(t, types.ProrationPolicyFlatThirty, PolicyForProduct("ftth"))
	assert.Equal(t, types.ProrationPolicyRatio, PolicyForProduct("mobile-postpaid"))
	assert.Equal(t, types.ProrationPolicyRatio, PolicyForProduct("unknown"))
}

func TestProductFromConfig(t *testing.T) {
	p := ProductFromConfig(config.ProductConfig{
		ID:               "ftth",
		Name:             types.LocalizedString{EN: "FTTH", AR: "ألياف ضوئية"},
		AnchorDay:        1,
		DefaultBasePrice: 35,
	})
	assert.Equal(t, types.ProrationPolicyFlatThirty, p.Policy)
	assert.Equal(t, "35", p.DefaultBasePrice.String())
	assert.Nil(t, p.ProrationBasePrice)

	overridden := ProductFromConfig(config.ProductConfig{
		ID:                 "ftth-promo",
		AnchorDay:          1,
		DefaultBasePrice:   30,
		ProrationBasePrice: lo.ToPtr(35.0),
		Policy:             types.ProrationPolicyFlatThirty,
	})
	assert.Equal(t, types.ProrationPolicyFlatThirty, overridden.Policy)
	require.NotNil(t, overridden.ProrationBasePrice)
	assert.Equal(t, "35", overridden.ProrationBasePrice.String())
}

func TestAddOnLine(t *testing.T) {
	a := AddOnFromConfig(config.AddOnConfig{
		ID:    "anghami",
		Name:  types.LocalizedString{EN: "Anghami", AR: "أنغامي"},
		Price: 2,
	})
	assert.Equal(t, "أنغامي", a.Line(types.LanguageArabic).Label)
	assert.Equal(t, "Anghami", a.Line(types.LanguageEnglish).Label)
	assert.Equal(t, "2", a.Line(types.LanguageEnglish).Price.String())
}

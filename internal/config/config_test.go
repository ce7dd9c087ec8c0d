package config

import (
	"testing"

	"github.com/flexprice/prorata/internal/types"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaultConfig(t *testing.T) {
	cfg := GetDefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "0.16", cfg.Billing.VAT().String())
	assert.Equal(t, "0.4616", cfg.Billing.Voice().String())
	assert.Equal(t, types.DefaultAnchorDay, cfg.Billing.DefaultAnchorDay)

	ids := lo.Map(cfg.Catalog.Products, func(p ProductConfig, _ int) string { return p.ID })
	assert.ElementsMatch(t, []string{"iew", "mobile-postpaid", "ftth", "adsl"}, ids)
	assert.Len(t, cfg.Catalog.AddOns, 5)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Configuration)
	}{
		{"bad_run_mode", func(c *Configuration) { c.Deployment.Mode = "batch" }},
		{"vat_out_of_range", func(c *Configuration) { c.Billing.VATRate = 1.5 }},
		{"negative_vat", func(c *Configuration) { c.Billing.VATRate = -0.1 }},
		{"anchor_out_of_range", func(c *Configuration) { c.Billing.DefaultAnchorDay = 32 }},
		{"product_anchor_missing", func(c *Configuration) { c.Catalog.Products[0].AnchorDay = 0 }},
		{"product_unknown_policy", func(c *Configuration) { c.Catalog.Products[0].Policy = "weekly" }},
		{"addon_negative_price", func(c *Configuration) { c.Catalog.AddOns[0].Price = -2 }},
		{"sentry_enabled_without_dsn", func(c *Configuration) { c.Sentry.Enabled = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestNewConfig_Env(t *testing.T) {
	t.Setenv("PRORATA_BILLING_VAT_RATE", "0.08")
	t.Setenv("PRORATA_SERVER_ADDRESS", ":9090")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.08", cfg.Billing.VAT().String())
	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.NotEmpty(t, cfg.Catalog.Products)
}

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/flexprice/prorata/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Billing    BillingConfig    `validate:"required"`
	Catalog    CatalogConfig
	Cache      CacheConfig
	Sentry     SentryConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required,oneof=local api aws_lambda_api"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required,oneof=debug info"`
}

// BillingConfig holds the rates and defaults applied to every quote.
type BillingConfig struct {
	VATRate          float64 `mapstructure:"vat_rate" validate:"gte=0,lt=1"`
	DefaultAnchorDay int     `mapstructure:"default_anchor_day" validate:"required,min=1,max=31"`
	Currency         string  `mapstructure:"currency" validate:"required,len=3"`
	DisplayDecimals  int32   `mapstructure:"display_decimals" validate:"gte=0,lte=6"`
	// VoiceRate is the uplift applied to the voice line of the price calculator.
	VoiceRate float64 `mapstructure:"voice_rate" validate:"gte=0"`
}

// VAT returns the configured VAT rate as a decimal.
func (c BillingConfig) VAT() decimal.Decimal {
	return decimal.NewFromFloat(c.VATRate)
}

// Voice returns the configured voice uplift as a decimal.
func (c BillingConfig) Voice() decimal.Decimal {
	return decimal.NewFromFloat(c.VoiceRate)
}

// CatalogConfig seeds the product catalog.
type CatalogConfig struct {
	Products []ProductConfig `mapstructure:"products" validate:"dive"`
	AddOns   []AddOnConfig   `mapstructure:"addons" validate:"dive"`
}

type ProductConfig struct {
	ID               string                `mapstructure:"id" validate:"required"`
	Name             types.LocalizedString `mapstructure:"name"`
	Description      types.LocalizedString `mapstructure:"description"`
	AnchorDay        int                   `mapstructure:"anchor_day" validate:"required,min=1,max=31"`
	DefaultBasePrice float64               `mapstructure:"default_base_price" validate:"gte=0"`
	// ProrationBasePrice is the undiscounted reference price for flat_thirty products.
	ProrationBasePrice *float64 `mapstructure:"proration_base_price" validate:"omitempty,gte=0"`
	// Policy overrides the policy derived from the product id.
	Policy types.ProrationPolicy `mapstructure:"policy" validate:"omitempty,oneof=ratio anchor_tax flat_thirty"`
}

type AddOnConfig struct {
	ID          string                `mapstructure:"id" validate:"required"`
	Name        types.LocalizedString `mapstructure:"name"`
	Description types.LocalizedString `mapstructure:"description"`
	Price       float64               `mapstructure:"price" validate:"gte=0"`
}

type CacheConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type SentryConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	DSN         string  `mapstructure:"dsn" validate:"required_if=Enabled true"`
	Environment string  `mapstructure:"environment"`
	SampleRate  float64 `mapstructure:"sample_rate" validate:"gte=0,lte=1"`
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	// Modify config paths to ensure config.yaml is found
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/prorata")

	// Set up environment variables support
	v.SetEnvPrefix("PRORATA")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Error reading config file: %v\n", err)
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Without a config file the built-in catalog is used
	if len(config.Catalog.Products) == 0 && len(config.Catalog.AddOns) == 0 {
		config.Catalog = DefaultCatalog()
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults registers every scalar key so env overrides apply without a file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", string(types.ModeLocal))
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("billing.vat_rate", 0.16)
	v.SetDefault("billing.default_anchor_day", types.DefaultAnchorDay)
	v.SetDefault("billing.currency", types.DefaultCurrency)
	v.SetDefault("billing.display_decimals", types.DefaultDisplayDecimals)
	v.SetDefault("billing.voice_rate", 0.4616)
	v.SetDefault("cache.enabled", true)
	v.SetDefault("sentry.enabled", false)
	v.SetDefault("sentry.environment", "local")
	v.SetDefault("sentry.sample_rate", 1.0)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development
// This is useful for running scripts or other non-web applications
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Billing: BillingConfig{
			VATRate:          0.16,
			DefaultAnchorDay: types.DefaultAnchorDay,
			Currency:         types.DefaultCurrency,
			DisplayDecimals:  types.DefaultDisplayDecimals,
			VoiceRate:        0.4616,
		},
		Catalog: DefaultCatalog(),
		Cache:   CacheConfig{Enabled: true},
		Sentry:  SentryConfig{Environment: "local", SampleRate: 1.0},
	}
}

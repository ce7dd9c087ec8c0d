package catalog

import (
	"github.com/flexprice/prorata/internal/config"
	"github.com/flexprice/prorata/internal/domain/proration"
	"github.com/flexprice/prorata/internal/types"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Product is a sellable subscription with its billing anchor and list price.
type Product struct {
	ID               string                `json:"id"`
	Name             types.LocalizedString `json:"name"`
	Description      types.LocalizedString `json:"description"`
	AnchorDay        int                   `json:"anchor_day"`
	DefaultBasePrice decimal.Decimal       `json:"default_base_price" swaggertype:"string"`
	// ProrationBasePrice is set for products prorated against an undiscounted price.
	ProrationBasePrice *decimal.Decimal      `json:"proration_base_price,omitempty" swaggertype:"string"`
	Policy             types.ProrationPolicy `json:"policy"`
}

// AddOn is a monthly extra that can be attached to any product.
type AddOn struct {
	ID          string                `json:"id"`
	Name        types.LocalizedString `json:"name"`
	Description types.LocalizedString `json:"description"`
	Price       decimal.Decimal       `json:"price" swaggertype:"string"`
}

// PolicyForProduct maps a product id to the proration policy its product line uses.
func PolicyForProduct(productID string) types.ProrationPolicy {
	switch productID {
	case "iew":
		return types.ProrationPolicyAnchorTax
	case "adsl", "ftth":
		return types.ProrationPolicyFlatThirty
	default:
		return types.ProrationPolicyRatio
	}
}

// ProductFromConfig builds a product from its configuration entry. An explicit
// policy in configuration wins over the id based mapping.
func ProductFromConfig(c config.ProductConfig) *Product {
	p := &Product{
		ID:               c.ID,
		Name:             c.Name,
		Description:      c.Description,
		AnchorDay:        c.AnchorDay,
		DefaultBasePrice: decimal.NewFromFloat(c.DefaultBasePrice),
		Policy:           lo.Ternary(c.Policy != "", c.Policy, PolicyForProduct(c.ID)),
	}
	if c.ProrationBasePrice != nil {
		p.ProrationBasePrice = lo.ToPtr(decimal.NewFromFloat(*c.ProrationBasePrice))
	}
	return p
}

// AddOnFromConfig builds an add-on from its configuration entry.
func AddOnFromConfig(c config.AddOnConfig) *AddOn {
	return &AddOn{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Price:       decimal.NewFromFloat(c.Price),
	}
}

// Line returns the add-on as a proration input labelled in lang.
func (a *AddOn) Line(lang types.Language) proration.AddOnLine {
	return proration.AddOnLine{Label: a.Name.Get(lang), Price: a.Price}
}

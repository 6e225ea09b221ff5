// Package types - Pricing configuration types
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceRange is one quantity bracket of a range-priced item.
type PriceRange struct {
	// Min is the bracket start (inclusive)
	Min float64 `json:"min"`

	// Max is the bracket end (inclusive, nil = unbounded "N+")
	Max *float64 `json:"max,omitempty"`

	// Price is the per-unit price within this bracket
	Price decimal.Decimal `json:"price"`
}

// Contains reports whether quantity falls inside the bracket.
func (r PriceRange) Contains(quantity float64) bool {
	if quantity < r.Min {
		return false
	}
	return r.Max == nil || quantity <= *r.Max
}

// OptionPrice is a select option label with an optional per-option price.
type OptionPrice struct {
	Label string           `json:"label"`
	Price *decimal.Decimal `json:"price,omitempty"`
}

// PricingItem is one row of the pricing configuration table.
type PricingItem struct {
	// Phase is the grouping key; first occurrence in the table fixes
	// phase ordering
	Phase string `json:"phase"`

	// Item is the label and the question lookup key
	Item string `json:"item"`

	// UnitCost is the flat per-unit price
	UnitCost decimal.Decimal `json:"unit_cost"`

	// Ranges holds quantity-bracket pricing, sorted ascending by Min
	Ranges []PriceRange `json:"ranges,omitempty"`

	// Essential, Refresh, Transformation are the tier default
	// magnitudes (0/1 for binary items, the numeric default otherwise)
	Essential      float64 `json:"essential"`
	Refresh        float64 `json:"refresh"`
	Transformation float64 `json:"transformation"`

	// Description is shown alongside the derived question
	Description string `json:"description,omitempty"`

	// QuestionType, when set, overrides type inference
	QuestionType QuestionType `json:"question_type,omitempty"`

	// Options are the select option labels, in table order
	Options []string `json:"options,omitempty"`

	// OptionPrices carries per-option prices when the options cell
	// included them
	OptionPrices []OptionPrice `json:"option_prices,omitempty"`

	// Min and Max bound number/range questions
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`

	// Required marks the derived question as mandatory
	Required bool `json:"required,omitempty"`

	// Validation is an opaque rule tag for the collection layer
	Validation string `json:"validation,omitempty"`

	// SharedVariable is the raw shared-variable cell: a bare name
	// defines the variable, a {name} reference reads it
	SharedVariable string `json:"shared_variable,omitempty"`

	// IsAddOn reports the item separately from its phase subtotal
	IsAddOn bool `json:"is_add_on,omitempty"`
}

// TierValue returns the item's default magnitude for a tier.
func (p PricingItem) TierValue(tier Tier) float64 {
	switch tier {
	case TierRefresh:
		return p.Refresh
	case TierTransformation:
		return p.Transformation
	default:
		return p.Essential
	}
}

// PricingConfig is a parsed pricing table snapshot. Snapshots are
// immutable once built; configuration refresh replaces the whole value.
type PricingConfig struct {
	// Items are the table rows in source order
	Items []PricingItem `json:"items"`

	// Source identifies where the table came from
	Source string `json:"source,omitempty"`

	// LastUpdated is when the snapshot was parsed
	LastUpdated time.Time `json:"last_updated"`
}

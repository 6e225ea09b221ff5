// Package pricing resolves unit prices and holds the live pricing
// configuration snapshot.
package pricing

import (
	"github.com/shopspring/decimal"

	"quoteforge/core/types"
)

// UnitPriceFor returns the per-unit price for a quantity. Items without
// ranges price at their flat unit cost. Ranged items price at the first
// bracket containing the quantity; a quantity above every bracket
// degrades to the top bracket's price, so the ranges behave as a
// monotonic tier ladder rather than a strict lookup table.
func UnitPriceFor(item types.PricingItem, quantity float64) decimal.Decimal {
	if len(item.Ranges) == 0 {
		return item.UnitCost
	}

	for _, r := range item.Ranges {
		if r.Contains(quantity) {
			return r.Price
		}
	}

	// Below the lowest bracket clamp down, above the highest clamp up.
	lowest := item.Ranges[0]
	if quantity < lowest.Min {
		return lowest.Price
	}
	return item.Ranges[len(item.Ranges)-1].Price
}

// TotalFor returns the total price for a quantity: the resolved unit
// price times the quantity.
func TotalFor(item types.PricingItem, quantity float64) decimal.Decimal {
	return UnitPriceFor(item, quantity).Mul(decimal.NewFromFloat(quantity))
}

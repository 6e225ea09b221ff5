// Package calc walks phases, questions and answers and produces the
// per-phase priced line items.
package calc

import (
	"github.com/shopspring/decimal"

	"quoteforge/core/pricing"
	"quoteforge/core/tier"
	"quoteforge/core/types"
)

// Calculator prices answered questions against the live pricing
// configuration. It never mutates its inputs and never fails: a
// missing configuration degrades to fixed estimates, a lookup miss
// drops the question from the output.
type Calculator struct {
	store *pricing.ConfigStore
}

// New creates a calculator bound to a configuration store.
func New(store *pricing.ConfigStore) *Calculator {
	return &Calculator{store: store}
}

// Store exposes the bound configuration store.
func (c *Calculator) Store() *pricing.ConfigStore {
	return c.store
}

// CalculatePricing prices every answered question in the selected
// phases. When a configuration is loaded it is the source of truth:
// questions without a matching pricing item are skipped entirely, so
// live table edits retire stale questions without code changes.
// Zero-total items are omitted from the breakdown.
func (c *Calculator) CalculatePricing(answers types.AnswerSet, phases []types.Phase, selectedPhaseIDs []string) []types.PhasePricing {
	resolvedTier := tier.Determine(answers, phases)
	cfg := c.store.Current()

	selected := make(map[string]struct{}, len(selectedPhaseIDs))
	for _, id := range selectedPhaseIDs {
		selected[id] = struct{}{}
	}

	result := make([]types.PhasePricing, 0, len(selectedPhaseIDs))
	for _, phase := range phases {
		if _, ok := selected[phase.ID]; !ok {
			continue
		}

		items := make([]types.LineItem, 0, len(phase.Questions))
		for _, q := range phase.Questions {
			ans, ok := answers[q.ID]
			if !ok || ans.Value.IsZero() {
				continue
			}

			// Unselected binary questions contribute nothing.
			if q.Type == types.QuestionBinary && !ans.Value.Truthy() {
				continue
			}

			line, ok := c.priceQuestion(cfg, phase, q, ans, resolvedTier)
			if !ok || line.Total.IsZero() {
				continue
			}
			items = append(items, line)
		}

		subtotal := decimal.Zero
		for _, item := range items {
			subtotal = subtotal.Add(item.Total)
		}

		result = append(result, types.PhasePricing{
			PhaseID:   phase.ID,
			PhaseName: phase.Name,
			Items:     items,
			Subtotal:  subtotal,
		})
	}

	return result
}

// priceQuestion prices one answered question. The bool result is false
// when the question has no matching pricing item in a loaded
// configuration (a lookup miss, not an error).
func (c *Calculator) priceQuestion(cfg *types.PricingConfig, phase types.Phase, q types.Question, ans types.Answer, resolvedTier types.Tier) (types.LineItem, bool) {
	quantity := quantityFor(q, ans.Value)

	line := types.LineItem{
		QuestionID: q.ID,
		Label:      q.Label,
		Quantity:   quantity,
		IsAddOn:    q.IsAddOn,
		PhaseID:    phase.ID,
	}

	if cfg != nil {
		item, found := pricing.FindItem(cfg, phase.Name, q.Label)
		if !found {
			return types.LineItem{}, false
		}
		line.IsAddOn = item.IsAddOn || q.IsAddOn

		if len(item.Ranges) > 0 {
			// Range pricing is not strictly linear, so the displayed
			// unit price is the averaged effective rate.
			line.Total = pricing.TotalFor(item, quantity)
			if quantity > 0 {
				line.UnitPrice = line.Total.Div(decimal.NewFromFloat(quantity))
			}
			return line, true
		}

		line.UnitPrice = configUnitPrice(item, q, quantity)
		line.Total = line.UnitPrice.Mul(decimal.NewFromFloat(quantity))
		return line, true
	}

	// No configuration loaded: best-effort legacy estimate so pricing
	// never hard-fails the caller.
	line.UnitPrice = fallbackUnitPrice(q, ans.Value, resolvedTier)
	line.Total = line.UnitPrice.Mul(decimal.NewFromFloat(quantity))
	return line, true
}

// configUnitPrice resolves the per-unit price of a config-matched item
// without ranges. Binary, select and text answers price at the item's
// unit cost; numeric answers do too, quantity scaling happens in the
// caller.
func configUnitPrice(item types.PricingItem, q types.Question, quantity float64) decimal.Decimal {
	switch q.Type {
	case types.QuestionNumber, types.QuestionRange:
		if quantity == 0 {
			return decimal.Zero
		}
		return pricing.UnitPriceFor(item, quantity)
	default:
		return item.UnitCost
	}
}

// quantityFor derives the billing quantity from an answer: the numeric
// value for numeric answers, 1 for binary, and a parsed count (else 1)
// for everything else.
func quantityFor(q types.Question, v types.AnswerValue) float64 {
	if v.Kind == types.ValueNumber {
		return v.Num
	}
	if q.Type == types.QuestionBinary {
		return 1
	}
	if n := v.Quantity(); n > 0 {
		return n
	}
	return 1
}

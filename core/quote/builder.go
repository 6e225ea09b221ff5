// Package quote composes phase pricing, add-ons, recurring costs and a
// timeline estimate into a final quote document.
package quote

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"quoteforge/core/calc"
	"quoteforge/core/tier"
	"quoteforge/core/types"
)

// Builder assembles quotes from calculator output.
type Builder struct {
	calc *calc.Calculator
}

// NewBuilder creates a builder around a calculator.
func NewBuilder(c *calc.Calculator) *Builder {
	return &Builder{calc: c}
}

// Build produces a fresh quote: it prices the selected phases, lifts
// add-on line items out of their phases into a top-level list
// (re-deriving phase subtotals), attaches the tier's recurring-cost
// schedule and timeline, and totals all phases plus add-ons. Ongoing
// costs are excluded from the total. The result is a new value; no
// input is mutated.
func (b *Builder) Build(projectType types.ProjectType, answers types.AnswerSet, phases []types.Phase, selectedPhaseIDs []string) types.Quote {
	resolvedTier := tier.Determine(answers, phases)
	phasePricing := b.calc.CalculatePricing(answers, phases, selectedPhaseIDs)

	var addOns []types.LineItem
	for i := range phasePricing {
		kept := phasePricing[i].Items[:0:0]
		subtotal := decimal.Zero
		for _, item := range phasePricing[i].Items {
			if item.IsAddOn {
				addOns = append(addOns, item)
				continue
			}
			kept = append(kept, item)
			subtotal = subtotal.Add(item.Total)
		}
		phasePricing[i].Items = kept
		phasePricing[i].Subtotal = subtotal
	}

	total := decimal.Zero
	for _, phase := range phasePricing {
		total = total.Add(phase.Subtotal)
	}
	for _, addOn := range addOns {
		total = total.Add(addOn.Total)
	}

	return types.Quote{
		ID:           uuid.NewString(),
		ProjectType:  projectType,
		Phases:       phasePricing,
		AddOns:       addOns,
		Tier:         resolvedTier,
		OngoingCosts: OngoingCosts(resolvedTier),
		Total:        total,
		Timeline:     Timeline(resolvedTier),
		CreatedAt:    time.Now().UTC(),
	}
}

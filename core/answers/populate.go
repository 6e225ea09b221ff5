// Package answers - Tier pre-population
package answers

import (
	"quoteforge/core/pricing"
	"quoteforge/core/types"
)

// PopulateFromTier seeds answers from a tier's default magnitudes in
// the pricing table. Binary questions answer true when the magnitude
// is positive, numeric questions take the magnitude itself, and select
// questions pick the option aligned with the tier when one exists.
// Items without a magnitude for the tier produce no answer.
func PopulateFromTier(cfg *types.PricingConfig, phases []types.Phase, t types.Tier) types.AnswerSet {
	set := make(types.AnswerSet)
	if cfg == nil {
		return set
	}

	for _, phase := range phases {
		for _, q := range phase.Questions {
			item, ok := pricing.FindItem(cfg, phase.Name, q.Label)
			if !ok {
				continue
			}
			magnitude := item.TierValue(t)

			switch q.Type {
			case types.QuestionBinary:
				set[q.ID] = types.Answer{QuestionID: q.ID, Value: types.BoolValue(magnitude > 0)}

			case types.QuestionNumber, types.QuestionRange:
				if magnitude > 0 {
					set[q.ID] = types.Answer{QuestionID: q.ID, Value: types.NumberValue(magnitude)}
				}

			case types.QuestionSelect:
				if magnitude <= 0 {
					continue
				}
				for _, opt := range q.Options {
					if opt.Tier == t {
						set[q.ID] = types.Answer{QuestionID: q.ID, Value: types.StringValue(opt.Value)}
						break
					}
				}
			}
		}
	}

	return set
}

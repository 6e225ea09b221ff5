// Package calc - Legacy estimation fallback
//
// These constants keep the answer-collection surface usable before a
// pricing configuration loads. They are rough estimates, documented
// here as the engine's degraded mode, and are never consulted once a
// configuration is present.
package calc

import (
	"github.com/shopspring/decimal"

	"quoteforge/core/types"
)

// tierBasePrice anchors the per-tier fallback estimates.
var tierBasePrice = map[types.Tier]decimal.Decimal{
	types.TierEssential:      decimal.NewFromInt(8000),
	types.TierRefresh:        decimal.NewFromInt(20000),
	types.TierTransformation: decimal.NewFromInt(60000),
}

var (
	// fallbackBinaryPrice prices a selected binary item with no tier signal
	fallbackBinaryPrice = decimal.NewFromInt(100)

	// fallbackUnitRate prices one unit of a numeric answer
	fallbackUnitRate = decimal.NewFromInt(100)

	// fallbackSelectPrice prices a select answer with no tier signal
	fallbackSelectPrice = decimal.NewFromInt(200)
)

// fallbackUnitPrice estimates a per-unit price for a question when no
// configuration is loaded. Option-level signals take precedence over
// the question type: an explicit option price wins outright, then an
// option's tier label prices at the tier base over 100.
func fallbackUnitPrice(q types.Question, v types.AnswerValue, resolvedTier types.Tier) decimal.Decimal {
	if opt, ok := q.Option(v.String()); ok {
		if opt.Price != nil {
			return *opt.Price
		}
		if opt.Tier != "" {
			return tierBasePrice[opt.Tier].Div(decimal.NewFromInt(100))
		}
	}

	switch q.Type {
	case types.QuestionBinary:
		if !v.Truthy() {
			return decimal.Zero
		}
		if resolvedTier != "" {
			return tierBasePrice[resolvedTier].Div(decimal.NewFromInt(200))
		}
		return fallbackBinaryPrice

	case types.QuestionNumber, types.QuestionRange:
		return fallbackUnitRate

	case types.QuestionSelect:
		// A tiered or priced option never reaches here; this is the
		// flat estimate for untiered options and free-form values.
		return fallbackSelectPrice
	}

	return decimal.Zero
}

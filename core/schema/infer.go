// Package schema derives the typed question schema from a pricing
// configuration.
package schema

import "quoteforge/core/types"

// ResolveType returns the question type for an item. An explicit
// question-type column short-circuits inference; the two stages are
// deliberately separate so each can be exercised on its own.
func ResolveType(item types.PricingItem) types.QuestionType {
	if item.QuestionType.Valid() {
		return item.QuestionType
	}
	return InferType(item)
}

// InferType infers a question type from an item's cells:
//   - options present: select
//   - ranges present: range
//   - min or max present: number
//   - tier magnitudes all 0/1: binary
//   - any tier magnitude above 1: number
//   - otherwise: binary
func InferType(item types.PricingItem) types.QuestionType {
	if len(item.Options) > 0 {
		return types.QuestionSelect
	}

	if len(item.Ranges) > 0 {
		return types.QuestionRange
	}

	if item.Min != nil || item.Max != nil {
		return types.QuestionNumber
	}

	magnitudes := []float64{item.Essential, item.Refresh, item.Transformation}

	allBinary := true
	for _, v := range magnitudes {
		if v != 0 && v != 1 {
			allBinary = false
			break
		}
	}
	if allBinary {
		return types.QuestionBinary
	}

	for _, v := range magnitudes {
		if v > 1 {
			return types.QuestionNumber
		}
	}

	return types.QuestionBinary
}

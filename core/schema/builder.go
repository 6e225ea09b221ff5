// Package schema - Phase and question construction
package schema

import (
	"fmt"
	"regexp"
	"strings"

	"quoteforge/core/sharedvar"
	"quoteforge/core/types"
)

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// BuildPhases derives the full question schema from a pricing
// configuration. The table is the single source of truth: one question
// per item, grouped into phases ordered by each phase's first
// occurrence in the table. The first phase is always required.
func BuildPhases(cfg *types.PricingConfig) []types.Phase {
	if cfg == nil {
		return nil
	}

	order := make([]string, 0)
	grouped := make(map[string][]types.PricingItem)
	for _, item := range cfg.Items {
		name := strings.TrimSpace(item.Phase)
		if _, seen := grouped[name]; !seen {
			order = append(order, name)
		}
		grouped[name] = append(grouped[name], item)
	}

	phases := make([]types.Phase, 0, len(order))
	for i, name := range order {
		phaseOrder := i + 1
		phaseID := fmt.Sprintf("phase-%d", phaseOrder)

		items := grouped[name]
		questions := make([]types.Question, 0, len(items))
		for _, item := range items {
			questions = append(questions, buildQuestion(item, phaseID, phaseOrder))
		}

		phases = append(phases, types.Phase{
			ID:         phaseID,
			Name:       name,
			Order:      phaseOrder,
			IsRequired: phaseOrder == 1,
			Questions:  questions,
		})
	}

	return phases
}

// buildQuestion derives one question from a pricing item.
func buildQuestion(item types.PricingItem, phaseID string, phaseOrder int) types.Question {
	qtype := ResolveType(item)

	q := types.Question{
		ID:         fmt.Sprintf("phase-%d-%s", phaseOrder, Slug(item.Item)),
		Label:      item.Item,
		Type:       qtype,
		PhaseID:    phaseID,
		Min:        item.Min,
		Max:        item.Max,
		HelpText:   item.Description,
		Validation: item.Validation,
		Required:   item.Required,
		IsAddOn:    item.IsAddOn,
		SharedVar:  sharedvar.ParseBinding(item.SharedVariable),
	}

	switch qtype {
	case types.QuestionBinary:
		q.Default = types.BoolValue(item.Essential > 0)

	case types.QuestionSelect:
		q.Options = buildOptions(item)
		if len(q.Options) > 0 {
			q.Default = types.StringValue(q.Options[0].Value)
		}

	case types.QuestionNumber, types.QuestionRange:
		q.Default = types.NumberValue(firstNonZero(item.Essential, item.Refresh, item.Transformation))

		// The top bracket caps the question when it is bounded.
		if n := len(item.Ranges); n > 0 {
			if top := item.Ranges[n-1]; top.Max != nil {
				q.Max = top.Max
			}
		}
		if q.Min == nil {
			zero := 0.0
			q.Min = &zero
		}

	case types.QuestionText:
		q.Default = types.StringValue("")
	}

	return q
}

// buildOptions synthesizes select options, either from the options
// column (indexed option-1, option-2, ...) or, when absent, from the
// tiers carrying a non-zero magnitude.
func buildOptions(item types.PricingItem) []types.QuestionOption {
	if len(item.Options) > 0 {
		opts := make([]types.QuestionOption, 0, len(item.Options))
		for i, label := range item.Options {
			opt := types.QuestionOption{
				Value:   fmt.Sprintf("option-%d", i+1),
				Label:   label,
				IsAddOn: item.IsAddOn,
			}
			for _, op := range item.OptionPrices {
				if op.Label == label && op.Price != nil {
					opt.Price = op.Price
					break
				}
			}
			opts = append(opts, opt)
		}
		return opts
	}

	var opts []types.QuestionOption
	unitCost := item.UnitCost
	for _, tier := range types.AllTiers() {
		if item.TierValue(tier) > 0 {
			opts = append(opts, types.QuestionOption{
				Value:   string(tier),
				Label:   titleTier(tier),
				Tier:    tier,
				Price:   &unitCost,
				IsAddOn: item.IsAddOn,
			})
		}
	}
	return opts
}

// Slug converts a label to its question-id form.
func Slug(label string) string {
	s := slugRe.ReplaceAllString(strings.ToLower(label), "-")
	return strings.Trim(s, "-")
}

func firstNonZero(values ...float64) float64 {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

func titleTier(t types.Tier) string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

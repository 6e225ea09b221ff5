// Package pricing - Config-table item lookup
package pricing

import (
	"regexp"
	"strings"

	"quoteforge/core/types"
)

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// FindItem locates a pricing item by phase and item label. Question
// labels are derived independently from the same table, so the lookup
// tolerates case and whitespace drift and falls back to substring and
// punctuation-normalized matching when an exact match fails. A miss is
// not an error; callers decide skip-vs-fallback.
func FindItem(cfg *types.PricingConfig, phase, label string) (types.PricingItem, bool) {
	if cfg == nil {
		return types.PricingItem{}, false
	}

	wantPhase := normalize(phase)
	wantItem := normalize(label)

	// Exact match on normalized phase and item.
	for _, item := range cfg.Items {
		if normalize(item.Phase) == wantPhase && normalize(item.Item) == wantItem {
			return item, true
		}
	}

	// Substring match either direction.
	for _, item := range cfg.Items {
		if normalize(item.Phase) != wantPhase {
			continue
		}
		have := normalize(item.Item)
		if strings.Contains(have, wantItem) || strings.Contains(wantItem, have) {
			return item, true
		}
	}

	// Punctuation-stripped fuzzy match.
	wantFuzzy := fuzzy(wantItem)
	for _, item := range cfg.Items {
		if normalize(item.Phase) != wantPhase {
			continue
		}
		have := fuzzy(normalize(item.Item))
		if have == wantFuzzy || strings.Contains(have, wantFuzzy) || strings.Contains(wantFuzzy, have) {
			return item, true
		}
	}

	return types.PricingItem{}, false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func fuzzy(s string) string {
	s = nonWordRe.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

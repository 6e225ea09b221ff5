// Package tier infers which pricing tier best matches a set of
// answers.
package tier

import "quoteforge/core/types"

// Determine counts tier-aligned selections across all answered select
// questions and returns the best-matching tier. Only select answers
// whose chosen option carries a tier label participate; binary and
// numeric answers never influence the result, so the tier reflects
// explicit choices rather than magnitudes.
//
// The rule is a plurality with a bias toward the higher tier:
// transformation wins only when it strictly leads both others, refresh
// wins when it strictly leads essential, and essential is the default.
// Ties resolve downward.
func Determine(answers types.AnswerSet, phases []types.Phase) types.Tier {
	counts := make(map[types.Tier]int, 3)

	for _, phase := range phases {
		for _, q := range phase.Questions {
			ans, ok := answers[q.ID]
			if !ok || len(q.Options) == 0 {
				continue
			}
			opt, ok := q.Option(ans.Value.String())
			if !ok || opt.Tier == "" {
				continue
			}
			counts[opt.Tier]++
		}
	}

	if counts[types.TierTransformation] > counts[types.TierRefresh] &&
		counts[types.TierTransformation] > counts[types.TierEssential] {
		return types.TierTransformation
	}
	if counts[types.TierRefresh] > counts[types.TierEssential] {
		return types.TierRefresh
	}
	return types.TierEssential
}

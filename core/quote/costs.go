// Package quote - Recurring-cost and timeline tables
//
// These schedules are design constants keyed by tier, not derived from
// the pricing table.
package quote

import (
	"github.com/shopspring/decimal"

	"quoteforge/core/types"
)

func money(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func schedule(pkg string, monthly, annual int64) types.CostSchedule {
	return types.CostSchedule{Package: pkg, Monthly: money(monthly), Annual: money(annual)}
}

// OngoingCosts returns the recurring hosting/maintenance/staging
// schedule for a tier. The schedule is presented separately and never
// folded into the quote total.
func OngoingCosts(t types.Tier) types.OngoingCosts {
	switch t {
	case types.TierRefresh:
		staging := schedule("", 30, 360)
		return types.OngoingCosts{
			Hosting:      schedule("Silver", 180, 2160),
			Maintenance:  schedule("Advanced", 395, 4740),
			Staging:      &staging,
			TotalMonthly: money(605),
			TotalAnnual:  money(7260),
		}
	case types.TierTransformation:
		staging := schedule("", 30, 360)
		return types.OngoingCosts{
			Hosting:      schedule("Gold", 240, 2880),
			Maintenance:  schedule("Premium", 510, 6120),
			Staging:      &staging,
			TotalMonthly: money(780),
			TotalAnnual:  money(9360),
		}
	default:
		return types.OngoingCosts{
			Hosting:      schedule("Bronze", 120, 1440),
			Maintenance:  schedule("Essential", 280, 3360),
			TotalMonthly: money(400),
			TotalAnnual:  money(4800),
		}
	}
}

// Timeline returns the delivery estimate for a tier.
func Timeline(t types.Tier) string {
	switch t {
	case types.TierRefresh:
		return "8-10 weeks"
	case types.TierTransformation:
		return "14-18 weeks"
	default:
		return "4-6 weeks"
	}
}

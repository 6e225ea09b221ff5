// Package output - Text formatter
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"quoteforge/core/types"
	"quoteforge/internal/config"
)

// TextFormatter renders a quote as a human-readable breakdown.
type TextFormatter struct{}

// Format returns the format type
func (f *TextFormatter) Format() Format { return FormatText }

// Render writes the breakdown: phases with their line items, add-ons,
// the recurring-cost schedule and the project total.
func (f *TextFormatter) Render(w io.Writer, q *types.Quote) error {
	out := config.Get().Output
	symbol := out.CurrencySymbol

	fmt.Fprintf(w, "Project quote (%s)\n", q.ProjectType)
	fmt.Fprintf(w, "Tier: %s   Timeline: %s\n", q.Tier, q.Timeline)
	fmt.Fprintln(w, strings.Repeat("=", 62))

	for _, phase := range q.Phases {
		fmt.Fprintf(w, "\n%s\n", phase.PhaseName)
		for _, item := range phase.Items {
			fmt.Fprintf(w, "  %-36s %5s x %s%s = %s%s\n",
				item.Label, trimFloat(item.Quantity),
				symbol, item.UnitPrice.StringFixed(2),
				symbol, item.Total.StringFixed(2))
		}
		fmt.Fprintf(w, "  %-36s %21s%s\n", "Subtotal", symbol, phase.Subtotal.StringFixed(2))
	}

	if len(q.AddOns) > 0 {
		fmt.Fprintln(w, "\nAdd-ons")
		for _, item := range q.AddOns {
			fmt.Fprintf(w, "  %-36s %5s x %s%s = %s%s\n",
				item.Label, trimFloat(item.Quantity),
				symbol, item.UnitPrice.StringFixed(2),
				symbol, item.Total.StringFixed(2))
		}
	}

	if out.ShowOngoing {
		fmt.Fprintln(w, "\nOngoing costs (billed separately)")
		writeSchedule(w, symbol, "Hosting", q.OngoingCosts.Hosting)
		writeSchedule(w, symbol, "Maintenance", q.OngoingCosts.Maintenance)
		if q.OngoingCosts.Staging != nil {
			writeSchedule(w, symbol, "Staging", *q.OngoingCosts.Staging)
		}
		fmt.Fprintf(w, "  %-36s %s%s/month  %s%s/year\n", "Total",
			symbol, q.OngoingCosts.TotalMonthly.StringFixed(2),
			symbol, q.OngoingCosts.TotalAnnual.StringFixed(2))
	}

	fmt.Fprintln(w, "\n"+strings.Repeat("=", 62))
	fmt.Fprintf(w, "Project total: %s%s\n", symbol, q.Total.StringFixed(2))
	return nil
}

func writeSchedule(w io.Writer, symbol, label string, s types.CostSchedule) {
	name := label
	if s.Package != "" {
		name = fmt.Sprintf("%s (%s)", label, s.Package)
	}
	fmt.Fprintf(w, "  %-36s %s%s/month  %s%s/year\n", name,
		symbol, s.Monthly.StringFixed(2), symbol, s.Annual.StringFixed(2))
}

func trimFloat(f float64) string {
	return decimal.NewFromFloat(f).String()
}

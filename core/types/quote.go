// Package types - Quote output types
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one priced row of a quote.
type LineItem struct {
	QuestionID string `json:"question_id"`
	Label      string `json:"label"`

	Quantity float64 `json:"quantity"`

	// UnitPrice is the displayed per-unit rate. For range-priced items
	// it is the averaged effective rate (total / quantity).
	UnitPrice decimal.Decimal `json:"unit_price"`

	Total decimal.Decimal `json:"total"`

	IsAddOn bool `json:"is_add_on,omitempty"`

	// PhaseID records which phase an add-on was lifted out of
	PhaseID string `json:"phase_id,omitempty"`
}

// PhasePricing is the priced breakdown of one phase.
type PhasePricing struct {
	PhaseID   string          `json:"phase_id"`
	PhaseName string          `json:"phase_name"`
	Items     []LineItem      `json:"items"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CostSchedule is one recurring-cost line (hosting, maintenance, staging).
type CostSchedule struct {
	// Package names the service package, when the line has one
	Package string `json:"package,omitempty"`

	Monthly decimal.Decimal `json:"monthly"`
	Annual  decimal.Decimal `json:"annual"`
}

// OngoingCosts is the recurring-cost schedule selected by tier. It is
// presented separately and never included in the quote total.
type OngoingCosts struct {
	Hosting     CostSchedule  `json:"hosting"`
	Maintenance CostSchedule  `json:"maintenance"`
	Staging     *CostSchedule `json:"staging,omitempty"`

	TotalMonthly decimal.Decimal `json:"total_monthly"`
	TotalAnnual  decimal.Decimal `json:"total_annual"`
}

// Quote is the assembled pricing document. It is built fresh on every
// request and immutable once returned.
type Quote struct {
	ID          string      `json:"id"`
	ProjectType ProjectType `json:"project_type"`

	Phases []PhasePricing `json:"phases"`

	// AddOns are line items lifted out of their phases
	AddOns []LineItem `json:"add_ons"`

	Tier         Tier         `json:"tier"`
	OngoingCosts OngoingCosts `json:"ongoing_costs"`

	// Total is all phase subtotals plus all add-on totals. Ongoing
	// costs are excluded.
	Total decimal.Decimal `json:"total"`

	Timeline  string    `json:"timeline"`
	CreatedAt time.Time `json:"created_at"`
}

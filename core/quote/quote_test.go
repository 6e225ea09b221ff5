package quote

import (
	"testing"

	"github.com/shopspring/decimal"

	"quoteforge/core/calc"
	"quoteforge/core/pricing"
	"quoteforge/core/types"
)

func workshopConfig() *types.PricingConfig {
	return &types.PricingConfig{
		Items: []types.PricingItem{
			{
				Phase:        "Discovery",
				Item:         "Workshop",
				UnitCost:     decimal.NewFromInt(1000),
				QuestionType: types.QuestionBinary,
			},
			{
				Phase:        "Discovery",
				Item:         "Analytics add-on",
				UnitCost:     decimal.NewFromInt(150),
				QuestionType: types.QuestionBinary,
				IsAddOn:      true,
			},
		},
	}
}

func workshopPhases() []types.Phase {
	return []types.Phase{{
		ID: "phase-1", Name: "Discovery", Order: 1, IsRequired: true,
		Questions: []types.Question{
			{ID: "phase-1-workshop", Label: "Workshop", Type: types.QuestionBinary, PhaseID: "phase-1"},
			{ID: "phase-1-analytics-add-on", Label: "Analytics add-on", Type: types.QuestionBinary, PhaseID: "phase-1", IsAddOn: true},
		},
	}}
}

func TestBuild_WorkshopScenario(t *testing.T) {
	builder := NewBuilder(calc.New(pricing.NewConfigStore(workshopConfig())))

	answers := types.AnswerSet{
		"phase-1-workshop": {QuestionID: "phase-1-workshop", Value: types.BoolValue(true)},
	}
	q := builder.Build(types.ProjectType("new-website"), answers, workshopPhases(), []string{"phase-1"})

	if q.ID == "" {
		t.Error("quote has no id")
	}
	if q.Tier != types.TierEssential {
		t.Errorf("tier = %s, want essential", q.Tier)
	}
	if len(q.Phases) != 1 {
		t.Fatalf("phases = %d, want 1", len(q.Phases))
	}
	if !q.Phases[0].Subtotal.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("subtotal = %s, want 1000", q.Phases[0].Subtotal)
	}
	if !q.Total.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("total = %s, want 1000", q.Total)
	}
	if !q.OngoingCosts.TotalMonthly.Equal(decimal.NewFromInt(400)) {
		t.Errorf("ongoing monthly = %s, want 400", q.OngoingCosts.TotalMonthly)
	}
	if q.Timeline != "4-6 weeks" {
		t.Errorf("timeline = %q, want 4-6 weeks", q.Timeline)
	}
	if q.CreatedAt.IsZero() {
		t.Error("quote has no creation time")
	}
}

func TestBuild_AddOnsLiftedOutOfPhases(t *testing.T) {
	builder := NewBuilder(calc.New(pricing.NewConfigStore(workshopConfig())))

	answers := types.AnswerSet{
		"phase-1-workshop":         {QuestionID: "phase-1-workshop", Value: types.BoolValue(true)},
		"phase-1-analytics-add-on": {QuestionID: "phase-1-analytics-add-on", Value: types.BoolValue(true)},
	}
	q := builder.Build(types.ProjectType("new-website"), answers, workshopPhases(), []string{"phase-1"})

	if len(q.AddOns) != 1 {
		t.Fatalf("add-ons = %d, want 1", len(q.AddOns))
	}
	if q.AddOns[0].QuestionID != "phase-1-analytics-add-on" {
		t.Errorf("add-on = %q, want phase-1-analytics-add-on", q.AddOns[0].QuestionID)
	}
	for _, item := range q.Phases[0].Items {
		if item.IsAddOn {
			t.Errorf("add-on %q left inside its phase", item.QuestionID)
		}
	}

	// Phase subtotal excludes the add-on, the quote total includes it.
	if !q.Phases[0].Subtotal.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("phase subtotal = %s, want 1000", q.Phases[0].Subtotal)
	}
	if !q.Total.Equal(decimal.NewFromInt(1150)) {
		t.Errorf("total = %s, want 1150", q.Total)
	}
}

func TestBuild_FreshIDPerQuote(t *testing.T) {
	builder := NewBuilder(calc.New(pricing.NewConfigStore(workshopConfig())))
	answers := types.AnswerSet{
		"phase-1-workshop": {QuestionID: "phase-1-workshop", Value: types.BoolValue(true)},
	}

	a := builder.Build("new-website", answers, workshopPhases(), []string{"phase-1"})
	b := builder.Build("new-website", answers, workshopPhases(), []string{"phase-1"})
	if a.ID == b.ID {
		t.Errorf("consecutive quotes share id %q", a.ID)
	}
}

func TestOngoingCosts(t *testing.T) {
	cases := []struct {
		tier        types.Tier
		hosting     string
		maintenance string
		staging     bool
		monthly     int64
		annual      int64
	}{
		{types.TierEssential, "Bronze", "Essential", false, 400, 4800},
		{types.TierRefresh, "Silver", "Advanced", true, 605, 7260},
		{types.TierTransformation, "Gold", "Premium", true, 780, 9360},
	}

	for _, tc := range cases {
		t.Run(string(tc.tier), func(t *testing.T) {
			got := OngoingCosts(tc.tier)
			if got.Hosting.Package != tc.hosting {
				t.Errorf("hosting package = %q, want %q", got.Hosting.Package, tc.hosting)
			}
			if got.Maintenance.Package != tc.maintenance {
				t.Errorf("maintenance package = %q, want %q", got.Maintenance.Package, tc.maintenance)
			}
			if (got.Staging != nil) != tc.staging {
				t.Errorf("staging present = %v, want %v", got.Staging != nil, tc.staging)
			}
			if !got.TotalMonthly.Equal(decimal.NewFromInt(tc.monthly)) {
				t.Errorf("monthly = %s, want %d", got.TotalMonthly, tc.monthly)
			}
			if !got.TotalAnnual.Equal(decimal.NewFromInt(tc.annual)) {
				t.Errorf("annual = %s, want %d", got.TotalAnnual, tc.annual)
			}
		})
	}
}

func TestTimeline(t *testing.T) {
	cases := map[types.Tier]string{
		types.TierEssential:      "4-6 weeks",
		types.TierRefresh:        "8-10 weeks",
		types.TierTransformation: "14-18 weeks",
	}
	for tier, want := range cases {
		if got := Timeline(tier); got != want {
			t.Errorf("Timeline(%s) = %q, want %q", tier, got, want)
		}
	}
}

package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"quoteforge/core/types"
)

func sampleQuote() *types.Quote {
	return &types.Quote{
		ID:          "3f1c9d2e-0000-0000-0000-000000000000",
		ProjectType: "new-website",
		Tier:        types.TierEssential,
		Phases: []types.PhasePricing{{
			PhaseID:   "phase-1",
			PhaseName: "Discovery",
			Items: []types.LineItem{{
				QuestionID: "phase-1-workshop",
				Label:      "Workshop",
				Quantity:   1,
				UnitPrice:  decimal.NewFromInt(1000),
				Total:      decimal.NewFromInt(1000),
				PhaseID:    "phase-1",
			}},
			Subtotal: decimal.NewFromInt(1000),
		}},
		OngoingCosts: types.OngoingCosts{
			Hosting:      types.CostSchedule{Package: "Bronze", Monthly: decimal.NewFromInt(120), Annual: decimal.NewFromInt(1440)},
			Maintenance:  types.CostSchedule{Package: "Essential", Monthly: decimal.NewFromInt(280), Annual: decimal.NewFromInt(3360)},
			TotalMonthly: decimal.NewFromInt(400),
			TotalAnnual:  decimal.NewFromInt(4800),
		},
		Total:     decimal.NewFromInt(1000),
		Timeline:  "4-6 weeks",
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNew(t *testing.T) {
	for format, want := range map[Format]Format{"": FormatText, FormatText: FormatText, FormatJSON: FormatJSON} {
		f, err := New(format)
		if err != nil {
			t.Fatalf("New(%q) error: %v", format, err)
		}
		if f.Format() != want {
			t.Errorf("New(%q).Format() = %s, want %s", format, f.Format(), want)
		}
	}
	if _, err := New("yaml"); err == nil {
		t.Error("unknown format accepted")
	}
}

func TestTextFormatter_Render(t *testing.T) {
	var buf bytes.Buffer
	if err := (&TextFormatter{}).Render(&buf, sampleQuote()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"Discovery", "Workshop", "1000.00", "4-6 weeks"} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
}

func TestJSONFormatter_Render(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Render(&buf, sampleQuote()); err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	var decoded types.Quote
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.ID != "3f1c9d2e-0000-0000-0000-000000000000" {
		t.Errorf("id = %q after round trip", decoded.ID)
	}
	if !decoded.Total.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("total = %s after round trip, want 1000", decoded.Total)
	}
	if decoded.Timeline != "4-6 weeks" {
		t.Errorf("timeline = %q after round trip", decoded.Timeline)
	}
}

package tabular

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"quoteforge/core/types"
)

func row(cells map[string]string) Row {
	r := Row{}
	for k, v := range cells {
		r.Set(k, v)
	}
	return r
}

func TestParseRows_DropsRowsMissingPhaseOrItem(t *testing.T) {
	rows := []Row{
		row(map[string]string{"Phase": "Discovery", "Item": "Workshop", "Unit Cost": "1000"}),
		row(map[string]string{"Phase": "", "Item": "Orphan"}),
		row(map[string]string{"Phase": "Discovery", "Item": ""}),
		row(map[string]string{}),
	}

	cfg := ParseRows(rows)
	if len(cfg.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(cfg.Items))
	}
	if cfg.Items[0].Item != "Workshop" {
		t.Errorf("expected Workshop, got %s", cfg.Items[0].Item)
	}
}

func TestParseRows_StripsCurrencyFormatting(t *testing.T) {
	rows := []Row{
		row(map[string]string{"Phase": "Build", "Item": "CMS", "Unit Cost (£)": "£1,200"}),
	}

	cfg := ParseRows(rows)
	if !cfg.Items[0].UnitCost.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("expected 1200, got %s", cfg.Items[0].UnitCost)
	}
}

func TestParseRows_CarriesItemMetadata(t *testing.T) {
	rows := []Row{
		row(map[string]string{
			"Phase": "Build", "Item": "Components", "Unit Cost": "300",
			"Essential": "3", "Refresh": "6", "Transformation": "12",
			"Question Type": "number", "Min": "1", "Max": "20",
			"Required": "yes", "Validation": "integer",
			"Shared Variable": "components", "Add On": "true",
			"Description": "Number of reusable components",
		}),
	}

	item := ParseRows(rows).Items[0]
	if item.QuestionType != types.QuestionNumber {
		t.Errorf("expected number type, got %q", item.QuestionType)
	}
	if item.Min == nil || *item.Min != 1 || item.Max == nil || *item.Max != 20 {
		t.Errorf("unexpected min/max: %v/%v", item.Min, item.Max)
	}
	if !item.Required || !item.IsAddOn {
		t.Error("expected required and add-on flags set")
	}
	if item.SharedVariable != "components" || item.Validation != "integer" {
		t.Errorf("unexpected metadata: %+v", item)
	}
	if item.Essential != 3 || item.Refresh != 6 || item.Transformation != 12 {
		t.Errorf("unexpected tier magnitudes: %+v", item)
	}
	if item.Description != "Number of reusable components" {
		t.Errorf("unexpected description: %q", item.Description)
	}
}

func TestParseRows_UnknownQuestionTypeIgnored(t *testing.T) {
	rows := []Row{
		row(map[string]string{"Phase": "Build", "Item": "CMS", "Question Type": "checkbox"}),
	}
	if got := ParseRows(rows).Items[0].QuestionType; got != "" {
		t.Errorf("expected unset type, got %q", got)
	}
}

func TestParseRanges_Grammar(t *testing.T) {
	ranges := ParseRanges("4-6:600, 1-3:500, 7+:700")
	if len(ranges) != 3 {
		t.Fatalf("expected 3 ranges, got %d", len(ranges))
	}

	// Sorted ascending by min regardless of cell order.
	if ranges[0].Min != 1 || ranges[1].Min != 4 || ranges[2].Min != 7 {
		t.Errorf("ranges not sorted: %+v", ranges)
	}
	if ranges[0].Max == nil || *ranges[0].Max != 3 {
		t.Errorf("expected bounded first range, got %+v", ranges[0])
	}
	if ranges[2].Max != nil {
		t.Errorf("expected unbounded top range, got %+v", ranges[2])
	}
	if !ranges[1].Price.Equal(decimal.NewFromInt(600)) {
		t.Errorf("expected price 600, got %s", ranges[1].Price)
	}
}

func TestParseRanges_ExactSingleQuantity(t *testing.T) {
	ranges := ParseRanges("1:500")
	if len(ranges) != 1 {
		t.Fatalf("expected 1 range, got %d", len(ranges))
	}
	if ranges[0].Min != 1 || ranges[0].Max == nil || *ranges[0].Max != 1 {
		t.Errorf("expected exact 1-1 bracket, got %+v", ranges[0])
	}
}

func TestParseRanges_SkipsMalformedTokens(t *testing.T) {
	ranges := ParseRanges("1-3:500, not-a-range, 4+:600")
	if len(ranges) != 2 {
		t.Fatalf("expected malformed token skipped, got %d ranges", len(ranges))
	}
}

func TestParseRanges_Empty(t *testing.T) {
	if got := ParseRanges("  "); got != nil {
		t.Errorf("expected nil for blank cell, got %+v", got)
	}
}

func TestParseOptions_PlainLabels(t *testing.T) {
	labels, prices := ParseOptions("Design, Build , Launch")
	if len(labels) != 3 || prices != nil {
		t.Fatalf("expected 3 unpriced labels, got %v / %v", labels, prices)
	}
	if labels[1] != "Build" {
		t.Errorf("expected trimmed label, got %q", labels[1])
	}
}

func TestParseOptions_WithPrices(t *testing.T) {
	labels, prices := ParseOptions("Design:£500, Build: 900, Launch")
	if len(labels) != 3 || len(prices) != 3 {
		t.Fatalf("expected 3 priced options, got %v / %v", labels, prices)
	}
	if prices[0].Price == nil || !prices[0].Price.Equal(decimal.NewFromInt(500)) {
		t.Errorf("expected Design priced 500, got %+v", prices[0])
	}
	if prices[1].Price == nil || !prices[1].Price.Equal(decimal.NewFromInt(900)) {
		t.Errorf("expected Build priced 900, got %+v", prices[1])
	}
	if prices[2].Price != nil {
		t.Errorf("expected Launch unpriced, got %+v", prices[2])
	}
}

func TestParseBoolCell(t *testing.T) {
	for _, cell := range []string{"true", "TRUE", "1", "yes", "Y"} {
		if !ParseBoolCell(cell) {
			t.Errorf("expected %q to be true", cell)
		}
	}
	for _, cell := range []string{"", "false", "0", "no", "maybe"} {
		if ParseBoolCell(cell) {
			t.Errorf("expected %q to be false", cell)
		}
	}
}

func TestReadCSV(t *testing.T) {
	src := strings.Join([]string{
		`Phase,Item,Unit Cost (£),Essential,Refresh,Transformation,Ranges`,
		`Discovery,Workshop,"£1,000",1,1,1,`,
		`Build,Page designs,£250,5,10,20,"1-3:500, 4-6:600, 7+:700"`,
	}, "\n")

	rows, err := ReadCSV(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	cfg := ParseRows(rows)
	if len(cfg.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(cfg.Items))
	}
	if !cfg.Items[0].UnitCost.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("expected 1000, got %s", cfg.Items[0].UnitCost)
	}
	if len(cfg.Items[1].Ranges) != 3 {
		t.Errorf("expected 3 ranges, got %d", len(cfg.Items[1].Ranges))
	}
}

func TestReadCSV_EmptyStream(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected error for missing header row")
	}
}

func TestDecodeHCL_MatchesCSVPipeline(t *testing.T) {
	src := []byte(`
item "Page designs" {
  phase     = "Build"
  unit_cost = 250
  essential = 5
  refresh   = 10
  ranges    = "1-3:500, 4-6:600, 7+:700"
  add_on    = true
}
`)

	rows, err := DecodeHCL(src, "pricing.hcl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := ParseRows(rows)
	if len(cfg.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(cfg.Items))
	}
	item := cfg.Items[0]
	if item.Phase != "Build" || item.Item != "Page designs" {
		t.Errorf("unexpected identity: %+v", item)
	}
	if !item.UnitCost.Equal(decimal.NewFromInt(250)) || item.Essential != 5 {
		t.Errorf("unexpected numbers: %+v", item)
	}
	if len(item.Ranges) != 3 || !item.IsAddOn {
		t.Errorf("ranges or add-on flag lost: %+v", item)
	}
}

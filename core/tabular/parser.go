// Package tabular - Row-to-config parser
package tabular

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"quoteforge/core/types"
	"quoteforge/internal/logging"
)

var (
	// "7+:700" - unbounded upper bracket. Checked before the standard
	// form so "7+" is not read as a bare minimum.
	unboundedRangeRe = regexp.MustCompile(`^(\d+)\+\s*:\s*(\d+(?:\.\d+)?)$`)

	// "1-3:500" or "1:500" (exact single quantity)
	boundedRangeRe = regexp.MustCompile(`^(\d+)(?:-(\d+))?\s*:\s*(\d+(?:\.\d+)?)$`)

	// "Design:£500" / "Design: 500" - option label with price
	optionPriceRe = regexp.MustCompile(`^(.+?):\s*[£$€]?(\d+(?:\.\d+)?)$`)

	// any option in a cell carrying a price marker
	hasOptionPriceRe = regexp.MustCompile(`:\s*[£$€]?\d+(?:\.\d+)?`)

	moneyStripRe = regexp.MustCompile(`[£$€,\s]`)
)

// ParseRows normalizes raw table rows into a pricing configuration.
// Rows missing Phase or Item (blank spreadsheet separators) are
// dropped. Malformed cells are skipped with a warning; cell content
// never fails the parse.
func ParseRows(rows []Row) *types.PricingConfig {
	items := make([]types.PricingItem, 0, len(rows))

	for _, row := range rows {
		phase := row.Get("Phase")
		name := row.Get("Item")
		if phase == "" || name == "" {
			continue
		}

		item := types.PricingItem{
			Phase:          phase,
			Item:           name,
			UnitCost:       parseMoney(row.Get("Unit Cost")),
			Ranges:         ParseRanges(row.Get("Ranges")),
			Essential:      parseFloat(row.Get("Essential")),
			Refresh:        parseFloat(row.Get("Refresh")),
			Transformation: parseFloat(row.Get("Transformation")),
			Description:    row.Get("Description", "Description Text", "Info Text"),
			QuestionType:   parseQuestionType(row.Get("Question Type", "Type")),
			Min:            parseOptionalFloat(row.Get("Min")),
			Max:            parseOptionalFloat(row.Get("Max")),
			Required:       ParseBoolCell(row.Get("Required", "Is Required")),
			Validation:     row.Get("Validation"),
			SharedVariable: row.Get("Shared Variable", "SharedVariable"),
			IsAddOn:        ParseBoolCell(row.Get("Add On", "AddOn", "Is Add On")),
		}

		item.Options, item.OptionPrices = ParseOptions(row.Get("Options", "Option Labels"))

		items = append(items, item)
	}

	return &types.PricingConfig{
		Items:       items,
		LastUpdated: time.Now().UTC(),
	}
}

// ParseRanges parses a range-pricing cell like "1-3:500, 4-6:600, 7+:700".
// Tokens are parsed independently; unparseable tokens are skipped with a
// warning. The result is sorted ascending by bracket minimum.
func ParseRanges(cell string) []types.PriceRange {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}

	var ranges []types.PriceRange
	for _, part := range strings.Split(cell, ",") {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}

		if m := unboundedRangeRe.FindStringSubmatch(token); m != nil {
			min, _ := strconv.ParseFloat(m[1], 64)
			price, _ := decimal.NewFromString(m[2])
			ranges = append(ranges, types.PriceRange{Min: min, Price: price})
			continue
		}

		if m := boundedRangeRe.FindStringSubmatch(token); m != nil {
			min, _ := strconv.ParseFloat(m[1], 64)
			price, _ := decimal.NewFromString(m[3])
			max := min // "1:500" means exactly 1
			if m[2] != "" {
				max, _ = strconv.ParseFloat(m[2], 64)
			}
			ranges = append(ranges, types.PriceRange{Min: min, Max: &max, Price: price})
			continue
		}

		logging.Warn("skipping unparseable range token", zap.String("token", token))
	}

	sort.SliceStable(ranges, func(i, j int) bool {
		return ranges[i].Min < ranges[j].Min
	})

	return ranges
}

// ParseOptions splits an options cell into labels, extracting per-option
// prices when any option carries one ("Design:£500, Build:£900").
func ParseOptions(cell string) ([]string, []types.OptionPrice) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil, nil
	}

	var parts []string
	for _, p := range strings.Split(cell, ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return nil, nil
	}

	priced := false
	for _, p := range parts {
		if hasOptionPriceRe.MatchString(p) {
			priced = true
			break
		}
	}
	if !priced {
		return parts, nil
	}

	labels := make([]string, 0, len(parts))
	prices := make([]types.OptionPrice, 0, len(parts))
	for _, p := range parts {
		if m := optionPriceRe.FindStringSubmatch(p); m != nil {
			price, err := decimal.NewFromString(m[2])
			if err == nil {
				label := strings.TrimSpace(m[1])
				labels = append(labels, label)
				prices = append(prices, types.OptionPrice{Label: label, Price: &price})
				continue
			}
		}
		labels = append(labels, p)
		prices = append(prices, types.OptionPrice{Label: p})
	}

	return labels, prices
}

// ParseBoolCell reads a boolean-like cell. Case-insensitive true, 1,
// yes and y are true; anything else is false.
func ParseBoolCell(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}

func parseQuestionType(cell string) types.QuestionType {
	t := types.QuestionType(strings.ToLower(strings.TrimSpace(cell)))
	if t.Valid() {
		return t
	}
	if t != "" {
		logging.Warn("ignoring unknown question type", zap.String("type", string(t)))
	}
	return ""
}

// parseMoney strips currency symbols and thousands separators before
// numeric parsing, so "£1,200" reads as 1200.
func parseMoney(cell string) decimal.Decimal {
	cleaned := moneyStripRe.ReplaceAllString(cell, "")
	if cleaned == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		logging.Warn("skipping unparseable unit cost", zap.String("cell", cell))
		return decimal.Zero
	}
	return d
}

func parseFloat(cell string) float64 {
	if cell == "" {
		return 0
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		logging.Warn("skipping unparseable numeric cell", zap.String("cell", cell))
		return 0
	}
	return n
}

func parseOptionalFloat(cell string) *float64 {
	if strings.TrimSpace(cell) == "" {
		return nil
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil {
		logging.Warn("skipping unparseable numeric cell", zap.String("cell", cell))
		return nil
	}
	return &n
}

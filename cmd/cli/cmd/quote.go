// Package cmd - quote command
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"quoteforge/core/answers"
	"quoteforge/core/calc"
	"quoteforge/core/output"
	"quoteforge/core/pricing"
	"quoteforge/core/quote"
	"quoteforge/core/schema"
	"quoteforge/core/types"
	"quoteforge/internal/config"
	"quoteforge/internal/logging"
)

var (
	tablePath    string
	answersPath  string
	phaseFilter  string
	projectType  string
	outputFormat string
	populateTier string
)

// quoteCmd builds and renders a quote end to end
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Build a priced quote from a pricing table and answers",
	Long: `Parse a pricing table, derive the question schema, load an answer
snapshot, resolve shared variables and print the assembled quote.

Examples:
  quoteforge quote --table pricing.csv --answers answers.json
  quoteforge quote --table pricing.csv --answers answers.json --phases phase-1,phase-2
  quoteforge quote --table pricing.csv --populate-tier refresh --format json`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&tablePath, "table", "t", "", "pricing table file (CSV or HCL)")
	quoteCmd.Flags().StringVarP(&answersPath, "answers", "a", "", "answers JSON file")
	quoteCmd.Flags().StringVar(&phaseFilter, "phases", "", "comma-separated phase ids (default: all)")
	quoteCmd.Flags().StringVar(&projectType, "project-type", string(types.ProjectWebDev), "project type (web-dev, brand, campaign)")
	quoteCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (text, json)")
	quoteCmd.Flags().StringVar(&populateTier, "populate-tier", "", "seed answers from a tier's defaults (essential, refresh, transformation)")
}

func runQuote(cmd *cobra.Command, args []string) error {
	path := tablePath
	if path == "" {
		path = config.Get().Source.Path
	}
	if path == "" {
		return fmt.Errorf("no pricing table given (--table or source.path in config)")
	}

	cfg, err := loadTable(path)
	if err != nil {
		return err
	}

	store := pricing.NewConfigStore(cfg)
	phases := schema.BuildPhases(cfg)

	ansStore := answers.NewStore(nil)
	ansStore.SetPhases(phases)

	if populateTier != "" {
		if !types.Tier(populateTier).Valid() {
			return fmt.Errorf("unknown tier %q (valid: essential, refresh, transformation)", populateTier)
		}
		seeded := answers.PopulateFromTier(cfg, phases, types.Tier(populateTier))
		for id, ans := range seeded {
			ansStore.Set(id, ans.Value)
		}
		logging.Sugar.Debugw("seeded answers from tier", "tier", populateTier, "count", len(seeded))
	}

	if answersPath != "" {
		data, err := os.ReadFile(answersPath)
		if err != nil {
			return fmt.Errorf("failed to read answers: %w", err)
		}
		loaded, err := answers.ParseJSON(data)
		if err != nil {
			return err
		}
		for id, ans := range loaded {
			ansStore.Set(id, ans.Value)
		}
	}

	if names := ansStore.Variables().Names(); len(names) > 0 {
		logging.Sugar.Debugw("shared variables resolved", "names", names)
	}

	selected := selectedPhases(phases)

	builder := quote.NewBuilder(calc.New(store))
	q := builder.Build(types.ProjectType(projectType), ansStore.Effective(), phases, selected)

	format := output.Format(outputFormat)
	if format == "" {
		format = output.Format(config.Get().Output.DefaultFormat)
	}
	formatter, err := output.New(format)
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, &q)
}

func selectedPhases(phases []types.Phase) []string {
	if phaseFilter == "" {
		ids := make([]string, 0, len(phases))
		for _, p := range phases {
			ids = append(ids, p.ID)
		}
		return ids
	}

	var ids []string
	for _, id := range strings.Split(phaseFilter, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

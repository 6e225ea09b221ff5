// Package cmd - schema command
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"quoteforge/core/schema"
	"quoteforge/core/tabular"
	"quoteforge/core/types"
	"quoteforge/internal/config"
)

// schemaCmd derives and prints the question schema for a pricing table
var schemaCmd = &cobra.Command{
	Use:   "schema [table]",
	Short: "Print the question schema derived from a pricing table",
	Long: `Parse a pricing table (CSV export or HCL document) and print the
derived phases and questions: type, default, options and
shared-variable bindings.

Examples:
  quoteforge schema pricing.csv
  quoteforge schema pricing.hcl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSchema,
}

func runSchema(cmd *cobra.Command, args []string) error {
	path := config.Get().Source.Path
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("no pricing table given (argument or source.path in config)")
	}

	cfg, err := loadTable(path)
	if err != nil {
		return err
	}

	phases := schema.BuildPhases(cfg)
	for _, phase := range phases {
		required := ""
		if phase.IsRequired {
			required = " (required)"
		}
		fmt.Printf("%s. %s%s\n", phaseTag(phase), phase.Name, required)
		for _, q := range phase.Questions {
			fmt.Printf("   %-42s %-7s default=%s%s\n",
				q.ID, q.Type, q.Default.String(), bindingTag(q))
			for _, opt := range q.Options {
				line := fmt.Sprintf("      - %s (%s)", opt.Label, opt.Value)
				if opt.Tier != "" {
					line += " tier=" + string(opt.Tier)
				}
				fmt.Println(line)
			}
		}
	}
	return nil
}

func phaseTag(p types.Phase) string {
	return fmt.Sprintf("%d", p.Order)
}

func bindingTag(q types.Question) string {
	switch {
	case q.SharedVar.Defines():
		return " defines=" + q.SharedVar.Name
	case q.SharedVar.References():
		return " references=" + q.SharedVar.Name
	}
	return ""
}

// loadTable reads and parses a pricing table, picking the row source
// from the configured format or the file extension.
func loadTable(path string) (*types.PricingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pricing table: %w", err)
	}

	format := config.Get().Source.Format
	if format == "" {
		if strings.EqualFold(filepath.Ext(path), ".hcl") {
			format = config.FormatHCL
		} else {
			format = config.FormatCSV
		}
	}

	var rows []tabular.Row
	switch format {
	case config.FormatHCL:
		rows, err = tabular.DecodeHCL(data, filepath.Base(path))
	default:
		rows, err = tabular.ReadCSV(strings.NewReader(string(data)))
	}
	if err != nil {
		return nil, err
	}

	cfg := tabular.ParseRows(rows)
	cfg.Source = path
	return cfg, nil
}

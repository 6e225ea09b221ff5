// Package cmd provides the CLI commands for quoteforge.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quoteforge/internal/config"
	"quoteforge/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "quoteforge",
	Short: "Build priced project quotes from a pricing table",
	Long: `quoteforge turns a pricing configuration table into a dynamic
questionnaire and prices answered questions into a project quote with
phase subtotals, add-ons and a recurring-cost schedule.

Examples:
  quoteforge schema pricing.csv
  quoteforge quote --table pricing.csv --answers answers.json
  quoteforge quote --table pricing.hcl --answers answers.json --format json`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.quoteforge.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("quoteforge version 0.1.0")
	},
}

// configCmd prints the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()
		fmt.Printf("version: %s\n", cfg.Version)
		fmt.Printf("source: %s (format %q, refresh %ds)\n",
			cfg.Source.Path, cfg.Source.Format, cfg.Source.RefreshSeconds)
		fmt.Printf("output: %s (currency %s)\n",
			cfg.Output.DefaultFormat, cfg.Output.CurrencySymbol)
		return nil
	},
}

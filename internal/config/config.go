// Package config provides application configuration management.
package config

import (
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"quoteforge/internal/logging"
)

// SourceFormat identifies the pricing-table source format.
type SourceFormat string

const (
	// FormatCSV is a spreadsheet CSV export
	FormatCSV SourceFormat = "csv"

	// FormatHCL is an HCL pricing document
	FormatHCL SourceFormat = "hcl"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Source contains pricing-table source settings
	Source SourceConfig `json:"source"`

	// Output contains output settings
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// SourceConfig contains pricing-table source settings
type SourceConfig struct {
	// Path is the pricing table file (CSV export or HCL document)
	Path string `json:"path"`

	// Format overrides format detection from the file extension
	Format SourceFormat `json:"format,omitempty"`

	// RefreshSeconds is how often callers should re-fetch the table;
	// the engine itself never initiates a fetch
	RefreshSeconds int `json:"refresh_seconds"`
}

// OutputConfig contains output settings
type OutputConfig struct {
	// DefaultFormat is the default quote rendering (text, json)
	DefaultFormat string `json:"default_format"`

	// CurrencySymbol prefixes money values in text output
	CurrencySymbol string `json:"currency_symbol"`

	// ShowOngoing includes the recurring-cost schedule in text output
	ShowOngoing bool `json:"show_ongoing"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Source: SourceConfig{
			Format:         "",
			RefreshSeconds: 300,
		},
		Output: OutputConfig{
			DefaultFormat:  "text",
			CurrencySymbol: "£",
			ShowOngoing:    true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}

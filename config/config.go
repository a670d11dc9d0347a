/*
Package config loads runtime configuration for the pension calculator.

PURPOSE:
  Converts a JSON config file into the settings the CLI wires together:
  workbook layout overrides, run options and the log level. Runs with no
  config file get working defaults, so the file only ever names what differs
  from the stock workbook template.

JSON SCHEMA:
  {
    "layout": {
      "contracts_sheet": "Contracts",
      "birth_date_column": "Date of Birth",
      "date_layout": "2006-01-02"
    },
    "strict": false,
    "workers": 4,
    "log_level": "debug"
  }

  Every layout field is optional; empty fields keep the defaults from
  workbook.DefaultLayout.

LOG LEVEL:
  The LOG_LEVEL environment variable beats the config file, so a single run
  can be made verbose without editing anything.

USAGE:
  cfg := config.Default()
  if *configPath != "" {
      cfg, err = config.Load(*configPath)
  }
  layout := cfg.BuildLayout()

SEE ALSO:
  - workbook/layout.go: the Layout these overrides apply to
  - cmd/pensioncalc/main.go: flag handling and wiring
*/
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/warp/pension-engine/workbook"
)

// LayoutJSON is the JSON representation of workbook layout overrides.
type LayoutJSON struct {
	ContractsSheet  string `json:"contracts_sheet,omitempty"`
	AmountsSheet    string `json:"amounts_sheet,omitempty"`
	ParametersSheet string `json:"parameters_sheet,omitempty"`

	ContractColumn  string `json:"contract_column,omitempty"`
	SexColumn       string `json:"sex_column,omitempty"`
	BirthDateColumn string `json:"birth_date_column,omitempty"`
	StartAgeColumn  string `json:"start_age_column,omitempty"`
	AmountColumn    string `json:"amount_column,omitempty"`

	ReportDateKey   string `json:"report_date_key,omitempty"`
	IndexingRateKey string `json:"indexing_rate_key,omitempty"`
	MaxAgeKey       string `json:"max_age_key,omitempty"`

	ResultSheet        string `json:"result_sheet,omitempty"`
	ResultDateColumn   string `json:"result_date_column,omitempty"`
	ResultAmountColumn string `json:"result_amount_column,omitempty"`

	DateLayout string `json:"date_layout,omitempty"`
}

// Config is the config file schema.
type Config struct {
	Layout   LayoutJSON `json:"layout,omitempty"`
	Strict   bool       `json:"strict,omitempty"`
	Workers  int        `json:"workers,omitempty"`
	LogLevel string     `json:"log_level,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{LogLevel: "info"}
}

// Load reads a JSON config file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// BuildLayout applies the layout overrides to the default workbook layout.
func (c Config) BuildLayout() workbook.Layout {
	layout := workbook.DefaultLayout()

	override(&layout.ContractsSheet, c.Layout.ContractsSheet)
	override(&layout.AmountsSheet, c.Layout.AmountsSheet)
	override(&layout.ParametersSheet, c.Layout.ParametersSheet)

	override(&layout.ContractColumn, c.Layout.ContractColumn)
	override(&layout.SexColumn, c.Layout.SexColumn)
	override(&layout.BirthDateColumn, c.Layout.BirthDateColumn)
	override(&layout.StartAgeColumn, c.Layout.StartAgeColumn)
	override(&layout.AmountColumn, c.Layout.AmountColumn)

	override(&layout.ReportDateKey, c.Layout.ReportDateKey)
	override(&layout.IndexingRateKey, c.Layout.IndexingRateKey)
	override(&layout.MaxAgeKey, c.Layout.MaxAgeKey)

	override(&layout.ResultSheet, c.Layout.ResultSheet)
	override(&layout.ResultDateColumn, c.Layout.ResultDateColumn)
	override(&layout.ResultAmountColumn, c.Layout.ResultAmountColumn)

	override(&layout.DateLayout, c.Layout.DateLayout)

	return layout
}

// ResolveLogLevel returns the LOG_LEVEL environment variable when set,
// otherwise the configured level.
func (c Config) ResolveLogLevel() string {
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		return env
	}
	return c.LogLevel
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}

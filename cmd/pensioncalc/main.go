/*
main.go - Pension schedule calculator entry point

PURPOSE:
  Runs the monthly payment batch: reads the contract workbook, builds every
  contract's payment schedule through the maximum age, and writes the merged
  ledger to a result workbook.

RUN SEQUENCE:
  1. Parse command-line flags
  2. Load config (optional JSON file) and configure logging
  3. Read contracts, amounts and parameters from the input workbook
  4. Calculate payment schedules
  5. Write the result workbook

COMMAND-LINE FLAGS:
  -input    Input workbook path (default: Data.xlsx)
  -output   Result workbook path (default: Result.xlsx)
  -config   Optional JSON config file (layout overrides, run options)
  -strict   Fail the run on the first invalid contract instead of skipping it
  -workers  Contracts scheduled in parallel (0 = serial)

EXAMPLES:
  # Stock workbook layout
  ./pensioncalc -input=Data.xlsx -output=Result.xlsx

  # Translated workbook headers, fail fast on bad rows
  ./pensioncalc -config=layout.json -strict

  # Large portfolio
  ./pensioncalc -input=portfolio.xlsx -workers=8

ENVIRONMENT:
  LOG_LEVEL overrides the configured log level for a single run.

SEE ALSO:
  - workbook/reader.go: input workbook schema
  - pension/calculator.go: scheduling semantics
  - config/config.go: config file schema
*/
package main

import (
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/warp/pension-engine/config"
	"github.com/warp/pension-engine/pension"
	"github.com/warp/pension-engine/workbook"
)

func main() {
	// Flags
	inputPath := flag.String("input", "Data.xlsx", "input workbook path")
	outputPath := flag.String("output", "Result.xlsx", "result workbook path")
	configPath := flag.String("config", "", "optional JSON config file")
	strict := flag.Bool("strict", false, "fail the run on the first invalid contract")
	workers := flag.Int("workers", 0, "contracts scheduled in parallel (0 = serial)")
	flag.Parse()

	logger := newLogger()

	// Config
	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Fatalf("Failed to load config: %v", err)
		}
	}

	// Flags beat the config file.
	if *strict {
		cfg.Strict = true
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}

	if level, err := logrus.ParseLevel(cfg.ResolveLogLevel()); err == nil {
		logger.SetLevel(level)
	}

	layout := cfg.BuildLayout()

	// Read
	portfolio, params, err := workbook.NewReader(layout, logger).Read(*inputPath)
	if err != nil {
		logger.Fatalf("Failed to read %s: %v", *inputPath, err)
	}

	// Calculate
	opts := pension.Options{
		Strict:  cfg.Strict,
		Workers: cfg.Workers,
		Logger:  logger,
	}
	ledger, report, err := pension.NewCalculator(portfolio, params, opts).Calculate()
	if err != nil {
		logger.Fatalf("Calculation failed: %v", err)
	}

	// Write
	if err := workbook.NewWriter(layout, logger).Write(*outputPath, ledger); err != nil {
		logger.Fatalf("Failed to write %s: %v", *outputPath, err)
	}

	logger.WithFields(logrus.Fields{
		"run_id":    report.RunID,
		"contracts": report.ContractsScheduled,
		"skipped":   len(report.Skipped),
		"payments":  report.PaymentsEmitted,
		"duration":  report.Duration().String(),
	}).Info("Run complete")
}

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)
	return logger
}

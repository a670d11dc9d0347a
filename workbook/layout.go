/*
Package workbook reads contract portfolios from Excel workbooks and writes
payment ledgers back out.

PURPOSE:
  The engine's inputs arrive as a spreadsheet maintained by actuaries, not as
  API calls. This package is the translation layer between that spreadsheet
  and the pension package's types. Nothing outside this package touches
  excelize.

INPUT WORKBOOK:
  Three sheets, located by name:
  - Contracts:               one row per contract (number, sex, birth date,
                             pension start age)
  - Pension Amounts:         one row per contract (number, opening amount)
  - Calculation Parameters:  key/value rows (report date, indexing rate,
                             maximum age)

  Contracts and amounts are joined on the contract number. A contract with no
  amount row stays in the portfolio with a nil amount; the calculator decides
  whether that skips the contract or fails the run.

OUTPUT WORKBOOK:
  A single Result sheet: contract number, payment date, payment amount, one
  row per scheduled payment, in ledger order.

LAYOUT:
  All sheet names, column headers and parameter keys live in Layout so that a
  workbook with different labels (translated headers, renamed sheets) only
  needs a config override, not a code change.

CELL FORMATS:
  Dates are accepted either as text in Layout.DateLayout or as raw Excel
  serial numbers. Ages accept integer or float renderings ("60", "60.0").

USAGE:
  reader := workbook.NewReader(workbook.DefaultLayout(), logger)
  portfolio, params, err := reader.Read("Data.xlsx")

  writer := workbook.NewWriter(workbook.DefaultLayout(), logger)
  err = writer.Write("Result.xlsx", ledger)

SEE ALSO:
  - pension/types.go: the Portfolio and Parameters this package produces
  - config/config.go: JSON overrides for Layout
*/
package workbook

// Layout names every sheet, column header and parameter key the reader and
// writer touch.
type Layout struct {
	// Input sheets.
	ContractsSheet  string
	AmountsSheet    string
	ParametersSheet string

	// Column headers on the contracts and amounts sheets. ContractColumn is
	// shared: it is the join key between the two sheets.
	ContractColumn  string
	SexColumn       string
	BirthDateColumn string
	StartAgeColumn  string
	AmountColumn    string

	// Keys in the first column of the parameters sheet.
	ReportDateKey   string
	IndexingRateKey string
	MaxAgeKey       string

	// Output sheet and its headers.
	ResultSheet        string
	ResultDateColumn   string
	ResultAmountColumn string

	// Go reference layout for date cells rendered as text.
	DateLayout string
}

// DefaultLayout returns the labels the stock workbook template uses.
func DefaultLayout() Layout {
	return Layout{
		ContractsSheet:  "Contracts",
		AmountsSheet:    "Pension Amounts",
		ParametersSheet: "Calculation Parameters",

		ContractColumn:  "Contract Number",
		SexColumn:       "Sex",
		BirthDateColumn: "Date of Birth",
		StartAgeColumn:  "Pension Start Age",
		AmountColumn:    "Pension Amount",

		ReportDateKey:   "Report Date",
		IndexingRateKey: "Pension Indexing Rate",
		MaxAgeKey:       "Maximum Age, Years",

		ResultSheet:        "Result",
		ResultDateColumn:   "Payment Date",
		ResultAmountColumn: "Payment Amount",

		DateLayout: "2006-01-02",
	}
}

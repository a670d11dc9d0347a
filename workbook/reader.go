package workbook

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/warp/pension-engine/pension"
	"github.com/warp/pension-engine/schedule"
)

// Reader loads a portfolio and run parameters from an input workbook.
type Reader struct {
	Layout Layout
	Logger *logrus.Logger
}

// NewReader creates a reader. A nil logger disables logging.
func NewReader(layout Layout, logger *logrus.Logger) *Reader {
	return &Reader{Layout: layout, Logger: logger}
}

// Read opens the workbook at path and returns the portfolio (contracts joined
// with their opening amounts) and the run parameters.
//
// Contracts without an amount row keep a nil InitialAmount. Amount rows whose
// contract number matches no contract are logged and dropped.
func (r *Reader) Read(path string) (pension.Portfolio, pension.Parameters, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, pension.Parameters{}, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	portfolio, err := r.readContracts(f)
	if err != nil {
		return nil, pension.Parameters{}, err
	}

	amounts, err := r.readAmounts(f)
	if err != nil {
		return nil, pension.Parameters{}, err
	}

	params, err := r.readParameters(f)
	if err != nil {
		return nil, pension.Parameters{}, err
	}

	for id, amount := range amounts {
		rec, ok := portfolio[id]
		if !ok {
			r.warnf("amount row for unknown contract %s dropped", id)
			continue
		}
		opening := amount
		rec.InitialAmount = &opening
		portfolio[id] = rec
	}

	r.infof("read %d contracts from %s", len(portfolio), path)
	return portfolio, params, nil
}

// =============================================================================
// SHEET READERS
// =============================================================================

func (r *Reader) readContracts(f *excelize.File) (pension.Portfolio, error) {
	sheet := r.Layout.ContractsSheet
	rows, err := r.sheetRows(f, sheet)
	if err != nil {
		return nil, err
	}

	header := headerIndex(rows)
	idCol, ok := header[r.Layout.ContractColumn]
	if !ok {
		return nil, &ColumnError{Sheet: sheet, Column: r.Layout.ContractColumn}
	}
	sexCol, ok := header[r.Layout.SexColumn]
	if !ok {
		return nil, &ColumnError{Sheet: sheet, Column: r.Layout.SexColumn}
	}
	birthCol, ok := header[r.Layout.BirthDateColumn]
	if !ok {
		return nil, &ColumnError{Sheet: sheet, Column: r.Layout.BirthDateColumn}
	}
	ageCol, ok := header[r.Layout.StartAgeColumn]
	if !ok {
		return nil, &ColumnError{Sheet: sheet, Column: r.Layout.StartAgeColumn}
	}

	portfolio := make(pension.Portfolio, len(rows))
	for i, row := range rows[1:] {
		rowNum := i + 2

		id := strings.TrimSpace(cell(row, idCol))
		if id == "" {
			continue
		}

		rec := pension.ContractRecord{Sex: strings.TrimSpace(cell(row, sexCol))}

		if raw := strings.TrimSpace(cell(row, birthCol)); raw != "" {
			birth, err := r.parseDate(raw)
			if err != nil {
				return nil, &CellError{Sheet: sheet, Row: rowNum, Field: r.Layout.BirthDateColumn, Err: err}
			}
			rec.BirthDate = birth
		}

		if raw := strings.TrimSpace(cell(row, ageCol)); raw != "" {
			age, err := parseInt(raw)
			if err != nil {
				return nil, &CellError{Sheet: sheet, Row: rowNum, Field: r.Layout.StartAgeColumn, Err: err}
			}
			rec.PensionStartAge = age
		}

		portfolio[schedule.ContractID(id)] = rec
	}

	return portfolio, nil
}

func (r *Reader) readAmounts(f *excelize.File) (map[schedule.ContractID]decimal.Decimal, error) {
	sheet := r.Layout.AmountsSheet
	rows, err := r.sheetRows(f, sheet)
	if err != nil {
		return nil, err
	}

	header := headerIndex(rows)
	idCol, ok := header[r.Layout.ContractColumn]
	if !ok {
		return nil, &ColumnError{Sheet: sheet, Column: r.Layout.ContractColumn}
	}
	amountCol, ok := header[r.Layout.AmountColumn]
	if !ok {
		return nil, &ColumnError{Sheet: sheet, Column: r.Layout.AmountColumn}
	}

	amounts := make(map[schedule.ContractID]decimal.Decimal, len(rows))
	for i, row := range rows[1:] {
		rowNum := i + 2

		id := strings.TrimSpace(cell(row, idCol))
		if id == "" {
			continue
		}

		raw := strings.TrimSpace(cell(row, amountCol))
		if raw == "" {
			// Join handles the absence; the contract surfaces in the
			// calculator's skip report instead of failing the read.
			continue
		}

		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, &CellError{Sheet: sheet, Row: rowNum, Field: r.Layout.AmountColumn, Err: err}
		}
		amounts[schedule.ContractID(id)] = amount
	}

	return amounts, nil
}

func (r *Reader) readParameters(f *excelize.File) (pension.Parameters, error) {
	sheet := r.Layout.ParametersSheet
	rows, err := r.sheetRows(f, sheet)
	if err != nil {
		return pension.Parameters{}, err
	}

	// Key in the first column, value in the second.
	values := make(map[string]string, len(rows))
	rowOf := make(map[string]int, len(rows))
	for i, row := range rows {
		key := strings.TrimSpace(cell(row, 0))
		if key == "" {
			continue
		}
		values[key] = strings.TrimSpace(cell(row, 1))
		rowOf[key] = i + 1
	}

	var params pension.Parameters

	raw, ok := values[r.Layout.ReportDateKey]
	if !ok || raw == "" {
		return pension.Parameters{}, &KeyError{Sheet: sheet, Key: r.Layout.ReportDateKey}
	}
	reportDate, err := r.parseDate(raw)
	if err != nil {
		return pension.Parameters{}, &CellError{Sheet: sheet, Row: rowOf[r.Layout.ReportDateKey], Field: r.Layout.ReportDateKey, Err: err}
	}
	params.ReportDate = reportDate

	raw, ok = values[r.Layout.IndexingRateKey]
	if !ok || raw == "" {
		return pension.Parameters{}, &KeyError{Sheet: sheet, Key: r.Layout.IndexingRateKey}
	}
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return pension.Parameters{}, &CellError{Sheet: sheet, Row: rowOf[r.Layout.IndexingRateKey], Field: r.Layout.IndexingRateKey, Err: err}
	}
	params.IndexingRate = rate

	raw, ok = values[r.Layout.MaxAgeKey]
	if !ok || raw == "" {
		return pension.Parameters{}, &KeyError{Sheet: sheet, Key: r.Layout.MaxAgeKey}
	}
	maxAge, err := parseInt(raw)
	if err != nil {
		return pension.Parameters{}, &CellError{Sheet: sheet, Row: rowOf[r.Layout.MaxAgeKey], Field: r.Layout.MaxAgeKey, Err: err}
	}
	params.MaxAgeYears = maxAge

	return params, nil
}

// =============================================================================
// CELL PARSING
// =============================================================================

func (r *Reader) sheetRows(f *excelize.File, sheet string) ([][]string, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return nil, &SheetError{Sheet: sheet}
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, &ColumnError{Sheet: sheet, Column: r.Layout.ContractColumn}
	}
	return rows, nil
}

// parseDate accepts a date rendered as text in the configured layout, or a
// raw Excel serial number for cells that carry no date style. Either way the
// result is pinned to midnight UTC.
func (r *Reader) parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(r.Layout.DateLayout, raw); err == nil {
		return t, nil
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return time.Time{}, err
		}
		return schedule.NewDate(t.Year(), t.Month(), t.Day()), nil
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a date", raw)
}

// parseInt accepts integer and float renderings of whole numbers ("60",
// "60.0"). Excel stores every number as a float, so both appear in practice.
func parseInt(raw string) (int, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != float64(int(f)) {
		return 0, fmt.Errorf("cannot parse %q as a whole number", raw)
	}
	return int(f), nil
}

// headerIndex maps trimmed header names on the first row to column positions.
// Duplicate headers keep the leftmost column.
func headerIndex(rows [][]string) map[string]int {
	if len(rows) == 0 {
		return nil
	}
	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}
	return index
}

// cell returns the value at col, or "" when the row is shorter than that.
// GetRows trims trailing empty cells, so short rows are routine.
func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

func (r *Reader) infof(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Infof(format, args...)
	}
}

func (r *Reader) warnf(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Warnf(format, args...)
	}
}

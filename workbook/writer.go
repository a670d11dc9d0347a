package workbook

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/warp/pension-engine/schedule"
)

// Writer saves a payment ledger as a result workbook.
type Writer struct {
	Layout Layout
	Logger *logrus.Logger
}

// NewWriter creates a writer. A nil logger disables logging.
func NewWriter(layout Layout, logger *logrus.Logger) *Writer {
	return &Writer{Layout: layout, Logger: logger}
}

// Write saves the ledger to a workbook at path, one payment per row, in the
// order given. Dates are written as text in the configured layout; amounts as
// numbers so downstream sheets can sum them.
func (w *Writer) Write(path string, ledger []schedule.PaymentEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := w.Layout.ResultSheet
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("failed to name result sheet: %w", err)
	}

	header := []interface{}{
		w.Layout.ContractColumn,
		w.Layout.ResultDateColumn,
		w.Layout.ResultAmountColumn,
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, entry := range ledger {
		anchor, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		row := []interface{}{
			string(entry.ContractID),
			entry.PaymentDate.Format(w.Layout.DateLayout),
			entry.Amount.InexactFloat64(),
		}
		if err := f.SetSheetRow(sheet, anchor, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}

	w.infof("wrote %d payments to %s", len(ledger), path)
	return nil
}

func (w *Writer) infof(format string, args ...interface{}) {
	if w.Logger != nil {
		w.Logger.Infof(format, args...)
	}
}

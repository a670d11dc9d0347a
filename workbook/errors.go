package workbook

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks. The structured types below wrap them
// so callers can branch on the class without parsing messages.
var (
	// ErrSheetMissing indicates a required sheet is absent from the workbook.
	ErrSheetMissing = errors.New("workbook sheet missing")

	// ErrColumnMissing indicates a required column header is absent from a sheet.
	ErrColumnMissing = errors.New("workbook column missing")

	// ErrKeyMissing indicates a required parameter key is absent from the
	// parameters sheet.
	ErrKeyMissing = errors.New("workbook parameter missing")
)

// SheetError reports a sheet the reader could not find.
type SheetError struct {
	Sheet string
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q: not found", e.Sheet)
}

func (e *SheetError) Unwrap() error { return ErrSheetMissing }

// ColumnError reports a header the reader could not find on a sheet.
type ColumnError struct {
	Sheet  string
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("sheet %q: column %q not found", e.Sheet, e.Column)
}

func (e *ColumnError) Unwrap() error { return ErrColumnMissing }

// KeyError reports a parameter key the reader could not find.
type KeyError struct {
	Sheet string
	Key   string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("sheet %q: parameter %q not found", e.Sheet, e.Key)
}

func (e *KeyError) Unwrap() error { return ErrKeyMissing }

// CellError reports a cell whose value could not be parsed. Field is the
// column header or parameter key the cell belongs to.
type CellError struct {
	Sheet string
	Row   int
	Field string
	Err   error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("sheet %q row %d: bad %s value: %v", e.Sheet, e.Row, e.Field, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }

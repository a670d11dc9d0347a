/*
Package pension is the contract-facing layer over the schedule engine.

PURPOSE:
  Defines the portfolio input shapes (ContractRecord, Parameters), resolves
  each contract's payout window from its demographics, and orchestrates the
  batch run: validation, per-contract generation, ledger assembly, and the
  run report.

KEY CONCEPTS:
  - ContractRecord: one pension contract as loaded from the portfolio
  - Parameters: the three run-wide actuarial parameters
  - window resolution: first/last payment date per contract (resolver.go)
  - Calculator: compute-once batch orchestration (calculator.go)

ERROR POLICY:
  Invalid parameters abort the run before any schedule is generated.
  A contract missing a required field is skipped and reported (or fails
  the run in strict mode); nothing is dropped silently.

SEE ALSO:
  - schedule/: the underlying date and generation machinery
  - workbook/: xlsx adapters producing and consuming these shapes
*/
package pension

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/pension-engine/schedule"
)

// =============================================================================
// CONTRACT RECORD - One pension contract as loaded
// =============================================================================

// ContractRecord carries the demographic and monetary inputs for one
// contract. Sex is informational only and plays no part in the calculation.
// InitialAmount is a pointer so an absent amount is distinguishable from a
// legitimate zero pension. Records are read-only once loaded.
type ContractRecord struct {
	Sex             string
	BirthDate       time.Time
	PensionStartAge int
	InitialAmount   *decimal.Decimal
}

// Validate reports the first required field the record lacks, if any.
func (r ContractRecord) Validate(id schedule.ContractID) error {
	switch {
	case r.BirthDate.IsZero():
		return &FieldError{ContractID: id, Field: "birth date"}
	case r.PensionStartAge <= 0:
		return &FieldError{ContractID: id, Field: "pension start age"}
	case r.InitialAmount == nil:
		return &FieldError{ContractID: id, Field: "initial pension amount"}
	}
	return nil
}

// Portfolio is the in-memory input shape: one record per contract id.
type Portfolio map[schedule.ContractID]ContractRecord

// =============================================================================
// PARAMETERS - Run-wide actuarial inputs
// =============================================================================

// Parameters holds the three values every run needs: the as-of date for the
// batch, the fractional January indexation rate, and the age through which
// payments continue. Supplied once per run, read-only afterwards.
type Parameters struct {
	ReportDate   time.Time
	IndexingRate decimal.Decimal
	MaxAgeYears  int
}

// Validate fails fast when a parameter is absent or unusable.
func (p Parameters) Validate() error {
	switch {
	case p.ReportDate.IsZero():
		return &ParameterError{Name: "report date"}
	case p.IndexingRate.IsNegative():
		return &ParameterError{Name: "indexing rate", Reason: "negative"}
	case p.MaxAgeYears <= 0:
		return &ParameterError{Name: "maximum age"}
	}
	return nil
}

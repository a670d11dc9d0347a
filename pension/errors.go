/*
errors.go - Error types for portfolio validation

PURPOSE:
  Two failure categories exist at this layer, with different blast radii:
  a bad run parameter aborts the whole batch before any schedule is
  generated; a bad contract record affects only that contract (skip and
  report, or abort in strict mode).

USAGE:
  if errors.Is(err, pension.ErrMissingParameter) { ... whole run is dead }

  var fieldErr *pension.FieldError
  if errors.As(err, &fieldErr) { ... fieldErr.ContractID identifies the row }

SEE ALSO:
  - calculator.go: applies the skip/strict policy
  - workbook/: wraps its own load errors; they never reach this taxonomy
*/
package pension

import (
	"errors"
	"fmt"

	"github.com/warp/pension-engine/schedule"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrMissingParameter is returned when a required run parameter is
	// absent or unusable. The run aborts before any schedule is generated.
	ErrMissingParameter = errors.New("missing run parameter")

	// ErrMissingField is returned when a contract record lacks a field the
	// schedule needs. The contract is skipped, or fails the run in strict mode.
	ErrMissingField = errors.New("missing contract field")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ParameterError identifies the offending run parameter.
type ParameterError struct {
	Name   string
	Reason string // empty means absent
}

func (e *ParameterError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("parameter %q: %s", e.Name, e.Reason)
	}
	return fmt.Sprintf("parameter %q: missing", e.Name)
}

func (e *ParameterError) Unwrap() error { return ErrMissingParameter }

// FieldError identifies the contract that cannot be scheduled and the field
// it lacks.
type FieldError struct {
	ContractID schedule.ContractID
	Field      string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("contract %s: missing %s", e.ContractID, e.Field)
}

func (e *FieldError) Unwrap() error { return ErrMissingField }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsConfigurationError returns true if the error condemns the whole run.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrMissingParameter)
}

// IsContractError returns true if the error condemns a single contract.
func IsContractError(err error) bool {
	return errors.Is(err, ErrMissingField)
}

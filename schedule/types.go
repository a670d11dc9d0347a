/*
Package schedule provides the core pension payment schedule engine.

PURPOSE:
  This package contains the machinery for generating monthly payment
  schedules: month-end date arithmetic, per-month indexation policies,
  the payment generation loop, and ledger assembly. It knows nothing
  about workbooks, configuration, or batch orchestration - callers hand
  it a payout window and an opening amount, and the generator walks the
  window month by month.

KEY CONCEPTS IN THIS FILE (types.go):
  - ContractID: type-safe contract identifier used as the ledger key
  - Window: the inclusive [Start, End] payout boundary for one contract
  - ScheduleState: the transient cursor the generator advances
  - PaymentEntry: one immutable ledger row (contract, month-end date, amount)

DESIGN PRINCIPLES:
  1. Immutability: emitted entries are never updated, only appended
  2. Precision: decimal.Decimal for all money, never float64
  3. Determinism: identical inputs produce bit-identical ledgers
  4. Purity: no I/O, no logging, no hidden state in this package

USAGE:
  window := schedule.Window{Start: start, End: end}
  gen := schedule.NewGenerator(schedule.JanuaryIndexation(rate))
  entries := gen.Schedule("PC-0001", window, opening)
  ledger := schedule.Assemble(entries)

SEE ALSO:
  - dates.go: month-end normalization and calendar arithmetic
  - indexing.go: per-month rate tables
  - generator.go: the payment loop
  - assembler.go: global ledger ordering
*/
package schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

// ContractID uniquely identifies a pension contract within a run.
type ContractID string

// =============================================================================
// WINDOW - Inclusive payout boundary for one contract
// =============================================================================

// Window bounds a contract's payment schedule. Start is the first payment
// date (always a month-end when produced by window resolution); End is the
// last date on which a payment may still fall. Both bounds are inclusive.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains returns true if t falls within [Start, End].
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// IsEmpty returns true when the window admits no payment dates at all.
func (w Window) IsEmpty() bool { return w.Start.After(w.End) }

func (w Window) String() string {
	return "[" + w.Start.Format(DateLayout) + ", " + w.End.Format(DateLayout) + "]"
}

// =============================================================================
// SCHEDULE STATE - Transient generator cursor
// =============================================================================

// ScheduleState is the per-contract cursor the generator advances: the
// payment date currently under consideration and the running amount as of
// that date. It is discarded once the cursor passes the window's end.
type ScheduleState struct {
	PaymentDate time.Time
	Amount      decimal.Decimal
}

// =============================================================================
// PAYMENT ENTRY - One immutable ledger row
// =============================================================================

// PaymentEntry records a single monthly payment. PaymentDate is always the
// last calendar day of its month; Amount carries two fractional digits.
type PaymentEntry struct {
	ContractID  ContractID
	PaymentDate time.Time
	Amount      decimal.Decimal
}

package schedule

import "github.com/shopspring/decimal"

// =============================================================================
// GENERATOR - The monthly payment loop
// =============================================================================

var one = decimal.NewFromInt(1)

// Generator walks a contract's payout window month by month, applying the
// indexing policy to the running amount before each payment is recorded.
// A Generator is read-only after construction and safe for concurrent use.
type Generator struct {
	Indexing IndexingPolicy
}

// NewGenerator builds a generator around an indexing policy. A nil policy
// behaves as NoIndexation.
func NewGenerator(policy IndexingPolicy) *Generator {
	if policy == nil {
		policy = NoIndexation()
	}
	return &Generator{Indexing: policy}
}

// Schedule produces the ordered payment entries for one contract.
//
// The cursor starts at the window's start date with the opening amount.
// Each iteration indexes the amount for the cursor's calendar month,
// rounding half-even to 2 decimals (the rounded value is the base for the
// next month, so rounding compounds), emits the entry, then advances the
// cursor to the next month end. The first cursor date past the window's
// end is never emitted; an empty window yields no entries.
//
// Pure function: no I/O, no input validation, no state between calls.
func (g *Generator) Schedule(id ContractID, window Window, opening decimal.Decimal) []PaymentEntry {
	var entries []PaymentEntry

	state := ScheduleState{PaymentDate: window.Start, Amount: opening}
	for window.Contains(state.PaymentDate) {
		rate := g.Indexing.RateFor(state.PaymentDate.Month())
		state.Amount = state.Amount.Mul(one.Add(rate)).RoundBank(2)
		entries = append(entries, PaymentEntry{
			ContractID:  id,
			PaymentDate: state.PaymentDate,
			Amount:      state.Amount,
		})
		state.PaymentDate = NextMonthEnd(state.PaymentDate)
	}
	return entries
}

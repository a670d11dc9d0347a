package schedule

import "sort"

// =============================================================================
// ASSEMBLER - Global ledger ordering
// =============================================================================

// Assemble concatenates per-contract entry sequences into one ledger sorted
// by (payment date ascending, contract id ascending). The pair is unique
// within a run, so the order is total.
func Assemble(perContract ...[]PaymentEntry) []PaymentEntry {
	total := 0
	for _, entries := range perContract {
		total += len(entries)
	}

	ledger := make([]PaymentEntry, 0, total)
	for _, entries := range perContract {
		ledger = append(ledger, entries...)
	}

	sort.Slice(ledger, func(i, j int) bool {
		if !ledger[i].PaymentDate.Equal(ledger[j].PaymentDate) {
			return ledger[i].PaymentDate.Before(ledger[j].PaymentDate)
		}
		return ledger[i].ContractID < ledger[j].ContractID
	})
	return ledger
}

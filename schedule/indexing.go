package schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// INDEXING POLICY - Per-month payment uplift
// =============================================================================

// IndexingPolicy answers, for a calendar month, the fractional rate by which
// a payment grows before being paid in that month. A month with no
// configured rate contributes zero.
type IndexingPolicy interface {
	RateFor(month time.Month) decimal.Decimal
}

// MonthlyIndexTable is a fixed 12-entry rate table: one rate per calendar
// month, zero unless set. Built once per run and read-only afterwards, so a
// single table may be shared across goroutines.
type MonthlyIndexTable struct {
	rates [12]decimal.Decimal
}

// NewMonthlyIndexTable returns a table with every month at zero.
func NewMonthlyIndexTable() *MonthlyIndexTable {
	return &MonthlyIndexTable{}
}

// WithRate sets the rate for one month and returns the table for chaining.
// Months outside January..December are ignored.
func (t *MonthlyIndexTable) WithRate(month time.Month, rate decimal.Decimal) *MonthlyIndexTable {
	if month >= time.January && month <= time.December {
		t.rates[month-1] = rate
	}
	return t
}

// RateFor implements IndexingPolicy. Out-of-range months read as zero.
func (t *MonthlyIndexTable) RateFor(month time.Month) decimal.Decimal {
	if month < time.January || month > time.December {
		return decimal.Zero
	}
	return t.rates[month-1]
}

// JanuaryIndexation is the production policy: payments grow by rate in
// January and stay flat in every other month.
func JanuaryIndexation(rate decimal.Decimal) *MonthlyIndexTable {
	return NewMonthlyIndexTable().WithRate(time.January, rate)
}

// NoIndexation returns a policy with a zero rate for every month.
func NoIndexation() *MonthlyIndexTable {
	return NewMonthlyIndexTable()
}

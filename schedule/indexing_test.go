package schedule_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/pension-engine/schedule"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestMonthlyIndexTable_DefaultsToZero(t *testing.T) {
	table := schedule.NewMonthlyIndexTable()
	for m := time.January; m <= time.December; m++ {
		if rate := table.RateFor(m); !rate.IsZero() {
			t.Errorf("month %s: rate = %s, want 0", m, rate)
		}
	}
}

func TestJanuaryIndexation(t *testing.T) {
	rate := dec("0.05")
	policy := schedule.JanuaryIndexation(rate)

	if got := policy.RateFor(time.January); !got.Equal(rate) {
		t.Errorf("January rate = %s, want %s", got, rate)
	}
	for m := time.February; m <= time.December; m++ {
		if got := policy.RateFor(m); !got.IsZero() {
			t.Errorf("month %s: rate = %s, want 0", m, got)
		}
	}
}

func TestMonthlyIndexTable_WithRate(t *testing.T) {
	table := schedule.NewMonthlyIndexTable().
		WithRate(time.January, dec("0.05")).
		WithRate(time.July, dec("0.02"))

	if got := table.RateFor(time.July); !got.Equal(dec("0.02")) {
		t.Errorf("July rate = %s, want 0.02", got)
	}
	if got := table.RateFor(time.June); !got.IsZero() {
		t.Errorf("June rate = %s, want 0", got)
	}
}

func TestMonthlyIndexTable_OutOfRangeMonthsReadZero(t *testing.T) {
	table := schedule.JanuaryIndexation(dec("0.10"))
	if !table.RateFor(time.Month(0)).IsZero() {
		t.Error("month 0 should read as zero")
	}
	if !table.RateFor(time.Month(13)).IsZero() {
		t.Error("month 13 should read as zero")
	}
}

package pension_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/pension-engine/pension"
	"github.com/warp/pension-engine/schedule"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(year int, month time.Month, day int) time.Time {
	return schedule.NewDate(year, month, day)
}

func fmtDate(t time.Time) string { return t.Format(schedule.DateLayout) }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func testParams(report time.Time, rate string, maxAge int) pension.Parameters {
	return pension.Parameters{ReportDate: report, IndexingRate: dec(rate), MaxAgeYears: maxAge}
}

// =============================================================================
// PENSIONER CHECK
// =============================================================================

func TestAlreadyPensioner(t *testing.T) {
	cases := []struct {
		name     string
		birth    time.Time
		startAge int
		report   time.Time
		want     bool
	}{
		{"well past the start age", date(1960, time.May, 15), 60, date(2024, time.January, 1), true},
		{"on the anniversary day", date(1964, time.January, 1), 60, date(2024, time.January, 1), true},
		{"one day short", date(1964, time.January, 2), 60, date(2024, time.January, 1), false},
		{"years away", date(1990, time.June, 10), 60, date(2024, time.January, 1), false},
		{"leap-day birthday on Feb 28", date(2000, time.February, 29), 23, date(2023, time.February, 28), false},
		{"leap-day birthday on Mar 1", date(2000, time.February, 29), 23, date(2023, time.March, 1), true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pension.AlreadyPensioner(tc.birth, tc.startAge, tc.report)
			if got != tc.want {
				t.Errorf("AlreadyPensioner(%s, %d, %s) = %v, want %v",
					fmtDate(tc.birth), tc.startAge, fmtDate(tc.report), got, tc.want)
			}
		})
	}
}

// =============================================================================
// WINDOW RESOLUTION
// =============================================================================

func TestResolveWindow_AlreadyPensioner(t *testing.T) {
	// GIVEN: born 1960-05-15 with start age 60, so a pensioner since 2020
	// WHEN: the window is resolved against report date 2024-01-01
	// THEN: the start is the report date's month end, the end is the 80th
	//   birthday plus one day with no normalization

	params := testParams(date(2024, time.January, 1), "0.05", 80)
	window := pension.ResolveWindow(date(1960, time.May, 15), 60, params)

	if !window.Start.Equal(date(2024, time.January, 31)) {
		t.Errorf("start = %s, want 2024-01-31", fmtDate(window.Start))
	}
	if !window.End.Equal(date(2040, time.May, 16)) {
		t.Errorf("end = %s, want 2040-05-16", fmtDate(window.End))
	}
}

func TestResolveWindow_ReportDateAlreadyMonthEnd(t *testing.T) {
	params := testParams(date(2024, time.January, 31), "0.05", 80)
	window := pension.ResolveWindow(date(1960, time.May, 15), 60, params)

	if !window.Start.Equal(date(2024, time.January, 31)) {
		t.Errorf("start = %s, want the unchanged month end 2024-01-31", fmtDate(window.Start))
	}
}

func TestResolveWindow_FuturePensioner(t *testing.T) {
	// Not yet a pensioner: the start is the month end of the month the
	// holder reaches the start age, regardless of the report date.
	params := testParams(date(2024, time.January, 1), "0.05", 80)
	window := pension.ResolveWindow(date(1990, time.June, 10), 60, params)

	if !window.Start.Equal(date(2050, time.June, 30)) {
		t.Errorf("start = %s, want 2050-06-30", fmtDate(window.Start))
	}
	if !window.End.Equal(date(2070, time.June, 11)) {
		t.Errorf("end = %s, want 2070-06-11", fmtDate(window.End))
	}
}

func TestResolveWindow_OneDayShortOfAnniversary(t *testing.T) {
	params := testParams(date(2024, time.January, 1), "0.05", 80)
	window := pension.ResolveWindow(date(1964, time.May, 2), 60, params)

	if !window.Start.Equal(date(2024, time.May, 31)) {
		t.Errorf("start = %s, want 2024-05-31 (month end of the 60th birthday)", fmtDate(window.Start))
	}
}

func TestResolveWindow_LeapDayBirth(t *testing.T) {
	// Feb 29 birthdays: year addition clamps to Feb 28 in non-leap years,
	// while the whole-years check completes the anniversary on Mar 1.
	params := testParams(date(2023, time.February, 28), "0.00", 80)
	window := pension.ResolveWindow(date(2000, time.February, 29), 23, params)

	// Not yet 23 on 2023-02-28, so the start comes from the birthday month.
	if !window.Start.Equal(date(2023, time.February, 28)) {
		t.Errorf("start = %s, want 2023-02-28", fmtDate(window.Start))
	}
	// 2080 is a leap year, so the 80th birthday stays on Feb 29 and the end
	// lands one day later. In a non-leap target year the clamp to Feb 28
	// gives the same Mar 1.
	if !window.End.Equal(date(2080, time.March, 1)) {
		t.Errorf("end = %s, want 2080-03-01", fmtDate(window.End))
	}

	params = testParams(date(2023, time.March, 1), "0.00", 80)
	window = pension.ResolveWindow(date(2000, time.February, 29), 23, params)
	if !window.Start.Equal(date(2023, time.March, 31)) {
		t.Errorf("start = %s, want 2023-03-31 (already a pensioner on Mar 1)", fmtDate(window.Start))
	}
}

func TestResolveWindow_PastMaxAgeIsEmpty(t *testing.T) {
	// A holder already beyond the maximum age gets a window whose start
	// falls after its end; the generator emits nothing for it.
	params := testParams(date(2024, time.January, 1), "0.05", 80)
	window := pension.ResolveWindow(date(1940, time.January, 15), 60, params)

	if !window.Start.Equal(date(2024, time.January, 31)) {
		t.Errorf("start = %s, want 2024-01-31", fmtDate(window.Start))
	}
	if !window.End.Equal(date(2020, time.January, 16)) {
		t.Errorf("end = %s, want 2020-01-16", fmtDate(window.End))
	}
	if !window.IsEmpty() {
		t.Error("window should be empty")
	}

	gen := schedule.NewGenerator(schedule.JanuaryIndexation(params.IndexingRate))
	if entries := gen.Schedule("PC-0001", window, dec("1000.00")); len(entries) != 0 {
		t.Errorf("entry count = %d, want 0", len(entries))
	}
}

package pension

import (
	"time"

	"github.com/warp/pension-engine/schedule"
)

// =============================================================================
// WINDOW RESOLUTION - First and last payment dates per contract
// =============================================================================

// AlreadyPensioner returns true when the contract holder has completed the
// pension-start age by the report date. The age check counts whole calendar
// years, so a Feb 29 birthday completes its anniversary on Mar 1 in
// non-leap years.
func AlreadyPensioner(birthDate time.Time, startAge int, reportDate time.Time) bool {
	return schedule.WholeYearsBetween(birthDate, reportDate) >= startAge
}

// ResolveWindow computes a contract's payout window from its demographics
// and the run parameters.
//
// Start: for holders already past pension-start age at the report date, the
// report date normalized to its month end; otherwise the last day of the
// month in which the holder reaches pension-start age.
//
// End: birth date plus the maximum age in years plus one day, with no
// month-end normalization. Year addition clamps leap days (Feb 29 + N years
// lands on Feb 28 in non-leap years).
//
// A holder already past the maximum age yields an empty window: Start falls
// after End and the generator emits nothing.
func ResolveWindow(birthDate time.Time, startAge int, params Parameters) schedule.Window {
	var start time.Time
	if AlreadyPensioner(birthDate, startAge, params.ReportDate) {
		start = schedule.EndOfMonth(params.ReportDate)
	} else {
		start = schedule.EndOfMonth(schedule.AddYears(birthDate, startAge))
	}

	end := schedule.AddYears(birthDate, params.MaxAgeYears).AddDate(0, 0, 1)

	return schedule.Window{Start: start, End: end}
}

// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

var (
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		return DaysInFeb(year)
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
}

// IsLeap returns true if the given year is a leap year. The Gregorian
// rule is used for all years, including those prior to 1752 for which
// the Julian rule (every fourth year) was in force historically.
func IsLeap(year int) bool {
	return (year%4 == 0 && year%400 == 0) || (year%4 == 0 && year%100 != 0)
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of the last day in the given month for
// the given year. For September 1752 this is 30 even though only 19 of
// those days exist, see DaysShown.
func DaysInMonth(year int, month Month) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// DaysShown returns the number of days that actually occurred in the
// given month, ie. the number of day cells displayed for it.
func DaysShown(year int, month Month) int {
	if isCutoverMonth(year, month) {
		return DaysInMonth(year, month) - CutoverGap
	}
	return DaysInMonth(year, month)
}

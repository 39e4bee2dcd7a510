// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import "time"

var (
	// GregorianCutover is the first date of the Gregorian calendar.
	GregorianCutover = CalendarDate{Year: 1752, Month: 9, Day: 14}

	// LastJulianDay is the last date of the Julian calendar, it was
	// followed immediately by GregorianCutover.
	LastJulianDay = CalendarDate{Year: 1752, Month: 9, Day: 2}
)

// CutoverGap is the number of days that were skipped when moving
// from the Julian to the Gregorian calendar.
const CutoverGap = 11

// per month offsets for the weekday congruence, January first.
var monthOffsets = [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// julianShift is the weekday correction applied to Julian dates. It is
// exact for the eighteenth century only.
const julianShift = 3

func isCutoverMonth(year int, month Month) bool {
	return year == GregorianCutover.Year && month == GregorianCutover.Month
}

func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

// DayOfWeek returns the day of the week for the given date. Dates prior
// to GregorianCutover are treated as Julian dates.
func DayOfWeek(year int, month Month, day int) time.Weekday {
	shift := 0
	if (CalendarDate{Year: year, Month: month, Day: day}).Before(GregorianCutover) {
		shift = julianShift
	}
	y := year
	if month < 3 {
		y--
	}
	// y is never negative for MinYear and later so integer division
	// is floor division.
	n := y + y/4 - y/100 + y/400 + monthOffsets[month-1] + day - shift
	return time.Weekday(mod(n, 7))
}

// DayForCell returns the day of the month displayed in the cell'th
// (1 based) consecutive day cell of the given month. It is the identity
// except for September 1752 where the cells following the 2nd display
// the 14th onwards.
func DayForCell(year int, month Month, cell int) int {
	if isCutoverMonth(year, month) && cell > LastJulianDay.Day {
		return cell + CutoverGap
	}
	return cell
}

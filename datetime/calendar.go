// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
	"time"
)

// CalendarDate represents a date with a year, month and day.
type CalendarDate struct {
	Year  int
	Month Month
	Day   int
}

// NewCalendarDate returns the CalendarDate for the given time in its
// own location.
func NewCalendarDate(when time.Time) CalendarDate {
	y, m, d := when.Date()
	return CalendarDate{Year: y, Month: Month(m), Day: d}
}

func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, cd.Month, cd.Day)
}

// Before returns true if cd is strictly before o.
func (cd CalendarDate) Before(o CalendarDate) bool {
	if cd.Year != o.Year {
		return cd.Year < o.Year
	}
	if cd.Month != o.Month {
		return cd.Month < o.Month
	}
	return cd.Day < o.Day
}

// IsJulian returns true if cd is a date in the Julian calendar.
func (cd CalendarDate) IsJulian() bool {
	return cd.Before(GregorianCutover)
}

// Valid returns true if cd is a date that exists, days 3 through 13
// of September 1752 do not.
func (cd CalendarDate) Valid() bool {
	if cd.Year < MinYear || cd.Year > MaxYear || cd.Month < 1 || cd.Month > 12 {
		return false
	}
	if cd.Day < 1 || cd.Day > DaysInMonth(cd.Year, cd.Month) {
		return false
	}
	return !isCutoverMonth(cd.Year, cd.Month) ||
		cd.Day <= LastJulianDay.Day || cd.Day >= GregorianCutover.Day
}

// Weekday returns the day of the week for cd.
func (cd CalendarDate) Weekday() time.Weekday {
	return DayOfWeek(cd.Year, cd.Month, cd.Day)
}

// Time returns midnight UTC on cd as a proleptic Gregorian time.Time. It
// is intended for formatting the year and month of cd; the weekday of the
// returned time is not adjusted for Julian dates.
func (cd CalendarDate) Time() time.Time {
	return time.Date(cd.Year, time.Month(cd.Month), cd.Day, 0, 0, 0, 0, time.UTC)
}

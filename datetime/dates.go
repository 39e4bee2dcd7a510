// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datetime provides the calendar arithmetic used to print
// calendars for the years 1 through 9999. Dates prior to 1752-09-14 are
// interpreted as Julian dates and later ones as Gregorian dates, following
// the adoption of the Gregorian calendar in Great Britain and its colonies
// when 1752-09-03 through 1752-09-13 were skipped.
package datetime

import (
	"fmt"
	"strconv"
	"time"
)

const (
	// MinYear and MaxYear bound the years that can be displayed.
	MinYear = 1
	MaxYear = 9999
)

// Month as an int, 1 is January.
type Month time.Month

func (m Month) String() string {
	return time.Month(m).String()
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid month: %s", val)
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d", n)
	}
	return Month(n), nil
}

// ParseYear parses a numeric year in the range MinYear to MaxYear.
func ParseYear(val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid year: %s", val)
	}
	if n < MinYear || n > MaxYear {
		return 0, fmt.Errorf("invalid year: %d", n)
	}
	return n, nil
}

// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command cal displays a calendar for a month or a whole year.
//
//	cal [[month] year]
//
// With no operands the current month is displayed. With one operand,
// the calendar for that year (1 through 9999) is displayed. With two
// operands the first is taken as a month (1 through 12) and the second
// as the year. Dates prior to 14 September 1752 are displayed using the
// Julian calendar.
//
// Month names follow the LC_ALL, LC_TIME and LANG environment variables.
// Diagnostic logging is controlled by CAL_LOG_LEVEL, CAL_LOG_FILE,
// CAL_LOG_FORMAT and CAL_LOG_SOURCE_CODE.
package main

import (
	"os"
	"time"
)

func main() {
	os.Exit(run(os.Args[1:], os.Environ(), time.Now(), os.Stdout, os.Stderr))
}

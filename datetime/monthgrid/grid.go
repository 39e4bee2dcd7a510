// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package monthgrid lays out months and years as fixed width text in the
// style of the traditional unix cal command. Each month is a block of
// MonthHeight rows of exactly MonthWidth characters: a centered header,
// the weekday labels and six week rows, unused week rows being blank.
// A year is printed as four bands of three months each.
package monthgrid

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"cloudeng.io/cal/datetime"
)

const (
	// MonthWidth is the width of every row of a month block, seven two
	// digit days separated by single spaces.
	MonthWidth = 20
	// MonthHeight is the number of rows in a month block.
	MonthHeight = 8
	// WeekRows is the number of week rows in a month block.
	WeekRows = MonthHeight - 2
	// Columns is the number of months displayed side by side for a year.
	Columns = 3
	// RowGroups is the number of bands of months displayed for a year.
	RowGroups = 12 / Columns
	// ColumnSeparator separates adjacent months for a year.
	ColumnSeparator = "  "
	// WeekdayLabels is the fixed second row of every month block.
	WeekdayLabels = "Su Mo Tu We Th Fr Sa"
	// YearWidth is the width of each line of a year.
	YearWidth = Columns*MonthWidth + (Columns-1)*len(ColumnSeparator)
)

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	n := 0
	for i := range s {
		if n == width {
			return s[:i]
		}
		n++
	}
	return s
}

// Center returns s centered within width characters. Any odd padding
// is placed on the right. Text longer than width is truncated.
func Center(s string, width int) string {
	s = truncate(s, width)
	n := utf8.RuneCountInString(s)
	lpad := (width - n) / 2
	return strings.Repeat(" ", lpad) + s + strings.Repeat(" ", width-n-lpad)
}

// pad returns s padded on the right with spaces to width characters.
func pad(s string, width int) string {
	s = truncate(s, width)
	return s + strings.Repeat(" ", width-utf8.RuneCountInString(s))
}

// WeekRow returns the week'th (0 based) week row for the given month
// padded to MonthWidth, and the number of characters written before
// padding. Rows that follow the last week of the month are blank.
func WeekRow(year int, month datetime.Month, week int) (string, int) {
	first := int(datetime.DayOfWeek(year, month, 1))
	start := week*7 - first
	if start < 0 {
		start = 0
	}
	days := datetime.DaysInMonth(year, month)
	out := &strings.Builder{}
	if week == 0 {
		out.WriteString(strings.Repeat("   ", first))
	}
	for cell := start + 1; cell < start+8; cell++ {
		day := datetime.DayForCell(year, month, cell)
		if day > days {
			break
		}
		if datetime.DayOfWeek(year, month, day) == time.Saturday {
			fmt.Fprintf(out, "%2d", day)
			break
		}
		fmt.Fprintf(out, "%2d ", day)
	}
	return pad(out.String(), MonthWidth), out.Len()
}

// MonthBlock represents a single month as text.
type MonthBlock [MonthHeight]string

// Lines returns the rows of the block.
func (mb MonthBlock) Lines() []string {
	return append([]string(nil), mb[:]...)
}

func (mb MonthBlock) String() string {
	return strings.Join(mb[:], "\n") + "\n"
}

// RowGroup represents a band of Columns months displayed side by side.
type RowGroup [Columns]MonthBlock

// Lines returns the rows of the months in the group joined by the
// ColumnSeparator.
func (rg RowGroup) Lines() []string {
	lines := make([]string, MonthHeight)
	row := make([]string, Columns)
	for i := range lines {
		for col := range rg {
			row[col] = rg[col][i]
		}
		lines[i] = strings.Join(row, ColumnSeparator)
	}
	return lines
}

// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package monthgrid

import (
	"bufio"
	"io"
	"iter"
	"log/slog"

	"cloudeng.io/cal/datetime"
)

const (
	monthPattern     = "%B"
	monthYearPattern = "%B %Y"
	yearPattern      = "%Y"
)

// Formatter formats a date according to a strftime style pattern,
// typically using locale specific month names.
type Formatter interface {
	Format(pattern string, date datetime.CalendarDate) string
}

// Option represents an option to New.
type Option func(o *options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger used by the Renderer, the default
// discards all log records.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Renderer lays out months and years. It is safe for concurrent use.
type Renderer struct {
	formatter Formatter
	logger    *slog.Logger
}

// New returns a Renderer that uses f to format month and year headers.
func New(f Formatter, opts ...Option) *Renderer {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return &Renderer{formatter: f, logger: o.logger}
}

// Header returns the centered name of the month, optionally followed
// by the year.
func (r *Renderer) Header(year int, month datetime.Month, includeYear bool) string {
	pattern := monthPattern
	if includeYear {
		pattern = monthYearPattern
	}
	cd := datetime.CalendarDate{Year: year, Month: month, Day: 1}
	return Center(r.formatter.Format(pattern, cd), MonthWidth)
}

// Month returns the block for the month containing date.
func (r *Renderer) Month(date datetime.CalendarDate, includeYear bool) MonthBlock {
	var mb MonthBlock
	mb[0] = r.Header(date.Year, date.Month, includeYear)
	mb[1] = WeekdayLabels
	for week := 0; week < WeekRows; week++ {
		mb[week+2], _ = WeekRow(date.Year, date.Month, week)
	}
	r.logger.Debug("month", "year", date.Year, "month", int(date.Month), "include_year", includeYear)
	return mb
}

// SingleMonth returns the lines used to display the month containing
// date on its own.
func (r *Renderer) SingleMonth(date datetime.CalendarDate) []string {
	return r.Month(date, true).Lines()
}

// RowGroup returns the group'th (0 based) band of months for year.
func (r *Renderer) RowGroup(year, group int) RowGroup {
	var rg RowGroup
	for col := range rg {
		month := datetime.Month(group*Columns + col + 1)
		rg[col] = r.Month(datetime.CalendarDate{Year: year, Month: month, Day: 1}, false)
	}
	return rg
}

// RowGroups returns an iterator over the bands of months for year. Each
// band is built as it is requested.
func (r *Renderer) RowGroups(year int) iter.Seq[RowGroup] {
	return func(yield func(RowGroup) bool) {
		for group := 0; group < RowGroups; group++ {
			if !yield(r.RowGroup(year, group)) {
				return
			}
		}
	}
}

// YearTitle returns the centered year shown above the months of a year.
func (r *Renderer) YearTitle(year int) string {
	cd := datetime.CalendarDate{Year: year, Month: 1, Day: 1}
	return Center(r.formatter.Format(yearPattern, cd), YearWidth)
}

// Year returns the lines used to display year: the title, a blank line
// and the bands of months.
func (r *Renderer) Year(year int) []string {
	lines := make([]string, 0, 2+RowGroups*MonthHeight)
	lines = append(lines, r.YearTitle(year), "")
	for rg := range r.RowGroups(year) {
		lines = append(lines, rg.Lines()...)
	}
	return lines
}

func writeLines(w *bufio.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := w.WriteString(l); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return nil
}

// WriteMonth writes the month containing date to w.
func (r *Renderer) WriteMonth(w io.Writer, date datetime.CalendarDate) error {
	bw := bufio.NewWriter(w)
	if err := writeLines(bw, r.SingleMonth(date)); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteYear writes year to w, one band of months at a time.
func (r *Renderer) WriteYear(w io.Writer, year int) error {
	bw := bufio.NewWriter(w)
	if err := writeLines(bw, []string{r.YearTitle(year), ""}); err != nil {
		return err
	}
	for rg := range r.RowGroups(year) {
		if err := writeLines(bw, rg.Lines()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

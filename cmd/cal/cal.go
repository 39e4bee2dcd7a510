// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"cloudeng.io/cal/cmdutil"
	"cloudeng.io/cal/datetime"
	"cloudeng.io/cal/datetime/monthgrid"
	"cloudeng.io/cal/locale"
	"cloudeng.io/errors"
	"cloudeng.io/text/linewrap"
)

const synopsis = "usage: cal [[month] year]"

const description = `With no operands the current month is displayed. A single operand
is a year from 1 to 9999 and displays that entire year. Two operands are a
month from 1 to 12 followed by a year. Dates before 14 September 1752 are
Julian dates and 3 through 13 September 1752 do not exist.`

// UsageError is returned for invocations that do not match the synopsis.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// InvalidArgumentError is returned for a month or year operand that is
// not numeric or is out of range.
type InvalidArgumentError struct {
	Name  string
	Value string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Name, e.Value)
}

// request is a validated invocation, month is zero when an entire year
// is to be displayed.
type request struct {
	year  int
	month datetime.Month
}

func parseArgs(args []string, today datetime.CalendarDate) (request, error) {
	fs := flag.NewFlagSet("cal", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return request{}, &UsageError{Msg: err.Error()}
	}
	operands := fs.Args()
	// flag stops at the first operand, options that follow it are still
	// options unless -- was seen.
	terminated := len(operands) < len(args) && args[len(args)-len(operands)-1] == "--"
	for _, op := range operands {
		if !terminated && len(op) > 1 && op[0] == '-' {
			return request{}, &UsageError{Msg: "option follows operand: " + op}
		}
	}
	switch len(operands) {
	case 0:
		return request{year: today.Year, month: today.Month}, nil
	case 1:
		year, err := datetime.ParseYear(operands[0])
		if err != nil {
			return request{}, &InvalidArgumentError{Name: "year", Value: operands[0]}
		}
		return request{year: year}, nil
	case 2:
		errs := &errors.M{}
		year, err := datetime.ParseYear(operands[1])
		if err != nil {
			errs.Append(&InvalidArgumentError{Name: "year", Value: operands[1]})
		}
		month, err := datetime.ParseNumericMonth(operands[0])
		if err != nil {
			errs.Append(&InvalidArgumentError{Name: "month", Value: operands[0]})
		}
		if err := errs.Err(); err != nil {
			return request{}, err
		}
		return request{year: year, month: month}, nil
	}
	return request{}, &UsageError{Msg: "too many operands"}
}

// flatten returns the errors contained in err, including those of any
// nested multi-errors, in order.
func flatten(err error) []error {
	multi, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}
	var errs []error
	for _, e := range multi.Unwrap() {
		errs = append(errs, flatten(e)...)
	}
	return errs
}

// closeLog closes the log and returns err together with any error
// encountered doing so.
func closeLog(log io.Closer, err error) error {
	cerr := log.Close()
	if cerr == nil {
		return err
	}
	return errors.NewM(err, fmt.Errorf("failed to close log: %w", cerr))
}

func reportErrors(stderr io.Writer, err error) {
	for _, err := range flatten(err) {
		fmt.Fprintf(stderr, "cal: %v\n", err)
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		fmt.Fprintln(stderr, synopsis)
		fmt.Fprintln(stderr, linewrap.Block(2, 80, description))
	}
}

func run(args, environ []string, now time.Time, stdout, stderr io.Writer) int {
	if err := cal(args, environ, now, stdout); err != nil {
		reportErrors(stderr, err)
		return 1
	}
	return 0
}

func cal(args, environ []string, now time.Time, stdout io.Writer) (err error) {
	cfg, err := cmdutil.LoadConfig(environ)
	if err != nil {
		return err
	}
	logger, err := cfg.Logging.NewLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() {
		err = closeLog(logger, err)
	}()
	logger.LogBuildInfo()

	today := datetime.NewCalendarDate(now)
	req, err := parseArgs(args, today)
	if err != nil {
		return err
	}
	formatter := locale.ForEnvironment(cfg.LCAll, cfg.LCTime, cfg.Lang)
	logger.Info("rendering", "year", req.year, "month", int(req.month), "locale", formatter.Tag().String())
	r := monthgrid.New(formatter, monthgrid.WithLogger(logger.Logger))
	if req.month == 0 {
		err = r.WriteYear(stdout, req.year)
	} else {
		err = r.WriteMonth(stdout, datetime.CalendarDate{Year: req.year, Month: req.month, Day: 1})
	}
	if err != nil {
		return fmt.Errorf("failed to write calendar: %w", err)
	}
	return nil
}

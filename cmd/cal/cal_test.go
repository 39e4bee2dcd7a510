// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cloudeng.io/cal/datetime"
)

var today = time.Date(2026, 10, 18, 9, 30, 0, 0, time.Local)

func runCal(t *testing.T, environ []string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, environ, today, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func compareLines(t *testing.T, got string, want []string) {
	t.Helper()
	if got, want := got, strings.Join(want, "\n")+"\n"; got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestSeptember1752(t *testing.T) {
	code, stdout, stderr := runCal(t, nil, "9", "1752")
	if got, want := code, 0; got != want {
		t.Fatalf("got %v, want %v: %s", got, want, stderr)
	}
	compareLines(t, stdout, []string{
		"   September 1752   ",
		"Su Mo Tu We Th Fr Sa",
		"       1  2 14 15 16",
		"17 18 19 20 21 22 23",
		"24 25 26 27 28 29 30",
		"                    ",
		"                    ",
		"                    ",
	})
	if got, want := stderr, ""; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCurrentMonth(t *testing.T) {
	code, stdout, _ := runCal(t, nil)
	if got, want := code, 0; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	compareLines(t, stdout, []string{
		"    October 2026    ",
		"Su Mo Tu We Th Fr Sa",
		"             1  2  3",
		" 4  5  6  7  8  9 10",
		"11 12 13 14 15 16 17",
		"18 19 20 21 22 23 24",
		"25 26 27 28 29 30 31",
		"                    ",
	})

	// An empty operand list following -- is the same as no operands.
	_, again, _ := runCal(t, nil, "--")
	if got, want := again, stdout; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestYear(t *testing.T) {
	code, stdout, _ := runCal(t, nil, "2024")
	if got, want := code, 0; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if got, want := len(lines), 34; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got, want := lines[0], strings.Repeat(" ", 30)+"2024"+strings.Repeat(" ", 30); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got, want := lines[2], "      January               February               March        "; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	// February 2024 ends on Thursday the 29th in the fifth week row.
	if got, want := lines[8][22:42], "25 26 27 28 29      "; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	for i, l := range lines {
		if got, want := len(l), 64; i > 1 && got != want {
			t.Errorf("line %v: got %v, want %v", i, got, want)
		}
	}

	code, stdout, _ = runCal(t, nil, "--", "1752")
	if got, want := code, 0; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	lines = strings.Split(stdout, "\n")
	if got, want := lines[20][44:], "       1  2 14 15 16"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestYearsBeforeOneThousand(t *testing.T) {
	code, stdout, _ := runCal(t, nil, "1", "999")
	if got, want := code, 0; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	compareLines(t, stdout, []string{
		"    January 999     ",
		"Su Mo Tu We Th Fr Sa",
		"                   1",
		" 2  3  4  5  6  7  8",
		" 9 10 11 12 13 14 15",
		"16 17 18 19 20 21 22",
		"23 24 25 26 27 28 29",
		"30 31               ",
	})

	code, stdout, _ = runCal(t, nil, "999")
	if got, want := code, 0; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	title, _, _ := strings.Cut(stdout, "\n")
	if got, want := title, strings.Repeat(" ", 30)+"999"+strings.Repeat(" ", 31); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	_, stdout, _ = runCal(t, nil, "1")
	title, _, _ = strings.Cut(stdout, "\n")
	if got, want := strings.TrimSpace(title), "1"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLocale(t *testing.T) {
	for _, tc := range []struct {
		environ []string
		header  string
	}{
		{nil, "   September 1752   "},
		{[]string{"LANG=de_DE.UTF-8"}, "   September 1752   "},
		{[]string{"LANG=fr_FR.UTF-8"}, "   septembre 1752   "},
		{[]string{"LANG=fr_FR.UTF-8", "LC_TIME=es_ES"}, "  septiembre 1752   "},
		{[]string{"LC_ALL=C", "LC_TIME=es_ES"}, "   September 1752   "},
	} {
		code, stdout, stderr := runCal(t, tc.environ, "9", "1752")
		if got, want := code, 0; got != want {
			t.Errorf("%v: got %v, want %v: %s", tc.environ, got, want, stderr)
			continue
		}
		header, _, _ := strings.Cut(stdout, "\n")
		if got, want := header, tc.header; got != want {
			t.Errorf("%v: got %q, want %q", tc.environ, got, want)
		}
	}
}

func TestErrors(t *testing.T) {
	for _, tc := range []struct {
		args   []string
		stderr []string
		usage  bool
	}{
		{[]string{"1", "2", "3"}, []string{"cal: too many operands"}, true},
		{[]string{"-x"}, []string{"cal: flag provided but not defined: -x"}, true},
		{[]string{"-h"}, []string{"cal: flag: help requested"}, true},
		{[]string{"-1", "2024"}, []string{"cal: flag provided but not defined: -1"}, true},
		{[]string{"2024", "-x"}, []string{"cal: option follows operand: -x"}, true},
		{[]string{"1", "2024", "-h"}, []string{"cal: option follows operand: -h"}, true},
		{[]string{"1", "-"}, []string{"cal: invalid year: -"}, false},
		{[]string{"--", "-5"}, []string{"cal: invalid year: -5"}, false},
		{[]string{"--", "1", "-5"}, []string{"cal: invalid year: -5"}, false},
		{[]string{"0"}, []string{"cal: invalid year: 0"}, false},
		{[]string{"10000"}, []string{"cal: invalid year: 10000"}, false},
		{[]string{"nineteen"}, []string{"cal: invalid year: nineteen"}, false},
		{[]string{"13", "2024"}, []string{"cal: invalid month: 13"}, false},
		{[]string{"1", "0"}, []string{"cal: invalid year: 0"}, false},
		{[]string{"0", "0"}, []string{"cal: invalid year: 0", "cal: invalid month: 0"}, false},
	} {
		code, stdout, stderr := runCal(t, nil, tc.args...)
		if got, want := code, 1; got != want {
			t.Errorf("%v: got %v, want %v", tc.args, got, want)
		}
		if got, want := stdout, ""; got != want {
			t.Errorf("%v: got %v, want %v", tc.args, got, want)
		}
		want := strings.Join(tc.stderr, "\n") + "\n"
		if !strings.HasPrefix(stderr, want) {
			t.Errorf("%v: got %q, want prefix %q", tc.args, stderr, want)
		}
		if got, want := strings.Contains(stderr, synopsis), tc.usage; got != want {
			t.Errorf("%v: got %v, want %v", tc.args, got, want)
		}
	}
}

func TestParseArgs(t *testing.T) {
	now := datetime.NewCalendarDate(today)
	_, err := parseArgs([]string{"a", "b"}, now)
	var invalid *InvalidArgumentError
	if !errors.As(err, &invalid) {
		t.Fatalf("unexpected error type: %T", err)
	}
	if got, want := invalid.Name, "year"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	var usage *UsageError
	if errors.As(err, &usage) {
		t.Errorf("unexpected usage error: %v", err)
	}

	_, err = parseArgs([]string{"-v"}, now)
	if !errors.As(err, &usage) {
		t.Fatalf("unexpected error type: %T", err)
	}

	req, err := parseArgs([]string{"02", "0900"}, now)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := req, (request{year: 900, month: 2}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

type closer struct {
	err error
}

func (c closer) Close() error {
	return c.err
}

func TestCloseLog(t *testing.T) {
	errWrite := errors.New("write failed")
	errClose := errors.New("close failed")

	if err := closeLog(closer{}, nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := closeLog(closer{}, errWrite); err != errWrite {
		t.Errorf("got %v, want %v", err, errWrite)
	}
	err := closeLog(closer{err: errClose}, nil)
	if !errors.Is(err, errClose) {
		t.Errorf("got %v, want %v", err, errClose)
	}
	err = closeLog(closer{err: errClose}, errWrite)
	if !errors.Is(err, errClose) || !errors.Is(err, errWrite) {
		t.Errorf("got %v, want both %v and %v", err, errWrite, errClose)
	}

	var stderr bytes.Buffer
	reportErrors(&stderr, err)
	if got, want := stderr.String(), "cal: write failed\ncal: failed to close log: close failed\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// Nested multi-errors are reported one per line.
	_, perr := parseArgs([]string{"a", "b"}, datetime.NewCalendarDate(today))
	stderr.Reset()
	reportErrors(&stderr, closeLog(closer{err: errClose}, perr))
	want := "cal: invalid year: b\ncal: invalid month: a\ncal: failed to close log: close failed\n"
	if got := stderr.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEnvironmentErrors(t *testing.T) {
	code, stdout, stderr := runCal(t, []string{"CAL_LOG_LEVEL=verbose"}, "2024")
	if got, want := code, 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := stdout, ""; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !strings.HasPrefix(stderr, "cal: invalid environment:") {
		t.Errorf("unexpected error: %v", stderr)
	}

	code, _, stderr = runCal(t, []string{"CAL_LOG_FORMAT=xml"}, "2024")
	if got, want := code, 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !strings.Contains(stderr, "failed to create logger") {
		t.Errorf("unexpected error: %v", stderr)
	}
}

func TestLogging(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "cal.log")
	code, _, _ := runCal(t, []string{"CAL_LOG_LEVEL=3", "CAL_LOG_FILE=" + logFile}, "2024")
	if got, want := code, 0; got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	buf, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	log := string(buf)
	for _, want := range []string{"msg=\"build info\"", "msg=rendering year=2024 month=0 locale=en", "msg=month"} {
		if !strings.Contains(log, want) {
			t.Errorf("log does not contain %q:\n%s", want, log)
		}
	}
	if got, want := strings.Count(log, "msg=month"), 12; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

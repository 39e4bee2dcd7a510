// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package locale provides locale aware formatting of month and year
// headers. The locale is determined from POSIX style environment
// variables and month names are looked up in a message catalog, the
// remainder of a strftime pattern is formatted without localization.
package locale

import (
	"strconv"
	"strings"
	"time"

	"cloudeng.io/cal/datetime"
	"github.com/ncruces/go-strftime"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FromEnvironment returns the locale name in effect for formatting dates
// given the values of the LC_ALL, LC_TIME and LANG environment variables,
// the first non-empty value takes precedence.
func FromEnvironment(lcAll, lcTime, lang string) string {
	for _, v := range []string{lcAll, lcTime, lang} {
		if len(v) > 0 {
			return v
		}
	}
	return ""
}

// Parse parses a POSIX locale name such as fr_FR.UTF-8@euro or a BCP 47
// tag such as fr-FR. The C and POSIX locales, empty and invalid names are
// all treated as English.
func Parse(name string) language.Tag {
	if idx := strings.IndexAny(name, ".@"); idx >= 0 {
		name = name[:idx]
	}
	switch name {
	case "", "C", "POSIX":
		return language.English
	}
	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.English
	}
	return tag
}

// Formatter formats dates using the month names of a single language.
// It is safe for concurrent use.
type Formatter struct {
	tag   language.Tag
	names [12]string
}

// New returns a Formatter for the supported language that best matches
// tag.
func New(tag language.Tag) *Formatter {
	_, idx, _ := matcher.Match(tag)
	f := &Formatter{tag: Supported[idx]}
	p := message.NewPrinter(f.tag, message.Catalog(months))
	for i := range f.names {
		f.names[i] = p.Sprintf(time.Month(i + 1).String())
	}
	return f
}

// ForEnvironment is like New but determines the language from the values
// of the LC_ALL, LC_TIME and LANG environment variables.
func ForEnvironment(lcAll, lcTime, lang string) *Formatter {
	return New(Parse(FromEnvironment(lcAll, lcTime, lang)))
}

// Tag returns the language used by f.
func (f *Formatter) Tag() language.Tag {
	return f.tag
}

// MonthName returns the full name of month.
func (f *Formatter) MonthName(month datetime.Month) string {
	return f.names[month-1]
}

// Format formats date according to the strftime pattern. %B is replaced
// by the localized month name and %Y by the year without zero padding.
func (f *Formatter) Format(pattern string, date datetime.CalendarDate) string {
	return strftime.Format(f.localize(pattern, date), date.Time())
}

func (f *Formatter) localize(pattern string, date datetime.CalendarDate) string {
	out := &strings.Builder{}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' || i+1 == len(pattern) {
			out.WriteByte(pattern[i])
			continue
		}
		i++
		switch pattern[i] {
		case 'B':
			out.WriteString(strings.ReplaceAll(f.MonthName(date.Month), "%", "%%"))
			continue
		case 'Y':
			out.WriteString(strconv.Itoa(date.Year))
			continue
		}
		out.WriteByte('%')
		out.WriteByte(pattern[i])
	}
	return out.String()
}

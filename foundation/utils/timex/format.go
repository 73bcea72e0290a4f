// File: format.go
// Title: Locale-Aware Formatting
// Description: Resolves named layouts and renders a time.Time with month and
//              weekday names in the requested language.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Named formats and duration formatting
// - 2026-10-15 v0.2.0: FormatSpec with locale, localized month and weekday names

package timex

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Common time layouts
const (
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601Date     = "2006-01-02"
	ISO8601Time     = "15:04:05"
	ISO8601DateTime = "2006-01-02T15:04:05"

	BusinessDate     = "2006-01-02"
	BusinessDateTime = "2006-01-02 15:04:05"
	BusinessTime     = "15:04:05"

	CompactDate     = "20060102"
	CompactDateTime = "20060102150405"
	CompactTime     = "150405"

	LogTimestamp = "2006-01-02 15:04:05.000"

	// RawLayout is the millisecond-precision layout used for text encoding
	RawLayout = "2006-01-02T15:04:05.000"
)

// fixedLayouts are the named layouts that read the same in every language
var fixedLayouts = map[string]string{
	"iso8601":          ISO8601,
	"iso8601-date":     ISO8601Date,
	"iso8601-time":     ISO8601Time,
	"iso8601-datetime": ISO8601DateTime,
	"business":         BusinessDateTime,
	"business-date":    BusinessDate,
	"business-time":    BusinessTime,
	"short-time":       "15:04",
	"compact":          CompactDateTime,
	"compact-date":     CompactDate,
	"compact-time":     CompactTime,
	"log":              LogTimestamp,
	"raw":              RawLayout,
}

// FormatSpec selects a layout and the language for month and weekday names
type FormatSpec struct {
	// Layout is a named layout ("business", "display-date", ...) or a Go
	// reference layout. Empty means "log".
	Layout string

	// Locale picks the language; language.Und means English
	Locale language.Tag
}

// ResolveLayout turns a named layout into a Go reference layout for the given
// locale. Unknown names are returned unchanged and treated as Go layouts.
func ResolveLayout(name string, tag language.Tag) string {
	if name == "" {
		return LogTimestamp
	}
	key := strings.ToLower(name)
	if layout, ok := fixedLayouts[key]; ok {
		return layout
	}
	if layout, ok := lookupLocale(tag).layouts[key]; ok {
		return layout
	}
	return name
}

// Format renders t according to spec
func (Gregorian) Format(t time.Time, spec FormatSpec) string {
	loc := lookupLocale(spec.Locale)
	layout := ResolveLayout(spec.Layout, loc.tag)

	if loc == englishLocale {
		return t.Format(layout)
	}
	return formatLocalized(t, layout, loc)
}

// formatLocalized splits the layout at month and weekday name tokens, renders
// the plain segments with time.Format and substitutes localized names.
func formatLocalized(t time.Time, layout string, loc *locale) string {
	var b strings.Builder
	start := 0

	flush := func(end int) {
		if end > start {
			b.WriteString(t.Format(layout[start:end]))
		}
	}

	for i := 0; i < len(layout); {
		name, width := nameToken(layout[i:], t, loc)
		if width == 0 {
			i++
			continue
		}
		flush(i)
		b.WriteString(name)
		i += width
		start = i
	}
	flush(len(layout))

	return b.String()
}

// nameToken recognizes the layout tokens time.Format renders as names. It
// mirrors the standard library: "Jan" and "Mon" only count when not followed
// by a lower-case letter.
func nameToken(s string, t time.Time, loc *locale) (string, int) {
	switch {
	case strings.HasPrefix(s, "January"):
		return loc.monthName(t.Month()), len("January")
	case strings.HasPrefix(s, "Jan") && !startsWithLower(s[3:]):
		return loc.monthShortName(t.Month()), len("Jan")
	case strings.HasPrefix(s, "Monday"):
		return loc.dayName(t.Weekday()), len("Monday")
	case strings.HasPrefix(s, "Mon") && !startsWithLower(s[3:]):
		return loc.dayShortName(t.Weekday()), len("Mon")
	}
	return "", 0
}

// nameKind is a bit set of the name tokens found in a layout
type nameKind uint8

const (
	fullMonth nameKind = 1 << iota
	shortMonth
	fullDay
	shortDay

	nameKinds = 1 << 4
)

// layoutNameKinds reports which name tokens the layout contains, using the
// same token rules as nameToken
func layoutNameKinds(layout string) nameKind {
	var kinds nameKind
	for i := 0; i < len(layout); i++ {
		s := layout[i:]
		switch {
		case strings.HasPrefix(s, "January"):
			kinds |= fullMonth
			i += len("January") - 1
		case strings.HasPrefix(s, "Jan") && !startsWithLower(s[3:]):
			kinds |= shortMonth
			i += len("Jan") - 1
		case strings.HasPrefix(s, "Monday"):
			kinds |= fullDay
			i += len("Monday") - 1
		case strings.HasPrefix(s, "Mon") && !startsWithLower(s[3:]):
			kinds |= shortDay
			i += len("Mon") - 1
		}
	}
	return kinds
}

func startsWithLower(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return 'a' <= c && c <= 'z'
}

// Package timex implements the civil calendar used by rawtime.
//
// Package: timex
// Title: Gregorian Calendar Adapter
// Description: Provides leap-year-aware calendar arithmetic, day-of-week and
//              day-of-year queries, locale-aware formatting and parsing, and a
//              clock source, all on top of time.Time. rawtime never does calendar
//              math itself; every addition round-trips through this package.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2026-10-15 v0.2.0: Reworked into a calendar adapter with a bounded year span,
//                       month-end clamping and locale-aware names
//
// Package Overview:
//
// # Calendar Arithmetic
//
// Gregorian adds years, months, days, hours, minutes, seconds and milliseconds to a
// time.Time. Year and month additions clamp the day to the length of the target month,
// so January 31 plus one month is the last day of February. Results outside the years
// 1 to 9999 are rejected with a VALUE_OUT_OF_RANGE error.
//
// Additions below one day are split into whole days and a remainder before they reach
// time.Time, so spans beyond the ~292 years a time.Duration can hold still work.
//
// # Formatting and Parsing
//
// Layouts are either Go reference layouts or one of the named layouts:
//
//	iso8601, iso8601-date, iso8601-time, iso8601-datetime, business, business-date, business-time,
//	display, display-date, display-time, short, short-date, short-time,
//	compact, compact-date, compact-time, log, raw
//
// Month and weekday names are rendered and accepted in English, German and French.
// Any other language tag falls back to the closest supported one via
// golang.org/x/text/language matching, which defaults to English.
//
// Usage:
//
//	cal := timex.Gregorian{}
//	t := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
//	next, err := cal.AddMonths(t, 1) // 2024-02-29
//
//	s := cal.Format(next, timex.FormatSpec{Layout: "display-date", Locale: language.German})
//	// "29. Februar 2024"
package timex

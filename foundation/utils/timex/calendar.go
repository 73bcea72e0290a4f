// File: calendar.go
// Title: Gregorian Calendar Arithmetic
// Description: Implements leap-year-aware additions with month-end clamping and a
//              bounded year span, plus day-of-week and day-of-year queries.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial business day and boundary helpers
// - 2026-10-15 v0.2.0: Calendar adapter with bounded years and unit additions

package timex

import (
	"fmt"
	"time"

	mdwerror "github.com/msto63/rawtime/foundation/core/error"
)

// Supported year span
const (
	MinYear = 1
	MaxYear = 9999
)

const (
	maxMonthSpan = (MaxYear - MinYear + 1) * 12
	maxDaySpan   = (MaxYear - MinYear + 1) * 366
)

// Gregorian is the proleptic Gregorian calendar on top of time.Time. The zero
// value is ready to use and safe for concurrent use.
type Gregorian struct{}

// IsLeapYear reports whether year has a February 29
func (Gregorian) IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month of year, or 0 for a month
// outside 1-12
func (g Gregorian) DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if g.IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// AddYears adds n years, clamping February 29 to February 28 in non-leap years
func (g Gregorian) AddYears(t time.Time, n int) (time.Time, error) {
	if n > MaxYear || n < -MaxYear {
		return time.Time{}, outOfRange("timex.AddYears", "years", n)
	}
	return g.addMonths(t, n*12, "timex.AddYears")
}

// AddMonths adds n months, clamping the day to the length of the target month
func (g Gregorian) AddMonths(t time.Time, n int) (time.Time, error) {
	return g.addMonths(t, n, "timex.AddMonths")
}

func (g Gregorian) addMonths(t time.Time, n int, op string) (time.Time, error) {
	if n > maxMonthSpan || n < -maxMonthSpan {
		return time.Time{}, outOfRange(op, "months", n)
	}

	total := t.Year()*12 + int(t.Month()) - 1 + n
	year := total / 12
	month := total%12 + 1

	if year < MinYear || year > MaxYear {
		return time.Time{}, yearOutOfRange(op, year)
	}

	day := t.Day()
	if last := g.DaysInMonth(year, month); day > last {
		day = last
	}

	return time.Date(year, time.Month(month), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()), nil
}

// AddDays adds n days
func (g Gregorian) AddDays(t time.Time, n int) (time.Time, error) {
	if n > maxDaySpan || n < -maxDaySpan {
		return time.Time{}, outOfRange("timex.AddDays", "days", n)
	}
	return checkYear("timex.AddDays", t.AddDate(0, 0, n))
}

// AddHours adds n hours
func (g Gregorian) AddHours(t time.Time, n int) (time.Time, error) {
	return addUnits(t, int64(n), time.Hour, "timex.AddHours")
}

// AddMinutes adds n minutes
func (g Gregorian) AddMinutes(t time.Time, n int) (time.Time, error) {
	return addUnits(t, int64(n), time.Minute, "timex.AddMinutes")
}

// AddSeconds adds n seconds
func (g Gregorian) AddSeconds(t time.Time, n int) (time.Time, error) {
	return addUnits(t, int64(n), time.Second, "timex.AddSeconds")
}

// AddMilliseconds adds n milliseconds
func (g Gregorian) AddMilliseconds(t time.Time, n int) (time.Time, error) {
	return addUnits(t, int64(n), time.Millisecond, "timex.AddMilliseconds")
}

// addUnits splits n units into whole days and a sub-day remainder so the
// duration handed to time.Time.Add never overflows.
func addUnits(t time.Time, n int64, unit time.Duration, op string) (time.Time, error) {
	perDay := int64(24 * time.Hour / unit)
	days := n / perDay
	rem := n % perDay

	if days > maxDaySpan || days < -maxDaySpan {
		return time.Time{}, outOfRange(op, "units", n)
	}

	result := t.AddDate(0, 0, int(days)).Add(time.Duration(rem) * unit)
	return checkYear(op, result)
}

// DayOfWeek returns the weekday of t
func (Gregorian) DayOfWeek(t time.Time) time.Weekday {
	return t.Weekday()
}

// DayOfYear returns the day of the year of t, 1 to 366
func (Gregorian) DayOfYear(t time.Time) int {
	return t.YearDay()
}

func checkYear(op string, t time.Time) (time.Time, error) {
	if y := t.Year(); y < MinYear || y > MaxYear {
		return time.Time{}, yearOutOfRange(op, y)
	}
	return t, nil
}

func yearOutOfRange(op string, year int) error {
	return mdwerror.New(fmt.Sprintf("year %d outside %d-%d", year, MinYear, MaxYear)).
		WithCode(mdwerror.CodeValueOutOfRange).
		WithOperation(op).
		WithDetail("field", "Year").
		WithDetail("value", year).
		WithDetail("min", MinYear).
		WithDetail("max", MaxYear)
}

func outOfRange(op, what string, n interface{}) error {
	return mdwerror.New(fmt.Sprintf("cannot add %v %s within years %d-%d", n, what, MinYear, MaxYear)).
		WithCode(mdwerror.CodeValueOutOfRange).
		WithOperation(op).
		WithDetail("field", "Year").
		WithDetail("value", n)
}

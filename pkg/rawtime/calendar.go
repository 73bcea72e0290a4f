// ============================================================================
// rawtime - Civil Time Value Type
// ============================================================================
//
// Package:     rawtime
// Description: Calendar and clock collaborators, Calculator
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package rawtime

import (
	"time"

	"github.com/msto63/rawtime/foundation/utils/timex"
)

// Calendar performs all calendar arithmetic and text conversion for RawTime.
// Implementations must be safe for concurrent use.
type Calendar interface {
	// DaysInMonth returns the length of month in year
	DaysInMonth(year, month int) int

	AddYears(t time.Time, n int) (time.Time, error)
	AddMonths(t time.Time, n int) (time.Time, error)
	AddDays(t time.Time, n int) (time.Time, error)
	AddHours(t time.Time, n int) (time.Time, error)
	AddMinutes(t time.Time, n int) (time.Time, error)
	AddSeconds(t time.Time, n int) (time.Time, error)
	AddMilliseconds(t time.Time, n int) (time.Time, error)

	DayOfWeek(t time.Time) time.Weekday
	DayOfYear(t time.Time) int

	Format(t time.Time, spec timex.FormatSpec) string
	Parse(text string, rules timex.ParseRules) (time.Time, error)
}

// Clock reads the current wall-clock time
type Clock interface {
	Now() time.Time
}

// Calculator binds a Calendar and a Clock. Every calendar-dependent operation
// on RawTime is available on it. A Calculator is immutable and safe for
// concurrent use.
type Calculator struct {
	cal   Calendar
	clock Clock
}

// NewCalculator returns a Calculator using cal and clock. Nil arguments fall
// back to the Gregorian calendar and the system clock.
func NewCalculator(cal Calendar, clock Clock) *Calculator {
	if cal == nil {
		cal = timex.Gregorian{}
	}
	if clock == nil {
		clock = timex.SystemClock{}
	}
	return &Calculator{cal: cal, clock: clock}
}

// std backs the package-level functions and RawTime methods
var std = NewCalculator(timex.Gregorian{}, timex.SystemClock{})

// Calendar returns the calendar used by c
func (c *Calculator) Calendar() Calendar {
	return c.cal
}

// Now returns the current wall-clock time truncated to milliseconds
func (c *Calculator) Now() (RawTime, error) {
	return c.FromTime(c.clock.Now())
}

// Today returns the current date at midnight
func (c *Calculator) Today() (RawTime, error) {
	now, err := c.Now()
	if err != nil {
		return RawTime{}, err
	}
	return now.Date(), nil
}

// Now returns the current local wall-clock time truncated to milliseconds
func Now() (RawTime, error) {
	return std.Now()
}

// Today returns the current local date at midnight
func Today() (RawTime, error) {
	return std.Today()
}

// ============================================================================
// rawtime - Civil Time Value Type
// ============================================================================
//
// Package:     rawtime
// Description: Calendar-delegated arithmetic and calendar queries
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package rawtime

import "time"

// AddYears adds n years; February 29 clamps to February 28 in common years
func (rt RawTime) AddYears(n int) (RawTime, error) { return std.AddYears(rt, n) }

// AddMonths adds n months, clamping the day to the target month's length
func (rt RawTime) AddMonths(n int) (RawTime, error) { return std.AddMonths(rt, n) }

// AddDays adds n days
func (rt RawTime) AddDays(n int) (RawTime, error) { return std.AddDays(rt, n) }

// AddHours adds n hours
func (rt RawTime) AddHours(n int) (RawTime, error) { return std.AddHours(rt, n) }

// AddMinutes adds n minutes
func (rt RawTime) AddMinutes(n int) (RawTime, error) { return std.AddMinutes(rt, n) }

// AddSeconds adds n seconds
func (rt RawTime) AddSeconds(n int) (RawTime, error) { return std.AddSeconds(rt, n) }

// AddMilliseconds adds n milliseconds
func (rt RawTime) AddMilliseconds(n int) (RawTime, error) { return std.AddMilliseconds(rt, n) }

// DayOfWeek returns the weekday of rt
func (rt RawTime) DayOfWeek() time.Weekday { return std.DayOfWeek(rt) }

// DayOfYear returns the day of the year of rt, 1 to 366
func (rt RawTime) DayOfYear() int { return std.DayOfYear(rt) }

// AddYears adds n years using c's calendar
func (c *Calculator) AddYears(rt RawTime, n int) (RawTime, error) {
	return c.addWith("rawtime.AddYears", rt, n, c.cal.AddYears)
}

// AddMonths adds n months using c's calendar
func (c *Calculator) AddMonths(rt RawTime, n int) (RawTime, error) {
	return c.addWith("rawtime.AddMonths", rt, n, c.cal.AddMonths)
}

// AddDays adds n days using c's calendar
func (c *Calculator) AddDays(rt RawTime, n int) (RawTime, error) {
	return c.addWith("rawtime.AddDays", rt, n, c.cal.AddDays)
}

// AddHours adds n hours using c's calendar
func (c *Calculator) AddHours(rt RawTime, n int) (RawTime, error) {
	return c.addWith("rawtime.AddHours", rt, n, c.cal.AddHours)
}

// AddMinutes adds n minutes using c's calendar
func (c *Calculator) AddMinutes(rt RawTime, n int) (RawTime, error) {
	return c.addWith("rawtime.AddMinutes", rt, n, c.cal.AddMinutes)
}

// AddSeconds adds n seconds using c's calendar
func (c *Calculator) AddSeconds(rt RawTime, n int) (RawTime, error) {
	return c.addWith("rawtime.AddSeconds", rt, n, c.cal.AddSeconds)
}

// AddMilliseconds adds n milliseconds using c's calendar
func (c *Calculator) AddMilliseconds(rt RawTime, n int) (RawTime, error) {
	return c.addWith("rawtime.AddMilliseconds", rt, n, c.cal.AddMilliseconds)
}

// addWith round-trips rt through the calendar and re-validates the result
func (c *Calculator) addWith(op string, rt RawTime, n int, add func(time.Time, int) (time.Time, error)) (RawTime, error) {
	if n == 0 {
		return rt, nil
	}
	t, err := add(rt.Time(), n)
	if err != nil {
		return RawTime{}, calendarError(op, err)
	}
	return c.build(op, t.Year(), int(t.Month()), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/int(time.Millisecond))
}

// DayOfWeek returns the weekday of rt using c's calendar
func (c *Calculator) DayOfWeek(rt RawTime) time.Weekday {
	return c.cal.DayOfWeek(rt.Time())
}

// DayOfYear returns the day of the year of rt using c's calendar
func (c *Calculator) DayOfYear(rt RawTime) int {
	return c.cal.DayOfYear(rt.Time())
}

// DifferenceMilliseconds returns left - right in milliseconds. The result is
// exact for any two values in years 1-9999.
func DifferenceMilliseconds(left, right RawTime) int64 {
	seconds := left.Time().Unix() - right.Time().Unix()
	return seconds*1000 + int64(left.Millisecond()-right.Millisecond())
}

// Difference returns left - right as a time.Duration. Spans beyond the
// duration limit of about 292 years fail with a range error; use
// DifferenceMilliseconds for those.
func Difference(left, right RawTime) (time.Duration, error) {
	ms := DifferenceMilliseconds(left, right)
	if ms > maxDurationMillis || ms < -maxDurationMillis {
		return 0, durationOverflow("rawtime.Difference", ms)
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// maxDurationMillis is the largest whole-millisecond span a time.Duration holds
const maxDurationMillis = int64(1<<63-1) / int64(time.Millisecond)

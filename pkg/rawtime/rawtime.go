// ============================================================================
// rawtime - Civil Time Value Type
// ============================================================================
//
// Package:     rawtime
// Description: RawTime value, construction and validation
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package rawtime

import (
	"fmt"
	"time"

	"github.com/msto63/rawtime/foundation/utils/timex"
)

// Field bounds
const (
	MinYear = timex.MinYear
	MaxYear = timex.MaxYear
)

// RawTime is an immutable civil date and time with millisecond precision.
//
// Fields are stored as offsets from their defaults so the zero value is
// 0001-01-01 00:00:00.000.
type RawTime struct {
	year   uint16 // Year - 1
	month  uint8  // Month - 1
	day    uint8  // Day - 1
	hour   uint8
	minute uint8
	second uint8
	milli  uint16
}

// Default returns 0001-01-01 00:00:00.000, the same as RawTime{}
func Default() RawTime {
	return RawTime{}
}

// New validates and builds a RawTime from all seven fields using the
// Gregorian calendar
func New(year, month, day, hour, minute, second, millisecond int) (RawTime, error) {
	return std.New(year, month, day, hour, minute, second, millisecond)
}

// FromDate builds a RawTime at midnight of the given date
func FromDate(year, month, day int) (RawTime, error) {
	return std.FromDate(year, month, day)
}

// FromDateTime builds a RawTime with a zero millisecond
func FromDateTime(year, month, day, hour, minute, second int) (RawTime, error) {
	return std.FromDateTime(year, month, day, hour, minute, second)
}

// FromTime takes the wall-clock fields of t in its own location and
// truncates nanoseconds to milliseconds
func FromTime(t time.Time) (RawTime, error) {
	return std.FromTime(t)
}

// MustNew is like New but panics on invalid fields
func MustNew(year, month, day, hour, minute, second, millisecond int) RawTime {
	rt, err := New(year, month, day, hour, minute, second, millisecond)
	if err != nil {
		panic(err)
	}
	return rt
}

// New validates and builds a RawTime, checking the day against c's calendar
func (c *Calculator) New(year, month, day, hour, minute, second, millisecond int) (RawTime, error) {
	return c.build("rawtime.New", year, month, day, hour, minute, second, millisecond)
}

// FromDate builds a RawTime at midnight of the given date
func (c *Calculator) FromDate(year, month, day int) (RawTime, error) {
	return c.build("rawtime.FromDate", year, month, day, 0, 0, 0, 0)
}

// FromDateTime builds a RawTime with a zero millisecond
func (c *Calculator) FromDateTime(year, month, day, hour, minute, second int) (RawTime, error) {
	return c.build("rawtime.FromDateTime", year, month, day, hour, minute, second, 0)
}

// FromTime takes the wall-clock fields of t and truncates to milliseconds
func (c *Calculator) FromTime(t time.Time) (RawTime, error) {
	return c.build("rawtime.FromTime", t.Year(), int(t.Month()), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/int(time.Millisecond))
}

// build checks fields in declaration order and stops at the first violation
func (c *Calculator) build(op string, year, month, day, hour, minute, second, millisecond int) (RawTime, error) {
	if year < MinYear || year > MaxYear {
		return RawTime{}, rangeError(op, FieldYear, int64(year), MinYear, MaxYear)
	}
	if month < 1 || month > 12 {
		return RawTime{}, rangeError(op, FieldMonth, int64(month), 1, 12)
	}
	if last := c.cal.DaysInMonth(year, month); day < 1 || day > last {
		return RawTime{}, rangeError(op, FieldDay, int64(day), 1, last)
	}
	if hour < 0 || hour > 23 {
		return RawTime{}, rangeError(op, FieldHour, int64(hour), 0, 23)
	}
	if minute < 0 || minute > 59 {
		return RawTime{}, rangeError(op, FieldMinute, int64(minute), 0, 59)
	}
	if second < 0 || second > 59 {
		return RawTime{}, rangeError(op, FieldSecond, int64(second), 0, 59)
	}
	if millisecond < 0 || millisecond > 999 {
		return RawTime{}, rangeError(op, FieldMillisecond, int64(millisecond), 0, 999)
	}

	return RawTime{
		year:   uint16(year - 1),
		month:  uint8(month - 1),
		day:    uint8(day - 1),
		hour:   uint8(hour),
		minute: uint8(minute),
		second: uint8(second),
		milli:  uint16(millisecond),
	}, nil
}

// Year returns the year, 1 to 9999
func (rt RawTime) Year() int { return int(rt.year) + 1 }

// Month returns the month, 1 to 12
func (rt RawTime) Month() int { return int(rt.month) + 1 }

// Day returns the day of the month, starting at 1
func (rt RawTime) Day() int { return int(rt.day) + 1 }

// Hour returns the hour, 0 to 23
func (rt RawTime) Hour() int { return int(rt.hour) }

// Minute returns the minute, 0 to 59
func (rt RawTime) Minute() int { return int(rt.minute) }

// Second returns the second, 0 to 59
func (rt RawTime) Second() int { return int(rt.second) }

// Millisecond returns the millisecond, 0 to 999
func (rt RawTime) Millisecond() int { return int(rt.milli) }

// IsZero reports whether rt is 0001-01-01 00:00:00.000
func (rt RawTime) IsZero() bool {
	return rt == RawTime{}
}

// Time returns rt as a time.Time in UTC
func (rt RawTime) Time() time.Time {
	return time.Date(rt.Year(), time.Month(rt.Month()), rt.Day(),
		rt.Hour(), rt.Minute(), rt.Second(), rt.Millisecond()*int(time.Millisecond), time.UTC)
}

// String renders rt as yyyy-MM-dd HH:mm:ss.fff
func (rt RawTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d.%03d",
		rt.Year(), rt.Month(), rt.Day(), rt.Hour(), rt.Minute(), rt.Second(), rt.Millisecond())
}

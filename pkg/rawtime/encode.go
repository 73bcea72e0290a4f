// ============================================================================
// rawtime - Civil Time Value Type
// ============================================================================
//
// Package:     rawtime
// Description: Positional decimal encoding (yyyyMMddHHmmssfff)
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package rawtime

import "math"

// Scale factors from a truncated encoding up to yyyyMMddHHmmssfff
const (
	dayScale    = 1_000_000_000
	minuteScale = 100_000
	secondScale = 1_000
)

// EncodeDay returns yyyyMMdd
func (rt RawTime) EncodeDay() int64 {
	return (int64(rt.Year())*100+int64(rt.Month()))*100 + int64(rt.Day())
}

// EncodeMinute returns yyyyMMddHHmm
func (rt RawTime) EncodeMinute() int64 {
	return rt.EncodeDay()*100*100 + int64(rt.Hour())*100 + int64(rt.Minute())
}

// EncodeSecond returns yyyyMMddHHmmss
func (rt RawTime) EncodeSecond() int64 {
	return rt.EncodeMinute()*100 + int64(rt.Second())
}

// EncodeFull returns yyyyMMddHHmmssfff
func (rt RawTime) EncodeFull() int64 {
	return rt.EncodeSecond()*1000 + int64(rt.Millisecond())
}

// FromRawLong decodes yyyyMMddHHmmssfff
func FromRawLong(v int64) (RawTime, error) {
	return std.FromRawLong(v)
}

// FromRawLongDay decodes yyyyMMdd; the time fields are zero
func FromRawLongDay(v int64) (RawTime, error) {
	return std.FromRawLongDay(v)
}

// FromRawLongMinute decodes yyyyMMddHHmm; second and millisecond are zero
func FromRawLongMinute(v int64) (RawTime, error) {
	return std.FromRawLongMinute(v)
}

// FromRawLongSecond decodes yyyyMMddHHmmss; millisecond is zero
func FromRawLongSecond(v int64) (RawTime, error) {
	return std.FromRawLongSecond(v)
}

// FromRawLong decodes yyyyMMddHHmmssfff. Each extracted field is validated
// like New, so a malformed value fails on the offending field.
func (c *Calculator) FromRawLong(v int64) (RawTime, error) {
	return c.decode("rawtime.FromRawLong", v)
}

// FromRawLongDay decodes yyyyMMdd
func (c *Calculator) FromRawLongDay(v int64) (RawTime, error) {
	return c.decodeScaled("rawtime.FromRawLongDay", v, dayScale)
}

// FromRawLongMinute decodes yyyyMMddHHmm
func (c *Calculator) FromRawLongMinute(v int64) (RawTime, error) {
	return c.decodeScaled("rawtime.FromRawLongMinute", v, minuteScale)
}

// FromRawLongSecond decodes yyyyMMddHHmmss
func (c *Calculator) FromRawLongSecond(v int64) (RawTime, error) {
	return c.decodeScaled("rawtime.FromRawLongSecond", v, secondScale)
}

func (c *Calculator) decodeScaled(op string, v, scale int64) (RawTime, error) {
	if v > math.MaxInt64/scale || v < math.MinInt64/scale {
		return RawTime{}, rangeError(op, FieldYear, v, MinYear, MaxYear)
	}
	return c.decode(op, v*scale)
}

func (c *Calculator) decode(op string, v int64) (RawTime, error) {
	millisecond := v % 1000
	v /= 1000
	second := v % 100
	v /= 100
	minute := v % 100
	v /= 100
	hour := v % 100
	v /= 100
	day := v % 100
	v /= 100
	month := v % 100
	year := v / 100

	// The remainder can exceed int on 32-bit platforms
	if year < MinYear || year > MaxYear {
		return RawTime{}, rangeError(op, FieldYear, year, MinYear, MaxYear)
	}

	return c.build(op, int(year), int(month), int(day),
		int(hour), int(minute), int(second), int(millisecond))
}

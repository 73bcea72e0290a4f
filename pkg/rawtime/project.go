// ============================================================================
// rawtime - Civil Time Value Type
// ============================================================================
//
// Package:     rawtime
// Description: Truncation and projection
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package rawtime

// Date keeps the date and zeroes the time of day
func (rt RawTime) Date() RawTime {
	return RawTime{year: rt.year, month: rt.month, day: rt.day}
}

// TimeOfDay keeps the time of day on 0001-01-01
func (rt RawTime) TimeOfDay() RawTime {
	return RawTime{hour: rt.hour, minute: rt.minute, second: rt.second, milli: rt.milli}
}

// TimeOfDaySeconds is TimeOfDay with a zero millisecond
func (rt RawTime) TimeOfDaySeconds() RawTime {
	return RawTime{hour: rt.hour, minute: rt.minute, second: rt.second}
}

// TimeOfDayMinutes is TimeOfDay with zero second and millisecond
func (rt RawTime) TimeOfDayMinutes() RawTime {
	return RawTime{hour: rt.hour, minute: rt.minute}
}

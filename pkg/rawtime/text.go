// ============================================================================
// rawtime - Civil Time Value Type
// ============================================================================
//
// Package:     rawtime
// Description: Text conversion through the calendar
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package rawtime

import (
	"github.com/msto63/rawtime/foundation/utils/timex"
)

// textLayouts are accepted by UnmarshalText; MarshalText writes the first
var textLayouts = []string{"raw", "iso8601-datetime", "business", "business-date"}

// Format renders rt with the Gregorian calendar
func (rt RawTime) Format(spec timex.FormatSpec) string {
	return std.Format(rt, spec)
}

// Parse reads a RawTime with the Gregorian calendar. Empty text is an
// argument error, text matching no layout a format error, and a parsed value
// outside the supported range a range error.
func Parse(text string, rules timex.ParseRules) (RawTime, error) {
	return std.Parse(text, rules)
}

// Format renders rt with c's calendar
func (c *Calculator) Format(rt RawTime, spec timex.FormatSpec) string {
	return c.cal.Format(rt.Time(), spec)
}

// Parse reads a RawTime with c's calendar. Wall-clock fields are taken as
// written; a zone offset in the text is ignored rather than converted.
func (c *Calculator) Parse(text string, rules timex.ParseRules) (RawTime, error) {
	t, err := c.cal.Parse(text, rules)
	if err != nil {
		return RawTime{}, parseError("rawtime.Parse", text, err)
	}
	return c.FromTime(t)
}

// MarshalText writes 2006-01-02T15:04:05.000
func (rt RawTime) MarshalText() ([]byte, error) {
	return []byte(rt.Time().Format(timex.RawLayout)), nil
}

// UnmarshalText reads the MarshalText layout and a few ISO-style variants
func (rt *RawTime) UnmarshalText(text []byte) error {
	parsed, err := std.Parse(string(text), timex.ParseRules{Layouts: textLayouts})
	if err != nil {
		return err
	}
	*rt = parsed
	return nil
}

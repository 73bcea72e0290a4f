// File: timex_test.go
// Title: Calendar Adapter Tests
// Description: Tests for calendar arithmetic, locale-aware formatting and parsing,
//              and clock sources.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation with comprehensive coverage
// - 2026-10-15 v0.2.0: Calendar adapter coverage
// - 2026-10-15 v0.2.1: Short and full localized name round trips

package timex

import (
	"testing"
	"time"

	"golang.org/x/text/language"

	mdwerror "github.com/msto63/rawtime/foundation/core/error"
)

func date(y int, m time.Month, d, h, mi, s, ms int) time.Time {
	return time.Date(y, m, d, h, mi, s, ms*int(time.Millisecond), time.UTC)
}

// ===============================
// Calendar Tests
// ===============================

func TestDaysInMonth(t *testing.T) {
	cal := Gregorian{}
	testCases := []struct {
		name     string
		year     int
		month    int
		expected int
	}{
		{"Leap February", 2024, 2, 29},
		{"Common February", 2023, 2, 28},
		{"Century non-leap", 1900, 2, 28},
		{"Quad-century leap", 2000, 2, 29},
		{"April", 2023, 4, 30},
		{"December", 9999, 12, 31},
		{"Month zero", 2023, 0, 0},
		{"Month thirteen", 2023, 13, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cal.DaysInMonth(tc.year, tc.month); got != tc.expected {
				t.Errorf("DaysInMonth(%d, %d) = %d, want %d", tc.year, tc.month, got, tc.expected)
			}
		})
	}
}

func TestAddMonthsClampsDay(t *testing.T) {
	cal := Gregorian{}
	testCases := []struct {
		name     string
		start    time.Time
		months   int
		expected time.Time
	}{
		{"Jan 31 to leap Feb", date(2024, 1, 31, 10, 0, 0, 0), 1, date(2024, 2, 29, 10, 0, 0, 0)},
		{"Jan 31 to common Feb", date(2023, 1, 31, 0, 0, 0, 0), 1, date(2023, 2, 28, 0, 0, 0, 0)},
		{"Mar 31 back to Feb", date(2024, 3, 31, 0, 0, 0, 0), -1, date(2024, 2, 29, 0, 0, 0, 0)},
		{"Across year end", date(2023, 11, 30, 0, 0, 0, 0), 3, date(2024, 2, 29, 0, 0, 0, 0)},
		{"Backwards across year", date(2024, 1, 15, 0, 0, 0, 0), -13, date(2022, 12, 15, 0, 0, 0, 0)},
		{"Keeps milliseconds", date(2024, 5, 31, 1, 2, 3, 456), 1, date(2024, 6, 30, 1, 2, 3, 456)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cal.AddMonths(tc.start, tc.months)
			if err != nil {
				t.Fatalf("AddMonths() unexpected error: %v", err)
			}
			if !got.Equal(tc.expected) {
				t.Errorf("AddMonths(%v, %d) = %v, want %v", tc.start, tc.months, got, tc.expected)
			}
		})
	}
}

func TestAddYears(t *testing.T) {
	cal := Gregorian{}

	got, err := cal.AddYears(date(2024, 2, 29, 0, 0, 0, 0), 1)
	if err != nil {
		t.Fatalf("AddYears() unexpected error: %v", err)
	}
	if !got.Equal(date(2025, 2, 28, 0, 0, 0, 0)) {
		t.Errorf("AddYears(2024-02-29, 1) = %v, want 2025-02-28", got)
	}

	got, err = cal.AddYears(date(2024, 2, 29, 0, 0, 0, 0), 4)
	if err != nil {
		t.Fatalf("AddYears() unexpected error: %v", err)
	}
	if !got.Equal(date(2028, 2, 29, 0, 0, 0, 0)) {
		t.Errorf("AddYears(2024-02-29, 4) = %v, want 2028-02-29", got)
	}
}

func TestAddUnits(t *testing.T) {
	cal := Gregorian{}
	testCases := []struct {
		name     string
		add      func(time.Time, int) (time.Time, error)
		start    time.Time
		n        int
		expected time.Time
	}{
		{"Days into leap day", cal.AddDays, date(2024, 2, 28, 0, 0, 0, 0), 1, date(2024, 2, 29, 0, 0, 0, 0)},
		{"Hours across midnight", cal.AddHours, date(2024, 2, 29, 23, 0, 0, 0), 2, date(2024, 3, 1, 1, 0, 0, 0)},
		{"Minutes roll over month", cal.AddMinutes, date(2024, 2, 29, 23, 58, 0, 0), 2, date(2024, 3, 1, 0, 0, 0, 0)},
		{"Negative minutes", cal.AddMinutes, date(2024, 3, 1, 0, 0, 0, 0), -1, date(2024, 2, 29, 23, 59, 0, 0)},
		{"Seconds roll over year", cal.AddSeconds, date(2023, 12, 31, 23, 59, 59, 0), 1, date(2024, 1, 1, 0, 0, 0, 0)},
		{"Milliseconds roll over year", cal.AddMilliseconds, date(2023, 12, 31, 23, 59, 59, 999), 1, date(2024, 1, 1, 0, 0, 0, 0)},
		{"Days and remainder", cal.AddMinutes, date(2024, 1, 1, 0, 0, 0, 0), 1441, date(2024, 1, 2, 0, 1, 0, 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.add(tc.start, tc.n)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tc.expected) {
				t.Errorf("got %v, want %v", got, tc.expected)
			}
		})
	}
}

func TestAddBeyondDurationRange(t *testing.T) {
	cal := Gregorian{}

	// Far more than a time.Duration can hold
	got, err := cal.AddHours(date(1, 1, 1, 0, 0, 0, 0), 24*365*5000)
	if err != nil {
		t.Fatalf("AddHours() unexpected error: %v", err)
	}
	if got.Year() < 4990 || got.Year() > 5001 {
		t.Errorf("AddHours() year = %d, want about 4997", got.Year())
	}
}

func TestAddOutOfRange(t *testing.T) {
	cal := Gregorian{}
	testCases := []struct {
		name string
		call func() (time.Time, error)
	}{
		{"Month past 9999", func() (time.Time, error) { return cal.AddMonths(date(9999, 12, 1, 0, 0, 0, 0), 1) }},
		{"Month before year 1", func() (time.Time, error) { return cal.AddMonths(date(1, 1, 15, 0, 0, 0, 0), -1) }},
		{"Huge years", func() (time.Time, error) { return cal.AddYears(date(2000, 1, 1, 0, 0, 0, 0), 1<<40) }},
		{"Day past 9999", func() (time.Time, error) { return cal.AddDays(date(9999, 12, 31, 0, 0, 0, 0), 1) }},
		{"Huge days", func() (time.Time, error) { return cal.AddDays(date(2000, 1, 1, 0, 0, 0, 0), 1<<40) }},
		{"Millisecond before year 1", func() (time.Time, error) { return cal.AddMilliseconds(date(1, 1, 1, 0, 0, 0, 0), -1) }},
		{"Huge hours", func() (time.Time, error) { return cal.AddHours(date(2000, 1, 1, 0, 0, 0, 0), 1<<50) }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.call()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
				t.Errorf("error code = %v, want %v", mdwerror.GetCode(err), mdwerror.CodeValueOutOfRange)
			}
			if field, _ := mdwerror.DetailOf(err, "field"); field != "Year" {
				t.Errorf("field detail = %v, want Year", field)
			}
		})
	}
}

func TestDayOfWeekAndYear(t *testing.T) {
	cal := Gregorian{}

	if got := cal.DayOfWeek(date(2024, 2, 29, 0, 0, 0, 0)); got != time.Thursday {
		t.Errorf("DayOfWeek(2024-02-29) = %v, want Thursday", got)
	}
	if got := cal.DayOfWeek(date(1, 1, 1, 0, 0, 0, 0)); got != time.Monday {
		t.Errorf("DayOfWeek(0001-01-01) = %v, want Monday", got)
	}
	if got := cal.DayOfYear(date(2024, 3, 1, 0, 0, 0, 0)); got != 61 {
		t.Errorf("DayOfYear(2024-03-01) = %d, want 61", got)
	}
	if got := cal.DayOfYear(date(2023, 12, 31, 0, 0, 0, 0)); got != 365 {
		t.Errorf("DayOfYear(2023-12-31) = %d, want 365", got)
	}
}

// ===============================
// Formatting Tests
// ===============================

func TestFormat(t *testing.T) {
	cal := Gregorian{}
	leapDay := date(2024, 2, 29, 23, 58, 7, 42)

	testCases := []struct {
		name     string
		spec     FormatSpec
		expected string
	}{
		{"Default log layout", FormatSpec{}, "2024-02-29 23:58:07.042"},
		{"Raw", FormatSpec{Layout: "raw"}, "2024-02-29T23:58:07.042"},
		{"Compact", FormatSpec{Layout: "compact"}, "20240229235807"},
		{"Business upper-case name", FormatSpec{Layout: "BUSINESS"}, "2024-02-29 23:58:07"},
		{"Go layout", FormatSpec{Layout: "02/01/06"}, "29/02/24"},
		{"English display", FormatSpec{Layout: "display-date", Locale: language.English}, "February 29, 2024"},
		{"Undetermined falls back to English", FormatSpec{Layout: "display-date"}, "February 29, 2024"},
		{"German display date", FormatSpec{Layout: "display-date", Locale: language.German}, "29. Februar 2024"},
		{"German display", FormatSpec{Layout: "display", Locale: language.German}, "29. Februar 2024 um 23:58"},
		{"German short date", FormatSpec{Layout: "short-date", Locale: language.German}, "29.02.2024"},
		{"Austrian German", FormatSpec{Layout: "display-date", Locale: language.MustParse("de-AT")}, "29. Februar 2024"},
		{"French display", FormatSpec{Layout: "display", Locale: language.French}, "29 février 2024 à 23:58"},
		{"German weekday", FormatSpec{Layout: "Monday, 02.01.2006", Locale: language.German}, "Donnerstag, 29.02.2024"},
		{"German short names", FormatSpec{Layout: "Mon 2 Jan", Locale: language.German}, "Do. 29 Feb."},
		{"Unsupported language", FormatSpec{Layout: "display-date", Locale: language.Japanese}, "February 29, 2024"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cal.Format(leapDay, tc.spec); got != tc.expected {
				t.Errorf("Format(%+v) = %q, want %q", tc.spec, got, tc.expected)
			}
		})
	}
}

func TestSupportedLocales(t *testing.T) {
	tags := SupportedLocales()
	if len(tags) != 3 || tags[0] != language.English {
		t.Errorf("SupportedLocales() = %v, want English first of three", tags)
	}
}

// ===============================
// Parsing Tests
// ===============================

func TestParse(t *testing.T) {
	cal := Gregorian{}
	testCases := []struct {
		name     string
		input    string
		rules    ParseRules
		expected time.Time
	}{
		{"Business", "2024-02-29 23:58:00", ParseRules{}, date(2024, 2, 29, 23, 58, 0, 0)},
		{"Raw with millis", "2024-02-29T23:58:00.123", ParseRules{}, date(2024, 2, 29, 23, 58, 0, 123)},
		{"Date only", "2023-01-01", ParseRules{}, date(2023, 1, 1, 0, 0, 0, 0)},
		{"Compact", "20231225153045", ParseRules{}, date(2023, 12, 25, 15, 30, 45, 0)},
		{"Surrounding blanks", "  2023-01-01  ", ParseRules{}, date(2023, 1, 1, 0, 0, 0, 0)},
		{"Explicit Go layout", "29/02/24", ParseRules{Layouts: []string{"02/01/06"}}, date(2024, 2, 29, 0, 0, 0, 0)},
		{"German display date", "29. Februar 2024", ParseRules{Layouts: []string{"display-date"}, Locale: language.German}, date(2024, 2, 29, 0, 0, 0, 0)},
		{"German March", "1. März 2024", ParseRules{Layouts: []string{"display-date"}, Locale: language.German}, date(2024, 3, 1, 0, 0, 0, 0)},
		{"French display date", "29 février 2024", ParseRules{Layouts: []string{"display-date"}, Locale: language.French}, date(2024, 2, 29, 0, 0, 0, 0)},
		{"German short date", "29.02.2024", ParseRules{Locale: language.German}, date(2024, 2, 29, 0, 0, 0, 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cal.Parse(tc.input, tc.rules)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.input, err)
			}
			if !got.Equal(tc.expected) {
				t.Errorf("Parse(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cal := Gregorian{}
	testCases := []struct {
		name  string
		input string
		rules ParseRules
		code  mdwerror.Code
	}{
		{"Empty", "", ParseRules{}, mdwerror.CodeRequiredField},
		{"Blank", "   ", ParseRules{}, mdwerror.CodeRequiredField},
		{"Garbage", "not a date", ParseRules{}, mdwerror.CodeInvalidFormat},
		{"Feb 29 in common year", "2023-02-29", ParseRules{}, mdwerror.CodeInvalidFormat},
		{"Wrong layout", "2024-02-29", ParseRules{Layouts: []string{"compact"}}, mdwerror.CodeInvalidFormat},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cal.Parse(tc.input, tc.rules)
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got nil", tc.input)
			}
			if !mdwerror.HasCode(err, tc.code) {
				t.Errorf("Parse(%q) code = %v, want %v", tc.input, mdwerror.GetCode(err), tc.code)
			}
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	cal := Gregorian{}
	original := date(2031, 10, 5, 7, 8, 9, 0)

	for _, tag := range SupportedLocales() {
		for _, layout := range []string{"display-date", "short", "business"} {
			spec := FormatSpec{Layout: layout, Locale: tag}
			text := cal.Format(original, spec)

			got, err := cal.Parse(text, ParseRules{Layouts: []string{layout}, Locale: tag})
			if err != nil {
				t.Errorf("%s/%s: Parse(%q) error: %v", tag, layout, text, err)
				continue
			}
			want := ResolveLayout(layout, tag)
			if got.Format(want) != original.Format(want) {
				t.Errorf("%s/%s: round trip %q gave %v", tag, layout, text, got)
			}
		}
	}
}

// Every month name produced by Format is read back by Parse, for short and
// full name layouts alike
func TestFormatParseRoundTripAllMonths(t *testing.T) {
	cal := Gregorian{}
	layouts := []string{
		"02 Jan 2006 15:04",
		"Mon 02 Jan 2006 15:04",
		time.RFC1123,
		"January 2, 2006 15:04",
		"Monday, 2 January 2006 15:04",
		"display",
	}

	for _, tag := range SupportedLocales() {
		for _, layout := range layouts {
			for m := time.January; m <= time.December; m++ {
				original := date(2024, m, 5, 10, 30, 0, 0)
				text := cal.Format(original, FormatSpec{Layout: layout, Locale: tag})

				got, err := cal.Parse(text, ParseRules{Layouts: []string{layout}, Locale: tag})
				if err != nil {
					t.Errorf("%s/%q: Parse(%q) error: %v", tag, layout, text, err)
					continue
				}
				if !got.Equal(original) {
					t.Errorf("%s/%q: round trip %q gave %v, want %v", tag, layout, text, got, original)
				}
			}
		}
	}
}

func TestParseShortLocalizedNames(t *testing.T) {
	cal := Gregorian{}
	testCases := []struct {
		name   string
		input  string
		layout string
		locale language.Tag
	}{
		{"German März", "05 März 2024 10:30", "02 Jan 2006 15:04", language.German},
		{"German Juni", "05 Juni 2024 10:30", "02 Jan 2006 15:04", language.German},
		{"French mars", "05 mars 2024 10:30", "02 Jan 2006 15:04", language.French},
		{"French août", "05 août 2024 10:30", "02 Jan 2006 15:04", language.French},
		{"French mardi and mars", "mar. 05 mars 2024 10:30", "Mon 02 Jan 2006 15:04", language.French},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := cal.Parse(tc.input, ParseRules{Layouts: []string{tc.layout}, Locale: tc.locale}); err != nil {
				t.Errorf("Parse(%q) unexpected error: %v", tc.input, err)
			}
		})
	}
}

func TestLayoutNameKinds(t *testing.T) {
	testCases := []struct {
		layout   string
		expected nameKind
	}{
		{"2006-01-02 15:04:05", 0},
		{"January 2, 2006", fullMonth},
		{"02 Jan 2006", shortMonth},
		{"Monday", fullDay},
		{time.RFC1123, shortDay | shortMonth},
		{"Monday, January 2", fullDay | fullMonth},
		{"Janet", 0},
	}

	for _, tc := range testCases {
		if got := layoutNameKinds(tc.layout); got != tc.expected {
			t.Errorf("layoutNameKinds(%q) = %04b, want %04b", tc.layout, got, tc.expected)
		}
	}
}

// ===============================
// Clock Tests
// ===============================

func TestClocks(t *testing.T) {
	fixed := FixedClock{T: date(2024, 2, 29, 0, 0, 0, 0)}
	if !fixed.Now().Equal(fixed.T) {
		t.Errorf("FixedClock.Now() = %v, want %v", fixed.Now(), fixed.T)
	}

	before := time.Now()
	now := SystemClock{}.Now()
	if now.Before(before) {
		t.Errorf("SystemClock.Now() = %v, earlier than %v", now, before)
	}
}

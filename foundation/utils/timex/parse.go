// File: parse.go
// Title: Locale-Aware Parsing
// Description: Parses text against an ordered list of layouts, accepting
//              localized month and weekday names.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Multi-format parsing
// - 2026-10-15 v0.2.0: ParseRules with locale, coded errors

package timex

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	mdwerror "github.com/msto63/rawtime/foundation/core/error"
)

// ParseRules lists the layouts to try, in order, and the language of the input
type ParseRules struct {
	// Layouts are named or Go reference layouts. Empty means DefaultLayouts.
	Layouts []string

	// Locale is the language of month and weekday names in the input
	Locale language.Tag
}

// DefaultLayouts is the layout list tried when ParseRules.Layouts is empty
var DefaultLayouts = []string{
	"raw",
	"iso8601",
	"iso8601-datetime",
	"business",
	"business-date",
	"log",
	"short",
	"short-date",
	"display",
	"display-date",
	"compact",
	"compact-date",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC822Z,
	time.RFC850,
}

// Parse parses text with the first layout in rules that matches. Blank text
// fails with REQUIRED_FIELD, text no layout accepts with INVALID_FORMAT.
func (Gregorian) Parse(text string, rules ParseRules) (time.Time, error) {
	value := strings.TrimSpace(text)
	if value == "" {
		return time.Time{}, mdwerror.New("time text is empty").
			WithCode(mdwerror.CodeRequiredField).
			WithOperation("timex.Parse")
	}

	loc := lookupLocale(rules.Locale)

	layouts := rules.Layouts
	if len(layouts) == 0 {
		layouts = DefaultLayouts
	}

	tried := make([]string, 0, len(layouts))
	for _, name := range layouts {
		layout := ResolveLayout(name, loc.tag)
		if t, err := time.Parse(layout, loc.toEnglishFor(layout, value)); err == nil {
			return t, nil
		}
		tried = append(tried, layout)
	}

	return time.Time{}, mdwerror.New(fmt.Sprintf("unable to parse time string: %s", text)).
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation("timex.Parse").
		WithDetail("text", text).
		WithDetail("layouts", tried)
}

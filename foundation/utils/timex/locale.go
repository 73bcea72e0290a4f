// File: locale.go
// Title: Locale Tables
// Description: Month and weekday names plus locale-specific named layouts for the
//              supported languages, selected with golang.org/x/text/language.
// Author: msto63
// Version: v0.2.1
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial locale tables for en, de and fr
// - 2026-10-15 v0.2.1: Parse translation follows the layout's name tokens

package timex

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// locale holds the names and display layouts of one language
type locale struct {
	tag         language.Tag
	months      [12]string
	monthsShort [12]string
	days        [7]string
	daysShort   [7]string
	layouts     map[string]string

	// toEnglish maps localized names back to the names time.Parse understands,
	// one replacer per combination of name tokens a layout can contain
	toEnglish [nameKinds]*strings.Replacer
}

var englishLocale = &locale{
	tag: language.English,
	months: [12]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	monthsShort: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	days:      [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	daysShort: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	layouts: map[string]string{
		"display":      "January 2, 2006 at 3:04 PM",
		"display-date": "January 2, 2006",
		"display-time": "3:04 PM",
		"short":        "01/02/2006 15:04",
		"short-date":   "01/02/2006",
	},
}

var germanLocale = &locale{
	tag: language.German,
	months: [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember"},
	monthsShort: [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni",
		"Juli", "Aug.", "Sep.", "Okt.", "Nov.", "Dez."},
	days:      [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
	daysShort: [7]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
	layouts: map[string]string{
		"display":      "2. January 2006 um 15:04",
		"display-date": "2. January 2006",
		"display-time": "15:04",
		"short":        "02.01.2006 15:04",
		"short-date":   "02.01.2006",
	},
}

var frenchLocale = &locale{
	tag: language.French,
	months: [12]string{"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	monthsShort: [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin",
		"juil.", "août", "sept.", "oct.", "nov.", "déc."},
	days:      [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
	daysShort: [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
	layouts: map[string]string{
		"display":      "2 January 2006 à 15:04",
		"display-date": "2 January 2006",
		"display-time": "15:04",
		"short":        "02/01/2006 15:04",
		"short-date":   "02/01/2006",
	},
}

// supportedLocales is ordered by preference; the first entry is the fallback
var supportedLocales = []*locale{englishLocale, germanLocale, frenchLocale}

var localeMatcher = func() language.Matcher {
	tags := make([]language.Tag, len(supportedLocales))
	for i, l := range supportedLocales {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

func init() {
	for _, l := range supportedLocales {
		if l == englishLocale {
			continue
		}
		for kinds := nameKind(1); kinds < nameKinds; kinds++ {
			l.toEnglish[kinds] = buildReplacer(l, kinds)
		}
	}
}

// buildReplacer maps the localized names of the given kinds to English.
// Longer names come first, so at any position the longest localized name
// wins ("mars" over "mar.", "Montag" over "Mo.").
func buildReplacer(l *locale, kinds nameKind) *strings.Replacer {
	type pair struct{ from, to string }
	var pairs []pair
	add := func(kind nameKind, from, to []string) {
		if kinds&kind == 0 {
			return
		}
		for i := range from {
			pairs = append(pairs, pair{from[i], to[i]})
		}
	}
	add(fullMonth, l.months[:], englishLocale.months[:])
	add(shortMonth, l.monthsShort[:], englishLocale.monthsShort[:])
	add(fullDay, l.days[:], englishLocale.days[:])
	add(shortDay, l.daysShort[:], englishLocale.daysShort[:])

	sort.SliceStable(pairs, func(i, j int) bool {
		return len(pairs[i].from) > len(pairs[j].from)
	})

	oldnew := make([]string, 0, 2*len(pairs))
	for _, p := range pairs {
		oldnew = append(oldnew, p.from, p.to)
	}
	return strings.NewReplacer(oldnew...)
}

// toEnglishFor rewrites localized names in value into the English names the
// layout expects. Layouts without name tokens leave value unchanged.
func (l *locale) toEnglishFor(layout, value string) string {
	r := l.toEnglish[layoutNameKinds(layout)]
	if r == nil {
		return value
	}
	return r.Replace(value)
}

// lookupLocale returns the supported locale closest to tag
func lookupLocale(tag language.Tag) *locale {
	_, idx, _ := localeMatcher.Match(tag)
	if idx < 0 || idx >= len(supportedLocales) {
		return englishLocale
	}
	return supportedLocales[idx]
}

// SupportedLocales lists the language tags with localized names
func SupportedLocales() []language.Tag {
	tags := make([]language.Tag, len(supportedLocales))
	for i, l := range supportedLocales {
		tags[i] = l.tag
	}
	return tags
}

func (l *locale) monthName(m time.Month) string {
	return l.months[m-1]
}

func (l *locale) monthShortName(m time.Month) string {
	return l.monthsShort[m-1]
}

func (l *locale) dayName(d time.Weekday) string {
	return l.days[d]
}

func (l *locale) dayShortName(d time.Weekday) string {
	return l.daysShort[d]
}

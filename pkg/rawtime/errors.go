// ============================================================================
// rawtime - Civil Time Value Type
// ============================================================================
//
// Package:     rawtime
// Description: Error constructors and classification helpers
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package rawtime

import (
	"fmt"

	mdwerror "github.com/msto63/rawtime/foundation/core/error"
)

// Field names reported by range errors
const (
	FieldYear        = "Year"
	FieldMonth       = "Month"
	FieldDay         = "Day"
	FieldHour        = "Hour"
	FieldMinute      = "Minute"
	FieldSecond      = "Second"
	FieldMillisecond = "Millisecond"
)

func rangeError(op, field string, value int64, min, max int) error {
	return mdwerror.New(fmt.Sprintf("%s %d out of range [%d, %d]", field, value, min, max)).
		WithCode(mdwerror.CodeValueOutOfRange).
		WithOperation(op).
		WithDetails(map[string]interface{}{
			"field": field,
			"value": value,
			"min":   min,
			"max":   max,
		})
}

// durationOverflow reports a span that does not fit a time.Duration
func durationOverflow(op string, millis int64) error {
	return mdwerror.New(fmt.Sprintf("difference of %d ms exceeds the time.Duration range", millis)).
		WithCode(mdwerror.CodeValueOutOfRange).
		WithOperation(op).
		WithDetails(map[string]interface{}{
			"value": millis,
			"max":   maxDurationMillis,
		})
}

func argumentError(op, message string) error {
	return mdwerror.New(message).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation(op)
}

// calendarError turns a calendar failure into a range error. Errors that are
// already range errors keep their details.
func calendarError(op string, err error) error {
	wrapped := mdwerror.Wrap(err, op).
		WithCode(mdwerror.CodeValueOutOfRange).
		WithOperation(op)
	if _, ok := mdwerror.DetailOf(err, "field"); !ok {
		wrapped = wrapped.WithDetail("field", FieldYear)
	}
	return wrapped
}

// parseError keeps argument errors for empty text and reports every other
// failure as a format error.
func parseError(op, text string, err error) error {
	if mdwerror.HasCode(err, mdwerror.CodeRequiredField) {
		return mdwerror.Wrap(err, op).WithOperation(op)
	}
	return mdwerror.Wrap(err, op).
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation(op).
		WithDetail("text", text)
}

// IsRangeError reports whether err is a field or calendar range violation
func IsRangeError(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange)
}

// IsFormatError reports whether err is a text that matched no layout
func IsFormatError(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidFormat)
}

// IsArgumentError reports whether err is a missing or unusable argument, such
// as empty text or an unknown rounding policy
func IsArgumentError(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeRequiredField) ||
		mdwerror.HasCode(err, mdwerror.CodeInvalidInput)
}

// RangeField returns the field named by a range error, or "" for other errors
func RangeField(err error) string {
	if !IsRangeError(err) {
		return ""
	}
	if v, ok := mdwerror.DetailOf(err, "field"); ok {
		if field, ok := v.(string); ok {
			return field
		}
	}
	return ""
}

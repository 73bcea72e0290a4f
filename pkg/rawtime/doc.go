// ============================================================================
// rawtime - Civil Time Value Type
// ============================================================================
//
// Package:     rawtime
// Description: Immutable civil date/time value without timezone
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

// Package rawtime provides RawTime, an immutable point in civil time with
// millisecond precision and no timezone, locale or clock attached.
//
// A RawTime always holds a valid date and time between 0001-01-01 00:00:00.000
// and 9999-12-31 23:59:59.999. Its zero value is 0001-01-01 00:00:00.000.
// Values are comparable with == and can be used as map keys.
//
// # Integer encodings
//
// EncodeDay, EncodeMinute, EncodeSecond and EncodeFull pack the fields as
// decimal digits (yyyyMMdd up to yyyyMMddHHmmssfff). The results sort like the
// values they encode, and FromRawLong and its siblings turn them back into a
// RawTime. Ordering and equality use a separate bit-packed key that is not part
// of the API.
//
// # Calendar
//
// RawTime never does calendar arithmetic itself. Additions, rounding, weekday
// and day-of-year queries, and text conversion go through a Calendar. The
// package-level functions and RawTime methods use the Gregorian calendar from
// timex; a Calculator binds a different Calendar and Clock.
//
// # Errors
//
// Invalid fields fail with a range error naming the field (IsRangeError,
// RangeField). Unparseable text fails with a format error (IsFormatError), and
// empty text with an argument error (IsArgumentError).
package rawtime

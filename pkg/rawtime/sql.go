// ============================================================================
// rawtime - Civil Time Value Type
// ============================================================================
//
// Package:     rawtime
// Description: database/sql integration using the full decimal encoding
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package rawtime

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Value stores rt as its yyyyMMddHHmmssfff integer
func (rt RawTime) Value() (driver.Value, error) {
	return rt.EncodeFull(), nil
}

// Scan reads an integer encoding, a decimal string, a text timestamp or a
// time.Time. Integers are always full precision; decimal strings of 8, 12 or
// 14 digits are day, minute or second encodings. NULL is rejected; use
// NullRawTime for nullable columns.
func (rt *RawTime) Scan(src interface{}) error {
	parsed, err := scanValue(src)
	if err != nil {
		return err
	}
	*rt = parsed
	return nil
}

func scanValue(src interface{}) (RawTime, error) {
	switch v := src.(type) {
	case int64:
		return FromRawLong(v)
	case []byte:
		return scanText(string(v))
	case string:
		return scanText(v)
	case time.Time:
		return FromTime(v)
	case nil:
		return RawTime{}, argumentError("rawtime.Scan", "cannot scan NULL into RawTime")
	default:
		return RawTime{}, argumentError("rawtime.Scan", fmt.Sprintf("cannot scan %T into RawTime", src))
	}
}

// textDecoders picks the decoder for a decimal text column by its length:
// yyyyMMdd, yyyyMMddHHmm and yyyyMMddHHmmss. Any other length is a full
// yyyyMMddHHmmssfff value.
var textDecoders = map[int]func(int64) (RawTime, error){
	8:  FromRawLongDay,
	12: FromRawLongMinute,
	14: FromRawLongSecond,
}

func scanText(s string) (RawTime, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return scanDigits(len(s), n)
	}
	var rt RawTime
	err := rt.UnmarshalText([]byte(s))
	return rt, err
}

// scanDigits decodes by length first. A full value of years 1-9 has as many
// digits as a shorter encoding, so a failed short decode falls back to full.
func scanDigits(digits int, n int64) (RawTime, error) {
	decode, ok := textDecoders[digits]
	if !ok {
		return FromRawLong(n)
	}
	rt, err := decode(n)
	if err != nil {
		if full, fullErr := FromRawLong(n); fullErr == nil {
			return full, nil
		}
	}
	return rt, err
}

// NullRawTime is a RawTime that may be absent. Two absent values are equal;
// an absent value never equals a present one.
type NullRawTime struct {
	RawTime RawTime
	Valid   bool
}

// Equal compares presence first and then the values
func (n NullRawTime) Equal(o NullRawTime) bool {
	if n.Valid != o.Valid {
		return false
	}
	return !n.Valid || n.RawTime.Equal(o.RawTime)
}

// Value implements driver.Valuer
func (n NullRawTime) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.RawTime.Value()
}

// Scan implements sql.Scanner
func (n *NullRawTime) Scan(src interface{}) error {
	if src == nil {
		n.RawTime, n.Valid = RawTime{}, false
		return nil
	}
	rt, err := scanValue(src)
	if err != nil {
		return err
	}
	n.RawTime, n.Valid = rt, true
	return nil
}

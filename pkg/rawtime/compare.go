// ============================================================================
// rawtime - Civil Time Value Type
// ============================================================================
//
// Package:     rawtime
// Description: Bit-packed ordering key, comparison, hashing, min/max
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package rawtime

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Bit widths of the ordering key, most significant field first. Each width
// covers the field's maximum value: 9999, 12, 31, 23, 59, 59, 999.
const (
	yearBits   = 14
	monthBits  = 4
	dayBits    = 6
	hourBits   = 5
	minuteBits = 6
	secondBits = 6
	milliBits  = 10

	fastKeyBits = yearBits + monthBits + dayBits + hourBits + minuteBits + secondBits + milliBits
)

// The key must leave the sign bit of an int64 clear.
const _ = uint(63 - fastKeyBits)

// fastKey packs the fields most significant first, so numeric order of keys
// equals lexicographic order of (Year, Month, Day, Hour, Minute, Second,
// Millisecond). It is an ordering key only and unrelated to EncodeFull.
func (rt RawTime) fastKey() int64 {
	k := int64(rt.Year())
	k = k<<monthBits | int64(rt.Month())
	k = k<<dayBits | int64(rt.Day())
	k = k<<hourBits | int64(rt.Hour())
	k = k<<minuteBits | int64(rt.Minute())
	k = k<<secondBits | int64(rt.Second())
	k = k<<milliBits | int64(rt.Millisecond())
	return k
}

// Compare returns -1, 0 or +1 as rt is before, equal to or after o
func (rt RawTime) Compare(o RawTime) int {
	a, b := rt.fastKey(), o.fastKey()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Compare returns -1, 0 or +1 as a is before, equal to or after b. It fits
// slices.SortFunc.
func Compare(a, b RawTime) int {
	return a.Compare(b)
}

// Equal reports whether rt and o hold the same seven fields
func (rt RawTime) Equal(o RawTime) bool {
	return rt.fastKey() == o.fastKey()
}

// Before reports whether rt is earlier than o
func (rt RawTime) Before(o RawTime) bool {
	return rt.fastKey() < o.fastKey()
}

// After reports whether rt is later than o
func (rt RawTime) After(o RawTime) bool {
	return rt.fastKey() > o.fastKey()
}

// BeforeOrEqual reports whether rt is not later than o
func (rt RawTime) BeforeOrEqual(o RawTime) bool {
	return rt.fastKey() <= o.fastKey()
}

// AfterOrEqual reports whether rt is not earlier than o
func (rt RawTime) AfterOrEqual(o RawTime) bool {
	return rt.fastKey() >= o.fastKey()
}

// Hash combines all seven fields; equal values hash equal
func (rt RawTime) Hash() uint64 {
	var buf [9]byte
	binary.BigEndian.PutUint16(buf[0:], uint16(rt.Year()))
	buf[2] = byte(rt.Month())
	buf[3] = byte(rt.Day())
	buf[4] = byte(rt.Hour())
	buf[5] = byte(rt.Minute())
	buf[6] = byte(rt.Second())
	binary.BigEndian.PutUint16(buf[7:], uint16(rt.Millisecond()))
	return xxhash.Sum64(buf[:])
}

// Min returns the earlier of a and b, or a when they are equal
func Min(a, b RawTime) RawTime {
	if b.Before(a) {
		return b
	}
	return a
}

// Max returns the later of a and b, or a when they are equal
func Max(a, b RawTime) RawTime {
	if b.After(a) {
		return b
	}
	return a
}

// ============================================================================
// rawtime - Civil Time Value Type
// ============================================================================
//
// Package:     rawtime
// Description: Minute rounding policies
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package rawtime

import (
	"fmt"
	"strings"

	mdwerror "github.com/msto63/rawtime/foundation/core/error"
)

// RoundingPolicy selects how RoundMinute picks a multiple of the interval
type RoundingPolicy int

const (
	// RoundMath adds half the interval (integer division) and truncates to a
	// multiple. With an even interval an exact half rounds up; with an odd
	// interval there is no exact half and minute%interval <= interval/2 rounds
	// down.
	RoundMath RoundingPolicy = iota

	// RoundFloor truncates to the previous multiple
	RoundFloor

	// RoundCeiling advances to the next multiple
	RoundCeiling
)

// String returns the lower-case policy name
func (p RoundingPolicy) String() string {
	switch p {
	case RoundMath:
		return "math"
	case RoundFloor:
		return "floor"
	case RoundCeiling:
		return "ceiling"
	default:
		return fmt.Sprintf("RoundingPolicy(%d)", int(p))
	}
}

// ParseRoundingPolicy accepts math, floor or ceiling in any case
func ParseRoundingPolicy(s string) (RoundingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "math", "nearest":
		return RoundMath, nil
	case "floor", "down":
		return RoundFloor, nil
	case "ceiling", "ceil", "up":
		return RoundCeiling, nil
	default:
		return 0, mdwerror.New(fmt.Sprintf("unknown rounding policy %q", s)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("rawtime.ParseRoundingPolicy").
			WithDetail("policy", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (p RoundingPolicy) MarshalText() ([]byte, error) {
	if p < RoundMath || p > RoundCeiling {
		return nil, argumentError("rawtime.RoundingPolicy.MarshalText", p.String())
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *RoundingPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseRoundingPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// RoundMinute rounds the minute to a multiple of interval, clamped to
// [1, 60]. A minute that already is a multiple is returned unchanged. The
// adjustment goes through AddMinutes, so it can carry into the next hour, day,
// month or year. Second and millisecond are left alone.
func (rt RawTime) RoundMinute(interval int, policy RoundingPolicy) (RawTime, error) {
	return std.RoundMinute(rt, interval, policy)
}

// RoundMinute rounds rt using c's calendar for the carry
func (c *Calculator) RoundMinute(rt RawTime, interval int, policy RoundingPolicy) (RawTime, error) {
	if interval < 1 {
		interval = 1
	} else if interval > 60 {
		interval = 60
	}

	minute := rt.Minute()
	if minute%interval == 0 {
		return rt, nil
	}

	var rounded int
	switch policy {
	case RoundMath:
		rounded = minute + interval/2
		rounded -= rounded % interval
	case RoundFloor:
		rounded = minute - minute%interval
	case RoundCeiling:
		rounded = minute + (interval - minute%interval)
	default:
		return RawTime{}, argumentError("rawtime.RoundMinute", fmt.Sprintf("unknown rounding policy %d", int(policy)))
	}

	if rounded == minute {
		return rt, nil
	}
	return c.addWith("rawtime.RoundMinute", rt, rounded-minute, c.cal.AddMinutes)
}

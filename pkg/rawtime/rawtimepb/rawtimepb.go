// ============================================================================
// rawtime - Civil Time Value Type
// ============================================================================
//
// Package:     rawtimepb
// Description: Conversion between RawTime and protobuf Timestamp
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

// Package rawtimepb carries RawTime values in protobuf messages as
// google.protobuf.Timestamp. The civil fields are written as if they were
// UTC, so a round trip preserves every field regardless of the local zone.
package rawtimepb

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	mdwerror "github.com/msto63/rawtime/foundation/core/error"
	"github.com/msto63/rawtime/pkg/rawtime"
)

// ToTimestamp converts rt, reading its fields as UTC
func ToTimestamp(rt rawtime.RawTime) *timestamppb.Timestamp {
	return timestamppb.New(rt.Time())
}

// FromTimestamp converts ts back to a RawTime. Sub-millisecond precision is
// dropped. A nil or malformed timestamp is an argument error; a timestamp
// outside years 1 to 9999 is a range error.
func FromTimestamp(ts *timestamppb.Timestamp) (rawtime.RawTime, error) {
	if ts == nil {
		return rawtime.RawTime{}, mdwerror.New("timestamp is nil").
			WithCode(mdwerror.CodeRequiredField).
			WithOperation("rawtimepb.FromTimestamp")
	}
	if err := ts.CheckValid(); err != nil {
		return rawtime.RawTime{}, mdwerror.Wrap(err, "invalid timestamp").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("rawtimepb.FromTimestamp")
	}
	return rawtime.FromTime(ts.AsTime().Truncate(time.Millisecond))
}

// ============================================================================
// rawtime - Civil Time Value Type
// ============================================================================
//
// Package:     rawtimepb
// Description: Tests for protobuf Timestamp conversion
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package rawtimepb

import (
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/msto63/rawtime/pkg/rawtime"
)

func TestRoundTrip(t *testing.T) {
	values := []rawtime.RawTime{
		rawtime.Default(),
		rawtime.MustNew(2024, 2, 29, 23, 58, 7, 42),
		rawtime.MustNew(9999, 12, 31, 23, 59, 59, 999),
	}

	for _, rt := range values {
		t.Run(rt.String(), func(t *testing.T) {
			ts := ToTimestamp(rt)

			// Survive the wire as well as the in-memory conversion
			data, err := proto.Marshal(ts)
			if err != nil {
				t.Fatalf("proto.Marshal: %v", err)
			}
			var decoded timestamppb.Timestamp
			if err := proto.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("proto.Unmarshal: %v", err)
			}

			back, err := FromTimestamp(&decoded)
			if err != nil {
				t.Fatalf("FromTimestamp: %v", err)
			}
			if back != rt {
				t.Errorf("round trip = %s, want %s", back, rt)
			}
		})
	}
}

func TestToTimestampIsUTC(t *testing.T) {
	ts := ToTimestamp(rawtime.MustNew(1970, 1, 1, 0, 0, 1, 500))
	if ts.GetSeconds() != 1 || ts.GetNanos() != 500_000_000 {
		t.Errorf("ToTimestamp = %d s %d ns, want 1 s 500000000 ns", ts.GetSeconds(), ts.GetNanos())
	}
}

func TestFromTimestamp(t *testing.T) {
	got, err := FromTimestamp(&timestamppb.Timestamp{Seconds: 1, Nanos: 999_999_999})
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "1970-01-01 00:00:01.999" {
		t.Errorf("FromTimestamp = %s, want nanoseconds truncated", got)
	}

	testCases := []struct {
		name  string
		ts    *timestamppb.Timestamp
		check func(error) bool
	}{
		{"nil", nil, rawtime.IsArgumentError},
		{"negative nanos", &timestamppb.Timestamp{Seconds: 0, Nanos: -1}, rawtime.IsArgumentError},
		{"before year 1", &timestamppb.Timestamp{Seconds: -62135596801}, rawtime.IsArgumentError},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromTimestamp(tt.ts)
			if err == nil || !tt.check(err) {
				t.Errorf("FromTimestamp error = %v has the wrong kind", err)
			}
		})
	}
}

// File: clock.go
// Title: Clock Sources
// Description: Wall-clock readers: the system clock and a fixed clock for tests.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Now/Today helpers
// - 2026-10-15 v0.2.0: Clock implementations

package timex

import "time"

// SystemClock reads the local wall clock
type SystemClock struct{}

// Now returns the current local time
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns T
type FixedClock struct {
	T time.Time
}

// Now returns the fixed time
func (c FixedClock) Now() time.Time {
	return c.T
}

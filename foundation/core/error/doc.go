// Package error provides coded, structured errors for the rawtime module.
//
// Package: error
// Title: Structured Error Handling
// Description: Implements a small error type carrying a code, the failing operation
//              and key/value details. The rawtime value type reports its three failure
//              kinds (range, format, argument) through it so callers can branch on
//              codes instead of parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-15 v0.2.0: Reduced to the codes used by rawtime, errors.Is/As support
//
// Usage:
//
//	err := error.New("month out of range").
//		WithCode(error.CodeValueOutOfRange).
//		WithOperation("rawtime.New").
//		WithDetail("field", "Month")
//
//	if error.HasCode(err, error.CodeValueOutOfRange) {
//		field, _ := error.DetailOf(err, "field")
//		_ = field
//	}
package error

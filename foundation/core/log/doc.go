// Package log provides structured logging for the rawtime tools.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with contextual fields, JSON, text,
//              logfmt and colored console output, and integration with the
//              coded errors of foundation/core/error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-15 v0.2.0: Synchronous writer only, console colors via lipgloss, audit level removed
//
// Usage:
//   import mdwlog "github.com/msto63/rawtime/foundation/core/log"
//
//   logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelDebug, Format: mdwlog.FormatLogfmt}).
//     WithFields(mdwlog.String("command", "decode")).
//     WithCorrelationID(uuid.NewString())
//
//   logger.Info("decoded value", mdwlog.Int64("raw", 20240229235807042))
//   logger.LogError(err)
//
//   timer := logger.StartTimer("round")
//   // ... work
//   timer.Stop()
package log

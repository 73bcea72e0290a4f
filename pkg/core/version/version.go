// ============================================================================
// rawtime - Civil Time Value Type
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants
const (
	// Library is the version of pkg/rawtime
	Library = "1.0.0"

	// CLI is the version of the rawtime command
	CLI = "1.0.0"

	// Encoding identifies the yyyyMMddHHmmssfff layout; bumped only if the
	// stored integer format ever changes
	Encoding = "1"
)

// Set at build time with -ldflags "-X .../version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cli", "rawtime":
		return CLI
	case "encoding":
		return Encoding
	default:
		return Library
	}
}

// String returns a one-line summary for version output
func String() string {
	return fmt.Sprintf("rawtime %s (library %s, encoding v%s, commit %s, built %s)",
		CLI, Library, Encoding, Commit, BuildDate)
}

// ============================================================================
// wandler - Naming Convention Converter
// ============================================================================
//
// Package:     version
// Description: Version information for the binary and its components
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the wandler components
const (
	// Release version of the binary
	Release = "1.0.0"

	// Component versions
	Catalog  = "1.0.0"
	Protocol = "1.0.0"
	TUI      = "1.0.0"
)

// Build metadata, set via -ldflags at release time
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a component name
func ComponentVersion(name string) string {
	switch name {
	case "catalog":
		return Catalog
	case "protocol":
		return Protocol
	case "tui":
		return TUI
	default:
		return Release
	}
}

// String returns the full version line printed by `wandler version`
func String() string {
	return fmt.Sprintf("wandler %s (commit %s, built %s, %s %s/%s)",
		Release, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

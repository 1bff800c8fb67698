// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to decide how loudly an error is logged
//              and whether a host should surface it as a blocking message.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity mapping for transform engine codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a user-correctable error (bad regex, bad escape)
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects one operation only
	SeverityMedium

	// SeverityHigh indicates a failure of a host surface (config, server start)
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// severityFromCode is the severity WithCode assigns to errors still at
// the default medium level
func severityFromCode(code Code) Severity {
	switch code {
	case CodeEnvironmentError:
		return SeverityCritical

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeServiceStartup:
		return SeverityHigh

	case CodeInvalidPattern, CodeDecodeFailed, CodeUnknownTransform,
		CodeNothingToUndo, CodeInvalidInput:
		return SeverityLow

	default:
		return SeverityMedium
	}
}

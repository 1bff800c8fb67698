// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across wandler. Codes classify
//              failures so hosts can map them to user messages, HTTP status
//              codes and websocket error payloads.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Transform engine codes, removed service/database codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Transform engine
	CodeInvalidPattern   Code = "INVALID_PATTERN"
	CodeDecodeFailed     Code = "DECODE_FAILED"
	CodeUnknownTransform Code = "UNKNOWN_TRANSFORM"
	CodeNothingToUndo    Code = "NOTHING_TO_UNDO"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeMissingConfig    Code = "MISSING_CONFIG"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"

	// Host surfaces
	CodeClipboard      Code = "CLIPBOARD"
	CodeProtocolError  Code = "PROTOCOL_ERROR"
	CodeServiceStartup Code = "SERVICE_STARTUP"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidPattern, CodeDecodeFailed, CodeUnknownTransform, CodeNothingToUndo:
		return "transform"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError:
		return "configuration"
	case CodeClipboard, CodeProtocolError, CodeServiceStartup:
		return "host"
	default:
		return "generic"
	}
}

// HTTPStatus returns the appropriate HTTP status code for this error code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeUnknownTransform:
		return 404
	case CodeInvalidInput, CodeInvalidPattern, CodeDecodeFailed, CodeProtocolError:
		return 400
	case CodeNothingToUndo:
		return 409
	default:
		return 500
	}
}

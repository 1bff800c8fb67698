// ============================================================================
// wandler - Naming Convention Converter
// ============================================================================
//
// Package:     transform
// Description: Error classification helpers for transform failures
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package transform

import (
	mdwerror "github.com/msto63/wandler/foundation/core/error"
)

// IsInvalidPattern reports whether err comes from a regex that failed to
// compile or a replacement with a bad group reference.
func IsInvalidPattern(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidPattern)
}

// IsDecodeFailed reports whether err comes from a malformed URL escape.
func IsDecodeFailed(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeDecodeFailed)
}

// IsUnknownTransform reports whether err names an unregistered transform.
func IsUnknownTransform(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeUnknownTransform)
}

// NewUnknownTransformError returns the UNKNOWN_TRANSFORM error for id.
func NewUnknownTransformError(id ID) error {
	return unknownTransform(string(id))
}

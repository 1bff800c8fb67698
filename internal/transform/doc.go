// ============================================================================
// wandler - Naming Convention Converter
// ============================================================================
//
// Package:     transform
// Description: Package documentation
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package transform provides the catalog of text transforms: delimiter and
// naming-convention conversion, case mapping, SQL list building, URL
// coding and regular expression replacement.
//
// Every transform is a pure function of its input. All of them are total
// except url-decode (malformed escapes) and regex-replace (bad pattern or
// replacement), which return *mdwerror.Error values with the codes
// DECODE_FAILED and INVALID_PATTERN.
//
// Transforms are addressed by a stable ID:
//
//	out, err := transform.Default().Apply(transform.IDTitleCase, "a tale of two cities", transform.Args{})
//	// out == "A Tale of Two Cities"
//
//	out, err = transform.Default().Apply(transform.IDRegexReplace, "abc123",
//		transform.Args{Pattern: "[0-9]+", Replacement: "#"})
//	// out == "abc#"
//
// Absent input (as opposed to "") is modelled by Catalog.ApplyOptional:
// the camelCase and PascalCase entries return it unchanged, every other
// entry maps it to "".
package transform

// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements string operations that extend the Go standard
//              library: blank checks, line-break aware splitting and
//              Unicode-safe truncation.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-19 v0.3.0: SplitLineBreaks covers every Unicode line terminator

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsLineBreak reports whether r terminates a line on its own.
// The set is \n, \v, \f, \r, NEL, LINE SEPARATOR and PARAGRAPH SEPARATOR;
// \r\n is handled as one break by SplitLineBreaks.
func IsLineBreak(r rune) bool {
	switch r {
	case '\n', '\v', '\f', '\r', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// SplitLineBreaks splits s at every line break. A "\r\n" pair counts as a
// single break. Unlike strings.Split it never returns a trailing empty
// element for a terminating break.
func SplitLineBreaks(s string) []string {
	if s == "" {
		return []string{""}
	}

	var lines []string
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !IsLineBreak(r) {
			i += size
			continue
		}
		lines = append(lines, s[start:i])
		i += size
		if r == '\r' && i < len(s) && s[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// Truncate truncates a string to maxLen runes, adding an ellipsis if truncated.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// FirstNonEmpty returns the first non-empty string from the provided strings.
func FirstNonEmpty(values ...string) string {
	for _, s := range values {
		if s != "" {
			return s
		}
	}
	return ""
}

// FirstLine returns s up to its first line break.
func FirstLine(s string) string {
	if i := strings.IndexFunc(s, IsLineBreak); i >= 0 {
		return s[:i]
	}
	return s
}

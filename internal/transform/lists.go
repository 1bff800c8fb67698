// ============================================================================
// wandler - Naming Convention Converter
// ============================================================================
//
// Package:     transform
// Description: Comma lists, IN clauses and SQL lists from line lists
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package transform

import (
	"strings"

	"github.com/msto63/wandler/foundation/utils/stringx"
)

// listItems returns the trimmed non-blank lines of s, optionally wrapped in
// single quotes.
func listItems(s string, quoted bool) []string {
	var items []string
	for _, line := range stringx.SplitLineBreaks(s) {
		line = trimControl(line)
		if line == "" {
			continue
		}
		if quoted {
			line = "'" + line + "'"
		}
		items = append(items, line)
	}
	return items
}

// NewlineToComma joins the non-blank lines of s with ", ".
//
//	NewlineToComma("Apple\nBanana\n\nCherry") // "Apple, Banana, Cherry"
func NewlineToComma(s string) string {
	return strings.Join(listItems(s, false), ", ")
}

// NewlineToQuotedComma is NewlineToComma with every item in single quotes.
func NewlineToQuotedComma(s string) string {
	return strings.Join(listItems(s, true), ", ")
}

// ToInClauseInt renders the lines of s as an SQL IN clause of bare values.
//
//	ToInClauseInt("101\n102") // "IN (101, 102)"
func ToInClauseInt(s string) string {
	if s == "" {
		return ""
	}
	return "IN (" + NewlineToComma(s) + ")"
}

// ToInClauseString renders the lines of s as an SQL IN clause of quoted
// values.
func ToInClauseString(s string) string {
	if s == "" {
		return ""
	}
	return "IN (" + NewlineToQuotedComma(s) + ")"
}

// ToSQLList renders the lines of s as a parenthesized list without the IN
// keyword: "(1, 2, 3)" or "('1', '2', '3')".
func ToSQLList(s string, quoted bool) string {
	if s == "" {
		return ""
	}
	return "(" + strings.Join(listItems(s, quoted), ", ") + ")"
}

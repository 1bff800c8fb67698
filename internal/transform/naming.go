// ============================================================================
// wandler - Naming Convention Converter
// ============================================================================
//
// Package:     transform
// Description: Delimiter and naming-convention conversions
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package transform

import (
	"strings"

	"github.com/msto63/wandler/foundation/utils/stringx"
)

// RemoveDashesAndTrim deletes every '-' and trims the result.
func RemoveDashesAndTrim(s string) string {
	return trimControl(strings.ReplaceAll(s, "-", ""))
}

// ReplaceDashesWithSpaces replaces every '-' with a single space.
func ReplaceDashesWithSpaces(s string) string {
	return strings.ReplaceAll(s, "-", " ")
}

// ReplaceUnderscoresWithSpaces replaces every '_' with a single space.
func ReplaceUnderscoresWithSpaces(s string) string {
	return strings.ReplaceAll(s, "_", " ")
}

// CollapseWhitespaceRuns replaces each whitespace run with one space and
// trims the result.
func CollapseWhitespaceRuns(s string) string {
	return trimControl(whitespaceRun.ReplaceAllString(s, " "))
}

// ToCamelCase splits s on runs of whitespace, '_' and '-', lowercases each
// token and joins them, capitalizing every token but the first. With
// upperFirst the first token is capitalized too (PascalCase).
//
//	ToCamelCase("hello world", false) // "helloWorld"
//	ToCamelCase("hello-world", true)  // "HelloWorld"
func ToCamelCase(s string, upperFirst bool) string {
	if s == "" {
		return s
	}
	tokens := wordSeparatorRun.Split(s, -1)
	for i, t := range tokens {
		tokens[i] = lower(t)
	}
	return stringx.JoinCamel(tokens, upperFirst)
}

// CamelCaseToSpaces inserts a space before every ASCII capital that is not
// the first character of s or of a line.
//
//	CamelCaseToSpaces("thisIsATest") // "this Is A Test"
func CamelCaseToSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)

	prev, started := rune(0), false
	for _, r := range s {
		if r >= 'A' && r <= 'Z' && started && !isLineTerminator(prev) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prev, started = r, true
	}
	return b.String()
}

// SpacesToUpperSnakeCase trims s, replaces whitespace runs with '_' and
// uppercases the result.
func SpacesToUpperSnakeCase(s string) string {
	return upper(whitespaceRun.ReplaceAllString(trimControl(s), "_"))
}

// CamelCaseToUpperSnake converts "CamelCaseTest" to "CAMEL_CASE_TEST".
func CamelCaseToUpperSnake(s string) string {
	return SpacesToUpperSnakeCase(CamelCaseToSpaces(s))
}

// SnakeToCamel lowercases s, splits it on '_' and joins the non-empty
// parts as camelCase, or PascalCase with upperFirst.
func SnakeToCamel(s string, upperFirst bool) string {
	if s == "" {
		return ""
	}
	return stringx.JoinCamel(strings.Split(lower(s), "_"), upperFirst)
}

// ToUpperSnake puts '_' between a lowercase letter and a following run of
// capitals, turns spaces into '_' and uppercases everything.
//
//	ToUpperSnake("helloWorld") // "HELLO_WORLD"
//	ToUpperSnake("space test") // "SPACE_TEST"
func ToUpperSnake(s string) string {
	s = humpRun.ReplaceAllString(s, "${1}_${2}")
	return upper(strings.ReplaceAll(s, " ", "_"))
}

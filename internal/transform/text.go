// ============================================================================
// wandler - Naming Convention Converter
// ============================================================================
//
// Package:     transform
// Description: Shared text helpers for the transforms
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package transform

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/msto63/wandler/foundation/utils/stringx"
)

var (
	// whitespaceRun matches runs of space, \t, \n, \v, \f and \r.
	whitespaceRun = regexp.MustCompile(`[ \t\n\v\f\r]+`)

	// wordSeparatorRun additionally treats '_' and '-' as separators.
	wordSeparatorRun = regexp.MustCompile(`[ \t\n\v\f\r_-]+`)

	// humpRun finds a lowercase letter followed by a run of capitals.
	humpRun = regexp.MustCompile(`([a-z])([A-Z]+)`)
)

// trimControl strips leading and trailing spaces and ASCII control characters.
func trimControl(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
}

// isLineTerminator reports the characters a regex '.' does not match.
func isLineTerminator(r rune) bool {
	switch r {
	case '\n', '\r', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}

// splitWords splits s on whitespace runs and drops empty tokens.
func splitWords(s string) []string {
	return nonEmpty(whitespaceRun.Split(s, -1))
}

func nonEmpty(tokens []string) []string {
	out := tokens[:0]
	for _, t := range tokens {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Casers are stateful and not safe for concurrent use, so each call builds
// its own.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func capitalize(word string) string {
	return stringx.UpperFirst(word)
}

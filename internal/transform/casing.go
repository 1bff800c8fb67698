// ============================================================================
// wandler - Naming Convention Converter
// ============================================================================
//
// Package:     transform
// Description: Upper, lower, initial-caps and title case mapping
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package transform

import (
	"strings"

	"github.com/msto63/wandler/foundation/utils/stringx"
)

// minorWords stay lowercase in title case unless first or last.
var minorWords = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true, "but": true,
	"by": true, "for": true, "in": true, "nor": true, "of": true, "on": true,
	"or": true, "so": true, "the": true, "to": true, "up": true, "yet": true,
}

// IsMinorWord reports whether word is kept lowercase inside a title.
func IsMinorWord(word string) bool {
	return minorWords[word]
}

// ToUpperCase maps every character to upper case.
func ToUpperCase(s string) string {
	return upper(s)
}

// ToLowerCase maps every character to lower case.
func ToLowerCase(s string) string {
	return lower(s)
}

// AllInitialCaps lowercases s and capitalizes every word. Words are
// rejoined with single spaces.
func AllInitialCaps(s string) string {
	if s == "" {
		return ""
	}
	return trimControl(stringx.CapitalizeWords(splitWords(lower(s))))
}

// ToTitleCase lowercases s and capitalizes every word except minor words
// that are neither first nor last.
//
//	ToTitleCase("a tale of two cities") // "A Tale of Two Cities"
func ToTitleCase(s string) string {
	if s == "" {
		return ""
	}
	words := splitWords(lower(s))
	last := len(words) - 1
	for i, w := range words {
		if i > 0 && i < last && minorWords[w] {
			continue
		}
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

// LowercaseFirst lowercases the first character only.
func LowercaseFirst(s string) string {
	return stringx.LowerFirst(s)
}

// UppercaseFirst uppercases the first character only.
func UppercaseFirst(s string) string {
	return stringx.UpperFirst(s)
}

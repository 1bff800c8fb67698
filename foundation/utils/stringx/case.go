// File: case.go
// Title: Word Casing Utilities
// Description: First-rune casing and camel/Pascal joining of word lists.
//              These are the building blocks of the naming-convention
//              transforms.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2026-10-19 v0.3.0: Replaced whole-string converters with word helpers

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UpperFirst upper-cases the first rune of s and leaves the rest untouched.
func UpperFirst(s string) string {
	return mapFirst(s, unicode.ToUpper)
}

// LowerFirst lower-cases the first rune of s and leaves the rest untouched.
func LowerFirst(s string) string {
	return mapFirst(s, unicode.ToLower)
}

func mapFirst(s string, fn func(rune) rune) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	mapped := fn(r)
	if mapped == r {
		return s
	}
	return string(mapped) + s[size:]
}

// JoinCamel concatenates words, upper-casing the first rune of every word.
// With upperFirst false the first word is written as given (camelCase),
// otherwise it is capitalized too (PascalCase). Empty words are skipped
// and do not count as the first word.
func JoinCamel(words []string, upperFirst bool) string {
	var b strings.Builder
	first := true
	for _, w := range words {
		if w == "" {
			continue
		}
		if first && !upperFirst {
			b.WriteString(w)
		} else {
			b.WriteString(UpperFirst(w))
		}
		first = false
	}
	return b.String()
}

// CapitalizeWords upper-cases the first rune of every word and joins them
// with a single space. Empty words are dropped.
func CapitalizeWords(words []string) string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w != "" {
			out = append(out, UpperFirst(w))
		}
	}
	return strings.Join(out, " ")
}

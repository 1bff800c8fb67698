// ============================================================================
// wandler - Naming Convention Converter
// ============================================================================
//
// Package:     transform
// Description: Regular expression find and replace
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package transform

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	mdwerror "github.com/msto63/wandler/foundation/core/error"
)

// RegexHelp describes the inline flags accepted at the start of a pattern.
const RegexHelp = `Regex flags (put them at the very beginning of the Find text):
  (?i)  Ignore case: matches 'ABC' and 'abc' identically.
  (?m)  Multiline: ^ and $ match at the start/end of each line.
  (?s)  Dotall: '.' also matches newline characters.
Replacement: $1..$9 or ${name} insert a group, \$ inserts a literal '$'.`

// RegexReplace replaces every match of pattern in input. The replacement
// may reference groups as $n or ${name}; a backslash makes the next
// character literal. An empty pattern returns input unchanged.
//
// Compile failures and invalid group references are reported as
// INVALID_PATTERN errors.
func RegexReplace(input, pattern, replacement string) (string, error) {
	if pattern == "" {
		return input, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", mdwerror.Wrap(err, "Invalid Regex").
			WithCode(mdwerror.CodeInvalidPattern).
			WithOperation("transform.regex_replace").
			WithDetail("pattern", pattern)
	}

	template, err := replacementTemplate(re, replacement)
	if err != nil {
		return "", err
	}
	return re.ReplaceAllString(input, template), nil
}

// replacementTemplate rewrites a replacement string into the template
// syntax of regexp.Expand. Group numbers are read greedily for as long as
// they name an existing group, so "$10" is group 10 only when the pattern
// has ten groups and group 1 followed by '0' otherwise.
func replacementTemplate(re *regexp.Regexp, replacement string) (string, error) {
	var b strings.Builder
	groups := re.NumSubexp()

	for i := 0; i < len(replacement); {
		c := replacement[i]
		switch c {
		case '\\':
			i++
			if i >= len(replacement) {
				return "", invalidReplacement(replacement, "character to be escaped is missing")
			}
			r, size := utf8.DecodeRuneInString(replacement[i:])
			if r == '$' {
				b.WriteString("$$")
			} else {
				b.WriteString(replacement[i : i+size])
			}
			i += size

		case '$':
			i++
			if i >= len(replacement) {
				return "", invalidReplacement(replacement, "illegal group reference: group index is missing")
			}

			if replacement[i] == '{' {
				end := strings.IndexByte(replacement[i:], '}')
				if end < 0 {
					return "", invalidReplacement(replacement, "named capturing group is missing trailing '}'")
				}
				name := replacement[i+1 : i+end]
				if name == "" {
					return "", invalidReplacement(replacement, "named capturing group has 0 length name")
				}
				if re.SubexpIndex(name) < 0 {
					return "", invalidReplacement(replacement, fmt.Sprintf("no group with name {%s}", name))
				}
				b.WriteString("${" + name + "}")
				i += end + 1
				continue
			}

			if !isDigit(replacement[i]) {
				return "", invalidReplacement(replacement, "illegal group reference")
			}
			ref := int(replacement[i] - '0')
			if ref > groups {
				return "", invalidReplacement(replacement, fmt.Sprintf("no group %d", ref))
			}
			i++
			for i < len(replacement) && isDigit(replacement[i]) {
				next := ref*10 + int(replacement[i]-'0')
				if next > groups {
					break
				}
				ref = next
				i++
			}
			fmt.Fprintf(&b, "${%d}", ref)

		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func invalidReplacement(replacement, reason string) *mdwerror.Error {
	return mdwerror.New("Invalid Regex: "+reason).
		WithCode(mdwerror.CodeInvalidPattern).
		WithOperation("transform.regex_replace").
		WithDetail("replacement", replacement)
}

// ============================================================================
// wandler - Naming Convention Converter
// ============================================================================
//
// Package:     transform
// Description: Form-style URL encoding and decoding
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package transform

import (
	"net/url"
	"strings"

	mdwerror "github.com/msto63/wandler/foundation/core/error"
)

// URLDecode decodes percent escapes and turns '+' into a space. A
// malformed escape yields a DECODE_FAILED error.
func URLDecode(s string) (string, error) {
	out, err := url.QueryUnescape(s)
	if err != nil {
		return "", mdwerror.Wrap(err, "URL decode failed").
			WithCode(mdwerror.CodeDecodeFailed).
			WithOperation("transform.url_decode")
	}
	return out, nil
}

// formSafe maps QueryEscape output to the HTML form-encoding set, where
// '*' stays literal and '~' is escaped. Every '%' in QueryEscape output
// starts an escape, so "%2A" can only come from a '*'.
var formSafe = strings.NewReplacer("%2A", "*", "~", "%7E")

// URLEncode percent-encodes s as form data (space becomes '+'). Only
// letters, digits and ".-*_" stay unescaped.
func URLEncode(s string) string {
	return formSafe.Replace(url.QueryEscape(s))
}

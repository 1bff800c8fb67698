// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              JSON rendering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-19 v0.2.0: Transform engine codes, errors.Is/As behaviour

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}
	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error keeps code",
			err:      New("missing )").WithCode(CodeInvalidPattern),
			message:  "Invalid Regex",
			wantMsg:  "Invalid Regex: missing )",
			wantCode: CodeInvalidPattern,
		},
		{
			name:     "wrap fmt-wrapped structured error keeps code",
			err:      fmt.Errorf("outer: %w", New("bad escape").WithCode(CodeDecodeFailed)),
			message:  "decode",
			wantMsg:  "decode: outer: bad escape",
			wantCode: CodeDecodeFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWrap_ChainTruncation(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}

	e := err.(*Error)
	if e.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want %v", e.Severity(), SeverityHigh)
	}
	if !strings.Contains(e.Error(), "chain truncated") {
		t.Errorf("Error() = %q, want truncation note", e.Error())
	}
}

func TestWithCode_SetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidPattern, SeverityLow},
		{CodeDecodeFailed, SeverityLow},
		{CodeConfigError, SeverityHigh},
		{CodeEnvironmentError, SeverityCritical},
		{CodeInternal, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := New("x").WithCode(tt.code).Severity(); got != tt.want {
				t.Errorf("Severity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithCode_KeepsInheritedSeverity(t *testing.T) {
	inner := New("x").WithCode(CodeInvalidPattern)
	err := Wrap(inner, "apply").WithCode(CodeInvalidConfig)
	if err.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityLow)
	}
}

func TestHasCode(t *testing.T) {
	base := New("bad").WithCode(CodeInvalidPattern)
	wrapped := fmt.Errorf("apply: %w", base)

	if !HasCode(base, CodeInvalidPattern) {
		t.Error("HasCode(base) = false, want true")
	}
	if !HasCode(wrapped, CodeInvalidPattern) {
		t.Error("HasCode(wrapped) = false, want true")
	}
	if HasCode(wrapped, CodeDecodeFailed) {
		t.Error("HasCode(wrapped, DECODE_FAILED) = true, want false")
	}
	if HasCode(errors.New("plain"), CodeInvalidPattern) {
		t.Error("HasCode(plain) = true, want false")
	}
	if GetCode(wrapped) != CodeInvalidPattern {
		t.Errorf("GetCode() = %v, want %v", GetCode(wrapped), CodeInvalidPattern)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode(plain) should be UNKNOWN")
	}
}

func TestIs_MatchesByCode(t *testing.T) {
	err := fmt.Errorf("ctx: %w", New("a").WithCode(CodeDecodeFailed))
	if !errors.Is(err, New("b").WithCode(CodeDecodeFailed)) {
		t.Error("errors.Is should match errors with the same code")
	}
	if errors.Is(err, New("b")) {
		t.Error("errors.Is should not match an UNKNOWN code target")
	}
}

func TestDetailsAndContext(t *testing.T) {
	err := New("bad").
		WithOperation("transform.regex_replace").
		WithSessionID("s-1").
		WithDetail("pattern", "(").
		WithDetail("replacement", "")

	if err.Operation() != "transform.regex_replace" {
		t.Errorf("Operation() = %q", err.Operation())
	}
	if err.SessionID() != "s-1" {
		t.Errorf("SessionID() = %q", err.SessionID())
	}
	details := err.Details()
	if details["pattern"] != "(" || details["replacement"] != "" {
		t.Errorf("Details() = %v", details)
	}

	details["pattern"] = "mutated"
	if err.Details()["pattern"] != "(" {
		t.Error("Details() must return a copy")
	}

	s := err.String()
	for _, want := range []string{"Operation: transform.regex_replace", "SessionID: s-1", "pattern=("} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("missing closing )"), "Invalid Regex").
		WithCode(CodeInvalidPattern).
		WithOperation("transform.regex_replace")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jerr)
	}
	if decoded["code"] != "INVALID_PATTERN" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v", decoded["severity"])
	}
	if decoded["cause"] != "missing closing )" {
		t.Errorf("cause = %v", decoded["cause"])
	}
}

func TestCode_Classification(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		status   int
	}{
		{CodeInvalidPattern, "transform", 400},
		{CodeDecodeFailed, "transform", 400},
		{CodeUnknownTransform, "transform", 404},
		{CodeNothingToUndo, "transform", 409},
		{CodeInvalidConfig, "configuration", 500},
		{CodeProtocolError, "host", 400},
		{CodeInternal, "generic", 500},
		{Code("NOPE"), "generic", 500},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.HTTPStatus(); got != tt.status {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.status)
			}
		})
	}
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		s    Severity
		want string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

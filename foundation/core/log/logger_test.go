// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, context fields, formatters and
//              structured error logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-19 v0.2.0: Session context and sorted text output

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/wandler/foundation/core/error"
)

func newBufferLogger(format Format, level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  level,
		Format: format,
		Output: &buf,
		Name:   "test",
	})
	return logger, &buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"Text", FormatText, false},
		{"console", FormatConsole, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatJSON, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(FormatText, LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("output contains filtered entries: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("output missing warn entry: %q", out)
	}
}

func TestLogger_JSONFields(t *testing.T) {
	logger, buf := newBufferLogger(FormatJSON, LevelDebug)
	logger = logger.WithSessionID("abc").WithFields(Fields{"surface": "cli"})

	logger.Debug("transform applied", Fields{"transform": "title-case", "depth": 2})

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}

	want := map[string]interface{}{
		"level":      "debug",
		"message":    "transform applied",
		"logger":     "test",
		"session_id": "abc",
		"surface":    "cli",
		"transform":  "title-case",
		"depth":      float64(2),
	}
	for k, v := range want {
		if decoded[k] != v {
			t.Errorf("%s = %v, want %v", k, decoded[k], v)
		}
	}
}

func TestLogger_TextSortedFields(t *testing.T) {
	logger, buf := newBufferLogger(FormatText, LevelInfo)
	logger.Info("msg", Fields{"b": 2, "a": 1, "c": 3})

	if !strings.Contains(buf.String(), "[a=1 b=2 c=3]") {
		t.Errorf("fields not sorted: %q", buf.String())
	}
}

func TestLogger_WithDoesNotMutateParent(t *testing.T) {
	parent, buf := newBufferLogger(FormatLogfmt, LevelInfo)
	child := parent.WithFields(Fields{"child": true}).WithName("child")

	parent.Info("from parent")
	if strings.Contains(buf.String(), "child") {
		t.Errorf("parent picked up child context: %q", buf.String())
	}

	buf.Reset()
	child.Info("from child")
	if !strings.Contains(buf.String(), "child=true") || !strings.Contains(buf.String(), "logger=child") {
		t.Errorf("child context missing: %q", buf.String())
	}
}

func TestLogger_LogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  string
	}{
		{
			name:      "low severity logs at info",
			err:       mdwerror.New("bad regex").WithCode(mdwerror.CodeInvalidPattern),
			wantLevel: "info",
			wantCode:  "INVALID_PATTERN",
		},
		{
			name:      "high severity logs at error",
			err:       mdwerror.New("bad config").WithCode(mdwerror.CodeInvalidConfig),
			wantLevel: "error",
			wantCode:  "INVALID_CONFIG",
		},
		{
			name:      "plain error logs at error",
			err:       errors.New("boom"),
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(FormatJSON, LevelTrace)
			logger.LogError(tt.err)

			var decoded map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
				t.Fatalf("output is not JSON: %v", err)
			}
			if decoded["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", decoded["level"], tt.wantLevel)
			}
			if tt.wantCode != "" && decoded["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", decoded["error_code"], tt.wantCode)
			}
			if tt.wantCode != "" && decoded["error_category"] == nil {
				t.Errorf("error_category missing: %v", decoded)
			}
		})
	}

	logger, buf := newBufferLogger(FormatJSON, LevelTrace)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:        LevelInfo,
		Format:       FormatText,
		Output:       &buf,
		EnableCaller: true,
	})
	logger.Info("where")

	if !strings.Contains(buf.String(), "caller=logger_test.go:") {
		t.Errorf("caller missing: %q", buf.String())
	}
}

func TestConsoleFormatter_Colors(t *testing.T) {
	entry := NewEntry(LevelWarn, "careful")

	colored, _ := NewConsoleFormatter().Format(entry)
	if !strings.HasPrefix(string(colored), LevelWarn.Color()) {
		t.Errorf("console output not colored: %q", colored)
	}

	plain := NewConsoleFormatter()
	plain.DisableColors = true
	out, _ := plain.Format(entry)
	if strings.Contains(string(out), "\033[") {
		t.Errorf("DisableColors still colored: %q", out)
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error("dropped")
}

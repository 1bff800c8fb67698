// ============================================================================
// wandler - Naming Convention Converter
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"path/filepath"

	mdwerror "github.com/msto63/wandler/foundation/core/error"
	mdwlog "github.com/msto63/wandler/foundation/core/log"
	"github.com/msto63/wandler/foundation/utils/stringx"
)

func init() {
	mdwlog.SetDefault(NewLogger(DefaultLoggerConfig("wandler")))
}

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: json, text, console or logfmt (default: text)
	Format string

	// File to append to. Empty means Output.
	File string

	// Output when no file is set (default: stderr)
	Output io.Writer

	// Additional outputs besides the primary one
	AdditionalOutputs []io.Writer

	// Caller adds file:line of the logging call to every entry
	Caller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "text",
	}
}

// NewLogger creates a foundation logger writing to cfg.Output. cfg.File is
// ignored here; use Setup to log to a file.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:        parseLevel(cfg.Level),
		Format:       parseFormat(cfg.Format),
		Output:       output,
		Name:         cfg.ServiceName,
		EnableCaller: cfg.Caller,
		// the key/value facade adds one frame
		CallerSkipFrames: 1,
	})
}

// Setup replaces the process-wide logger that New derives from. When
// cfg.File is set the file is created (with parent directories) and
// appended to; the returned closer releases it.
func Setup(cfg LoggerConfig) (io.Closer, error) {
	closer := io.Closer(nopCloser{})

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, mdwerror.Wrap(err, "failed to create log directory").
				WithCode(mdwerror.CodeEnvironmentError).
				WithOperation("logging.setup").
				WithDetail("file", cfg.File)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, mdwerror.Wrap(err, "failed to open log file").
				WithCode(mdwerror.CodeEnvironmentError).
				WithOperation("logging.setup").
				WithDetail("file", cfg.File)
		}
		cfg.Output = f
		closer = f
	}

	mdwlog.SetDefault(NewLogger(cfg))

	return closer, nil
}

func base() *mdwlog.Logger {
	return mdwlog.GetDefault()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// parseLevel converts a string level to mdwlog.Level, defaulting to info
func parseLevel(level string) mdwlog.Level {
	l, err := mdwlog.ParseLevel(level)
	if err != nil {
		return mdwlog.LevelInfo
	}
	return l
}

// parseFormat converts a string format to mdwlog.Format, defaulting to text
func parseFormat(format string) mdwlog.Format {
	if stringx.IsBlank(format) {
		return mdwlog.FormatText
	}
	f, err := mdwlog.ParseFormat(format)
	if err != nil {
		return mdwlog.FormatText
	}
	return f
}

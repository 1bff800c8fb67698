// Package log provides structured logging for wandler.
//
// Package: log
// Title: wandler Structured Logging
// Description: Leveled, structured logging with JSON, text, console and
//              logfmt output. Integrates with foundation/core/error so that
//              structured errors are logged with their code and severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Session context, synchronous output only, sorted text fields
//
// Usage:
//   import mdwlog "github.com/msto63/wandler/foundation/core/log"
//
//   logger := mdwlog.New().
//     WithLevel(mdwlog.LevelDebug).
//     WithFormat(mdwlog.FormatText).
//     WithSessionID(engine.ID())
//
//   logger.Debug("transform applied", mdwlog.Fields{"transform": "title-case", "depth": 3})
//   logger.LogError(err)
package log

// Package error provides structured error handling for wandler.
//
// Package: error
// Title: wandler Error Handling
// Description: Structured errors with codes, severity, operation context,
//              and details. Every failure that crosses a
//              package boundary in wandler is an *Error so hosts (TUI, CLI,
//              websocket) can branch on Code instead of matching messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Reduced to the codes used by the transform engine
//
// Usage:
//   import mdwerror "github.com/msto63/wandler/foundation/core/error"
//
//   err := mdwerror.Wrap(compileErr, "Invalid Regex").
//     WithCode(mdwerror.CodeInvalidPattern).
//     WithOperation("transform.regex_replace").
//     WithDetail("pattern", pattern)
//
//   if mdwerror.HasCode(err, mdwerror.CodeInvalidPattern) {
//     // report to the user, leave the buffer alone
//   }
package error

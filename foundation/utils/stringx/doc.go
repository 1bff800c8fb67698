// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the low-level, Unicode-aware string
//              helpers that the transform catalog is built from.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2026-10-19 v0.3.0: Line-break splitting, word joining and first-rune casing

// Package stringx provides extended string operations for wandler.
//
// The helpers here are deliberately small and policy free: they split,
// join and re-case words. Null handling, trimming rules and the exact
// fallback of each user-facing transform live in internal/transform.
//
// Core operations (stringx.go):
//
//	stringx.IsBlank("  \t")                 // true
//	stringx.SplitLineBreaks("a\r\nb\nc")   // ["a", "b", "c"]
//	stringx.Truncate("long text", 6, "…")    // "long …"
//
// Word casing (case.go):
//
//	stringx.UpperFirst("java")                             // "Java"
//	stringx.LowerFirst("Java")                             // "java"
//	stringx.JoinCamel([]string{"snake", "case"}, false)    // "snakeCase"
//	stringx.JoinCamel([]string{"snake", "case"}, true)     // "SnakeCase"
package stringx

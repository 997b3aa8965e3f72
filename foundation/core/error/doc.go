// Package error provides structured error handling for the textkit foundation.
//
// Package: error
// Title: Structured Error Framework
// Description: This package implements an error type with codes, severities,
//              structured details and stack traces. Every error returned by the
//              foundation packages is an *Error, so callers can classify
//              failures by code instead of by message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-17 v0.2.0: Code-based errors.Is matching for sentinel errors
//
// Usage:
//
//	import tkerror "github.com/msto63/textkit/foundation/core/error"
//
//	err := tkerror.New("separator not found").
//		WithCode(tkerror.CodeNotFound).
//		WithOperation("textx.split_once").
//		WithDetail("separator", "?")
//
//	// Wrap an existing error with context
//	wrapped := tkerror.Wrap(err, "parse header")
//
//	// Sentinels compare by code
//	var ErrNotFound = tkerror.New("not found").WithCode(tkerror.CodeNotFound)
//	if errors.Is(wrapped, ErrNotFound) {
//		// handle
//	}
package error

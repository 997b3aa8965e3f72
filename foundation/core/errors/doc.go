// Package errors provides the standard error constructors for the textkit
// foundation modules.
//
// Package: errors
// Title: Standard Error Handling API
// Description: Module-scoped builders, standardized error codes and utilities
//              for creating consistent errors. Every error carries the module
//              and operation as details, so failures can be analysed without
//              parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-17 v0.2.0: textx failure kinds
//
// # Error Codes
//
// Codes follow the pattern {MODULE}_{CATEGORY}:
//   - Common: INVALID_INPUT, INVALID_FORMAT, OUT_OF_RANGE, NOT_FOUND, OPERATION_FAILED
//   - textx: TEXTX_EMPTY_INPUT, TEXTX_NOT_FOUND, TEXTX_INVALID_CODEPOINT,
//     TEXTX_INVALID_PADDING, TEXTX_INVALID_ENCODING
//   - config: CONFIG_VALIDATION_FAILED
//
// # Usage
//
//	func First(s string) (string, error) {
//		if s == "" {
//			return "", errors.TextxEmptyInput("first")
//		}
//		...
//	}
//
//	err := errors.NewErrorBuilder(errors.ModuleConfig).
//		Operation("load").
//		Cause(ioErr).
//		Detail("path", path).
//		Build()
//
//	if errors.IsModuleOperation(err, errors.ModuleTextx, "split_once") {
//		...
//	}
package errors

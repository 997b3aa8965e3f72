// File: standards.go
// Title: Error Standards for the textkit Foundation
// Description: Module identifiers and error codes shared by the foundation
//              packages, plus the mapping from operation names to codes used
//              when a builder is not given an explicit code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-17 v0.2.0: textx, config and cli codes; removed unused modules

package errors

import (
	"strings"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleTextx  = "textx"
	ModuleConfig = "config"
	ModuleCLI    = "cli"
)

// Standardized error codes
const (
	// Common error codes
	CodeInvalidInput    = "INVALID_INPUT"
	CodeInvalidFormat   = "INVALID_FORMAT"
	CodeOutOfRange      = "OUT_OF_RANGE"
	CodeNotFound        = "NOT_FOUND"
	CodeOperationFailed = "OPERATION_FAILED"

	// Module-specific error codes - textx
	CodeTextxEmptyInput       = "TEXTX_EMPTY_INPUT"
	CodeTextxNotFound         = "TEXTX_NOT_FOUND"
	CodeTextxInvalidCodepoint = "TEXTX_INVALID_CODEPOINT"
	CodeTextxInvalidPadding   = "TEXTX_INVALID_PADDING"
	CodeTextxInvalidEncoding  = "TEXTX_INVALID_ENCODING"

	// Module-specific error codes - config
	CodeConfigValidationFailed = "CONFIG_VALIDATION_FAILED"
)

// getModuleErrorCode returns the appropriate error code for a module operation
func getModuleErrorCode(module, operation string) string {
	switch module {
	case ModuleTextx:
		return getTextxErrorCode(operation)
	case ModuleConfig:
		return CodeConfigValidationFailed
	default:
		return CodeOperationFailed
	}
}

func getTextxErrorCode(operation string) string {
	switch {
	case strings.Contains(operation, "codepoint"):
		return CodeTextxInvalidCodepoint
	case strings.Contains(operation, "pad") || strings.Contains(operation, "center"):
		return CodeTextxInvalidPadding
	case strings.Contains(operation, "bytes") || strings.Contains(operation, "encoding"):
		return CodeTextxInvalidEncoding
	case strings.Contains(operation, "split"):
		return CodeTextxNotFound
	case strings.Contains(operation, "pop") || strings.Contains(operation, "first") || strings.Contains(operation, "last"):
		return CodeTextxEmptyInput
	default:
		return CodeInvalidInput
	}
}

func getFormatErrorCode(module string) string {
	switch module {
	case ModuleTextx:
		return CodeTextxInvalidEncoding
	default:
		return CodeInvalidFormat
	}
}

// getSeverityFromError determines appropriate severity based on error text
func getSeverityFromError(cause error) tkerror.Severity {
	if cause == nil {
		return tkerror.SeverityLow
	}

	errStr := cause.Error()
	switch {
	case strings.Contains(errStr, "permission") || strings.Contains(errStr, "access"):
		return tkerror.SeverityHigh
	case strings.Contains(errStr, "not found") || strings.Contains(errStr, "missing"):
		return tkerror.SeverityMedium
	case strings.Contains(errStr, "invalid") || strings.Contains(errStr, "format"):
		return tkerror.SeverityLow
	default:
		return tkerror.SeverityMedium
	}
}

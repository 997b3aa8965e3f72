// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Fluent error builder and the standard constructors used by the
//              foundation packages, including the textx convenience functions
//              for each failure kind of the text toolkit.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function with "validation failed:" prefix
// - 2026-10-17 v0.2.0: textx constructors, ModuleError, errors.As based extraction

package errors

import (
	"errors"
	"fmt"
	"strings"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  tkerror.Severity
	code      string
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: tkerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity tkerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code string) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *tkerror.Error {
	code := eb.code
	if code == "" {
		code = getModuleErrorCode(eb.module, eb.operation)
	}

	message := eb.message
	if message == "" {
		if eb.operation != "" {
			message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	details := make(map[string]interface{}, len(eb.details)+2)
	for k, v := range eb.details {
		details[k] = v
	}
	details["module"] = eb.module

	var err *tkerror.Error
	if eb.cause != nil {
		err = tkerror.Wrap(eb.cause, message)
	} else {
		err = tkerror.New(message)
	}

	if eb.operation != "" {
		details["operation"] = eb.operation
		err = err.WithOperation(eb.module + "." + eb.operation)
	}

	return err.
		WithCode(tkerror.Code(code)).
		WithDetails(details).
		WithSeverity(eb.severity)
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		Code(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(tkerror.SeverityMedium).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module string, input interface{}, expectedFormat string) *tkerror.Error {
	return NewErrorBuilder(module).
		Message(fmt.Sprintf("invalid format in %s", module)).
		Code(getFormatErrorCode(module)).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Severity(tkerror.SeverityMedium).
		Build()
}

// ModuleError wraps cause with module context and details
func ModuleError(module, operation string, cause error, details map[string]interface{}) *tkerror.Error {
	eb := NewErrorBuilder(module).
		Operation(operation).
		Cause(cause).
		Severity(getSeverityFromError(cause))
	for k, v := range details {
		eb.Detail(k, v)
	}
	return eb.Build()
}

// ValidationFailed creates a standardized validation error
func ValidationFailed(module, field string, value interface{}, reason string) *tkerror.Error {
	return NewErrorBuilder(module).
		Message(fmt.Sprintf("%s.validate_%s: validation failed for field %s: %s", module, field, field, reason)).
		Code(fmt.Sprintf("%s_VALIDATION_FAILED", strings.ToUpper(module))).
		Detail("field", field).
		Detail("value", value).
		Detail("reason", reason).
		Severity(tkerror.SeverityLow).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("validation failed: value out of range in %s.%s", module, operation)).
		Code(CodeOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(tkerror.SeverityMedium).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("item not found in %s.%s", module, operation)).
		Code(CodeNotFound).
		Detail("identifier", identifier).
		Severity(tkerror.SeverityMedium).
		Build()
}

// ExtractDetails extracts all details from a structured error
func ExtractDetails(err error) map[string]interface{} {
	var e *tkerror.Error
	if errors.As(err, &e) {
		return e.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// =============================================================================
// TEXTX CONVENIENCE FUNCTIONS
// =============================================================================
// Each failure kind of the text toolkit has one constructor so that codes,
// severities and detail keys stay identical across operations.

// TextxEmptyInput reports an operation that needs at least one grapheme
func TextxEmptyInput(operation string) *tkerror.Error {
	return NewErrorBuilder(ModuleTextx).
		Operation(operation).
		Message("empty input").
		Code(CodeTextxEmptyInput).
		Severity(tkerror.SeverityLow).
		Build()
}

// TextxNotFound reports a separator that does not occur in the text
func TextxNotFound(operation, separator string) *tkerror.Error {
	return NewErrorBuilder(ModuleTextx).
		Operation(operation).
		Message(fmt.Sprintf("separator %q not found", separator)).
		Code(CodeTextxNotFound).
		Detail("separator", separator).
		Severity(tkerror.SeverityLow).
		Build()
}

// TextxInvalidCodepoint reports an integer outside the Unicode scalar values
func TextxInvalidCodepoint(operation string, value int) *tkerror.Error {
	return NewErrorBuilder(ModuleTextx).
		Operation(operation).
		Message(fmt.Sprintf("invalid codepoint %#x", value)).
		Code(CodeTextxInvalidCodepoint).
		Detail("value", value).
		Severity(tkerror.SeverityLow).
		Build()
}

// TextxInvalidPadding reports an empty pad text with a non-zero deficit
func TextxInvalidPadding(operation string, deficit int) *tkerror.Error {
	return NewErrorBuilder(ModuleTextx).
		Operation(operation).
		Message("cannot pad with empty text").
		Code(CodeTextxInvalidPadding).
		Detail("deficit", deficit).
		Severity(tkerror.SeverityMedium).
		Build()
}

// TextxInvalidEncoding reports bytes that are not valid UTF-8
func TextxInvalidEncoding(operation string, offset int) *tkerror.Error {
	return NewErrorBuilder(ModuleTextx).
		Operation(operation).
		Message(fmt.Sprintf("invalid UTF-8 at byte %d", offset)).
		Code(CodeTextxInvalidEncoding).
		Detail("offset", offset).
		Severity(tkerror.SeverityLow).
		Build()
}

// File: utils_test.go
// Title: Shared Error Handling Utilities Tests
// Description: Tests for the error builder, the generic constructors and the
//              textx convenience functions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17

package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	t.Run("basic error creation", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Message("test error").
			Detail("key", "value").
			Severity(tkerror.SeverityHigh).
			Build()

		details := err.Details()
		if details["module"] != "testmodule" {
			t.Errorf("Expected module 'testmodule', got %v", details["module"])
		}
		if details["operation"] != "test_op" {
			t.Errorf("Expected operation 'test_op', got %v", details["operation"])
		}
		if details["key"] != "value" {
			t.Errorf("Expected detail key 'value', got %v", details["key"])
		}
		if err.Operation() != "testmodule.test_op" {
			t.Errorf("Expected qualified operation, got %q", err.Operation())
		}
		if err.Severity() != tkerror.SeverityHigh {
			t.Errorf("Expected high severity, got %v", err.Severity())
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Cause(cause).
			Build()

		if !errors.Is(err, cause) {
			t.Error("Expected error to wrap the cause")
		}
	})

	t.Run("auto-generated message", func(t *testing.T) {
		err := NewErrorBuilder("testmodule").
			Operation("test_op").
			Build()

		expected := "testmodule.test_op failed"
		if err.Error() != expected {
			t.Errorf("Expected message '%s', got '%s'", expected, err.Error())
		}
		if err.Code() != CodeOperationFailed {
			t.Errorf("Expected %s, got %s", CodeOperationFailed, err.Code())
		}
	})

	t.Run("auto-generated textx code", func(t *testing.T) {
		err := NewErrorBuilder(ModuleTextx).Operation("split_once").Build()
		if err.Code() != CodeTextxNotFound {
			t.Errorf("Expected %s, got %s", CodeTextxNotFound, err.Code())
		}
	})

	t.Run("builder is reusable", func(t *testing.T) {
		eb := NewErrorBuilder("testmodule").Operation("op")
		first := eb.Build()
		second := eb.Detail("extra", 1).Build()

		if _, ok := first.Details()["extra"]; ok {
			t.Error("first error must not see details added later")
		}
		if second.Details()["extra"] != 1 {
			t.Error("second error should carry the extra detail")
		}
	})
}

func TestTextxConstructors(t *testing.T) {
	tests := []struct {
		name      string
		err       *tkerror.Error
		code      string
		operation string
		severity  tkerror.Severity
	}{
		{"empty input", TextxEmptyInput("first"), CodeTextxEmptyInput, "first", tkerror.SeverityLow},
		{"not found", TextxNotFound("split_once", "?"), CodeTextxNotFound, "split_once", tkerror.SeverityLow},
		{"invalid codepoint", TextxInvalidCodepoint("codepoint_of", 0xD800), CodeTextxInvalidCodepoint, "codepoint_of", tkerror.SeverityLow},
		{"invalid padding", TextxInvalidPadding("pad_start", 3), CodeTextxInvalidPadding, "pad_start", tkerror.SeverityMedium},
		{"invalid encoding", TextxInvalidEncoding("from_bytes", 2), CodeTextxInvalidEncoding, "from_bytes", tkerror.SeverityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.err.Code()) != tt.code {
				t.Errorf("Code() = %s, want %s", tt.err.Code(), tt.code)
			}
			if !IsModuleOperation(tt.err, ModuleTextx, tt.operation) {
				t.Errorf("expected textx.%s, got %s.%s", tt.operation, ExtractModule(tt.err), ExtractOperation(tt.err))
			}
			if tt.err.Severity() != tt.severity {
				t.Errorf("Severity() = %v, want %v", tt.err.Severity(), tt.severity)
			}
		})
	}

	if msg := TextxInvalidCodepoint("codepoint_of", 0xD800).Error(); !strings.Contains(msg, "0xd800") {
		t.Errorf("message should carry the value in hex, got %q", msg)
	}
	if got := TextxNotFound("split_once", "?").Details()["separator"]; got != "?" {
		t.Errorf("separator detail = %v", got)
	}
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("testmodule", "test_op", "invalid", "valid string")

	if err.Code() != CodeInvalidInput {
		t.Errorf("Expected code %s, got %s", CodeInvalidInput, err.Code())
	}

	details := err.Details()
	if details["input"] != "invalid" || details["expected"] != "valid string" {
		t.Errorf("unexpected details %v", details)
	}
}

func TestModuleError(t *testing.T) {
	cause := errors.New("file not found")
	err := ModuleError(ModuleConfig, "load", cause, map[string]interface{}{"path": "x.toml"})

	if !errors.Is(err, cause) {
		t.Error("ModuleError should wrap the cause")
	}
	if err.Code() != CodeConfigValidationFailed {
		t.Errorf("Code() = %s", err.Code())
	}
	if err.Severity() != tkerror.SeverityMedium {
		t.Errorf("Severity() = %v", err.Severity())
	}
	if ExtractDetails(err)["path"] != "x.toml" {
		t.Error("path detail missing")
	}
}

func TestValidationFailed(t *testing.T) {
	err := ValidationFailed(ModuleConfig, "log.level", "loud", "unknown level")

	if err.Code() != "CONFIG_VALIDATION_FAILED" {
		t.Errorf("Code() = %s", err.Code())
	}
	if !strings.Contains(err.Error(), "validation failed for field log.level") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestOutOfRange(t *testing.T) {
	err := OutOfRange(ModuleCLI, "repeat", 7, 0, 2)

	if err.Code() != CodeOutOfRange {
		t.Errorf("Code() = %s", err.Code())
	}
	details := err.Details()
	if details["value"] != 7 || details["min"] != 0 || details["max"] != 2 {
		t.Errorf("unexpected details %v", details)
	}
}

func TestExtractThroughWrapping(t *testing.T) {
	err := fmt.Errorf("command failed: %w", TextxEmptyInput("last"))

	if ExtractModule(err) != ModuleTextx {
		t.Errorf("ExtractModule() = %q", ExtractModule(err))
	}
	if ExtractOperation(err) != "last" {
		t.Errorf("ExtractOperation() = %q", ExtractOperation(err))
	}
	if ExtractDetails(errors.New("plain")) != nil {
		t.Error("plain errors carry no details")
	}
}

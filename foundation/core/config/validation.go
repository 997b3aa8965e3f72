// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates configuration values against declarative rules:
//              required keys, types, allowed values, patterns, length bounds
//              and custom checks. Environment overrides are validated as the
//              values the getters would return.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-17 v0.2.0: Read-only validation, OneOf and Check rules, typed errors

package config

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	tkerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/slicex"
	"github.com/msto63/textkit/foundation/utils/textx"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool                    // Whether the key must be present
	Type     string                  // "string", "int", "bool" or "[]string"
	OneOf    []string                // Allowed string values
	Pattern  string                  // Regex the string value must match
	MinLen   int                     // Minimum string length in graphemes
	Check    func(value string) error // Custom check on the string form
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool
	Errors []*tkerror.Error
}

// Err returns the first validation error, or nil when valid
func (r *ValidationResult) Err() error {
	if r.Valid || len(r.Errors) == 0 {
		return nil
	}
	return r.Errors[0]
}

// Validate validates the configuration against the provided rules.
// Keys are checked in sorted order so results are stable.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := &ValidationResult{Valid: true}
	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err)
		}
	}
	return result
}

func (c *Config) validateField(key string, rule ValidationRule) *tkerror.Error {
	var value interface{}
	if env, ok := c.getEnvValue(key); ok {
		value = env
	} else {
		value = c.getValue(key)
	}

	if value == nil {
		if rule.Required {
			return tkerrors.ValidationFailed(tkerrors.ModuleConfig, key, nil, "required field is missing").
				WithCode(tkerror.CodeRequiredField)
		}
		return nil
	}

	if rule.Type != "" {
		if reason := checkType(value, rule.Type); reason != "" {
			return tkerrors.ValidationFailed(tkerrors.ModuleConfig, key, value, reason)
		}
	}

	str := fmt.Sprintf("%v", value)

	if len(rule.OneOf) > 0 && !slicex.Contains(rule.OneOf, str) {
		return tkerrors.ValidationFailed(tkerrors.ModuleConfig, key, value,
			fmt.Sprintf("must be one of %v", rule.OneOf))
	}

	if n := textx.Length(str); n < rule.MinLen {
		return tkerrors.ValidationFailed(tkerrors.ModuleConfig, key, value,
			fmt.Sprintf("length %d is less than minimum %d", n, rule.MinLen))
	}

	if rule.Pattern != "" {
		regex, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return tkerrors.ValidationFailed(tkerrors.ModuleConfig, key, rule.Pattern, "invalid regex pattern")
		}
		if !regex.MatchString(str) {
			return tkerrors.ValidationFailed(tkerrors.ModuleConfig, key, value,
				fmt.Sprintf("does not match pattern %q", rule.Pattern))
		}
	}

	if rule.Check != nil {
		if err := rule.Check(str); err != nil {
			return tkerrors.ValidationFailed(tkerrors.ModuleConfig, key, value, err.Error())
		}
	}

	return nil
}

// checkType returns a reason when value does not have the expected type.
// Strings coming from the environment are accepted if they convert.
func checkType(value interface{}, expected string) string {
	switch expected {
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("must be a string, got %T", value)
		}
	case "int":
		switch v := value.(type) {
		case int, int64:
		case float64:
			if v != float64(int64(v)) {
				return "must be an integer, got float with decimal places"
			}
		case string:
			if _, err := strconv.Atoi(v); err != nil {
				return fmt.Sprintf("must be an integer, got %q", v)
			}
		default:
			return fmt.Sprintf("must be an integer, got %T", value)
		}
	case "bool":
		switch v := value.(type) {
		case bool:
		case string:
			if _, err := strconv.ParseBool(v); err != nil {
				return fmt.Sprintf("must be a boolean, got %q", v)
			}
		default:
			return fmt.Sprintf("must be a boolean, got %T", value)
		}
	case "[]string":
		switch value.(type) {
		case []string, []interface{}:
		default:
			return fmt.Sprintf("must be a list of strings, got %T", value)
		}
	default:
		return "unknown validation type: " + expected
	}
	return ""
}

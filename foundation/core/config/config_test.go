// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML parsing, defaults, environment overrides,
//              discovery and validation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-17 v0.2.0: Discovery, defaults and rule tests

package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

const tomlContent = `
[log]
level = "info"
format = "json"

[text]
language = "tr"
pad = "·"
widths = [1, 2]
count = 3
strict = true
`

const yamlContent = `
log:
  level: debug
text:
  ellipsis: "..."
  tags:
    - a
    - b
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		cfg, err := Load(writeFile(t, tempDir, "textkit.toml", tomlContent))
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if cfg.Format() != FormatTOML {
			t.Errorf("Format() = %v", cfg.Format())
		}
		if got := cfg.GetString("log.level"); got != "info" {
			t.Errorf("log.level = %q", got)
		}
		if got := cfg.GetString("text.pad"); got != "·" {
			t.Errorf("text.pad = %q", got)
		}
		if got := cfg.GetInt("text.count"); got != 3 {
			t.Errorf("text.count = %d", got)
		}
		if !cfg.GetBool("text.strict") {
			t.Error("text.strict should be true")
		}
		if got := cfg.GetStringSlice("text.widths"); !reflect.DeepEqual(got, []string{"1", "2"}) {
			t.Errorf("text.widths = %v", got)
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		cfg, err := Load(writeFile(t, tempDir, "textkit.yaml", yamlContent))
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if cfg.Format() != FormatYAML {
			t.Errorf("Format() = %v", cfg.Format())
		}
		if got := cfg.GetString("log.level"); got != "debug" {
			t.Errorf("log.level = %q", got)
		}
		if got := cfg.GetStringSlice("text.tags"); !reflect.DeepEqual(got, []string{"a", "b"}) {
			t.Errorf("text.tags = %v", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "absent.toml"))
		if !tkerror.HasCode(err, tkerror.CodeMissingConfig) {
			t.Errorf("expected MISSING_CONFIG, got %v", err)
		}
	})

	t.Run("blank path", func(t *testing.T) {
		_, err := Load("  ")
		if !tkerror.HasCode(err, tkerror.CodeValidationFailed) {
			t.Errorf("expected VALIDATION_FAILED, got %v", err)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := Load(writeFile(t, tempDir, "broken.toml", "[log\nlevel ="))
		if !tkerror.HasCode(err, tkerror.CodeInvalidConfig) {
			t.Errorf("expected INVALID_CONFIG, got %v", err)
		}
	})
}

func TestDefaults(t *testing.T) {
	cfg, err := LoadFromStringWithOptions(tomlContent, LoadOptions{
		Format: FormatTOML,
		Defaults: map[string]interface{}{
			"log.level":     "warn",
			"text.ellipsis": "…",
			"cli.color":     true,
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"log.level", "info"},
		{"text.ellipsis", "…"},
		{"cli.color", "true"},
		{"text.language", "tr"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := cfg.GetString(tt.key); got != tt.want {
				t.Errorf("GetString(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}

	if got := cfg.GetString("absent", "fallback"); got != "fallback" {
		t.Errorf("explicit default ignored, got %q", got)
	}
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("TEXTKIT_LOG_LEVEL", "error")
	t.Setenv("TEXTKIT_TEXT_PAD", "")

	cfg := Empty(LoadOptions{
		EnvPrefix: "textkit",
		Defaults:  map[string]interface{}{"log.level": "warn", "text.pad": " "},
	})

	if got := cfg.GetString("log.level"); got != "error" {
		t.Errorf("env override ignored, got %q", got)
	}
	if got := cfg.GetString("text.pad"); got != "" {
		t.Errorf("empty env value should override, got %q", got)
	}
	if got := cfg.formatEnvKey("text.ellipsis"); got != "TEXTKIT_TEXT_ELLIPSIS" {
		t.Errorf("formatEnvKey() = %q", got)
	}
}

func TestSetHasGetAll(t *testing.T) {
	cfg, err := LoadFromString(yamlContent, FormatYAML)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Has("log.format") {
		t.Error("log.format should be absent")
	}
	cfg.Set("log.format", "logfmt")
	cfg.Set("new.nested.key", 1)

	if !cfg.Has("log.format") || !cfg.Has("new.nested.key") {
		t.Error("Set values should be visible")
	}

	all := cfg.GetAll()
	all["log"].(map[string]interface{})["level"] = "mutated"
	if cfg.GetString("log.level") != "debug" {
		t.Error("GetAll must return a deep copy")
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	options := DiscoveryOptions{
		Paths:      []string{filepath.Join(dir, "missing"), dir},
		Filenames:  []string{"textkit"},
		Extensions: []string{".toml", ".yaml"},
		Defaults:   map[string]interface{}{"text.pad": " "},
	}

	t.Run("no file yields empty config", func(t *testing.T) {
		cfg, err := Discover(options)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.FilePath() != "" || cfg.GetString("text.pad") != " " {
			t.Errorf("unexpected config %s", cfg)
		}
	})

	t.Run("required and missing", func(t *testing.T) {
		required := options
		required.Required = true
		_, err := Discover(required)
		if !tkerror.HasCode(err, tkerror.CodeMissingConfig) {
			t.Errorf("expected MISSING_CONFIG, got %v", err)
		}
	})

	t.Run("finds yaml", func(t *testing.T) {
		path := writeFile(t, dir, "textkit.yaml", yamlContent)
		cfg, err := Discover(options)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.FilePath() != path {
			t.Errorf("FilePath() = %q, want %q", cfg.FilePath(), path)
		}
	})

	if got := len(ListPossibleConfigFiles(options)); got != 4 {
		t.Errorf("ListPossibleConfigFiles() returned %d paths", got)
	}
}

func TestValidate(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("valid", func(t *testing.T) {
		result := cfg.Validate(ValidationRules{
			"log.level":  {Required: true, Type: "string", OneOf: []string{"debug", "info", "warn"}},
			"text.count": {Type: "int"},
			"text.pad":   {Type: "string", MinLen: 1},
			"text.tags":  {Type: "[]string"},
		})
		if !result.Valid || result.Err() != nil {
			t.Errorf("expected valid, got %v", result.Errors)
		}
	})

	tests := []struct {
		name string
		rule ValidationRule
		key  string
		code tkerror.Code
	}{
		{"required missing", ValidationRule{Required: true}, "log.output", tkerror.CodeRequiredField},
		{"wrong type", ValidationRule{Type: "bool"}, "log.level", "CONFIG_VALIDATION_FAILED"},
		{"not allowed", ValidationRule{OneOf: []string{"json"}}, "log.level", "CONFIG_VALIDATION_FAILED"},
		{"pattern", ValidationRule{Pattern: `^[a-z]{2}-[A-Z]{2}$`}, "text.language", "CONFIG_VALIDATION_FAILED"},
		{"graphemes below minimum", ValidationRule{MinLen: 2}, "text.pad", "CONFIG_VALIDATION_FAILED"},
		{"custom check", ValidationRule{Check: func(string) error { return errors.New("nope") }}, "text.pad", "CONFIG_VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cfg.Validate(ValidationRules{tt.key: tt.rule})
			if result.Valid {
				t.Fatal("expected validation failure")
			}
			if !tkerror.HasCode(result.Err(), tt.code) {
				t.Errorf("code = %v, want %v", tkerror.GetCode(result.Err()), tt.code)
			}
		})
	}

	t.Run("environment value is validated", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "loud")
		result := cfg.Validate(ValidationRules{"log.level": {OneOf: []string{"info"}}})
		if result.Valid {
			t.Error("env override should be validated")
		}
	})
}

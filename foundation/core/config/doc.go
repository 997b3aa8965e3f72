// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package documentation for the config module.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-17 v0.2.0: Reduced to the loader used by the textkit CLI

/*
Package config loads TOML and YAML configuration with defaults and
environment variable overrides.

Values are addressed with dotted keys. An environment variable named after
the key, upper-cased with dots replaced by underscores and the prefix in
front, takes precedence over the file: with prefix TEXTKIT the key
log.level is overridden by TEXTKIT_LOG_LEVEL.

# Loading

	cfg, err := config.LoadWithOptions("textkit.toml", config.LoadOptions{
		EnvPrefix: "TEXTKIT",
		Defaults: map[string]interface{}{
			"log.level":     "warn",
			"text.ellipsis": "…",
		},
	})

	// or search the working directory and the user config directory
	cfg, err := config.Discover(config.DefaultDiscoveryOptions("textkit"))

# Access

	level := cfg.GetString("log.level")
	pad := cfg.GetString("text.pad", " ")

# Validation

	result := cfg.Validate(config.ValidationRules{
		"log.format": {Type: "string", OneOf: []string{"json", "text", "console", "logfmt"}},
		"text.pad":   {Type: "string", MinLen: 1},
	})
	if err := result.Err(); err != nil {
		return err
	}
*/
package config

// ============================================================================
// textkit - Unicode Text Toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating command line loggers
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	tklog "github.com/msto63/textkit/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Command or component name
	Name string

	// Log level (trace, debug, info, warn, error, off)
	Level string

	// Output format: "text", "json", "console" or "logfmt" (default: text)
	Format string

	// Output writer (default: stderr)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer

	// Correlation ID attached to every entry; empty means none
	CorrelationID string
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// NewLogger creates a Foundation logger from cfg. Unparseable level or
// format values fall back to warn and text; the first parse error is
// returned next to the usable logger.
func NewLogger(cfg LoggerConfig) (*tklog.Logger, error) {
	level, levelErr := tklog.ParseLevel(cfg.Level)
	format, formatErr := parseFormat(cfg.Format)

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}

	// Add additional outputs if specified
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	logger := tklog.NewWithConfig(tklog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})

	if cfg.CorrelationID != "" {
		logger = logger.WithCorrelationID(cfg.CorrelationID)
	}

	if levelErr != nil {
		return logger, levelErr
	}
	return logger, formatErr
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *tklog.Logger {
	logger, _ := NewLogger(DefaultLoggerConfig(name))
	return logger
}

// NewCorrelationID returns a fresh random ID for one command invocation
func NewCorrelationID() string {
	return uuid.NewString()
}

// parseFormat treats an empty format as text
func parseFormat(format string) (tklog.Format, error) {
	if format == "" {
		return tklog.FormatText, nil
	}
	return tklog.ParseFormat(format)
}

// Package log provides structured logging for the textkit command line tool.
//
// Package: log
// Title: textkit Structured Logging
// Description: Structured logging with contextual fields, several output
//              formats, level filtering and integration with the error
//              package. The text library itself never logs; the CLI logs
//              each command with a correlation ID and its duration.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-17 v0.2.0: Reduced to synchronous CLI logging
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelInfo,
//		Format: log.FormatLogfmt,
//		Name:   "textkit",
//	}).WithCorrelationID(id)
//
//	timer := logger.StartTimer("split")
//	parts, err := textx.SplitOnce(text, sep)
//	if err != nil {
//		timer.StopWithError(err)
//		logger.LogError(err)
//	}
//	timer.Stop()
package log

// Package log provides structured logging for textkit.
//
// Package: log
// Title: Structured Logging
// Description: A small leveled logger with persistent fields, JSON / text /
//              logfmt output and support for the textkit error type.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-03
// Modified: 2026-10-08
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//		Name:   "textkit",
//	})
//
//	logger.Info("trimmed input", log.Int("bytes", n))
//	logger.LogError(err) // level follows the error severity
//
//	timer := logger.StartTimer("count")
//	defer timer.Stop()
//
// Loggers are immutable. WithField, WithName and the other With* methods
// return copies, so a logger can be shared between goroutines.
package log

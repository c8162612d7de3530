// ============================================================================
// textkit - Managed UTF-8 Text
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating command-line loggers
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/term"

	tklog "github.com/msto63/textkit/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Name of the logger, usually the command
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: "json", "text", "logfmt" or "auto" (default: auto)
	Format string

	// Destination (default: os.Stderr)
	Output io.Writer

	// Correlation ID attached to every entry. Empty generates a new one.
	CorrelationID string

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "info",
		Format: "auto",
	}
}

// NewLogger creates a Foundation logger. With format "auto" the logger
// writes text to a terminal and JSON everywhere else.
func NewLogger(cfg LoggerConfig) *tklog.Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	format := resolveFormat(cfg.Format, output)

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	correlationID := cfg.CorrelationID
	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	return tklog.NewWithConfig(tklog.Config{
		Level:  parseLevel(cfg.Level),
		Format: format,
		Output: output,
		Name:   cfg.Name,
	}).WithCorrelationID(correlationID)
}

// NewCommandLogger creates a logger for a command with standard configuration
func NewCommandLogger(name, level string) *tklog.Logger {
	cfg := DefaultLoggerConfig(name)
	cfg.Level = level
	return NewLogger(cfg)
}

// resolveFormat maps a format name to a log.Format, consulting the output
// for "auto"
func resolveFormat(name string, output io.Writer) tklog.Format {
	switch strings.ToLower(name) {
	case "json":
		return tklog.FormatJSON
	case "text":
		return tklog.FormatText
	case "logfmt":
		return tklog.FormatLogfmt
	}
	if IsTerminal(output) {
		return tklog.FormatText
	}
	return tklog.FormatJSON
}

// IsTerminal reports whether w is a file attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// parseLevel converts a string level to log.Level, defaulting to info
func parseLevel(level string) tklog.Level {
	parsed, _ := tklog.ParseLevel(level)
	return parsed
}

// KV converts alternating key-value pairs to log.Fields. Non-string keys
// and a trailing key without value are skipped.
func KV(keysAndValues ...interface{}) tklog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(tklog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}

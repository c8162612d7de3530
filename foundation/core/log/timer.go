// File: timer.go
// Title: Operation Timer
// Description: Measures the duration of an operation and writes it as a log
//              entry when stopped.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-03
// Modified: 2026-10-03
//
// Change History:
// - 2026-10-03 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Timer measures one operation
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	fields    Fields
}

// NewTimer starts a timer for operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		start:     time.Now(),
		fields:    make(Fields),
	}
}

// WithField adds a field reported when the timer stops
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop logs the elapsed time at debug level and returns it
func (t *Timer) Stop() time.Duration {
	return t.stop(LevelDebug, nil)
}

// StopWithError logs the elapsed time at error level when err is not nil
func (t *Timer) StopWithError(err error) time.Duration {
	if err == nil {
		return t.Stop()
	}
	return t.stop(LevelError, err)
}

func (t *Timer) stop(level Level, err error) time.Duration {
	elapsed := t.Elapsed()
	if !level.ShouldLog(t.logger.level) {
		return elapsed
	}

	entry := NewEntry(level, t.operation+" finished")
	entry.Logger = t.logger.name
	entry.CorrelationID = t.logger.correlationID
	entry.Error = err
	entry.Duration = elapsed
	for k, v := range t.logger.contextFields {
		entry.Fields[k] = v
	}
	for k, v := range t.fields {
		entry.Fields[k] = v
	}
	entry.Fields["operation"] = t.operation

	t.logger.write(entry)
	return elapsed
}

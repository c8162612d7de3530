// File: logger_test.go
// Title: Logger Tests
// Description: Tests for level filtering, context fields, error logging and
//              timers.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-03
// Modified: 2026-10-08

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

func newBufferLogger(level Level) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: FormatJSON, Output: buf, Name: "test"}), buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown")
	logger.Audit("always")

	lines := decodeLines(t, buf)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %s", len(lines), buf.String())
	}
	if lines[2]["level"] != "audit" {
		t.Errorf("last level = %v, want audit", lines[2]["level"])
	}
}

func TestContextFieldsAreCopied(t *testing.T) {
	base, buf := newBufferLogger(LevelInfo)
	child := base.WithField("component", "textbuf").WithCorrelationID("run-1")

	base.Info("base")
	child.Info("child", Int("bytes", 3))

	lines := decodeLines(t, buf)
	if _, ok := lines[0]["component"]; ok {
		t.Error("WithField leaked into the parent logger")
	}
	if lines[1]["component"] != "textbuf" {
		t.Errorf("component = %v", lines[1]["component"])
	}
	if lines[1]["correlation_id"] != "run-1" {
		t.Errorf("correlation_id = %v", lines[1]["correlation_id"])
	}
	if lines[1]["bytes"] != float64(3) {
		t.Errorf("bytes = %v", lines[1]["bytes"])
	}
	if lines[1]["logger"] != "test" {
		t.Errorf("logger = %v", lines[1]["logger"])
	}
}

func TestLogError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
		wantCode  interface{}
	}{
		{
			name:      "low severity logs at info",
			err:       tkerror.New("bad byte").WithCode(tkerror.CodeInvalidEncoding),
			wantLevel: "info",
			wantCode:  "INVALID_ENCODING",
		},
		{
			name:      "medium severity logs at warn",
			err:       tkerror.New("template").WithCode(tkerror.CodeFormatFailed),
			wantLevel: "warn",
			wantCode:  "FORMAT_FAILED",
		},
		{
			name:      "high severity logs at error",
			err:       tkerror.New("refused").WithCode(tkerror.CodeAllocationFailed).WithDetail("requested", 8),
			wantLevel: "error",
			wantCode:  "ALLOCATION_FAILED",
		},
		{
			name:      "plain error logs at error",
			err:       errors.New("plain"),
			wantLevel: "error",
			wantCode:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace)
			logger.LogError(tt.err)

			lines := decodeLines(t, buf)
			if len(lines) != 1 {
				t.Fatalf("got %d lines, want 1", len(lines))
			}
			if lines[0]["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %v", lines[0]["level"], tt.wantLevel)
			}
			if lines[0]["error_code"] != tt.wantCode {
				t.Errorf("error_code = %v, want %v", lines[0]["error_code"], tt.wantCode)
			}
		})
	}

	logger, buf := newBufferLogger(LevelTrace)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug)

	timer := logger.StartTimer("count").WithField("file", "a.txt")
	if d := timer.Stop(); d < 0 {
		t.Errorf("Stop() = %v", d)
	}
	logger.StartTimer("trim").StopWithError(errors.New("failed"))

	lines := decodeLines(t, buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0]["operation"] != "count" || lines[0]["file"] != "a.txt" {
		t.Errorf("timer fields = %v", lines[0])
	}
	if lines[1]["level"] != "error" || lines[1]["error"] != "failed" {
		t.Errorf("timer error line = %v", lines[1])
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	logger.Error("nothing")
	if logger.IsLevelEnabled(LevelError) {
		t.Error("Discard logger reports error level as enabled")
	}
}

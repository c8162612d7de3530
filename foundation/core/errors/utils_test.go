// File: utils_test.go
// Title: Shared Error Utilities Tests
// Description: Tests for the error builder and the standard constructors.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-09

package errors

import (
	"errors"
	"fmt"
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
			t.Errorf("module = %v, want testmodule", details["module"])
		}
		if details["key"] != "value" {
			t.Errorf("key = %v, want value", details["key"])
		}
		if err.Operation() != "testmodule.test_op" {
			t.Errorf("Operation() = %q", err.Operation())
		}
		if err.Severity() != tkerror.SeverityHigh {
			t.Errorf("Severity() = %v, want high", err.Severity())
		}
		if err.Code() != "TESTMODULE_OPERATION_FAILED" {
			t.Errorf("Code() = %v", err.Code())
		}
	})

	t.Run("error with cause", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewErrorBuilder("testmodule").Operation("test_op").Cause(cause).Build()

		if !errors.Is(err, cause) {
			t.Error("expected error to wrap the cause")
		}
		if err.Error() != "testmodule.test_op failed: underlying error" {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("module without operation", func(t *testing.T) {
		err := NewErrorBuilder("utf8x").Build()
		if err.Code() != "UTF8X_ERROR" {
			t.Errorf("Code() = %v, want UTF8X_ERROR", err.Code())
		}
		if err.Error() != "utf8x failed" {
			t.Errorf("Error() = %q", err.Error())
		}
	})
}

func TestAllocationFailed(t *testing.T) {
	err := AllocationFailed(ModuleTextbuf, "Append", 64, 1000, 1024)

	if !tkerror.HasCode(err, tkerror.CodeAllocationFailed) {
		t.Fatalf("Code() = %v", err.Code())
	}
	if err.Severity() != tkerror.SeverityHigh {
		t.Errorf("Severity() = %v, want high", err.Severity())
	}
	for key, want := range map[string]int{"requested": 64, "in_use": 1000, "limit": 1024} {
		if got, _ := err.Detail(key); got != want {
			t.Errorf("%s = %v, want %d", key, got, want)
		}
	}
	if ExtractModule(err) != ModuleTextbuf {
		t.Errorf("ExtractModule() = %q", ExtractModule(err))
	}
	if ExtractOperation(err) != "textbuf.Append" {
		t.Errorf("ExtractOperation() = %q", ExtractOperation(err))
	}
}

func TestFormatFailed(t *testing.T) {
	cause := errors.New("2 verbs, 1 argument")
	err := FormatFailed(ModuleTextbuf, "NewFormatted", "%s %d", cause)

	if err.Code() != tkerror.CodeFormatFailed {
		t.Errorf("Code() = %v", err.Code())
	}
	if !errors.Is(err, cause) {
		t.Error("cause not wrapped")
	}
	if got, _ := err.Detail("format"); got != "%s %d" {
		t.Errorf("format = %v", got)
	}
}

func TestInvalidEncoding(t *testing.T) {
	err := InvalidEncoding(ModuleTextbuf, "Iterator", 7, "strict")

	if err.Code() != tkerror.CodeInvalidEncoding {
		t.Errorf("Code() = %v", err.Code())
	}
	if err.Severity() != tkerror.SeverityLow {
		t.Errorf("Severity() = %v, want low", err.Severity())
	}
	if err.Error() != "invalid UTF-8 at byte offset 7" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestOperationFailedKeepsCauseCode(t *testing.T) {
	cause := AllocationFailed(ModuleTextbuf, "Clone", 8, 0, 4)
	err := OperationFailed(ModuleCLI, "trim", fmt.Errorf("reading: %w", cause))

	if err.Code() != tkerror.CodeAllocationFailed {
		t.Errorf("Code() = %v, want %v", err.Code(), tkerror.CodeAllocationFailed)
	}
	if err.Severity() != tkerror.SeverityHigh {
		t.Errorf("Severity() = %v, want high", err.Severity())
	}
	if ExtractModule(err) != ModuleCLI {
		t.Errorf("ExtractModule() = %q", ExtractModule(err))
	}
}

func TestInputHelpers(t *testing.T) {
	tests := []struct {
		name string
		err  *tkerror.Error
		code tkerror.Code
	}{
		{"invalid input", InvalidInput(ModuleConfig, "Load", "", "file path"), CodeInvalidInput},
		{"out of range", OutOfRange(ModuleConfig, "Validate", -1, 0, 10), CodeOutOfRange},
		{"not found", NotFound(ModuleConfig, "Discover", "textkit.toml"), CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tt.err.Code(), tt.code)
			}
			if tt.err.Severity() != tkerror.SeverityLow {
				t.Errorf("Severity() = %v, want low", tt.err.Severity())
			}
		})
	}
}

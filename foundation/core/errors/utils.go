// File: utils.go
// Title: Shared Error Construction Utilities
// Description: Fluent error builder and the constructors every textkit
//              package uses for allocation, formatting, encoding and input
//              failures.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-09 v0.2.0: AllocationFailed, FormatFailed, InvalidEncoding

package errors

import (
	"errors"
	"fmt"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardised errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  tkerror.Severity
	explicit  bool
	code      string
}

// NewErrorBuilder creates a new error builder for the given module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: tkerror.SeverityMedium,
	}
}

// Operation sets the operation name
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the severity explicitly
func (eb *ErrorBuilder) Severity(severity tkerror.Severity) *ErrorBuilder {
	eb.severity = severity
	eb.explicit = true
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code string) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the error
func (eb *ErrorBuilder) Build() *tkerror.Error {
	if eb.code == "" {
		eb.code = getModuleErrorCode(eb.module, eb.operation)
	}

	qualified := eb.module
	if eb.operation != "" {
		qualified = eb.module + "." + eb.operation
	}

	if eb.message == "" {
		eb.message = qualified + " failed"
	}

	eb.details["module"] = eb.module

	var err *tkerror.Error
	if eb.cause != nil {
		err = tkerror.Wrap(eb.cause, eb.message)
	} else {
		err = tkerror.New(eb.message)
	}

	severity := eb.severity
	if !eb.explicit {
		severity = tkerror.GetSeverityFromCode(tkerror.Code(eb.code))
	}

	return err.
		WithCode(tkerror.Code(eb.code)).
		WithOperation(qualified).
		WithDetails(eb.details).
		WithSeverity(severity)
}

// AllocationFailed reports that an allocator refused a request. The caller's
// buffer is guaranteed to be untouched when this error is returned.
func AllocationFailed(module, operation string, requested, inUse, limit int) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("allocation of %d bytes refused", requested).
		Code(string(tkerror.CodeAllocationFailed)).
		Detail("requested", requested).
		Detail("in_use", inUse).
		Detail("limit", limit).
		Build()
}

// FormatFailed reports that a template could not be rendered against its arguments
func FormatFailed(module, operation, format string, cause error) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("cannot render template %q", format).
		Cause(cause).
		Code(string(tkerror.CodeFormatFailed)).
		Detail("format", format).
		Build()
}

// InvalidEncoding reports bytes that are not well-formed UTF-8 under policy
func InvalidEncoding(module, operation string, offset int, policy string) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid UTF-8 at byte offset %d", offset).
		Code(string(tkerror.CodeInvalidEncoding)).
		Detail("offset", offset).
		Detail("policy", policy).
		Build()
}

// InvalidInput creates a standardised invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s: expected %s", module, operation, expected).
		Code(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// OutOfRange creates a standardised out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("value %v out of range [%v, %v]", value, min, max).
		Code(CodeOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// NotFound creates a standardised not found error
func NotFound(module, operation string, identifier interface{}) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%v not found", identifier).
		Code(CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// OperationFailed wraps cause as a failure of module.operation
func OperationFailed(module, operation string, cause error) *tkerror.Error {
	b := NewErrorBuilder(module).
		Operation(operation).
		Cause(cause)
	if code := tkerror.GetCode(cause); code != tkerror.CodeUnknown {
		b.Code(string(code))
	}
	if cause != nil {
		b.Severity(severityFromCause(cause))
	}
	return b.Build()
}

// ExtractModule returns the module recorded on a textkit error
func ExtractModule(err error) string {
	var e *tkerror.Error
	if errors.As(err, &e) {
		if module, ok := e.Details()["module"].(string); ok {
			return module
		}
	}
	return ""
}

// ExtractOperation returns the qualified operation recorded on a textkit error
func ExtractOperation(err error) string {
	var e *tkerror.Error
	if errors.As(err, &e) {
		return e.Operation()
	}
	return ""
}

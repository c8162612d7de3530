// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across textkit. Codes classify an
//              error independently of its message so callers and log
//              pipelines can branch on them.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation with core error codes
// - 2026-10-09 v0.2.0: Text engine codes (allocation, format, encoding)

package error

// Code represents a structured error code
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Text engine
	CodeAllocationFailed Code = "ALLOCATION_FAILED"
	CodeFormatFailed     Code = "FORMAT_FAILED"
	CodeInvalidEncoding  Code = "INVALID_ENCODING"
	CodeInvalidOperation Code = "INVALID_OPERATION"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeAllocationFailed, CodeFormatFailed, CodeInvalidEncoding, CodeInvalidOperation,
		CodeConfigError, CodeInvalidConfig, CodeEnvironmentError,
		CodeValidationFailed, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeAllocationFailed:
		return "resource"
	case CodeFormatFailed, CodeInvalidEncoding, CodeInvalidOperation:
		return "text"
	case CodeConfigError, CodeInvalidConfig, CodeEnvironmentError:
		return "configuration"
	case CodeValidationFailed, CodeValueOutOfRange, CodeInvalidInput:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode maps the error code to a process exit status for command line tools
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidEncoding:
		return 2
	case CodeInvalidInput, CodeValidationFailed, CodeValueOutOfRange, CodeFormatFailed:
		return 3
	case CodeConfigError, CodeInvalidConfig, CodeEnvironmentError, CodeNotFound:
		return 4
	case CodeAllocationFailed:
		return 5
	default:
		return 1
	}
}

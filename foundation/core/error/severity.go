// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that loggers and
//              command line tools can react proportionally.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-02
// Modified: 2026-10-02
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller mistake such as malformed input
	SeverityLow Severity = iota

	// SeverityMedium indicates a failed operation with the system intact
	SeverityMedium

	// SeverityHigh indicates resource exhaustion or a broken environment
	SeverityHigh

	// SeverityCritical indicates state that cannot be trusted anymore
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the default severity of an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeAllocationFailed, CodeEnvironmentError:
		return SeverityHigh
	case CodeFormatFailed, CodeConfigError, CodeInvalidConfig, CodeInvalidOperation:
		return SeverityMedium
	case CodeInvalidEncoding, CodeInvalidInput, CodeNotFound,
		CodeValidationFailed, CodeValueOutOfRange:
		return SeverityLow
	default:
		return SeverityMedium
	}
}

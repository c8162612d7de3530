// File: standards.go
// Title: Error Standards for textkit Modules
// Description: Module identifiers and the mapping from module to error code
//              so every package reports failures the same way.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation for error standardisation
// - 2026-10-09 v0.2.0: utf8x and textbuf modules

package errors

import (
	"strings"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

// Module identifiers for error categorisation
const (
	ModuleUTF8x   = "utf8x"
	ModuleTextbuf = "textbuf"
	ModuleStringx = "stringx"
	ModuleConfig  = "config"
	ModuleCLI     = "cli"
)

// Module independent codes used by the helpers below
const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeOperationFailed = "OPERATION_FAILED"
	CodeOutOfRange      = "VALUE_OUT_OF_RANGE"
	CodeNotFound        = "NOT_FOUND"
)

// moduleCode builds MODULE_SUFFIX, e.g. TEXTBUF_OPERATION_FAILED
func moduleCode(module, suffix string) string {
	if module == "" {
		return suffix
	}
	return strings.ToUpper(module) + "_" + suffix
}

// getModuleErrorCode returns the default code for a failed module operation
func getModuleErrorCode(module, operation string) string {
	if operation == "" {
		return moduleCode(module, "ERROR")
	}
	return moduleCode(module, "OPERATION_FAILED")
}

// severityFromCause derives the severity of a wrapping error from its cause
func severityFromCause(cause error) tkerror.Severity {
	if cause == nil {
		return tkerror.SeverityMedium
	}
	return tkerror.GetSeverity(cause)
}

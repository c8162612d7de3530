// Package error provides the structured error type used across textkit.
//
// Package: error
// Title: textkit Error Handling
// Description: An Error carries a Code, a Severity, the failing operation and
//              free-form details next to its message. Codes are what callers
//              branch on; messages are for humans.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-09 v0.2.0: Text engine codes, errors.As aware helpers
//
// Usage:
//
//	import tkerror "github.com/msto63/textkit/foundation/core/error"
//
//	err := tkerror.New("allocation refused").
//		WithCode(tkerror.CodeAllocationFailed).
//		WithDetail("requested", 4096).
//		WithOperation("textbuf.Append")
//
//	if tkerror.HasCode(err, tkerror.CodeAllocationFailed) {
//		// content of the text is unchanged, report and move on
//	}
//
// Wrap keeps the code, severity and details of a wrapped *Error so that the
// classification survives added context. HasCode walks the whole chain,
// including errors wrapped with fmt.Errorf("...: %w", err).
package error

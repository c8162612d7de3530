// Package errors provides the shared error constructors of textkit.
//
// Package: errors
// Title: Standardised Error Construction
// Description: Every textkit package builds its errors through this package
//              so codes, operations and details line up. The constructors
//              return *error.Error values from foundation/core/error.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-02
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-02 v0.1.0: Initial implementation
// - 2026-10-09 v0.2.0: Text engine constructors
//
// Usage:
//
//	return tkerrors.AllocationFailed(tkerrors.ModuleTextbuf, "Append", n, inUse, limit)
//
//	err := tkerrors.NewErrorBuilder(tkerrors.ModuleConfig).
//		Operation("Load").
//		Cause(ioErr).
//		Detail("path", path).
//		Build()
//
// Operations are recorded qualified by module ("textbuf.Append") so log
// lines can be grouped without parsing messages.
package errors

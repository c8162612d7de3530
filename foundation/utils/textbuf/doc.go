// File: doc.go
// Title: Package Documentation for textbuf
// Description: Package textbuf provides Text, a mutable owned UTF-8 string
//              whose storage comes from a pluggable Allocator.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-06
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-06 v0.1.0: Initial implementation
// - 2026-10-12 v0.2.0: Options from configuration, locale formatting

// Package textbuf provides Text, a mutable owned UTF-8 string whose bytes
// live in a buffer obtained from an Allocator.
//
// # Ownership
//
// A Text owns its buffer. Constructors copy their input, Clone copies the
// content and Release hands the buffer back to the allocator. Views from
// Bytes and iterators from Iterator become stale on the next mutation;
// using a stale view never panics but may observe old or moved bytes.
//
// # Allocation
//
// GoAllocator uses the Go heap. LimitedAllocator puts a byte budget on a
// parent allocator and counts allocations, resizes and refusals:
//
//	budget := textbuf.NewLimitedAllocator(nil, 1<<20)
//	txt, err := textbuf.NewString(budget, "hello")
//	if textbuf.IsAllocationError(err) {
//		// the budget is exhausted, nothing was changed
//	}
//
// Every mutating operation either completes or leaves the content as it
// was. Appending nothing never calls the allocator.
//
// # Encoding
//
// Content is never repaired. IsValidUTF8 and Iterator validate under the
// Text's surrogate policy: strict by default, lenient (WTF-8) on request.
// Trim skips content that does not validate.
//
// # Formatting
//
// NewFormatted renders fmt templates and rejects verbs without operands or
// operands without verbs. NewFormattedLocale uses golang.org/x/text/message
// for locale number formatting.
//
// # Configuration
//
// OptionsFromConfig reads allocator.max_bytes, validation.surrogates and
// format.locale from a config.Config, with TEXTKIT_* environment overrides.
package textbuf

// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides string helpers for plain Go strings
//              that classify whitespace and count scalars exactly like the
//              managed text buffers in textbuf.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-03
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-03 v0.1.0: Initial implementation with core string utilities
// - 2026-10-12 v0.2.0: Whitespace set and counting shared with utf8x

// Package stringx provides string helpers for plain Go strings.
//
// # Overview
//
// The helpers complement the managed text type in textbuf for code that
// holds ordinary strings. Blank checks, trimming and line splitting use the
// classifier in utf8x, so a string and a Text holding the same bytes agree:
//
//	stringx.Trim("\u00a0 text \u3000") // "text"
//	stringx.IsBlank("\u2028\t")        // true
//	stringx.IsBlank("\u200b")          // false, zero width space is content
//
// Strings that are not valid UTF-8 are never trimmed.
//
// # Counting and Truncation
//
// CharCount and Truncate work in scalars, not bytes:
//
//	stringx.CharCount("日本語")              // 3
//	stringx.Truncate("こんにちは世界", 5, "…") // "こんにち…"
//
// # Lines
//
// SplitLines and CountLines break at LF, CR, CRLF, U+2028 and U+2029.
//
// # Random Strings
//
// RandomString draws scalars from a charset using crypto/rand. Whitespace,
// Multilingual and TrimAlphabet are charsets for property tests over the
// trimming and counting code.
package stringx

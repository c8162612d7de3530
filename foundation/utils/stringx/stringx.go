// File: stringx.go
// Title: Core String Utility Functions
// Description: String helpers for plain Go strings that share the
//              whitespace classification and scalar counting of the textkit
//              engine, so a string and a Text trim and count alike.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-03
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-03 v0.1.0: Initial implementation with core utilities
// - 2026-10-12 v0.2.0: Whitespace and counting delegated to utf8x

package stringx

import (
	"unicode/utf8"

	tkerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/utf8x"
)

// IsEmpty returns true if the string is empty (length 0).
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace
// and line terminators.
func IsBlank(s string) bool {
	for i := 0; i < len(s); {
		if c := s[i]; c < utf8.RuneSelf {
			if !utf8x.IsASCIISpace(c) {
				return false
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if !utf8x.IsWhitespaceOrLineTerminator(r) {
			return false
		}
		i += size
	}
	return true
}

// IsNotEmpty returns true if the string is not empty.
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsNotBlank returns true if the string contains something besides whitespace.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Trim removes leading and trailing whitespace and line terminators. Strings
// that are not valid UTF-8 are returned unchanged, matching Text.Trim.
func Trim(s string) string {
	return trim(s, true, true)
}

// TrimStart removes leading whitespace and line terminators.
func TrimStart(s string) string {
	return trim(s, true, false)
}

// TrimEnd removes trailing whitespace and line terminators.
func TrimEnd(s string) string {
	return trim(s, false, true)
}

func trim(s string, leading, trailing bool) string {
	if s == "" || !utf8.ValidString(s) {
		return s
	}
	start, end := utf8x.TrimBounds(s, leading, trailing)
	return s[start:end]
}

// CharCount returns the number of scalars in s.
func CharCount(s string) int {
	return utf8x.Count(s)
}

// Truncate shortens s to at most maxLen scalars, ending with ellipsis when
// something was cut. It never splits a multi-byte sequence.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8x.Count(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8x.Count(ellipsis)
	if ellipsisLen >= maxLen {
		return s[:byteOffset(s, maxLen)]
	}
	return s[:byteOffset(s, maxLen-ellipsisLen)] + ellipsis
}

// byteOffset returns the offset at which scalar number n starts
func byteOffset(s string, n int) int {
	off := 0
	for ; n > 0 && off < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[off:])
		off += size
	}
	return off
}

// TruncateWithValidation is Truncate rejecting a negative maxLen
func TruncateWithValidation(s string, maxLen int, ellipsis string) (string, error) {
	if maxLen < 0 {
		return "", tkerrors.InvalidInput(tkerrors.ModuleStringx, "TruncateWithValidation", maxLen, "non-negative length")
	}
	return Truncate(s, maxLen, ellipsis), nil
}

// Reverse reverses the scalars of s.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// SplitLines splits s at every line terminator. CRLF counts as one break.
// A trailing terminator does not start an extra empty line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}

	var lines []string
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !utf8x.IsLineTerminator(r) {
			i += size
			continue
		}
		lines = append(lines, s[start:i])
		i += size
		if r == '\r' && i < len(s) && s[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// CountLines returns len(SplitLines(s)) without building the slice
func CountLines(s string) int {
	n := 0
	pendingCR := false
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if r == '\n' && pendingCR {
			pendingCR = false
			continue
		}
		pendingCR = r == '\r'
		if utf8x.IsLineTerminator(r) {
			n++
		}
	}
	if s != "" && !endsWithTerminator(s) {
		n++
	}
	return n
}

func endsWithTerminator(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return utf8x.IsLineTerminator(r)
}

// FirstNonBlank returns the first argument that is not blank.
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// FromBlankDefault returns s unless it is blank, then defaultValue.
func FromBlankDefault(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}

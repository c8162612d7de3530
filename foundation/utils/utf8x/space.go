// File: space.go
// Title: Codepoint Classification
// Description: Classifies scalar values as whitespace or line terminators.
//              The whitespace set is the one used by ECMAScript trim: the
//              ASCII controls TAB..CR, SPACE, NBSP, the Zs separators, the
//              line and paragraph separators and the byte order mark.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-05
// Modified: 2026-10-05
//
// Change History:
// - 2026-10-05 v0.1.0: Initial implementation

package utf8x

import "unicode/utf8"

var asciiSpace = [utf8.RuneSelf]bool{'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true}

// IsWhitespaceOrLineTerminator reports whether r is trimmed by Trim.
// It is true exactly for U+0009..U+000D, U+0020, U+00A0, U+1680,
// U+2000..U+200A, U+2028, U+2029, U+202F, U+205F, U+3000 and U+FEFF.
func IsWhitespaceOrLineTerminator(r rune) bool {
	if r < utf8.RuneSelf {
		return r >= 0 && asciiSpace[r]
	}
	switch r {
	case 0x00A0, 0x1680, 0x2028, 0x2029, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return r >= 0x2000 && r <= 0x200A
}

// IsLineTerminator reports whether r ends a line: LF, CR, U+2028 or U+2029
func IsLineTerminator(r rune) bool {
	switch r {
	case '\n', '\r', 0x2028, 0x2029:
		return true
	}
	return false
}

// IsASCIISpace reports whether the single byte c is ASCII whitespace
func IsASCIISpace(c byte) bool {
	return c < utf8.RuneSelf && asciiSpace[c]
}

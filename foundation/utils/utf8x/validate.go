// File: validate.go
// Title: UTF-8 Validation
// Description: Well-formedness checks for byte sequences. The strict policy
//              follows the Unicode definition of UTF-8. The lenient policy
//              additionally accepts encoded surrogates (WTF-8) for data
//              produced from unpaired UTF-16. As in WTF-8, a lead surrogate
//              directly followed by a trail surrogate is ill-formed, since
//              that pair has a four-byte encoding.
// Author: msto63
// Version: v0.1.2
// Created: 2026-10-05
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-05 v0.1.0: Initial implementation
// - 2026-10-08 v0.1.1: FirstInvalid for error reporting
// - 2026-10-15 v0.1.2: Reject surrogate pairs under the lenient policy

package utf8x

import (
	"strings"
	"unicode/utf8"

	tkerrors "github.com/msto63/textkit/foundation/core/errors"
)

// SurrogatePolicy decides whether encoded surrogates U+D800..U+DFFF pass validation
type SurrogatePolicy int

const (
	// SurrogatesReject is strict UTF-8 and the default
	SurrogatesReject SurrogatePolicy = iota

	// SurrogatesAllow accepts unpaired ED A0..BF xx sequences (WTF-8)
	SurrogatesAllow
)

// String returns the configuration name of the policy
func (p SurrogatePolicy) String() string {
	switch p {
	case SurrogatesReject:
		return "strict"
	case SurrogatesAllow:
		return "lenient"
	default:
		return "unknown"
	}
}

// ParseSurrogatePolicy parses a configuration value. The empty string
// selects the strict default.
func ParseSurrogatePolicy(s string) (SurrogatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict", "reject":
		return SurrogatesReject, nil
	case "lenient", "allow", "wtf8", "wtf-8":
		return SurrogatesAllow, nil
	}
	return SurrogatesReject, tkerrors.InvalidInput(tkerrors.ModuleUTF8x, "ParseSurrogatePolicy", s, "strict or lenient")
}

// Valid reports whether p is well-formed UTF-8 under the strict policy
func Valid(p []byte) bool {
	return utf8.Valid(p)
}

// ValidString is Valid for strings
func ValidString(s string) bool {
	return utf8.ValidString(s)
}

// ValidWithPolicy reports whether p is well-formed under policy
func ValidWithPolicy(p []byte, policy SurrogatePolicy) bool {
	if policy == SurrogatesReject {
		return utf8.Valid(p)
	}
	return FirstInvalid(p, policy) < 0
}

// FirstInvalid returns the byte offset of the first ill-formed sequence in
// p, or -1 when p is well-formed under policy
func FirstInvalid(p []byte, policy SurrogatePolicy) int {
	for i := 0; i < len(p); {
		if p[i] < utf8.RuneSelf {
			i++
			continue
		}
		n := wellFormedLen(p, i, policy)
		if n == 0 || isSurrogatePair(p, i, policy) {
			return i
		}
		i += n
	}
	return -1
}

// isSurrogatePair reports whether a lead surrogate at p[i] is directly
// followed by a well-formed trail surrogate
func isSurrogatePair(p []byte, i int, policy SurrogatePolicy) bool {
	if policy != SurrogatesAllow || p[i] != 0xED || p[i+1] < 0xA0 || p[i+1] > 0xAF {
		return false
	}
	j := i + 3
	return j+1 < len(p) && p[j] == 0xED && p[j+1] >= 0xB0 && wellFormedLen(p, j, policy) == 3
}

// wellFormedLen returns the length of the well-formed multi-byte sequence
// starting at p[i], or 0. Ranges are those of Unicode table 3-7.
func wellFormedLen(p []byte, i int, policy SurrogatePolicy) int {
	lead := p[i]
	size := 0
	lo, hi := byte(0x80), byte(0xBF)

	switch {
	case lead >= 0xC2 && lead <= 0xDF:
		size = 2
	case lead == 0xE0:
		size, lo = 3, 0xA0
	case lead == 0xED:
		size = 3
		if policy == SurrogatesReject {
			hi = 0x9F
		}
	case lead >= 0xE1 && lead <= 0xEF:
		size = 3
	case lead == 0xF0:
		size, lo = 4, 0x90
	case lead >= 0xF1 && lead <= 0xF3:
		size = 4
	case lead == 0xF4:
		size, hi = 4, 0x8F
	default:
		return 0
	}

	if i+size > len(p) {
		return 0
	}
	if b := p[i+1]; b < lo || b > hi {
		return 0
	}
	for j := i + 2; j < i+size; j++ {
		if p[j]&0xC0 != 0x80 {
			return 0
		}
	}
	return size
}

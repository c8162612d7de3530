// File: decode.go
// Title: Scalar Decoding and Counting
// Description: Decodes scalar values from UTF-8 that was validated before.
//              The decoders trust the lead byte and never inspect
//              continuation bytes, so they also decode lenient surrogates.
//              On malformed input they return RuneError but never panic.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-05
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-05 v0.1.0: Initial implementation with lead-byte table
// - 2026-10-09 v0.1.1: Generic Count and TrimBounds for strings and bytes

package utf8x

import "unicode/utf8"

// UTFMax is the longest encoded scalar
const UTFMax = utf8.UTFMax

// leadLen maps a lead byte to its sequence length. Continuation bytes and
// bytes that can never start a sequence count as 1.
var leadLen [256]uint8

func init() {
	for i := range leadLen {
		switch b := byte(i); {
		case b < 0xC0:
			leadLen[i] = 1
		case b < 0xE0:
			leadLen[i] = 2
		case b < 0xF0:
			leadLen[i] = 3
		case b < 0xF8:
			leadLen[i] = 4
		default:
			leadLen[i] = 1
		}
	}
}

// Scalar is a decoded scalar value together with its encoded size
type Scalar struct {
	Value rune
	Size  int
}

// SequenceLen returns the encoded length announced by lead
func SequenceLen(lead byte) int {
	return int(leadLen[lead])
}

// IsContinuation reports whether b is a UTF-8 continuation byte
func IsContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// DecodeScalar decodes the first scalar of p and returns it with its size.
// It returns (RuneError, 0) for empty input and (RuneError, 1) for a stray
// continuation byte or a sequence cut off by the end of p.
func DecodeScalar(p []byte) (rune, int) {
	return decodeAt(p, 0)
}

// DecodeLastScalar decodes the scalar ending at the end of p
func DecodeLastScalar(p []byte) (rune, int) {
	return decodeBefore(p, len(p))
}

func decodeAt[S ~string | ~[]byte](p S, i int) (rune, int) {
	if i >= len(p) {
		return utf8.RuneError, 0
	}
	b0 := p[i]
	if b0 < utf8.RuneSelf {
		return rune(b0), 1
	}

	size := int(leadLen[b0])
	if size == 1 || i+size > len(p) {
		return utf8.RuneError, 1
	}

	switch size {
	case 2:
		return rune(b0&0x1F)<<6 | rune(p[i+1]&0x3F), 2
	case 3:
		return rune(b0&0x0F)<<12 | rune(p[i+1]&0x3F)<<6 | rune(p[i+2]&0x3F), 3
	default:
		return rune(b0&0x07)<<18 | rune(p[i+1]&0x3F)<<12 | rune(p[i+2]&0x3F)<<6 | rune(p[i+3]&0x3F), 4
	}
}

// decodeBefore decodes the scalar that ends at offset end
func decodeBefore[S ~string | ~[]byte](p S, end int) (rune, int) {
	if end <= 0 {
		return utf8.RuneError, 0
	}
	if p[end-1] < utf8.RuneSelf {
		return rune(p[end-1]), 1
	}

	start := prevBoundary(p, end)
	r, size := decodeAt(p, start)
	if start+size != end {
		return utf8.RuneError, 1
	}
	return r, size
}

// prevBoundary backs up from end over at most three continuation bytes
func prevBoundary[S ~string | ~[]byte](p S, end int) int {
	start := end - 1
	limit := end - UTFMax
	if limit < 0 {
		limit = 0
	}
	for start > limit && IsContinuation(p[start]) {
		start--
	}
	return start
}

// Count returns the number of scalars in p. It walks the lead-byte table
// without validating, so the result for malformed input is unspecified.
func Count[S ~string | ~[]byte](p S) int {
	n := 0
	for i := 0; i < len(p); n++ {
		if p[i] < utf8.RuneSelf {
			i++
			continue
		}
		i += int(leadLen[p[i]])
	}
	return n
}

// TrimBounds returns the half-open range of p left after removing leading
// and/or trailing whitespace and line terminators. p must be well-formed.
// All-whitespace input yields an empty range at 0.
func TrimBounds[S ~string | ~[]byte](p S, leading, trailing bool) (start, end int) {
	end = len(p)

	if leading {
		for start < end {
			r, size := decodeAt(p, start)
			if !IsWhitespaceOrLineTerminator(r) {
				break
			}
			start += size
		}
		if start == end {
			return 0, 0
		}
	}

	if trailing {
		for end > start {
			r, size := decodeBefore(p, end)
			if !IsWhitespaceOrLineTerminator(r) {
				break
			}
			end -= size
		}
		if end == start {
			return 0, 0
		}
	}

	return start, end
}

// File: doc.go
// Title: UTF-8 Primitives Package Documentation
// Description: Package utf8x holds the byte-level UTF-8 building blocks
//              used by textbuf and stringx.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-05
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-05 v0.1.0: Initial implementation
// - 2026-10-09 v0.1.1: Generic helpers for strings and byte slices

/*
Package utf8x provides UTF-8 validation, scalar decoding and whitespace
classification on raw byte views.

# Validation

Valid applies strict UTF-8. ValidWithPolicy can additionally accept encoded
surrogates, which appear when unpaired UTF-16 is converted byte by byte:

	utf8x.Valid([]byte{0xED, 0xA0, 0x80})                                // false
	utf8x.ValidWithPolicy([]byte{0xED, 0xA0, 0x80}, utf8x.SurrogatesAllow) // true

The lenient policy follows WTF-8: a lead surrogate encoded directly before a
trail surrogate is rejected, because that pair must use the four-byte form.

FirstInvalid reports where a buffer stops being well-formed.

# Decoding

The decoders assume validated input. SequenceLen reads the length from the
lead byte, and DecodeScalar and Count rely on it. Malformed input never
causes a panic but produces unspecified values.

	it := utf8x.NewIterator(p)
	for r, ok := it.Next(); ok; r, ok = it.Next() {
		...
	}

	it.SeekEnd()
	for r, ok := it.Prev(); ok; r, ok = it.Prev() {
		...
	}

# Classification

IsWhitespaceOrLineTerminator is the set removed by trimming. TrimBounds
applies it to a string or byte slice and returns the kept range.
*/
package utf8x

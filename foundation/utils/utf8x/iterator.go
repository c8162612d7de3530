// File: iterator.go
// Title: Bidirectional Scalar Iterator
// Description: A byte cursor over a borrowed UTF-8 view that steps one
//              scalar at a time in either direction.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-06
// Modified: 2026-10-06
//
// Change History:
// - 2026-10-06 v0.1.0: Initial implementation

package utf8x

// Iterator walks the scalars of a byte view. It does not own the bytes.
// The view must not be mutated while the iterator is in use; an iterator
// obtained from a textbuf.Text is stale after any mutation of that Text.
// A stale iterator keeps reading the bytes it was created over and never
// panics, but what it yields is unspecified.
//
// The zero value is an iterator over an empty view.
type Iterator struct {
	data []byte
	pos  int
}

// NewIterator returns an iterator positioned before the first scalar of p
func NewIterator(p []byte) *Iterator {
	return &Iterator{data: p}
}

// NextBytes returns the encoded bytes of the scalar at the cursor and
// advances past it. The result aliases the view.
func (it *Iterator) NextBytes() ([]byte, bool) {
	if it.pos >= len(it.data) {
		return nil, false
	}
	end := it.pos + SequenceLen(it.data[it.pos])
	if end > len(it.data) {
		end = len(it.data)
	}
	seg := it.data[it.pos:end:end]
	it.pos = end
	return seg, true
}

// Next decodes the scalar at the cursor and advances past it
func (it *Iterator) Next() (rune, bool) {
	s, ok := it.NextScalar()
	return s.Value, ok
}

// NextScalar is Next returning the encoded size as well
func (it *Iterator) NextScalar() (Scalar, bool) {
	seg, ok := it.NextBytes()
	if !ok {
		return Scalar{}, false
	}
	r, _ := DecodeScalar(seg)
	return Scalar{Value: r, Size: len(seg)}, true
}

// PrevBytes returns the encoded bytes of the scalar before the cursor and
// moves the cursor to its first byte
func (it *Iterator) PrevBytes() ([]byte, bool) {
	if it.pos <= 0 {
		return nil, false
	}
	if it.pos > len(it.data) {
		it.pos = len(it.data)
	}
	start := prevBoundary(it.data, it.pos)
	seg := it.data[start:it.pos:it.pos]
	it.pos = start
	return seg, true
}

// Prev decodes the scalar before the cursor and moves back over it
func (it *Iterator) Prev() (rune, bool) {
	s, ok := it.PrevScalar()
	return s.Value, ok
}

// PrevScalar is Prev returning the encoded size as well
func (it *Iterator) PrevScalar() (Scalar, bool) {
	seg, ok := it.PrevBytes()
	if !ok {
		return Scalar{}, false
	}
	r, _ := DecodeScalar(seg)
	return Scalar{Value: r, Size: len(seg)}, true
}

// SeekStart moves the cursor to offset 0
func (it *Iterator) SeekStart() {
	it.pos = 0
}

// SeekEnd moves the cursor past the last byte
func (it *Iterator) SeekEnd() {
	it.pos = len(it.data)
}

// Pos returns the cursor's byte offset
func (it *Iterator) Pos() int {
	return it.pos
}

// Len returns the length of the view in bytes
func (it *Iterator) Len() int {
	return len(it.data)
}

// File: trim.go
// Title: Whitespace Trimming
// Description: In-place removal of leading and trailing whitespace and line
//              terminators. The kept bytes are moved to offset 0 and the
//              buffer is shrunk through the allocator.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-07
// Modified: 2026-10-11
//
// Change History:
// - 2026-10-07 v0.1.0: Initial implementation
// - 2026-10-11 v0.1.1: Shared bounds scan with utf8x

package textbuf

import "github.com/msto63/textkit/foundation/utils/utf8x"

// Trim removes leading and trailing whitespace and line terminators.
// Empty content and content that is not valid under t's policy are left
// as they are.
func (t *Text) Trim() {
	t.trim(true, true)
}

// TrimStart removes leading whitespace and line terminators
func (t *Text) TrimStart() {
	t.trim(true, false)
}

// TrimEnd removes trailing whitespace and line terminators
func (t *Text) TrimEnd() {
	t.trim(false, true)
}

func (t *Text) trim(leading, trailing bool) {
	if len(t.buf) == 0 || !t.IsValidUTF8() {
		return
	}

	start, end := utf8x.TrimBounds(t.buf, leading, trailing)
	if start == 0 && end == len(t.buf) {
		return
	}

	n := end - start
	if start > 0 {
		copy(t.buf, t.buf[start:end])
	}
	t.shrink(n)
}

// shrink sets the length to n, returning capacity to the allocator when it
// agrees. A refused shrink only truncates.
func (t *Text) shrink(n int) {
	if buf, err := t.allocator().Resize(t.buf, n); err == nil {
		t.buf = buf
		return
	}
	t.buf = t.buf[:n]
}

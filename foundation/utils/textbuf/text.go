// File: text.go
// Title: Managed Text Buffer
// Description: Text owns a UTF-8 byte buffer obtained from an Allocator.
//              Every operation either succeeds completely or leaves the
//              bytes untouched; no operation repairs invalid input.
// Author: msto63
// Version: v0.2.1
// Created: 2026-10-06
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-06 v0.1.0: Initial implementation
// - 2026-10-12 v0.2.0: Surrogate policy per Text, io.Writer / io.ReaderFrom
// - 2026-10-15 v0.2.1: nil Text accepted by AppendText and SetText

package textbuf

import (
	"bytes"
	"errors"
	"io"

	"golang.org/x/text/language"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	tkerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/utf8x"
)

// Text is a mutable, owned UTF-8 string. The zero value is an empty Text
// using DefaultAllocator.
//
// A Text has a single owner and is not safe for concurrent use. Views
// returned by Bytes and iterators returned by Iterator are invalidated by
// the next mutating call.
type Text struct {
	buf    []byte
	alloc  Allocator
	policy utf8x.SurrogatePolicy
}

// New returns a Text holding a copy of p
func New(a Allocator, p []byte) (*Text, error) {
	return From(a, p)
}

// NewString returns a Text holding a copy of s
func NewString(a Allocator, s string) (*Text, error) {
	return From(a, s)
}

// From returns a Text holding a copy of s. The source is never aliased.
func From[S ~string | ~[]byte](a Allocator, s S) (*Text, error) {
	t := Empty(a)
	if len(s) == 0 {
		return t, nil
	}
	buf, err := t.alloc.Alloc(len(s))
	if err != nil {
		return nil, err
	}
	copy(buf, s)
	t.buf = buf
	return t, nil
}

// Empty returns a Text without content. It never allocates.
func Empty(a Allocator) *Text {
	if a == nil {
		a = DefaultAllocator
	}
	return &Text{alloc: a}
}

// NewFormatted renders format with args using fmt verbs and stores the
// result. Mismatched verbs and operands yield a FormatError.
func NewFormatted(a Allocator, format string, args ...interface{}) (*Text, error) {
	return newWithFormatter(a, SprintfFormatter{}, "NewFormatted", format, args...)
}

// NewFormattedLocale is NewFormatted with the number formatting of tag
func NewFormattedLocale(a Allocator, tag language.Tag, format string, args ...interface{}) (*Text, error) {
	return newWithFormatter(a, NewLocaleFormatter(tag), "NewFormattedLocale", format, args...)
}

// NewWithFormatter renders through f. Any error from f is reported as a
// FormatError.
func NewWithFormatter(a Allocator, f Formatter, format string, args ...interface{}) (*Text, error) {
	return newWithFormatter(a, f, "NewWithFormatter", format, args...)
}

func newWithFormatter(a Allocator, f Formatter, op, format string, args ...interface{}) (*Text, error) {
	rendered, err := f.Format(format, args...)
	if err != nil {
		return nil, formatFailed(op, format, err)
	}
	return From(a, rendered)
}

// WithPolicy sets the surrogate policy used by IsValidUTF8, Iterator and
// the trim operations and returns t
func (t *Text) WithPolicy(policy utf8x.SurrogatePolicy) *Text {
	t.policy = policy
	return t
}

// Policy returns the surrogate policy
func (t *Text) Policy() utf8x.SurrogatePolicy {
	return t.policy
}

// Allocator returns the allocator backing t
func (t *Text) Allocator() Allocator {
	return t.allocator()
}

func (t *Text) allocator() Allocator {
	if t.alloc == nil {
		t.alloc = DefaultAllocator
	}
	return t.alloc
}

// Release returns the buffer to the allocator. t is empty afterwards and
// may be reused; releasing twice is a no-op.
func (t *Text) Release() {
	if t.buf != nil {
		t.allocator().Free(t.buf)
	}
	t.buf = nil
}

// Clone returns an independent copy using the same allocator and policy
func (t *Text) Clone() (*Text, error) {
	c, err := From(t.allocator(), t.buf)
	if err != nil {
		return nil, err
	}
	c.policy = t.policy
	return c, nil
}

// Append appends a copy of p. Appending nothing makes no allocator call.
// On error t is unchanged.
func (t *Text) Append(p []byte) error {
	return appendFrom(t, p)
}

// AppendString appends a copy of s
func (t *Text) AppendString(s string) error {
	return appendFrom(t, s)
}

// AppendText appends the content of other, which may be t itself. A nil
// other is empty.
func (t *Text) AppendText(other *Text) error {
	if other == nil {
		return nil
	}
	if other != t {
		return appendFrom(t, other.buf)
	}
	n := len(t.buf)
	if n == 0 {
		return nil
	}
	buf, err := t.allocator().Resize(t.buf, 2*n)
	if err != nil {
		return err
	}
	copy(buf[n:], buf[:n])
	t.buf = buf
	return nil
}

func appendFrom[S ~string | ~[]byte](t *Text, s S) error {
	if len(s) == 0 {
		return nil
	}
	n := len(t.buf)
	buf, err := t.allocator().Resize(t.buf, n+len(s))
	if err != nil {
		return err
	}
	copy(buf[n:], s)
	t.buf = buf
	return nil
}

// Write implements io.Writer by appending p
func (t *Text) Write(p []byte) (int, error) {
	if err := t.Append(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString implements io.StringWriter
func (t *Text) WriteString(s string) (int, error) {
	if err := t.AppendString(s); err != nil {
		return 0, err
	}
	return len(s), nil
}

// ReadFrom implements io.ReaderFrom. Every chunk read from r is appended,
// so an allocator budget bounds how much input is accepted; bytes appended
// before a failure stay in t.
func (t *Text) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	chunk := make([]byte, 32*1024)
	for {
		n, err := r.Read(chunk)
		if n > 0 {
			if aerr := t.Append(chunk[:n]); aerr != nil {
				return total, aerr
			}
			total += int64(n)
		}
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, tkerrors.OperationFailed(tkerrors.ModuleTextbuf, "ReadFrom", err)
		}
	}
}

// Set replaces the content with a copy of p. The new buffer is obtained
// before the old one is freed, so a failure leaves t intact.
func (t *Text) Set(p []byte) error {
	return setFrom(t, p)
}

// SetString replaces the content with a copy of s
func (t *Text) SetString(s string) error {
	return setFrom(t, s)
}

// SetText replaces the content with a copy of other's content. A nil
// other clears t.
func (t *Text) SetText(other *Text) error {
	if other == t {
		return nil
	}
	if other == nil {
		return setFrom(t, []byte(nil))
	}
	return setFrom(t, other.buf)
}

func setFrom[S ~string | ~[]byte](t *Text, s S) error {
	buf, err := t.allocator().Alloc(len(s))
	if err != nil {
		return err
	}
	copy(buf, s)
	t.Release()
	t.buf = buf
	return nil
}

// Clear sets the length to zero and keeps the buffer for reuse
func (t *Text) Clear() {
	t.buf = t.buf[:0]
}

// IsValidUTF8 reports whether the content is well-formed under t's policy
func (t *Text) IsValidUTF8() bool {
	return utf8x.ValidWithPolicy(t.buf, t.policy)
}

// Iterator returns an iterator over the content after validating it. The
// error carries CodeInvalidEncoding and the offset of the first bad byte.
func (t *Text) Iterator() (*utf8x.Iterator, error) {
	if off := utf8x.FirstInvalid(t.buf, t.policy); off >= 0 {
		return nil, tkerrors.InvalidEncoding(tkerrors.ModuleTextbuf, "Iterator", off, t.policy.String())
	}
	return utf8x.NewIterator(t.buf), nil
}

// IteratorUnchecked returns an iterator without validating the content
func (t *Text) IteratorUnchecked() *utf8x.Iterator {
	return utf8x.NewIterator(t.buf)
}

// CharCount returns the number of scalars. The content is not validated.
func (t *Text) CharCount() int {
	return utf8x.Count(t.buf)
}

// Len returns the length in bytes
func (t *Text) Len() int {
	return len(t.buf)
}

// Cap returns the capacity of the current buffer
func (t *Text) Cap() int {
	return cap(t.buf)
}

// Bytes returns a read-only view of the content, valid until the next
// mutation
func (t *Text) Bytes() []byte {
	return t.buf
}

// String returns a copy of the content
func (t *Text) String() string {
	return string(t.buf)
}

// Equal reports whether t and other hold the same bytes
func (t *Text) Equal(other *Text) bool {
	if other == nil {
		return false
	}
	return bytes.Equal(t.buf, other.buf)
}

// IsAllocationError reports whether err was caused by an allocator refusing a request
func IsAllocationError(err error) bool {
	return tkerror.HasCode(err, tkerror.CodeAllocationFailed)
}

// IsFormatError reports whether err came from rendering a template
func IsFormatError(err error) bool {
	return tkerror.HasCode(err, tkerror.CodeFormatFailed)
}

// IsInvalidEncoding reports whether err was caused by ill-formed UTF-8
func IsInvalidEncoding(err error) bool {
	return tkerror.HasCode(err, tkerror.CodeInvalidEncoding)
}

// File: text_test.go
// Title: Managed Text Tests
// Description: Tests for construction, mutation, validation and iteration
//              of Text, including behaviour under refused allocations.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-06
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-06 v0.1.0: Initial tests
// - 2026-10-12 v0.2.0: Surrogate policy, io and stress tests

package textbuf

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/utils/utf8x"
)

// countingAllocator records every call made to it
type countingAllocator struct {
	GoAllocator
	allocs, resizes, frees int
}

func (c *countingAllocator) Alloc(n int) ([]byte, error) {
	c.allocs++
	return c.GoAllocator.Alloc(n)
}

func (c *countingAllocator) Resize(buf []byte, n int) ([]byte, error) {
	c.resizes++
	return c.GoAllocator.Resize(buf, n)
}

func (c *countingAllocator) Free(buf []byte) {
	c.frees++
}

func (c *countingAllocator) calls() int {
	return c.allocs + c.resizes + c.frees
}

// refusingAllocator hands out buffers until refuse is set
type refusingAllocator struct {
	GoAllocator
	refuse bool
}

func (r *refusingAllocator) Alloc(n int) ([]byte, error) {
	if r.refuse && n > 0 {
		return nil, errors.New("refused")
	}
	return r.GoAllocator.Alloc(n)
}

func (r *refusingAllocator) Resize(buf []byte, n int) ([]byte, error) {
	if r.refuse {
		return nil, errors.New("refused")
	}
	return r.GoAllocator.Resize(buf, n)
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"hello",
		"国際化ドメイン名とユニコード文字列",
		"\U0001F600 mixed é \u3000",
		"\xff\xfe not utf8",
	}

	for _, in := range inputs {
		txt, err := NewString(nil, in)
		if err != nil {
			t.Fatalf("NewString(%q) error = %v", in, err)
		}
		if txt.String() != in || txt.Len() != len(in) {
			t.Errorf("round trip of %q gave %q", in, txt.String())
		}

		fromBytes, err := New(nil, []byte(in))
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if !fromBytes.Equal(txt) {
			t.Errorf("New and NewString differ for %q", in)
		}
	}
}

func TestNewCopiesSource(t *testing.T) {
	src := []byte("abc")
	txt, err := New(nil, src)
	if err != nil {
		t.Fatal(err)
	}
	src[0] = 'X'
	if txt.String() != "abc" {
		t.Errorf("Text aliases its source: %q", txt.String())
	}
}

func TestZeroValue(t *testing.T) {
	var txt Text
	if txt.Len() != 0 || txt.CharCount() != 0 || !txt.IsValidUTF8() {
		t.Error("zero Text is not empty and valid")
	}
	if err := txt.AppendString("ok"); err != nil || txt.String() != "ok" {
		t.Errorf("AppendString on zero Text = %q, %v", txt.String(), err)
	}
	if txt.Allocator() != DefaultAllocator {
		t.Error("zero Text does not use DefaultAllocator")
	}
}

func TestEmptyDoesNotAllocate(t *testing.T) {
	c := &countingAllocator{}
	txt := Empty(c)
	if _, err := From(c, ""); err != nil {
		t.Fatal(err)
	}
	if c.calls() != 0 || txt.Cap() != 0 {
		t.Errorf("Empty made %d allocator calls", c.calls())
	}
}

func TestClone(t *testing.T) {
	orig, _ := NewString(nil, "original")
	orig.WithPolicy(utf8x.SurrogatesAllow)

	clone, err := orig.Clone()
	if err != nil {
		t.Fatalf("Clone() error = %v", err)
	}
	if !clone.Equal(orig) || clone.Policy() != utf8x.SurrogatesAllow {
		t.Fatalf("Clone() = %q policy %v", clone.String(), clone.Policy())
	}

	if err := clone.AppendString(" changed"); err != nil {
		t.Fatal(err)
	}
	if orig.String() != "original" {
		t.Errorf("mutating the clone changed the original: %q", orig.String())
	}
	if &clone.Bytes()[0] == &orig.Bytes()[0] {
		t.Error("clone shares the original's buffer")
	}
}

func TestAppend(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"ascii", []string{"hello", " ", "world"}, "hello world"},
		{"multibyte", []string{"日本", "語", "\U0001F600"}, "日本語\U0001F600"},
		{"with empty parts", []string{"", "a", "", "b", ""}, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txt := Empty(nil)
			for i, p := range tt.parts {
				var err error
				if i%2 == 0 {
					err = txt.AppendString(p)
				} else {
					err = txt.Append([]byte(p))
				}
				if err != nil {
					t.Fatalf("append error = %v", err)
				}
			}
			if txt.String() != tt.want {
				t.Errorf("got %q, want %q", txt.String(), tt.want)
			}
		})
	}
}

func TestAppendAssociative(t *testing.T) {
	a, b, c := "\u00a0left", "日本", "right\U0001F600"

	left, _ := NewString(nil, a)
	_ = left.AppendString(b)
	_ = left.AppendString(c)

	bc, _ := NewString(nil, b)
	_ = bc.AppendString(c)
	right, _ := NewString(nil, a)
	_ = right.AppendText(bc)

	if !left.Equal(right) {
		t.Errorf("(a+b)+c = %q, a+(b+c) = %q", left.String(), right.String())
	}
}

func TestAppendEmptyMakesNoCall(t *testing.T) {
	c := &countingAllocator{}
	txt, _ := NewString(c, "content")
	before := c.calls()
	first := &txt.Bytes()[0]

	if err := txt.AppendString(""); err != nil {
		t.Fatal(err)
	}
	if err := txt.Append(nil); err != nil {
		t.Fatal(err)
	}
	if err := txt.AppendText(Empty(nil)); err != nil {
		t.Fatal(err)
	}

	if c.calls() != before {
		t.Errorf("empty appends made %d allocator calls", c.calls()-before)
	}
	if &txt.Bytes()[0] != first || txt.String() != "content" {
		t.Error("empty append changed the buffer")
	}
}

func TestAppendSelf(t *testing.T) {
	for _, a := range []Allocator{GoAllocator{}, NewLimitedAllocator(nil, 64)} {
		txt, _ := NewString(a, "ab語")
		if err := txt.AppendText(txt); err != nil {
			t.Fatalf("AppendText(self) error = %v", err)
		}
		if txt.String() != "ab語ab語" {
			t.Errorf("AppendText(self) = %q", txt.String())
		}
	}

	empty := Empty(nil)
	if err := empty.AppendText(empty); err != nil || empty.Len() != 0 {
		t.Errorf("AppendText(self) on empty = %q, %v", empty.String(), err)
	}
}

func TestNilOtherText(t *testing.T) {
	c := &countingAllocator{}
	txt, _ := NewString(c, "kept")
	calls := c.calls()

	if err := txt.AppendText(nil); err != nil || txt.String() != "kept" || c.calls() != calls {
		t.Errorf("AppendText(nil) = %q, %v, calls %d", txt.String(), err, c.calls()-calls)
	}
	if err := txt.SetText(nil); err != nil || txt.Len() != 0 {
		t.Errorf("SetText(nil) = %q, %v", txt.String(), err)
	}
	if err := txt.AppendString("again"); err != nil || txt.String() != "again" {
		t.Errorf("AppendString after SetText(nil) = %q, %v", txt.String(), err)
	}
}

func TestAppendFailureLeavesContent(t *testing.T) {
	la := NewLimitedAllocator(nil, 8)
	txt, err := NewString(la, "12345")
	if err != nil {
		t.Fatal(err)
	}

	err = txt.AppendString("6789")
	if !IsAllocationError(err) {
		t.Fatalf("AppendString error = %v, want allocation error", err)
	}
	if txt.String() != "12345" {
		t.Errorf("content after failed append = %q", txt.String())
	}
	if n, err := txt.WriteString("abcd"); n != 0 || err == nil {
		t.Errorf("WriteString() = %d, %v", n, err)
	}

	if err := txt.AppendString("678"); err != nil {
		t.Fatalf("append within budget failed: %v", err)
	}
	if txt.String() != "12345678" {
		t.Errorf("got %q", txt.String())
	}
}

func TestSet(t *testing.T) {
	c := &countingAllocator{}
	txt, _ := NewString(c, "first")

	if err := txt.SetString("second value"); err != nil {
		t.Fatal(err)
	}
	if txt.String() != "second value" || c.frees != 1 {
		t.Errorf("SetString() = %q, frees %d", txt.String(), c.frees)
	}

	if err := txt.Set([]byte("日本")); err != nil || txt.String() != "日本" {
		t.Errorf("Set() = %q, %v", txt.String(), err)
	}

	other, _ := NewString(nil, "other")
	if err := txt.SetText(other); err != nil || !txt.Equal(other) {
		t.Errorf("SetText() = %q, %v", txt.String(), err)
	}

	calls := c.calls()
	if err := txt.SetText(txt); err != nil || txt.String() != "other" || c.calls() != calls {
		t.Errorf("SetText(self) = %q, %v", txt.String(), err)
	}

	if err := txt.SetString(""); err != nil || txt.Len() != 0 {
		t.Errorf("SetString(\"\") = %q, %v", txt.String(), err)
	}
}

func TestSetFailureLeavesContent(t *testing.T) {
	r := &refusingAllocator{}
	txt, _ := NewString(r, "keep me")
	r.refuse = true

	if err := txt.SetString("replacement"); err == nil {
		t.Fatal("SetString succeeded with a refusing allocator")
	}
	if txt.String() != "keep me" {
		t.Errorf("content after failed set = %q", txt.String())
	}
}

func TestReleaseAndClear(t *testing.T) {
	la := NewLimitedAllocator(nil, 64)
	txt, _ := NewString(la, "some content")

	txt.Clear()
	if txt.Len() != 0 || txt.Cap() == 0 {
		t.Errorf("Clear() len %d cap %d", txt.Len(), txt.Cap())
	}
	if la.Stats().InUse == 0 {
		t.Error("Clear() returned the buffer")
	}

	txt.Release()
	txt.Release()
	if s := la.Stats(); s.InUse != 0 || s.Frees != 1 {
		t.Errorf("Stats() after double Release = %+v", s)
	}

	if err := txt.AppendString("reuse"); err != nil || txt.String() != "reuse" {
		t.Errorf("reuse after Release = %q, %v", txt.String(), err)
	}
}

func TestIterator(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		policy     utf8x.SurrogatePolicy
		wantOffset int
	}{
		{"valid", "a語\U0001F600", utf8x.SurrogatesReject, -1},
		{"truncated sequence", "ab\xe6\x97", utf8x.SurrogatesReject, 2},
		{"stray continuation", "x\x80", utf8x.SurrogatesReject, 1},
		{"overlong", "\xc0\xaf", utf8x.SurrogatesReject, 0},
		{"surrogate strict", "ok\xed\xa0\x80", utf8x.SurrogatesReject, 2},
		{"surrogate lenient", "ok\xed\xa0\x80", utf8x.SurrogatesAllow, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txt, _ := NewString(nil, tt.input)
			txt.WithPolicy(tt.policy)

			it, err := txt.Iterator()
			if tt.wantOffset < 0 {
				if err != nil {
					t.Fatalf("Iterator() error = %v", err)
				}
				if !txt.IsValidUTF8() {
					t.Error("IsValidUTF8() = false")
				}
				var sb strings.Builder
				for seg, ok := it.NextBytes(); ok; seg, ok = it.NextBytes() {
					sb.Write(seg)
				}
				if sb.String() != tt.input {
					t.Errorf("iteration produced %q", sb.String())
				}
				return
			}

			if !IsInvalidEncoding(err) || it != nil {
				t.Fatalf("Iterator() = %v, %v; want invalid encoding", it, err)
			}
			var tkErr *tkerror.Error
			if !errors.As(err, &tkErr) {
				t.Fatalf("error type %T", err)
			}
			if off, _ := tkErr.Detail("offset"); off != tt.wantOffset {
				t.Errorf("offset = %v, want %d", off, tt.wantOffset)
			}
			if p, _ := tkErr.Detail("policy"); p != tt.policy.String() {
				t.Errorf("policy detail = %v", p)
			}
			if txt.IsValidUTF8() {
				t.Error("IsValidUTF8() = true")
			}
		})
	}
}

func TestIteratorUnchecked(t *testing.T) {
	txt, _ := NewString(nil, "a\xffb")
	it := txt.IteratorUnchecked()

	var got []rune
	for r, ok := it.Next(); ok; r, ok = it.Next() {
		got = append(got, r)
	}
	if string(got) != "a\uFFFDb" {
		t.Errorf("IteratorUnchecked() produced %q", string(got))
	}
}

func TestCharCount(t *testing.T) {
	tests := []struct {
		input string
		chars int
		bytes int
	}{
		{"", 0, 0},
		{"hello", 5, 5},
		{"語語", 2, 6},
		{"国際化ドメイン名とユニコード文字列", 17, 51},
		{"\U0001F600éa", 3, 7},
	}

	for _, tt := range tests {
		txt, _ := NewString(nil, tt.input)
		if txt.CharCount() != tt.chars || txt.Len() != tt.bytes {
			t.Errorf("%q: CharCount %d Len %d, want %d/%d", tt.input, txt.CharCount(), txt.Len(), tt.chars, tt.bytes)
		}
	}
}

func TestReadFrom(t *testing.T) {
	txt := Empty(nil)
	n, err := txt.ReadFrom(strings.NewReader(strings.Repeat("語", 20000)))
	if err != nil || n != 60000 || txt.CharCount() != 20000 {
		t.Errorf("ReadFrom() = %d, %v; chars %d", n, err, txt.CharCount())
	}

	limited := Empty(NewLimitedAllocator(nil, 1024))
	_, err = limited.ReadFrom(bytes.NewReader(make([]byte, 4096)))
	if !IsAllocationError(err) {
		t.Errorf("ReadFrom() over budget error = %v", err)
	}
	if limited.Len() != 0 {
		t.Errorf("ReadFrom() kept %d bytes of a refused chunk", limited.Len())
	}

	partial := Empty(nil)
	n, err = partial.ReadFrom(io.MultiReader(strings.NewReader("x"), failingReader{}))
	if !errors.Is(err, errRead) || n != 1 || partial.String() != "x" {
		t.Errorf("ReadFrom() = %d, %v; content %q", n, err, partial.String())
	}
}

var errRead = errors.New("read failed")

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errRead
}

func TestWriteImplementsWriter(t *testing.T) {
	var w io.Writer = Empty(nil)
	n, err := io.WriteString(w, "via io")
	if err != nil || n != 6 {
		t.Fatalf("io.WriteString() = %d, %v", n, err)
	}
	if _, err := w.Write([]byte("!")); err != nil {
		t.Fatal(err)
	}
	if w.(*Text).String() != "via io!" {
		t.Errorf("got %q", w.(*Text).String())
	}
}

// Views taken before a mutation may be stale but must never crash.
func TestStaleViewsDoNotPanic(t *testing.T) {
	txt, _ := NewString(nil, "語語語 abc \U0001F600")
	for i := 0; i < 200; i++ {
		view := txt.Bytes()
		it := txt.IteratorUnchecked()
		it.Next()

		switch i % 4 {
		case 0:
			_ = txt.AppendString("é")
		case 1:
			txt.Trim()
		case 2:
			_ = txt.SetString("x\U0001F600y")
		case 3:
			txt.Clear()
			_ = txt.AppendString(" \u3000語 ")
		}

		for _, ok := it.NextBytes(); ok; _, ok = it.NextBytes() {
		}
		for _, ok := it.Prev(); ok; _, ok = it.Prev() {
		}
		_ = utf8x.Count(view)
	}
}

func TestErrorPredicates(t *testing.T) {
	alloc := tkerror.New("x").WithCode(tkerror.CodeAllocationFailed)
	wrapped := tkerror.Wrap(alloc, "outer")
	if !IsAllocationError(wrapped) || IsFormatError(wrapped) || IsInvalidEncoding(wrapped) {
		t.Error("predicates do not follow the error chain")
	}
	if IsAllocationError(nil) || IsAllocationError(errors.New("plain")) {
		t.Error("IsAllocationError matched an unrelated error")
	}
}

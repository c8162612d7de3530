// File: benchmark_test.go
// Title: Performance Benchmarks for StringX Functions
// Description: Benchmarks for the blank, trim, truncate and line helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-03
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-03 v0.1.0: Initial benchmark implementation
// - 2026-10-12 v0.2.0: Trim and line benchmarks

package stringx

import (
	"strings"
	"testing"
)

func BenchmarkIsBlank(b *testing.B) {
	testStrings := []string{"", "   ", "hello", "  hello  ", "\u3000\u00a0\u2028 "}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = IsBlank(testStrings[i%len(testStrings)])
	}
}

func BenchmarkTrim(b *testing.B) {
	s := strings.Repeat(" ", 16) + strings.Repeat("word ", 32) + "\u3000\u00a0"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Trim(s)
	}
}

func BenchmarkTrimStdLib(b *testing.B) {
	s := strings.Repeat(" ", 16) + strings.Repeat("word ", 32) + "\u3000\u00a0"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = strings.TrimSpace(s)
	}
}

func BenchmarkCharCount(b *testing.B) {
	s := strings.Repeat("国際化ドメイン名とユニコード文字列", 16)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = CharCount(s)
	}
}

func BenchmarkTruncateUnicode(b *testing.B) {
	s := strings.Repeat("こんにちは世界", 20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Truncate(s, 50, "…")
	}
}

func BenchmarkReverse(b *testing.B) {
	s := strings.Repeat("hello 世界 ", 10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Reverse(s)
	}
}

func BenchmarkSplitLines(b *testing.B) {
	s := strings.Repeat("line of text\r\n", 50)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = SplitLines(s)
	}
}

func BenchmarkCountLines(b *testing.B) {
	s := strings.Repeat("line of text\r\n", 50)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = CountLines(s)
	}
}

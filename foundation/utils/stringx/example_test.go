// File: example_test.go
// Title: Example Tests for StringX Package Documentation
// Description: Executable examples that serve as both documentation and tests.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-03
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-03 v0.1.0: Initial example implementation
// - 2026-10-12 v0.2.0: Trim and line examples

package stringx_test

import (
	"fmt"

	"github.com/msto63/textkit/foundation/utils/stringx"
)

func ExampleIsBlank() {
	fmt.Println(stringx.IsBlank(""))
	fmt.Println(stringx.IsBlank(" \t \u3000"))
	fmt.Println(stringx.IsBlank(" hello "))
	// Output:
	// true
	// true
	// false
}

func ExampleTrim() {
	fmt.Printf("%q\n", stringx.Trim("     simple spaces    "))
	fmt.Printf("%q\n", stringx.TrimStart("\u00a0\u1680x\u1680"))
	fmt.Printf("%q\n", stringx.TrimEnd("x \u2028"))
	// Output:
	// "simple spaces"
	// "x\u1680"
	// "x"
}

func ExampleCharCount() {
	s := "国際化ドメイン名とユニコード文字列"
	fmt.Println(stringx.CharCount(s), len(s))
	// Output: 17 51
}

func ExampleTruncate() {
	text := "This is a long text that needs to be truncated"

	fmt.Println(stringx.Truncate(text, 20, "..."))
	fmt.Println(stringx.Truncate("short", 10, "..."))
	// Output:
	// This is a long te...
	// short
}

func ExampleSplitLines() {
	for _, line := range stringx.SplitLines("one\r\ntwo\u2028three\n") {
		fmt.Println(line)
	}
	// Output:
	// one
	// two
	// three
}

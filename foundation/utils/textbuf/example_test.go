// File: example_test.go
// Title: Example Tests for textbuf
// Description: Executable examples for the managed text type.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12
//
// Change History:
// - 2026-10-12 v0.1.0: Initial examples

package textbuf_test

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/msto63/textkit/foundation/utils/textbuf"
)

func ExampleText_Trim() {
	txt, _ := textbuf.NewString(nil, "     simple spaces    ")
	txt.Trim()
	fmt.Printf("%q %d\n", txt.String(), txt.CharCount())
	// Output: "simple spaces" 13
}

func ExampleText_Iterator() {
	txt, _ := textbuf.NewString(nil, "añ語")
	it, err := txt.Iterator()
	if err != nil {
		fmt.Println(err)
		return
	}
	for s, ok := it.NextScalar(); ok; s, ok = it.NextScalar() {
		fmt.Printf("%c %d\n", s.Value, s.Size)
	}
	// Output:
	// a 1
	// ñ 2
	// 語 3
}

func ExampleNewLimitedAllocator() {
	budget := textbuf.NewLimitedAllocator(nil, 8)
	txt, _ := textbuf.NewString(budget, "12345")

	err := txt.AppendString("6789")
	fmt.Println(textbuf.IsAllocationError(err), txt.String())
	// Output: true 12345
}

func ExampleNewFormattedLocale() {
	txt, _ := textbuf.NewFormattedLocale(nil, language.English, "%d bytes", 1048576)
	fmt.Println(txt)
	// Output: 1,048,576 bytes
}

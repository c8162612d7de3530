// ============================================================================
// textkit - Managed UTF-8 Text
// ============================================================================
//
// Package:     cmd
// Description: count command reporting lines, words, scalars, bytes and
//              display columns
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/stringx"
	"github.com/msto63/textkit/foundation/utils/textbuf"
	"github.com/msto63/textkit/foundation/utils/utf8x"
)

// counts holds the measurements of one input
type counts struct {
	Lines   int
	Words   int
	Scalars int
	Bytes   int
	Columns int // widest line in terminal cells
}

func (c *counts) add(o counts) {
	c.Lines += o.Lines
	c.Words += o.Words
	c.Scalars += o.Scalars
	c.Bytes += o.Bytes
	if o.Columns > c.Columns {
		c.Columns = o.Columns
	}
}

func newCountCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "count [files...]",
		Short: "Count lines, words, scalars, bytes and display columns",
		Long: `Prints one row per input: lines, whitespace separated words,
Unicode scalars, bytes and the display width of the widest line. Line
terminators are CR, LF, CRLF, LS and PS. A total row follows when more
than one input is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			printCountsHeader(out)

			var total counts
			err := a.eachInput(cmd, args, func(name string, text *textbuf.Text) error {
				c := measure(text)
				total.add(c)
				printCounts(out, c, name)
				return nil
			})
			if err != nil {
				return err
			}

			if len(args) > 1 {
				printCounts(out, total, "total")
			}
			return nil
		},
	}
}

// measure walks the text once for words and once per line for widths
func measure(text *textbuf.Text) counts {
	s := text.String()
	c := counts{
		Lines:   stringx.CountLines(s),
		Scalars: text.CharCount(),
		Bytes:   text.Len(),
	}

	inWord := false
	it := text.IteratorUnchecked()
	for r, ok := it.Next(); ok; r, ok = it.Next() {
		space := utf8x.IsWhitespaceOrLineTerminator(r)
		if !space && !inWord {
			c.Words++
		}
		inWord = !space
	}

	for _, line := range stringx.SplitLines(s) {
		if w := runewidth.StringWidth(line); w > c.Columns {
			c.Columns = w
		}
	}
	return c
}

func printCountsHeader(w io.Writer) {
	fmt.Fprintf(w, "%8s %8s %8s %8s %8s\n", "lines", "words", "scalars", "bytes", "columns")
}

func printCounts(w io.Writer, c counts, name string) {
	fmt.Fprintf(w, "%8d %8d %8d %8d %8d %s\n", c.Lines, c.Words, c.Scalars, c.Bytes, c.Columns, name)
}

// ============================================================================
// textkit - Managed UTF-8 Text
// ============================================================================
//
// Package:     cmd
// Description: trim command removing leading and trailing whitespace
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	tkerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/textbuf"
	"github.com/msto63/textkit/pkg/core/logging"
)

func newTrimCmd(a *app) *cobra.Command {
	var start, end bool

	cmd := &cobra.Command{
		Use:   "trim [file]",
		Short: "Strip Unicode whitespace from both ends",
		Long: `Removes leading and trailing whitespace and line terminators and
writes the result to stdout. Whitespace covers the 25 scalars removed
by ECMAScript trim, including NBSP, U+3000, U+FEFF and the line and
paragraph separators. U+0085 is kept. Reads stdin when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if start && end {
				return tkerrors.InvalidInput(tkerrors.ModuleCLI, "trim", "--start --end", "at most one of --start and --end")
			}

			return a.eachInput(cmd, args, func(name string, text *textbuf.Text) error {
				before := text.Len()
				switch {
				case start:
					text.TrimStart()
				case end:
					text.TrimEnd()
				default:
					text.Trim()
				}

				a.logger.Debug("trimmed", logging.KV("input", name, "removed", before-text.Len()))
				_, err := cmd.OutOrStdout().Write(text.Bytes())
				return err
			})
		},
	}

	cmd.Flags().BoolVar(&start, "start", false, "trim leading whitespace only")
	cmd.Flags().BoolVar(&end, "end", false, "trim trailing whitespace only")
	return cmd
}

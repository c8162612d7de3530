// ============================================================================
// textkit - Managed UTF-8 Text
// ============================================================================
//
// Package:     cmd
// Description: validate command reporting the first invalid offset per input
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/utils/textbuf"
	"github.com/msto63/textkit/foundation/utils/utf8x"
	"github.com/msto63/textkit/pkg/core/logging"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [files...]",
		Short: "Check that inputs are well-formed UTF-8",
		Long: `Checks every input against the configured surrogate policy and
prints the byte offset of the first invalid sequence. Reads stdin when
no file is given. Exits with status 2 when any input is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			invalid, total := 0, 0

			err := a.eachInput(cmd, args, func(name string, text *textbuf.Text) error {
				total++
				offset := utf8x.FirstInvalid(text.Bytes(), text.Policy())
				if offset < 0 {
					fmt.Fprintf(out, "%s: ok (%d scalars, %d bytes)\n", name, text.CharCount(), text.Len())
					return nil
				}

				invalid++
				fmt.Fprintf(out, "%s: invalid UTF-8 at byte %d (%s)\n", name, offset, text.Policy())
				a.logger.Info("invalid input", logging.KV(
					"input", name,
					"offset", offset,
					"policy", text.Policy().String(),
				))
				return nil
			})
			if err != nil {
				return err
			}

			if invalid > 0 {
				return tkerror.Newf("%d of %d inputs are not valid UTF-8", invalid, total).
					WithCode(tkerror.CodeInvalidEncoding).
					WithOperation("cli.validate")
			}
			return nil
		},
	}
}

// ============================================================================
// textkit - Managed UTF-8 Text
// ============================================================================
//
// Package:     cmd
// Description: inspect command starting the interactive scalar viewer
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/textkit/foundation/utils/textbuf"
	"github.com/msto63/textkit/internal/tui/inspector"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Step through a text scalar by scalar",
		Long: `Starts the interactive inspector. The cursor moves one scalar at a
time and the status bar shows its offset, value, encoded bytes, display
width and whitespace class. Invalid input is shown with the first
invalid byte marked.

Keys:
  ←/→ or h/l  Step backward / forward
  Home/End    Jump to start / end (also g / G)
  w           Next whitespace
  i           First invalid byte
  PgUp/PgDn   Scroll
  q / Ctrl+C  Quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eachInput(cmd, args, func(name string, text *textbuf.Text) error {
				return inspector.Run(inspector.Config{Name: name, Text: text})
			})
		},
	}
}

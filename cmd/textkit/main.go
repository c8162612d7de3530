// ============================================================================
// textkit - Managed UTF-8 Text
// ============================================================================
//
// Package:     main
// Description: Entry point of the textkit command line tool
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package main

import (
	"os"

	"github.com/msto63/textkit/cmd/textkit/cmd"
	tkerror "github.com/msto63/textkit/foundation/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(tkerror.GetCode(err).ExitCode())
	}
}

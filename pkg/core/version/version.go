// ============================================================================
// textkit - Managed UTF-8 Text
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for the textkit components
const (
	// Module version
	Platform = "0.3.0"

	// Component versions
	UTF8x   = "0.2.0"
	Textbuf = "0.2.0"
	Stringx = "0.2.0"
	CLI     = "0.3.0"
)

// Set during build with -ldflags "-X ..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "utf8x":
		return UTF8x
	case "textbuf":
		return Textbuf
	case "stringx":
		return Stringx
	case "cli", "textkit":
		return CLI
	default:
		return Platform
	}
}

// Info describes the running binary
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   CLI,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the information the way `textkit version` prints it
func (i Info) String() string {
	return fmt.Sprintf("textkit v%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s\n",
		i.Version, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}

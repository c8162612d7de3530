// ============================================================================
// textkit - Managed UTF-8 Text
// ============================================================================
//
// Package:     inspector
// Description: Styles for the inspector TUI
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package inspector

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorWarning   = lipgloss.Color("#F59E0B") // Amber
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	ColorBgPanel    = lipgloss.Color("#1E293B") // Slate 800
	ColorBgSelected = lipgloss.Color("#3B0764") // Purple 950

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2)

	ValidStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	InvalidStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)
)

// Text area styles
var (
	TextPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// Placeholders for whitespace and line terminators
	MarkerStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	CursorStyle = lipgloss.NewStyle().
			Background(ColorBgSelected).
			Foreground(ColorWarning).
			Bold(true)

	BadByteStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Underline(true)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)
)

// Help styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Logo
const Logo = "textkit inspect"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderField renders a status bar label and value
func RenderField(label, value string) string {
	return StatusKeyStyle.Render(label) + " " + value
}

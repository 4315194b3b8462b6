// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Centralized styling for all finassist CLI commands.
//
// All commands share these styles so output stays consistent. Colors switch
// off automatically for piped output and NO_COLOR environments.

package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// init configures lipgloss to the detected color profile so every style in
// the package degrades to plain text off-TTY.
func init() {
	lipgloss.SetColorProfile(GetColorProfile())
}

// =============================================================================
// SHARED STYLES
// =============================================================================

var (
	// TitleStyle is used for command titles and headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")) // Cyan

	// LabelStyle is used for field labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")) // Light gray

	// ValueStyle is used for regular values
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Off-white

	// SuccessStyle is used for success messages
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")). // Green
			Bold(true)

	// ErrorStyle is used for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	// WarningStyle is used for warnings
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // Amber

	// promptStyle is the chat input prompt
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	// welcomeStyle is the chat welcome banner
	welcomeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")). // Purple
			Bold(true)

	// infoStyle is for secondary informational text
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	// commandStyle highlights interactive commands and values
	commandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)

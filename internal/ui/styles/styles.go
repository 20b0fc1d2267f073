// Package styles provides shared lipgloss styles for terminal output.
//
// Colors are ANSI 256 palette indices; output written through a
// colorprofile writer is downsampled (or stripped) for the terminal.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette
var (
	// Primary is the main accent color (cyan/teal)
	Primary color.Color = lipgloss.Color("62")

	// Accent is the highlight color for selected/active items (pink)
	Accent color.Color = lipgloss.Color("212")

	// Success marks inserted text (green)
	Success color.Color = lipgloss.Color("82")

	// Muted is used for unchanged context (gray)
	Muted color.Color = lipgloss.Color("240")

	// Warning is used for warnings (orange)
	Warning color.Color = lipgloss.Color("214")
)

// Common styles
var (
	// Bold applies bold formatting
	Bold = lipgloss.NewStyle().Bold(true)

	// PrimaryStyle applies the primary color
	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)

	// AccentStyle applies the accent color with bold
	AccentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// InsertedStyle highlights text added to a document
	InsertedStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	// CaretStyle marks the caret position in previews
	CaretStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Reverse(true)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)

	// WarningStyle applies the warning color
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
)

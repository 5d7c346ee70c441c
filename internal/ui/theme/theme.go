package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette. Success, Warning and Error double as the Known, Familiar and
// Hard colors.
var (
	Primary   = lipgloss.Color("#7C3AED") // Violet
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Accent    = lipgloss.Color("#F97316") // Orange
	Highlight = lipgloss.Color("#FACC15") // Card yellow
	Info      = lipgloss.Color("#22D3EE") // Cyan

	Success = lipgloss.Color("#4ADE80")
	Warning = lipgloss.Color("#FBBF24")
	Error   = lipgloss.Color("#F87171")

	Text    = lipgloss.Color("#F1F5F9")
	TextDim = lipgloss.Color("#8B95A7")
	BgDark  = lipgloss.Color("#111827")
	Border  = lipgloss.Color("#3F4A5C")
)

var (
	Selected = lipgloss.NewStyle().
			Foreground(Highlight).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 1)

	ButtonInactive = lipgloss.NewStyle().
			Foreground(TextDim).
			Padding(0, 1)
)

package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordcards/internal/ui/theme"
)

// Button renders a single-line action label. The focused form is filled,
// the idle form is dimmed; both have the same width.
func Button(label string, focused bool) string {
	text := "[ " + label + " ]"
	if focused {
		return theme.ButtonActive.Render(text)
	}
	return theme.ButtonInactive.Render(text)
}

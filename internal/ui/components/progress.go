package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordcards/internal/ui/theme"
)

const (
	barFilled = "█"
	barEmpty  = "░"
)

// ProgressBar is a one-line bar: optional label, the bar, optional percent.
// Width is the total rendered width.
type ProgressBar struct {
	Label       string
	Percent     float64 // 0..1, clamped
	ShowPercent bool
	Width       int

	// Color fills the bar; theme.Secondary if nil.
	Color color.Color
}

func (p ProgressBar) View() string {
	pct := min(max(p.Percent, 0), 1)

	var head, tail string
	if p.Label != "" {
		head = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}
	if p.ShowPercent {
		tail = lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf(" %4d%%", int(pct*100+0.5)))
	}

	barWidth := max(p.Width-lipgloss.Width(head)-lipgloss.Width(tail), 4)
	filled := int(float64(barWidth) * pct)

	fill := p.Color
	if fill == nil {
		fill = theme.Secondary
	}
	bar := lipgloss.NewStyle().Foreground(fill).Render(strings.Repeat(barFilled, filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat(barEmpty, barWidth-filled))

	return head + bar + tail
}

package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordcards/internal/ui/components"
	"github.com/abhisek/wordcards/internal/ui/theme"
)

const (
	titleText    = "W · O · R · D · C · A · R · D · S"
	titleCompact = "WORDCARDS"
	tagline      = "vocabulary flashcards"
)

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Highlight).
		Bold(true)
	box := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center)

	if compact {
		return box.Render(style.Render(titleCompact))
	}
	sub := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(tagline)
	return box.Render(style.Render(titleText) + "\n" + sub)
}

// renderStatsBar renders the progress counters in a bordered box matching content width.
func renderStatsBar(st homeStats, cw int, compact bool) string {
	wordStyle := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)
	phraseStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	hardStyle := lipgloss.NewStyle().Foreground(theme.Info).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	switch {
	case !st.loaded:
		stats = dimStyle.Render("loading progress...")
	case compact:
		stats = fmt.Sprintf("%s %s %s",
			wordStyle.Render(fmt.Sprintf("✎%d", st.words)),
			phraseStyle.Render(fmt.Sprintf("❝%d", st.phrases)),
			hardText(st.hard, true, hardStyle, dimStyle),
		)
	default:
		stats = fmt.Sprintf("%s  %s  %s",
			wordStyle.Render(fmt.Sprintf("✎ %d WORDS", st.words)),
			phraseStyle.Render(fmt.Sprintf("❝ %d PHRASES", st.phrases)),
			hardText(st.hard, false, hardStyle, dimStyle),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Info).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func hardText(n int, compact bool, active, dim lipgloss.Style) string {
	if n == 0 {
		if compact {
			return dim.Render("⚑0")
		}
		return dim.Render("⚑ NO HARD CARDS")
	}
	if compact {
		return active.Render(fmt.Sprintf("⚑%d", n))
	}
	return active.Render(fmt.Sprintf("⚑ %d HARD", n))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	buttons := make([]string, 0, len(items))
	for i, label := range items {
		buttons = append(buttons, components.MenuButton(label, i == selected, buttonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as simple text lines (no borders)
// for small terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int) string {
	lines := make([]string, 0, len(items))
	for i, label := range items {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Highlight).
				Bold(true).
				Render(" ▸ "+label+" "))
			continue
		}
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Text).
			Render("   "+label))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

package learn

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordcards/internal/ui/components"
	"github.com/abhisek/wordcards/internal/ui/theme"
	"github.com/abhisek/wordcards/internal/vocab"
)

func formatProgress(pos, total int) string {
	return fmt.Sprintf("Card %d/%d", pos, total)
}

// renderCard renders the current card with its rating row.
func (s *LearnScreen) renderCard(width, height int) string {
	it, ok := s.state.Current()
	if !ok {
		return renderLoading(width, height)
	}

	cw := components.ContentWidth(width)
	centered := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	pos, total := s.state.Progress()
	bar := components.ProgressBar{
		Label:   formatProgress(pos, total),
		Percent: float64(s.state.Index) / float64(total),
		Width:   cw,
		Color:   theme.Primary,
	}
	b.WriteString(centered.Render(bar.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.Card(cardFace(it, s.state.Revealed), cw)))
	b.WriteString("\n\n")

	if s.audioURL != "" && s.audioKey == it.Key() {
		b.WriteString(centered.
			Foreground(theme.Info).
			Render("♪ " + s.audioURL))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))
	b.WriteString("\n\n")

	hint := "Space to flip the card"
	if s.state.Revealed {
		hint = "Space to hide the meaning"
	}
	b.WriteString(centered.Foreground(theme.TextDim).Render(hint))

	return b.String()
}

// cardFace renders the text shown on the card.
func cardFace(it vocab.Item, revealed bool) string {
	front := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(it.DisplayText())
	if it.Kind == vocab.KindMalformed {
		front = lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).Render(it.DisplayText())
	}

	lines := []string{front}
	if p := it.CleanPhonetic(); p != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render("["+p+"]"))
	}

	lines = append(lines, "")
	if revealed {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Accent).Render(it.Meaning()))
	} else {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Border).Render("· · ·"))
	}
	return strings.Join(lines, "\n")
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width, height int) string {
	centered := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(centered.Foreground(theme.Text).Bold(true).Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(centered.Foreground(theme.TextDim).Render("Cards marked so far will be saved."))
	b.WriteString("\n\n")
	b.WriteString(centered.Foreground(theme.Success).Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(centered.Foreground(theme.Primary).Render("[N] No, keep going"))
	return b.String()
}

// renderEmpty is shown when the draw produced no cards.
func renderEmpty(width, height int, mode vocab.Mode) string {
	msg := "No cards available right now."
	if mode == vocab.ModeReview {
		msg = "Nothing to review yet. Cards you mark Hard show up here."
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  " + msg + "\n\n  Press any key to go back.")
}

func renderLoading(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Shuffling cards...")
}

func renderError(width, height int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

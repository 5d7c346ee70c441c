package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordcards/internal/router"
	"github.com/abhisek/wordcards/internal/screen"
	"github.com/abhisek/wordcards/internal/session"
	"github.com/abhisek/wordcards/internal/ui/components"
	"github.com/abhisek/wordcards/internal/ui/layout"
	"github.com/abhisek/wordcards/internal/ui/theme"
)

// Actions build the screens reachable from the summary. Nil actions
// are hidden.
type Actions struct {
	// Again starts another session in the same mode.
	Again func() screen.Screen

	// Review starts a session over the hard item queue.
	Review func() screen.Screen
}

// SummaryScreen displays the tally of a finished session.
type SummaryScreen struct {
	summary *session.Summary
	actions Actions
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary, actions Actions) *SummaryScreen {
	return &SummaryScreen{summary: summary, actions: actions}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Enter", Description: "Home"}}
	if s.actions.Again != nil {
		hints = append(hints, layout.KeyHint{Key: "N", Description: "New session"})
	}
	if s.canReview() {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Review hard"})
	}
	return hints
}

func (s *SummaryScreen) canReview() bool {
	return s.actions.Review != nil && s.summary != nil && s.summary.Tally.Hard > 0
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "enter", "esc":
		return s, router.Home()
	case "n", "N":
		if s.actions.Again != nil {
			return s, router.Replace(s.actions.Again())
		}
	case "r", "R":
		if s.canReview() {
			return s, router.Replace(s.actions.Review())
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	centered := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	title := "Session complete!"
	if sum.EndedEarly {
		title = "Session ended"
	}
	b.WriteString(centered.Foreground(theme.Primary).Bold(true).Render(title))
	b.WriteString("\n\n")

	info := fmt.Sprintf("%s  ·  %d cards", sum.Mode.DisplayName(), sum.Tally.Total)
	if sum.Duration > 0 {
		mins := int(sum.Duration.Minutes())
		secs := int(sum.Duration.Seconds()) % 60
		info += fmt.Sprintf("  ·  %d:%02d", mins, secs)
	} else if !sum.FinishedAt.IsZero() {
		info += "  ·  " + sum.FinishedAt.Format("Jan 02 15:04")
	}
	b.WriteString(centered.Foreground(theme.TextDim).Render(info))
	b.WriteString("\n\n")

	cw := min(width-8, 60)
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", cw))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, row := range []struct {
		label string
		n     int
		color color.Color
	}{
		{"Known   ", sum.Tally.Known, theme.Success},
		{"Familiar", sum.Tally.Familiar, theme.Warning},
		{"Hard    ", sum.Tally.Hard, theme.Error},
	} {
		bar := components.ProgressBar{
			Label:       fmt.Sprintf("%s %3d", row.label, row.n),
			Percent:     sum.Percent(row.n) / 100,
			ShowPercent: true,
			Width:       cw,
			Color:       row.color,
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}

	if skipped := sum.Tally.Total - sum.Tally.Marked(); skipped > 0 {
		b.WriteString("\n")
		b.WriteString(centered.Foreground(theme.TextDim).Render(
			fmt.Sprintf("%d cards not reached", skipped)))
		b.WriteString("\n")
	}

	if s.canReview() {
		b.WriteString("\n")
		b.WriteString(centered.Foreground(theme.Accent).Render(
			"Hard cards were added to your review queue."))
	}

	return b.String()
}

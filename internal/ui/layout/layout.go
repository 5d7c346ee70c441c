package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordcards/internal/ui/theme"
)

// Smallest terminal that still fits a card, its choices and the chrome.
const (
	MinWidth  = 60
	MinHeight = 20
)

// KeyHint is one key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Warning).Align(lipgloss.Center).Render(fmt.Sprintf(
			"Terminal too small\n\nneed %d x %d, have %d x %d",
			MinWidth, MinHeight, width, height,
		)))
}

// bar renders a full-width line with left and right aligned parts over a
// bottom rule.
func bar(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	line := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().Width(width).MaxWidth(width).Render(line)
}

func rule(width int) string {
	return lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width, 0)))
}

// RenderHeader renders the app name and screen title on the left and the
// screen status on the right, followed by a rule.
func RenderHeader(title, status string, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(" Wordcards")
	if title != "" {
		left += lipgloss.NewStyle().Foreground(theme.TextDim).Render(" › ") +
			lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	}
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status + " ")
	return bar(left, right, width) + "\n" + rule(width)
}

// RenderFooter renders a rule followed by the key hints.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Highlight).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Description))
	}
	return rule(width) + "\n" + bar(" "+strings.Join(parts, descStyle.Render(" · ")), "", width)
}

// RenderFrame stacks header, content and footer. Content is padded or cut
// to whatever height is left between the two.
func RenderFrame(header, content, footer string, width, height int) string {
	bodyHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().
		Width(width).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

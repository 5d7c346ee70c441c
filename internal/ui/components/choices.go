package components

import (
	"fmt"
	"image/color"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordcards/internal/ui/theme"
)

// Choice is one option in a Choices row.
type Choice struct {
	Key   string // Shortcut key, e.g. "1"
	Label string
	Color color.Color
}

// Choices is a horizontal row of options picked by shortcut key or by
// arrows and Enter.
type Choices struct {
	Options  []Choice
	Selected int
}

// NewChoices creates a Choices row with the first option selected.
func NewChoices(options []Choice) Choices {
	return Choices{Options: options}
}

// Update handles navigation. It returns the index of the option picked
// by this message, or -1.
func (c Choices) Update(msg tea.Msg) (Choices, int) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, -1
	}

	key := kmsg.String()
	switch key {
	case "left", "h":
		if c.Selected > 0 {
			c.Selected--
		}
		return c, -1
	case "right", "l", "tab":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
		return c, -1
	case "enter":
		if c.Selected >= 0 && c.Selected < len(c.Options) {
			return c, c.Selected
		}
		return c, -1
	}

	for i, opt := range c.Options {
		if opt.Key != "" && opt.Key == key {
			c.Selected = i
			return c, i
		}
	}
	return c, -1
}

// View renders the options side by side.
func (c Choices) View() string {
	parts := make([]string, 0, 2*len(c.Options))
	for i, opt := range c.Options {
		if i > 0 {
			parts = append(parts, "  ")
		}
		fg := opt.Color
		if fg == nil {
			fg = theme.Text
		}
		label := fmt.Sprintf("[%s] %s", opt.Key, opt.Label)
		style := lipgloss.NewStyle().
			Foreground(fg).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1)
		if i == c.Selected {
			style = style.Bold(true).BorderForeground(fg)
			label = "▸ " + label
		}
		parts = append(parts, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

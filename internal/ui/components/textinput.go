package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// NumberInput is a digits-only text field built on bubbles/textinput.
type NumberInput struct {
	model textinput.Model
}

// NewNumberInput returns a focused input accepting at most maxDigits digits.
func NewNumberInput(placeholder string, maxDigits int) NumberInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	if maxDigits > 0 {
		ti.CharLimit = maxDigits
	}
	ti.Focus()
	return NumberInput{model: ti}
}

func (n NumberInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards editing keys to the field and drops printable non-digits.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.Text != "" {
		for _, r := range kmsg.Text {
			if r < '0' || r > '9' {
				return n, nil
			}
		}
	}
	var cmd tea.Cmd
	n.model, cmd = n.model.Update(msg)
	return n, cmd
}

func (n NumberInput) View() string { return n.model.View() }

func (n NumberInput) Value() string { return n.model.Value() }

// SetValue replaces the contents and moves the cursor to the end.
func (n *NumberInput) SetValue(v string) {
	n.model.SetValue(v)
	n.model.CursorEnd()
}

func (n *NumberInput) Focus() { n.model.Focus() }

func (n *NumberInput) Blur() { n.model.Blur() }

// Int parses the current value.
func (n NumberInput) Int() (int, error) {
	return strconv.Atoi(n.model.Value())
}

package components

import (
	tea "charm.land/bubbletea/v2"
)

// MenuItem is one entry of a Menu. Action builds the command run when the
// entry is chosen.
type MenuItem struct {
	Label  string
	Action func() tea.Cmd
}

// Menu tracks the cursor over a fixed list of entries. Rendering is left to
// the owning screen.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Labels returns the entry labels in order.
func (m Menu) Labels() []string {
	labels := make([]string, len(m.Items))
	for i, it := range m.Items {
		labels[i] = it.Label
	}
	return labels
}

// Update moves the cursor with up/down (wrapping at both ends) and runs the
// selected entry on enter. Digits 1-9 jump straight to an entry and run it.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	n := len(m.Items)
	switch key := kmsg.String(); key {
	case "up", "k":
		m.Selected = (m.Selected - 1 + n) % n
	case "down", "j":
		m.Selected = (m.Selected + 1) % n
	case "enter":
		return m, m.run()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < n {
				m.Selected = i
				return m, m.run()
			}
		}
	}
	return m, nil
}

func (m Menu) run() tea.Cmd {
	if act := m.Items[m.Selected].Action; act != nil {
		return act()
	}
	return nil
}

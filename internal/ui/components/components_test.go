package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pickedMsg struct{ label string }

func testMenu() Menu {
	item := func(label string) MenuItem {
		return MenuItem{Label: label, Action: func() tea.Cmd {
			return func() tea.Msg { return pickedMsg{label} }
		}}
	}
	return NewMenu([]MenuItem{item("one"), item("two"), item("three")})
}

func TestMenu_Wraps(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 2, m.Selected)
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 0, m.Selected)
}

func TestMenu_EnterRunsSelected(t *testing.T) {
	m := testMenu()
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, pickedMsg{"two"}, cmd())
}

func TestMenu_DigitShortcut(t *testing.T) {
	m := testMenu()
	m, cmd := m.Update(tea.KeyPressMsg{Code: '3', Text: "3"})
	require.NotNil(t, cmd)
	assert.Equal(t, pickedMsg{"three"}, cmd())
	assert.Equal(t, 2, m.Selected)

	_, cmd = m.Update(tea.KeyPressMsg{Code: '9', Text: "9"})
	assert.Nil(t, cmd, "out of range digit is ignored")
}

func TestMenu_Labels(t *testing.T) {
	assert.Equal(t, []string{"one", "two", "three"}, testMenu().Labels())
}

func TestNumberInput_DigitsOnly(t *testing.T) {
	in := NewNumberInput("20", 4)
	for _, r := range "1a2" {
		in, _ = in.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	assert.Equal(t, "12", in.Value())

	n, err := in.Int()
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestNumberInput_SetValueThenBackspace(t *testing.T) {
	in := NewNumberInput("", 4)
	in.SetValue("35")
	in, _ = in.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	assert.Equal(t, "3", in.Value())
}

func TestContentWidth_Clamped(t *testing.T) {
	assert.Equal(t, 20, ContentWidth(10))
	assert.Equal(t, 44, ContentWidth(50))
	assert.Equal(t, 60, ContentWidth(200))
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		pct          float64
		filled, free int
	}{
		{0, 0, 20},
		{0.5, 10, 10},
		{1, 20, 0},
		{1.7, 20, 0},
		{-1, 0, 20},
	}
	for _, tt := range tests {
		view := ProgressBar{Percent: tt.pct, Width: 20}.View()
		assert.Equal(t, tt.filled, strings.Count(view, barFilled), "pct=%v", tt.pct)
		assert.Equal(t, tt.free, strings.Count(view, barEmpty), "pct=%v", tt.pct)
	}
}

func TestProgressBar_LabelAndPercent(t *testing.T) {
	view := ProgressBar{Label: "Known", Percent: 0.25, ShowPercent: true, Width: 30}.View()
	assert.Contains(t, view, "Known")
	assert.Contains(t, view, "25%")
}

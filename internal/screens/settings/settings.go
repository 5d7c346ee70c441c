package settings

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordcards/internal/screen"
	"github.com/abhisek/wordcards/internal/store"
	"github.com/abhisek/wordcards/internal/ui/components"
	"github.com/abhisek/wordcards/internal/ui/layout"
	"github.com/abhisek/wordcards/internal/ui/theme"
)

type field int

const (
	fieldCount field = iota
	fieldRandom
	fieldAutoPlay
	fieldSave
	numFields
)

type settingsLoadedMsg struct {
	Settings store.Settings
	Err      error
}

type settingsSavedMsg struct {
	Settings store.Settings
	Err      error
}

// SettingsScreen edits the persisted learning preferences.
type SettingsScreen struct {
	repo     store.SettingsRepo
	count    components.NumberInput
	random   bool
	autoPlay bool
	focus    field
	loaded   bool
	status   string
	errMsg   string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a new SettingsScreen.
func New(repo store.SettingsRepo) *SettingsScreen {
	return &SettingsScreen{
		repo:  repo,
		count: components.NewNumberInput(strconv.Itoa(store.DefaultLearningCount), 4),
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	repo := s.repo
	return tea.Batch(
		s.count.Init(),
		func() tea.Msg {
			st, err := repo.Load(context.Background())
			return settingsLoadedMsg{Settings: st, Err: err}
		},
	)
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "Space", Description: "Toggle"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case settingsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		}
		s.apply(msg.Settings)
		s.loaded = true
		return s, nil

	case settingsSavedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.status = ""
			return s, nil
		}
		s.errMsg = ""
		s.apply(msg.Settings)
		s.status = "Saved"
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.focus == fieldCount {
		var cmd tea.Cmd
		s.count, cmd = s.count.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SettingsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "shift+tab":
		s.setFocus((s.focus + numFields - 1) % numFields)
		return s, nil
	case "down", "tab":
		s.setFocus((s.focus + 1) % numFields)
		return s, nil
	case "enter":
		return s, s.save()
	case "space", " ":
		switch s.focus {
		case fieldRandom:
			s.random = !s.random
			s.status = ""
		case fieldAutoPlay:
			s.autoPlay = !s.autoPlay
			s.status = ""
		case fieldSave:
			return s, s.save()
		}
		return s, nil
	}

	if s.focus == fieldCount {
		var cmd tea.Cmd
		s.count, cmd = s.count.Update(msg)
		s.status = ""
		return s, cmd
	}
	return s, nil
}

func (s *SettingsScreen) setFocus(f field) {
	s.focus = f
	if f == fieldCount {
		s.count.Focus()
	} else {
		s.count.Blur()
	}
}

func (s *SettingsScreen) apply(st store.Settings) {
	s.count.SetValue(strconv.Itoa(st.LearningCount))
	s.random = st.RandomOrder
	s.autoPlay = st.AutoPlay
}

// current returns the settings as edited. An empty or unparsable count
// becomes zero, which Sanitize turns into the default.
func (s *SettingsScreen) current() store.Settings {
	n, err := s.count.Int()
	if err != nil {
		n = 0
	}
	return store.Settings{
		LearningCount: n,
		RandomOrder:   s.random,
		AutoPlay:      s.autoPlay,
	}.Sanitize()
}

func (s *SettingsScreen) save() tea.Cmd {
	st, repo := s.current(), s.repo
	return func() tea.Msg {
		err := repo.Save(context.Background(), st)
		return settingsSavedMsg{Settings: st, Err: err}
	}
}

func (s *SettingsScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading settings...")
	}

	var b strings.Builder
	b.WriteString(s.row(fieldCount, "Cards per session", s.count.View()))
	b.WriteString("\n\n")
	b.WriteString(s.row(fieldRandom, "Random order", toggle(s.random)))
	b.WriteString("\n\n")
	b.WriteString(s.row(fieldAutoPlay, "Auto pronounce", toggle(s.autoPlay)))
	b.WriteString("\n\n")
	b.WriteString(components.Button("Save", s.focus == fieldSave))

	if s.status != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("✓ " + s.status))
	}
	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(fmt.Sprintf("Error: %s", s.errMsg)))
	}

	form := components.Card(b.String(), components.ContentWidth(width))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, form)
}

func (s *SettingsScreen) row(f field, label, value string) string {
	style := theme.Unselected
	prefix := "  "
	if s.focus == f {
		style = theme.Selected
		prefix = "▸ "
	}
	return style.Render(fmt.Sprintf("%s%-18s", prefix, label)) + " " + value
}

func toggle(on bool) string {
	if on {
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("[ON ]")
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("[OFF]")
}

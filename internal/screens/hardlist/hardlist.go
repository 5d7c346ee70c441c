package hardlist

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordcards/internal/router"
	"github.com/abhisek/wordcards/internal/screen"
	"github.com/abhisek/wordcards/internal/store"
	"github.com/abhisek/wordcards/internal/ui/layout"
	"github.com/abhisek/wordcards/internal/ui/theme"
	"github.com/abhisek/wordcards/internal/vocab"
)

type itemsLoadedMsg struct {
	Items []vocab.Item
	Err   error
}

// HardListScreen lists the cards in the review queue.
type HardListScreen struct {
	repo     store.HardItemRepo
	review   func() screen.Screen
	items    []vocab.Item
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HardListScreen)(nil)
var _ screen.KeyHintProvider = (*HardListScreen)(nil)
var _ screen.StatusProvider = (*HardListScreen)(nil)

// New creates a new HardListScreen. review builds the screen started
// with R; it may be nil.
func New(repo store.HardItemRepo, review func() screen.Screen) *HardListScreen {
	return &HardListScreen{
		repo:     repo,
		review:   review,
		expanded: make(map[int]bool),
	}
}

func (s *HardListScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		items, err := repo.List(context.Background())
		return itemsLoadedMsg{Items: items, Err: err}
	}
}

func (s *HardListScreen) Title() string {
	return "Hard Cards"
}

func (s *HardListScreen) Status() string {
	if !s.loaded {
		return ""
	}
	return fmt.Sprintf("%d in queue", len(s.items))
}

func (s *HardListScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Meaning"},
		{Key: "↑↓", Description: "Navigate"},
	}
	if s.review != nil && len(s.items) > 0 {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Review"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *HardListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.items = msg.Items
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.items)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		case "r", "R":
			if s.review != nil && len(s.items) > 0 {
				next := s.review()
				return s, router.Replace(next)
			}
		}
	}
	return s, nil
}

func (s *HardListScreen) View(width, height int) string {
	centered := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return centered.Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return centered.Foreground(theme.TextDim).
			Render("\n\n  Loading hard cards...")
	}
	if len(s.items) == 0 {
		return centered.Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No hard cards yet. Mark a card Hard to review it later.")
	}

	var b strings.Builder
	b.WriteString("\n")

	first, last := visibleRange(len(s.items), s.selected, height-2)
	for i := first; i < last; i++ {
		it := s.items[i]

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%-24s %s", prefix, it.DisplayText(), kindLabel(it))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Accent).Italic(true).
					Render("    "+it.Meaning())))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func kindLabel(it vocab.Item) string {
	switch it.Kind {
	case vocab.KindWord:
		return "word"
	case vocab.KindPhrase:
		return "phrase"
	}
	return "?"
}

// visibleRange returns the window of rows [first, last) that keeps
// selected on screen.
func visibleRange(total, selected, rows int) (int, int) {
	if rows < 1 {
		rows = 1
	}
	if total <= rows {
		return 0, total
	}
	first := selected - rows/2
	if first < 0 {
		first = 0
	}
	if first+rows > total {
		first = total - rows
	}
	return first, first + rows
}

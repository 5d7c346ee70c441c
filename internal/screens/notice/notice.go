package notice

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordcards/internal/router"
	"github.com/abhisek/wordcards/internal/screen"
	"github.com/abhisek/wordcards/internal/ui/theme"
)

// NoticeScreen shows a short message until any key is pressed.
type NoticeScreen struct {
	title   string
	message string
}

var _ screen.Screen = (*NoticeScreen)(nil)

// New creates a new NoticeScreen with the given title and message.
func New(title, message string) *NoticeScreen {
	return &NoticeScreen{title: title, message: message}
}

func (n *NoticeScreen) Init() tea.Cmd {
	return nil
}

func (n *NoticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return n, router.Pop()
	}
	return n, nil
}

func (n *NoticeScreen) View(width, height int) string {
	body := lipgloss.NewStyle().Foreground(theme.Text).Render(n.message)
	hint := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to go back")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render("╌╌ " + n.title + " ╌╌\n\n" + body + "\n\n" + hint)
}

func (n *NoticeScreen) Title() string {
	return n.title
}

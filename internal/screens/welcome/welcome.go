package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordcards/internal/router"
	"github.com/abhisek/wordcards/internal/screen"
	"github.com/abhisek/wordcards/internal/ui/theme"
)

// Splash timeline: cards are dealt one per frame until dealEnd, the top
// card flips over at flipEnd, the banner stays until a key is pressed.
const (
	frame    = 100 * time.Millisecond
	dealEnd  = 500 * time.Millisecond
	flipEnd  = 1500 * time.Millisecond
	totalDur = 2000 * time.Millisecond

	deckSize = 3
)

var (
	cardBack = []string{
		"╭─────────╮",
		"│░░░░░░░░░│",
		"│░░░░░░░░░│",
		"│░░░░░░░░░│",
		"╰─────────╯",
	}
	cardFace = []string{
		"╭─────────╮",
		"│  ◉   ◉  │",
		"│    ‿    │",
		"│  A · a  │",
		"╰─────────╯",
	}
)

type frameMsg time.Time

// WelcomeScreen deals a small deck, flips the top card and then waits for
// a key before handing over to the screen built by next.
type WelcomeScreen struct {
	next    func() screen.Screen
	elapsed time.Duration
	done    bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return nextFrame() }

func nextFrame() tea.Cmd {
	return tea.Tick(frame, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		if w.done || w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += frame
		return w, nextFrame()

	case tea.KeyPressMsg:
		if w.done {
			return w, nil
		}
		w.done = true
		return w, router.Replace(w.next())
	}
	return w, nil
}

// dealt is the number of cards on the table.
func (w *WelcomeScreen) dealt() int {
	n := int(w.elapsed/frame) + 1
	return min(n, deckSize)
}

func (w *WelcomeScreen) flipped() bool { return w.elapsed >= flipEnd }

// renderDeck draws the dealt cards fanned out to the right, each one
// offset by two columns and one row from the card beneath.
func (w *WelcomeScreen) renderDeck() string {
	n := w.dealt()
	height := len(cardBack) + n - 1
	rows := make([]string, height)

	for c := 0; c < n; c++ {
		art := cardBack
		if c == n-1 && w.flipped() {
			art = cardFace
		}
		for i, line := range art {
			y := c + i
			pad := 2*c - len([]rune(rows[y]))
			if pad < 0 {
				rows[y] = string([]rune(rows[y])[:2*c])
				pad = 0
			}
			rows[y] += strings.Repeat(" ", pad) + line
		}
	}

	style := lipgloss.NewStyle().Foreground(theme.Primary)
	if w.flipped() {
		style = style.Foreground(theme.Highlight)
	}
	return style.Render(strings.Join(rows, "\n"))
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{w.renderDeck()}

	if w.flipped() {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("One card at a time."),
			"",
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("press any key to continue"),
		)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}

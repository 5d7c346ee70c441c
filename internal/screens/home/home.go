package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordcards/internal/results"
	"github.com/abhisek/wordcards/internal/router"
	"github.com/abhisek/wordcards/internal/screen"
	"github.com/abhisek/wordcards/internal/screens/hardlist"
	"github.com/abhisek/wordcards/internal/screens/learn"
	"github.com/abhisek/wordcards/internal/screens/notice"
	"github.com/abhisek/wordcards/internal/screens/settings"
	"github.com/abhisek/wordcards/internal/screens/summary"
	"github.com/abhisek/wordcards/internal/study"
	"github.com/abhisek/wordcards/internal/ui/components"
	"github.com/abhisek/wordcards/internal/ui/layout"
	"github.com/abhisek/wordcards/internal/vocab"
)

// alertHardCount is the review queue size at which the mascot nags.
const alertHardCount = 10

type statsLoadedMsg struct {
	Stats study.Stats
	Err   error
}

type homeStats struct {
	loaded  bool
	words   int
	phrases int
	hard    int
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps          learn.Deps
	menu          components.Menu
	menuLabels    []string
	stats         homeStats
	latest        study.Stats
	mascotVariant MascotVariant
	now           func() time.Time
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps learn.Deps) *HomeScreen {
	h := &HomeScreen{
		deps: deps,
		now:  time.Now,
	}

	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			return router.Push(build())
		}
	}
	review := func() screen.Screen { return learn.NewReview(deps) }

	items := []components.MenuItem{
		{Label: "START WORDS", Action: push(func() screen.Screen { return learn.New(deps, vocab.ModeWords) })},
		{Label: "START PHRASES", Action: push(func() screen.Screen { return learn.New(deps, vocab.ModePhrases) })},
		{Label: "REVIEW HARD", Action: push(review)},
		{Label: "HARD CARDS", Action: push(func() screen.Screen {
			return hardlist.New(deps.Study.Repos().Hard, review)
		})},
		{Label: "LAST RESULTS", Action: push(h.lastResults)},
		{Label: "SETTINGS", Action: push(func() screen.Screen {
			return settings.New(deps.Study.Repos().Settings)
		})},
		{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	}

	h.menu = components.NewMenu(items)
	h.menuLabels = h.menu.Labels()
	return h
}

// Init reloads the progress counters. It runs again whenever the screen
// becomes the root after a session.
func (h *HomeScreen) Init() tea.Cmd {
	svc := h.deps.Study
	if svc == nil {
		return nil
	}
	return func() tea.Msg {
		st, err := svc.Stats(context.Background())
		return statsLoadedMsg{Stats: st, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		h.latest = msg.Stats
		h.stats = homeStats{
			loaded:  true,
			words:   msg.Stats.LearnedWords,
			phrases: msg.Stats.LearnedPhrases,
			hard:    msg.Stats.HardItems,
		}
		h.mascotVariant = mascotFor(msg.Stats, h.now())
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// header and footer take two rows each
	termHeight := height + 4
	compact := termHeight < 36 || width < 100

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}
	sections = append(sections, renderStatsBar(h.stats, cw, compact))
	if termHeight < 30 {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "1-7", Description: "Jump"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// lastResults shows the most recent tally, or a notice if there is none.
func (h *HomeScreen) lastResults() screen.Screen {
	sum := results.Summary(h.latest.Latest)
	if sum == nil {
		return notice.New("Last Results", "No results yet. Finish a session to see your tally here.")
	}
	deps := h.deps
	return summary.New(sum, summary.Actions{
		Review: func() screen.Screen { return learn.NewReview(deps) },
	})
}

// mascotFor picks the mascot mood from the saved progress.
func mascotFor(st study.Stats, now time.Time) MascotVariant {
	if st.HardItems >= alertHardCount {
		return MascotAlert
	}
	if r := st.Latest; r != nil && r.Total > 0 && now.Sub(r.FinishedAt) < 24*time.Hour {
		if r.Known*2 >= r.Total {
			return MascotCelebrating
		}
	}
	return MascotIdle
}

package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/wordcards/internal/router"
	"github.com/abhisek/wordcards/internal/screen"
	"github.com/abhisek/wordcards/internal/screens/home"
	"github.com/abhisek/wordcards/internal/screens/learn"
	"github.com/abhisek/wordcards/internal/screens/welcome"
	"github.com/abhisek/wordcards/internal/source"
	"github.com/abhisek/wordcards/internal/study"
	"github.com/abhisek/wordcards/internal/ui/layout"
	"github.com/abhisek/wordcards/internal/vocab"
)

// Options holds the dependencies the TUI runs with.
type Options struct {
	Study *study.Service

	// Cache is warmed in the background at startup. It may be nil.
	Cache *source.Cache

	// Pronounce resolves audio URLs for cards. It may be nil.
	Pronounce func(ctx context.Context, text string) string

	Log *zap.Logger

	// StartMode skips the splash and opens a session in this mode.
	StartMode vocab.Mode
}

// prefetchDoneMsg is sent once the dataset cache has been warmed.
type prefetchDoneMsg struct{}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	start  screen.Screen
	width  int
	height int
}

// newAppModel creates the root model. Without a start mode the splash
// screen leads to home; otherwise home is the root and a session is
// pushed on top of it.
func newAppModel(opts Options) AppModel {
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	deps := learn.Deps{Study: opts.Study, Pronounce: opts.Pronounce}
	homeFactory := func() screen.Screen { return home.New(deps) }

	m := AppModel{opts: opts}
	switch opts.StartMode {
	case "":
		m.router = router.New(welcome.New(homeFactory))
	case vocab.ModeReview:
		m.router = router.New(homeFactory())
		m.start = learn.NewReview(deps)
	default:
		m.router = router.New(homeFactory())
		m.start = learn.New(deps, opts.StartMode)
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.router.Active().Init(), m.prefetch()}
	if m.start != nil {
		next := m.start
		cmds = append(cmds, router.Push(next))
	}
	return tea.Batch(cmds...)
}

// prefetch fills the dataset cache for every mode. Failures are logged by
// the cache and sessions fall back to the built-in datasets.
func (m AppModel) prefetch() tea.Cmd {
	cache := m.opts.Cache
	if cache == nil {
		return nil
	}
	return func() tea.Msg {
		cache.EnsureAll(context.Background())
		return prefetchDoneMsg{}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case prefetchDoneMsg:
		m.opts.Log.Debug("dataset cache warmed")
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if bi, ok := m.router.Active().(screen.BackInterceptor); ok && bi.InterceptsBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, router.Pop()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)
	bodyHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	v.SetContent(layout.RenderFrame(header, m.router.View(m.width, bodyHeight), footer, m.width, m.height))
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		if hints := kp.KeyHints(); len(hints) > 0 {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

// Package learn implements the flashcard screen for a single session.
package learn

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordcards/internal/router"
	"github.com/abhisek/wordcards/internal/screen"
	"github.com/abhisek/wordcards/internal/screens/summary"
	"github.com/abhisek/wordcards/internal/session"
	"github.com/abhisek/wordcards/internal/store"
	"github.com/abhisek/wordcards/internal/study"
	"github.com/abhisek/wordcards/internal/ui/components"
	"github.com/abhisek/wordcards/internal/ui/layout"
	"github.com/abhisek/wordcards/internal/ui/theme"
	"github.com/abhisek/wordcards/internal/vocab"
)

// Deps are the services a learning screen needs.
type Deps struct {
	Study *study.Service

	// Pronounce resolves an audio URL for text. It may be nil, and
	// returns "" when no audio is available.
	Pronounce func(ctx context.Context, text string) string
}

// LearnScreen shows one card at a time and records how well the learner
// knew it.
type LearnScreen struct {
	deps  Deps
	mode  vocab.Mode
	start func(ctx context.Context) (*session.State, error)

	state       *session.State
	settings    store.Settings
	choices     components.Choices
	confirmQuit bool
	audioKey    string
	audioURL    string
	errMsg      string
	done        bool
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)
var _ screen.BackInterceptor = (*LearnScreen)(nil)
var _ screen.StatusProvider = (*LearnScreen)(nil)

// New creates a screen that starts a fresh session for mode.
func New(deps Deps, mode vocab.Mode) *LearnScreen {
	s := newScreen(deps, mode)
	s.start = func(ctx context.Context) (*session.State, error) {
		return deps.Study.Start(ctx, mode)
	}
	return s
}

// NewReview creates a screen that reviews the hard item queue.
func NewReview(deps Deps) *LearnScreen {
	s := newScreen(deps, vocab.ModeReview)
	s.start = deps.Study.Results().ReviewHard
	return s
}

func newScreen(deps Deps, mode vocab.Mode) *LearnScreen {
	return &LearnScreen{
		deps: deps,
		mode: mode,
		choices: components.NewChoices([]components.Choice{
			{Key: "1", Label: "Known", Color: theme.Success},
			{Key: "2", Label: "Familiar", Color: theme.Warning},
			{Key: "3", Label: "Hard", Color: theme.Error},
		}),
	}
}

// outcomes maps the Choices index to a session outcome.
var outcomes = []session.Outcome{session.OutcomeKnown, session.OutcomeFamiliar, session.OutcomeHard}

func (s *LearnScreen) Init() tea.Cmd {
	return s.startSession()
}

func (s *LearnScreen) Title() string {
	return s.mode.DisplayName()
}

// Status shows the card position in the header.
func (s *LearnScreen) Status() string {
	if s.state == nil || len(s.state.Items) == 0 {
		return ""
	}
	pos, total := s.state.Progress()
	return formatProgress(pos, total)
}

// InterceptsBack keeps Esc for the quit confirmation while cards remain.
func (s *LearnScreen) InterceptsBack() bool {
	return s.state != nil && s.state.Phase == session.PhaseActive && !s.done
}

func (s *LearnScreen) KeyHints() []layout.KeyHint {
	if s.state == nil || s.state.Phase != session.PhaseActive {
		return []layout.KeyHint{
			{Key: "any key", Description: "Back"},
		}
	}
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "1/2/3", Description: "Known/Familiar/Hard"},
		{Key: "P", Description: "Pronounce"},
		{Key: "Esc", Description: "End"},
	}
}

func (s *LearnScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, height, s.errMsg)
	case s.state == nil:
		return renderLoading(width, height)
	case len(s.state.Items) == 0:
		return renderEmpty(width, height, s.mode)
	case s.confirmQuit:
		return renderQuitConfirm(width, height)
	}
	return s.renderCard(width, height)
}

func (s *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		return s.handleReady(msg)

	case pronouncedMsg:
		// Ignore late answers for a card that is no longer shown.
		if cur, ok := s.current(); ok && cur.Key() == msg.Key {
			s.audioKey = msg.Key
			s.audioURL = msg.URL
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *LearnScreen) startSession() tea.Cmd {
	deps, start := s.deps, s.start
	return func() tea.Msg {
		ctx := context.Background()
		if deps.Study == nil || start == nil {
			return sessionReadyMsg{Err: errors.New("study service not configured")}
		}
		settings := deps.Study.Settings(ctx)
		state, err := start(ctx)
		return sessionReadyMsg{State: state, Settings: settings, Err: err}
	}
}

func (s *LearnScreen) handleReady(msg sessionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.state = msg.State
	s.settings = msg.Settings
	return s, s.autoPronounce()
}

func (s *LearnScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error, empty or finished: any key goes back.
	if s.errMsg != "" || (s.state != nil && s.state.Phase != session.PhaseActive) {
		return s, router.Pop()
	}
	if s.state == nil {
		return s, nil
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			return s, s.finish(s.deps.Study.End(context.Background(), s.state))
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "space", " ":
		if s.state.Revealed {
			s.state.Revealed = false
		} else {
			s.state.Reveal()
		}
		return s, nil
	case "p", "P":
		return s, s.pronounce()
	}

	var picked int
	s.choices, picked = s.choices.Update(msg)
	if picked < 0 {
		return s, nil
	}
	return s.mark(outcomes[picked])
}

// mark rates the current card. Storage errors are handled by the study
// service; only a completed session can fail here.
func (s *LearnScreen) mark(o session.Outcome) (screen.Screen, tea.Cmd) {
	ctx := context.Background()
	res, err := s.deps.Study.Mark(ctx, s.state, o)
	if err != nil {
		return s, nil
	}
	s.choices.Selected = 0
	s.audioKey, s.audioURL = "", ""

	if res.Completed {
		return s, s.finish(session.BuildSummary(s.state))
	}
	return s, s.autoPronounce()
}

// finish replaces this screen with the results screen.
func (s *LearnScreen) finish(sum *session.Summary) tea.Cmd {
	if s.done {
		return nil
	}
	s.done = true
	deps := s.deps
	next := summary.New(sum, summary.Actions{
		Again: func() screen.Screen {
			if sum.Mode == vocab.ModeReview {
				return NewReview(deps)
			}
			return New(deps, sum.Mode)
		},
		Review: func() screen.Screen { return NewReview(deps) },
	})
	return router.Replace(next)
}

func (s *LearnScreen) current() (vocab.Item, bool) {
	if s.state == nil {
		return vocab.Item{}, false
	}
	return s.state.Current()
}

func (s *LearnScreen) autoPronounce() tea.Cmd {
	if !s.settings.AutoPlay {
		return nil
	}
	return s.pronounce()
}

// pronounce resolves the current card's audio URL in the background.
func (s *LearnScreen) pronounce() tea.Cmd {
	it, ok := s.current()
	if !ok || s.deps.Pronounce == nil {
		return nil
	}
	text := it.SpeakText()
	if text == "" {
		return nil
	}
	lookup, key := s.deps.Pronounce, it.Key()
	return func() tea.Msg {
		return pronouncedMsg{Key: key, URL: lookup(context.Background(), text)}
	}
}

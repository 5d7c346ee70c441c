package home

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/wordcards/internal/router"
	"github.com/abhisek/wordcards/internal/screens/hardlist"
	"github.com/abhisek/wordcards/internal/screens/learn"
	"github.com/abhisek/wordcards/internal/screens/notice"
	"github.com/abhisek/wordcards/internal/screens/settings"
	"github.com/abhisek/wordcards/internal/screens/summary"
	"github.com/abhisek/wordcards/internal/selector"
	"github.com/abhisek/wordcards/internal/store"
	"github.com/abhisek/wordcards/internal/study"
	"github.com/abhisek/wordcards/internal/vocab"
)

type staticDatasets map[vocab.Mode][]vocab.Item

func (d staticDatasets) Dataset(_ context.Context, mode vocab.Mode) []vocab.Item {
	return d[mode]
}

func newTestHome(t *testing.T) (*HomeScreen, store.Repos) {
	t.Helper()
	repos := store.NewRepos(store.NewMemoryKV())
	sel := selector.New(staticDatasets{}, repos.Hard)
	svc := study.New(sel, repos, zap.NewNop())
	return New(learn.Deps{Study: svc}), repos
}

func loadStats(h *HomeScreen) {
	h.Update(h.Init()())
}

// selectItem moves the cursor to index and presses Enter, returning the
// pushed screen message.
func selectItem(t *testing.T, h *HomeScreen, index int) tea.Msg {
	t.Helper()
	for i := 0; i < index; i++ {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("menu item %d produced no command", index)
	}
	return cmd()
}

func TestHome_StatsShown(t *testing.T) {
	h, repos := newTestHome(t)
	ctx := context.Background()
	if err := repos.Progress.Save(ctx, store.ProgressData{
		LearnedWords:   []string{"a", "b"},
		LearnedPhrases: []string{"c"},
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := repos.Hard.Add(ctx, vocab.NewWord("a", "", "", "")); err != nil {
		t.Fatal(err)
	}

	loadStats(h)
	view := h.View(120, 40)
	for _, want := range []string{"2 WORDS", "1 PHRASES", "1 HARD", "START WORDS"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHome_MenuNavigation(t *testing.T) {
	tests := []struct {
		index int
		check func(tea.Msg) bool
	}{
		{0, func(m tea.Msg) bool {
			s, ok := m.(router.PushScreenMsg).Screen.(*learn.LearnScreen)
			return ok && s.Title() == "Words"
		}},
		{1, func(m tea.Msg) bool {
			s, ok := m.(router.PushScreenMsg).Screen.(*learn.LearnScreen)
			return ok && s.Title() == "Phrases"
		}},
		{2, func(m tea.Msg) bool {
			s, ok := m.(router.PushScreenMsg).Screen.(*learn.LearnScreen)
			return ok && s.Title() == "Review"
		}},
		{3, func(m tea.Msg) bool {
			_, ok := m.(router.PushScreenMsg).Screen.(*hardlist.HardListScreen)
			return ok
		}},
		{4, func(m tea.Msg) bool {
			_, ok := m.(router.PushScreenMsg).Screen.(*notice.NoticeScreen)
			return ok
		}},
		{5, func(m tea.Msg) bool {
			_, ok := m.(router.PushScreenMsg).Screen.(*settings.SettingsScreen)
			return ok
		}},
		{6, func(m tea.Msg) bool {
			_, ok := m.(tea.QuitMsg)
			return ok
		}},
	}
	for _, tt := range tests {
		h, _ := newTestHome(t)
		loadStats(h)
		if msg := selectItem(t, h, tt.index); !tt.check(msg) {
			t.Errorf("menu item %d (%s) produced %T", tt.index, h.menuLabels[tt.index], msg)
		}
	}
}

func TestHome_LastResultsShowsSummary(t *testing.T) {
	h, repos := newTestHome(t)
	if err := repos.Results.Save(context.Background(), store.ResultsData{
		Mode: vocab.ModeWords, Total: 3, Known: 2, Hard: 1,
	}); err != nil {
		t.Fatal(err)
	}
	loadStats(h)

	msg := selectItem(t, h, 4)
	if _, ok := msg.(router.PushScreenMsg).Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("expected summary screen, got %T", msg.(router.PushScreenMsg).Screen)
	}
}

func TestMascotFor(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		stats study.Stats
		want  MascotVariant
	}{
		{"fresh install", study.Stats{}, MascotIdle},
		{"long review queue", study.Stats{HardItems: alertHardCount}, MascotAlert},
		{"strong recent session", study.Stats{Latest: &store.ResultsData{
			Total: 4, Known: 3, FinishedAt: now.Add(-time.Hour),
		}}, MascotCelebrating},
		{"strong old session", study.Stats{Latest: &store.ResultsData{
			Total: 4, Known: 3, FinishedAt: now.Add(-48 * time.Hour),
		}}, MascotIdle},
		{"weak recent session", study.Stats{Latest: &store.ResultsData{
			Total: 4, Known: 1, FinishedAt: now.Add(-time.Hour),
		}}, MascotIdle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mascotFor(tt.stats, now); got != tt.want {
				t.Errorf("mascotFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRenderMascot(t *testing.T) {
	if !strings.Contains(RenderMascot(MascotAlert), "!") {
		t.Error("alert mascot should show an exclamation")
	}
	if !strings.Contains(RenderMascot(MascotCelebrating), "★") {
		t.Error("celebrating mascot should have star eyes")
	}
}

package app

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/wordcards/internal/router"
	"github.com/abhisek/wordcards/internal/screens/home"
	"github.com/abhisek/wordcards/internal/screens/learn"
	"github.com/abhisek/wordcards/internal/screens/welcome"
	"github.com/abhisek/wordcards/internal/selector"
	"github.com/abhisek/wordcards/internal/store"
	"github.com/abhisek/wordcards/internal/study"
	"github.com/abhisek/wordcards/internal/vocab"
)

type staticDatasets map[vocab.Mode][]vocab.Item

func (d staticDatasets) Dataset(_ context.Context, mode vocab.Mode) []vocab.Item {
	return d[mode]
}

func testOptions(mode vocab.Mode) Options {
	repos := store.NewRepos(store.NewMemoryKV())
	datasets := staticDatasets{
		vocab.ModeWords: {vocab.NewWord("apple", "", "", "fruit"), vocab.NewWord("pear", "", "", "fruit")},
	}
	sel := selector.New(datasets, repos.Hard)
	return Options{
		Study:     study.New(sel, repos, zap.NewNop()),
		StartMode: mode,
	}
}

func TestNewAppModel_SplashByDefault(t *testing.T) {
	m := newAppModel(testOptions(""))
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Errorf("root = %T, want welcome screen", m.router.Active())
	}
	if m.start != nil {
		t.Error("no session should be queued without a start mode")
	}
}

func TestNewAppModel_StartMode(t *testing.T) {
	m := newAppModel(testOptions(vocab.ModeWords))
	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Errorf("root = %T, want home screen", m.router.Active())
	}
	s, ok := m.start.(*learn.LearnScreen)
	if !ok {
		t.Fatalf("start = %T, want learn screen", m.start)
	}
	if s.Title() != "Words" {
		t.Errorf("start title = %q, want Words", s.Title())
	}

	m = newAppModel(testOptions(vocab.ModeReview))
	if m.start.Title() != "Review" {
		t.Errorf("start title = %q, want Review", m.start.Title())
	}
}

func TestEscPopsScreen(t *testing.T) {
	m := newAppModel(testOptions(vocab.ModeWords))
	m.router.Push(home.New(learn.Deps{}))

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("Esc should pop when depth > 1")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestEscInterceptedDuringSession(t *testing.T) {
	opts := testOptions(vocab.ModeWords)
	m := newAppModel(opts)
	s := learn.New(learn.Deps{Study: opts.Study}, vocab.ModeWords)
	m.router.Push(s)
	s.Update(s.Init()())

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		if _, ok := cmd().(router.PopScreenMsg); ok {
			t.Error("Esc should be handled by the session screen")
		}
	}
	if m.router.Depth() != 2 {
		t.Errorf("depth = %d, want 2", m.router.Depth())
	}
	if len(s.KeyHints()) == 0 || s.KeyHints()[0].Key != "Y" {
		t.Error("session screen should be asking for confirmation")
	}
}

func TestViewUsesAltScreen(t *testing.T) {
	m := newAppModel(testOptions(""))
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	v := updated.(AppModel).View()
	if !v.AltScreen {
		t.Error("expected alt screen")
	}
}

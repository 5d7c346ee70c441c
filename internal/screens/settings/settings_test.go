package settings

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordcards/internal/store"
)

func newLoaded(t *testing.T) (*SettingsScreen, store.SettingsRepo) {
	t.Helper()
	repo := store.NewRepos(store.NewMemoryKV()).Settings
	s := New(repo)
	st, err := repo.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	s.Update(settingsLoadedMsg{Settings: st})
	return s, repo
}

// run feeds msg to the screen and then feeds back the message produced
// by the returned command, if any.
func run(s *SettingsScreen, msg tea.Msg) {
	_, cmd := s.Update(msg)
	if cmd == nil {
		return
	}
	if out := cmd(); out != nil {
		s.Update(out)
	}
}

func typeText(s *SettingsScreen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func clearCount(s *SettingsScreen) {
	for range s.count.Value() {
		s.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	}
}

func TestSettings_LoadsDefaults(t *testing.T) {
	s, _ := newLoaded(t)
	if got := s.count.Value(); got != "20" {
		t.Errorf("count = %q, want 20", got)
	}
	if !s.random || s.autoPlay {
		t.Errorf("random=%v autoPlay=%v, want true/false", s.random, s.autoPlay)
	}
	if !strings.Contains(s.View(80, 24), "Cards per session") {
		t.Error("form should be rendered")
	}
}

func TestSettings_SavePersistsImmediately(t *testing.T) {
	s, repo := newLoaded(t)

	clearCount(s)
	typeText(s, "5x")
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeySpace, Text: " "})
	run(s, tea.KeyPressMsg{Code: tea.KeyEnter})

	got, err := repo.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := store.Settings{LearningCount: 5, RandomOrder: false, AutoPlay: true}
	if got != want {
		t.Errorf("saved %+v, want %+v", got, want)
	}
	if s.status != "Saved" {
		t.Errorf("status = %q, want Saved", s.status)
	}
}

func TestSettings_InvalidCountFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "zero", input: "0"},
		{name: "zeros", input: "000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, repo := newLoaded(t)
			clearCount(s)
			typeText(s, tt.input)
			run(s, tea.KeyPressMsg{Code: tea.KeyEnter})

			got, err := repo.Load(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			if got.LearningCount != store.DefaultLearningCount {
				t.Errorf("count = %d, want %d", got.LearningCount, store.DefaultLearningCount)
			}
			if s.count.Value() != "20" {
				t.Errorf("input should show the sanitized count, got %q", s.count.Value())
			}
		})
	}
}

func TestSettings_FocusWraps(t *testing.T) {
	s, _ := newLoaded(t)
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.focus != fieldSave {
		t.Errorf("focus = %d, want save", s.focus)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.focus != fieldCount {
		t.Errorf("focus = %d, want count", s.focus)
	}
}

package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordcards/internal/router"
	"github.com/abhisek/wordcards/internal/screen"
	"github.com/abhisek/wordcards/internal/session"
	"github.com/abhisek/wordcards/internal/vocab"
)

type stubScreen struct{ name string }

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return s.name }
func (s *stubScreen) Title() string                          { return s.name }

func testSummary() *session.Summary {
	return &session.Summary{
		ID:       "s-1",
		Mode:     vocab.ModeWords,
		Tally:    session.Tally{Known: 1, Familiar: 1, Hard: 1, Total: 3},
		Duration: 2*time.Minute + 5*time.Second,
	}
}

func testActions() Actions {
	return Actions{
		Again:  func() screen.Screen { return &stubScreen{name: "again"} },
		Review: func() screen.Screen { return &stubScreen{name: "review"} },
	}
}

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), testActions())
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	view := New(testSummary(), testActions()).View(80, 24)
	for _, want := range []string{"Session complete!", "Known", "Familiar", "Hard", "2:05"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_EndedEarly(t *testing.T) {
	sum := testSummary()
	sum.EndedEarly = true
	sum.Tally = session.Tally{Known: 1, Total: 3}

	view := New(sum, testActions()).View(80, 24)
	if !strings.Contains(view, "Session ended") {
		t.Error("expected early end title")
	}
	if !strings.Contains(view, "2 cards not reached") {
		t.Error("expected unreached card count")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary(), testActions())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command on Enter")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("Enter should return to the home screen")
	}
}

func TestSummaryScreen_Again(t *testing.T) {
	s := New(testSummary(), testActions())
	_, cmd := s.Update(key('n'))
	if cmd == nil {
		t.Fatal("expected command on n")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if msg.Screen.Title() != "again" {
		t.Errorf("replaced with %q, want again", msg.Screen.Title())
	}
}

func TestSummaryScreen_ReviewNeedsHardCards(t *testing.T) {
	s := New(testSummary(), testActions())
	_, cmd := s.Update(key('r'))
	if cmd == nil {
		t.Fatal("expected command on r")
	}
	if msg := cmd().(router.ReplaceScreenMsg); msg.Screen.Title() != "review" {
		t.Errorf("replaced with %q, want review", msg.Screen.Title())
	}

	sum := testSummary()
	sum.Tally = session.Tally{Known: 3, Total: 3}
	s = New(sum, testActions())
	if _, cmd := s.Update(key('r')); cmd != nil {
		t.Error("review should be unavailable without hard cards")
	}
}

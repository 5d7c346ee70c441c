package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wordcards/internal/router"
	"github.com/abhisek/wordcards/internal/screen"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "home" }
func (s *stubScreen) Title() string                          { return "Home" }

func newTestWelcome() (*WelcomeScreen, *int) {
	calls := 0
	return New(func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func advance(w *WelcomeScreen, frames int) {
	for i := 0; i < frames; i++ {
		w.Update(frameMsg(time.Now()))
	}
}

func TestWelcome_DealThenFlip(t *testing.T) {
	w, _ := newTestWelcome()
	assert.Equal(t, 1, w.dealt())
	assert.NotContains(t, w.View(100, 30), "A · a")

	advance(w, int(dealEnd/frame))
	assert.Equal(t, deckSize, w.dealt())
	assert.NotContains(t, w.View(100, 30), "One card at a time")

	advance(w, int((flipEnd-dealEnd)/frame))
	view := w.View(100, 30)
	assert.Contains(t, view, "A · a", "top card is face up")
	assert.Contains(t, view, "One card at a time")
	assert.Contains(t, view, "██", "block banner on a wide terminal")
}

func TestWelcome_DeckRowsFanOut(t *testing.T) {
	w, _ := newTestWelcome()
	advance(w, int(flipEnd/frame))
	rows := strings.Split(w.renderDeck(), "\n")
	assert.Len(t, rows, len(cardBack)+deckSize-1)
}

func TestWelcome_FramesStopWhenAnimationEnds(t *testing.T) {
	w, calls := newTestWelcome()
	advance(w, 50)
	assert.Equal(t, totalDur, w.elapsed)
	assert.Zero(t, *calls, "no transition without a key")

	_, cmd := w.Update(frameMsg(time.Now()))
	assert.Nil(t, cmd)
}

func TestWelcome_AnyKeyTransitionsOnce(t *testing.T) {
	w, calls := newTestWelcome()
	advance(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	require.NotNil(t, cmd)
	replace, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.NotNil(t, replace.Screen)

	_, cmd = w.Update(tea.KeyPressMsg{Code: 'b', Text: "b"})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, *calls)

	_, cmd = w.Update(frameMsg(time.Now()))
	assert.Nil(t, cmd, "frames stop after the transition")
}

func TestBanner(t *testing.T) {
	assert.Contains(t, RenderBanner(60), bannerCompact)

	rows := strings.Split(bannerArt(bannerWord), "\n")
	require.Len(t, rows, 6)
	want := len([]rune(rows[0]))
	for i, r := range rows {
		assert.Equal(t, want, len([]rune(r)), "row %d", i)
	}
}

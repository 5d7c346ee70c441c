package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/wordcards/internal/ui/layout"
)

// Screen is one page on the router stack. View receives the body area
// only; the app draws the header and footer around it.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider replaces the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// BackInterceptor screens receive Esc themselves while InterceptsBack
// reports true, instead of being popped by the app.
type BackInterceptor interface {
	InterceptsBack() bool
}

// StatusProvider supplies the right-hand side of the header.
type StatusProvider interface {
	Status() string
}

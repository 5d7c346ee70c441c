package learn

import (
	"github.com/abhisek/wordcards/internal/session"
	"github.com/abhisek/wordcards/internal/store"
)

// sessionReadyMsg is sent when the session items have been drawn.
type sessionReadyMsg struct {
	State    *session.State
	Settings store.Settings
	Err      error
}

// pronouncedMsg carries the audio URL resolved for a card. URL is empty
// when nothing was found.
type pronouncedMsg struct {
	Key string
	URL string
}

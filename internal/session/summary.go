package session

import (
	"time"

	"github.com/abhisek/wordcards/internal/vocab"
)

// Summary holds the data displayed on the results screen.
type Summary struct {
	ID       string
	Mode     vocab.Mode
	Tally    Tally
	Duration time.Duration

	// EndedEarly is true if the session ended before every card was marked.
	EndedEarly bool

	FinishedAt time.Time
}

// Percent returns n as a share of the session total, 0 if empty.
func (s *Summary) Percent(n int) float64 {
	if s.Tally.Total == 0 {
		return 0
	}
	return float64(n) / float64(s.Tally.Total) * 100
}

// BuildSummary creates a Summary from the session state.
func BuildSummary(state *State) *Summary {
	end := state.EndTime
	if end.IsZero() {
		end = time.Now()
	}
	return &Summary{
		ID:         state.ID,
		Mode:       state.Mode,
		Tally:      state.Tally,
		Duration:   end.Sub(state.StartTime),
		EndedEarly: state.Index < len(state.Items),
		FinishedAt: end,
	}
}

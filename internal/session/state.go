package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/wordcards/internal/vocab"
)

// Phase is the lifecycle phase of a session.
type Phase int

const (
	PhaseActive    Phase = iota // Showing cards
	PhaseCompleted              // All cards marked or ended early
)

func (p Phase) String() string {
	if p == PhaseCompleted {
		return "completed"
	}
	return "active"
}

// Outcome is the learner's recall rating for one card.
type Outcome int

const (
	OutcomeKnown Outcome = iota
	OutcomeFamiliar
	OutcomeHard
)

func (o Outcome) String() string {
	switch o {
	case OutcomeKnown:
		return "known"
	case OutcomeFamiliar:
		return "familiar"
	case OutcomeHard:
		return "hard"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Valid reports whether o is one of the three ratings.
func (o Outcome) Valid() bool {
	return o >= OutcomeKnown && o <= OutcomeHard
}

// ParseOutcome parses an outcome name.
func ParseOutcome(s string) (Outcome, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "known":
		return OutcomeKnown, nil
	case "familiar":
		return OutcomeFamiliar, nil
	case "hard":
		return OutcomeHard, nil
	}
	return 0, fmt.Errorf("unknown outcome %q", s)
}

// Tally counts marks by outcome. Total is the number of cards in the
// session, not the number marked.
type Tally struct {
	Known    int `json:"known"`
	Familiar int `json:"familiar"`
	Hard     int `json:"hard"`
	Total    int `json:"total"`
}

// Marked returns the number of cards marked so far.
func (t Tally) Marked() int {
	return t.Known + t.Familiar + t.Hard
}

func (t *Tally) add(o Outcome) {
	switch o {
	case OutcomeKnown:
		t.Known++
	case OutcomeFamiliar:
		t.Familiar++
	case OutcomeHard:
		t.Hard++
	}
}

// State is a single learning session. It holds no references to storage
// or rendering; callers persist what Mark and End report.
type State struct {
	// ID is the UUID for this session.
	ID string

	// Mode is the pool the items were drawn from.
	Mode vocab.Mode

	// Items are the cards in presentation order.
	Items []vocab.Item

	// Index is the position of the current card. It equals len(Items)
	// once every card has been marked.
	Index int

	Tally Tally
	Phase Phase

	// Revealed is true while the current card's meaning is shown.
	Revealed bool

	// Learned holds identity keys marked this session, per dataset mode.
	Learned map[vocab.Mode][]string

	// HardItems are the cards marked hard this session, in mark order.
	HardItems []vocab.Item

	StartTime time.Time
	EndTime   time.Time
}

// New creates a session over items. A session with no items is
// completed from the start.
func New(mode vocab.Mode, items []vocab.Item) *State {
	s := &State{
		ID:        uuid.NewString(),
		Mode:      mode,
		Items:     items,
		Tally:     Tally{Total: len(items)},
		Phase:     PhaseActive,
		Learned:   make(map[vocab.Mode][]string),
		StartTime: time.Now(),
	}
	if len(items) == 0 {
		s.complete()
	}
	return s
}

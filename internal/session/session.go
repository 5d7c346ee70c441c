package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/wordcards/internal/vocab"
)

// ErrCompleted is returned when marking a card on a completed session.
var ErrCompleted = errors.New("session already completed")

// ErrInvalidOutcome is returned when Mark receives an unknown rating.
var ErrInvalidOutcome = errors.New("invalid outcome")

// MarkResult describes what a Mark changed.
type MarkResult struct {
	Item    vocab.Item
	Outcome Outcome

	// Category is the learned set the item was recorded in, or "" if
	// it was not recorded.
	Category vocab.Mode

	// Completed is true if this mark finished the session.
	Completed bool
}

// Current returns the card being shown, or false if the session is
// completed.
func (s *State) Current() (vocab.Item, bool) {
	if s.Phase != PhaseActive || s.Index >= len(s.Items) {
		return vocab.Item{}, false
	}
	return s.Items[s.Index], true
}

// Reveal shows the meaning of the current card.
func (s *State) Reveal() (string, bool) {
	it, ok := s.Current()
	if !ok {
		return "", false
	}
	s.Revealed = true
	return it.Meaning(), true
}

// Mark rates the current card and advances to the next one.
func (s *State) Mark(o Outcome) (MarkResult, error) {
	if !o.Valid() {
		return MarkResult{}, fmt.Errorf("%w: %v", ErrInvalidOutcome, o)
	}
	it, ok := s.Current()
	if !ok {
		return MarkResult{}, ErrCompleted
	}

	s.Tally.add(o)
	res := MarkResult{Item: it, Outcome: o}

	if cat, ok := LearnedCategory(s.Mode, it); ok {
		s.Learned[cat] = appendUnique(s.Learned[cat], it.Key())
		res.Category = cat
	}
	if o == OutcomeHard {
		s.HardItems = append(s.HardItems, it)
	}

	s.Index++
	s.Revealed = false
	if s.Index >= len(s.Items) {
		s.complete()
		res.Completed = true
	}
	return res, nil
}

// End terminates the session early. It reports whether this call
// completed the session; ending a completed session is a no-op.
func (s *State) End() bool {
	if s.Phase == PhaseCompleted {
		return false
	}
	s.complete()
	return true
}

// Progress returns the 1-based position of the current card and the total.
func (s *State) Progress() (int, int) {
	pos := s.Index + 1
	if pos > len(s.Items) {
		pos = len(s.Items)
	}
	return pos, len(s.Items)
}

func (s *State) complete() {
	s.Phase = PhaseCompleted
	s.Revealed = false
	s.EndTime = time.Now()
}

// LearnedCategory returns the learned set an item belongs to. Words and
// phrases use their own kind so review sessions file them correctly;
// malformed items fall back to the session mode and are skipped in review.
func LearnedCategory(mode vocab.Mode, it vocab.Item) (vocab.Mode, bool) {
	switch it.Kind {
	case vocab.KindWord:
		return vocab.ModeWords, true
	case vocab.KindPhrase:
		return vocab.ModePhrases, true
	}
	if mode == vocab.ModeWords || mode == vocab.ModePhrases {
		return mode, true
	}
	return "", false
}

func appendUnique(keys []string, key string) []string {
	for _, k := range keys {
		if k == key {
			return keys
		}
	}
	return append(keys, key)
}

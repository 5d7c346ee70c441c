package study

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/wordcards/internal/store"
)

// Stats summarizes persisted progress for the home screen and CLI.
type Stats struct {
	LearnedWords   int
	LearnedPhrases int
	HardItems      int
	LastLearned    time.Time
	Latest         *store.ResultsData
}

// Stats reads the persisted progress counters.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	var st Stats

	p, err := s.repos.Progress.Load(ctx)
	if err != nil {
		return st, fmt.Errorf("load progress: %w", err)
	}
	st.LearnedWords = len(p.LearnedWords)
	st.LearnedPhrases = len(p.LearnedPhrases)
	st.LastLearned = p.LastLearned

	hard, err := s.repos.Hard.List(ctx)
	if err != nil {
		return st, fmt.Errorf("list hard items: %w", err)
	}
	st.HardItems = len(hard)

	st.Latest, err = s.results.Latest(ctx)
	if err != nil {
		return st, fmt.Errorf("load latest results: %w", err)
	}
	return st, nil
}

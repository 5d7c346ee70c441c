// Package study coordinates learning sessions with the selector and
// persistent storage. Storage failures are logged and never interrupt a
// running session.
package study

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/wordcards/internal/results"
	"github.com/abhisek/wordcards/internal/session"
	"github.com/abhisek/wordcards/internal/store"
	"github.com/abhisek/wordcards/internal/vocab"
)

// Drawer draws session items. *selector.Selector satisfies it.
type Drawer interface {
	Draw(ctx context.Context, mode vocab.Mode, count int, randomOrder bool) ([]vocab.Item, error)
}

// Service starts sessions and persists their progress.
type Service struct {
	drawer  Drawer
	repos   store.Repos
	results *results.Reporter
	log     *zap.Logger
	now     func() time.Time
}

// New creates a Service.
func New(drawer Drawer, repos store.Repos, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		drawer: drawer,
		repos:  repos,
		log:    log,
		now:    time.Now,
	}
	s.results = results.New(repos.Results, s, log)
	return s
}

// Results returns the reporter backed by this service.
func (s *Service) Results() *results.Reporter {
	return s.results
}

// Repos returns the repositories the service persists to.
func (s *Service) Repos() store.Repos {
	return s.repos
}

// Settings loads the saved settings, falling back to defaults on error.
func (s *Service) Settings(ctx context.Context) store.Settings {
	st, err := s.repos.Settings.Load(ctx)
	if err != nil {
		s.log.Warn("load settings failed, using defaults", zap.Error(err))
		return store.DefaultSettings()
	}
	return st
}

// Start draws items for mode and returns a new session over them. The
// mode is remembered as the selected mode.
func (s *Service) Start(ctx context.Context, mode vocab.Mode) (*session.State, error) {
	settings := s.Settings(ctx)

	if err := s.repos.Mode.SetSelectedMode(ctx, mode); err != nil {
		s.logWriteErr("save selected mode", err)
	}

	items, err := s.drawer.Draw(ctx, mode, settings.LearningCount, settings.RandomOrder)
	if err != nil {
		return nil, err
	}

	state := session.New(mode, items)
	s.log.Info("session started",
		zap.String("session_id", state.ID),
		zap.String("mode", string(mode)),
		zap.Int("count", len(items)))

	if state.Phase == session.PhaseCompleted {
		s.persistCompletion(ctx, state)
	}
	return state, nil
}

// Mark rates the current card of state and persists the result. When the
// mark completes the session, the final tally is persisted too.
func (s *Service) Mark(ctx context.Context, state *session.State, o session.Outcome) (session.MarkResult, error) {
	res, err := state.Mark(o)
	if err != nil {
		return res, err
	}

	if res.Category != "" {
		s.recordLearned(ctx, res.Category, res.Item.Key())
	}
	if o == session.OutcomeHard {
		if _, err := s.repos.Hard.Add(ctx, res.Item); err != nil {
			s.logWriteErr("add hard item", err)
		}
	}

	if res.Completed {
		s.persistCompletion(ctx, state)
	}
	return res, nil
}

// End terminates state early and returns its summary. Ending a completed
// session only returns the summary.
func (s *Service) End(ctx context.Context, state *session.State) *session.Summary {
	if state.End() {
		s.persistCompletion(ctx, state)
	}
	return session.BuildSummary(state)
}

func (s *Service) recordLearned(ctx context.Context, category vocab.Mode, key string) {
	p, err := s.repos.Progress.Load(ctx)
	if err != nil {
		s.log.Warn("load progress failed", zap.Error(err))
		p = store.ProgressData{}
	}

	switch category {
	case vocab.ModeWords:
		p.LearnedWords = addKey(p.LearnedWords, key)
	case vocab.ModePhrases:
		p.LearnedPhrases = addKey(p.LearnedPhrases, key)
	}
	p.LastLearned = s.now()

	if err := s.repos.Progress.Save(ctx, p); err != nil {
		s.logWriteErr("save progress", err)
	}
}

func (s *Service) persistCompletion(ctx context.Context, state *session.State) {
	sum := session.BuildSummary(state)
	if err := s.results.Snapshot(ctx, sum); err != nil {
		s.logWriteErr("snapshot results", err)
	}
	s.log.Info("session completed",
		zap.String("session_id", state.ID),
		zap.Int("marked", state.Tally.Marked()),
		zap.Int("total", state.Tally.Total),
		zap.Bool("ended_early", sum.EndedEarly))
}

func (s *Service) logWriteErr(msg string, err error) {
	s.log.Error(msg, zap.Error(err))
}

func addKey(keys []string, key string) []string {
	for _, k := range keys {
		if k == key {
			return keys
		}
	}
	return append(keys, key)
}

// Package results records and reports session outcomes.
package results

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/wordcards/internal/session"
	"github.com/abhisek/wordcards/internal/store"
	"github.com/abhisek/wordcards/internal/vocab"
)

// Starter starts a new session for a mode.
type Starter interface {
	Start(ctx context.Context, mode vocab.Mode) (*session.State, error)
}

// Reporter persists the latest session tally and starts review sessions.
type Reporter struct {
	repo    store.ResultsRepo
	starter Starter
	log     *zap.Logger
}

// New creates a Reporter.
func New(repo store.ResultsRepo, starter Starter, log *zap.Logger) *Reporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reporter{repo: repo, starter: starter, log: log}
}

// Snapshot stores sum as the latest results, replacing any previous ones.
func (r *Reporter) Snapshot(ctx context.Context, sum *session.Summary) error {
	data := store.ResultsData{
		SessionID:  sum.ID,
		Mode:       sum.Mode,
		Total:      sum.Tally.Total,
		Known:      sum.Tally.Known,
		Familiar:   sum.Tally.Familiar,
		Hard:       sum.Tally.Hard,
		FinishedAt: sum.FinishedAt,
	}
	if err := r.repo.Save(ctx, data); err != nil {
		return fmt.Errorf("save results: %w", err)
	}
	r.log.Info("results saved",
		zap.String("session_id", sum.ID),
		zap.String("mode", string(sum.Mode)),
		zap.Int("known", data.Known),
		zap.Int("familiar", data.Familiar),
		zap.Int("hard", data.Hard))
	return nil
}

// Summary converts saved results back into a session summary. Duration
// is not persisted and is left zero.
func Summary(data *store.ResultsData) *session.Summary {
	if data == nil {
		return nil
	}
	tally := session.Tally{
		Known:    data.Known,
		Familiar: data.Familiar,
		Hard:     data.Hard,
		Total:    data.Total,
	}
	return &session.Summary{
		ID:         data.SessionID,
		Mode:       data.Mode,
		Tally:      tally,
		EndedEarly: tally.Marked() < tally.Total,
		FinishedAt: data.FinishedAt,
	}
}

// Latest returns the most recently saved results, or nil if there are none.
func (r *Reporter) Latest(ctx context.Context) (*store.ResultsData, error) {
	return r.repo.Latest(ctx)
}

// ReviewHard starts a review session over the hard item queue. The queue
// is not drained by reviewing it.
func (r *Reporter) ReviewHard(ctx context.Context) (*session.State, error) {
	return r.starter.Start(ctx, vocab.ModeReview)
}

// Package selector draws the items for a learning session.
package selector

import (
	"context"
	"math/rand/v2"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/wordcards/internal/store"
	"github.com/abhisek/wordcards/internal/vocab"
)

// DatasetProvider supplies the normalized dataset for a mode.
// *source.Cache satisfies it.
type DatasetProvider interface {
	Dataset(ctx context.Context, mode vocab.Mode) []vocab.Item
}

// Selector draws fixed-size batches of items, preferring items not yet
// drawn by this process. The picked sets live in memory only.
type Selector struct {
	datasets DatasetProvider
	hard     store.HardItemRepo
	log      *zap.Logger

	mu     sync.Mutex
	rng    *rand.Rand
	picked map[vocab.Mode]map[string]bool
}

// Option configures a Selector.
type Option func(*Selector)

// WithRand sets the random source used for shuffling.
func WithRand(r *rand.Rand) Option {
	return func(s *Selector) { s.rng = r }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Selector) { s.log = l }
}

// New creates a Selector.
func New(datasets DatasetProvider, hard store.HardItemRepo, opts ...Option) *Selector {
	s := &Selector{
		datasets: datasets,
		hard:     hard,
		log:      zap.NewNop(),
		picked:   make(map[vocab.Mode]map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// Draw returns up to count items for mode.
//
// Items already drawn for mode are excluded. When fewer than count unseen
// items remain, the whole dataset is used instead, with the unseen items
// first so they are always included; the picked set is kept as is.
// Review mode draws from the hard item queue with no deduplication.
func (s *Selector) Draw(ctx context.Context, mode vocab.Mode, count int, randomOrder bool) ([]vocab.Item, error) {
	if count <= 0 {
		return nil, nil
	}
	if mode == vocab.ModeReview {
		return s.drawReview(ctx, count, randomOrder)
	}

	dataset := vocab.Dedup(s.datasets.Dataset(ctx, mode))
	if len(dataset) == 0 {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	picked := s.picked[mode]
	if picked == nil {
		picked = make(map[string]bool)
		s.picked[mode] = picked
	}

	var unseen, seen []vocab.Item
	for _, it := range dataset {
		if picked[it.Key()] {
			seen = append(seen, it)
		} else {
			unseen = append(unseen, it)
		}
	}

	var pool []vocab.Item
	if len(unseen) >= count {
		pool = unseen
		if randomOrder {
			s.shuffle(pool)
		}
	} else {
		s.log.Debug("unseen items exhausted, repeating",
			zap.String("mode", string(mode)),
			zap.Int("unseen", len(unseen)),
			zap.Int("count", count))
		if randomOrder {
			s.shuffle(unseen)
			s.shuffle(seen)
		}
		pool = append(unseen, seen...)
	}

	if len(pool) > count {
		pool = pool[:count]
	}
	for _, it := range pool {
		picked[it.Key()] = true
	}
	return pool, nil
}

func (s *Selector) drawReview(ctx context.Context, count int, randomOrder bool) ([]vocab.Item, error) {
	items, err := s.hard.List(ctx)
	if err != nil {
		return nil, err
	}
	if randomOrder {
		s.mu.Lock()
		s.shuffle(items)
		s.mu.Unlock()
	}
	if len(items) > count {
		items = items[:count]
	}
	return items, nil
}

// Picked returns how many distinct items have been drawn for mode.
func (s *Selector) Picked(mode vocab.Mode) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.picked[mode])
}

// shuffle is a Fisher-Yates shuffle. Callers hold s.mu.
func (s *Selector) shuffle(items []vocab.Item) {
	for i := len(items) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

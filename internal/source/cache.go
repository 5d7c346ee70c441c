package source

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/wordcards/internal/store"
	"github.com/abhisek/wordcards/internal/vocab"
)

// Cache keeps one dataset per mode in persistent storage. A dataset is
// fetched from the static source only while it is absent; once present it
// is reused until invalidated.
type Cache struct {
	repo     store.DatasetRepo
	fetcher  Fetcher
	fallback Fetcher
	log      *zap.Logger

	mu     sync.Mutex
	failed map[vocab.Mode]error
}

// NewCache creates a Cache. fallback may be nil, in which case an
// unavailable source yields an empty dataset.
func NewCache(repo store.DatasetRepo, fetcher, fallback Fetcher, log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{
		repo:     repo,
		fetcher:  fetcher,
		fallback: fallback,
		log:      log,
		failed:   make(map[vocab.Mode]error),
	}
}

// EnsureCached guarantees a dataset for mode is in storage, fetching it
// at most once per absence. A failed fetch is remembered and not retried
// until Reload is called.
func (c *Cache) EnsureCached(ctx context.Context, mode vocab.Mode) error {
	if _, ok, err := c.Cached(ctx, mode); err == nil && ok {
		return nil
	}

	c.mu.Lock()
	prev := c.failed[mode]
	c.mu.Unlock()
	if prev != nil {
		return prev
	}

	if err := c.fetchAndStore(ctx, mode); err != nil {
		c.mu.Lock()
		c.failed[mode] = err
		c.mu.Unlock()
		return err
	}
	return nil
}

// EnsureAll caches every dataset-backed mode, logging failures.
func (c *Cache) EnsureAll(ctx context.Context) {
	for _, mode := range vocab.Modes {
		if err := c.EnsureCached(ctx, mode); err != nil {
			c.log.Warn("fetch source failed", zap.String("mode", string(mode)), zap.Error(err))
		}
	}
}

func (c *Cache) fetchAndStore(ctx context.Context, mode vocab.Mode) error {
	raw, err := c.fetcher.Fetch(ctx, mode)
	if err != nil {
		return &ErrSourceUnavailable{Mode: mode, Err: err}
	}
	if err := Validate(raw); err != nil {
		return &ErrSourceUnavailable{Mode: mode, Err: err}
	}
	if err := c.repo.Put(ctx, mode, raw); err != nil {
		return fmt.Errorf("cache %s dataset: %w", mode, err)
	}
	c.log.Info("source cached", zap.String("mode", string(mode)), zap.Int("bytes", len(raw)))
	return nil
}

// Cached returns the cached dataset for mode. A payload that no longer
// parses is reported as absent.
func (c *Cache) Cached(ctx context.Context, mode vocab.Mode) ([]vocab.Item, bool, error) {
	raw, ok, err := c.repo.Raw(ctx, mode)
	if err != nil || !ok {
		return nil, false, err
	}
	items, err := vocab.Normalize(mode, raw)
	if err != nil {
		c.log.Warn("cached source unreadable", zap.String("mode", string(mode)), zap.Error(err))
		return nil, false, nil
	}
	return items, true, nil
}

// Dataset returns the items for mode, caching them first if needed. It
// never fails: an unavailable source falls back to the built-in dataset,
// and to an empty one if that is missing too.
func (c *Cache) Dataset(ctx context.Context, mode vocab.Mode) []vocab.Item {
	if err := c.EnsureCached(ctx, mode); err != nil {
		c.log.Warn("source unavailable, using fallback", zap.String("mode", string(mode)), zap.Error(err))
		return c.fallbackItems(ctx, mode)
	}
	items, ok, err := c.Cached(ctx, mode)
	if err != nil || !ok {
		c.log.Warn("cached source missing, using fallback", zap.String("mode", string(mode)), zap.Error(err))
		return c.fallbackItems(ctx, mode)
	}
	return items
}

func (c *Cache) fallbackItems(ctx context.Context, mode vocab.Mode) []vocab.Item {
	if c.fallback == nil {
		return nil
	}
	raw, err := c.fallback.Fetch(ctx, mode)
	if err != nil {
		c.log.Warn("built-in source unavailable", zap.String("mode", string(mode)), zap.Error(err))
		return nil
	}
	items, err := vocab.Normalize(mode, raw)
	if err != nil {
		c.log.Warn("built-in source unreadable", zap.String("mode", string(mode)), zap.Error(err))
		return nil
	}
	return items
}

// Invalidate drops the cached dataset for mode.
func (c *Cache) Invalidate(ctx context.Context, mode vocab.Mode) error {
	c.mu.Lock()
	delete(c.failed, mode)
	c.mu.Unlock()
	return c.repo.Invalidate(ctx, mode)
}

// Reload invalidates and re-fetches the dataset for mode.
func (c *Cache) Reload(ctx context.Context, mode vocab.Mode) error {
	if err := c.Invalidate(ctx, mode); err != nil {
		return err
	}
	return c.EnsureCached(ctx, mode)
}

// Store validates raw and writes it as the dataset for mode, replacing
// whatever was cached. Used by imports.
func (c *Cache) Store(ctx context.Context, mode vocab.Mode, raw []byte) error {
	if err := Validate(raw); err != nil {
		return err
	}
	c.mu.Lock()
	delete(c.failed, mode)
	c.mu.Unlock()
	return c.repo.Put(ctx, mode, raw)
}

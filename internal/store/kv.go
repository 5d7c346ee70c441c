package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// KV is the persistent key-value surface every repository is built on.
type KV interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists stored keys with the given prefix in lexical order.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// ErrWriteFailed wraps a failure to persist a value.
type ErrWriteFailed struct {
	Key string
	Err error
}

func (e *ErrWriteFailed) Error() string {
	return fmt.Sprintf("write %q: %v", e.Key, e.Err)
}

func (e *ErrWriteFailed) Unwrap() error { return e.Err }

// sqlKV implements KV over the kv table.
type sqlKV struct {
	db QueryI
}

// NewSQLKV returns a KV backed by the kv table reachable through db.
func NewSQLKV(db QueryI) KV {
	return &sqlKV{db: db}
}

func (s *sqlKV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.GetContext(ctx, &value, `SELECT value FROM kv WHERE key = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

func (s *sqlKV) Set(ctx context.Context, key, value string) error {
	query := `INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key)
		DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
		`
	_, err := s.db.ExecContext(ctx, query, key, value, time.Now().UnixMilli())
	if err != nil {
		return &ErrWriteFailed{Key: key, Err: err}
	}
	return nil
}

func (s *sqlKV) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return &ErrWriteFailed{Key: key, Err: err}
	}
	return nil
}

func (s *sqlKV) Keys(ctx context.Context, prefix string) ([]string, error) {
	keys := make([]string, 0)
	err := s.db.SelectContext(ctx, &keys,
		`SELECT key FROM kv WHERE substr(key, 1, ?) = ? ORDER BY key`, len(prefix), prefix)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	return keys, nil
}

// MemoryKV is an in-process KV. Values vanish with the process.
type MemoryKV struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryKV returns an empty MemoryKV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

func (m *MemoryKV) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

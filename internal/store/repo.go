package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/abhisek/wordcards/internal/vocab"
)

// Storage keys.
const (
	KeySettings        = "wordAppSettings"
	KeyHardItems       = "hardItems"
	KeyProgress        = "wordAppProgress"
	KeyLatestResults   = "latestResults"
	KeySelectedMode    = "selectedMode"
	KeySourcesCachedAt = "sourcesCachedAt"
)

// SourceKey returns the cache key holding the dataset for mode.
func SourceKey(mode vocab.Mode) string {
	return string(mode) + "-source"
}

// DefaultLearningCount is used when no valid count has been saved.
const DefaultLearningCount = 20

// Settings are the learner's persisted preferences.
type Settings struct {
	LearningCount int  `json:"learningCount"`
	RandomOrder   bool `json:"randomOrder"`
	AutoPlay      bool `json:"autoPlay"`
}

// DefaultSettings returns the settings used before anything is saved.
func DefaultSettings() Settings {
	return Settings{
		LearningCount: DefaultLearningCount,
		RandomOrder:   true,
		AutoPlay:      false,
	}
}

// Sanitize replaces a non-positive count with the default.
func (s Settings) Sanitize() Settings {
	if s.LearningCount <= 0 {
		s.LearningCount = DefaultLearningCount
	}
	return s
}

// ProgressData is the persisted learned-set progress.
type ProgressData struct {
	LearnedWords   []string  `json:"learnedWords"`
	LearnedPhrases []string  `json:"learnedPhrases"`
	LastLearned    time.Time `json:"lastLearned"`
}

// ResultsData is the persisted tally of the most recent session.
type ResultsData struct {
	SessionID  string     `json:"sessionId,omitempty"`
	Mode       vocab.Mode `json:"mode,omitempty"`
	Total      int        `json:"total"`
	Known      int        `json:"known"`
	Familiar   int        `json:"familiar"`
	Hard       int        `json:"hard"`
	FinishedAt time.Time  `json:"finishedAt"`
}

// SettingsRepo loads and saves Settings.
type SettingsRepo interface {
	// Load returns saved settings merged over the defaults.
	Load(ctx context.Context) (Settings, error)
	Save(ctx context.Context, s Settings) error
}

// HardItemRepo manages the cross-session review queue.
type HardItemRepo interface {
	List(ctx context.Context) ([]vocab.Item, error)

	// Add appends item unless an entry with the same identity key exists.
	// It reports whether the item was added.
	Add(ctx context.Context, item vocab.Item) (bool, error)

	Clear(ctx context.Context) error
}

// ProgressRepo manages the learned sets.
type ProgressRepo interface {
	Load(ctx context.Context) (ProgressData, error)
	Save(ctx context.Context, p ProgressData) error
	Clear(ctx context.Context) error
}

// ResultsRepo manages the latest session tally.
type ResultsRepo interface {
	// Latest returns the most recent results, or nil if none exist.
	Latest(ctx context.Context) (*ResultsData, error)
	Save(ctx context.Context, r ResultsData) error
	Clear(ctx context.Context) error
}

// ModeRepo remembers the last selected mode.
type ModeRepo interface {
	// SelectedMode returns the saved mode, or ModeWords if none is saved.
	SelectedMode(ctx context.Context) (vocab.Mode, error)
	SetSelectedMode(ctx context.Context, mode vocab.Mode) error
}

// DatasetRepo holds cached dataset payloads.
type DatasetRepo interface {
	// Raw returns the cached payload for mode and whether it is present.
	Raw(ctx context.Context, mode vocab.Mode) ([]byte, bool, error)
	Put(ctx context.Context, mode vocab.Mode, raw []byte) error
	Invalidate(ctx context.Context, mode vocab.Mode) error

	// CachedAt returns when a dataset was last written (zero if never).
	CachedAt(ctx context.Context) (time.Time, error)
}

// Repos bundles every repository over a single KV.
type Repos struct {
	Settings SettingsRepo
	Hard     HardItemRepo
	Progress ProgressRepo
	Results  ResultsRepo
	Mode     ModeRepo
	Datasets DatasetRepo
}

// NewRepos builds all repositories over kv.
func NewRepos(kv KV) Repos {
	return Repos{
		Settings: &settingsRepo{kv: kv},
		Hard:     &hardItemRepo{kv: kv},
		Progress: &progressRepo{kv: kv},
		Results:  &resultsRepo{kv: kv},
		Mode:     &modeRepo{kv: kv},
		Datasets: &datasetRepo{kv: kv},
	}
}

// getJSON decodes the value at key into dest. It reports whether the key
// was present.
func getJSON(ctx context.Context, kv KV, key string, dest any) (bool, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return true, fmt.Errorf("decode %q: %w", key, err)
	}
	return true, nil
}

func setJSON(ctx context.Context, kv KV, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return kv.Set(ctx, key, string(b))
}

type settingsRepo struct {
	kv KV
}

func (r *settingsRepo) Load(ctx context.Context) (Settings, error) {
	s := DefaultSettings()
	if _, err := getJSON(ctx, r.kv, KeySettings, &s); err != nil {
		return DefaultSettings(), err
	}
	return s.Sanitize(), nil
}

func (r *settingsRepo) Save(ctx context.Context, s Settings) error {
	return setJSON(ctx, r.kv, KeySettings, s.Sanitize())
}

type hardItemRepo struct {
	kv KV
}

func (r *hardItemRepo) List(ctx context.Context) ([]vocab.Item, error) {
	var items []vocab.Item
	if _, err := getJSON(ctx, r.kv, KeyHardItems, &items); err != nil {
		return nil, err
	}
	return vocab.Dedup(items), nil
}

func (r *hardItemRepo) Add(ctx context.Context, item vocab.Item) (bool, error) {
	items, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	for _, it := range items {
		if it.SameAs(item) {
			return false, nil
		}
	}
	items = append(items, item)
	if err := setJSON(ctx, r.kv, KeyHardItems, items); err != nil {
		return false, err
	}
	return true, nil
}

func (r *hardItemRepo) Clear(ctx context.Context) error {
	return r.kv.Delete(ctx, KeyHardItems)
}

type progressRepo struct {
	kv KV
}

func (r *progressRepo) Load(ctx context.Context) (ProgressData, error) {
	var p ProgressData
	if _, err := getJSON(ctx, r.kv, KeyProgress, &p); err != nil {
		return ProgressData{}, err
	}
	return p, nil
}

func (r *progressRepo) Save(ctx context.Context, p ProgressData) error {
	return setJSON(ctx, r.kv, KeyProgress, p)
}

func (r *progressRepo) Clear(ctx context.Context) error {
	return r.kv.Delete(ctx, KeyProgress)
}

type resultsRepo struct {
	kv KV
}

func (r *resultsRepo) Latest(ctx context.Context) (*ResultsData, error) {
	var res ResultsData
	ok, err := getJSON(ctx, r.kv, KeyLatestResults, &res)
	if err != nil || !ok {
		return nil, err
	}
	return &res, nil
}

func (r *resultsRepo) Save(ctx context.Context, res ResultsData) error {
	return setJSON(ctx, r.kv, KeyLatestResults, res)
}

func (r *resultsRepo) Clear(ctx context.Context) error {
	return r.kv.Delete(ctx, KeyLatestResults)
}

type modeRepo struct {
	kv KV
}

func (r *modeRepo) SelectedMode(ctx context.Context) (vocab.Mode, error) {
	raw, ok, err := r.kv.Get(ctx, KeySelectedMode)
	if err != nil {
		return vocab.ModeWords, err
	}
	if !ok {
		return vocab.ModeWords, nil
	}
	mode, err := vocab.ParseMode(raw)
	if err != nil {
		return vocab.ModeWords, nil
	}
	return mode, nil
}

func (r *modeRepo) SetSelectedMode(ctx context.Context, mode vocab.Mode) error {
	return r.kv.Set(ctx, KeySelectedMode, string(mode))
}

type datasetRepo struct {
	kv KV
}

func (r *datasetRepo) Raw(ctx context.Context, mode vocab.Mode) ([]byte, bool, error) {
	raw, ok, err := r.kv.Get(ctx, SourceKey(mode))
	if err != nil || !ok {
		return nil, false, err
	}
	return []byte(raw), true, nil
}

func (r *datasetRepo) Put(ctx context.Context, mode vocab.Mode, raw []byte) error {
	if err := r.kv.Set(ctx, SourceKey(mode), string(raw)); err != nil {
		return err
	}
	return r.kv.Set(ctx, KeySourcesCachedAt, strconv.FormatInt(time.Now().UnixMilli(), 10))
}

func (r *datasetRepo) Invalidate(ctx context.Context, mode vocab.Mode) error {
	return r.kv.Delete(ctx, SourceKey(mode))
}

func (r *datasetRepo) CachedAt(ctx context.Context) (time.Time, error) {
	raw, ok, err := r.kv.Get(ctx, KeySourcesCachedAt)
	if err != nil || !ok {
		return time.Time{}, err
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q: %w", KeySourcesCachedAt, err)
	}
	return time.UnixMilli(ms), nil
}

package study

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/wordcards/internal/selector"
	"github.com/abhisek/wordcards/internal/session"
	"github.com/abhisek/wordcards/internal/store"
	"github.com/abhisek/wordcards/internal/vocab"
)

type staticDatasets map[vocab.Mode][]vocab.Item

func (d staticDatasets) Dataset(_ context.Context, mode vocab.Mode) []vocab.Item {
	return d[mode]
}

// failingKV reads from an in-memory KV but fails every write.
type failingKV struct {
	store.KV
}

func (f failingKV) Set(_ context.Context, key, _ string) error {
	return &store.ErrWriteFailed{Key: key, Err: errors.New("disk full")}
}

func testDatasets() staticDatasets {
	return staticDatasets{
		vocab.ModeWords: {
			vocab.NewWord("A", "", "", "a"),
			vocab.NewWord("B", "", "", "b"),
			vocab.NewWord("C", "", "", "c"),
		},
		vocab.ModePhrases: {
			vocab.NewPhrase("come on", "hurry"),
		},
	}
}

func newTestService(t *testing.T, kv store.KV) *Service {
	t.Helper()
	repos := store.NewRepos(kv)
	ctx := context.Background()
	if _, ok := kv.(failingKV); !ok {
		require.NoError(t, repos.Settings.Save(ctx, store.Settings{LearningCount: 3, RandomOrder: false}))
	}
	sel := selector.New(testDatasets(), repos.Hard)
	return New(sel, repos, zap.NewNop())
}

func TestStart_SavesSelectedMode(t *testing.T) {
	svc := newTestService(t, store.NewMemoryKV())
	ctx := context.Background()

	st, err := svc.Start(ctx, vocab.ModePhrases)
	require.NoError(t, err)
	assert.Len(t, st.Items, 1)

	mode, err := svc.Repos().Mode.SelectedMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, vocab.ModePhrases, mode)
}

func TestMark_KnownHardFamiliar(t *testing.T) {
	svc := newTestService(t, store.NewMemoryKV())
	ctx := context.Background()

	st, err := svc.Start(ctx, vocab.ModeWords)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, itemKeys(st.Items))

	for _, o := range []session.Outcome{session.OutcomeKnown, session.OutcomeHard, session.OutcomeFamiliar} {
		_, err := svc.Mark(ctx, st, o)
		require.NoError(t, err)
	}
	assert.Equal(t, session.PhaseCompleted, st.Phase)

	hard, err := svc.Repos().Hard.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, itemKeys(hard))

	latest, err := svc.Results().Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, store.ResultsData{
		SessionID:  st.ID,
		Mode:       vocab.ModeWords,
		Total:      3,
		Known:      1,
		Familiar:   1,
		Hard:       1,
		FinishedAt: latest.FinishedAt,
	}, *latest)

	progress, err := svc.Repos().Progress.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, progress.LearnedWords)
	assert.False(t, progress.LastLearned.IsZero())
}

func TestMark_HardDedupAcrossSessions(t *testing.T) {
	svc := newTestService(t, store.NewMemoryKV())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		st := session.New(vocab.ModeWords, []vocab.Item{vocab.NewWord("A", "", "", "a")})
		_, err := svc.Mark(ctx, st, session.OutcomeHard)
		require.NoError(t, err)
	}

	hard, err := svc.Repos().Hard.List(ctx)
	require.NoError(t, err)
	assert.Len(t, hard, 1)
}

func TestMark_StorageFailureDoesNotAbort(t *testing.T) {
	svc := newTestService(t, failingKV{store.NewMemoryKV()})
	ctx := context.Background()

	st, err := svc.Start(ctx, vocab.ModeWords)
	require.NoError(t, err)
	require.Len(t, st.Items, 3)

	for st.Phase == session.PhaseActive {
		_, err := svc.Mark(ctx, st, session.OutcomeHard)
		require.NoError(t, err)
	}
	assert.Equal(t, len(st.Items), st.Tally.Hard)
}

func TestEnd_PersistsPartialTally(t *testing.T) {
	svc := newTestService(t, store.NewMemoryKV())
	ctx := context.Background()

	st, err := svc.Start(ctx, vocab.ModeWords)
	require.NoError(t, err)
	_, err = svc.Mark(ctx, st, session.OutcomeKnown)
	require.NoError(t, err)

	sum := svc.End(ctx, st)
	assert.True(t, sum.EndedEarly)

	latest, err := svc.Results().Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 1, latest.Known)
	assert.Equal(t, 3, latest.Total)
}

func TestReviewHard(t *testing.T) {
	svc := newTestService(t, store.NewMemoryKV())
	ctx := context.Background()

	st, err := svc.Start(ctx, vocab.ModePhrases)
	require.NoError(t, err)
	_, err = svc.Mark(ctx, st, session.OutcomeHard)
	require.NoError(t, err)

	review, err := svc.Results().ReviewHard(ctx)
	require.NoError(t, err)
	assert.Equal(t, vocab.ModeReview, review.Mode)
	assert.Equal(t, []string{"come on"}, itemKeys(review.Items))

	// Marking known in review leaves the queue intact and files the
	// phrase under learned phrases.
	_, err = svc.Mark(ctx, review, session.OutcomeKnown)
	require.NoError(t, err)

	hard, err := svc.Repos().Hard.List(ctx)
	require.NoError(t, err)
	assert.Len(t, hard, 1)

	mode, err := svc.Repos().Mode.SelectedMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, vocab.ModeReview, mode)

	progress, err := svc.Repos().Progress.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"come on"}, progress.LearnedPhrases)
}

func TestStart_EmptyReviewCompletes(t *testing.T) {
	svc := newTestService(t, store.NewMemoryKV())
	ctx := context.Background()

	st, err := svc.Results().ReviewHard(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.PhaseCompleted, st.Phase)
}

func TestStats(t *testing.T) {
	svc := newTestService(t, store.NewMemoryKV())
	ctx := context.Background()

	st, err := svc.Start(ctx, vocab.ModeWords)
	require.NoError(t, err)
	_, err = svc.Mark(ctx, st, session.OutcomeHard)
	require.NoError(t, err)
	_, err = svc.Mark(ctx, st, session.OutcomeKnown)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.LearnedWords)
	assert.Equal(t, 0, stats.LearnedPhrases)
	assert.Equal(t, 1, stats.HardItems)
	assert.Nil(t, stats.Latest)
}

func itemKeys(items []vocab.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Key()
	}
	return out
}

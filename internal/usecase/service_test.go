package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/anagram/internal/dictionary"
	"svw.info/anagram/internal/domain"
	"svw.info/anagram/internal/generator"
	"svw.info/anagram/internal/infrastructure/storage"
	"svw.info/anagram/internal/ports"
	"svw.info/anagram/internal/solver"
	"svw.info/anagram/internal/validator"
)

func newService(t *testing.T, dict *dictionary.Dictionary) *Service {
	t.Helper()
	d, err := solver.NewIndexedDecomposer(dict, 0)
	require.NoError(t, err)
	return NewService(
		generator.NewTaskGenerator(dict, nil, nil),
		validator.New(dict),
		d,
		storage.NewJSONL(t.TempDir()),
	)
}

func TestServiceGenerateAndVerify(t *testing.T) {
	ctx := context.Background()
	uc := newService(t, dictionary.English())

	ps, st, err := uc.Generate(ctx, 9, ports.GenerateRequest{Level: 5, Count: 3, MaxAttempts: 10})
	require.NoError(t, err)
	require.Len(t, ps, 3)
	assert.Equal(t, 3, st.Nodes)

	for _, p := range ps {
		verdict, err := uc.Verify(ctx, p, "Sure! Here you go: "+p.Answer())
		require.NoError(t, err)
		assert.True(t, verdict.OK)
	}
	verdict, err := uc.Verify(ctx, ps[0], "no idea")
	require.NoError(t, err)
	assert.Equal(t, domain.Verdict{Reason: domain.ReasonParse}, verdict)
}

func TestServiceDecompose(t *testing.T) {
	uc := newService(t, dictionary.Default())
	got, _, err := uc.Decompose(context.Background(), "catdog")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []string{"cat", "dog"}, got[0].Words)
}

func TestServiceNotConfigured(t *testing.T) {
	ctx := context.Background()
	uc := NewService(nil, nil, nil, nil)
	_, _, err := uc.Generate(ctx, 1, ports.GenerateRequest{})
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
	_, err = uc.Verify(ctx, nil, "")
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
	_, err = uc.Extract(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
	_, _, err = uc.Decompose(ctx, "")
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
	_, err = uc.List(ctx)
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
	_, err = uc.BuildDatasets(ctx, DatasetOptions{})
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestBuildDatasets(t *testing.T) {
	ctx := context.Background()
	uc := newService(t, dictionary.English())
	opts := DatasetOptions{Seed: 1, TestSeed: 42, TrainPerLevel: 4, TestPerLevel: 2, MaxAttempts: 10}

	reports, err := uc.BuildDatasets(ctx, opts)
	require.NoError(t, err)
	require.Len(t, reports, 11)
	assert.Equal(t, DatasetReport{Name: "train", Requested: 40, Written: 40}, reports[0])
	assert.Equal(t, DatasetReport{Name: "test_difficulty_10", Requested: 2, Written: 2}, reports[10])

	metas, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, metas, 11)

	train, err := uc.Load(ctx, "train")
	require.NoError(t, err)
	require.Len(t, train, 40)
	levels := map[int]int{}
	for _, rec := range train {
		levels[rec.Difficulty]++
		p, err := domain.PuzzleFromRecord(rec)
		require.NoError(t, err)
		verdict, err := uc.Verify(ctx, p, rec.Answer)
		require.NoError(t, err)
		assert.True(t, verdict.OK)
	}
	for l := 1; l <= 10; l++ {
		assert.Equal(t, 4, levels[l], "level %d", l)
	}

	// same seeds, same words
	again := newService(t, dictionary.English())
	_, err = again.BuildDatasets(ctx, opts)
	require.NoError(t, err)
	train2, err := again.Load(ctx, "train")
	require.NoError(t, err)
	for i := range train {
		assert.Equal(t, train[i].Metadata.TargetWords, train2[i].Metadata.TargetWords)
		assert.Equal(t, train[i].Metadata.Anagrams, train2[i].Metadata.Anagrams)
	}
}

package rag

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elysia-edu/essayd/core"
	"github.com/elysia-edu/essayd/storage/badger"
)

// listOnlyRepository hides the native search capability of a repository so
// tests can force the exhaustive scan tier.
type listOnlyRepository struct {
	embeddings []*core.Embedding
}

func (r *listOnlyRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (r *listOnlyRepository) Close() error { return nil }

func (r *listOnlyRepository) UpsertEmbedding(ctx context.Context, embedding *core.Embedding) (*core.Embedding, error) {
	r.embeddings = append(r.embeddings, embedding)
	return embedding, nil
}

func (r *listOnlyRepository) GetEmbedding(ctx context.Context, documentID core.ID) (*core.Embedding, error) {
	for _, emb := range r.embeddings {
		if emb.DocumentId == documentID {
			return emb, nil
		}
	}
	return nil, nil
}

func (r *listOnlyRepository) ListEmbeddings(ctx context.Context) ([]*core.Embedding, error) {
	return r.embeddings, nil
}

func (r *listOnlyRepository) DeleteEmbedding(ctx context.Context, documentID core.ID) error {
	return nil
}

func TestFindSimilarNativeTier(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	ctx := context.Background()
	for _, emb := range []*core.Embedding{
		{DocumentId: 1, Vector: []float32{1, 0, 0}},
		{DocumentId: 2, Vector: []float32{0.8, 0.2, 0}},
		{DocumentId: 3, Vector: []float32{0, 1, 0}},
	} {
		_, err := repos.Embeddings.UpsertEmbedding(ctx, emb)
		require.NoError(t, err)
	}

	index := NewSimilarityIndex(repos.Embeddings)

	matches, err := index.FindSimilar(ctx, []float32{1, 0, 0}, 2, 0)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, core.ID(1), matches[0].DocumentId)
	assert.Equal(t, core.ID(2), matches[1].DocumentId)
}

func TestFindSimilarExcludesDocument(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	ctx := context.Background()
	for _, emb := range []*core.Embedding{
		{DocumentId: 1, Vector: []float32{1, 0}},
		{DocumentId: 2, Vector: []float32{0.9, 0.1}},
	} {
		_, err := repos.Embeddings.UpsertEmbedding(ctx, emb)
		require.NoError(t, err)
	}

	index := NewSimilarityIndex(repos.Embeddings)

	matches, err := index.FindSimilar(ctx, []float32{1, 0}, 5, 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, core.ID(2), matches[0].DocumentId,
		"the document under analysis must never match itself")
}

func TestFindSimilarScanTier(t *testing.T) {
	repo := &listOnlyRepository{
		embeddings: []*core.Embedding{
			{DocumentId: 1, Vector: []float32{1, 0, 0}},
			{DocumentId: 2, Vector: []float32{0.5, 0.5, 0}},
			{DocumentId: 3, Vector: []float32{0, 0, 1}},
		},
	}

	index := NewSimilarityIndex(repo)

	matches, err := index.FindSimilar(context.Background(), []float32{1, 0, 0}, 2, 0)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, core.ID(1), matches[0].DocumentId)
	assert.Equal(t, core.ID(2), matches[1].DocumentId)
	assert.Greater(t, matches[0].Score, matches[1].Score)
}

func TestFindSimilarScanTieBreaksOnRecency(t *testing.T) {
	now := time.Now().UTC()
	repo := &listOnlyRepository{
		embeddings: []*core.Embedding{
			{DocumentId: 1, Vector: []float32{1, 0}, CreatedAt: now.Add(-time.Hour)},
			{DocumentId: 2, Vector: []float32{1, 0}, CreatedAt: now},
		},
	}

	index := NewSimilarityIndex(repo)

	matches, err := index.FindSimilar(context.Background(), []float32{1, 0}, 1, 0)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, core.ID(2), matches[0].DocumentId,
		"equal scores should prefer the fresher embedding")
}

func TestFindSimilarEmptyStore(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	index := NewSimilarityIndex(repos.Embeddings)

	matches, err := index.FindSimilar(context.Background(), []float32{1, 0}, 3, 0)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindSimilarZeroK(t *testing.T) {
	index := NewSimilarityIndex(&listOnlyRepository{})

	matches, err := index.FindSimilar(context.Background(), []float32{1}, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

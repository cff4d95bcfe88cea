package reindex

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elysia-edu/essayd/ai/mock"
	"github.com/elysia-edu/essayd/core"
	"github.com/elysia-edu/essayd/storage/badger"
)

func setupTestRepos(t *testing.T) *badger.MemoryRepositories {
	t.Helper()
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	t.Cleanup(repos.Close)
	return repos
}

func addTestDocuments(t *testing.T, repos *badger.MemoryRepositories, n int) []*core.Document {
	t.Helper()
	docs := make([]*core.Document, n)
	for i := 0; i < n; i++ {
		docs[i] = &core.Document{
			OwnerId: 1,
			Title:   "essay",
			Status:  core.StatusCompleted,
			RawText: "an essay about civic participation and public institutions",
		}
	}
	added, err := repos.Documents.AddDocuments(context.Background(), docs...)
	require.NoError(t, err)
	return added
}

func TestBatchProcessor_Process(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	added := addTestDocuments(t, repos, 2)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		result := make([][]float32, len(texts))
		for i := range texts {
			result[i] = []float32{1.0, 2.0, 2.0} // magnitude = 3.0
		}
		return result, nil
	}
	processor := NewBatchProcessor(repos.Embeddings, embedder, "test-model", 3, 10*time.Millisecond)

	require.NoError(t, processor.Process(ctx, added))

	for _, doc := range added {
		embedding, err := repos.Embeddings.GetEmbedding(ctx, doc.Id)
		require.NoError(t, err)
		require.NotEmpty(t, embedding.Vector)
		assert.Equal(t, "test-model", embedding.ModelName)
		assert.Equal(t, doc.RawText, embedding.Snippet)

		// Verify normalization: magnitude should be ~1.0
		var magnitude float32
		for _, v := range embedding.Vector {
			magnitude += v * v
		}
		assert.InDelta(t, 1.0, magnitude, 0.01, "vector should be normalized")
	}
}

func TestBatchProcessor_EmptyBatch(t *testing.T) {
	repos := setupTestRepos(t)

	processor := NewBatchProcessor(repos.Embeddings, mock.NewMockEmbedder(), "m", 3, 10*time.Millisecond)

	err := processor.Process(context.Background(), []*core.Document{})
	require.NoError(t, err, "empty batch should not error")
}

func TestBatchProcessor_EmbeddingError(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	added := addTestDocuments(t, repos, 1)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("embedding error")
	}
	processor := NewBatchProcessor(repos.Embeddings, embedder, "m", 3, 10*time.Millisecond)

	err := processor.Process(ctx, added)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedding error")
}

func TestBatchProcessor_Retry(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	added := addTestDocuments(t, repos, 1)

	attempts := 0
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		attempts++
		if attempts < 2 {
			return nil, errors.New("temporary error")
		}
		result := make([][]float32, len(texts))
		for i := range texts {
			result[i] = []float32{1.0, 0.0, 0.0}
		}
		return result, nil
	}
	processor := NewBatchProcessor(repos.Embeddings, embedder, "m", 3, 10*time.Millisecond)

	require.NoError(t, processor.Process(ctx, added))
	assert.Equal(t, 2, attempts, "should retry on failure")

	embedding, err := repos.Embeddings.GetEmbedding(ctx, added[0].Id)
	require.NoError(t, err)
	require.NotEmpty(t, embedding.Vector)
}

func TestBatchProcessor_CountMismatch(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	added := addTestDocuments(t, repos, 2)

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return [][]float32{{1.0, 0.0}}, nil // one vector for two documents
	}
	processor := NewBatchProcessor(repos.Embeddings, embedder, "m", 1, 10*time.Millisecond)

	err := processor.Process(ctx, added)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mismatch")
}

func TestBatchProcessor_UpsertPreservesEmbeddingID(t *testing.T) {
	repos := setupTestRepos(t)
	ctx := context.Background()

	added := addTestDocuments(t, repos, 1)

	first, err := repos.Embeddings.UpsertEmbedding(ctx, &core.Embedding{
		DocumentId: added[0].Id,
		Vector:     []float32{0.5, 0.5},
		ModelName:  "old-model",
	})
	require.NoError(t, err)

	processor := NewBatchProcessor(repos.Embeddings, mock.NewMockEmbedder(), "new-model", 3, 10*time.Millisecond)
	require.NoError(t, processor.Process(ctx, added))

	updated, err := repos.Embeddings.GetEmbedding(ctx, added[0].Id)
	require.NoError(t, err)
	assert.Equal(t, first.Id, updated.Id, "reindexing keeps the embedding ID")
	assert.Equal(t, "new-model", updated.ModelName)
}

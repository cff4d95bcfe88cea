package rag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elysia-edu/essayd/ai/mock"
	"github.com/elysia-edu/essayd/core"
	"github.com/elysia-edu/essayd/storage/badger"
)

func TestEmbedDocument(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	embedder := mock.NewMockEmbedder()
	service := NewEmbeddingService(embedder, repos.Embeddings, "test-model", 384)

	doc := &core.Document{Id: 1, RawText: "An essay about renewable energy and public policy."}

	embedding, degraded, err := service.EmbedDocument(context.Background(), doc)
	require.NoError(t, err)
	assert.False(t, degraded)
	assert.Equal(t, core.ID(1), embedding.DocumentId)
	assert.Len(t, embedding.Vector, 384)
	assert.Equal(t, doc.RawText, embedding.Snippet)
	assert.Equal(t, "test-model", embedding.ModelName)

	// Persisted and retrievable
	stored, err := repos.Embeddings.GetEmbedding(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, embedding.Id, stored.Id)
}

func TestEmbedDocumentZeroVectorFallback(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		return nil, errors.New("provider unavailable")
	}
	service := NewEmbeddingService(embedder, repos.Embeddings, "test-model", 16)

	doc := &core.Document{Id: 2, RawText: "text"}

	embedding, degraded, err := service.EmbedDocument(context.Background(), doc)
	require.NoError(t, err, "provider failure must not fail the operation")
	assert.True(t, degraded)
	assert.Len(t, embedding.Vector, 16)
	for _, v := range embedding.Vector {
		assert.Zero(t, v)
	}
}

func TestEmbedTextTruncates(t *testing.T) {
	var receivedLen int
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
		receivedLen = len(text)
		return []float32{1}, nil
	}

	service := NewEmbeddingService(embedder, nil, "test-model", 16)

	long := strings.Repeat("a", maxEmbedChars+500)
	_, degraded := service.EmbedText(context.Background(), long)

	assert.False(t, degraded)
	assert.Equal(t, maxEmbedChars, receivedLen)
}

func TestEmbedDocumentSnippetLength(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	service := NewEmbeddingService(mock.NewMockEmbedder(), repos.Embeddings, "test-model", 384)

	doc := &core.Document{Id: 3, RawText: strings.Repeat("b", snippetChars*3)}

	embedding, _, err := service.EmbedDocument(context.Background(), doc)
	require.NoError(t, err)
	assert.Len(t, embedding.Snippet, snippetChars)
}

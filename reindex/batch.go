package reindex

import (
	"context"
	"fmt"
	"time"

	"github.com/elysia-edu/essayd/ai"
	"github.com/elysia-edu/essayd/core"
	"github.com/elysia-edu/essayd/retry"
	"github.com/elysia-edu/essayd/storage"
)

const (
	// maxEmbedChars bounds how much of a document is sent to the embedder.
	maxEmbedChars = 8000

	// snippetChars is how much leading text is kept on the stored embedding.
	snippetChars = 1000
)

// BatchProcessor generates fresh embeddings for batches of documents and
// upserts them over any existing vectors.
type BatchProcessor struct {
	embeddings storage.EmbeddingRepository
	embedder   ai.Embedder
	modelName  string
	policy     retry.Policy
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of attempts for embedding API calls
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(embeddings storage.EmbeddingRepository, embedder ai.Embedder, modelName string, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		embeddings: embeddings,
		embedder:   embedder,
		modelName:  modelName,
		policy: retry.Policy{
			MaxAttempts: maxRetries,
			BaseDelay:   retryBaseDelay,
			MaxDelay:    60 * time.Second,
		},
	}
}

// Process generates embeddings for a batch of documents and upserts them.
// Vectors are normalized after embedding to ensure compatibility with
// cosine similarity.
func (bp *BatchProcessor) Process(ctx context.Context, documents []*core.Document) error {
	if len(documents) == 0 {
		return nil
	}

	texts := make([]string, len(documents))
	for i, doc := range documents {
		text := doc.RawText
		if len(text) > maxEmbedChars {
			text = text[:maxEmbedChars]
		}
		texts[i] = text
	}

	// Generate embeddings with retry
	var vectors [][]float32
	err := bp.policy.Do(ctx, func() error {
		var err error
		vectors, err = bp.embedder.EmbedTexts(ctx, texts)
		return err
	})

	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.policy.MaxAttempts, err)
	}

	if len(vectors) != len(documents) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(documents), len(vectors))
	}

	for i, doc := range documents {
		snippet := doc.RawText
		if len(snippet) > snippetChars {
			snippet = snippet[:snippetChars]
		}

		embedding := &core.Embedding{
			DocumentId: doc.Id,
			Vector:     NormalizeVector(vectors[i]),
			Snippet:    snippet,
			ModelName:  bp.modelName,
		}
		if _, err := bp.embeddings.UpsertEmbedding(ctx, embedding); err != nil {
			return fmt.Errorf("failed to upsert embedding for document %d: %w", doc.Id, err)
		}
	}

	return nil
}

// Copyright 2025 Elysia Education
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package rag

import (
	"context"
	"log/slog"

	"github.com/elysia-edu/essayd/ai"
	"github.com/elysia-edu/essayd/core"
	"github.com/elysia-edu/essayd/storage"
)

const (
	// maxEmbedChars caps the text sent to the embedding provider.
	maxEmbedChars = 8000

	// snippetChars is the length of the display snippet stored alongside
	// each vector.
	snippetChars = 1000

	// defaultDimension is used for zero-vector fallbacks when no dimension
	// was configured.
	defaultDimension = 1536
)

// EmbeddingService generates and stores document embeddings.
// When the embedding provider fails, it substitutes a zero vector of the
// configured dimension and reports the degradation instead of an error.
type EmbeddingService struct {
	embedder   ai.Embedder
	embeddings storage.EmbeddingRepository
	modelName  string
	dimension  int
	logger     *slog.Logger
}

// NewEmbeddingService creates an embedding service over the given embedder
// and repository. dimension is the vector width used for zero-vector
// fallbacks; pass 0 for the default.
func NewEmbeddingService(embedder ai.Embedder, embeddings storage.EmbeddingRepository, modelName string, dimension int) *EmbeddingService {
	if dimension <= 0 {
		dimension = defaultDimension
	}
	return &EmbeddingService{
		embedder:   embedder,
		embeddings: embeddings,
		modelName:  modelName,
		dimension:  dimension,
		logger:     slog.Default().With("component", "embedding-service"),
	}
}

// EmbedText generates a vector for the given text. The text is truncated
// before embedding. On provider failure a zero vector is returned and
// degraded is true; the error is logged, not propagated.
func (s *EmbeddingService) EmbedText(ctx context.Context, text string) (vector []float32, degraded bool) {
	if len(text) > maxEmbedChars {
		text = text[:maxEmbedChars]
	}

	vector, err := s.embedder.EmbedText(ctx, text)
	if err != nil || len(vector) == 0 {
		if err != nil {
			s.logger.Warn("embedding provider failed, using zero vector", "err", err)
		}
		return make([]float32, s.dimension), true
	}

	return vector, false
}

// EmbedDocument generates and persists the embedding for a document.
// Returns the stored embedding and whether the vector is a degraded
// zero-vector fallback. Storage failures are returned; they indicate a
// local fault rather than a provider outage.
func (s *EmbeddingService) EmbedDocument(ctx context.Context, doc *core.Document) (*core.Embedding, bool, error) {
	vector, degraded := s.EmbedText(ctx, doc.RawText)

	snippet := doc.RawText
	if len(snippet) > snippetChars {
		snippet = snippet[:snippetChars]
	}

	embedding := &core.Embedding{
		DocumentId: doc.Id,
		Vector:     vector,
		Snippet:    snippet,
		ModelName:  s.modelName,
	}

	stored, err := s.embeddings.UpsertEmbedding(ctx, embedding)
	if err != nil {
		return nil, degraded, err
	}

	s.logger.Debug("stored document embedding",
		"document", doc.Id, "dimension", len(vector), "degraded", degraded)

	return stored, degraded, nil
}

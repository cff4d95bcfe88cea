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
	"slices"

	"github.com/elysia-edu/essayd/core"
	"github.com/elysia-edu/essayd/storage"
)

// overFetchFactor is how many extra candidates the native tier requests so
// that post-filtering (excluded document, zero scores) still leaves k results.
const overFetchFactor = 10

// SimilarityIndex ranks stored embeddings against a query vector.
//
// Two tiers back the index. When the embedding repository natively supports
// vector search (storage.VectorSearcher), the index over-fetches candidates
// from it and filters locally. Otherwise, and whenever the native tier
// errors, it falls back to an exhaustive cosine scan over all embeddings.
type SimilarityIndex struct {
	embeddings storage.EmbeddingRepository
	searcher   storage.VectorSearcher // nil when the backend lacks the capability
	logger     *slog.Logger
}

// NewSimilarityIndex creates an index over the given repository. The native
// search capability is probed once at construction.
func NewSimilarityIndex(embeddings storage.EmbeddingRepository) *SimilarityIndex {
	searcher, _ := embeddings.(storage.VectorSearcher)
	return &SimilarityIndex{
		embeddings: embeddings,
		searcher:   searcher,
		logger:     slog.Default().With("component", "similarity-index"),
	}
}

// FindSimilar returns up to k embedding matches for the query vector,
// ordered by score descending. The excluded document never appears in the
// results. An empty store yields an empty result, not an error.
func (idx *SimilarityIndex) FindSimilar(ctx context.Context, vector []float32, k int, exclude core.ID) ([]core.SimilarityMatch, error) {
	if k <= 0 || len(vector) == 0 {
		return nil, nil
	}

	if idx.searcher != nil {
		matches, err := idx.searcher.SearchEmbeddings(ctx, vector, k*overFetchFactor)
		if err == nil {
			return filterMatches(matches, k, exclude), nil
		}
		idx.logger.Warn("native vector search failed, falling back to scan", "err", err)
	}

	return idx.scan(ctx, vector, k, exclude)
}

// scan is the exhaustive fallback tier: cosine similarity against every
// stored embedding. Ties break toward the more recently embedded document.
func (idx *SimilarityIndex) scan(ctx context.Context, vector []float32, k int, exclude core.ID) ([]core.SimilarityMatch, error) {
	embeddings, err := idx.embeddings.ListEmbeddings(ctx)
	if err != nil {
		return nil, err
	}

	type scored struct {
		match     core.SimilarityMatch
		createdAt int64
	}

	candidates := make([]scored, 0, len(embeddings))
	for _, emb := range embeddings {
		if emb.DocumentId == exclude || len(emb.Vector) == 0 {
			continue
		}
		candidates = append(candidates, scored{
			match: core.SimilarityMatch{
				DocumentId: emb.DocumentId,
				Score:      CosineSimilarity(vector, emb.Vector),
			},
			createdAt: emb.CreatedAt.UnixMicro(),
		})
	}

	slices.SortFunc(candidates, func(a, b scored) int {
		if a.match.Score > b.match.Score {
			return -1
		}
		if a.match.Score < b.match.Score {
			return 1
		}
		// Equal scores: prefer the fresher embedding
		if a.createdAt > b.createdAt {
			return -1
		}
		if a.createdAt < b.createdAt {
			return 1
		}
		return 0
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}

	matches := make([]core.SimilarityMatch, len(candidates))
	for i, c := range candidates {
		matches[i] = c.match
	}
	return matches, nil
}

// filterMatches drops the excluded document from over-fetched native
// results and truncates to k.
func filterMatches(matches []core.SimilarityMatch, k int, exclude core.ID) []core.SimilarityMatch {
	filtered := matches[:0]
	for _, m := range matches {
		if m.DocumentId == exclude {
			continue
		}
		filtered = append(filtered, m)
	}
	if len(filtered) > k {
		filtered = filtered[:k]
	}
	return filtered
}

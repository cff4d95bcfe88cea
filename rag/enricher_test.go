package rag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elysia-edu/essayd/core"
	"github.com/elysia-edu/essayd/storage/badger"
)

func TestEnrichEmptyStore(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	enricher := NewEnricher(NewSimilarityIndex(repos.Embeddings), repos.Analyses, repos.Corpus, 0)

	bundle := enricher.Enrich(context.Background(), []float32{1, 0, 0}, 0)
	require.NotNil(t, bundle)
	assert.True(t, bundle.Empty())
	assert.Empty(t, bundle.PromptContext())
}

func TestEnrichWithSimilarAndExemplars(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	ctx := context.Background()

	// Two graded neighbors
	for _, emb := range []*core.Embedding{
		{DocumentId: 1, Vector: []float32{1, 0, 0}},
		{DocumentId: 2, Vector: []float32{0.9, 0.1, 0}},
	} {
		_, err := repos.Embeddings.UpsertEmbedding(ctx, emb)
		require.NoError(t, err)
	}
	_, err = repos.Analyses.PutAnalysis(ctx, &core.Analysis{
		DocumentId:           1,
		OverallScore:         8.0,
		ArgumentativeSummary: "strong thesis with clear progression",
		Recommendations:      []string{"cite sources", "vary connectives"},
	})
	require.NoError(t, err)
	_, err = repos.Analyses.PutAnalysis(ctx, &core.Analysis{
		DocumentId:        2,
		OverallScore:      6.5,
		StructuralSummary: "introduction overlaps with conclusion",
		Recommendations:   []string{"Cite sources", "tighten the conclusion"},
	})
	require.NoError(t, err)

	// Exemplar corpus
	_, err = repos.Corpus.AddCorpusExamples(ctx,
		&core.CorpusExample{Title: "Model A", Text: "model text", Category: core.CategoryExemplary, QualityLevel: 9.2},
		&core.CorpusExample{Title: "Too weak", Text: "weak text", Category: core.CategoryExemplary, QualityLevel: 7.5},
	)
	require.NoError(t, err)

	enricher := NewEnricher(NewSimilarityIndex(repos.Embeddings), repos.Analyses, repos.Corpus, 0)

	bundle := enricher.Enrich(ctx, []float32{1, 0, 0}, 0)

	require.Len(t, bundle.Similar, 2)
	assert.Equal(t, 8.0, bundle.Similar[0].SummaryScore)
	assert.Equal(t, "strong thesis with clear progression", bundle.Similar[0].SummaryText)

	// "Cite sources" dedupes case-insensitively against "cite sources"
	assert.Equal(t, []string{"cite sources", "vary connectives", "tighten the conclusion"}, bundle.Recommendations)

	// Quality floor filters the 7.5 exemplar
	require.Len(t, bundle.Exemplars, 1)
	assert.Equal(t, "Model A", bundle.Exemplars[0].Title)

	prompt := bundle.PromptContext()
	assert.Contains(t, prompt, "strong thesis")
	assert.Contains(t, prompt, "Model A")
	assert.Contains(t, prompt, "cite sources")
}

func TestEnrichRecommendationCap(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	ctx := context.Background()

	_, err = repos.Embeddings.UpsertEmbedding(ctx, &core.Embedding{DocumentId: 1, Vector: []float32{1}})
	require.NoError(t, err)
	_, err = repos.Analyses.PutAnalysis(ctx, &core.Analysis{
		DocumentId:   1,
		OverallScore: 7.0,
		Recommendations: []string{
			"one", "two", "three", "four", "five", "six", "seven",
		},
	})
	require.NoError(t, err)

	enricher := NewEnricher(NewSimilarityIndex(repos.Embeddings), repos.Analyses, repos.Corpus, 0)

	bundle := enricher.Enrich(ctx, []float32{1}, 0)
	assert.Len(t, bundle.Recommendations, maxRecommendations)
}

func TestEnrichSkipsUngraded(t *testing.T) {
	repos, err := badger.NewMemoryRepositories()
	require.NoError(t, err)
	defer repos.Close()

	ctx := context.Background()

	// Embedding exists but the document was never graded
	_, err = repos.Embeddings.UpsertEmbedding(ctx, &core.Embedding{DocumentId: 9, Vector: []float32{1, 0}})
	require.NoError(t, err)

	enricher := NewEnricher(NewSimilarityIndex(repos.Embeddings), repos.Analyses, repos.Corpus, 0)

	bundle := enricher.Enrich(ctx, []float32{1, 0}, 0)
	assert.Empty(t, bundle.Similar)
	assert.Empty(t, bundle.Recommendations)
}

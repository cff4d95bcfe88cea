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
	"fmt"
	"log/slog"
	"strings"

	"github.com/elysia-edu/essayd/core"
	"github.com/elysia-edu/essayd/storage"
)

const (
	// defaultTopK is how many similar graded essays enrich a scoring run.
	defaultTopK = 3

	// exemplarMinQuality is the quality floor for exemplar retrieval.
	exemplarMinQuality = 8.0

	// exemplarLimit is how many exemplary essays enrich a scoring run.
	exemplarLimit = 2

	// maxRecommendations caps the aggregated recommendation list.
	maxRecommendations = 5

	// exemplarExcerptChars is how much exemplar text reaches the prompt.
	exemplarExcerptChars = 600
)

// ContextBundle is the retrieval context assembled for one scoring run.
type ContextBundle struct {
	// Similar summarizes previously graded essays close to the query.
	Similar []core.RetrievedContext

	// Exemplars are high-quality reference essays from the curated corpus.
	Exemplars []*core.CorpusExample

	// Recommendations aggregates deduplicated recommendations drawn from
	// the similar essays' analyses.
	Recommendations []string
}

// Empty reports whether the bundle carries no retrieval context at all.
func (b *ContextBundle) Empty() bool {
	return len(b.Similar) == 0 && len(b.Exemplars) == 0 && len(b.Recommendations) == 0
}

// PromptContext renders the bundle as plain text for the scoring prompt.
// Returns the empty string for an empty bundle.
func (b *ContextBundle) PromptContext() string {
	if b.Empty() {
		return ""
	}

	var sb strings.Builder

	if len(b.Similar) > 0 {
		sb.WriteString("Previously graded similar essays:\n")
		for _, s := range b.Similar {
			fmt.Fprintf(&sb, "- score %.1f: %s\n", s.SummaryScore, s.SummaryText)
		}
	}

	if len(b.Exemplars) > 0 {
		sb.WriteString("Exemplary essays for calibration:\n")
		for _, e := range b.Exemplars {
			excerpt := e.Text
			if len(excerpt) > exemplarExcerptChars {
				excerpt = excerpt[:exemplarExcerptChars]
			}
			fmt.Fprintf(&sb, "- %q (quality %.1f): %s\n", e.Title, e.QualityLevel, excerpt)
		}
	}

	if len(b.Recommendations) > 0 {
		sb.WriteString("Recommendations that helped similar essays:\n")
		for _, r := range b.Recommendations {
			sb.WriteString("- ")
			sb.WriteString(r)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// Enricher assembles retrieval context bundles for scoring runs.
// All lookups are best-effort: any failure shrinks the bundle and is
// logged, but Enrich itself never fails.
type Enricher struct {
	index    *SimilarityIndex
	analyses storage.AnalysisRepository
	corpus   storage.CorpusRepository
	topK     int
	logger   *slog.Logger
}

// NewEnricher creates an enricher. topK controls how many similar essays
// are retrieved; pass 0 for the default.
func NewEnricher(index *SimilarityIndex, analyses storage.AnalysisRepository, corpus storage.CorpusRepository, topK int) *Enricher {
	if topK <= 0 {
		topK = defaultTopK
	}
	return &Enricher{
		index:    index,
		analyses: analyses,
		corpus:   corpus,
		topK:     topK,
		logger:   slog.Default().With("component", "retrieval-enricher"),
	}
}

// Enrich builds the context bundle for a query vector, excluding the
// document under analysis from similarity results.
func (e *Enricher) Enrich(ctx context.Context, vector []float32, exclude core.ID) *ContextBundle {
	bundle := &ContextBundle{}

	e.addSimilar(ctx, bundle, vector, exclude)
	e.addExemplars(ctx, bundle)

	return bundle
}

// addSimilar fills the bundle with summaries of similar graded essays and
// aggregates their recommendations.
func (e *Enricher) addSimilar(ctx context.Context, bundle *ContextBundle, vector []float32, exclude core.ID) {
	matches, err := e.index.FindSimilar(ctx, vector, e.topK, exclude)
	if err != nil {
		e.logger.Warn("similarity lookup failed, continuing without similar essays", "err", err)
		return
	}

	seen := make(map[string]bool)
	for _, match := range matches {
		analysis, err := e.analyses.GetAnalysisByDocument(ctx, match.DocumentId)
		if err != nil {
			// Documents without a completed analysis contribute nothing.
			continue
		}

		bundle.Similar = append(bundle.Similar, core.RetrievedContext{
			SummaryScore:       analysis.OverallScore,
			SummaryText:        summarize(analysis),
			TopRecommendations: analysis.Recommendations,
		})

		for _, rec := range analysis.Recommendations {
			key := strings.ToLower(strings.TrimSpace(rec))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			if len(bundle.Recommendations) < maxRecommendations {
				bundle.Recommendations = append(bundle.Recommendations, rec)
			}
		}
	}
}

// addExemplars fills the bundle with high-quality corpus essays.
func (e *Enricher) addExemplars(ctx context.Context, bundle *ContextBundle) {
	exemplars, err := e.corpus.ListExemplary(ctx, exemplarMinQuality, exemplarLimit)
	if err != nil {
		e.logger.Warn("exemplar lookup failed, continuing without exemplars", "err", err)
		return
	}
	bundle.Exemplars = exemplars
}

// summarize picks the most informative one-line summary from an analysis.
func summarize(analysis *core.Analysis) string {
	for _, s := range []string{
		analysis.ArgumentativeSummary,
		analysis.StructuralSummary,
		analysis.CohesionSummary,
		analysis.VocabularySummary,
	} {
		if s != "" {
			return s
		}
	}
	if len(analysis.Strengths) > 0 {
		return analysis.Strengths[0]
	}
	return ""
}

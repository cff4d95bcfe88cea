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


package grading

import (
	"github.com/elysia-edu/essayd/ai"
	"github.com/elysia-edu/essayd/core"
	"github.com/elysia-edu/essayd/rag"
)

// Assemble builds the canonical analysis record from the scoring result,
// the retrieval context bundle, and the secondary-call fallbacks:
// improvement suggestions for recommendations, extracted key points for
// strengths.
//
// Assemble is pure and total: any of its inputs may be nil or empty, and
// deterministic defaults fill every gap. The returned analysis is marked
// Degraded when defaults were substituted for scoring output.
func Assemble(doc *core.Document, result *ai.ScoreResult, bundle *rag.ContextBundle, suggestions, keyPoints []string) *core.Analysis {
	analysis := &core.Analysis{
		DocumentId: doc.Id,
		OwnerId:    doc.OwnerId,
	}

	degraded := result.Empty()

	if result == nil {
		result = &ai.ScoreResult{}
	}

	if result.OverallScore != nil {
		analysis.OverallScore = *result.OverallScore
	} else {
		analysis.OverallScore = DefaultOverallScore
		degraded = true
	}

	if len(result.Competencies) > 0 {
		analysis.CompetencyScores = make([]core.CompetencyScore, len(result.Competencies))
		for i, c := range result.Competencies {
			analysis.CompetencyScores[i] = core.CompetencyScore{
				Name:          c.Name,
				Score:         clampScore(c.Score),
				Justification: c.Justification,
				Strengths:     c.Strengths,
				Improvements:  c.Improvements,
			}
		}
	} else {
		analysis.CompetencyScores = DefaultRubric()
		degraded = true
	}

	analysis.StructuralSummary = result.StructuralSummary
	analysis.CohesionSummary = result.CohesionSummary
	analysis.VocabularySummary = result.VocabularySummary
	analysis.ArgumentativeSummary = result.ArgumentativeSummary

	// Strengths fallback chain: scoring output, then the secondary
	// key-point call, then nothing.
	switch {
	case len(result.Strengths) > 0:
		analysis.Strengths = result.Strengths
	case len(keyPoints) > 0:
		analysis.Strengths = keyPoints
	}

	if len(result.GrammarIssues) > 0 {
		analysis.GrammarIssues = make([]core.GrammarIssue, len(result.GrammarIssues))
		for i, g := range result.GrammarIssues {
			position := make([]int32, len(g.Position))
			for j, p := range g.Position {
				position[j] = int32(p)
			}
			analysis.GrammarIssues[i] = core.GrammarIssue{
				Kind:         g.Kind,
				OriginalSpan: g.OriginalSpan,
				Suggestion:   g.Suggestion,
				Explanation:  g.Explanation,
				Position:     position,
			}
		}
	}

	// Recommendation fallback chain: scoring output, then the secondary
	// suggestion call, then nothing.
	switch {
	case len(result.Recommendations) > 0:
		analysis.Recommendations = result.Recommendations
	case len(suggestions) > 0:
		analysis.Recommendations = suggestions
	}

	if bundle != nil {
		analysis.RetrievedContext = bundle.Similar
	}

	analysis.OverallScore = clampScore(analysis.OverallScore)
	analysis.Degraded = degraded

	return analysis
}

// clampScore bounds a score to the valid [0, 10] grading range.
func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

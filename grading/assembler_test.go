package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elysia-edu/essayd/ai"
	"github.com/elysia-edu/essayd/core"
	"github.com/elysia-edu/essayd/rag"
)

func TestAssembleFullResult(t *testing.T) {
	doc := &core.Document{Id: 1, OwnerId: 2}
	overall := 8.5
	result := &ai.ScoreResult{
		OverallScore: &overall,
		Competencies: []ai.CompetencyResult{
			{Name: "Argumentation", Score: 8.0, Justification: "clear line of reasoning"},
		},
		StructuralSummary: "well organized",
		GrammarIssues: []ai.GrammarIssueResult{
			{Kind: "agreement", OriginalSpan: "they was", Suggestion: "they were", Position: []int{10, 18}},
		},
		Recommendations: []string{"expand the counterargument"},
		Strengths:       []string{"strong vocabulary"},
	}
	bundle := &rag.ContextBundle{
		Similar: []core.RetrievedContext{{SummaryScore: 7.0, SummaryText: "similar essay"}},
	}

	analysis := Assemble(doc, result, bundle, nil, []string{"ignored key point"})

	assert.Equal(t, core.ID(1), analysis.DocumentId)
	assert.Equal(t, core.ID(2), analysis.OwnerId)
	assert.Equal(t, 8.5, analysis.OverallScore)
	require.Len(t, analysis.CompetencyScores, 1)
	assert.Equal(t, "Argumentation", analysis.CompetencyScores[0].Name)
	assert.Equal(t, "well organized", analysis.StructuralSummary)
	require.Len(t, analysis.GrammarIssues, 1)
	assert.Equal(t, []int32{10, 18}, analysis.GrammarIssues[0].Position)
	assert.Equal(t, []string{"expand the counterargument"}, analysis.Recommendations)
	assert.Equal(t, []string{"strong vocabulary"}, analysis.Strengths,
		"scored strengths win over extracted key points")
	assert.Len(t, analysis.RetrievedContext, 1)
	assert.False(t, analysis.Degraded)
}

func TestAssembleNilResult(t *testing.T) {
	doc := &core.Document{Id: 1}

	analysis := Assemble(doc, nil, nil, nil, nil)

	assert.Equal(t, DefaultOverallScore, analysis.OverallScore)
	assert.Equal(t, DefaultRubric(), analysis.CompetencyScores)
	assert.Empty(t, analysis.Recommendations)
	assert.True(t, analysis.Degraded)
}

func TestAssembleMissingOverallScore(t *testing.T) {
	doc := &core.Document{Id: 1}
	result := &ai.ScoreResult{
		Competencies: []ai.CompetencyResult{{Name: "Argumentation", Score: 6.0}},
	}

	analysis := Assemble(doc, result, nil, nil, nil)

	assert.Equal(t, DefaultOverallScore, analysis.OverallScore)
	assert.True(t, analysis.Degraded, "substituted overall score marks the analysis degraded")
	require.Len(t, analysis.CompetencyScores, 1)
	assert.Equal(t, "Argumentation", analysis.CompetencyScores[0].Name)
}

func TestAssembleSuggestionFallback(t *testing.T) {
	doc := &core.Document{Id: 1}
	overall := 6.0
	result := &ai.ScoreResult{
		OverallScore: &overall,
		Competencies: []ai.CompetencyResult{{Name: "Textual cohesion", Score: 5.0}},
	}

	analysis := Assemble(doc, result, nil, []string{"use more connectives"}, nil)

	assert.Equal(t, []string{"use more connectives"}, analysis.Recommendations,
		"secondary suggestions fill in when the primary result has none")
}

func TestAssembleKeyPointFallback(t *testing.T) {
	doc := &core.Document{Id: 1}
	overall := 7.5
	result := &ai.ScoreResult{
		OverallScore: &overall,
		Competencies: []ai.CompetencyResult{{Name: "Argumentation", Score: 7.0}},
	}

	analysis := Assemble(doc, result, nil, nil, []string{"clear thesis", "concrete examples"})

	assert.Equal(t, []string{"clear thesis", "concrete examples"}, analysis.Strengths,
		"extracted key points fill in when the primary result names no strengths")

	empty := Assemble(doc, result, nil, nil, nil)
	assert.Empty(t, empty.Strengths)
}

func TestAssembleClampsScores(t *testing.T) {
	doc := &core.Document{Id: 1}
	overall := 14.0
	result := &ai.ScoreResult{
		OverallScore: &overall,
		Competencies: []ai.CompetencyResult{{Name: "Argumentation", Score: -2.0}},
	}

	analysis := Assemble(doc, result, nil, nil, nil)

	assert.Equal(t, 10.0, analysis.OverallScore)
	assert.Equal(t, 0.0, analysis.CompetencyScores[0].Score)
}

func TestDefaultRubricShape(t *testing.T) {
	rubric := DefaultRubric()

	require.Len(t, rubric, 5)
	names := make([]string, len(rubric))
	for i, c := range rubric {
		names[i] = c.Name
		assert.GreaterOrEqual(t, c.Score, 0.0)
		assert.LessOrEqual(t, c.Score, 10.0)
		assert.NotEmpty(t, c.Justification)
	}
	assert.Equal(t, []string{
		"Command of formal writing",
		"Comprehension of the prompt",
		"Argumentation",
		"Textual cohesion",
		"Intervention proposal",
	}, names)

	// Fresh slice each call
	rubric[0].Score = 1.0
	assert.NotEqual(t, rubric[0].Score, DefaultRubric()[0].Score)
}

package mock

import (
	"context"
	"fmt"
	"strings"

	"github.com/elysia-edu/essayd/ai"
)

// MockScorer is a test double for ai.Scorer.
// It allows custom behavior injection via function fields.
type MockScorer struct {
	// ScoreFunc is called by Score if set.
	// If nil, uses default deterministic behavior.
	ScoreFunc func(ctx context.Context, text, priorContext string) (*ai.ScoreResult, error)

	// ExtractKeyPointsFunc is called by ExtractKeyPoints if set.
	// If nil, uses default simple sentence extraction.
	ExtractKeyPointsFunc func(ctx context.Context, text string, max int) ([]string, error)

	// SuggestImprovementsFunc is called by SuggestImprovements if set.
	// If nil, uses default behavior derived from the score result.
	SuggestImprovementsFunc func(ctx context.Context, text string, result *ai.ScoreResult) ([]string, error)

	callCount int
}

// NewMockScorer creates a mock scorer with default deterministic behavior.
// Note: Returns concrete type to allow test assertions via GetMockScorer().
func NewMockScorer() *MockScorer {
	return &MockScorer{}
}

// Score returns a deterministic full score result.
// Default behavior: middling scores scaled by text length so different
// inputs remain distinguishable in assertions.
func (m *MockScorer) Score(ctx context.Context, text, priorContext string) (*ai.ScoreResult, error) {
	m.callCount++

	if m.ScoreFunc != nil {
		return m.ScoreFunc(ctx, text, priorContext)
	}

	overall := 5.0 + float64(len(text)%40)/10.0
	competencies := []string{
		"Command of formal writing",
		"Comprehension of the prompt",
		"Argumentation",
		"Textual cohesion",
		"Intervention proposal",
	}

	scores := make([]ai.CompetencyResult, 0, len(competencies))
	for i, name := range competencies {
		scores = append(scores, ai.CompetencyResult{
			Name:          name,
			Score:         overall - float64(i)*0.1,
			Justification: fmt.Sprintf("mock justification for %s", name),
		})
	}

	return &ai.ScoreResult{
		OverallScore:         &overall,
		Competencies:         scores,
		StructuralSummary:    "mock structural summary",
		CohesionSummary:      "mock cohesion summary",
		VocabularySummary:    "mock vocabulary summary",
		ArgumentativeSummary: "mock argumentative summary",
		Recommendations:      []string{"mock recommendation"},
		Strengths:            []string{"mock strength"},
	}, nil
}

// ExtractKeyPoints extracts simple mock key points from text.
// Default behavior: first sentences of the text, up to max.
func (m *MockScorer) ExtractKeyPoints(ctx context.Context, text string, max int) ([]string, error) {
	m.callCount++

	if m.ExtractKeyPointsFunc != nil {
		return m.ExtractKeyPointsFunc(ctx, text, max)
	}

	sentences := strings.Split(text, ".")
	points := make([]string, 0, max)
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		points = append(points, s)
		if len(points) >= max {
			break
		}
	}
	return points, nil
}

// SuggestImprovements returns mock suggestions, one per competency that
// scored below 7.0 in the given result.
func (m *MockScorer) SuggestImprovements(ctx context.Context, text string, result *ai.ScoreResult) ([]string, error) {
	m.callCount++

	if m.SuggestImprovementsFunc != nil {
		return m.SuggestImprovementsFunc(ctx, text, result)
	}

	if result == nil {
		return []string{"mock general improvement"}, nil
	}

	var suggestions []string
	for _, c := range result.Competencies {
		if c.Score < 7.0 {
			suggestions = append(suggestions, "improve "+c.Name)
		}
	}
	if len(suggestions) == 0 {
		suggestions = []string{"mock general improvement"}
	}
	return suggestions, nil
}

// CallCount returns the number of times any method was called.
func (m *MockScorer) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockScorer) Reset() {
	m.callCount = 0
	m.ScoreFunc = nil
	m.ExtractKeyPointsFunc = nil
	m.SuggestImprovementsFunc = nil
}

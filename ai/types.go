package ai

import "errors"

// ErrMalformedResponse indicates the scoring service returned output that
// could not be parsed into the expected structure. Retrying will not fix
// malformed output, so callers should substitute defaults instead.
var ErrMalformedResponse = errors.New("malformed scoring response")

// CompetencyResult is one rubric competency as graded by the scoring service.
type CompetencyResult struct {
	Name          string   `json:"competency"`
	Score         float64  `json:"score"`
	Justification string   `json:"justification"`
	Strengths     []string `json:"strengths,omitempty"`
	Improvements  []string `json:"improvements,omitempty"`
}

// GrammarIssueResult is one grammar problem reported by the scoring service.
type GrammarIssueResult struct {
	Kind         string `json:"kind"`
	OriginalSpan string `json:"original"`
	Suggestion   string `json:"suggestion"`
	Explanation  string `json:"explanation"`
	Position     []int  `json:"position,omitempty"`
}

// ScoreResult is the structured output of the primary scoring call.
// Any field may be absent when the service omitted it; a nil OverallScore
// means the service did not grade overall quality. Consumers substitute
// deterministic defaults for absent fields.
type ScoreResult struct {
	OverallScore         *float64             `json:"overall_score"`
	Competencies         []CompetencyResult   `json:"competency_scores"`
	StructuralSummary    string               `json:"structural_summary"`
	CohesionSummary      string               `json:"cohesion_summary"`
	VocabularySummary    string               `json:"vocabulary_summary"`
	ArgumentativeSummary string               `json:"argumentative_summary"`
	GrammarIssues        []GrammarIssueResult `json:"grammar_issues"`
	Recommendations      []string             `json:"recommendations"`
	Strengths            []string             `json:"strengths"`
}

// Empty reports whether the result carries no usable grading output.
func (r *ScoreResult) Empty() bool {
	if r == nil {
		return true
	}
	return r.OverallScore == nil && len(r.Competencies) == 0 &&
		len(r.Recommendations) == 0 && len(r.Strengths) == 0 &&
		r.StructuralSummary == "" && r.CohesionSummary == "" &&
		r.VocabularySummary == "" && r.ArgumentativeSummary == ""
}

package openai

import (
	"fmt"
	"strings"
)

const scoringSystemPrompt = `You are a specialist in analyzing and grading student essays.
Your goals are:

1. Analyze the structure, grammar, cohesion and coherence of the text
2. Provide detailed, constructive feedback
3. Identify strengths and weaknesses against the essay competencies
4. Assign objective scores in each category

Always respond with a structured JSON essay-grading response.`

const scoringResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "overall_score": {"type": "number", "minimum": 0, "maximum": 10},
    "competency_scores": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "competency": {"type": "string"},
          "score": {"type": "number", "minimum": 0, "maximum": 10},
          "justification": {"type": "string"},
          "strengths": {"type": "array", "items": {"type": "string"}},
          "improvements": {"type": "array", "items": {"type": "string"}}
        },
        "required": ["competency", "score", "justification"],
        "additionalProperties": false
      }
    },
    "structural_summary": {"type": "string"},
    "cohesion_summary": {"type": "string"},
    "vocabulary_summary": {"type": "string"},
    "argumentative_summary": {"type": "string"},
    "grammar_issues": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "kind": {"type": "string"},
          "original": {"type": "string"},
          "suggestion": {"type": "string"},
          "explanation": {"type": "string"},
          "position": {"type": "array", "items": {"type": "integer"}}
        },
        "required": ["kind", "original", "suggestion"],
        "additionalProperties": false
      }
    },
    "recommendations": {"type": "array", "items": {"type": "string"}},
    "strengths": {"type": "array", "items": {"type": "string"}}
  },
  "required": ["overall_score", "competency_scores"],
  "additionalProperties": false
}`

// buildScoringPrompt assembles the user prompt for the primary scoring call.
// priorContext carries retrieval-derived hints and may be empty.
func buildScoringPrompt(text, priorContext string) string {
	var b strings.Builder

	b.WriteString(`Analyze the following essay against the competencies of clarity, cohesion,
coherence, command of formal writing and intervention proposal.

Output ONLY valid JSON which complies with the schema given below. Do not include any preamble,
explanation, greeting, or acknowledgment. Start your response directly with the opening brace {
and end with the closing brace }. Your output must exactly follow this schema:

`)
	b.WriteString(scoringResponseSchema)
	b.WriteString("\n\nEssay:\n")
	b.WriteString(text)

	if priorContext != "" {
		b.WriteString("\n\nContext from previously graded similar essays (use it to calibrate scores and recommendations):\n")
		b.WriteString(priorContext)
	}

	return b.String()
}

// buildKeyPointsPrompt assembles the user prompt for the key-point extraction call.
func buildKeyPointsPrompt(text string, max int) string {
	return fmt.Sprintf(`Extract the %d most important key points from the following text:

%s

Respond ONLY with JSON of the form {"key_points": ["...", "..."]}.`, max, text)
}

// buildImprovementsPrompt assembles the user prompt for the improvement-suggestion call.
// weakPoints lists competencies that scored poorly; it may be empty.
func buildImprovementsPrompt(weakPoints []string) string {
	var b strings.Builder

	b.WriteString(`Based on the essay analysis, generate 3-5 specific, actionable suggestions to improve the text.`)
	if len(weakPoints) > 0 {
		b.WriteString("\nFocus on the following weak points:\n")
		for _, p := range weakPoints {
			b.WriteString("- ")
			b.WriteString(p)
			b.WriteString("\n")
		}
	}
	b.WriteString(`
Respond ONLY with JSON of the form {"suggestions": ["...", "..."]}.`)

	return b.String()
}

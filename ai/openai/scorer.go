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


package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/elysia-edu/essayd/ai"
	"github.com/elysia-edu/essayd/retry"
)

const (
	// maxScoringChars caps the text sent to the primary scoring call so a
	// single oversized essay cannot blow the provider's token limit.
	maxScoringChars = 14000

	// maxEnrichChars caps the text sent to secondary enrichment calls.
	maxEnrichChars = 8000

	// weakCompetencyThreshold marks competencies that improvement
	// suggestions should focus on.
	weakCompetencyThreshold = 7.0
)

// Scorer implements ai.Scorer using OpenAI-compatible chat APIs.
//
// The primary scoring call retries transient provider failures up to five
// times with exponential backoff (1s base, 60s cap). Secondary enrichment
// calls (key points, improvement suggestions) get a three-attempt budget
// because they are not on the critical path. A response that fails to
// parse is reported as ai.ErrMalformedResponse and never retried.
type Scorer struct {
	client       llms.Model
	temperature  float64
	primaryRetry retry.Policy
	enrichRetry  retry.Policy
	logger       *slog.Logger
}

// keyPoints is an internal type used for JSON unmarshaling of the
// key-point extraction response.
type keyPoints struct {
	KeyPoints []string `json:"key_points"`
}

// suggestions is an internal type used for JSON unmarshaling of the
// improvement-suggestion response.
type suggestions struct {
	Suggestions []string `json:"suggestions"`
}

// newScorer is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newScorer(config *ai.Config) (*Scorer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Create OpenAI client configured for chat/scoring
	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ScoringHost),
		openai.WithToken("none"),
		openai.WithModel(config.ScoringModel),
	)
	if err != nil {
		return nil, err
	}

	return &Scorer{
		client:      client,
		temperature: config.Temperature,
		primaryRetry: retry.Policy{
			MaxAttempts: 5,
			BaseDelay:   1 * time.Second,
			MaxDelay:    60 * time.Second,
		},
		enrichRetry: retry.Policy{
			MaxAttempts: 3,
			BaseDelay:   1 * time.Second,
			MaxDelay:    60 * time.Second,
		},
		logger: slog.Default().With("component", "openai-scorer"),
	}, nil
}

// NewScorer creates a new scorer using the provided configuration.
//
// Returns ai.Scorer interface to enforce abstraction.
func NewScorer(config *ai.Config) (ai.Scorer, error) {
	return newScorer(config)
}

// Score runs the primary structured scoring call over the text.
func (s *Scorer) Score(ctx context.Context, text, priorContext string) (*ai.ScoreResult, error) {
	text = truncate(text, maxScoringChars)

	raw, err := s.generate(ctx, s.primaryRetry, scoringSystemPrompt, buildScoringPrompt(text, priorContext))
	if err != nil {
		return nil, err
	}

	var result ai.ScoreResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		s.logger.Warn("error parsing scoring response", "response", raw, "err", err)
		return nil, fmt.Errorf("%w: %w", ai.ErrMalformedResponse, err)
	}

	return &result, nil
}

// ExtractKeyPoints extracts up to max key points from the text.
func (s *Scorer) ExtractKeyPoints(ctx context.Context, text string, max int) ([]string, error) {
	text = truncate(text, maxEnrichChars)

	raw, err := s.generate(ctx, s.enrichRetry,
		"You are an assistant specialized in extracting key points from texts.",
		buildKeyPointsPrompt(text, max))
	if err != nil {
		return nil, err
	}

	var result keyPoints
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		// Some models answer with a differently named list; accept any
		// single JSON list before giving up.
		if points := anyStringList(raw); points != nil {
			return capList(points, max), nil
		}
		s.logger.Warn("error parsing key points response", "err", err)
		return nil, fmt.Errorf("%w: %w", ai.ErrMalformedResponse, err)
	}

	return capList(result.KeyPoints, max), nil
}

// SuggestImprovements generates actionable improvement suggestions based
// on the text and a prior score result.
func (s *Scorer) SuggestImprovements(ctx context.Context, text string, result *ai.ScoreResult) ([]string, error) {
	var weakPoints []string
	if result != nil {
		for _, c := range result.Competencies {
			if c.Score < weakCompetencyThreshold {
				weakPoints = append(weakPoints, fmt.Sprintf("Improve %s: %s", c.Name, c.Justification))
			}
		}
	}

	raw, err := s.generate(ctx, s.enrichRetry,
		"You are an essay specialist providing constructive, actionable feedback.",
		buildImprovementsPrompt(weakPoints))
	if err != nil {
		return nil, err
	}

	var parsed suggestions
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		if list := anyStringList(raw); list != nil {
			return list, nil
		}
		s.logger.Warn("error parsing suggestions response", "err", err)
		return nil, fmt.Errorf("%w: %w", ai.ErrMalformedResponse, err)
	}

	return parsed.Suggestions, nil
}

// generate issues one chat completion under the given retry policy and
// returns the fence-stripped, repair-passed response text.
func (s *Scorer) generate(ctx context.Context, policy retry.Policy, systemPrompt, userPrompt string) (string, error) {
	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}

	var response *llms.ContentResponse
	err := policy.Do(ctx, func() error {
		var genErr error
		response, genErr = s.client.GenerateContent(ctx, content,
			llms.WithTemperature(s.temperature),
			llms.WithJSONMode())
		return genErr
	})
	if err != nil {
		s.logger.Error("scoring call failed after retries", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		s.logger.Warn("no choices returned from model")
		return "", ai.ErrMalformedResponse
	}

	raw := stripCodeFences(response.Choices[0].Content)
	return repairJSON(raw), nil
}

// anyStringList scans a JSON object for its first non-empty list of
// strings. Models sometimes rename the list key despite instructions.
func anyStringList(raw string) []string {
	var generic map[string]any
	if err := json.Unmarshal([]byte(raw), &generic); err != nil {
		return nil
	}
	for _, value := range generic {
		items, ok := value.([]any)
		if !ok || len(items) == 0 {
			continue
		}
		list := make([]string, 0, len(items))
		for _, item := range items {
			if s, ok := item.(string); ok {
				list = append(list, s)
			}
		}
		if len(list) > 0 {
			return list
		}
	}
	return nil
}

func capList(list []string, max int) []string {
	if max > 0 && len(list) > max {
		return list[:max]
	}
	return list
}

// truncate limits text to max bytes.
func truncate(text string, max int) string {
	if len(text) > max {
		return text[:max]
	}
	return text
}

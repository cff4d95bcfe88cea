// Package mock provides test double implementations of AI service interfaces.
//
// This package contains mock implementations of ai.Embedder, ai.Scorer,
// ai.TextExtractor, and ai.AIProvider for use in unit tests. The mocks allow
// tests to run without external AI service dependencies and enable
// controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	vector, err := mockProvider.Embedder().EmbedText(ctx, "test")
//
//	// Custom behavior injection
//	mockScorer := mock.NewMockScorer()
//	mockScorer.ScoreFunc = func(ctx context.Context, text, priorContext string) (*ai.ScoreResult, error) {
//	    return nil, ai.ErrMalformedResponse
//	}
//
//	// Check call counts
//	count := mockScorer.CallCount()
//
// # Default Behavior
//
// The mock implementations provide sensible defaults:
//
//   - MockEmbedder: Returns deterministic vectors based on text hash
//   - MockScorer: Returns a full score result derived from text length
//   - MockExtractor: Returns the raw content as trimmed text
//   - MockProvider: Aggregates mock embedder and scorer
package mock

package mock

import (
	"context"
	"strings"
)

// MockExtractor is a test double for ai.TextExtractor.
// It allows custom behavior injection via function fields.
type MockExtractor struct {
	// ExtractFunc is called by Extract if set.
	// If nil, content is returned as-is.
	ExtractFunc func(ctx context.Context, content []byte, fileName, contentType string) (string, error)

	callCount int
}

// NewMockExtractor creates a mock extractor with default pass-through behavior.
// Note: Returns concrete type to allow test assertions via GetMockExtractor().
func NewMockExtractor() *MockExtractor {
	return &MockExtractor{}
}

// Extract returns the content as trimmed text.
func (m *MockExtractor) Extract(ctx context.Context, content []byte, fileName, contentType string) (string, error) {
	m.callCount++

	if m.ExtractFunc != nil {
		return m.ExtractFunc(ctx, content, fileName, contentType)
	}

	return strings.TrimSpace(string(content)), nil
}

// CallCount returns the number of times Extract was called.
func (m *MockExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockExtractor) Reset() {
	m.callCount = 0
	m.ExtractFunc = nil
}

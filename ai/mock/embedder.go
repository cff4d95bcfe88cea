package mock

import (
	"context"
	"hash/fnv"
	"math"
)

// DefaultVectorWidth is the width of vectors the mock produces when none
// is configured. Kept deliberately small so similarity tests stay cheap;
// the real service defaults to 1536-wide vectors.
const DefaultVectorWidth = 384

// MockEmbedder is a test double for ai.Embedder. Without injected
// behavior it derives a unit vector deterministically from the essay
// text, so the same essay always lands at the same point in vector space
// and similarity assertions are reproducible across runs.
type MockEmbedder struct {
	// EmbedTextFunc overrides EmbedText when set.
	EmbedTextFunc func(ctx context.Context, text string) ([]float32, error)

	// EmbedTextsFunc overrides EmbedTexts when set.
	EmbedTextsFunc func(ctx context.Context, texts []string) ([][]float32, error)

	// VectorWidth is the width of generated vectors.
	// Zero means DefaultVectorWidth.
	VectorWidth int

	callCount int
}

// NewMockEmbedder creates a mock embedder with deterministic defaults.
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{}
}

// EmbedText derives a reproducible vector from the essay text.
func (m *MockEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	m.callCount++

	if m.EmbedTextFunc != nil {
		return m.EmbedTextFunc(ctx, text)
	}
	return essayVector(text, m.width()), nil
}

// EmbedTexts derives reproducible vectors for a batch of essays.
func (m *MockEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	m.callCount++

	if m.EmbedTextsFunc != nil {
		return m.EmbedTextsFunc(ctx, texts)
	}

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = essayVector(text, m.width())
	}
	return vectors, nil
}

// CallCount returns the number of times any method was called.
func (m *MockEmbedder) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockEmbedder) Reset() {
	m.callCount = 0
	m.EmbedTextFunc = nil
	m.EmbedTextsFunc = nil
}

func (m *MockEmbedder) width() int {
	if m.VectorWidth > 0 {
		return m.VectorWidth
	}
	return DefaultVectorWidth
}

// essayVector hashes the essay text into a unit vector. Components are
// spread over [-1, 1) so cosine scores exercise both signs.
func essayVector(text string, width int) []float32 {
	h := fnv.New64a()
	h.Write([]byte(text))
	state := h.Sum64()

	vector := make([]float32, width)
	var sumSquares float64
	for i := range vector {
		state = state*6364136223846793005 + 1442695040888963407
		vector[i] = float32(int64(state>>40)%2048)/1024.0 - 1.0
		sumSquares += float64(vector[i]) * float64(vector[i])
	}

	if sumSquares > 0 {
		scale := float32(1.0 / math.Sqrt(sumSquares))
		for i := range vector {
			vector[i] *= scale
		}
	}
	return vector
}

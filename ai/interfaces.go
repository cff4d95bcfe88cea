package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Scorer grades essay text against the competency rubric using an external
// LLM-style scoring service. Implementations must be thread-safe.
type Scorer interface {
	// Score runs the primary structured scoring call over the text.
	// Transient provider failures are retried internally with bounded
	// backoff; a response that cannot be parsed as the expected JSON
	// shape returns ErrMalformedResponse without further retries.
	// The optional context string carries retrieval-derived hints and
	// may be empty.
	Score(ctx context.Context, text, priorContext string) (*ScoreResult, error)

	// ExtractKeyPoints extracts up to max key points from the text.
	// This is an enrichment call with a smaller retry budget than Score.
	// Returns an empty slice when nothing could be extracted.
	ExtractKeyPoints(ctx context.Context, text string, max int) ([]string, error)

	// SuggestImprovements generates actionable improvement suggestions
	// based on the text and a prior score result (which may be nil).
	// This is an enrichment call with a smaller retry budget than Score.
	SuggestImprovements(ctx context.Context, text string, result *ScoreResult) ([]string, error)
}

// TextExtractor converts an uploaded document into plain text.
// Extraction is an external collaborator of the pipeline; the analysis
// core only ever sees the extracted text.
type TextExtractor interface {
	// Extract returns the plain text contained in content.
	// fileName and contentType are hints for format detection; either
	// may be empty. Returns an error when the format is unsupported or
	// the content is unreadable.
	Extract(ctx context.Context, content []byte, fileName, contentType string) (string, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
// A provider creates and manages Embedder and Scorer instances, ensuring
// they share configuration and resources appropriately.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Scorer returns the essay scoring service.
	// The returned Scorer is safe for concurrent use.
	Scorer() Scorer

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}

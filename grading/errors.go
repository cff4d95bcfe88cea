package grading

import "errors"

var (
	// ErrDocumentRepositoryRequired is returned when a document repository is not provided.
	ErrDocumentRepositoryRequired = errors.New("document repository required")

	// ErrAnalysisRepositoryRequired is returned when an analysis repository is not provided.
	ErrAnalysisRepositoryRequired = errors.New("analysis repository required")

	// ErrEmbeddingServiceRequired is returned when an embedding service is not provided.
	ErrEmbeddingServiceRequired = errors.New("embedding service required")

	// ErrEnricherRequired is returned when a retrieval enricher is not provided.
	ErrEnricherRequired = errors.New("retrieval enricher required")

	// ErrScorerRequired is returned when a scorer is not provided.
	ErrScorerRequired = errors.New("scorer required")

	// ErrAnalysisInProgress is returned when an analysis run already owns
	// the document. The caller should retry after the run finishes.
	ErrAnalysisInProgress = errors.New("analysis already in progress for document")
)

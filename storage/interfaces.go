package storage

import (
	"context"
	"time"

	"github.com/elysia-edu/essayd/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// DocumentRepository provides operations for managing submitted documents.
type DocumentRepository interface {
	Repository
	// AddDocuments adds one or more documents to storage.
	// For documents with ID=0, generates new IDs from sequence.
	// Sets SubmittedAt timestamp if not already set.
	// Returns the documents with generated IDs and timestamps populated.
	AddDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error)

	// UpdateDocuments updates existing documents.
	// Returns ErrNotFound if any document doesn't exist.
	UpdateDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error)

	// DeleteDocuments removes documents by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any document doesn't exist.
	DeleteDocuments(ctx context.Context, ids ...core.ID) error

	// GetDocument retrieves a single document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id core.ID) (*core.Document, error)

	// GetDocuments retrieves multiple documents by their IDs.
	// Returns only the documents that exist (no error for missing documents).
	GetDocuments(ctx context.Context, ids ...core.ID) ([]*core.Document, error)

	// GetDocumentsByDateRange retrieves documents within a time range.
	// Returns documents where start <= SubmittedAt < end, ordered by submission time.
	GetDocumentsByDateRange(ctx context.Context, start, end time.Time) ([]*core.Document, error)

	// GetRecentDocuments retrieves the N most recent documents, ordered by
	// submission time descending. Returns up to limit documents.
	GetRecentDocuments(ctx context.Context, limit int) ([]*core.Document, error)

	// GetDocumentsByOwner retrieves IDs of documents submitted by an owner.
	// Returns only document IDs, not full records.
	GetDocumentsByOwner(ctx context.Context, ownerID core.ID) ([]core.ID, error)
}

// AnalysisRepository provides operations for managing analysis results.
// At most one analysis exists per document.
type AnalysisRepository interface {
	Repository
	// PutAnalysis stores an analysis, replacing any previous analysis for
	// the same document. For analyses with ID=0, generates a new ID from
	// sequence. Sets CreatedAt timestamp if not already set.
	PutAnalysis(ctx context.Context, analysis *core.Analysis) (*core.Analysis, error)

	// GetAnalysisByDocument retrieves the analysis for a document.
	// Returns ErrNotFound if no analysis exists.
	GetAnalysisByDocument(ctx context.Context, documentID core.ID) (*core.Analysis, error)

	// DeleteAnalysis removes the analysis for a document.
	// Returns ErrNotFound if no analysis exists.
	DeleteAnalysis(ctx context.Context, documentID core.ID) error
}

// EmbeddingRepository provides operations for managing document embeddings.
// At most one embedding exists per document; re-embedding upserts.
type EmbeddingRepository interface {
	Repository
	// UpsertEmbedding stores an embedding, replacing any previous embedding
	// for the same document. The existing embedding's ID is preserved on
	// replace; new embeddings get a sequence-generated ID.
	UpsertEmbedding(ctx context.Context, embedding *core.Embedding) (*core.Embedding, error)

	// GetEmbedding retrieves the embedding for a document.
	// Returns ErrNotFound if no embedding exists.
	GetEmbedding(ctx context.Context, documentID core.ID) (*core.Embedding, error)

	// ListEmbeddings retrieves all stored embeddings.
	// Used by the exhaustive similarity scan and batch reindexing.
	ListEmbeddings(ctx context.Context) ([]*core.Embedding, error)

	// DeleteEmbedding removes the embedding for a document.
	// Returns ErrNotFound if no embedding exists.
	DeleteEmbedding(ctx context.Context, documentID core.ID) error
}

// CorpusRepository provides operations for managing curated corpus examples.
type CorpusRepository interface {
	Repository
	// AddCorpusExamples adds one or more corpus examples to storage.
	// Uses content-based IDs (IDFromContent of example tuple).
	// Sets AddedAt timestamp if not already set.
	AddCorpusExamples(ctx context.Context, examples ...*core.CorpusExample) ([]*core.CorpusExample, error)

	// UpdateCorpusExamples updates existing corpus examples.
	// Returns ErrNotFound if any example doesn't exist.
	UpdateCorpusExamples(ctx context.Context, examples ...*core.CorpusExample) ([]*core.CorpusExample, error)

	// DeleteCorpusExamples removes corpus examples by their IDs.
	// Returns ErrNotFound if any example doesn't exist.
	DeleteCorpusExamples(ctx context.Context, ids ...core.ID) error

	// GetCorpusExample retrieves a single corpus example by ID.
	// Returns ErrNotFound if the example doesn't exist.
	GetCorpusExample(ctx context.Context, id core.ID) (*core.CorpusExample, error)

	// GetAllCorpusExamples retrieves all corpus examples from storage.
	GetAllCorpusExamples(ctx context.Context) ([]*core.CorpusExample, error)

	// FindExampleByCategoryAndTitle finds an example by its (category, title) tuple.
	// Returns ErrNotFound if no matching example exists.
	FindExampleByCategoryAndTitle(ctx context.Context, category, title string) (*core.CorpusExample, error)

	// ListExemplary retrieves examples in the exemplary category with
	// QualityLevel >= minQuality, ordered by quality descending, up to limit.
	ListExemplary(ctx context.Context, minQuality float64, limit int) ([]*core.CorpusExample, error)
}

// CheckpointRepository provides operations for batch-processor checkpoints.
type CheckpointRepository interface {
	// SaveCheckpoint persists a checkpoint for a processor type.
	SaveCheckpoint(ctx context.Context, checkpoint *core.Checkpoint) error

	// LoadCheckpoint retrieves the checkpoint for a processor type.
	// Returns nil, nil if no checkpoint exists.
	LoadCheckpoint(ctx context.Context, processorType string) (*core.Checkpoint, error)
}

// VectorSearcher is an optional capability of embedding storage backends
// that can rank embeddings by similarity natively. Callers discover it via
// type assertion and fall back to an exhaustive scan when it is absent.
type VectorSearcher interface {
	// SearchEmbeddings finds the embeddings most similar to the given
	// vector. Returns up to limit matches ordered by score descending.
	SearchEmbeddings(ctx context.Context, vector []float32, limit int) ([]core.SimilarityMatch, error)
}

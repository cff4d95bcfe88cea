package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// DocumentStatus tracks a document through the analysis lifecycle.
type DocumentStatus int

const (
	// StatusPending indicates the document has been created but not yet dispatched.
	StatusPending DocumentStatus = iota + 1
	// StatusProcessing indicates an analysis run owns the document.
	StatusProcessing
	// StatusCompleted indicates the analysis finished and is persisted.
	StatusCompleted
	// StatusError indicates the analysis run failed; ErrorMessage is set.
	StatusError
)

// String returns the lowercase wire name of the status.
func (s DocumentStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusProcessing:
		return "processing"
	case StatusCompleted:
		return "completed"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status is a terminal state.
func (s DocumentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// CanTransition reports whether moving from s to next is a legal status
// transition. The lifecycle is monotonic: pending -> processing ->
// {completed, error}. Terminal states never transition, and re-entering
// the current state is only allowed for processing (idempotent dispatch).
func (s DocumentStatus) CanTransition(next DocumentStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusProcessing || next == StatusError
	case StatusProcessing:
		return next == StatusProcessing || next == StatusCompleted || next == StatusError
	default:
		return false
	}
}

// DocumentMetadata carries ingestion-time facts about the submitted file.
type DocumentMetadata struct {
	SourceType string
	SizeBytes  int64
}

// Document represents a submitted essay awaiting or holding an analysis.
// It is created by the ingestion surface and mutated only by the analysis
// pipeline (status, error fields, CompletedAt).
type Document struct {
	Id           ID
	OwnerId      ID
	Title        string
	Status       DocumentStatus
	SubmittedAt  time.Time
	CompletedAt  time.Time // zero until the run reaches completed
	RawText      string
	ErrorMessage string
	ErrorSample  string // truncated text sample kept for diagnostics on failure
	Metadata     DocumentMetadata
}

// Embedding is the fixed-dimension vector representation of a document's
// text. At most one embedding exists per document; re-embedding upserts.
type Embedding struct {
	Id         ID
	DocumentId ID
	Vector     []float32
	Snippet    string // leading characters of the source text, for display
	ModelName  string
	CreatedAt  time.Time
}

// CompetencyScore grades one competency of the grading rubric.
type CompetencyScore struct {
	Name          string
	Score         float64
	Justification string
	Strengths     []string
	Improvements  []string
}

// GrammarIssue describes a single grammar problem located in the text.
type GrammarIssue struct {
	Kind         string
	OriginalSpan string
	Suggestion   string
	Explanation  string
	Position     []int32 // [start, end] offsets into the raw text
}

// RetrievedContext summarizes one prior analysis pulled in by similarity
// search to contextualize the current one.
type RetrievedContext struct {
	SummaryScore       float64
	SummaryText        string
	TopRecommendations []string
}

// Analysis is the canonical result of one pipeline run over a document.
// Exactly one analysis exists per document; re-analysis overwrites it.
type Analysis struct {
	Id                   ID
	DocumentId           ID
	OwnerId              ID
	OverallScore         float64
	CompetencyScores     []CompetencyScore
	StructuralSummary    string
	CohesionSummary      string
	VocabularySummary    string
	ArgumentativeSummary string
	GrammarIssues        []GrammarIssue
	Recommendations      []string
	Strengths            []string
	RetrievedContext     []RetrievedContext
	Degraded             bool // true when defaults substituted for provider output
	CreatedAt            time.Time
	ProcessingTimeMs     int64
}

// Corpus example categories.
const (
	CategoryExemplary   = "exemplary"
	CategoryCommon      = "common"
	CategoryProblematic = "problematic"
)

// CorpusExample is a curated reference essay used only as retrieval
// context, never user-submitted. Populated by an external curation process.
type CorpusExample struct {
	Id           ID
	Title        string
	Text         string
	AnalysisId   ID
	Category     string
	Themes       []string
	QualityLevel float64
	Vector       []float32
	AddedAt      time.Time
}

// Tuple returns a string representation of the example as "(Category,Title)".
// This is used for generating deterministic IDs.
func (e *CorpusExample) Tuple() string {
	return "(" + e.Category + "," + e.Title + ")"
}

// Checkpoint records batch-processor progress so interrupted reindex runs
// can resume.
type Checkpoint struct {
	ProcessorType  string
	LastDocumentId ID
	UpdatedAt      time.Time
}

// SimilarityMatch represents an embedding match from vector similarity search.
type SimilarityMatch struct {
	DocumentId ID
	Score      float32
}

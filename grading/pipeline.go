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


package grading

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/elysia-edu/essayd/ai"
	"github.com/elysia-edu/essayd/core"
	"github.com/elysia-edu/essayd/rag"
	"github.com/elysia-edu/essayd/storage"
)

const (
	// defaultRunTimeout bounds one analysis run end to end.
	defaultRunTimeout = 25 * time.Minute

	// errorSampleChars is how much of the failing text is kept on the
	// document for diagnostics.
	errorSampleChars = 500

	// maxKeyPoints caps the secondary key-point extraction call that
	// backfills strengths when the primary result names none.
	maxKeyPoints = 5
)

// Pipeline orchestrates asynchronous essay analysis runs.
//
// A run moves the document pending -> processing -> {completed, error}.
// Dispatch is fire and forget: Submit and Analyze return as soon as the
// run is queued, and run failures land on the document's error fields
// rather than on the caller. At most one run owns a document at a time.
type Pipeline struct {
	documents  storage.DocumentRepository
	analyses   storage.AnalysisRepository
	embeddings *rag.EmbeddingService
	enricher   *rag.Enricher
	scorer     ai.Scorer
	pool       *ants.Pool
	inFlight   sync.Map // core.ID -> struct{}
	runTimeout time.Duration
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent analysis runs.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithRunTimeout bounds a single analysis run.
// Default is 25 minutes.
func WithRunTimeout(timeout time.Duration) Option {
	return func(p *Pipeline) error {
		if timeout > 0 {
			p.runTimeout = timeout
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new analysis pipeline.
func NewPipeline(
	documents storage.DocumentRepository,
	analyses storage.AnalysisRepository,
	embeddings *rag.EmbeddingService,
	enricher *rag.Enricher,
	scorer ai.Scorer,
	opts ...Option,
) (*Pipeline, error) {
	if documents == nil {
		return nil, ErrDocumentRepositoryRequired
	}
	if analyses == nil {
		return nil, ErrAnalysisRepositoryRequired
	}
	if embeddings == nil {
		return nil, ErrEmbeddingServiceRequired
	}
	if enricher == nil {
		return nil, ErrEnricherRequired
	}
	if scorer == nil {
		return nil, ErrScorerRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		documents:  documents,
		analyses:   analyses,
		embeddings: embeddings,
		enricher:   enricher,
		scorer:     scorer,
		pool:       pool,
		runTimeout: defaultRunTimeout,
		logger:     slog.Default().With("component", "analysis-pipeline"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Submit stores a new document in pending state and queues its analysis
// run. The returned document carries the generated ID; poll its status to
// observe the run's outcome.
func (p *Pipeline) Submit(ctx context.Context, doc *core.Document) (*core.Document, error) {
	doc.Status = core.StatusPending

	added, err := p.documents.AddDocuments(ctx, doc)
	if err != nil {
		return nil, err
	}
	doc = added[0]

	if err := p.dispatch(doc.Id); err != nil {
		return nil, err
	}
	return doc, nil
}

// Analyze queues a fresh analysis run for an existing document. Any
// previous analysis is overwritten when the run completes. Returns
// ErrAnalysisInProgress when a run already owns the document.
func (p *Pipeline) Analyze(ctx context.Context, documentID core.ID) error {
	doc, err := p.documents.GetDocument(ctx, documentID)
	if err != nil {
		return err
	}

	// Claim the document before touching its status: a racing duplicate is
	// rejected here instead of rewinding the document a live run owns.
	if _, loaded := p.inFlight.LoadOrStore(documentID, struct{}{}); loaded {
		return ErrAnalysisInProgress
	}

	// Re-analysis restarts the lifecycle from pending.
	doc.Status = core.StatusPending
	doc.ErrorMessage = ""
	doc.ErrorSample = ""
	doc.CompletedAt = time.Time{}
	if _, err := p.documents.UpdateDocuments(ctx, doc); err != nil {
		p.inFlight.Delete(documentID)
		return err
	}

	return p.enqueue(documentID)
}

// dispatch reserves the document and queues the run on the worker pool.
func (p *Pipeline) dispatch(documentID core.ID) error {
	if _, loaded := p.inFlight.LoadOrStore(documentID, struct{}{}); loaded {
		return ErrAnalysisInProgress
	}
	return p.enqueue(documentID)
}

// enqueue queues the run for a document already claimed in the in-flight
// set. The claim is released when the run finishes or queueing fails.
func (p *Pipeline) enqueue(documentID core.ID) error {
	err := p.pool.Submit(func() {
		defer p.inFlight.Delete(documentID)

		ctx, cancel := context.WithTimeout(context.Background(), p.runTimeout)
		defer cancel()

		if err := p.run(ctx, documentID); err != nil {
			p.logger.Error("analysis run failed", "document", documentID, "err", err)
		}
	})
	if err != nil {
		p.inFlight.Delete(documentID)
		return err
	}
	return nil
}

// ProcessDocument executes one analysis run synchronously. Submit and
// Analyze queue this on the worker pool; tests and batch tools call it
// directly. Returns ErrAnalysisInProgress when a queued run already owns
// the document.
func (p *Pipeline) ProcessDocument(ctx context.Context, documentID core.ID) error {
	if _, loaded := p.inFlight.LoadOrStore(documentID, struct{}{}); loaded {
		return ErrAnalysisInProgress
	}
	defer p.inFlight.Delete(documentID)

	return p.run(ctx, documentID)
}

// run is the analysis run proper.
func (p *Pipeline) run(ctx context.Context, documentID core.ID) error {
	started := time.Now()

	doc, err := p.documents.GetDocument(ctx, documentID)
	if err != nil {
		return err
	}

	// Guard: too little text to analyze meaningfully.
	if len(doc.RawText) < core.MinAnalyzableTextLength {
		return p.fail(ctx, doc, fmt.Sprintf(
			"text too short for analysis: %d characters, need at least %d",
			len(doc.RawText), core.MinAnalyzableTextLength))
	}

	if err := p.transition(ctx, doc, core.StatusProcessing); err != nil {
		return err
	}

	// Embedding is best-effort: a degraded zero vector disables retrieval
	// but never blocks scoring.
	embedding, embedDegraded, err := p.embeddings.EmbedDocument(ctx, doc)
	if err != nil {
		p.logger.Warn("failed to store embedding, continuing without retrieval",
			"document", doc.Id, "err", err)
		embedDegraded = true
	}

	bundle := &rag.ContextBundle{}
	if !embedDegraded && embedding != nil {
		bundle = p.enricher.Enrich(ctx, embedding.Vector, doc.Id)
	}

	result, scoreDegraded, err := p.score(ctx, doc, bundle)
	if err != nil {
		return p.fail(ctx, doc, fmt.Sprintf("scoring failed: %v", err))
	}

	suggestions := p.suggestions(ctx, doc, result)
	keyPoints := p.keyPoints(ctx, doc, result)

	analysis := Assemble(doc, result, bundle, suggestions, keyPoints)
	analysis.Degraded = analysis.Degraded || embedDegraded || scoreDegraded
	analysis.ProcessingTimeMs = time.Since(started).Milliseconds()

	if _, err := p.analyses.PutAnalysis(ctx, analysis); err != nil {
		return p.fail(ctx, doc, fmt.Sprintf("persisting analysis failed: %v", err))
	}

	doc.CompletedAt = time.Now().UTC()
	if err := p.transition(ctx, doc, core.StatusCompleted); err != nil {
		return err
	}

	p.logger.Info("analysis completed",
		"document", doc.Id,
		"score", analysis.OverallScore,
		"degraded", analysis.Degraded,
		"elapsed_ms", analysis.ProcessingTimeMs)

	return nil
}

// score runs the primary scoring call. A malformed response degrades to an
// empty result instead of failing the run; transport errors surface after
// the scorer's internal retries are exhausted.
func (p *Pipeline) score(ctx context.Context, doc *core.Document, bundle *rag.ContextBundle) (*ai.ScoreResult, bool, error) {
	result, err := p.scorer.Score(ctx, doc.RawText, bundle.PromptContext())
	if err != nil {
		if errors.Is(err, ai.ErrMalformedResponse) {
			p.logger.Warn("scoring response malformed, substituting defaults", "document", doc.Id)
			return nil, true, nil
		}
		return nil, false, err
	}
	return result, false, nil
}

// suggestions runs the secondary improvement call when the primary result
// offered no recommendations. Failures are logged and yield nil.
func (p *Pipeline) suggestions(ctx context.Context, doc *core.Document, result *ai.ScoreResult) []string {
	if result == nil || len(result.Recommendations) > 0 {
		return nil
	}

	suggestions, err := p.scorer.SuggestImprovements(ctx, doc.RawText, result)
	if err != nil {
		p.logger.Warn("improvement suggestions failed, continuing without them",
			"document", doc.Id, "err", err)
		return nil
	}
	return suggestions
}

// keyPoints runs the secondary key-point extraction call when the primary
// result named no strengths. Failures are logged and yield nil.
func (p *Pipeline) keyPoints(ctx context.Context, doc *core.Document, result *ai.ScoreResult) []string {
	if result == nil || len(result.Strengths) > 0 {
		return nil
	}

	points, err := p.scorer.ExtractKeyPoints(ctx, doc.RawText, maxKeyPoints)
	if err != nil {
		p.logger.Warn("key point extraction failed, continuing without strengths",
			"document", doc.Id, "err", err)
		return nil
	}
	return points
}

// transition moves the document to the next status and persists it.
func (p *Pipeline) transition(ctx context.Context, doc *core.Document, next core.DocumentStatus) error {
	if !doc.Status.CanTransition(next) {
		return fmt.Errorf("%w: %s -> %s", core.ErrInvalidTransition, doc.Status, next)
	}
	doc.Status = next
	_, err := p.documents.UpdateDocuments(ctx, doc)
	return err
}

// fail marks the document as errored with a diagnostic message and a
// truncated text sample.
func (p *Pipeline) fail(ctx context.Context, doc *core.Document, message string) error {
	p.logger.Error("analysis failed", "document", doc.Id, "reason", message)

	sample := doc.RawText
	if len(sample) > errorSampleChars {
		sample = sample[:errorSampleChars]
	}

	doc.ErrorMessage = message
	doc.ErrorSample = sample
	doc.CompletedAt = time.Now().UTC()

	if !doc.Status.CanTransition(core.StatusError) {
		return fmt.Errorf("%w: %s -> %s", core.ErrInvalidTransition, doc.Status, core.StatusError)
	}
	doc.Status = core.StatusError

	if _, err := p.documents.UpdateDocuments(ctx, doc); err != nil {
		return err
	}
	return nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

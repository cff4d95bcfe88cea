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


package essayd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/elysia-edu/essayd/ai"
	"github.com/elysia-edu/essayd/ai/openai"
	"github.com/elysia-edu/essayd/ai/plain"
	"github.com/elysia-edu/essayd/core"
	"github.com/elysia-edu/essayd/grading"
	"github.com/elysia-edu/essayd/rag"
	"github.com/elysia-edu/essayd/reindex"
	"github.com/elysia-edu/essayd/storage"
	"github.com/elysia-edu/essayd/storage/badger"
)

// ErrAnalysisNotReady is returned by Analysis while the document has not
// reached the completed status.
var ErrAnalysisNotReady = errors.New("analysis not ready")

// Service wires storage, AI services, and the analysis pipeline into one
// handle. It is the embedding-side entry point for applications: submit
// essays, poll status, read analyses.
type Service struct {
	backend     *badger.Backend
	documents   storage.DocumentRepository
	analyses    storage.AnalysisRepository
	embeddings  storage.EmbeddingRepository
	corpus      storage.CorpusRepository
	checkpoints storage.CheckpointRepository
	provider    ai.AIProvider
	extractor   ai.TextExtractor
	pipeline    *grading.Pipeline
	aiConfig    *ai.Config
	logger      *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

type serviceOptions struct {
	aiConfig     *ai.Config
	provider     ai.AIProvider
	extractor    ai.TextExtractor
	pipelineOpts []grading.Option
	inMemory     bool
}

// WithAIConfig sets the AI provider configuration.
func WithAIConfig(config *ai.Config) ServiceOption {
	return func(o *serviceOptions) {
		o.aiConfig = config
	}
}

// WithProvider injects a pre-built AI provider instead of constructing one
// from the configuration. Used by tests and embedders with custom stacks.
func WithProvider(provider ai.AIProvider) ServiceOption {
	return func(o *serviceOptions) {
		o.provider = provider
	}
}

// WithExtractor sets the text extractor used by SubmitFile.
// Default is the plain-text extractor.
func WithExtractor(extractor ai.TextExtractor) ServiceOption {
	return func(o *serviceOptions) {
		o.extractor = extractor
	}
}

// WithPipelineOptions forwards options to the analysis pipeline.
func WithPipelineOptions(opts ...grading.Option) ServiceOption {
	return func(o *serviceOptions) {
		o.pipelineOpts = append(o.pipelineOpts, opts...)
	}
}

// WithInMemoryStorage opens the storage backend in memory. The file path
// passed to NewService is ignored. Intended for tests.
func WithInMemoryStorage() ServiceOption {
	return func(o *serviceOptions) {
		o.inMemory = true
	}
}

// NewService opens the storage backend at filePath and assembles the
// repositories, AI provider, and analysis pipeline.
func NewService(filePath string, opts ...ServiceOption) (*Service, error) {
	options := &serviceOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	documents, err := badger.NewDocumentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	analyses, err := badger.NewAnalysisRepository(backend)
	if err != nil {
		documents.Close()
		backend.Close()
		return nil, err
	}

	embeddings, err := badger.NewEmbeddingRepository(backend)
	if err != nil {
		analyses.Close()
		documents.Close()
		backend.Close()
		return nil, err
	}

	corpus, err := badger.NewCorpusRepository(backend)
	if err != nil {
		embeddings.Close()
		analyses.Close()
		documents.Close()
		backend.Close()
		return nil, err
	}

	checkpoints := badger.NewCheckpointRepository(backend)

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			corpus.Close()
			embeddings.Close()
			analyses.Close()
			documents.Close()
			backend.Close()
			return nil, err
		}
	}

	extractor := options.extractor
	if extractor == nil {
		extractor = plain.NewExtractor()
	}

	embedSvc := rag.NewEmbeddingService(provider.Embedder(), embeddings,
		options.aiConfig.EmbeddingModel, options.aiConfig.EmbeddingDimension)
	enricher := rag.NewEnricher(rag.NewSimilarityIndex(embeddings), analyses, corpus, 0)

	pipeline, err := grading.NewPipeline(documents, analyses, embedSvc, enricher,
		provider.Scorer(), options.pipelineOpts...)
	if err != nil {
		provider.Close()
		corpus.Close()
		embeddings.Close()
		analyses.Close()
		documents.Close()
		backend.Close()
		return nil, err
	}

	return &Service{
		backend:     backend,
		documents:   documents,
		analyses:    analyses,
		embeddings:  embeddings,
		corpus:      corpus,
		checkpoints: checkpoints,
		provider:    provider,
		extractor:   extractor,
		pipeline:    pipeline,
		aiConfig:    options.aiConfig,
		logger:      slog.Default().With("component", "service"),
	}, nil
}

// Submit stores an essay and queues its analysis run. The returned document
// carries the generated ID; poll Status to observe the run's outcome.
// Text that is too short to analyze is not rejected here: the run fails and
// the diagnostics land on the document's error fields.
func (s *Service) Submit(ctx context.Context, ownerID core.ID, title, text string) (*core.Document, error) {
	return s.pipeline.Submit(ctx, &core.Document{
		OwnerId: ownerID,
		Title:   title,
		RawText: text,
		Metadata: core.DocumentMetadata{
			SourceType: "text",
			SizeBytes:  int64(len(text)),
		},
	})
}

// SubmitFile extracts the text from an uploaded file and submits it.
// fileName and contentType are format-detection hints; either may be empty.
func (s *Service) SubmitFile(ctx context.Context, ownerID core.ID, title string, content []byte, fileName, contentType string) (*core.Document, error) {
	text, err := s.extractor.Extract(ctx, content, fileName, contentType)
	if err != nil {
		return nil, fmt.Errorf("text extraction failed: %w", err)
	}

	return s.pipeline.Submit(ctx, &core.Document{
		OwnerId: ownerID,
		Title:   title,
		RawText: text,
		Metadata: core.DocumentMetadata{
			SourceType: "file",
			SizeBytes:  int64(len(content)),
		},
	})
}

// Status returns the document's current lifecycle status.
func (s *Service) Status(ctx context.Context, id core.ID) (core.DocumentStatus, error) {
	doc, err := s.documents.GetDocument(ctx, id)
	if err != nil {
		return 0, err
	}
	return doc.Status, nil
}

// Document returns the stored document, including error diagnostics when
// the analysis run failed.
func (s *Service) Document(ctx context.Context, id core.ID) (*core.Document, error) {
	return s.documents.GetDocument(ctx, id)
}

// Analysis returns the persisted analysis for a completed document.
// Returns ErrAnalysisNotReady while the document is pending or processing,
// and the document's error message when the run failed.
func (s *Service) Analysis(ctx context.Context, id core.ID) (*core.Analysis, error) {
	doc, err := s.documents.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	switch doc.Status {
	case core.StatusCompleted:
		return s.analyses.GetAnalysisByDocument(ctx, id)
	case core.StatusError:
		return nil, fmt.Errorf("analysis failed: %s", doc.ErrorMessage)
	default:
		return nil, fmt.Errorf("%w: document is %s", ErrAnalysisNotReady, doc.Status)
	}
}

// Reanalyze queues a fresh analysis run for an existing document. The
// previous analysis is overwritten when the run completes.
func (s *Service) Reanalyze(ctx context.Context, id core.ID) error {
	return s.pipeline.Analyze(ctx, id)
}

// SeedCorpus stores curated reference essays. Examples without a vector are
// embedded first so retrieval can use them.
func (s *Service) SeedCorpus(ctx context.Context, examples ...*core.CorpusExample) ([]*core.CorpusExample, error) {
	embedder := s.provider.Embedder()
	for _, example := range examples {
		if len(example.Vector) > 0 {
			continue
		}
		vector, err := embedder.EmbedText(ctx, example.Text)
		if err != nil {
			return nil, fmt.Errorf("failed to embed corpus example %q: %w", example.Title, err)
		}
		example.Vector = vector
	}

	return s.corpus.AddCorpusExamples(ctx, examples...)
}

// NewReindexer builds a reindexer over this service's stores, for use after
// an embedding-model change. Progress is written to progress.
func (s *Service) NewReindexer(config *reindex.Config, progress io.Writer) (*reindex.Reindexer, error) {
	return reindex.NewReindexer(s.documents, s.embeddings, s.checkpoints,
		s.provider.Embedder(), s.aiConfig.EmbeddingModel, config, progress)
}

// DocumentRepository exposes the document store.
func (s *Service) DocumentRepository() storage.DocumentRepository {
	return s.documents
}

// AnalysisRepository exposes the analysis store.
func (s *Service) AnalysisRepository() storage.AnalysisRepository {
	return s.analyses
}

// CorpusRepository exposes the corpus example store.
func (s *Service) CorpusRepository() storage.CorpusRepository {
	return s.corpus
}

// Close releases the pipeline, the AI provider, and the storage backend.
func (s *Service) Close() error {
	s.pipeline.Release()

	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}

	if err := s.corpus.Close(); err != nil {
		s.logger.Error("error closing corpus repository", "err", err)
		return err
	}
	if err := s.embeddings.Close(); err != nil {
		s.logger.Error("error closing embedding repository", "err", err)
		return err
	}
	if err := s.analyses.Close(); err != nil {
		s.logger.Error("error closing analysis repository", "err", err)
		return err
	}
	if err := s.documents.Close(); err != nil {
		s.logger.Error("error closing document repository", "err", err)
		return err
	}

	if err := s.backend.Close(); err != nil {
		s.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

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


package reindex

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/elysia-edu/essayd/ai"
	"github.com/elysia-edu/essayd/core"
	"github.com/elysia-edu/essayd/storage"
)

// checkpointProcessor names this processor in the checkpoint store.
const checkpointProcessor = "reindexer"

// Config holds configuration for the reindexing operation.
type Config struct {
	// BatchSize is the number of documents to process in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of documents)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed operations
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Reindexer orchestrates regenerating the embeddings of all stored documents.
type Reindexer struct {
	documents   storage.DocumentRepository
	checkpoints storage.CheckpointRepository
	config      *Config
	progress    io.Writer
	processor   *BatchProcessor
	iterator    *DocumentIterator
}

// NewReindexer creates a new reindexer.
// checkpoints may be nil, in which case interrupted runs start over.
// progress: where to write progress output (typically os.Stderr)
func NewReindexer(documents storage.DocumentRepository, embeddings storage.EmbeddingRepository,
	checkpoints storage.CheckpointRepository, embedder ai.Embedder, modelName string,
	config *Config, progress io.Writer) (*Reindexer, error) {
	if documents == nil {
		return nil, ErrDocumentRepositoryRequired
	}
	if embeddings == nil {
		return nil, ErrEmbeddingRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if config == nil {
		config = DefaultConfig()
	}

	return &Reindexer{
		documents:   documents,
		checkpoints: checkpoints,
		config:      config,
		progress:    progress,
		processor:   NewBatchProcessor(embeddings, embedder, modelName, config.MaxRetries, config.RetryDelay),
		iterator:    NewDocumentIterator(documents, config.BatchSize),
	}, nil
}

// Run executes the reindexing operation. Every stored document is embedded
// with the configured embedder and its vector upserted over any previous
// one. Progress is reported to the configured writer, and a checkpoint is
// saved after each batch so an interrupted run resumes where it stopped.
func (r *Reindexer) Run(ctx context.Context) error {
	resumeAfter, err := r.loadCheckpoint(ctx)
	if err != nil {
		return fmt.Errorf("failed to load checkpoint: %w", err)
	}

	total, remaining, err := r.iterator.Count(ctx, resumeAfter)
	if err != nil {
		return fmt.Errorf("failed to query documents: %w", err)
	}

	if total == 0 {
		fmt.Fprintf(r.progress, "No documents found in database (0 documents)\n")
		return nil
	}

	if resumeAfter != 0 && remaining < total {
		fmt.Fprintf(r.progress, "Resuming after document %d (%d of %d remaining)\n",
			resumeAfter, remaining, total)
	}

	fmt.Fprintf(r.progress, "Starting reindexing of %d documents (batch size: %d)\n",
		remaining, r.config.BatchSize)

	tracker := NewProgressTracker(r.progress, remaining, r.config.ReportInterval)
	tracker.Start()

	processed := 0

	err = r.iterator.ForEach(ctx, resumeAfter, func(documents []*core.Document) error {
		if err := r.processor.Process(ctx, documents); err != nil {
			return fmt.Errorf("failed to process batch: %w", err)
		}

		if err := r.saveCheckpoint(ctx, documents[len(documents)-1].Id); err != nil {
			return err
		}

		processed += len(documents)
		tracker.Update(processed)

		return nil
	})

	if err != nil {
		return err
	}

	// Clear the checkpoint so the next run starts from the beginning
	if err := r.saveCheckpoint(ctx, 0); err != nil {
		return err
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(r.progress, "Reindexing complete. Processed %d documents in %v (%.1f documents/sec)\n",
		processed, elapsed.Round(time.Second), float64(processed)/elapsed.Seconds())

	return nil
}

func (r *Reindexer) loadCheckpoint(ctx context.Context) (core.ID, error) {
	if r.checkpoints == nil {
		return 0, nil
	}

	cp, err := r.checkpoints.LoadCheckpoint(ctx, checkpointProcessor)
	if err != nil {
		return 0, err
	}
	if cp == nil {
		return 0, nil
	}
	return cp.LastDocumentId, nil
}

func (r *Reindexer) saveCheckpoint(ctx context.Context, lastID core.ID) error {
	if r.checkpoints == nil {
		return nil
	}

	err := r.checkpoints.SaveCheckpoint(ctx, &core.Checkpoint{
		ProcessorType:  checkpointProcessor,
		LastDocumentId: lastID,
	})
	if err != nil {
		return fmt.Errorf("failed to save checkpoint: %w", err)
	}
	return nil
}

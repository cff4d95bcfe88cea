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
	"time"

	"github.com/elysia-edu/essayd/core"
	"github.com/elysia-edu/essayd/storage"
)

const (
	// DefaultBatchSize is the default number of documents to fetch in each batch
	DefaultBatchSize = 100
)

// DocumentIterator iterates over all stored documents in batches.
type DocumentIterator struct {
	repo      storage.DocumentRepository
	batchSize int
}

// NewDocumentIterator creates a new document iterator.
// batchSize: number of documents to fetch in each batch (must be > 0)
func NewDocumentIterator(repo storage.DocumentRepository, batchSize int) *DocumentIterator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	return &DocumentIterator{
		repo:      repo,
		batchSize: batchSize,
	}
}

// ForEach iterates over all documents in submission order, calling fn for
// each batch. If resumeAfter is non-zero and that document appears in the
// iteration order, documents up to and including it are skipped.
// Iteration stops on first error from fn or when all documents are processed.
// Context cancellation is checked between batches.
func (it *DocumentIterator) ForEach(ctx context.Context, resumeAfter core.ID, fn func([]*core.Document) error) error {
	// Use a very wide date range to get all documents
	startTime := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	endTime := time.Date(2100, 12, 31, 23, 59, 59, 0, time.UTC)

	// Check context before starting
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	documents, err := it.repo.GetDocumentsByDateRange(ctx, startTime, endTime)
	if err != nil {
		return err
	}

	if resumeAfter != 0 {
		for i, doc := range documents {
			if doc.Id == resumeAfter {
				documents = documents[i+1:]
				break
			}
		}
	}

	if len(documents) == 0 {
		// Nothing to process
		return nil
	}

	// Process documents in batches of batchSize
	for i := 0; i < len(documents); i += it.batchSize {
		end := i + it.batchSize
		if end > len(documents) {
			end = len(documents)
		}

		if err := fn(documents[i:end]); err != nil {
			return err
		}

		// Check context after each batch
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
	}

	return nil
}

// Count returns the total number of stored documents and, when resumeAfter
// is non-zero, the number remaining after the resume point.
func (it *DocumentIterator) Count(ctx context.Context, resumeAfter core.ID) (total, remaining int, err error) {
	startTime := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	endTime := time.Date(2100, 12, 31, 23, 59, 59, 0, time.UTC)

	documents, err := it.repo.GetDocumentsByDateRange(ctx, startTime, endTime)
	if err != nil {
		return 0, 0, err
	}

	total = len(documents)
	remaining = total
	if resumeAfter != 0 {
		for i, doc := range documents {
			if doc.Id == resumeAfter {
				remaining = total - (i + 1)
				break
			}
		}
	}

	return total, remaining, nil
}

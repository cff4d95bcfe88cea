package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/elysia-edu/essayd/core"
	"github.com/elysia-edu/essayd/storage"
)

// AnalysisRepository implements storage.AnalysisRepository for BadgerDB.
// Analyses are keyed by document ID so storing one replaces any previous
// analysis of the same document.
type AnalysisRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.AnalysisRepository = (*AnalysisRepository)(nil)

// NewAnalysisRepository creates a new AnalysisRepository.
func NewAnalysisRepository(backend *Backend) (*AnalysisRepository, error) {
	idSeq, err := backend.GetSequence(analysisIDSeq)
	if err != nil {
		return nil, err
	}

	return &AnalysisRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *AnalysisRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *AnalysisRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutAnalysis stores an analysis, replacing any previous analysis for the
// same document.
func (r *AnalysisRepository) PutAnalysis(ctx context.Context, analysis *core.Analysis) (*core.Analysis, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeAnalysisKey(analysis.DocumentId)

		// Preserve the ID of a replaced analysis so external references
		// stay valid across re-analysis.
		old, err := r.readAnalysis(tx, key)
		if err != nil {
			return err
		}
		if old != nil {
			analysis.Id = old.Id
		} else if analysis.Id == 0 {
			nextID, err := r.idSeq.Next()
			if err != nil {
				return err
			}
			// BadgerDB sequences can return 0 on first call, so we skip it
			if nextID == 0 {
				nextID, err = r.idSeq.Next()
				if err != nil {
					return err
				}
			}
			analysis.Id = core.ID(nextID)
		}

		if analysis.CreatedAt.IsZero() {
			analysis.CreatedAt = time.Now().UTC()
		}

		value := storage.MarshalAnalysis(analysis)
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return analysis, err
}

// GetAnalysisByDocument retrieves the analysis for a document.
func (r *AnalysisRepository) GetAnalysisByDocument(ctx context.Context, documentID core.ID) (*core.Analysis, error) {
	var result *core.Analysis
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeAnalysisKey(documentID)
		var err error
		result, err = r.readAnalysis(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// DeleteAnalysis removes the analysis for a document.
func (r *AnalysisRepository) DeleteAnalysis(ctx context.Context, documentID core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeAnalysisKey(documentID)

		existing, err := r.readAnalysis(tx, key)
		if err != nil {
			return err
		}
		if existing == nil {
			return storage.ErrNotFound
		}

		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// readAnalysis reads an analysis from the transaction.
func (r *AnalysisRepository) readAnalysis(tx *badger.Txn, key []byte) (*core.Analysis, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var analysis *core.Analysis
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		analysis, unmarshalErr = storage.UnmarshalAnalysis(val)
		return unmarshalErr
	})
	return analysis, err
}

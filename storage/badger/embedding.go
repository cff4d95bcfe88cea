package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/elysia-edu/essayd/core"
	"github.com/elysia-edu/essayd/storage"
)

// EmbeddingRepository implements storage.EmbeddingRepository for BadgerDB.
// Embeddings are keyed by document ID so re-embedding a document replaces
// its previous vector. The backend additionally exposes native similarity
// search over this keyspace via storage.VectorSearcher.
type EmbeddingRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.EmbeddingRepository = (*EmbeddingRepository)(nil)
var _ storage.VectorSearcher = (*EmbeddingRepository)(nil)

// NewEmbeddingRepository creates a new EmbeddingRepository.
func NewEmbeddingRepository(backend *Backend) (*EmbeddingRepository, error) {
	idSeq, err := backend.GetSequence(embeddingIDSeq)
	if err != nil {
		return nil, err
	}

	return &EmbeddingRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *EmbeddingRepository) Close() error {
	return r.idSeq.Release()
}

// WithTransaction delegates to the backend.
func (r *EmbeddingRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// SearchEmbeddings delegates to the backend's native similarity scan.
func (r *EmbeddingRepository) SearchEmbeddings(ctx context.Context, vector []float32, limit int) ([]core.SimilarityMatch, error) {
	return r.backend.SearchEmbeddings(ctx, vector, limit)
}

// UpsertEmbedding stores an embedding, replacing any previous embedding
// for the same document.
func (r *EmbeddingRepository) UpsertEmbedding(ctx context.Context, embedding *core.Embedding) (*core.Embedding, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeEmbeddingKey(embedding.DocumentId)

		// Preserve the ID of a replaced embedding.
		old, err := r.readEmbedding(tx, key)
		if err != nil {
			return err
		}
		if old != nil {
			embedding.Id = old.Id
		} else if embedding.Id == 0 {
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
			embedding.Id = core.ID(nextID)
		}

		embedding.CreatedAt = time.Now().UTC()

		value := storage.MarshalEmbedding(embedding)
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	return embedding, err
}

// GetEmbedding retrieves the embedding for a document.
func (r *EmbeddingRepository) GetEmbedding(ctx context.Context, documentID core.ID) (*core.Embedding, error) {
	var result *core.Embedding
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeEmbeddingKey(documentID)
		var err error
		result, err = r.readEmbedding(tx, key)
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

// ListEmbeddings retrieves all stored embeddings.
func (r *EmbeddingRepository) ListEmbeddings(ctx context.Context) ([]*core.Embedding, error) {
	var results []*core.Embedding
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		opts.Prefix = []byte(embeddingPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()

			var embedding *core.Embedding
			err := item.Value(func(val []byte) error {
				var err error
				embedding, err = storage.UnmarshalEmbedding(val)
				return err
			})
			if err != nil {
				return err
			}

			if embedding != nil {
				results = append(results, embedding)
			}
		}
		return nil
	}, false)

	return results, err
}

// DeleteEmbedding removes the embedding for a document.
func (r *EmbeddingRepository) DeleteEmbedding(ctx context.Context, documentID core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeEmbeddingKey(documentID)

		existing, err := r.readEmbedding(tx, key)
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

// readEmbedding reads an embedding from the transaction.
func (r *EmbeddingRepository) readEmbedding(tx *badger.Txn, key []byte) (*core.Embedding, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var embedding *core.Embedding
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		embedding, unmarshalErr = storage.UnmarshalEmbedding(val)
		return unmarshalErr
	})
	return embedding, err
}

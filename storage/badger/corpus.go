package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/elysia-edu/essayd/core"
	"github.com/elysia-edu/essayd/storage"
)

// CorpusRepository implements storage.CorpusRepository for BadgerDB.
type CorpusRepository struct {
	backend *Backend
}

var _ storage.CorpusRepository = (*CorpusRepository)(nil)

// NewCorpusRepository creates a new CorpusRepository.
func NewCorpusRepository(backend *Backend) (*CorpusRepository, error) {
	return &CorpusRepository{
		backend: backend,
	}, nil
}

// Close releases resources. CorpusRepository has no resources to release.
func (r *CorpusRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *CorpusRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddCorpusExamples adds one or more corpus examples to storage.
func (r *CorpusRepository) AddCorpusExamples(ctx context.Context, examples ...*core.CorpusExample) ([]*core.CorpusExample, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, example := range examples {
			// Use content-based ID if not set
			if example.Id == 0 {
				example.Id = core.IDFromContent(example.Tuple())
			}

			if example.AddedAt.IsZero() {
				example.AddedAt = time.Now().UTC()
			}

			// Store primary record
			key := makeCorpusKey(example.Id)
			value := storage.MarshalCorpusExample(example)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Store tuple index
			tupleKey := makeCorpusTupleKey(example.Category, example.Title)
			if err := tx.Set(tupleKey, storage.MarshalID(example.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return examples, err
}

// UpdateCorpusExamples updates existing corpus examples.
func (r *CorpusRepository) UpdateCorpusExamples(ctx context.Context, examples ...*core.CorpusExample) ([]*core.CorpusExample, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, example := range examples {
			key := makeCorpusKey(example.Id)

			// Read old example to detect changes
			old, err := readCorpusExample(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			// Store updated record
			value := storage.MarshalCorpusExample(example)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			// Update tuple index if category or title changed
			if old.Category != example.Category || old.Title != example.Title {
				oldTupleKey := makeCorpusTupleKey(old.Category, old.Title)
				if err := tx.Delete(oldTupleKey); err != nil {
					return err
				}
				newTupleKey := makeCorpusTupleKey(example.Category, example.Title)
				if err := tx.Set(newTupleKey, storage.MarshalID(example.Id)); err != nil {
					return err
				}
			}
		}
		return tx.Commit()
	}, true)

	return examples, err
}

// DeleteCorpusExamples removes corpus examples by their IDs.
func (r *CorpusRepository) DeleteCorpusExamples(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeCorpusKey(id)

			// Read example to get metadata for index cleanup
			example, err := readCorpusExample(tx, key)
			if err != nil {
				return err
			}
			if example == nil {
				return storage.ErrNotFound
			}

			// Delete from tuple index
			tupleKey := makeCorpusTupleKey(example.Category, example.Title)
			if err := tx.Delete(tupleKey); err != nil {
				return err
			}

			// Delete primary record
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetCorpusExample retrieves a single corpus example by ID.
func (r *CorpusRepository) GetCorpusExample(ctx context.Context, id core.ID) (*core.CorpusExample, error) {
	var result *core.CorpusExample
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeCorpusKey(id)
		var err error
		result, err = readCorpusExample(tx, key)
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

// GetAllCorpusExamples retrieves all corpus examples from storage.
func (r *CorpusRepository) GetAllCorpusExamples(ctx context.Context) ([]*core.CorpusExample, error) {
	var results []*core.CorpusExample
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		opts.Prefix = []byte(corpusPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()

			var example *core.CorpusExample
			err := item.Value(func(val []byte) error {
				var err error
				example, err = storage.UnmarshalCorpusExample(val)
				return err
			})
			if err != nil {
				return err
			}

			if example != nil {
				results = append(results, example)
			}
		}
		return nil
	}, false)

	return results, err
}

// FindExampleByCategoryAndTitle finds an example by its (category, title) tuple.
func (r *CorpusRepository) FindExampleByCategoryAndTitle(ctx context.Context, category, title string) (*core.CorpusExample, error) {
	var result *core.CorpusExample
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		// Look up ID from tuple index
		tupleKey := makeCorpusTupleKey(category, title)
		item, err := tx.Get(tupleKey)
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return storage.ErrNotFound
			}
			return err
		}

		var exampleID core.ID
		err = item.Value(func(val []byte) error {
			exampleID, err = storage.UnmarshalID(val)
			return err
		})
		if err != nil {
			return err
		}

		// Look up full example
		exampleKey := makeCorpusKey(exampleID)
		result, err = readCorpusExample(tx, exampleKey)
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

// ListExemplary retrieves examples in the exemplary category with
// QualityLevel >= minQuality, ordered by quality descending.
func (r *CorpusRepository) ListExemplary(ctx context.Context, minQuality float64, limit int) ([]*core.CorpusExample, error) {
	all, err := r.GetAllCorpusExamples(ctx)
	if err != nil {
		return nil, err
	}

	var results []*core.CorpusExample
	for _, example := range all {
		if example.Category == core.CategoryExemplary && example.QualityLevel >= minQuality {
			results = append(results, example)
		}
	}

	slices.SortFunc(results, func(a, b *core.CorpusExample) int {
		if a.QualityLevel > b.QualityLevel {
			return -1
		}
		if a.QualityLevel < b.QualityLevel {
			return 1
		}
		return 0
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	return results, nil
}

// readCorpusExample reads a corpus example from the transaction.
func readCorpusExample(tx *badger.Txn, key []byte) (*core.CorpusExample, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var example *core.CorpusExample
	err = item.Value(func(val []byte) error {
		var err error
		example, err = storage.UnmarshalCorpusExample(val)
		return err
	})
	return example, err
}

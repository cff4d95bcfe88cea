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


package badger

import "github.com/elysia-edu/essayd/storage"

// MemoryRepositories bundles in-memory repositories for testing.
// Caller must call Close when done.
type MemoryRepositories struct {
	Documents   storage.DocumentRepository
	Analyses    storage.AnalysisRepository
	Embeddings  storage.EmbeddingRepository
	Corpus      storage.CorpusRepository
	Checkpoints storage.CheckpointRepository
	Backend     *Backend
}

// Close releases all repositories and the backend.
func (m *MemoryRepositories) Close() {
	m.Documents.Close()
	m.Analyses.Close()
	m.Embeddings.Close()
	m.Corpus.Close()
	m.Backend.Close()
}

// NewMemoryRepositories creates in-memory repositories for testing.
func NewMemoryRepositories() (*MemoryRepositories, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}

	docs, err := NewDocumentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	analyses, err := NewAnalysisRepository(backend)
	if err != nil {
		docs.Close()
		backend.Close()
		return nil, err
	}

	embeddings, err := NewEmbeddingRepository(backend)
	if err != nil {
		analyses.Close()
		docs.Close()
		backend.Close()
		return nil, err
	}

	corpus, err := NewCorpusRepository(backend)
	if err != nil {
		embeddings.Close()
		analyses.Close()
		docs.Close()
		backend.Close()
		return nil, err
	}

	return &MemoryRepositories{
		Documents:   docs,
		Analyses:    analyses,
		Embeddings:  embeddings,
		Corpus:      corpus,
		Checkpoints: NewCheckpointRepository(backend),
		Backend:     backend,
	}, nil
}

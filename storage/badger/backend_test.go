package badger

import (
	"context"
	"testing"

	"github.com/elysia-edu/essayd/core"
)

func TestBackendOpenAndClose(t *testing.T) {
	backend, err := OpenBackend("", true)
	if err != nil {
		t.Fatalf("Failed to open in-memory backend: %v", err)
	}

	if backend.IsClosed() {
		t.Fatal("Expected backend to be open")
	}

	if err := backend.Close(); err != nil {
		t.Fatalf("Failed to close backend: %v", err)
	}

	if !backend.IsClosed() {
		t.Fatal("Expected backend to be closed")
	}
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float32
		expected float32
	}{
		{name: "identical unit vectors", a: []float32{1, 0}, b: []float32{1, 0}, expected: 1},
		{name: "orthogonal", a: []float32{1, 0}, b: []float32{0, 1}, expected: 0},
		{name: "scale invariant", a: []float32{2, 0}, b: []float32{5, 0}, expected: 1},
		{name: "mismatched length", a: []float32{1, 1, 1}, b: []float32{2}, expected: 0},
		{name: "zero vector", a: []float32{0, 0}, b: []float32{1, 0}, expected: 0},
		{name: "empty", a: nil, b: nil, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cosineSimilarity(tt.a, tt.b); got != tt.expected {
				t.Fatalf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestCheckpointSaveAndLoad(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	// No checkpoint yet
	loaded, err := repos.Checkpoints.LoadCheckpoint(ctx, "reindexer")
	if err != nil {
		t.Fatalf("Failed to load checkpoint: %v", err)
	}
	if loaded != nil {
		t.Fatal("Expected nil checkpoint before save")
	}

	if err := repos.Checkpoints.SaveCheckpoint(ctx, &core.Checkpoint{
		ProcessorType:  "reindexer",
		LastDocumentId: 77,
	}); err != nil {
		t.Fatalf("Failed to save checkpoint: %v", err)
	}

	loaded, err = repos.Checkpoints.LoadCheckpoint(ctx, "reindexer")
	if err != nil {
		t.Fatalf("Failed to load checkpoint: %v", err)
	}
	if loaded == nil {
		t.Fatal("Expected checkpoint after save")
	}
	if loaded.LastDocumentId != 77 {
		t.Fatalf("Expected LastDocumentId 77, got %d", loaded.LastDocumentId)
	}
	if loaded.UpdatedAt.IsZero() {
		t.Fatal("Expected UpdatedAt to be set")
	}
}

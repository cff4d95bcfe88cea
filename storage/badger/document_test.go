package badger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/elysia-edu/essayd/core"
	"github.com/elysia-edu/essayd/storage"
)

func TestDocumentBasics(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	doc := &core.Document{
		OwnerId: 42,
		Title:   "Climate essay",
		Status:  core.StatusPending,
		RawText: "The climate crisis demands coordinated action across many sectors.",
	}

	added, err := repos.Documents.AddDocuments(ctx, doc)
	if err != nil {
		t.Fatalf("Failed to add document: %v", err)
	}

	if len(added) != 1 {
		t.Fatalf("Expected 1 document, got %d", len(added))
	}

	if added[0].Id == 0 {
		t.Fatal("Expected non-zero ID")
	}

	if added[0].SubmittedAt.IsZero() {
		t.Fatal("Expected SubmittedAt to be set")
	}

	retrieved, err := repos.Documents.GetDocument(ctx, added[0].Id)
	if err != nil {
		t.Fatalf("Failed to get document: %v", err)
	}

	if retrieved.Title != "Climate essay" {
		t.Fatalf("Expected 'Climate essay', got '%s'", retrieved.Title)
	}
	if retrieved.Status != core.StatusPending {
		t.Fatalf("Expected pending status, got %s", retrieved.Status)
	}
}

func TestDocumentUpdateStatus(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	added, err := repos.Documents.AddDocuments(ctx, &core.Document{
		OwnerId: 1,
		Title:   "Draft",
		Status:  core.StatusPending,
		RawText: "some essay text",
	})
	if err != nil {
		t.Fatalf("Failed to add document: %v", err)
	}

	doc := added[0]
	doc.Status = core.StatusProcessing
	if _, err := repos.Documents.UpdateDocuments(ctx, doc); err != nil {
		t.Fatalf("Failed to update document: %v", err)
	}

	retrieved, err := repos.Documents.GetDocument(ctx, doc.Id)
	if err != nil {
		t.Fatalf("Failed to get document: %v", err)
	}
	if retrieved.Status != core.StatusProcessing {
		t.Fatalf("Expected processing status, got %s", retrieved.Status)
	}
}

func TestDocumentUpdateMissing(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	_, err = repos.Documents.UpdateDocuments(context.Background(), &core.Document{Id: 9999})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestDocumentDateRange(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	docs := []*core.Document{
		{OwnerId: 1, Title: "Essay 1", Status: core.StatusPending, SubmittedAt: now.Add(-2 * time.Hour)},
		{OwnerId: 1, Title: "Essay 2", Status: core.StatusPending, SubmittedAt: now.Add(-1 * time.Hour)},
		{OwnerId: 1, Title: "Essay 3", Status: core.StatusPending, SubmittedAt: now},
	}

	if _, err := repos.Documents.AddDocuments(ctx, docs...); err != nil {
		t.Fatalf("Failed to add documents: %v", err)
	}

	start := now.Add(-90 * time.Minute)
	end := now.Add(1 * time.Minute)

	results, err := repos.Documents.GetDocumentsByDateRange(ctx, start, end)
	if err != nil {
		t.Fatalf("Failed to get documents by date range: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 documents, got %d", len(results))
	}
}

func TestGetRecentDocuments(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	docs := []*core.Document{
		{OwnerId: 1, Title: "Oldest", Status: core.StatusPending, SubmittedAt: now.Add(-3 * time.Hour)},
		{OwnerId: 1, Title: "Middle", Status: core.StatusPending, SubmittedAt: now.Add(-2 * time.Hour)},
		{OwnerId: 1, Title: "Newest", Status: core.StatusPending, SubmittedAt: now},
	}

	if _, err := repos.Documents.AddDocuments(ctx, docs...); err != nil {
		t.Fatalf("Failed to add documents: %v", err)
	}

	results, err := repos.Documents.GetRecentDocuments(ctx, 2)
	if err != nil {
		t.Fatalf("Failed to get recent documents: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 documents, got %d", len(results))
	}
	if results[0].Title != "Newest" {
		t.Fatalf("Expected 'Newest' first, got '%s'", results[0].Title)
	}
	if results[1].Title != "Middle" {
		t.Fatalf("Expected 'Middle' second, got '%s'", results[1].Title)
	}
}

func TestGetDocumentsByOwner(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	docs := []*core.Document{
		{OwnerId: 7, Title: "A", Status: core.StatusPending},
		{OwnerId: 7, Title: "B", Status: core.StatusPending},
		{OwnerId: 8, Title: "C", Status: core.StatusPending},
	}

	if _, err := repos.Documents.AddDocuments(ctx, docs...); err != nil {
		t.Fatalf("Failed to add documents: %v", err)
	}

	ids, err := repos.Documents.GetDocumentsByOwner(ctx, 7)
	if err != nil {
		t.Fatalf("Failed to get documents by owner: %v", err)
	}

	if len(ids) != 2 {
		t.Fatalf("Expected 2 documents for owner 7, got %d", len(ids))
	}
}

func TestDocumentDelete(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	added, err := repos.Documents.AddDocuments(ctx, &core.Document{
		OwnerId: 1, Title: "Doomed", Status: core.StatusPending,
	})
	if err != nil {
		t.Fatalf("Failed to add document: %v", err)
	}

	if err := repos.Documents.DeleteDocuments(ctx, added[0].Id); err != nil {
		t.Fatalf("Failed to delete document: %v", err)
	}

	_, err = repos.Documents.GetDocument(ctx, added[0].Id)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound after delete, got %v", err)
	}

	// Owner index must be cleaned up too
	ids, err := repos.Documents.GetDocumentsByOwner(ctx, 1)
	if err != nil {
		t.Fatalf("Failed to get documents by owner: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("Expected empty owner index, got %d entries", len(ids))
	}
}

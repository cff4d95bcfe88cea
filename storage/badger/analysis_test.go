package badger

import (
	"context"
	"errors"
	"testing"

	"github.com/elysia-edu/essayd/core"
	"github.com/elysia-edu/essayd/storage"
)

func TestAnalysisPutAndGet(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	analysis := &core.Analysis{
		DocumentId:   100,
		OwnerId:      1,
		OverallScore: 7.5,
		CompetencyScores: []core.CompetencyScore{
			{Name: "Argumentation", Score: 7.0, Justification: "solid reasoning"},
		},
		Recommendations: []string{"vary sentence openings"},
	}

	stored, err := repos.Analyses.PutAnalysis(ctx, analysis)
	if err != nil {
		t.Fatalf("Failed to put analysis: %v", err)
	}
	if stored.Id == 0 {
		t.Fatal("Expected non-zero ID")
	}
	if stored.CreatedAt.IsZero() {
		t.Fatal("Expected CreatedAt to be set")
	}

	retrieved, err := repos.Analyses.GetAnalysisByDocument(ctx, 100)
	if err != nil {
		t.Fatalf("Failed to get analysis: %v", err)
	}
	if retrieved.OverallScore != 7.5 {
		t.Fatalf("Expected score 7.5, got %f", retrieved.OverallScore)
	}
	if len(retrieved.CompetencyScores) != 1 {
		t.Fatalf("Expected 1 competency score, got %d", len(retrieved.CompetencyScores))
	}
}

func TestAnalysisPutOverwrites(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	ctx := context.Background()

	first, err := repos.Analyses.PutAnalysis(ctx, &core.Analysis{DocumentId: 5, OverallScore: 6.0})
	if err != nil {
		t.Fatalf("Failed to put first analysis: %v", err)
	}

	second, err := repos.Analyses.PutAnalysis(ctx, &core.Analysis{DocumentId: 5, OverallScore: 8.0})
	if err != nil {
		t.Fatalf("Failed to put second analysis: %v", err)
	}

	// Re-analysis keeps the original analysis ID
	if second.Id != first.Id {
		t.Fatalf("Expected ID %d preserved on overwrite, got %d", first.Id, second.Id)
	}

	retrieved, err := repos.Analyses.GetAnalysisByDocument(ctx, 5)
	if err != nil {
		t.Fatalf("Failed to get analysis: %v", err)
	}
	if retrieved.OverallScore != 8.0 {
		t.Fatalf("Expected overwritten score 8.0, got %f", retrieved.OverallScore)
	}
}

func TestAnalysisNotFound(t *testing.T) {
	repos, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer repos.Close()

	_, err = repos.Analyses.GetAnalysisByDocument(context.Background(), 12345)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	err = repos.Analyses.DeleteAnalysis(context.Background(), 12345)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound on delete, got %v", err)
	}
}
